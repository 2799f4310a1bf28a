// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/edge"

	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/state"
)

// Argument applies m to the i-th argument of a call.
func Argument(i int, m Matcher) Matcher {
	return func(n ast.Node, s state.State) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || i < 0 || i >= len(call.Args) {
			return false
		}

		arg := s.At(s.Cursor().ChildAt(edge.CallExpr_Args, i))

		return m(arg.Node(), arg)
	}
}

// ArgumentCount matches calls with exactly count arguments.
func ArgumentCount(count int) Matcher {
	return func(n ast.Node, _ state.State) bool {
		call, ok := n.(*ast.CallExpr)

		return ok && len(call.Args) == count && !call.Ellipsis.IsValid()
	}
}

// Receiver applies m to the receiver expression of a method call x.f().
func Receiver(m Matcher) Matcher {
	return func(n ast.Node, s state.State) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return false
		}

		if _, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); !ok {
			return false
		}

		fun := s.Cursor().ChildAt(edge.CallExpr_Fun, -1)
		for {
			if _, ok := fun.Node().(*ast.ParenExpr); !ok {
				break
			}

			fun = fun.ChildAt(edge.ParenExpr_X, -1)
		}

		x := s.At(fun.ChildAt(edge.SelectorExpr_X, -1))

		return m(x.Node(), x)
	}
}

// Operator matches binary, unary and assignment nodes with one of the given operators.
func Operator(ops ...token.Token) Matcher {
	ops = slices.Clone(ops)

	return func(n ast.Node, _ state.State) bool {
		var op token.Token

		switch n := n.(type) {
		case *ast.BinaryExpr:
			op = n.Op
		case *ast.UnaryExpr:
			op = n.Op
		case *ast.AssignStmt:
			op = n.Tok
		case *ast.IncDecStmt:
			op = n.Tok
		default:
			return false
		}

		return slices.Contains(ops, op)
	}
}

// Operands matches binary expressions whose operands match l and r in either order.
func Operands(l, r Matcher) Matcher {
	return func(n ast.Node, s state.State) bool {
		if _, ok := n.(*ast.BinaryExpr); !ok {
			return false
		}

		c := s.Cursor()
		x, y := s.At(c.ChildAt(edge.BinaryExpr_X, -1)), s.At(c.ChildAt(edge.BinaryExpr_Y, -1))

		return l(x.Node(), x) && r(y.Node(), y) || l(y.Node(), y) && r(x.Node(), x)
	}
}

// StringLiteral matches string literals.
func StringLiteral() Matcher {
	return func(n ast.Node, _ state.State) bool {
		lit, ok := ast.Unparen(asExpr(n)).(*ast.BasicLit)

		return ok && lit.Kind == token.STRING
	}
}

// SameExpr reports whether a and b denote the same variable, field, element or constant.
// Expressions with calls or other side effects never compare equal.
func SameExpr(o oracle.Oracle, a, b ast.Expr) bool {
	a, b = ast.Unparen(a), ast.Unparen(b)

	switch a := a.(type) {
	case *ast.Ident:
		b, ok := b.(*ast.Ident)
		if !ok || a.Name == "_" {
			return false
		}

		obj := o.SymbolOf(a)

		return obj != nil && obj == o.SymbolOf(b)

	case *ast.SelectorExpr:
		b, ok := b.(*ast.SelectorExpr)
		if !ok {
			return false
		}

		obj := o.SymbolOf(a.Sel)
		if obj == nil || obj != o.SymbolOf(b.Sel) {
			return false
		}

		if _, ok := o.SymbolOf(a.X).(*types.PkgName); ok {
			return true
		}

		return SameExpr(o, a.X, b.X)

	case *ast.StarExpr:
		b, ok := b.(*ast.StarExpr)

		return ok && SameExpr(o, a.X, b.X)

	case *ast.IndexExpr:
		b, ok := b.(*ast.IndexExpr)
		if !ok || !SameExpr(o, a.X, b.X) {
			return false
		}

		return sameConstant(o, a.Index, b.Index) || SameExpr(o, a.Index, b.Index)

	case *ast.BasicLit:
		return sameConstant(o, a, b)
	}

	return false
}

func sameConstant(o oracle.Oracle, a, b ast.Expr) bool {
	va, vb := constValue(o, a), constValue(o, b)

	return va != nil && vb != nil && va.Kind() == vb.Kind() && constant.Compare(va, token.EQL, vb)
}

func constValue(o oracle.Oracle, e ast.Expr) constant.Value {
	if lit, ok := ast.Unparen(e).(*ast.BasicLit); ok {
		return constant.MakeFromLiteral(lit.Value, lit.Kind, 0)
	}

	if c, ok := o.SymbolOf(e).(*types.Const); ok {
		return c.Val()
	}

	return nil
}

func asExpr(n ast.Node) ast.Expr {
	if e, ok := n.(ast.Expr); ok {
		return e
	}

	return nil
}
