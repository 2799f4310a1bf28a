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

package bugpatterns

import (
	"go/ast"
	"go/token"
	"go/types"
	"unicode/utf8"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// SelfAssignment finds assignments of a variable to itself.
var SelfAssignment = &registry.Detector{
	Name:    "SelfAssignment",
	Summary: "Variable assigned to itself",
	Explanation: "The left-hand side and right-hand side of this assignment are the same. " +
		"It has no effect. When a field is assigned to itself inside a function with a parameter " +
		"of the same type, the parameter was most likely meant as the right-hand side.",
	Link:     linkBase + "SelfAssignment",
	Category: registry.CategoryStdlib,
	Severity: report.SeverityError,
	Maturity: level.Mature,
	Kinds:    []tree.Kind{tree.KindAssignStmt},
	Matcher:  matcher.AllOf(matcher.Operator(token.ASSIGN), selfAssigned),
	Describe: describeSelfAssignment,
}

func selfAssigned(n ast.Node, s state.State) bool {
	a, ok := n.(*ast.AssignStmt)
	if !ok || len(a.Lhs) != 1 || len(a.Rhs) != 1 {
		return false
	}

	lhs := ast.Unparen(a.Lhs[0])

	// m[k] = m[k] inserts the zero value for a missing key.
	if ix, ok := lhs.(*ast.IndexExpr); ok {
		if t := s.Oracle().TypeOf(ix.X); t != nil {
			if _, isMap := t.Underlying().(*types.Map); isMap {
				return false
			}
		}
	}

	return matcher.SameExpr(s.Oracle(), lhs, a.Rhs[0])
}

func describeSelfAssignment(d *registry.Detector, n ast.Node, s state.State) report.Description {
	a := n.(*ast.AssignStmt)

	if sel, ok := ast.Unparen(a.Lhs[0]).(*ast.SelectorExpr); ok {
		if param, ok := similarParameter(s, sel, ast.Unparen(a.Rhs[0])); ok {
			f := fix.New().Replace(s.Range(a.Rhs[0]), param).Build()

			return d.Finding(n, d.Summary+"; did you mean '"+param+"'?", f)
		}
	}

	if !inStatementList(s) {
		return d.Finding(n, d.Summary, nil)
	}

	return d.Finding(n, d.Summary, fix.New().Delete(s.DeletionRange(n)).Build())
}

// similarParameter finds the parameter of the enclosing function with the type of the field sel
// whose name is closest to the name used on the right-hand side, if any is close enough.
func similarParameter(s state.State, sel *ast.SelectorExpr, rhs ast.Expr) (string, bool) {
	o := s.Oracle()

	field, ok := o.SymbolOf(sel.Sel).(*types.Var)
	if !ok || !field.IsField() {
		return "", false
	}

	var name string
	switch rhs := rhs.(type) {
	case *ast.Ident:
		name = rhs.Name
	case *ast.SelectorExpr:
		name = rhs.Sel.Name
	default:
		return "", false
	}

	fn, ok := s.Enclosing(tree.KindFuncDecl, tree.KindFuncLit)
	if !ok {
		return "", false
	}

	var params *ast.FieldList
	switch fn := fn.Node().(type) {
	case *ast.FuncDecl:
		params = fn.Type.Params
	case *ast.FuncLit:
		params = fn.Type.Params
	}

	best, bestDistance := "", -1
	for _, p := range params.List {
		for _, id := range p.Names {
			v, ok := o.SymbolOf(id).(*types.Var)
			if !ok || id.Name == "_" || !o.IsSameType(v.Type(), field.Type()) {
				continue
			}

			dist := editDistance(name, id.Name)
			if dist > maxSuggestionDistance(name, id.Name) {
				continue
			}

			if bestDistance < 0 || dist < bestDistance {
				best, bestDistance = id.Name, dist
			}
		}
	}

	return best, bestDistance >= 0
}

// maxSuggestionDistance bounds the edit distance of names considered similar.
func maxSuggestionDistance(a, b string) int {
	return max(utf8.RuneCountInString(a), utf8.RuneCountInString(b)) / 2
}

// editDistance is the Levenshtein distance of a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
