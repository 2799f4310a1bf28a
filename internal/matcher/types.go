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
	"go/types"
	"slices"
	"sync/atomic"

	"fillmore-labs.com/bugscan/internal/annotation"
	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/state"
)

// TypeRef is a named type resolved on first use and memoized per analyzed package.
type TypeRef struct {
	pkgPath, name string
	memo          atomic.Pointer[resolvedType]
}

type resolvedType struct {
	pkg *types.Package
	typ types.Type
}

// NamedType refers to the type name declared in the package with the given path.
// The empty path refers to predeclared types like error.
func NamedType(pkgPath, name string) *TypeRef {
	return &TypeRef{pkgPath: pkgPath, name: name}
}

// String returns the qualified type name.
func (r *TypeRef) String() string {
	if r.pkgPath == "" {
		return r.name
	}

	return r.pkgPath + "." + r.name
}

// Resolve returns the type as seen from the package of o, or nil when it is not visible.
//
// Lookups are a pure function of the package, so a lost compare-and-swap only repeats work.
func (r *TypeRef) Resolve(o oracle.Oracle) types.Type {
	pkg := o.Package()

	old := r.memo.Load()
	if old != nil && old.pkg == pkg {
		return old.typ
	}

	typ := o.LookupType(r.pkgPath, r.name)
	r.memo.CompareAndSwap(old, &resolvedType{pkg: pkg, typ: typ})

	return typ
}

// IsSameType matches nodes whose type is identical to t.
func IsSameType(t *TypeRef) Matcher {
	return func(n ast.Node, s state.State) bool {
		o := s.Oracle()

		return o.IsSameType(o.TypeOf(n), t.Resolve(o))
	}
}

// IsSubtypeOf matches nodes whose type is identical to t or implements the interface t.
func IsSubtypeOf(t *TypeRef) Matcher {
	return func(n ast.Node, s state.State) bool {
		o := s.Oracle()

		return o.IsSubtype(o.TypeOf(n), t.Resolve(o))
	}
}

// IsType matches nodes with a known type satisfying pred.
func IsType(pred func(types.Type) bool) Matcher {
	return func(n ast.Node, s state.State) bool {
		t := s.Oracle().TypeOf(n)

		return t != nil && pred(t)
	}
}

// HasAnnotation matches nodes whose symbol carries the named annotation.
func HasAnnotation(name string) Matcher {
	return func(n ast.Node, s state.State) bool {
		o := s.Oracle()
		_, ok := annotation.Find(o.AnnotationsOf(o.SymbolOf(n)), name)

		return ok
	}
}

// Symbol matches nodes with a resolved symbol satisfying pred.
func Symbol(pred func(types.Object) bool) Matcher {
	return func(n ast.Node, s state.State) bool {
		obj := s.Oracle().SymbolOf(n)

		return obj != nil && pred(obj)
	}
}

// StaticFunction matches calls of package level functions with one of the given names.
func StaticFunction(pkgPath string, names ...string) Matcher {
	names = slices.Clone(names)

	return func(n ast.Node, s state.State) bool {
		fn, ok := callee(n, s)
		if !ok || fn.Signature().Recv() != nil || fn.Pkg() == nil || fn.Pkg().Path() != pkgPath {
			return false
		}

		return len(names) == 0 || slices.Contains(names, fn.Name())
	}
}

// InstanceMethod matches calls of methods declared on recv with one of the given names.
func InstanceMethod(recv *TypeRef, names ...string) Matcher {
	names = slices.Clone(names)

	return func(n ast.Node, s state.State) bool {
		fn, ok := callee(n, s)
		if !ok {
			return false
		}

		r := fn.Signature().Recv()
		if r == nil || len(names) > 0 && !slices.Contains(names, fn.Name()) {
			return false
		}

		t := r.Type()
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem()
		}

		o := s.Oracle()

		return o.IsSameType(t, recv.Resolve(o))
	}
}

func callee(n ast.Node, s state.State) (*types.Func, bool) {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return nil, false
	}

	fn, ok := s.Oracle().SymbolOf(call).(*types.Func)

	return fn, ok
}
