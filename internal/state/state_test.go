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

package state_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/testsource"
	"fillmore-labs.com/bugscan/internal/tree"
)

func TestState(t *testing.T) {
	t.Parallel()

	s := testsource.Fragment(t, "x := 1\n\tx = x // same\n\t_ = x")

	assign := s.Find(t, func(n ast.Node) bool {
		a, ok := n.(*ast.AssignStmt)
		return ok && a.Tok.String() == "=" && a.Lhs[0].(*ast.Ident).Name == "x"
	})
	st := New(assign, s.Oracle)

	if st.Kind() != tree.KindAssignStmt {
		t.Errorf("Kind() = %v, want AssignStmt", st.Kind())
	}

	path := st.Path()
	if len(path) != 4 || path[0] != s.File || path[3] != st.Node() {
		t.Errorf("Path() = %v, want file, func, block, statement", path)
	}

	parent, ok := st.Parent()
	if !ok || parent.Kind() != tree.KindBlockStmt {
		t.Errorf("Parent() = %v, want block", parent.Node())
	}

	fn, ok := st.Enclosing(tree.KindFuncDecl, tree.KindFuncLit)
	if !ok || fn.Kind() != tree.KindFuncDecl {
		t.Errorf("Enclosing() = %v, want function", fn.Node())
	}

	if _, ok := New(s.Root(), s.Oracle).Parent(); ok {
		t.Error("File must not have a parent")
	}

	if f, ok := st.File(); !ok || f != s.File {
		t.Error("File() must return the enclosing file")
	}

	if got := st.Source(st.Node()); got != "x = x" {
		t.Errorf("Source() = %q, want %q", got, "x = x")
	}

	r := st.DeletionRange(st.Node())
	if got := string(s.Oracle.Source()[r.Start:r.End]); got != "\tx = x // same\n" {
		t.Errorf("DeletionRange() covers %q", got)
	}
}
