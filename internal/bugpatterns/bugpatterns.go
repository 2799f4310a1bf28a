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

// Package bugpatterns contains the built-in detectors.
package bugpatterns

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/state"
)

const linkBase = "https://pkg.go.dev/fillmore-labs.com/bugscan/internal/bugpatterns#"

// All returns the built-in detectors in registration order.
func All() []*registry.Detector {
	return []*registry.Detector{
		SelfAssignment,
		SelfComparison,
		ReturnValueIgnored,
		ErrorfWithoutArgs,
		ImmutableExportedField,
		GuardedByUnknownField,
		MoreThanOneScopeAnnotation,
	}
}

// inStatementList reports whether the statement at s can be removed without breaking its parent.
func inStatementList(s state.State) bool {
	p, ok := s.Parent()
	if !ok {
		return false
	}

	switch p.Node().(type) {
	case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause:
		return true
	}

	return false
}

// hasSideEffects reports whether evaluating e may call a function or receive from a channel.
func hasSideEffects(e ast.Expr) bool {
	found := false
	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr, *ast.FuncLit:
			found = true
		case *ast.UnaryExpr:
			found = found || n.Op == token.ARROW
		}

		return !found
	})

	return found
}

// structOf returns the struct type directly declaring the field at s.
func structOf(s state.State) (*ast.StructType, bool) {
	list, ok := s.Parent()
	if !ok {
		return nil, false
	}

	p, ok := list.Parent()
	if !ok {
		return nil, false
	}

	st, ok := p.Node().(*ast.StructType)

	return st, ok
}
