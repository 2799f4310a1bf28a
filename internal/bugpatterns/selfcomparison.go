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

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// SelfComparison finds comparisons of an expression with itself.
var SelfComparison = &registry.Detector{
	Name:     "SelfComparison",
	AltNames: []string{"SelfEquals"},
	Summary:  "An expression is compared to itself",
	Explanation: "Comparing an expression to itself always yields the same result. " +
		"Floating-point operands are exempt, since x != x is the usual test for NaN.",
	Link:     linkBase + "SelfComparison",
	Category: registry.CategoryStdlib,
	Severity: report.SeverityError,
	Maturity: level.Mature,
	Kinds:    []tree.Kind{tree.KindBinaryExpr},
	Matcher: matcher.AllOf(
		matcher.Operator(token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ),
		selfCompared,
	),
	Describe: describeSelfComparison,
}

func selfCompared(n ast.Node, s state.State) bool {
	b, ok := n.(*ast.BinaryExpr)
	if !ok || !matcher.SameExpr(s.Oracle(), b.X, b.Y) {
		return false
	}

	t := s.Oracle().TypeOf(b.X)

	return t != nil && reflexive(t, nil)
}

// reflexive reports whether every value of t compares equal to itself.
func reflexive(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return true
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Info()&(types.IsFloat|types.IsComplex) == 0 && u.Kind() != types.UntypedNil

	case *types.Pointer, *types.Chan:
		return true

	case *types.Array:
		return reflexive(u.Elem(), seen)

	case *types.Struct:
		if seen == nil {
			seen = make(map[types.Type]bool)
		}

		seen[t] = true

		for f := range u.Fields() {
			if !reflexive(f.Type(), seen) {
				return false
			}
		}

		return true
	}

	// interfaces and type parameters may hold floating-point values
	return false
}

func describeSelfComparison(d *registry.Detector, n ast.Node, s state.State) report.Description {
	b := n.(*ast.BinaryExpr)

	result := "true"
	switch b.Op {
	case token.NEQ, token.LSS, token.GTR:
		result = "false"
	}

	f := fix.New().Replace(s.Range(b), result).Build()

	return d.Finding(n, d.Summary+"; this is always "+result, f)
}
