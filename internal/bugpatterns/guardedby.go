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
	"slices"
	"strings"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/annotation"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// GuardedBy names the field holding the lock that protects an annotated field.
const GuardedBy = "GuardedBy"

// GuardedByUnknownField finds GuardedBy annotations naming a lock that is not a field of the struct.
var GuardedByUnknownField = &registry.Detector{
	Name:    "GuardedByUnknownField",
	Summary: "GuardedBy refers to an unknown field",
	Explanation: "The lock named in @GuardedBy must be a field of the same struct, " +
		"for example //@GuardedBy(\"mu\") with a sibling field mu sync.Mutex.",
	Link:     linkBase + "GuardedByUnknownField",
	Category: registry.CategoryConcurrency,
	Severity: report.SeverityError,
	Maturity: level.Mature,
	Kinds:    []tree.Kind{tree.KindField},
	Matcher: func(n ast.Node, s state.State) bool {
		_, ok := unknownGuard(n, s)

		return ok
	},
	Describe: func(d *registry.Detector, n ast.Node, s state.State) report.Description {
		guard, _ := unknownGuard(n, s)

		return d.Finding(n, "GuardedBy refers to unknown field '"+guard+"'", nil)
	},
}

// unknownGuard returns the first guard of the field at s that names no field of its struct.
func unknownGuard(n ast.Node, s state.State) (string, bool) {
	st, ok := structOf(s)
	if !ok {
		return "", false
	}

	o := s.Oracle()

	a, ok := annotation.Find(o.AnnotationsOf(o.SymbolOf(n)), GuardedBy)
	if !ok {
		return "", false
	}

	fields := fieldNames(st)

	for _, guard := range a.Value() {
		// mu.RWMutex or mu.Lock name a path starting at the field
		head, _, _ := strings.Cut(guard, ".")
		if !slices.Contains(fields, head) {
			return guard, true
		}
	}

	return "", false
}

func fieldNames(st *ast.StructType) []string {
	var names []string

	for _, f := range st.Fields.List {
		for _, id := range f.Names {
			names = append(names, id.Name)
		}

		if len(f.Names) == 0 {
			t := f.Type
			if star, ok := t.(*ast.StarExpr); ok {
				t = star.X
			}

			switch t := t.(type) {
			case *ast.Ident:
				names = append(names, t.Name)
			case *ast.SelectorExpr:
				names = append(names, t.Sel.Name)
			}
		}
	}

	return names
}
