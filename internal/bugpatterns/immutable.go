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

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// Immutable marks types whose values must not change after construction.
const Immutable = "Immutable"

// ImmutableExportedField finds exported fields of types annotated as immutable.
var ImmutableExportedField = &registry.Detector{
	Name:    "ImmutableExportedField",
	Summary: "Immutable type has exported fields",
	Explanation: "Exported fields can be written from other packages, so a type annotated with " +
		"@Immutable should keep its fields unexported and provide accessors.",
	Link:     linkBase + "ImmutableExportedField",
	Category: registry.CategoryConcurrency,
	Severity: report.SeverityWarning,
	Maturity: level.Experimental,
	Kinds:    []tree.Kind{tree.KindTypeSpec},
	Matcher: matcher.AllOf(
		matcher.HasAnnotation(Immutable),
		matcher.StructFields(matcher.AtLeastOne, exportedField),
	),
	Describe: describeImmutableExportedField,
}

func exportedField(n ast.Node, _ state.State) bool {
	return len(exportedNames(n.(*ast.Field))) > 0
}

func exportedNames(f *ast.Field) []string {
	var names []string

	for _, id := range f.Names {
		if id.IsExported() {
			names = append(names, id.Name)
		}
	}

	if len(f.Names) == 0 {
		// embedded field
		t := f.Type
		if star, ok := t.(*ast.StarExpr); ok {
			t = star.X
		}

		switch t := t.(type) {
		case *ast.Ident:
			if t.IsExported() {
				names = append(names, t.Name)
			}

		case *ast.SelectorExpr:
			names = append(names, t.Sel.Name)
		}
	}

	return names
}

func describeImmutableExportedField(d *registry.Detector, n ast.Node, _ state.State) report.Description {
	spec := n.(*ast.TypeSpec)

	var names []string
	if st, ok := spec.Type.(*ast.StructType); ok {
		for _, f := range st.Fields.List {
			names = append(names, exportedNames(f)...)
		}
	}

	return d.Finding(n, "Immutable type "+spec.Name.Name+" exports "+report.JoinNames(names), nil)
}
