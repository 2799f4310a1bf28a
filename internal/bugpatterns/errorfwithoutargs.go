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
	"go/types"
	"strconv"
	"strings"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// ErrorfWithoutArgs finds fmt.Errorf calls with a constant message and nothing to format.
var ErrorfWithoutArgs = &registry.Detector{
	Name:        "ErrorfWithoutArgs",
	Summary:     "fmt.Errorf called without formatting arguments",
	Explanation: "A constant error message does not need formatting. Use errors.New instead.",
	Link:        linkBase + "ErrorfWithoutArgs",
	Category:    registry.CategoryStyle,
	Severity:    report.SeverityWarning,
	Maturity:    level.Mature,
	Kinds:       []tree.Kind{tree.KindCallExpr},
	Matcher: matcher.AllOf(
		matcher.StaticFunction("fmt", "Errorf"),
		matcher.ArgumentCount(1),
		matcher.Argument(0, matcher.AllOf(matcher.StringLiteral(), noVerbs)),
	),
	Describe: describeErrorfWithoutArgs,
}

func noVerbs(n ast.Node, _ state.State) bool {
	lit, ok := ast.Unparen(n.(ast.Expr)).(*ast.BasicLit)
	if !ok {
		return false
	}

	s, err := strconv.Unquote(lit.Value)

	return err == nil && !strings.Contains(s, "%")
}

func describeErrorfWithoutArgs(d *registry.Detector, n ast.Node, s state.State) report.Description {
	call := n.(*ast.CallExpr)

	file, ok := s.File()
	if !ok || errorsShadowed(file, s.Oracle().Package()) {
		return d.Finding(n, d.Summary, nil)
	}

	b := fix.New().
		Replace(s.Range(call.Fun), "errors.New").
		AddImport("errors")

	if packageUses(file, s.Oracle())["fmt"] == 1 && plainImport(file, "fmt") {
		b.RemoveImport("fmt")
	}

	return d.Finding(n, d.Summary+"; use errors.New", b.Build())
}

// errorsShadowed reports whether the name errors refers to something other than the standard package.
func errorsShadowed(f *ast.File, pkg *types.Package) bool {
	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := path[strings.LastIndexByte(path, '/')+1:]
		if spec.Name != nil {
			name = spec.Name.Name
		}

		if path == "errors" {
			if name != "errors" {
				return true
			}

			continue
		}

		if name == "errors" || name == "." {
			return true
		}
	}

	return pkg != nil && pkg.Scope().Lookup("errors") != nil
}

// plainImport reports whether path is imported exactly once under its own name.
func plainImport(f *ast.File, path string) bool {
	quoted, count := strconv.Quote(path), 0

	for _, spec := range f.Imports {
		if spec.Path.Value != quoted {
			continue
		}

		if spec.Name != nil {
			return false
		}

		count++
	}

	return count == 1
}

// packageUses counts the qualified references to imported packages below n, by package path.
func packageUses(n ast.Node, o oracle.Oracle) map[string]int {
	uses := make(map[string]int)

	ast.Inspect(n, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if pkg, ok := o.SymbolOf(sel.X).(*types.PkgName); ok {
			uses[pkg.Imported().Path()]++
		}

		return true
	})

	return uses
}
