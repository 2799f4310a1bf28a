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

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

var timeType = matcher.NamedType("time", "Time")

// timeMethods return a modified copy of their receiver.
var timeMethods = matcher.InstanceMethod(timeType,
	"Add", "AddDate", "In", "Local", "Round", "Truncate", "UTC",
)

// pureFunctions have no effect besides their results.
var pureFunctions = matcher.AnyOf(
	matcher.StaticFunction("strings",
		"Clone", "Fields", "Join", "Repeat", "Replace", "ReplaceAll", "Split", "SplitN",
		"Title", "ToLower", "ToTitle", "ToUpper", "ToValidUTF8", "Trim", "TrimFunc",
		"TrimLeft", "TrimPrefix", "TrimRight", "TrimSpace", "TrimSuffix",
	),
	matcher.StaticFunction("bytes",
		"Clone", "Fields", "Join", "Repeat", "Replace", "ReplaceAll", "Split", "SplitN",
		"ToLower", "ToTitle", "ToUpper", "ToValidUTF8", "Trim", "TrimFunc",
		"TrimLeft", "TrimPrefix", "TrimRight", "TrimSpace", "TrimSuffix",
	),
	matcher.StaticFunction("errors", "New"),
	matcher.StaticFunction("fmt", "Errorf", "Sprint", "Sprintf", "Sprintln"),
	matcher.StaticFunction("slices", "Clip", "Clone"),
	slicesInPlace,
	timeMethods,
)

// slicesInPlace modify the elements of their argument, so dropping the call changes behavior.
var slicesInPlace = matcher.StaticFunction("slices",
	"Compact", "CompactFunc", "Delete", "DeleteFunc", "Grow", "Insert", "Replace",
)

// ReturnValueIgnored finds calls whose only effect is their result, used as statements.
var ReturnValueIgnored = &registry.Detector{
	Name:    "ReturnValueIgnored",
	Summary: "Return value of this method must be used",
	Explanation: "The called function does not modify its arguments or receiver; it returns a new value. " +
		"Ignoring the result makes the call useless, which usually means the result was " +
		"meant to be assigned.",
	Link:     linkBase + "ReturnValueIgnored",
	Category: registry.CategoryStdlib,
	Severity: report.SeverityError,
	Maturity: level.Mature,
	Kinds:    []tree.Kind{tree.KindCallExpr},
	Matcher:  matcher.AllOf(matcher.ParentNode(matcher.KindIs(tree.KindExprStmt)), pureFunctions),
	Describe: describeReturnValueIgnored,
}

func describeReturnValueIgnored(d *registry.Detector, n ast.Node, s state.State) report.Description {
	call := n.(*ast.CallExpr)

	if timeMethods(n, s) {
		if recv, ok := assignableReceiver(call, s); ok {
			f := fix.New().Insert(s.Range(call).Start, recv+" = ").Build()

			return d.Finding(n, d.Summary+"; did you mean to assign it to "+recv+"?", f)
		}
	}

	stmt, _ := s.Parent()
	if !inStatementList(stmt) || slicesInPlace(n, s) || argumentsHaveSideEffects(call) {
		return d.Finding(n, d.Summary, nil)
	}

	b := fix.New().Delete(stmt.DeletionRange(stmt.Node()))

	// Drop imports only referenced by the deleted call.
	if file, ok := s.File(); ok {
		inFile := packageUses(file, s.Oracle())
		for path, count := range packageUses(call, s.Oracle()) {
			if inFile[path] == count && plainImport(file, path) {
				b.RemoveImport(path)
			}
		}
	}

	return d.Finding(n, d.Summary, b.Build())
}

// assignableReceiver returns the assignment target for the result of a method call
// on a variable or field of type time.Time or *time.Time.
func assignableReceiver(call *ast.CallExpr, s state.State) (string, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	x := ast.Unparen(sel.X)
	if hasSideEffects(x) || !matcher.SameExpr(s.Oracle(), x, x) {
		return "", false
	}

	o := s.Oracle()
	t, want := o.TypeOf(x), timeType.Resolve(o)

	switch {
	case want == nil || t == nil:
		return "", false

	case o.IsSameType(t, want):
		return s.Source(x), true

	case o.IsSameType(t, types.NewPointer(want)):
		return "*" + s.Source(x), true

	default:
		return "", false
	}
}

func argumentsHaveSideEffects(call *ast.CallExpr) bool {
	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok && hasSideEffects(sel.X) {
		return true
	}

	for _, arg := range call.Args {
		if hasSideEffects(arg) {
			return true
		}
	}

	return false
}
