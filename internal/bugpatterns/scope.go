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
	"strings"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/annotation"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// Singleton is the scope annotation for a single instance per injector.
const Singleton = "Singleton"

// MoreThanOneScopeAnnotation finds types annotated with more than one scope.
var MoreThanOneScopeAnnotation = &registry.Detector{
	Name:     "MoreThanOneScopeAnnotation",
	AltNames: []string{"MultipleScopeAnnotations"},
	Summary:  "A type can be annotated with at most one scope annotation",
	Explanation: "Scope annotations like @Singleton or @RequestScoped tell the injector how long " +
		"instances live. A type with several of them has no well-defined lifetime.",
	Link:     linkBase + "MoreThanOneScopeAnnotation",
	Category: registry.CategoryInject,
	Severity: report.SeverityError,
	Maturity: level.Mature,
	Kinds:    []tree.Kind{tree.KindTypeSpec},
	Matcher: func(n ast.Node, s state.State) bool {
		return len(scopeAnnotations(n, s)) > 1
	},
	Describe: describeMoreThanOneScopeAnnotation,
}

// isScope reports whether name is a scope annotation: Singleton or any name ending in Scoped.
func isScope(name string) bool {
	return name == Singleton || len(name) > len("Scoped") && strings.HasSuffix(name, "Scoped")
}

func scopeAnnotations(n ast.Node, s state.State) []annotation.Annotation {
	o := s.Oracle()

	var scopes []annotation.Annotation
	for _, a := range o.AnnotationsOf(o.SymbolOf(n)) {
		if isScope(a.Name) {
			scopes = append(scopes, a)
		}
	}

	return scopes
}

func describeMoreThanOneScopeAnnotation(d *registry.Detector, n ast.Node, s state.State) report.Description {
	scopes := scopeAnnotations(n, s)

	names := make([]string, 0, len(scopes))
	for _, a := range scopes {
		names = append(names, "@"+a.Name)
	}

	b := fix.New()
	for _, a := range scopes[1:] {
		if a.Comment != nil {
			b.Delete(s.DeletionRange(a.Comment))
		}
	}

	msg := "Type " + n.(*ast.TypeSpec).Name.Name + " has more than one scope annotation: " + report.JoinNames(names)

	return d.Finding(n, msg, b.Build())
}
