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

package annotation

import (
	"go/ast"
	"regexp"
	"strings"
)

// All suppresses every detector.
const All = "all"

// Linter is the name the tool answers to in nolint directives.
const Linter = "bugscan"

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// NoLint parses a `//nolint:a,b` directive. The linter name itself and "all" are reported as [All].
func NoLint(text string) ([]string, bool) {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return nil, false
	}

	var ids []string

	// Parse comma-separated linter list
	for id := range strings.SplitSeq(matches[1], ",") {
		id = strings.TrimSpace(id)
		switch strings.ToLower(id) {
		case "":
			continue

		case All, Linter:
			id = All
		}

		ids = append(ids, id)
	}

	return ids, len(ids) > 0
}

// Suppressed returns the detector identifiers a comment group suppresses,
// from SuppressWarnings annotations and nolint directives.
func Suppressed(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}

	var ids []string

	for _, c := range cg.List {
		if nolint, ok := NoLint(c.Text); ok {
			ids = append(ids, nolint...)
			continue
		}

		a, ok, err := Parse(c.Text)
		if err != nil || !ok || a.Name != SuppressWarnings {
			continue
		}

		ids = append(ids, a.Value()...)
	}

	return ids
}
