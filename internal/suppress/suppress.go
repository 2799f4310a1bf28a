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

// Package suppress tracks the detector identifiers disabled at a position of the syntax tree.
package suppress

import (
	"go/ast"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/bugscan/internal/annotation"
	"fillmore-labs.com/bugscan/internal/state"
)

// Set is an immutable set of suppressed identifiers. Identifiers compare case-insensitively.
//
// The zero value and nil are empty sets.
type Set struct {
	ids map[string]struct{}
}

// Empty is the set at the root of the tree.
var Empty = &Set{}

// Len returns the number of suppressed identifiers.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.ids)
}

// Contains reports whether id is suppressed.
func (s *Set) Contains(id string) bool {
	if s == nil {
		return false
	}

	_, ok := s.ids[strings.ToLower(id)]

	return ok
}

// Suppresses reports whether any of the names, or everything, is suppressed.
func (s *Set) Suppresses(names ...string) bool {
	if s.Len() == 0 {
		return false
	}

	if s.Contains(annotation.All) {
		return true
	}

	return slices.ContainsFunc(names, s.Contains)
}

// IDs returns the suppressed identifiers in sorted order.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(s.ids))
}

// Extend returns the union of s and ids. When ids adds nothing, s itself is returned.
func (s *Set) Extend(ids ...string) *Set {
	var ext *Set

	for _, id := range ids {
		if id == "" || s.Contains(id) || ext != nil && ext.Contains(id) {
			continue
		}

		if ext == nil {
			ext = &Set{ids: make(map[string]struct{}, s.Len()+len(ids))}
			if s != nil {
				maps.Copy(ext.ids, s.ids)
			}
		}

		ext.ids[strings.ToLower(id)] = struct{}{}
	}

	if ext == nil {
		return s
	}

	return ext
}

// ForNode returns the set visible inside the node of st.
//
// Only declarations carry suppressions: identifiers come from SuppressWarnings annotations
// of the declared symbol and from nolint directives in the doc comment.
func ForNode(s *Set, st state.State) *Set {
	n := st.Node()
	if !st.Kind().Declares() {
		return s
	}

	if ids := annotation.Suppressed(docOf(n)); len(ids) > 0 {
		s = s.Extend(ids...)
	}

	o := st.Oracle()
	for _, a := range o.AnnotationsOf(o.SymbolOf(n)) {
		if a.Name == annotation.SuppressWarnings {
			s = s.Extend(a.Value()...)
		}
	}

	return s
}

// docOf returns the doc comment of a declaration.
func docOf(n ast.Node) *ast.CommentGroup {
	switch n := n.(type) {
	case *ast.File:
		return n.Doc
	case *ast.FuncDecl:
		return n.Doc
	case *ast.GenDecl:
		return n.Doc
	case *ast.TypeSpec:
		return n.Doc
	case *ast.ValueSpec:
		return n.Doc
	case *ast.Field:
		return n.Doc
	default:
		return nil
	}
}
