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

package matcher

import (
	"go/ast"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// MatchMode selects how a child-set matcher combines its children.
type MatchMode uint8

//go:generate go tool stringer -type MatchMode
const (
	// AtLeastOne requires some child of the designated kind to match.
	AtLeastOne MatchMode = iota
	// AllChildren requires every child of the designated kind to match, vacuously true without children.
	AllChildren
)

// Children applies m to the direct children of kind k.
func Children(mode MatchMode, k tree.Kind, m Matcher) Matcher {
	return childSet(mode, func(c inspector.Cursor) iter.Seq[inspector.Cursor] {
		return func(yield func(inspector.Cursor) bool) {
			for child := range c.Children() {
				if tree.KindOf(child.Node()) == k && !yield(child) {
					return
				}
			}
		}
	}, m)
}

// StructFields applies m to the fields of a struct type or a type declaration of a struct.
func StructFields(mode MatchMode, m Matcher) Matcher {
	return childSet(mode, structFields, m)
}

func childSet(mode MatchMode, children func(inspector.Cursor) iter.Seq[inspector.Cursor], m Matcher) Matcher {
	return func(_ ast.Node, s state.State) bool {
		for child := range children(s.Cursor()) {
			cs := s.At(child)

			switch matched := m(cs.Node(), cs); {
			case mode == AtLeastOne && matched:
				return true
			case mode == AllChildren && !matched:
				return false
			}
		}

		return mode == AllChildren
	}
}

// structFields yields the field cursors of a struct.
func structFields(c inspector.Cursor) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		if _, ok := c.Node().(*ast.TypeSpec); ok {
			c = c.ChildAt(edge.TypeSpec_Type, -1)
		}

		st, ok := c.Node().(*ast.StructType)
		if !ok || st.Fields == nil {
			return
		}

		list := c.ChildAt(edge.StructType_Fields, -1)
		for i := range st.Fields.List {
			if !yield(list.ChildAt(edge.FieldList_List, i)) {
				return
			}
		}
	}
}
