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

// Package matcher provides composable predicates over syntax nodes.
//
// A [Matcher] is a pure function of a node and its [state.State]. Matchers hold
// no per-node state and can be shared by all traversals.
package matcher

import (
	"go/ast"
	"slices"

	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// Matcher reports whether a node matches a pattern.
type Matcher func(n ast.Node, s state.State) bool

// Match applies m to the node of s.
func (m Matcher) Match(s state.State) bool { return m(s.Node(), s) }

// Any matches every node.
func Any(ast.Node, state.State) bool { return true }

// None matches no node.
func None(ast.Node, state.State) bool { return false }

// AllOf matches when every matcher matches, evaluated left to right until the first mismatch.
func AllOf(ms ...Matcher) Matcher {
	switch len(ms) {
	case 0:
		return Any
	case 1:
		return ms[0]
	}

	ms = slices.Clone(ms)

	return func(n ast.Node, s state.State) bool {
		for _, m := range ms {
			if !m(n, s) {
				return false
			}
		}

		return true
	}
}

// AnyOf matches when some matcher matches, evaluated left to right until the first match.
func AnyOf(ms ...Matcher) Matcher {
	switch len(ms) {
	case 0:
		return None
	case 1:
		return ms[0]
	}

	ms = slices.Clone(ms)

	return func(n ast.Node, s state.State) bool {
		for _, m := range ms {
			if m(n, s) {
				return true
			}
		}

		return false
	}
}

// Not inverts m.
func Not(m Matcher) Matcher {
	return func(n ast.Node, s state.State) bool { return !m(n, s) }
}

// KindIs matches nodes of one of the given kinds.
func KindIs(kinds ...tree.Kind) Matcher {
	kinds = slices.Clone(kinds)

	return func(n ast.Node, _ state.State) bool {
		return slices.Contains(kinds, tree.KindOf(n))
	}
}

// ParentNode applies m to the syntactic parent. It does not match at the top of the tree.
func ParentNode(m Matcher) Matcher {
	return func(_ ast.Node, s state.State) bool {
		p, ok := s.Parent()

		return ok && m(p.Node(), p)
	}
}

// Enclosing applies m to the innermost strict ancestor of kind k.
func Enclosing(k tree.Kind, m Matcher) Matcher {
	return func(_ ast.Node, s state.State) bool {
		p, ok := s.Enclosing(k)

		return ok && m(p.Node(), p)
	}
}
