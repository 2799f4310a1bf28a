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

// Package state provides the analysis context handed to matchers and detectors.
package state

import (
	"go/ast"
	"go/token"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugscan/internal/astutil"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/tree"
)

// State is the analysis context at one position of the traversal.
// It is a small value and cheap to copy.
type State struct {
	cursor inspector.Cursor
	oracle oracle.Oracle
}

// New returns the [State] at cursor c.
func New(c inspector.Cursor, o oracle.Oracle) State {
	return State{cursor: c, oracle: o}
}

// Cursor returns the traversal position.
func (s State) Cursor() inspector.Cursor { return s.cursor }

// Node returns the current node, nil at the root.
func (s State) Node() ast.Node { return s.cursor.Node() }

// Kind returns the kind of the current node.
func (s State) Kind() tree.Kind { return tree.KindOf(s.cursor.Node()) }

// Oracle returns the symbol and type oracle.
func (s State) Oracle() oracle.Oracle { return s.oracle }

// At returns the state for another position in the same tree.
func (s State) At(c inspector.Cursor) State {
	return State{cursor: c, oracle: s.oracle}
}

// Parent returns the state of the syntactic parent. It returns false at a file or the root.
func (s State) Parent() (State, bool) {
	if s.cursor.Node() == nil {
		return State{}, false
	}

	p := s.cursor.Parent()
	if p.Node() == nil {
		return State{}, false
	}

	return s.At(p), true
}

// Enclosing returns the state of the innermost strict ancestor of one of the given kinds.
func (s State) Enclosing(kinds ...tree.Kind) (State, bool) {
	for p, ok := s.Parent(); ok; p, ok = p.Parent() {
		if slices.Contains(kinds, p.Kind()) {
			return p, true
		}
	}

	return State{}, false
}

// Path returns the nodes from the file down to the current node.
func (s State) Path() []ast.Node {
	var path []ast.Node
	for c := range s.cursor.Enclosing() {
		path = append(path, c.Node())
	}

	slices.Reverse(path)

	return path
}

// Range returns the byte range of n in the current file.
func (s State) Range(n ast.Node) fix.Range {
	return fix.Range{Start: s.oracle.StartOffset(n), End: s.oracle.EndOffset(n)}
}

// Source returns the source text of n.
func (s State) Source(n ast.Node) string {
	r := s.Range(n)

	return s.oracle.SourceText(r.Start, r.End)
}

// File returns the file containing the current node.
func (s State) File() (*ast.File, bool) {
	for c := range s.cursor.Enclosing((*ast.File)(nil)) {
		f, ok := c.Node().(*ast.File)

		return f, ok
	}

	return nil, false
}

// DeletionRange returns the range removing the statement or declaration n with its comments,
// covering whole lines when nothing else shares them.
func (s State) DeletionRange(n ast.Node) fix.Range {
	pos, end := astutil.StatementBounds(n)
	r := s.Range(span{pos, end})

	f, ok := s.File()
	if !ok || r.Start < 0 {
		return r
	}

	before := s.oracle.SourceText(0, r.Start)
	after := s.oracle.SourceText(r.End, s.oracle.EndOffset(span{f.FileEnd, f.FileEnd}))

	return fix.ExpandLines(before, after, r)
}

// span is a synthetic node covering a range of positions.
type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }
