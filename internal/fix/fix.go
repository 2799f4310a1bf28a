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

// Package fix models suggested fixes as byte-offset text edits and applies batches of them without overlap.
package fix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrOverlappingEdits is the panic value of [Builder.Build] for a fix whose edits overlap.
var ErrOverlappingEdits = errors.New("overlapping edits in suggested fix")

// Range is a half-open interval of byte offsets in a source file.
type Range struct {
	Start, End int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Overlaps reports whether two ranges share any byte or an insertion point lies strictly inside the other range.
// Two insertions never overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Edit replaces the bytes in Range with Text.
type Edit struct {
	Range
	Text string
}

// Import is a line-level import directive.
type Import struct {
	Path   string
	Remove bool
}

// SuggestedFix is an immutable set of non-overlapping edits of one file plus import directives.
type SuggestedFix struct {
	edits   []Edit
	imports []Import
}

// Edits returns the edits ordered by position.
func (f *SuggestedFix) Edits() []Edit {
	if f == nil {
		return nil
	}

	return slices.Clone(f.edits)
}

// Imports returns the import directives.
func (f *SuggestedFix) Imports() []Import {
	if f == nil {
		return nil
	}

	return slices.Clone(f.imports)
}

// Empty reports whether the fix does nothing.
func (f *SuggestedFix) Empty() bool {
	return f == nil || len(f.edits) == 0 && len(f.imports) == 0
}

// Builder accumulates the edits of a [SuggestedFix].
type Builder struct {
	edits   []Edit
	imports []Import
}

// New returns an empty [Builder].
func New() *Builder { return &Builder{} }

// Replace replaces the bytes in r with text.
func (b *Builder) Replace(r Range, text string) *Builder {
	b.edits = append(b.edits, Edit{Range: r, Text: text})
	return b
}

// Insert inserts text at offset pos.
func (b *Builder) Insert(pos int, text string) *Builder {
	return b.Replace(Range{pos, pos}, text)
}

// Delete removes the bytes in r.
func (b *Builder) Delete(r Range) *Builder {
	return b.Replace(r, "")
}

// AddImport makes sure the file imports path.
func (b *Builder) AddImport(path string) *Builder {
	b.imports = append(b.imports, Import{Path: path})
	return b
}

// RemoveImport removes the import of path from the file.
func (b *Builder) RemoveImport(path string) *Builder {
	b.imports = append(b.imports, Import{Path: path, Remove: true})
	return b
}

// Build returns the accumulated fix. It panics with [ErrOverlappingEdits]
// when two edits overlap or an edit has a negative or inverted range.
func (b *Builder) Build() *SuggestedFix {
	edits := slices.Clone(b.edits)
	slices.SortStableFunc(edits, compareEdits)

	for i, e := range edits {
		if e.Start < 0 || e.End < e.Start {
			panic(fmt.Errorf("%w: invalid range [%d,%d)", ErrOverlappingEdits, e.Start, e.End))
		}

		if i > 0 && edits[i-1].Overlaps(e.Range) {
			panic(fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlappingEdits,
				edits[i-1].Start, edits[i-1].End, e.Start, e.End))
		}
	}

	return &SuggestedFix{edits: edits, imports: slices.Clone(b.imports)}
}

func compareEdits(a, b Edit) int {
	return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
}
