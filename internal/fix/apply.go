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

package fix

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// Skipped is a fix that was not applied.
type Skipped struct {
	Index  int
	Reason string
}

// Result reports which fixes [Apply] used, by their index in the input.
type Result struct {
	Applied []int
	Skipped []Skipped
}

type candidate struct {
	index int
	fix   *SuggestedFix
}

// Apply rewrites src with a batch of fixes for the same file.
//
// Fixes are considered in the order of their first edit, ties broken by input order.
// A fix overlapping an already accepted fix is skipped as a whole. Identical edits
// of different fixes are applied once. Import directives of the accepted fixes are
// applied after all range edits. Nil and empty fixes are ignored.
func Apply(src []byte, fixes []*SuggestedFix) ([]byte, Result) {
	var (
		result     Result
		candidates = make([]candidate, 0, len(fixes))
	)

	for i, f := range fixes {
		if f.Empty() {
			continue
		}

		candidates = append(candidates, candidate{index: i, fix: f})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(firstStart(a.fix), firstStart(b.fix))
	})

	var (
		accepted []Edit
		owners   []int
		imports  []Import
	)

candidates:
	for _, c := range candidates {
		var fresh []Edit

		for _, e := range c.fix.edits {
			if e.End > len(src) {
				result.Skipped = append(result.Skipped, Skipped{c.index, fmt.Sprintf("edit [%d,%d) out of range", e.Start, e.End)})
				continue candidates
			}

			if j, dup := conflict(accepted, e); j >= 0 {
				if dup {
					continue
				}

				result.Skipped = append(result.Skipped, Skipped{c.index, fmt.Sprintf("conflicts with fix %d", owners[j])})

				continue candidates
			}

			fresh = append(fresh, e)
		}

		for _, e := range fresh {
			accepted = append(accepted, e)
			owners = append(owners, c.index)
		}

		imports = append(imports, c.fix.imports...)
		result.Applied = append(result.Applied, c.index)
	}

	out := applyEdits(src, accepted)

	if adds, removes := MergeImports(imports); len(adds) > 0 || len(removes) > 0 {
		if edits, err := ImportEdits(out, adds, removes); err == nil {
			out = applyEdits(out, edits)
		}
	}

	slices.Sort(result.Applied)
	slices.SortFunc(result.Skipped, func(a, b Skipped) int { return cmp.Compare(a.Index, b.Index) })

	return out, result
}

func firstStart(f *SuggestedFix) int {
	if len(f.edits) == 0 {
		return -1
	}

	return f.edits[0].Start
}

// conflict returns the index of the accepted edit e overlaps or duplicates, or -1.
func conflict(accepted []Edit, e Edit) (int, bool) {
	for j, a := range accepted {
		if a == e {
			return j, true
		}

		if a.Overlaps(e.Range) {
			return j, false
		}
	}

	return -1, false
}

// applyEdits rewrites src in a single left-to-right pass.
// An edit starting before the end of its predecessor is dropped.
func applyEdits(src []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return src
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, compareEdits)

	var out bytes.Buffer

	size := len(src)
	for _, e := range sorted {
		size += len(e.Text) - e.Len()
	}

	out.Grow(size)

	last := 0
	for _, e := range sorted {
		if e.Start < last {
			continue
		}

		out.Write(src[last:e.Start]) // ignore error
		out.WriteString(e.Text)      // ignore error
		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes()
}

// MergeImports splits import directives into sorted paths to add and remove, cancelling paths that are both.
func MergeImports(imports []Import) (adds, removes []string) {
	added, removed := map[string]bool{}, map[string]bool{}

	for _, imp := range imports {
		if imp.Remove {
			removed[imp.Path] = true
		} else {
			added[imp.Path] = true
		}
	}

	for path := range added {
		if !removed[path] {
			adds = append(adds, path)
		}
	}

	for path := range removed {
		if !added[path] {
			removes = append(removes, path)
		}
	}

	slices.Sort(adds)
	slices.Sort(removes)

	return adds, removes
}
