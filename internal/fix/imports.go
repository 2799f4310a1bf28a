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
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strconv"
)

// ImportEdits computes line-level edits that add and remove imports in src.
// Only the package clause and import declarations of src are parsed.
func ImportEdits(src []byte, adds, removes []string) ([]Edit, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "", src, parser.ImportsOnly|parser.ParseComments)
	if err != nil {
		return nil, err
	}

	tok := fset.File(f.FileStart)
	l := lines{src: src, tok: tok}

	existing := make(map[string]*ast.ImportSpec, len(f.Imports))
	for _, spec := range f.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err == nil {
			existing[path] = spec
		}
	}

	var edits []Edit

	removed := make(map[*ast.ImportSpec]bool, len(removes))

	for _, path := range removes {
		spec, ok := existing[path]
		if !ok {
			continue
		}

		removed[spec] = true

		decl := importDecl(f, spec)

		var start, end token.Pos
		if decl != nil && !decl.Lparen.IsValid() {
			start, end = decl.Pos(), decl.End()
			if decl.Doc != nil {
				start = decl.Doc.Pos()
			}
		} else {
			start, end = spec.Pos(), spec.End()
			if spec.Doc != nil {
				start = spec.Doc.Pos()
			}

			if spec.Comment != nil {
				end = spec.Comment.End()
			}
		}

		edits = append(edits, Edit{Range: Range{l.lineStart(start), l.lineEnd(end)}})
	}

	for _, path := range adds {
		if _, ok := existing[path]; ok {
			continue
		}

		edits = append(edits, insertImport(f, l, path, removed))
	}

	return disjoint(edits), nil
}

// insertImport returns the insertion of path. Specs being removed are never used as anchor,
// since their removal range may start on an earlier comment line.
func insertImport(f *ast.File, l lines, path string, removed map[*ast.ImportSpec]bool) Edit {
	quoted := strconv.Quote(path)

	var lastDecl *ast.GenDecl

	for _, d := range f.Decls {
		decl, ok := d.(*ast.GenDecl)
		if !ok || decl.Tok != token.IMPORT {
			continue
		}

		lastDecl = decl
		if !decl.Lparen.IsValid() {
			continue
		}

		// Keep the first group sorted.
		for _, spec := range decl.Specs {
			s := spec.(*ast.ImportSpec)
			if removed[s] {
				continue
			}

			if s.Path.Value > quoted {
				return Edit{Range: point(l.lineStart(s.Pos())), Text: "\t" + quoted + "\n"}
			}

			if l.blankLineAfter(s.End()) {
				return Edit{Range: point(l.lineEnd(s.End())), Text: "\t" + quoted + "\n"}
			}
		}

		return Edit{Range: point(l.lineStart(decl.Rparen)), Text: "\t" + quoted + "\n"}
	}

	if lastDecl != nil {
		return Edit{Range: point(l.lineEnd(lastDecl.End())), Text: "import " + quoted + "\n"}
	}

	return Edit{Range: point(l.lineEnd(f.Name.End())), Text: "\nimport " + quoted + "\n"}
}

// disjoint sorts edits and drops those overlapping an earlier one.
func disjoint(edits []Edit) []Edit {
	slices.SortStableFunc(edits, compareEdits)

	kept := edits[:0]
	for _, e := range edits {
		if slices.ContainsFunc(kept, func(k Edit) bool { return k.Overlaps(e.Range) }) {
			continue
		}

		kept = append(kept, e)
	}

	return kept
}

func importDecl(f *ast.File, spec *ast.ImportSpec) *ast.GenDecl {
	for _, d := range f.Decls {
		if decl, ok := d.(*ast.GenDecl); ok && slices.Contains(decl.Specs, ast.Spec(spec)) {
			return decl
		}
	}

	return nil
}

func point(offset int) Range { return Range{offset, offset} }

// lines maps positions to line boundaries in src.
type lines struct {
	src []byte
	tok *token.File
}

// lineStart returns the offset of the first byte of the line containing pos.
func (l lines) lineStart(pos token.Pos) int {
	off := l.tok.Offset(pos)

	return bytes.LastIndexByte(l.src[:off], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line containing the position before pos.
func (l lines) lineEnd(pos token.Pos) int {
	off := l.tok.Offset(pos)

	i := bytes.IndexByte(l.src[off:], '\n')
	if i < 0 {
		return len(l.src)
	}

	return off + i + 1
}

// blankLineAfter reports whether the line following pos is empty.
func (l lines) blankLineAfter(pos token.Pos) bool {
	next := l.lineEnd(pos)
	rest := l.src[next:]

	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		return false
	}

	return len(bytes.TrimSpace(rest[:i])) == 0
}
