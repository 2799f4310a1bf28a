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

package astutil

import (
	"go/ast"
	"go/token"
	"slices"

	"fillmore-labs.com/bugscan/internal/annotation"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil || fset == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// File returns the syntax tree.
func (c CurrentFile) File() *ast.File { return c.file }

// Handle returns the position information of the file.
func (c CurrentFile) Handle() *token.File { return c.handle }

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment returns the identifiers of a //nolint directive trailing the line of pos.
func (c CurrentFile) NoLintComment(pos token.Pos) []string {
	if c.file == nil || !pos.IsValid() {
		return nil
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return nil
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return nil // not on this line
	}

	ids, _ := annotation.NoLint(comment.Text)

	return ids
}

// NoLint reports whether a trailing //nolint directive on the line of pos names one of the given identifiers.
func (c CurrentFile) NoLint(pos token.Pos, names ...string) bool {
	ids := c.NoLintComment(pos)
	if len(ids) == 0 {
		return false
	}

	return slices.ContainsFunc(ids, func(id string) bool {
		return id == annotation.All || slices.ContainsFunc(names, func(n string) bool { return equalFold(n, id) })
	})
}
