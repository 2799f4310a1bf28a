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

package oracle

import (
	"go/ast"
	"go/token"
	"go/types"
	"sync"

	"fillmore-labs.com/bugscan/internal/annotation"
)

// Malformed is an annotation comment that failed to parse.
type Malformed struct {
	Comment *ast.Comment
	Err     error
}

// Package holds the type information shared by all files of a package.
type Package struct {
	fset  *token.FileSet
	pkg   *types.Package
	info  *types.Info
	files []*ast.File

	index func() annotationIndex
}

type annotationIndex struct {
	byObject  map[types.Object][]annotation.Annotation
	malformed []Malformed
}

// NewPackage creates a [Package] for a type-checked set of files.
func NewPackage(fset *token.FileSet, pkg *types.Package, info *types.Info, files []*ast.File) *Package {
	p := &Package{fset: fset, pkg: pkg, info: info, files: files}
	p.index = sync.OnceValue(p.buildIndex)

	return p
}

// Fset returns the file set positions are relative to.
func (p *Package) Fset() *token.FileSet { return p.fset }

// Info returns the type information of the package.
func (p *Package) Info() *types.Info { return p.info }

// Package returns the package being analyzed.
func (p *Package) Package() *types.Package { return p.pkg }

// Malformed returns the annotations of the package that could not be parsed.
func (p *Package) Malformed() []Malformed { return p.index().malformed }

// File returns an [Oracle] for one file of the package with its source content.
// It returns nil when the file is not known to the file set.
func (p *Package) File(f *ast.File, src []byte) *File {
	tok := p.fset.File(f.FileStart)
	if tok == nil {
		return nil
	}

	return &File{pkg: p, file: f, tok: tok, src: src}
}

func (p *Package) buildIndex() annotationIndex {
	x := annotationIndex{byObject: make(map[types.Object][]annotation.Annotation)}

	// comment groups shared by several names are checked once
	checked := make(map[*ast.CommentGroup]bool)

	add := func(id *ast.Ident, groups ...*ast.CommentGroup) {
		obj := p.info.Defs[id]
		if obj == nil {
			return
		}

		for _, cg := range groups {
			if cg == nil {
				continue
			}

			as, _ := annotation.FromCommentGroup(cg)
			x.byObject[obj] = append(x.byObject[obj], as...)

			if checked[cg] {
				continue
			}

			checked[cg] = true

			for _, c := range cg.List {
				if _, _, err := annotation.Parse(c.Text); err != nil {
					x.malformed = append(x.malformed, Malformed{Comment: c, Err: err})
				}
			}
		}
	}

	for _, f := range p.files {
		ast.Inspect(f, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.FuncDecl:
				add(n.Name, n.Doc)

			case *ast.GenDecl:
				var outer *ast.CommentGroup
				if len(n.Specs) == 1 && !n.Lparen.IsValid() {
					outer = n.Doc
				}

				for _, spec := range n.Specs {
					switch spec := spec.(type) {
					case *ast.TypeSpec:
						add(spec.Name, outer, spec.Doc, spec.Comment)

					case *ast.ValueSpec:
						for _, id := range spec.Names {
							add(id, outer, spec.Doc, spec.Comment)
						}
					}
				}

			case *ast.Field:
				if len(n.Names) == 0 {
					if id := embeddedIdent(n.Type); id != nil {
						add(id, n.Doc, n.Comment)
					}
				}

				for _, id := range n.Names {
					add(id, n.Doc, n.Comment)
				}
			}

			return true
		})
	}

	return x
}

// embeddedIdent returns the type name identifier of an embedded field.
func embeddedIdent(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e
		case *ast.StarExpr:
			expr = e.X
		case *ast.SelectorExpr:
			return e.Sel
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		default:
			return nil
		}
	}
}
