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

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/bugscan/internal/annotation"
)

// File is the [Oracle] for one source file.
type File struct {
	pkg  *Package
	file *ast.File
	tok  *token.File
	src  []byte
}

var _ Oracle = (*File)(nil)

// Package implements [Oracle].
func (f *File) Package() *types.Package { return f.pkg.pkg }

// Fset returns the file set positions are relative to.
func (f *File) Fset() *token.FileSet { return f.pkg.fset }

// AST returns the syntax tree of the file.
func (f *File) AST() *ast.File { return f.file }

// TokenFile returns the position information of the file.
func (f *File) TokenFile() *token.File { return f.tok }

// Source returns the file content.
func (f *File) Source() []byte { return f.src }

// SymbolOf implements [Oracle].
func (f *File) SymbolOf(n ast.Node) types.Object {
	info := f.pkg.info

	switch n := n.(type) {
	case *ast.Ident:
		return info.ObjectOf(n)

	case *ast.SelectorExpr:
		return info.ObjectOf(n.Sel)

	case *ast.ParenExpr:
		return f.SymbolOf(n.X)

	case *ast.StarExpr:
		return f.SymbolOf(n.X)

	case *ast.CallExpr:
		return typeutil.Callee(info, n)

	case *ast.FuncDecl:
		return info.Defs[n.Name]

	case *ast.TypeSpec:
		return info.Defs[n.Name]

	case *ast.ValueSpec:
		if len(n.Names) == 0 {
			return nil
		}

		return info.Defs[n.Names[0]]

	case *ast.Field:
		if len(n.Names) > 0 {
			return info.Defs[n.Names[0]]
		}

		if id := embeddedIdent(n.Type); id != nil {
			return info.Defs[id]
		}

	case *ast.GenDecl:
		if len(n.Specs) == 1 {
			return f.SymbolOf(n.Specs[0])
		}

	case *ast.ImportSpec:
		if obj := info.PkgNameOf(n); obj != nil {
			return obj
		}
	}

	return nil
}

// TypeOf implements [Oracle].
func (f *File) TypeOf(n ast.Node) types.Type {
	switch n := n.(type) {
	case ast.Expr:
		return f.pkg.info.TypeOf(n)

	case *ast.Field:
		return f.pkg.info.TypeOf(n.Type)

	case *ast.FuncDecl, *ast.TypeSpec, *ast.ValueSpec:
		if obj := f.SymbolOf(n); obj != nil {
			return obj.Type()
		}
	}

	return nil
}

// IsSubtype implements [Oracle].
func (f *File) IsSubtype(a, b types.Type) bool {
	if a == nil || b == nil {
		return false
	}

	if types.Identical(a, b) {
		return true
	}

	iface, ok := b.Underlying().(*types.Interface)

	return ok && types.Implements(a, iface)
}

// IsSameType implements [Oracle].
func (f *File) IsSameType(a, b types.Type) bool {
	return a != nil && b != nil && types.Identical(a, b)
}

// AnnotationsOf implements [Oracle].
func (f *File) AnnotationsOf(obj types.Object) []annotation.Annotation {
	if obj == nil {
		return nil
	}

	return f.pkg.index().byObject[obj]
}

// SourceText implements [Oracle].
func (f *File) SourceText(start, end int) string {
	if start < 0 || end < start || end > len(f.src) {
		return ""
	}

	return string(f.src[start:end])
}

// StartOffset implements [Oracle].
func (f *File) StartOffset(n ast.Node) int { return f.offset(n.Pos()) }

// EndOffset implements [Oracle].
func (f *File) EndOffset(n ast.Node) int { return f.offset(n.End()) }

func (f *File) offset(pos token.Pos) int {
	if !pos.IsValid() || int(pos) < f.tok.Base() || int(pos) > f.tok.Base()+f.tok.Size() {
		return -1
	}

	return f.tok.Offset(pos)
}

// LookupType implements [Oracle].
func (f *File) LookupType(pkgPath, name string) types.Type {
	var scope *types.Scope

	switch pkgPath {
	case "":
		scope = types.Universe

	case f.pkg.pkg.Path():
		scope = f.pkg.pkg.Scope()

	default:
		pkg := findImport(f.pkg.pkg, pkgPath, make(map[*types.Package]bool))
		if pkg == nil {
			return nil
		}

		scope = pkg.Scope()
	}

	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	return tn.Type()
}

// findImport searches the transitive imports of pkg for path.
func findImport(pkg *types.Package, path string, seen map[*types.Package]bool) *types.Package {
	if seen[pkg] {
		return nil
	}

	seen[pkg] = true

	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp
		}
	}

	for _, imp := range pkg.Imports() {
		if found := findImport(imp, path, seen); found != nil {
			return found
		}
	}

	return nil
}
