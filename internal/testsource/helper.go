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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the bugscan engine by handling common
// boilerplate code for parsing and type-checking Go sources.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugscan/internal/oracle"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Source is a parsed and type-checked test file.
type Source struct {
	Fset      *token.FileSet
	File      *ast.File
	Pkg       *types.Package
	Info      *types.Info
	Package   *oracle.Package
	Oracle    *oracle.File
	Inspector *inspector.Inspector
}

// Root returns a cursor positioned at the file node.
func (s Source) Root() inspector.Cursor {
	for c := range s.Inspector.Root().Children() {
		return c
	}

	return s.Inspector.Root()
}

// Find returns the cursor of the first node satisfying pred in preorder.
func (s Source) Find(tb testing.TB, pred func(ast.Node) bool) inspector.Cursor {
	tb.Helper()

	for c := range s.Inspector.Root().Preorder() {
		if pred(c.Node()) {
			return c
		}
	}

	tb.Fatal("Node not found")

	return s.Inspector.Root()
}

// Load parses and type-checks a complete Go source file.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	pkg, info := Check(tb, fset, f)

	p := oracle.NewPackage(fset, pkg, info, []*ast.File{f})

	o := p.File(f, []byte(src))
	if o == nil {
		tb.Fatal("No file information")
	}

	return Source{
		Fset:      fset,
		File:      f,
		Pkg:       pkg,
		Info:      info,
		Package:   p,
		Oracle:    o,
		Inspector: inspector.New([]*ast.File{f}),
	}
}

// Fragment is like [Load], but the provided source `src` is wrapped in a function body
// `func _() { ... }` within a package `test`. This allows testing statement-level code
// fragments without manually constructing the surrounding package and function scaffolding.
func Fragment(tb testing.TB, src string) Source {
	tb.Helper()

	return Load(tb, wrapSource(src).String())
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}
