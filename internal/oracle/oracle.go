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

// Package oracle answers symbol, type and source questions about a type-checked file.
package oracle

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/bugscan/internal/annotation"
)

// Oracle is the front-end surface detectors and matchers consult.
//
// A missing symbol or type is reported as nil and is never an error.
type Oracle interface {
	// SymbolOf returns the object declared or referenced by n.
	SymbolOf(n ast.Node) types.Object
	// TypeOf returns the type of an expression or declaration.
	TypeOf(n ast.Node) types.Type
	// IsSubtype reports whether a is identical to b or implements the interface b.
	IsSubtype(a, b types.Type) bool
	// IsSameType reports whether a and b are identical.
	IsSameType(a, b types.Type) bool
	// AnnotationsOf returns the comment annotations attached to the declaration of obj.
	AnnotationsOf(obj types.Object) []annotation.Annotation

	// SourceText returns the source between two byte offsets, or "" for an invalid range.
	SourceText(start, end int) string
	// StartOffset returns the byte offset of n within its file.
	StartOffset(n ast.Node) int
	// EndOffset returns the byte offset just past n within its file.
	EndOffset(n ast.Node) int

	// LookupType resolves a package level type name visible from the analyzed package.
	// The empty path denotes the universe scope.
	LookupType(pkgPath, name string) types.Type
	// Package returns the package being analyzed.
	Package() *types.Package
}
