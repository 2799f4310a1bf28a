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

// Package tree classifies syntax nodes into the closed set of kinds detectors are dispatched on.
package tree

import "go/ast"

// Kind is the syntactic kind of an [ast.Node].
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	KindInvalid Kind = iota
	KindFile
	KindFuncDecl
	KindFuncLit
	KindGenDecl
	KindTypeSpec
	KindValueSpec
	KindImportSpec
	KindField
	KindStructType
	KindInterfaceType
	KindBlockStmt
	KindAssignStmt
	KindExprStmt
	KindReturnStmt
	KindIfStmt
	KindForStmt
	KindRangeStmt
	KindSwitchStmt
	KindDeclStmt
	KindCallExpr
	KindBinaryExpr
	KindUnaryExpr
	KindSelectorExpr
	KindIdent
	KindBasicLit
	KindCompositeLit
	KindOther

	// NumKinds is the number of kinds, usable as an array dimension.
	NumKinds = int(KindOther) + 1
)

// Valid reports whether k names a concrete kind.
func (k Kind) Valid() bool { return k > KindInvalid && int(k) < NumKinds }

// KindOf returns the [Kind] of n. Nodes without a dedicated kind are [KindOther], nil is [KindInvalid].
func KindOf(n ast.Node) Kind {
	switch n.(type) {
	case nil:
		return KindInvalid
	case *ast.File:
		return KindFile
	case *ast.FuncDecl:
		return KindFuncDecl
	case *ast.FuncLit:
		return KindFuncLit
	case *ast.GenDecl:
		return KindGenDecl
	case *ast.TypeSpec:
		return KindTypeSpec
	case *ast.ValueSpec:
		return KindValueSpec
	case *ast.ImportSpec:
		return KindImportSpec
	case *ast.Field:
		return KindField
	case *ast.StructType:
		return KindStructType
	case *ast.InterfaceType:
		return KindInterfaceType
	case *ast.BlockStmt:
		return KindBlockStmt
	case *ast.AssignStmt:
		return KindAssignStmt
	case *ast.ExprStmt:
		return KindExprStmt
	case *ast.ReturnStmt:
		return KindReturnStmt
	case *ast.IfStmt:
		return KindIfStmt
	case *ast.ForStmt:
		return KindForStmt
	case *ast.RangeStmt:
		return KindRangeStmt
	case *ast.SwitchStmt:
		return KindSwitchStmt
	case *ast.DeclStmt:
		return KindDeclStmt
	case *ast.CallExpr:
		return KindCallExpr
	case *ast.BinaryExpr:
		return KindBinaryExpr
	case *ast.UnaryExpr:
		return KindUnaryExpr
	case *ast.SelectorExpr:
		return KindSelectorExpr
	case *ast.Ident:
		return KindIdent
	case *ast.BasicLit:
		return KindBasicLit
	case *ast.CompositeLit:
		return KindCompositeLit
	default:
		return KindOther
	}
}

// Declares reports whether nodes of kind k introduce declarations that may carry annotations.
func (k Kind) Declares() bool {
	switch k {
	case KindFile, KindFuncDecl, KindGenDecl, KindTypeSpec, KindValueSpec, KindField:
		return true
	default:
		return false
	}
}
