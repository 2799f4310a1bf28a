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

package cli

import (
	"errors"
	"go/ast"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/scanner"
)

func TestFaultFindings(t *testing.T) {
	t.Parallel()

	const src = "package demo\n\nvar x = y\n"

	fset := token.NewFileSet()
	tok := fset.AddFile("demo.go", -1, len(src))
	tok.SetLinesForContent([]byte(src))

	node := &ast.Ident{NamePos: tok.Pos(22), Name: "y"}
	faults := []scanner.Fault{{Detector: "Boom", Node: node, Err: errors.New("panic: boom")}}

	got := faultFindings(tok, faults)
	require.Len(t, got, 1)

	f := got[0]
	assert.Equal(t, "internal", f.Check)
	assert.Equal(t, report.SeverityWarning, f.Severity)
	assert.Equal(t, 3, f.Line)
	assert.Equal(t, 9, f.Column)
	assert.Contains(t, f.Message, "Internal Error: detector Boom failed on *ast.Ident")

	assert.Empty(t, faultFindings(tok, nil))
}
