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

package report

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bugscan/internal/fix"
)

// Diagnostic converts a finding to an [analysis.Diagnostic].
// Fix offsets are relative to the file tok with content src.
func Diagnostic(d Description, tok *token.File, src []byte) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      d.Pos(),
		End:      d.End(),
		Category: d.Check,
		Message:  d.String(),
		URL:      d.Link,
	}

	if edits := TextEdits(d.Fix, tok, src); len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: d.Message, TextEdits: edits}}
	}

	return diagnostic
}

// TextEdits converts a suggested fix to [analysis.TextEdit] values.
// Import directives become edits of the import declarations of src.
// It returns nil if the fix can not be expressed in the file.
func TextEdits(f *fix.SuggestedFix, tok *token.File, src []byte) []analysis.TextEdit {
	if f.Empty() || tok == nil {
		return nil
	}

	edits := f.Edits()

	if adds, removes := fix.MergeImports(f.Imports()); len(adds) > 0 || len(removes) > 0 {
		importEdits, err := fix.ImportEdits(src, adds, removes)
		if err != nil {
			return nil
		}

		edits = append(edits, importEdits...)
	}

	textEdits := make([]analysis.TextEdit, 0, len(edits))
	for _, e := range edits {
		if e.End > tok.Size() {
			return nil
		}

		textEdits = append(textEdits, analysis.TextEdit{
			Pos:     tok.Pos(e.Start),
			End:     tok.Pos(e.End),
			NewText: []byte(e.Text),
		})
	}

	return textEdits
}
