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

package report_test

import (
	"go/ast"
	"go/token"
	"testing"

	"fillmore-labs.com/bugscan/internal/fix"
	. "fillmore-labs.com/bugscan/internal/report"
)

func TestApplyFixes(t *testing.T) {
	t.Parallel()

	node := &ast.Ident{Name: "x"}

	var c Collector
	c.Report(Description{Node: node, Check: "A", Fix: fix.New().Replace(fix.Range{Start: 0, End: 3}, "abc").Build()})
	c.Report(Description{Node: node, Check: "B"})
	c.Report(Description{Node: node, Check: "C", Fix: fix.New().Replace(fix.Range{Start: 2, End: 4}, "--").Build()})

	got, res := ApplyFixes([]byte("012345"), c.Descriptions())

	if want := "abc345"; string(got) != want {
		t.Errorf("ApplyFixes() = %q, want %q", got, want)
	}

	if len(res.Applied) != 1 || res.Applied[0] != 0 {
		t.Errorf("Applied = %v, want [0]", res.Applied)
	}

	if len(res.Skipped) != 1 || res.Skipped[0].Index != 2 {
		t.Errorf("Skipped = %v, want [2]", res.Skipped)
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	const src = "package a\n\nvar x = 1\n"

	fset := token.NewFileSet()
	tok := fset.AddFile("a.go", -1, len(src))
	tok.SetLinesForContent([]byte(src))

	node := &ast.Ident{NamePos: tok.Pos(15), Name: "x"}
	d := Description{
		Node:     node,
		Check:    "Example",
		Message:  "example finding",
		Severity: SeverityWarning,
		Link:     "https://example.com/Example",
		Fix:      fix.New().Replace(fix.Range{Start: 15, End: 16}, "y").AddImport("errors").Build(),
	}

	diag := Diagnostic(d, tok, []byte(src))

	if diag.Message != "[Example] example finding" || diag.Category != "Example" || diag.URL != d.Link {
		t.Errorf("Diagnostic() = %+v", diag)
	}

	if len(diag.SuggestedFixes) != 1 {
		t.Fatalf("Got %d suggested fixes, want 1", len(diag.SuggestedFixes))
	}

	edits := diag.SuggestedFixes[0].TextEdits
	if len(edits) != 2 {
		t.Fatalf("Got %d edits, want 2", len(edits))
	}

	if edits[0].Pos != tok.Pos(15) || string(edits[0].NewText) != "y" {
		t.Errorf("Edit = %+v", edits[0])
	}

	if string(edits[1].NewText) != "\nimport \"errors\"\n" {
		t.Errorf("Import edit = %q", edits[1].NewText)
	}
}

func TestSeverityText(t *testing.T) {
	t.Parallel()

	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", s, err)
		}

		var got Severity
		if err := got.UnmarshalText(text); err != nil || got != s {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", text, got, err, s)
		}
	}

	var s Severity
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("Expected error for unknown severity")
	}
}

func TestJoinNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "'a'"},
		{[]string{"a", "b"}, "'a' and 'b'"},
		{[]string{"a", "b", "c"}, "'a', 'b' and 'c'"},
	}

	for _, tt := range tests {
		if got := JoinNames(tt.names); got != tt.want {
			t.Errorf("JoinNames(%v) = %q, want %q", tt.names, got, tt.want)
		}
	}
}
