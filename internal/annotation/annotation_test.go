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

package annotation_test

import (
	"errors"
	"go/ast"
	"reflect"
	"testing"

	. "fillmore-labs.com/bugscan/internal/annotation"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		ok     bool
		want   string
		values map[string][]string
	}{
		{"plain comment", "// just a comment", false, "", nil},
		{"marker", "//@Immutable", true, "Immutable", map[string][]string{}},
		{"spaced marker", "// @Singleton", true, "Singleton", map[string][]string{}},
		{"prose", "//@see the docs", false, "", nil},
		{"identifier", "//@GuardedBy(mu)", true, "GuardedBy", map[string][]string{"value": {"mu"}}},
		{"dotted", "//@GuardedBy(s.mu)", true, "GuardedBy", map[string][]string{"value": {"s.mu"}}},
		{"strings", `//@SuppressWarnings("SelfAssignment", "SelfComparison")`, true, "SuppressWarnings",
			map[string][]string{"value": {"SelfAssignment", "SelfComparison"}}},
		{"array", `//@SuppressWarnings({"A", "B"})`, true, "SuppressWarnings", map[string][]string{"value": {"A", "B"}}},
		{"keyed", `//@Check(name = "x", limit = 3)`, true, "Check", map[string][]string{"name": {"x"}, "limit": {"3"}}},
		{"keyed array", `//@Check(value = {"x", 'y'})`, true, "Check", map[string][]string{"value": {"x", "y"}}},
		{"empty parens", "//@Marker()", true, "Marker", map[string][]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, ok, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.text, err)
			}

			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %t, want %t", tt.text, ok, tt.ok)
			}

			if !ok {
				return
			}

			if a.Name != tt.want {
				t.Errorf("Name = %q, want %q", a.Name, tt.want)
			}

			if !reflect.DeepEqual(a.Values, tt.values) {
				t.Errorf("Values = %v, want %v", a.Values, tt.values)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []string{
		`//@Bad(`,
		`//@Bad("unterminated)`,
		`//@Bad(a b)`,
		`//@Bad({"a")`,
		`//@Bad(a) trailing`,
		`//@Bad(x.)`,
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			if _, _, err := Parse(text); !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want %v", text, err, ErrSyntax)
			}
		})
	}
}

func TestFromCommentGroup(t *testing.T) {
	t.Parallel()

	cg := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Account holds a balance."},
		{Text: "//@GuardedBy(mu)"},
		{Text: "//@Broken(("},
		{Text: "//@Immutable"},
	}}

	as, errs := FromCommentGroup(cg)

	if len(errs) != 1 {
		t.Errorf("Got %d errors, want 1", len(errs))
	}

	if len(as) != 2 {
		t.Fatalf("Got %d annotations, want 2", len(as))
	}

	if _, ok := Find(as, "Immutable"); !ok {
		t.Error("Expected to find @Immutable")
	}

	g, ok := Find(as, "GuardedBy")
	if !ok {
		t.Fatal("Expected to find @GuardedBy")
	}

	if g.Comment != cg.List[1] || g.Pos() != cg.List[1].Pos() {
		t.Error("Annotation does not refer to its comment")
	}
}

func TestSuppressed(t *testing.T) {
	t.Parallel()

	cg := &ast.CommentGroup{List: []*ast.Comment{
		{Text: `//@SuppressWarnings("SelfAssignment")`},
		{Text: "//nolint:SelfComparison,bugscan"},
		{Text: "//@Immutable"},
	}}

	got := Suppressed(cg)
	want := []string{"SelfAssignment", "SelfComparison", All}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suppressed() = %v, want %v", got, want)
	}
}

func TestNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string
		ok   bool
	}{
		{"//nolint:all", []string{All}, true},
		{"// nolint:errcheck, SelfAssignment", []string{"errcheck"}, true},
		{"//nolint:SelfAssignment,SelfComparison", []string{"SelfAssignment", "SelfComparison"}, true},
		{"// not a directive", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got, ok := NoLint(tt.text)
			if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NoLint(%q) = %v, %t, want %v, %t", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}
