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

package fix_test

import (
	"testing"

	. "fillmore-labs.com/bugscan/internal/fix"
)

func TestApplyImports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		imports func(*Builder) *Builder
		want    string
	}{
		{
			name: "add to block",
			src:  "package a\n\nimport (\n\t\"fmt\"\n\t\"strings\"\n)\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors")
			},
			want: "package a\n\nimport (\n\t\"errors\"\n\t\"fmt\"\n\t\"strings\"\n)\n",
		},
		{
			name: "add at end of block",
			src:  "package a\n\nimport (\n\t\"fmt\"\n)\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("strings")
			},
			want: "package a\n\nimport (\n\t\"fmt\"\n\t\"strings\"\n)\n",
		},
		{
			name: "add to first group",
			src:  "package a\n\nimport (\n\t\"fmt\"\n\n\t\"example.com/x\"\n)\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("os")
			},
			want: "package a\n\nimport (\n\t\"fmt\"\n\t\"os\"\n\n\t\"example.com/x\"\n)\n",
		},
		{
			name: "add after single import",
			src:  "package a\n\nimport \"fmt\"\n\nvar _ = fmt.Sprint\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors")
			},
			want: "package a\n\nimport \"fmt\"\nimport \"errors\"\n\nvar _ = fmt.Sprint\n",
		},
		{
			name: "add without imports",
			src:  "package a\n\nvar x = 1\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors")
			},
			want: "package a\n\nimport \"errors\"\n\nvar x = 1\n",
		},
		{
			name: "existing",
			src:  "package a\n\nimport \"errors\"\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors")
			},
			want: "package a\n\nimport \"errors\"\n",
		},
		{
			name: "remove from block",
			src:  "package a\n\nimport (\n\t\"errors\"\n\t\"fmt\" // formatting\n)\n",
			imports: func(b *Builder) *Builder {
				return b.RemoveImport("fmt")
			},
			want: "package a\n\nimport (\n\t\"errors\"\n)\n",
		},
		{
			name: "remove single",
			src:  "package a\n\nimport \"fmt\"\n\nvar x = 1\n",
			imports: func(b *Builder) *Builder {
				return b.RemoveImport("fmt")
			},
			want: "package a\n\n\nvar x = 1\n",
		},
		{
			name: "replace",
			src:  "package a\n\nimport (\n\t\"fmt\"\n)\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors").RemoveImport("fmt")
			},
			want: "package a\n\nimport (\n\t\"errors\"\n)\n",
		},
		{
			name: "replace commented",
			src:  "package a\n\nimport (\n\t// fmt formats errors\n\t\"fmt\"\n\t\"os\"\n)\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors").RemoveImport("fmt")
			},
			want: "package a\n\nimport (\n\t\"errors\"\n\t\"os\"\n)\n",
		},
		{
			name: "replace last commented",
			src:  "package a\n\nimport (\n\t\"bytes\"\n\t// fmt formats errors\n\t\"fmt\"\n)\n",
			imports: func(b *Builder) *Builder {
				return b.AddImport("errors").RemoveImport("fmt")
			},
			want: "package a\n\nimport (\n\t\"bytes\"\n\t\"errors\"\n)\n",
		},
		{
			name: "cancel",
			src:  "package a\n\nimport \"fmt\"\n",
			imports: func(b *Builder) *Builder {
				return b.RemoveImport("fmt").AddImport("fmt")
			},
			want: "package a\n\nimport \"fmt\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.imports(New()).Build()

			got, res := Apply([]byte(tt.src), []*SuggestedFix{f})
			if string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}

			if len(res.Applied) != 1 {
				t.Errorf("Applied = %v, want [0]", res.Applied)
			}
		})
	}
}

func TestImportEditsDisjoint(t *testing.T) {
	t.Parallel()

	const src = "package a\n\nimport (\n\t// fmt formats errors\n\t\"fmt\"\n)\n"

	edits, err := ImportEdits([]byte(src), []string{"errors"}, []string{"fmt"})
	if err != nil {
		t.Fatalf("ImportEdits failed: %v", err)
	}

	for i, a := range edits {
		for _, b := range edits[i+1:] {
			if a.Overlaps(b.Range) {
				t.Errorf("Edits %+v and %+v overlap", a, b)
			}
		}
	}
}

func TestApplyImportsAfterEdits(t *testing.T) {
	t.Parallel()

	const src = "package a\n\nimport \"fmt\"\n\nvar err = fmt.Errorf(\"x\")\n"

	start := len("package a\n\nimport \"fmt\"\n\nvar err = ")
	end := start + len("fmt.Errorf")

	f := New().
		Replace(Range{start, end}, "errors.New").
		AddImport("errors").
		RemoveImport("fmt").
		Build()

	got, _ := Apply([]byte(src), []*SuggestedFix{f})

	if want := "package a\n\nimport \"errors\"\n\nvar err = errors.New(\"x\")\n"; string(got) != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}
