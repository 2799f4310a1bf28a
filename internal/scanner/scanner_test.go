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

package scanner_test

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/bugpatterns"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	. "fillmore-labs.com/bugscan/internal/scanner"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/testsource"
	"fillmore-labs.com/bugscan/internal/tree"
)

var errBoom = errors.New("boom")

func detector(name string, m matcher.Matcher, kinds ...tree.Kind) *registry.Detector {
	return &registry.Detector{
		Name:     name,
		Summary:  name + " found",
		Severity: report.SeverityWarning,
		Maturity: level.Mature,
		Kinds:    kinds,
		Matcher:  m,
	}
}

func panicking(ast.Node, state.State) bool { panic(errBoom) }

func discard() Option { return WithLogger(slog.New(slog.DiscardHandler)) }

// findings renders descriptions as "check@line" for comparison.
func findings(s testsource.Source, descs []report.Description) []string {
	var got []string
	for _, d := range descs {
		got = append(got, fmt.Sprintf("%s@%d", d.Check, s.Fset.Position(d.Pos()).Line))
	}

	return got
}

const scoped = `package test

type T struct {
	//@SuppressWarnings("Decl")
	f int
	g int
}

func a() {
	x := 1
	x = x
	_ = x
}

//@SuppressWarnings("Assign")
func b() {
	x := 1
	x = x
	_ = x
}

func c() {
	x := 1
	x = x
	_ = x
}
`

func TestSuppressionScope(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, scoped)

	r := registry.MustNew([]*registry.Detector{
		detector("Assign", matcher.Any, tree.KindAssignStmt),
		detector("Decl", matcher.Any, tree.KindTypeSpec, tree.KindField),
	}, nil)

	descs, faults := Scan(t.Context(), r, s.Root(), s.Oracle, discard())
	if len(faults) > 0 {
		t.Fatalf("Unexpected faults: %v", faults)
	}

	want := []string{
		"Decl@3", "Decl@6",
		"Assign@10", "Assign@11", "Assign@12",
		"Assign@23", "Assign@24", "Assign@25",
	}
	if got := findings(s, descs); !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestFaultIsolation(t *testing.T) {
	t.Parallel()

	s := testsource.Fragment(t, "x := 1\nx = 2\n_ = x")

	r := registry.MustNew([]*registry.Detector{
		detector("A", matcher.Any, tree.KindAssignStmt),
		detector("Boom", panicking, tree.KindAssignStmt),
		detector("C", matcher.Any, tree.KindAssignStmt),
	}, nil)

	descs, faults := Scan(t.Context(), r, s.Root(), s.Oracle, discard())

	want := []string{"A@4", "C@4", "A@5", "C@5", "A@6", "C@6"}
	if got := findings(s, descs); !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}

	if len(faults) != 3 {
		t.Fatalf("Got %d faults, want 3", len(faults))
	}

	for _, f := range faults {
		if f.Detector != "Boom" || !errors.Is(f, errBoom) {
			t.Errorf("Unexpected fault %v", f)
		}

		if _, ok := f.Node.(*ast.AssignStmt); !ok {
			t.Errorf("Fault on %s, want *ast.AssignStmt", f.NodeType())
		}
	}
}

func TestNonErrorPanic(t *testing.T) {
	t.Parallel()

	s := testsource.Fragment(t, "_ = 1")

	describe := func(*registry.Detector, ast.Node, state.State) report.Description { panic("describe") }

	d := detector("Describe", matcher.Any, tree.KindAssignStmt)
	d.Describe = describe

	descs, faults := Scan(t.Context(), registry.MustNew([]*registry.Detector{d}, nil), s.Root(), s.Oracle, discard())
	if len(descs) != 0 {
		t.Errorf("Got findings %v from a failing describe", findings(s, descs))
	}

	if len(faults) != 1 || faults[0].Err.Error() != "panic: describe" {
		t.Errorf("Got faults %v", faults)
	}
}

func TestLineNoLint(t *testing.T) {
	t.Parallel()

	s := testsource.Fragment(t, "x := 1\nx = x //nolint:assign\n_ = x")

	r := registry.MustNew([]*registry.Detector{
		detector("Assign", matcher.Any, tree.KindAssignStmt),
	}, nil)

	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"without file set", nil, []string{"Assign@4", "Assign@5", "Assign@6"}},
		{"with file set", []Option{WithFileSet(s.Fset)}, []string{"Assign@4", "Assign@6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			descs, _ := Scan(t.Context(), r, s.Root(), s.Oracle, append(tt.opts, discard())...)
			if got := findings(s, descs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	s := testsource.Fragment(t, "_ = 1")

	r := registry.MustNew([]*registry.Detector{
		detector("Assign", matcher.Any, tree.KindAssignStmt),
	}, nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if descs, _ := Scan(ctx, r, s.Root(), s.Oracle); len(descs) != 0 {
		t.Errorf("Canceled scan reported %v", findings(s, descs))
	}
}

func TestSubtree(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, scoped)

	r := registry.MustNew([]*registry.Detector{
		detector("Assign", matcher.Any, tree.KindAssignStmt),
	}, nil)

	fn := s.Find(t, func(n ast.Node) bool { f, ok := n.(*ast.FuncDecl); return ok && f.Name.Name == "c" })

	var descs []report.Description

	sink := report.SinkFunc(func(d report.Description) { descs = append(descs, d) })
	New(r, s.Oracle, sink, discard()).Scan(t.Context(), fn)

	want := []string{"Assign@23", "Assign@24", "Assign@25"}
	if got := findings(s, descs); !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

const selfAssignment = `package test

func f() {
	x := 1
	x = x
	_ = x
}

//@SuppressWarnings("SelfAssignment")
func g() {
	x := 1
	x = x
	_ = x
}
`

func TestSelfAssignment(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, selfAssignment)

	r := registry.MustNew(bugpatterns.All(), registry.Only("SelfAssignment"))

	descs, faults := Scan(t.Context(), r, s.Root(), s.Oracle, discard())
	if len(faults) > 0 {
		t.Fatalf("Unexpected faults: %v", faults)
	}

	if got, want := findings(s, descs), []string{"SelfAssignment@5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Scan() = %v, want %v", got, want)
	}

	d := descs[0]
	if d.Severity != report.SeverityError || d.Fix.Empty() {
		t.Errorf("Got severity %s, fix %v", d.Severity, d.Fix)
	}

	out, res := report.ApplyFixes([]byte(selfAssignment), descs)
	if len(res.Applied) != 1 {
		t.Fatalf("Fix not applied: %+v", res)
	}

	want := strings.Replace(selfAssignment, "\tx = x\n", "", 1)
	if got := string(out); got != want {
		t.Errorf("ApplyFixes() = %q, want %q", got, want)
	}
}
