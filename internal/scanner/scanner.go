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

// Package scanner walks a syntax tree once and runs the registered detectors at every node.
package scanner

import (
	"context"
	"go/ast"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugscan/internal/astutil"
	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/suppress"
)

// Scanner runs the detectors of a registry over one tree.
// A Scanner is not safe for concurrent use; create one per file or goroutine.
type Scanner struct {
	registry *registry.Registry
	oracle   oracle.Oracle
	sink     report.Sink

	fset   *token.FileSet
	logger *slog.Logger
	faults func(Fault)
}

// Option configures a [Scanner].
type Option func(s *Scanner)

// WithFileSet enables trailing //nolint directives, which need line information.
func WithFileSet(fset *token.FileSet) Option {
	return func(s *Scanner) { s.fset = fset }
}

// WithLogger sets the logger detector faults are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) { s.logger = logger }
}

// WithFaultHandler sets a function receiving detector faults.
func WithFaultHandler(h func(Fault)) Option {
	return func(s *Scanner) { s.faults = h }
}

// New creates a [Scanner] reporting findings to sink.
func New(r *registry.Registry, o oracle.Oracle, sink report.Sink, opts ...Option) *Scanner {
	s := &Scanner{registry: r, oracle: o, sink: sink, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan collects the findings and faults of a single traversal starting at root.
func Scan(ctx context.Context, r *registry.Registry, root inspector.Cursor, o oracle.Oracle, opts ...Option) ([]report.Description, []Fault) {
	var (
		sink   report.Collector
		faults []Fault
	)

	collect := WithFaultHandler(func(f Fault) { faults = append(faults, f) })

	New(r, o, &sink, append(opts, collect)...).Scan(ctx, root)

	return sink.Descriptions(), faults
}

// Scan walks the tree below root, including root itself, in document order.
//
// Files are scanned completely. A canceled context stops the scan before the next file.
func (s *Scanner) Scan(ctx context.Context, root inspector.Cursor) {
	defer trace.StartRegion(ctx, "Scan").End()

	w := walker{Scanner: s, ctx: ctx}
	if root.Node() != nil {
		if f, ok := state.New(root, s.oracle).File(); ok {
			w.file = astutil.NewCurrentFile(s.fset, f)
		}
	}

	w.walk(root, suppress.Empty)
}

// walker holds the per-traversal context.
type walker struct {
	*Scanner
	ctx  context.Context
	file astutil.CurrentFile
}

// walk processes the node at c and recurses into its children.
// Suppressions are passed by value, so returning restores the parent's set.
func (w walker) walk(c inspector.Cursor, sup *suppress.Set) {
	n := c.Node()

	if f, ok := n.(*ast.File); ok {
		if w.ctx.Err() != nil {
			return
		}

		defer trace.StartRegion(w.ctx, "ScanFile").End()

		w.file = astutil.NewCurrentFile(w.fset, f)
	}

	if n != nil {
		st := state.New(c, w.oracle)
		sup = suppress.ForNode(sup, st)
		w.dispatch(n, st, sup)
	}

	for child := range c.Children() {
		w.walk(child, sup)
	}
}

// dispatch runs the detectors registered for the kind of n.
func (w walker) dispatch(n ast.Node, st state.State, sup *suppress.Set) {
	for _, d := range w.registry.For(st.Kind()) {
		names := d.Names()
		if sup.Suppresses(names...) || w.file.NoLint(n.Pos(), names...) {
			continue
		}

		if desc, ok := w.evaluate(d, n, st); ok {
			w.sink.Report(desc)
		}
	}
}

// evaluate runs one detector, turning a panic into a [Fault].
func (w walker) evaluate(d *registry.Detector, n ast.Node, st state.State) (desc report.Description, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			w.fault(newFault(d, n, r))

			desc, ok = report.Description{}, false
		}
	}()

	if !d.Match(n, st) {
		return report.Description{}, false
	}

	return d.Description(n, st), true
}

func (w walker) fault(f Fault) {
	w.logger.LogAttrs(w.ctx, slog.LevelWarn, "Detector failed",
		slog.String("detector", f.Detector),
		slog.Any("error", f.Err),
		slog.String("node", f.NodeType()),
	)

	if w.faults != nil {
		w.faults(f)
	}
}
