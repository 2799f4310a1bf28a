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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugscan/internal/astutil"
	"fillmore-labs.com/bugscan/internal/config"
	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/scanner"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the bugscan analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("bugscan: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	reg, err := r.Registry()
	if err != nil {
		return nil, fmt.Errorf("bugscan: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "BugScan")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	pkg := oracle.NewPackage(p.Fset, p.Pkg, p.TypesInfo, p.Files)

	// Files the run looks at, for filtering annotation errors
	scanned := make(map[*token.File]bool, len(p.Files))

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		scanned[currentFile.Handle()] = true

		if reg.Empty() {
			continue
		}

		r.scanFile(ctx, p, reg, pkg, f, currentFile)
	}

	if r.Behavior.Enabled(config.ReportMalformed) {
		for _, m := range pkg.Malformed() {
			if !scanned[p.Fset.File(m.Comment.Pos())] {
				continue
			}

			p.Report(analysis.Diagnostic{
				Pos:      m.Comment.Pos(),
				End:      m.Comment.End(),
				Category: "annotation",
				Message:  "Malformed annotation: " + m.Err.Error(),
			})
		}
	}

	return nil, nil
}

// scanFile runs the detectors over one file and reports their findings.
func (r *Options) scanFile(ctx context.Context, p *analysis.Pass, reg *registry.Registry, pkg *oracle.Package,
	f inspector.Cursor, currentFile astutil.CurrentFile,
) {
	file, handle := currentFile.File(), currentFile.Handle()

	src, err := p.ReadFile(handle.Name())
	if err != nil {
		astutil.InternalError(p, file, "Can't read source of %s: %v", handle.Name(), err)

		return
	}

	o := pkg.File(file, src)
	if o == nil {
		astutil.InternalError(p, file, "File %s without position information", handle.Name())

		return
	}

	descs, faults := scanner.Scan(ctx, reg, f, o, scanner.WithFileSet(p.Fset))

	for _, d := range descs {
		diagnostic := report.Diagnostic(d, handle, src)
		if !r.Behavior.Enabled(config.SuggestFixes) {
			diagnostic.SuggestedFixes = nil
		}

		p.Report(diagnostic)
	}

	for _, fault := range faults {
		astutil.InternalError(p, fault.Node, "%v", fault)
	}
}
