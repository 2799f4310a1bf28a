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
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/bugscan/internal/astutil"
	"fillmore-labs.com/bugscan/internal/config"
	"fillmore-labs.com/bugscan/internal/oracle"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/scanner"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes |
	packages.NeedSyntax | packages.NeedTypesInfo

type checkFlags struct {
	fix, json, generated, tests bool
	jobs                        int
}

func (a *app) checkCommand() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Scan packages for bug patterns",
		Long: `Scan the named packages, "./..." by default, and report findings.

The command exits with status 1 when findings of severity error remain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./..."}
			}

			return a.check(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.fix, "fix", false, "apply suggested fixes")
	f.BoolVar(&flags.json, "json", false, "print findings as JSON")
	f.BoolVar(&flags.generated, "generated", false, "scan generated files")
	f.BoolVar(&flags.tests, "tests", false, "include test files")
	f.IntVarP(&flags.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of packages scanned in parallel")

	return cmd
}

// fileResult holds the findings in one source file.
type fileResult struct {
	path  string
	src   []byte
	tok   *token.File
	descs []report.Description
	// extra findings without a detector, like malformed annotations
	extra []finding
}

// finding is a printable finding.
type finding struct {
	File      string          `json:"file"`
	Line      int             `json:"line"`
	Column    int             `json:"column"`
	EndLine   int             `json:"endLine"`
	EndColumn int             `json:"endColumn"`
	Check     string          `json:"check"`
	Severity  report.Severity `json:"severity"`
	Message   string          `json:"message"`
	Link      string          `json:"link,omitempty"`
	Fixable   bool            `json:"fixable"`
	Fixed     bool            `json:"fixed,omitempty"`
}

func (a *app) check(cmd *cobra.Command, patterns []string, flags checkFlags) error {
	ctx, task := trace.NewTask(cmd.Context(), "BugScan")
	defer task.End()

	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("generated") {
		s.options.Behavior.Set(config.IncludeGenerated, flags.generated)
	}

	if s.registry.Empty() {
		a.logger.Warn("No detectors enabled")
	}

	pkgs, err := a.load(ctx, patterns, flags.tests)
	if err != nil {
		return err
	}

	results, err := a.scan(ctx, s, pkgs, max(flags.jobs, 1))
	if err != nil {
		return err
	}

	for i := range results {
		for j := range results[i].descs {
			d := &results[i].descs[j]
			if sev, ok := s.overrides[d.Check]; ok {
				d.Severity = sev
			}
		}
	}

	findings, err := a.findings(results, flags.fix)
	if err != nil {
		return err
	}

	if flags.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(findings); err != nil {
			return err
		}
	} else {
		a.print(findings)
	}

	if slices.ContainsFunc(findings, func(f finding) bool { return f.Severity == report.SeverityError && !f.Fixed }) {
		return ErrFindings
	}

	return nil
}

// load type checks the packages matching patterns.
func (a *app) load(ctx context.Context, patterns []string, tests bool) ([]*packages.Package, error) {
	defer trace.StartRegion(ctx, "Load").End()

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     a.dir,
		Tests:   tests,
		Logf: func(format string, args ...any) {
			a.logger.Debug(fmt.Sprintf(format, args...))
		},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	a.logger.Debug("Loaded packages", slog.Int("count", len(pkgs)))

	return pkgs, nil
}

// scan runs the detectors over all packages, jobs packages at a time.
func (a *app) scan(ctx context.Context, s settings, pkgs []*packages.Package, jobs int) ([]fileResult, error) {
	perPackage := make([][]fileResult, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			for _, e := range pkg.Errors {
				a.logger.Warn("Skipping package", slog.String("package", pkg.PkgPath), slog.String("error", e.Error()))
			}

			continue
		}

		g.Go(func() error {
			res, err := a.scanPackage(ctx, s, pkg)
			perPackage[i] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// With test variants a file belongs to more than one package.
	seen := make(map[string]bool)

	var results []fileResult

	for _, res := range perPackage {
		for _, r := range res {
			if seen[r.path] {
				continue
			}

			seen[r.path] = true

			results = append(results, r)
		}
	}

	slices.SortFunc(results, func(x, y fileResult) int { return cmp.Compare(x.path, y.path) })

	return results, nil
}

func (a *app) scanPackage(ctx context.Context, s settings, pkg *packages.Package) ([]fileResult, error) {
	defer trace.StartRegion(ctx, "ScanPackage").End()

	trace.Log(ctx, "package", pkg.PkgPath)

	opkg := oracle.NewPackage(pkg.Fset, pkg.Types, pkg.TypesInfo, pkg.Syntax)
	in := inspector.New(pkg.Syntax)
	generated := s.options.Behavior.Enabled(config.IncludeGenerated)

	var results []fileResult

	byFile := make(map[*token.File]int)

	for c := range in.Root().Children() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file := c.Node().(*ast.File)

		cf := astutil.NewCurrentFile(pkg.Fset, file)
		if !cf.Valid() || cf.Generated() && !generated {
			continue
		}

		tok := cf.Handle()

		src, err := os.ReadFile(tok.Name())
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}

		byFile[tok] = len(results)
		r := fileResult{path: tok.Name(), src: src, tok: tok}

		if !s.registry.Empty() {
			var faults []scanner.Fault
			r.descs, faults = scanner.Scan(ctx, s.registry, c, opkg.File(file, src),
				scanner.WithFileSet(pkg.Fset), scanner.WithLogger(a.logger))
			r.extra = append(r.extra, faultFindings(tok, faults)...)
		}

		results = append(results, r)
	}

	if s.options.Behavior.Enabled(config.ReportMalformed) {
		for _, m := range opkg.Malformed() {
			i, ok := byFile[pkg.Fset.File(m.Comment.Pos())]
			if !ok {
				continue
			}

			f := position(results[i].tok, m.Comment)
			f.Check, f.Severity = "annotation", report.SeverityWarning
			f.Message = "Malformed annotation: " + m.Err.Error()
			results[i].extra = append(results[i].extra, f)
		}
	}

	return results, nil
}

// faultFindings turns detector faults into warnings with check "internal".
func faultFindings(tok *token.File, faults []scanner.Fault) []finding {
	var findings []finding

	for _, f := range faults {
		ff := position(tok, f.Node)
		ff.Check, ff.Severity = "internal", report.SeverityWarning
		ff.Message = "Internal Error: " + f.Error()
		findings = append(findings, ff)
	}

	return findings
}

// findings converts the results, applying fixes first when requested.
func (a *app) findings(results []fileResult, fix bool) ([]finding, error) {
	findings := []finding{}

	for _, r := range results {
		var fixed []bool
		if fix {
			var err error
			if fixed, err = a.applyFixes(r); err != nil {
				return nil, err
			}
		}

		path := a.relative(r.path)

		for i, d := range r.descs {
			f := position(r.tok, d.Node)
			f.File = path
			f.Check, f.Severity, f.Message, f.Link = d.Check, d.Severity, d.Message, d.Link
			f.Fixable = !d.Fix.Empty()
			f.Fixed = fixed != nil && fixed[i]
			findings = append(findings, f)
		}

		for _, f := range r.extra {
			f.File = path
			findings = append(findings, f)
		}
	}

	slices.SortStableFunc(findings, func(x, y finding) int {
		return cmp.Or(
			cmp.Compare(x.File, y.File),
			cmp.Compare(x.Line, y.Line),
			cmp.Compare(x.Column, y.Column),
			cmp.Compare(x.Check, y.Check),
		)
	})

	return findings, nil
}

// applyFixes writes the fixed source of r and returns which findings were fixed.
func (a *app) applyFixes(r fileResult) ([]bool, error) {
	fixed := make([]bool, len(r.descs))
	if !slices.ContainsFunc(r.descs, func(d report.Description) bool { return !d.Fix.Empty() }) {
		return fixed, nil
	}

	out, res := report.ApplyFixes(r.src, r.descs)
	for _, i := range res.Applied {
		fixed[i] = true
	}

	for _, s := range res.Skipped {
		a.logger.Info("Fix skipped",
			slog.String("file", r.path),
			slog.String("check", r.descs[s.Index].Check),
			slog.String("reason", s.Reason))
	}

	if bytes.Equal(out, r.src) {
		return fixed, nil
	}

	fi, err := os.Stat(r.path)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(r.path, out, fi.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("writing fixes: %w", err)
	}

	fmt.Fprintf(a.errOut, "Fixed %d %s in %s\n", len(res.Applied), plural(len(res.Applied), "finding"), a.relative(r.path))

	return fixed, nil
}

func (a *app) print(findings []finding) {
	for _, f := range findings {
		sev := a.styles.severityOf(f.Severity)

		fmt.Fprintf(a.out, "%s:%d:%d: %s: %s %s",
			f.File, f.Line, f.Column, sev.Sprint(f.Severity), a.styles.name.Sprint("["+f.Check+"]"), f.Message)

		if f.Fixed {
			fmt.Fprint(a.out, a.styles.faint.Sprint(" (fixed)"))
		}

		fmt.Fprintln(a.out)
	}
}

// relative returns path relative to the working directory when it lies below it.
func (a *app) relative(path string) string {
	dir, err := filepath.Abs(a.dir)
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(dir, path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}

	return rel
}

func position(tok *token.File, n ast.Node) finding {
	start, end := tok.Position(n.Pos()), tok.Position(n.End())

	return finding{Line: start.Line, Column: start.Column, EndLine: end.Line, EndColumn: end.Column}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
