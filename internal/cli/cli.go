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

// Package cli implements the bugscan command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/config"
	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/run"
)

// ErrFindings is returned by the check command when findings of severity error remain.
var ErrFindings = errors.New("findings with error severity")

// ErrInvalidFlag is returned for unusable flag values.
var ErrInvalidFlag = errors.New("invalid flag value")

// app holds the state shared by all commands.
type app struct {
	out, errOut io.Writer

	color      string
	verbose    bool
	configPath string
	dir        string

	maturity        string
	enable, disable []string

	logger *slog.Logger
	styles styles
}

// NewCommand returns the root command writing results to out and diagnostics to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "bugscan",
		Short: "Find common bug patterns in Go code",
		Long: `bugscan runs a catalog of detectors over Go packages and reports
findings with suggested fixes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.color, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")
	pf.StringVar(&a.configPath, "config", "", "configuration `file` (default: nearest "+config.FileName+")")
	pf.StringVarP(&a.dir, "dir", "C", ".", "run as if started in `directory`")
	pf.StringVar(&a.maturity, "maturity", "", "enable detectors up to `level` (mature, experimental)")
	pf.StringSliceVar(&a.enable, "enable", nil, "detectors to enable")
	pf.StringSliceVar(&a.disable, "disable", nil, "detectors to disable")

	root.AddCommand(a.checkCommand(), a.listCommand(), a.explainCommand())

	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	var enabled bool

	switch strings.ToLower(a.color) {
	case "auto":
		enabled = !color.NoColor
	case "on", "always", "true":
		enabled = true
	case "off", "never", "false":
		enabled = false
	default:
		return fmt.Errorf("%w: --color %q", ErrInvalidFlag, a.color)
	}

	a.styles = newStyles(enabled)

	lvl := slog.LevelWarn
	if a.verbose {
		lvl = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))

	return nil
}

// settings merges the configuration file with the command line.
type settings struct {
	options   *run.Options
	registry  *registry.Registry
	overrides map[string]report.Severity
}

func (a *app) settings(cmd *cobra.Command) (settings, error) {
	o := run.DefaultOptions()

	path := a.configPath
	if path == "" {
		if p, ok := config.Find(a.dir); ok {
			path = p
		}
	}

	var f config.File

	if path != "" {
		var err error
		if f, err = config.Load(path); err != nil {
			return settings{}, err
		}

		a.logger.Debug("Loaded configuration", slog.String("path", path))
	}

	if f.Maturity != nil {
		o.Maturity = *f.Maturity
	}

	if f.Generated != nil {
		o.Behavior.Set(config.IncludeGenerated, *f.Generated)
	}

	o.Enable = append(f.Enable, a.enable...)
	o.Disable = append(f.Disable, a.disable...)

	if cmd.Flags().Changed("maturity") {
		var m level.Maturity
		if err := m.UnmarshalText([]byte(a.maturity)); err != nil {
			return settings{}, fmt.Errorf("%w: --maturity: %w", ErrInvalidFlag, err)
		}

		o.Maturity = m
	}

	reg, err := o.Registry()
	if err != nil {
		return settings{}, err
	}

	overrides := make(map[string]report.Severity, len(f.Severity))
	for name, sev := range f.Severity {
		d, ok := reg.Lookup(name)
		if !ok {
			return settings{}, fmt.Errorf("%s: severity: %w: %q", path, run.ErrUnknownDetector, name)
		}

		overrides[d.Name] = sev
	}

	a.logger.Debug("Settings",
		slog.Any("behavior", o.Behavior),
		slog.String("maturity", o.Maturity.String()),
		slog.Int("enabled", len(reg.Enabled())))

	return settings{options: o, registry: reg, overrides: overrides}, nil
}

// styles colors the output.
type styles struct {
	severity [report.SeverityInfo + 1]*color.Color
	name     *color.Color
	faint    *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		severity: [...]*color.Color{
			report.SeverityError:   color.New(color.FgRed, color.Bold),
			report.SeverityWarning: color.New(color.FgYellow),
			report.SeverityInfo:    color.New(color.FgCyan),
		},
		name:  color.New(color.Bold),
		faint: color.New(color.Faint),
	}

	for _, c := range append(s.severity[:], s.name, s.faint) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

func (s styles) severityOf(sev report.Severity) *color.Color {
	if int(sev) < len(s.severity) {
		return s.severity[sev]
	}

	return s.faint
}
