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

package analyzer_test

import (
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/bugscan/analyzer"
	"fillmore-labs.com/bugscan/analyzer/level"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name: "Default",
			dir:  "./a",
			fix:  true,
		},
		{
			name:    "NoFix",
			dir:     "./nofix",
			options: WithFixes(false),
		},
		{
			name:    "Generated",
			dir:     "./generated",
			options: WithGenerated(true),
			fix:     true,
		},
		{
			name:    "Experimental",
			dir:     "./experimental",
			options: WithMaturity(level.Experimental),
		},
		{
			name:    "Selection",
			dir:     "./selection",
			options: Options{WithEnable("ImmutableExportedField"), WithDisable("selfassignment")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New(WithEnable("NoSuchDetector"))

	if err := a.Flags.Set("maturity", "experimental"); err != nil {
		t.Fatalf("Setting maturity failed: %v", err)
	}

	if err := a.Flags.Set("maturity", "alpha"); err == nil {
		t.Error("Expected error for unknown maturity level")
	}

	if got := a.Flags.Lookup("maturity").Value.String(); got != "experimental" {
		t.Errorf("maturity = %q, want experimental", got)
	}

	if got := a.Flags.Lookup("enable").Value.String(); got != "NoSuchDetector" {
		t.Errorf("enable = %q, want NoSuchDetector", got)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithGenerated(true),
		nil,
		Options{WithMaturity(level.Experimental), WithDisable("SelfComparison")},
	}

	var out strings.Builder

	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	logger.Info("configured", opts.LogAttr())

	const want = `level=INFO msg=configured options.generated=true options.nil=<nil> ` +
		`options.maturity=experimental options.disable=[SelfComparison]` + "\n"

	if got := out.String(); got != want {
		t.Errorf("Got log %q, want %q", got, want)
	}
}
