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

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/bugscan/internal/cli"
	"fillmore-labs.com/bugscan/internal/run"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := NewCommand(&out, &errOut)
	cmd.SetArgs(append([]string{"--color=off"}, args...))
	err := cmd.ExecuteContext(t.Context())

	return out.String(), errOut.String(), err
}

const demo = `package demo

func f() int {
	x := 1
	x = x
	return x
}
`

// module writes a small module to a temporary directory.
func module(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.24\n"), 0o644))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestList(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "SelfAssignment")
	assert.Contains(t, out, "SelfComparison (SelfEquals)")
	assert.NotContains(t, out, "ImmutableExportedField", "experimental detectors are not enabled")

	out, _, err = execute(t, "list", "--all")
	require.NoError(t, err)

	assert.Regexp(t, `ImmutableExportedField\s+warning\s+experimental\s+no`, out)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "explain", "selfequals")
	require.NoError(t, err)

	assert.Contains(t, out, "SelfComparison (error, mature)")
	assert.Contains(t, out, "Also known as: SelfEquals")
	assert.Contains(t, out, "https://pkg.go.dev/fillmore-labs.com/bugscan/internal/bugpatterns#SelfComparison")

	_, _, err = execute(t, "explain", "NoSuchCheck")
	require.ErrorIs(t, err, run.ErrUnknownDetector)
}

func TestInvalidFlags(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "list", "--maturity=ripe")
	require.ErrorIs(t, err, ErrInvalidFlag)

	_, _, err = execute(t, "--color=purple", "list")
	require.ErrorIs(t, err, ErrInvalidFlag)

	_, _, err = execute(t, "list", "--enable=NoSuchCheck")
	require.ErrorIs(t, err, run.ErrUnknownDetector)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := module(t, map[string]string{"demo.go": demo})

	out, _, err := execute(t, "check", "-C", dir)
	require.ErrorIs(t, err, ErrFindings)

	assert.Equal(t, "demo.go:5:2: error: [SelfAssignment] Variable assigned to itself\n", out)
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir := module(t, map[string]string{"demo.go": demo})

	out, _, err := execute(t, "check", "-C", dir, "--json", "./...")
	require.ErrorIs(t, err, ErrFindings)

	var findings []struct {
		File     string `json:"file"`
		Line     int    `json:"line"`
		Check    string `json:"check"`
		Severity string `json:"severity"`
		Fixable  bool   `json:"fixable"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &findings))
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "demo.go", f.File)
	assert.Equal(t, 5, f.Line)
	assert.Equal(t, "SelfAssignment", f.Check)
	assert.Equal(t, "error", f.Severity)
	assert.True(t, f.Fixable)
}

func TestCheckFix(t *testing.T) {
	t.Parallel()

	dir := module(t, map[string]string{"demo.go": demo})

	out, errOut, err := execute(t, "check", "-C", dir, "--fix")
	require.NoError(t, err, "fixed findings do not fail the check")

	assert.Contains(t, out, "(fixed)")
	assert.Contains(t, errOut, "Fixed 1 finding in demo.go")

	got, err := os.ReadFile(filepath.Join(dir, "demo.go"))
	require.NoError(t, err)

	assert.Equal(t, `package demo

func f() int {
	x := 1
	return x
}
`, string(got))
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	dir := module(t, map[string]string{
		"demo.go":       demo,
		".bugscan.yaml": "severity:\n  selfassignment: warning\n",
	})

	out, _, err := execute(t, "check", "-C", dir)
	require.NoError(t, err, "warnings do not fail the check")

	assert.Contains(t, out, "warning: [SelfAssignment]")

	out, _, err = execute(t, "check", "-C", dir, "--disable=SelfAssignment")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckSuppressed(t *testing.T) {
	t.Parallel()

	dir := module(t, map[string]string{"demo.go": `package demo

func f() int {
	x := 1
	x = x //nolint:SelfAssignment
	return x
}
`})

	out, _, err := execute(t, "check", "-C", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
}
