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
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fillmore-labs.com/bugscan/internal/registry"
)

func (a *app) listCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available detectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings(cmd)
			if err != nil {
				return err
			}

			return a.list(s, all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include detectors that are not enabled")

	return cmd
}

func (a *app) list(s settings, all bool) error {
	detectors := s.registry.Enabled()
	if all {
		detectors = s.registry.All()
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tSEVERITY\tMATURITY\tENABLED\tSUMMARY")

	for _, d := range detectors {
		sev := d.Severity
		if o, ok := s.overrides[d.Name]; ok {
			sev = o
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", displayName(d), sev, d.Maturity, yesNo(enabled(s.registry, d)), d.Summary)
	}

	return w.Flush()
}

func displayName(d *registry.Detector) string {
	if len(d.AltNames) == 0 {
		return d.Name
	}

	return d.Name + " (" + strings.Join(d.AltNames, ", ") + ")"
}

func enabled(r *registry.Registry, d *registry.Detector) bool {
	return slices.Contains(r.Enabled(), d)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
