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
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/bugscan/internal/registry"
	"fillmore-labs.com/bugscan/internal/run"
)

func (a *app) explainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain ID",
		Short: "Describe a detector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd)
			if err != nil {
				return err
			}

			d, ok := s.registry.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", run.ErrUnknownDetector, args[0])
			}

			a.explain(s, d)

			return nil
		},
	}
}

func (a *app) explain(s settings, d *registry.Detector) {
	sev := d.Severity
	if o, ok := s.overrides[d.Name]; ok {
		sev = o
	}

	fmt.Fprintf(a.out, "%s (%s, %s", a.styles.name.Sprint(d.Name), a.styles.severityOf(sev).Sprint(sev), d.Maturity)
	if !enabled(s.registry, d) {
		fmt.Fprint(a.out, ", disabled")
	}

	fmt.Fprintln(a.out, ")")

	if len(d.AltNames) > 0 {
		fmt.Fprintln(a.out, "Also known as:", strings.Join(d.AltNames, ", "))
	}

	if d.Category != "" {
		fmt.Fprintln(a.out, "Category:", d.Category)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, d.Summary)

	if d.Explanation != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, strings.TrimSpace(d.Explanation))
	}

	if d.Link != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, a.styles.faint.Sprint(d.Link))
	}
}
