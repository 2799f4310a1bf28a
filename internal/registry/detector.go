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

// Package registry holds the detector descriptors and dispatches them by node kind.
package registry

import (
	"go/ast"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/fix"
	"fillmore-labs.com/bugscan/internal/matcher"
	"fillmore-labs.com/bugscan/internal/report"
	"fillmore-labs.com/bugscan/internal/state"
	"fillmore-labs.com/bugscan/internal/tree"
)

// Category groups detectors by the library or idiom they check.
type Category string

// Detector categories.
const (
	CategoryStdlib      Category = "stdlib"
	CategoryConcurrency Category = "concurrency"
	CategoryInject      Category = "inject"
	CategoryStyle       Category = "style"
	CategoryOneOff      Category = "one-off"
)

// DescribeFunc builds the finding for a matched node.
type DescribeFunc func(d *Detector, n ast.Node, s state.State) report.Description

// Detector is an immutable detector descriptor.
type Detector struct {
	// Name is the unique identifier used in messages and suppressions.
	Name string
	// AltNames are further identifiers that suppress this detector.
	AltNames []string

	Summary     string
	Explanation string
	Link        string

	Category Category
	Severity report.Severity
	Maturity level.Maturity

	// Disabled detectors only run when explicitly enabled.
	Disabled bool

	// Kinds are the node kinds the detector is dispatched on.
	Kinds []tree.Kind
	// Matcher selects the nodes to report.
	Matcher matcher.Matcher
	// Describe builds the finding. When nil, the finding carries the summary and no fix.
	Describe DescribeFunc
}

// Names returns the identifier followed by the alternate identifiers.
func (d *Detector) Names() []string {
	names := make([]string, 0, 1+len(d.AltNames))
	names = append(names, d.Name)

	return append(names, d.AltNames...)
}

// Match applies the matcher of d.
func (d *Detector) Match(n ast.Node, s state.State) bool {
	return d.Matcher(n, s)
}

// Description returns the finding for a matched node.
func (d *Detector) Description(n ast.Node, s state.State) report.Description {
	if d.Describe == nil {
		return d.Finding(n, d.Summary, nil)
	}

	return d.Describe(d, n, s)
}

// Finding returns a finding of d for n with the given message and optional fix.
func (d *Detector) Finding(n ast.Node, message string, f *fix.SuggestedFix) report.Description {
	return report.Description{
		Node:     n,
		Check:    d.Name,
		Message:  message,
		Severity: d.Severity,
		Link:     d.Link,
		Fix:      f,
	}
}
