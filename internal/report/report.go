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

// Package report defines findings and hands them to diagnostic sinks.
package report

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/bugscan/internal/fix"
)

// Description is a single finding of a detector.
type Description struct {
	// Node is the matched node.
	Node ast.Node
	// Check is the identifier of the detector that produced the finding.
	Check    string
	Message  string
	Severity Severity
	// Link points to documentation of the check, if any.
	Link string
	// Fix is an optional suggested fix.
	Fix *fix.SuggestedFix
}

// Pos returns the start position of the finding.
func (d Description) Pos() token.Pos { return d.Node.Pos() }

// End returns the end position of the finding.
func (d Description) End() token.Pos { return d.Node.End() }

// String returns the message prefixed with the check identifier.
func (d Description) String() string {
	return "[" + d.Check + "] " + d.Message
}

// Sink receives findings.
type Sink interface {
	Report(d Description)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(d Description)

// Report implements [Sink].
func (f SinkFunc) Report(d Description) { f(d) }

// Collector is a [Sink] that keeps findings in report order.
type Collector struct {
	descriptions []Description
}

// Report implements [Sink].
func (c *Collector) Report(d Description) {
	c.descriptions = append(c.descriptions, d)
}

// Descriptions returns the collected findings.
func (c *Collector) Descriptions() []Description {
	return c.descriptions
}

// ApplyFixes rewrites src with the suggested fixes of findings in the same file.
// The indices in the result refer to descs.
func ApplyFixes(src []byte, descs []Description) ([]byte, fix.Result) {
	fixes := make([]*fix.SuggestedFix, len(descs))
	for i, d := range descs {
		fixes[i] = d.Fix
	}

	return fix.Apply(src, fixes)
}
