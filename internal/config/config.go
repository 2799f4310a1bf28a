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

package config

import "fmt"

// Behavior holds behavioral options of a run.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// SuggestFixes attaches the suggested fixes of findings to diagnostics.
	SuggestFixes

	// ReportMalformed reports annotations that cannot be parsed.
	ReportMalformed
)

// String returns the name of a single flag.
func (b Behavior) String() string {
	switch b {
	case IncludeGenerated:
		return "generated"

	case SuggestFixes:
		return "fixes"

	case ReportMalformed:
		return "malformed"

	default:
		return fmt.Sprintf("Behavior(%#x)", uint8(b))
	}
}

// DefaultBehavior returns the behavior of an unconfigured run.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(SuggestFixes, ReportMalformed)
}
