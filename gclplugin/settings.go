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

package gclplugin

import (
	"fillmore-labs.com/bugscan/analyzer"
	"fillmore-labs.com/bugscan/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Maturity enables detectors up to the given level.
	Maturity *level.Maturity `json:"maturity,omitzero"`
	// Fixes attaches suggested fixes to diagnostics.
	Fixes *bool `json:"fixes,omitzero"`
	// Enable lists detectors to enable regardless of maturity.
	Enable []string `json:"enable,omitzero"`
	// Disable lists detectors to disable.
	Disable []string `json:"disable,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the bugscan analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Maturity, analyzer.WithMaturity)
	opts = appendOption(opts, s.Fixes, analyzer.WithFixes)
	opts = appendList(opts, s.Enable, analyzer.WithEnable)
	opts = appendList(opts, s.Disable, analyzer.WithDisable)

	return opts
}

// appendOption appends a non-nil setting to a [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-empty list setting to a [analyzer.Option] list.
func appendList(opts []analyzer.Option, values []string, constructor func(...string) analyzer.Option) []analyzer.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values...))
}
