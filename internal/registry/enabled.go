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

package registry

import (
	"slices"
	"strings"

	"fillmore-labs.com/bugscan/analyzer/level"
)

// EnabledPredicate decides whether a detector takes part in a run.
type EnabledPredicate func(d *Detector) bool

// Default enables mature detectors that are not disabled by default.
func Default(d *Detector) bool {
	return AtMaturity(level.Mature)(d)
}

// AtMaturity enables detectors not disabled by default up to the given maturity.
func AtMaturity(m level.Maturity) EnabledPredicate {
	return func(d *Detector) bool {
		return !d.Disabled && m.Includes(d.Maturity)
	}
}

// Only enables the named detectors, regardless of maturity.
func Only(names ...string) EnabledPredicate {
	return func(d *Detector) bool { return named(d, names) }
}

// Enable adds the named detectors to base.
func Enable(base EnabledPredicate, names ...string) EnabledPredicate {
	if len(names) == 0 {
		return base
	}

	return func(d *Detector) bool { return named(d, names) || base(d) }
}

// Except removes the named detectors from base.
func Except(base EnabledPredicate, names ...string) EnabledPredicate {
	if len(names) == 0 {
		return base
	}

	return func(d *Detector) bool { return !named(d, names) && base(d) }
}

func named(d *Detector, names []string) bool {
	return slices.ContainsFunc(d.Names(), func(n string) bool {
		return slices.ContainsFunc(names, func(m string) bool { return strings.EqualFold(n, m) })
	})
}
