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

package run

import (
	"errors"
	"fmt"
	"sync"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/bugpatterns"
	"fillmore-labs.com/bugscan/internal/config"
	"fillmore-labs.com/bugscan/internal/registry"
)

// ErrUnknownDetector is returned when a detector selected by name is not registered.
var ErrUnknownDetector = errors.New("unknown detector")

// Options represent configuration options for the bugscan analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Maturity is the least established detector level enabled by default.
	Maturity level.Maturity

	// Enable and Disable select detectors by name on top of the maturity level.
	Enable, Disable []string

	registry func() (*registry.Registry, error)
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	o := &Options{
		Behavior: config.DefaultBehavior(),
		Maturity: level.Mature,
	}
	o.registry = sync.OnceValues(o.buildRegistry)

	return o
}

// Registry returns the detectors selected by the options.
// It is built on first use, so options may be changed until then.
func (o *Options) Registry() (*registry.Registry, error) {
	if o.registry == nil {
		return o.buildRegistry()
	}

	return o.registry()
}

func (o *Options) buildRegistry() (*registry.Registry, error) {
	detectors := bugpatterns.All()

	enabled := registry.Except(registry.Enable(registry.AtMaturity(o.Maturity), o.Enable...), o.Disable...)

	r, err := registry.New(detectors, enabled)
	if err != nil {
		return nil, err
	}

	for _, names := range [...][]string{o.Enable, o.Disable} {
		for _, name := range names {
			if _, ok := r.Lookup(name); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownDetector, name)
			}
		}
	}

	return r, nil
}
