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
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/bugscan/internal/tree"
)

var (
	// ErrInvalidDetector is returned for a malformed detector descriptor.
	ErrInvalidDetector = errors.New("invalid detector")

	// ErrDuplicateName is returned when two detectors share an identifier.
	ErrDuplicateName = errors.New("duplicate detector name")
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Registry maps node kinds to the enabled detectors for a run.
type Registry struct {
	byKind    [tree.NumKinds][]*Detector
	detectors []*Detector
	all       []*Detector
}

// New validates the descriptors and builds a registry with the detectors enabled selects.
// A nil predicate selects [Default].
func New(detectors []*Detector, enabled EnabledPredicate) (*Registry, error) {
	if enabled == nil {
		enabled = Default
	}

	seen := make(map[string]string)

	for _, d := range detectors {
		if err := validate(d); err != nil {
			return nil, err
		}

		for _, name := range d.Names() {
			key := strings.ToLower(name)
			if owner, ok := seen[key]; ok {
				return nil, fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateName, name, owner, d.Name)
			}

			seen[key] = d.Name
		}
	}

	r := &Registry{all: slices.Clone(detectors)}
	slices.SortFunc(r.all, compareNames)

	for _, d := range r.all {
		if !enabled(d) {
			continue
		}

		r.detectors = append(r.detectors, d)
		for _, k := range d.Kinds {
			if !slices.Contains(r.byKind[k], d) {
				r.byKind[k] = append(r.byKind[k], d)
			}
		}
	}

	return r, nil
}

// MustNew is like [New] but panics on invalid descriptors.
func MustNew(detectors []*Detector, enabled EnabledPredicate) *Registry {
	r, err := New(detectors, enabled)
	if err != nil {
		panic(err)
	}

	return r
}

func validate(d *Detector) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDetector)
	}

	for _, name := range d.Names() {
		if !namePattern.MatchString(name) {
			return fmt.Errorf("%w: malformed name %q", ErrInvalidDetector, name)
		}
	}

	if len(d.Kinds) == 0 {
		return fmt.Errorf("%w: %s has no node kinds", ErrInvalidDetector, d.Name)
	}

	for _, k := range d.Kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: %s has invalid node kind %v", ErrInvalidDetector, d.Name, k)
		}
	}

	if d.Matcher == nil {
		return fmt.Errorf("%w: %s has no matcher", ErrInvalidDetector, d.Name)
	}

	if d.Summary == "" {
		return fmt.Errorf("%w: %s has no summary", ErrInvalidDetector, d.Name)
	}

	return nil
}

func compareNames(a, b *Detector) int { return cmp.Compare(a.Name, b.Name) }

// For returns the enabled detectors dispatched on kind k, ordered by name.
func (r *Registry) For(k tree.Kind) []*Detector {
	if int(k) >= tree.NumKinds {
		return nil
	}

	return r.byKind[k]
}

// Enabled returns the enabled detectors ordered by name.
func (r *Registry) Enabled() []*Detector { return r.detectors }

// All returns every registered detector ordered by name, enabled or not.
func (r *Registry) All() []*Detector { return r.all }

// Lookup finds a registered detector by identifier or alternate identifier.
func (r *Registry) Lookup(name string) (*Detector, bool) {
	for _, d := range r.all {
		if slices.ContainsFunc(d.Names(), func(n string) bool { return strings.EqualFold(n, name) }) {
			return d, true
		}
	}

	return nil, false
}

// Empty reports whether no detector is enabled.
func (r *Registry) Empty() bool { return len(r.detectors) == 0 }
