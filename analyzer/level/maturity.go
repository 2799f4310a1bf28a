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

// Package level defines the detector maturity levels selectable for a run.
package level

import (
	"fmt"
	"strings"
)

// Maturity specifies how established a detector is.
type Maturity uint8

const (
	// Mature detectors have a low false positive rate and run by default.
	Mature Maturity = iota

	// Experimental detectors are new or noisy and run on request.
	Experimental
)

// Includes reports whether a run at level o includes detectors of maturity m.
func (o Maturity) Includes(m Maturity) bool {
	return m <= o
}

// String returns the textual form of the level.
func (o Maturity) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Maturity(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Maturity) MarshalText() ([]byte, error) {
	switch o {
	case Mature:
		return []byte("mature"), nil

	case Experimental:
		return []byte("experimental"), nil

	default:
		return nil, fmt.Errorf("unknown maturity level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Maturity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "mature", "stable", "false", "off":
		*o = Mature

	case "experimental", "all", "true", "on":
		*o = Experimental

	default:
		return fmt.Errorf("unknown maturity level %q", string(text))
	}

	return nil
}
