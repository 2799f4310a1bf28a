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

package report

import (
	"fmt"
	"strings"
)

// Severity is the importance of a finding.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// SeverityError marks findings that are almost certainly bugs.
	SeverityError Severity = iota // error

	// SeverityWarning marks findings that are likely bugs.
	SeverityWarning // warning

	// SeverityInfo marks findings that are not a problem in themselves.
	SeverityInfo // info
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	if s > SeverityInfo {
		return nil, fmt.Errorf("unknown severity %d", s)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "error":
		*s = SeverityError

	case "warning", "warn":
		*s = SeverityWarning

	case "info", "suggestion":
		*s = SeverityInfo

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}
