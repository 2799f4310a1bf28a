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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/bugscan/internal/config"
)

// NewBehaviorValue returns a boolean [flag.Value] toggling one behavior flag.
func NewBehaviorValue(b *config.BitMask[config.Behavior], value config.Behavior) flag.Getter {
	return behaviorValue{flags: b, value: value}
}

type behaviorValue struct {
	flags *config.BitMask[config.Behavior]
	value config.Behavior
}

// Set implements [flag.Value]. Besides the forms of [strconv.ParseBool], "on" and "off" are accepted.
func (f behaviorValue) Set(s string) error {
	var b bool

	switch strings.ToLower(s) {
	case "on", "yes":
		b = true

	case "off", "no":
		b = false

	default:
		var err error
		if b, err = strconv.ParseBool(s); err != nil {
			return err
		}
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value]. The zero value, used for usage messages, is false.
func (f behaviorValue) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f behaviorValue) Get() any { return f.enabled() }

// IsBoolFlag marks the value as a boolean flag, so it can be given without argument.
func (f behaviorValue) IsBoolFlag() bool { return true }

func (f behaviorValue) enabled() bool {
	return f.flags != nil && f.flags.Enabled(f.value)
}

// NewListValue returns a [flag.Value] collecting comma separated names.
// Repeated flags accumulate.
func NewListValue(names *[]string) flag.Getter {
	return listValue{names: names}
}

type listValue struct{ names *[]string }

// Set implements [flag.Value].
func (l listValue) Set(s string) error {
	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*l.names = append(*l.names, name)
		}
	}

	return nil
}

// String implements [flag.Value].
func (l listValue) String() string {
	if l.names == nil {
		return ""
	}

	return strings.Join(*l.names, ",")
}

// Get implements [flag.Getter].
func (l listValue) Get() any {
	if l.names == nil {
		return []string(nil)
	}

	return *l.names
}
