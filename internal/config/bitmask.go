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

import (
	"log/slog"
	"math/bits"
	"strings"
)

// Flag is a single bit of a [BitMask].
type Flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
	String() string
}

// BitMask is a set of flags.
type BitMask[T Flag] struct {
	value T
}

// NewBitMask returns a [BitMask] with flags set.
func NewBitMask[T Flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets flag.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= flag
}

// Disable clears flag.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= flag
}

// Enabled reports whether flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}

// Flags returns the set flags in ascending order.
func (b BitMask[T]) Flags() []T {
	var flags []T

	for v := uint64(b.value); v != 0; v &= v - 1 {
		flags = append(flags, T(1)<<bits.TrailingZeros64(v))
	}

	return flags
}

// String returns the names of the set flags joined by "|".
func (b BitMask[T]) String() string {
	flags := b.Flags()
	if len(flags) == 0 {
		return "none"
	}

	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}

	return strings.Join(names, "|")
}

// LogValue implements [slog.LogValuer].
func (b BitMask[T]) LogValue() slog.Value {
	return slog.StringValue(b.String())
}
