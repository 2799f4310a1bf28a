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
	"log/slog"
	"slices"

	"fillmore-labs.com/bugscan/analyzer/level"
	"fillmore-labs.com/bugscan/internal/config"
	"fillmore-labs.com/bugscan/internal/run"
)

// Option configures specific behavior of a [New] bugscan analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithMaturity is an [Option] to enable detectors up to the given maturity level.
func WithMaturity(maturity level.Maturity) Option { return maturityOption{maturity: maturity} }

type maturityOption struct{ maturity level.Maturity }

func (o maturityOption) apply(r *run.Options) {
	r.Maturity = o.maturity
}

func (o maturityOption) LogAttr() slog.Attr {
	return slog.String("maturity", o.maturity.String())
}

// WithEnable is an [Option] to enable detectors by name, regardless of their maturity.
func WithEnable(names ...string) Option { return enableOption{names: slices.Clone(names)} }

type enableOption struct{ names []string }

func (o enableOption) apply(r *run.Options) {
	r.Enable = append(r.Enable, o.names...)
}

func (o enableOption) LogAttr() slog.Attr {
	return slog.Any("enable", o.names)
}

// WithDisable is an [Option] to disable detectors by name.
func WithDisable(names ...string) Option { return disableOption{names: slices.Clone(names)} }

type disableOption struct{ names []string }

func (o disableOption) apply(r *run.Options) {
	r.Disable = append(r.Disable, o.names...)
}

func (o disableOption) LogAttr() slog.Attr {
	return slog.Any("disable", o.names)
}
