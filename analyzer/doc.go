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

// Package analyzer implements the bugscan static analysis pass.
//
// # Overview
//
// bugscan walks every file once and runs a catalog of detectors ("bug patterns")
// at each node. Findings are reported as diagnostics of the form
//
//	[SelfAssignment] Variable assigned to itself
//
// where the bracketed identifier names the detector. Most detectors offer a
// suggested fix.
//
// # Suppression
//
// A declaration annotated with
//
//	//@SuppressWarnings("SelfAssignment")
//	func f() { ... }
//
// or documented with a //nolint:SelfAssignment directive disables the named
// detectors for the declaration and everything inside it. "all" disables every
// detector. A trailing //nolint directive applies to its line only.
//
// # Flags
//
//	-generated         check generated files
//	-maturity level    enable detectors up to level (mature, experimental)
//	-enable list       comma separated detectors to enable additionally
//	-disable list      comma separated detectors to disable
//	-fixes             suggest fixes (default true)
package analyzer
