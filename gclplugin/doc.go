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

// Package gclplugin registers the [bugscan] analyzer as a golangci-lint module plugin.
//
// Build a custom golangci-lint binary that includes the plugin with a `.custom-gcl.yaml`:
//
//	version: v2.7.0
//	plugins:
//	  - module: fillmore-labs.com/bugscan
//	    import: fillmore-labs.com/bugscan/gclplugin
//	    version: v0.0.1
//
// and `golangci-lint custom`. The linter is then enabled as a custom module linter:
//
//	linters:
//	  enable:
//	    - bugscan
//	  settings:
//	    custom:
//	      bugscan:
//	        type: module
//	        settings:
//	          maturity: experimental
//	          fixes: true
//	          enable: [ImmutableExportedField]
//	          disable: [ReturnValueIgnored]
//
// # Settings
//
//   - maturity: "mature" (default) or "experimental", the least mature detectors to run.
//   - fixes: attach suggested fixes to findings, on by default.
//   - enable: detectors to run regardless of maturity.
//   - disable: detectors never to run.
//
// Generated files are always handed to the analyzer, since golangci-lint filters
// them itself. Findings can be suppressed with //nolint:bugscan, or with the
// detector name instead of the linter name.
//
// [bugscan]: https://pkg.go.dev/fillmore-labs.com/bugscan/analyzer
package gclplugin
