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

package fix

import "strings"

// ExpandLines widens r to whole lines when only blanks share its first line and
// only blanks or a line comment follow it on its last line.
// before is the source preceding r, after is the source following it.
func ExpandLines(before, after string, r Range) Range {
	lead := before[strings.LastIndexByte(before, '\n')+1:]
	if strings.TrimLeft(lead, " \t") != "" {
		return r
	}

	j := strings.IndexByte(after, '\n')
	if j < 0 {
		return r
	}

	if tail := strings.TrimSpace(after[:j]); tail != "" && !strings.HasPrefix(tail, "//") {
		return r
	}

	return Range{Start: r.Start - len(lead), End: r.End + j + 1}
}
