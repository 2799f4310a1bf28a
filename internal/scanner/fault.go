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

package scanner

import (
	"fmt"
	"go/ast"

	"fillmore-labs.com/bugscan/internal/registry"
)

// Fault is a detector that panicked while matching or describing a node.
type Fault struct {
	Detector string
	Node     ast.Node
	Err      error
}

func newFault(d *registry.Detector, n ast.Node, r any) Fault {
	err, ok := r.(error)
	if ok {
		err = fmt.Errorf("panic: %w", err)
	} else {
		err = fmt.Errorf("panic: %v", r)
	}

	return Fault{Detector: d.Name, Node: n, Err: err}
}

// Error implements [error].
func (f Fault) Error() string {
	return fmt.Sprintf("detector %s failed on %s: %v", f.Detector, f.NodeType(), f.Err)
}

// Unwrap returns the underlying error.
func (f Fault) Unwrap() error { return f.Err }

// NodeType returns the syntax type of the node, like "*ast.AssignStmt".
func (f Fault) NodeType() string { return fmt.Sprintf("%T", f.Node) }
