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

// Package annotation parses declaration annotations written as comment directives.
//
// An annotation is a doc comment line of the form
//
//	//@Name
//	//@Name("literal", ident)
//	//@Name(key = "value", other = {"a", "b"})
//
// Positional arguments are collected under the key [ValueKey].
package annotation

import (
	"errors"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// SuppressWarnings is the annotation that disables detectors for a declaration and everything inside it.
const SuppressWarnings = "SuppressWarnings"

// ValueKey holds the positional arguments of an annotation.
const ValueKey = "value"

// ErrSyntax is returned for malformed annotation arguments.
var ErrSyntax = errors.New("annotation syntax error")

// Annotation is a parsed comment annotation.
type Annotation struct {
	Name   string
	Values map[string][]string

	// Comment is the comment line the annotation was read from.
	Comment *ast.Comment
}

// Pos returns the start of the annotation comment.
func (a Annotation) Pos() token.Pos {
	if a.Comment == nil {
		return token.NoPos
	}

	return a.Comment.Pos()
}

// End returns the end of the annotation comment.
func (a Annotation) End() token.Pos {
	if a.Comment == nil {
		return token.NoPos
	}

	return a.Comment.End()
}

// Value returns the positional arguments.
func (a Annotation) Value() []string { return a.Values[ValueKey] }

// Get returns the arguments given for key.
func (a Annotation) Get(key string) []string { return a.Values[key] }

// Is reports whether the annotation has the given name.
func (a Annotation) Is(name string) bool { return a.Name == name }

// FromCommentGroup extracts all annotations from a comment group.
// Malformed annotations are skipped and returned as errors.
func FromCommentGroup(cg *ast.CommentGroup) ([]Annotation, []error) {
	if cg == nil {
		return nil, nil
	}

	var (
		as   []Annotation
		errs []error
	)

	for _, c := range cg.List {
		a, ok, err := Parse(c.Text)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if !ok {
			continue
		}

		a.Comment = c
		as = append(as, a)
	}

	return as, errs
}

// Parse parses a single comment line. It returns false when the comment is not an annotation.
func Parse(text string) (Annotation, bool, error) {
	rest, ok := strings.CutPrefix(text, "//")
	if !ok {
		return Annotation{}, false, nil
	}

	rest = strings.TrimLeft(rest, " \t")

	rest, ok = strings.CutPrefix(rest, "@")
	if !ok {
		return Annotation{}, false, nil
	}

	end := strings.IndexFunc(rest, func(r rune) bool { return !isIdentRune(r) })
	if end < 0 {
		end = len(rest)
	}

	name := rest[:end]
	if name == "" || !token.IsIdentifier(name) {
		return Annotation{}, false, nil
	}

	a := Annotation{Name: name, Values: map[string][]string{}}

	args := strings.TrimSpace(rest[end:])
	if args == "" {
		return a, true, nil
	}

	if args[0] != '(' {
		// "//@Name some text" is prose, not an annotation.
		return Annotation{}, false, nil
	}

	if err := parseArgs(args, a.Values); err != nil {
		return Annotation{}, false, err
	}

	return a, true, nil
}

// Find returns the first annotation named name.
func Find(as []Annotation, name string) (Annotation, bool) {
	i := slices.IndexFunc(as, func(a Annotation) bool { return a.Name == name })
	if i < 0 {
		return Annotation{}, false
	}

	return as[i], true
}

func isIdentRune(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
