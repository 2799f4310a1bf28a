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

package annotation

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"
)

// argParser reads the parenthesized argument list of an annotation.
type argParser struct {
	s   scanner.Scanner
	src string
	pos token.Pos
	tok token.Token
	lit string
	err error
}

func parseArgs(src string, values map[string][]string) error {
	p := &argParser{src: src}

	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(src))
	p.s.Init(file, []byte(src), func(_ token.Position, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s in %q", ErrSyntax, msg, src)
		}
	}, 0)

	p.next()
	p.expect(token.LPAREN)

	for p.err == nil && p.tok != token.RPAREN {
		key, vals := p.arg()
		values[key] = append(values[key], vals...)

		if p.tok != token.COMMA {
			break
		}

		p.next()
	}

	p.expect(token.RPAREN)

	if p.tok == token.SEMICOLON && p.lit == "\n" {
		p.next()
	}

	if p.err == nil && p.tok != token.EOF {
		p.fail("unexpected %s after arguments", p.tok)
	}

	return p.err
}

func (p *argParser) next() {
	p.pos, p.tok, p.lit = p.s.Scan()
}

func (p *argParser) fail(format string, args ...any) {
	if p.err != nil {
		return
	}

	p.err = fmt.Errorf("%w: %s in %q", ErrSyntax, fmt.Sprintf(format, args...), p.src)
}

func (p *argParser) expect(tok token.Token) {
	if p.tok != tok {
		p.fail("expected %s, found %s", tok, p.tok)
		return
	}

	p.next()
}

// arg parses `value`, `{value, ...}` or `key = value`.
func (p *argParser) arg() (key string, vals []string) {
	key = ValueKey

	if p.tok == token.IDENT {
		name := p.qualified()
		if p.tok != token.ASSIGN {
			return key, []string{name}
		}

		key = name
		p.next()
	}

	if p.tok != token.LBRACE {
		return key, p.appendValue(nil)
	}

	p.next()

	for p.err == nil && p.tok != token.RBRACE {
		vals = p.appendValue(vals)

		if p.tok != token.COMMA {
			break
		}

		p.next()
	}

	p.expect(token.RBRACE)

	return key, vals
}

// qualified reads an identifier, optionally dotted like mu or s.mu.
func (p *argParser) qualified() string {
	name := p.lit
	p.next()

	for p.tok == token.PERIOD {
		p.next()

		if p.tok != token.IDENT {
			p.fail("expected identifier after '.'")
			return name
		}

		name += "." + p.lit
		p.next()
	}

	return name
}

func (p *argParser) appendValue(vals []string) []string {
	switch p.tok {
	case token.STRING, token.CHAR:
		s, err := strconv.Unquote(p.lit)
		if err != nil {
			p.fail("invalid literal %s", p.lit)
			return vals
		}

		p.next()

		return append(vals, s)

	case token.INT, token.FLOAT:
		lit := p.lit
		p.next()

		return append(vals, lit)

	case token.IDENT:
		return append(vals, p.qualified())

	default:
		p.fail("unexpected %s", p.tok)
		return vals
	}
}
