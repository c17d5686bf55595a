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

package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/scanner"
	"go/token"
	"strconv"
)

// Errors returned by [Parse] and [Duplicate]. All of them describe a malformed promotion marker payload.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrUnknownKey     = errors.New("unknown key")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrAlias          = errors.New("dispatch alias is not a valid identifier")
	ErrNotArray       = errors.New("consts must be an array of literals")
	ErrNotLiteral     = errors.New("not a literal")
	ErrDuplicateConst = errors.New("duplicate candidate")
)

// Marker is a parsed promotion marker.
type Marker struct {
	// Comment is the marker comment.
	Comment *ast.Comment

	// Dispatch is the dispatch alias, empty when not given.
	Dispatch string

	// Consts are the candidate literals in declaration order.
	Consts []Literal
}

// Literal is a candidate value of a promotable parameter.
type Literal struct {
	// Expr is a position-free expression for the literal.
	Expr ast.Expr

	// Text is the canonical source text.
	Text string

	// Value is the constant value, used for matching and duplicate detection.
	Value constant.Value

	// Kind is the literal token (INT, FLOAT, IMAG, CHAR or STRING), or IDENT for booleans.
	// It determines the default type the literal takes when converted to an interface.
	Kind token.Token
}

// Parse parses the payload of a promotion marker comment.
func Parse(c *ast.Comment) (Marker, error) {
	payload, ok := promotePayload(c)
	if !ok {
		return Marker{}, fmt.Errorf("%w: %q is not a %s directive", ErrSyntax, c.Text, PromoteDirective)
	}

	p := newParser(payload)

	m, err := p.parseMarker()
	if err != nil {
		return Marker{}, err
	}

	m.Comment = c

	return m, nil
}

type parser struct {
	s    scanner.Scanner
	errs scanner.ErrorList
	tok  token.Token
	lit  string
}

func newParser(payload string) *parser {
	src := []byte(payload)

	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(src))

	p := &parser{}
	p.s.Init(file, src, func(pos token.Position, msg string) { p.errs.Add(pos, msg) }, 0)
	p.next()

	return p
}

func (p *parser) next() {
	_, p.tok, p.lit = p.s.Scan()

	// automatically inserted semicolons terminate the payload
	if p.tok == token.SEMICOLON && p.lit == "\n" {
		p.tok = token.EOF
	}
}

func (p *parser) scanErr() error {
	if len(p.errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrSyntax, p.errs[0].Msg)
}

func (p *parser) parseMarker() (Marker, error) {
	var (
		m    Marker
		seen = make(map[string]bool, 2)
	)

	for p.tok != token.EOF {
		if err := p.scanErr(); err != nil {
			return Marker{}, err
		}

		if p.tok == token.COMMA {
			p.next()
			continue
		}

		if p.tok != token.IDENT {
			return Marker{}, fmt.Errorf("%w: expected key, found %s", ErrSyntax, p.describe())
		}

		key := p.lit
		if seen[key] {
			return Marker{}, fmt.Errorf("%w %q", ErrDuplicateKey, key)
		}

		seen[key] = true

		p.next()

		if p.tok != token.ASSIGN {
			return Marker{}, fmt.Errorf("%w: expected '=' after %q, found %s", ErrSyntax, key, p.describe())
		}

		p.next()

		var err error

		switch key {
		case "dispatch":
			m.Dispatch, err = p.parseAlias()

		case "consts":
			m.Consts, err = p.parseConsts()

		default:
			err = fmt.Errorf("%w %q", ErrUnknownKey, key)
		}

		if err != nil {
			return Marker{}, err
		}
	}

	if err := p.scanErr(); err != nil {
		return Marker{}, err
	}

	return m, nil
}

func (p *parser) parseAlias() (string, error) {
	if p.tok != token.IDENT || p.lit == "_" {
		return "", fmt.Errorf("%w: %s", ErrAlias, p.describe())
	}

	alias := p.lit
	p.next()

	return alias, nil
}

func (p *parser) parseConsts() ([]Literal, error) {
	if p.tok != token.LBRACK {
		return nil, fmt.Errorf("%w, found %s", ErrNotArray, p.describe())
	}

	p.next()

	var consts []Literal

	for p.tok != token.RBRACK {
		if err := p.scanErr(); err != nil {
			return nil, err
		}

		if p.tok == token.EOF {
			return nil, fmt.Errorf("%w: missing ']'", ErrNotArray)
		}

		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}

		consts = append(consts, lit)

		switch p.tok {
		case token.COMMA:
			p.next()

		case token.RBRACK:

		default:
			return nil, fmt.Errorf("%w: expected ',' or ']', found %s", ErrNotArray, p.describe())
		}
	}

	p.next()

	return consts, nil
}

func (p *parser) parseLiteral() (Literal, error) {
	switch p.tok {
	case token.ADD, token.SUB:
		op := p.tok
		p.next()

		switch p.tok {
		case token.INT, token.FLOAT, token.IMAG:
		default:
			return Literal{}, fmt.Errorf("%w: %s%s", ErrNotLiteral, op, p.describe())
		}

		lit, err := p.parseLiteral()
		if err != nil {
			return Literal{}, err
		}

		return Literal{
			Expr:  &ast.UnaryExpr{Op: op, X: lit.Expr},
			Text:  op.String() + lit.Text,
			Value: constant.UnaryOp(op, lit.Value, 0),
			Kind:  lit.Kind,
		}, nil

	case token.INT, token.FLOAT, token.IMAG, token.CHAR, token.STRING:
		kind, text := p.tok, p.lit

		value := constant.MakeFromLiteral(text, kind, 0)
		if value.Kind() == constant.Unknown {
			return Literal{}, fmt.Errorf("%w: malformed %s %s", ErrNotLiteral, kind, text)
		}

		p.next()

		return Literal{Expr: &ast.BasicLit{Kind: kind, Value: text}, Text: text, Value: value, Kind: kind}, nil

	case token.IDENT:
		if text := p.lit; text == "true" || text == "false" {
			p.next()

			return Literal{Expr: ast.NewIdent(text), Text: text, Value: constant.MakeBool(text == "true"), Kind: token.IDENT}, nil
		}
	}

	return Literal{}, fmt.Errorf("%w: %s", ErrNotLiteral, p.describe())
}

func (p *parser) describe() string {
	switch {
	case p.tok == token.EOF:
		return "end of marker"

	case p.lit != "":
		return strconv.Quote(p.lit)

	default:
		return "'" + p.tok.String() + "'"
	}
}

// Equal reports whether two constant values are equal. Values of incomparable kinds are never equal.
func Equal(x, y constant.Value) bool {
	kx, ky := x.Kind(), y.Kind()
	if kx != ky && (!numeric(kx) || !numeric(ky)) {
		return false
	}

	return constant.Compare(x, token.EQL, y)
}

// Identical reports whether two candidates are equal values of the same default type,
// which is how they compare as arguments of an interface typed parameter: any(1) != any(1.0).
func Identical(x, y Literal) bool {
	return x.Kind == y.Kind && Equal(x.Value, y.Value)
}

// Duplicate returns an error wrapping [ErrDuplicateConst] when two candidates select the
// same arguments. With dynamic set the parameter has interface type and candidates are
// compared with [Identical], otherwise with [Equal].
func Duplicate(consts []Literal, dynamic bool) error {
	for i, lit := range consts {
		for _, prev := range consts[:i] {
			same := Equal(prev.Value, lit.Value)
			if dynamic {
				same = Identical(prev, lit)
			}

			if same {
				return fmt.Errorf("%w %s (same as %s)", ErrDuplicateConst, lit.Text, prev.Text)
			}
		}
	}

	return nil
}

func numeric(k constant.Kind) bool {
	return k == constant.Int || k == constant.Float || k == constant.Complex
}
