// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package asm

import (
	"strings"

	"github.com/pkg/errors"
)

// Operand is an instruction operand: either a number or a reference to a
// label.
//
type Operand struct {
	Value int
	Label string
	Pos   Pos
}

// Statement is one line of source. Mnemonic is upper case and empty for raw
// data lines, in which case Operand holds the data.
//
type Statement struct {
	Label      string
	Mnemonic   string
	Operand    Operand
	HasOperand bool
	Pos        Pos
}

// Error is a syntax error.
//
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func parseError(pos Pos, msg string) error {
	return errors.WithStack(&Error{pos, msg})
}

// parser reads statements one line at a time.
//
type parser struct {
	l *lexer
	i Item
}

func (p *parser) advance() { p.i = p.l.Lex() }

// Parse parses src and returns its statements. Empty and comment only lines
// are skipped.
//
func Parse(src string) ([]Statement, error) {
	p := &parser{l: newLexer(src)}
	p.advance()
	var stmts []Statement
	for p.i.Type != EOF {
		s, ok, err := p.statement()
		if err != nil {
			return nil, err
		}
		if ok {
			stmts = append(stmts, s)
		}
	}
	return stmts, nil
}

// statement parses one line, including the terminating newline.
func (p *parser) statement() (s Statement, ok bool, err error) {
	s.Pos = p.i.Pos
	if p.i.Type == Ident {
		name, pos := p.i.Value.(string), p.i.Pos
		p.advance()
		if p.i.Type == Colon {
			s.Label = name
			p.advance()
		} else {
			s.Mnemonic = strings.ToUpper(name)
			s.Pos = pos
		}
	}
	if s.Mnemonic == "" {
		switch p.i.Type {
		case Ident:
			s.Mnemonic = strings.ToUpper(p.i.Value.(string))
			s.Pos = p.i.Pos
			p.advance()
		case Int, Minus:
			s.Pos = p.i.Pos
		}
	}
	if p.i.Type == Int || p.i.Type == Minus || p.i.Type == Ident && s.Mnemonic != "" {
		if s.Operand, err = p.operand(); err != nil {
			return s, false, err
		}
		s.HasOperand = true
	}
	switch p.i.Type {
	case Newline:
		p.advance()
	case EOF:
	default:
		return s, false, parseError(p.i.Pos, "unexpected "+p.i.String())
	}
	return s, s.Label != "" || s.Mnemonic != "" || s.HasOperand, nil
}

func (p *parser) operand() (Operand, error) {
	o := Operand{Pos: p.i.Pos}
	switch p.i.Type {
	case Ident:
		o.Label = p.i.Value.(string)
	case Minus:
		p.advance()
		if p.i.Type != Int {
			return o, parseError(p.i.Pos, "number expected after '-'")
		}
		o.Value = -p.i.Value.(int)
	case Int:
		o.Value = p.i.Value.(int)
	default:
		return o, parseError(p.i.Pos, "operand expected, got "+p.i.String())
	}
	p.advance()
	return o, nil
}
