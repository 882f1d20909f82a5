// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package asm implements the lexer and parser for BE-801 assembly source.
//
// The syntax is line based:
//
//	; comment
//	label:  MNEMONIC operand   ; operands are numbers or labels
//	        DB 42              ; raw byte
//	        12                 ; raw byte, same as DB 12
//	        ORG 14             ; move the location counter
//
// Numbers are decimal or use the 0x, 0o and 0b prefixes. Mnemonics are not
// interpreted by this package.
//
package asm

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Int
	Colon
	Minus
	Newline
)

var typeNames = [...]string{"end of input", "character", "identifier", "number", "':'", "'-'", "end of line"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "token " + strconv.Itoa(int(t))
	}
	return typeNames[t]
}

// Pos is a position in the input.
//
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return "line " + strconv.Itoa(p.Line) + " col " + strconv.Itoa(p.Col)
}

// Item is a token returned by the lexer. Value holds a string for Ident and
// Raw tokens and an int for Int tokens.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Raw:
		return "character " + strconv.Quote(i.Value.(string))
	case Int:
		return "number " + strconv.Itoa(i.Value.(int))
	}
	return i.Type.String()
}

type stateFn func(l *lexer) stateFn

type lexer struct {
	input string
	off   int  // offset of the next rune
	start int  // start offset of the current token
	pos   Pos  // position of the next rune
	prev  Pos  // position of the current rune
	tpos  Pos  // position of the current token
	r     rune // current rune
	width int
	items []Item
	state stateFn
}

func newLexer(input string) *lexer {
	return &lexer{input: input, pos: Pos{1, 1}, state: lexAny}
}

func (l *lexer) next() rune {
	if l.off >= len(l.input) {
		l.width = 0
		l.r = -1
		return l.r
	}
	r, w := utf8.DecodeRuneInString(l.input[l.off:])
	l.r, l.width = r, w
	l.prev = l.pos
	l.off += w
	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	} else {
		l.pos.Col++
	}
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	if l.width > 0 {
		l.off -= l.width
		l.pos = l.prev
	}
	l.width = 0
}

func (l *lexer) emit(t Type, v interface{}) {
	l.items = append(l.items, Item{t, l.tpos, v})
}

// Lex returns the next token.
//
func (l *lexer) Lex() Item {
	for len(l.items) == 0 {
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

func lexAny(l *lexer) stateFn {
	for {
		l.tpos = l.pos
		l.start = l.off
		r := l.next()
		switch {
		case r == -1:
			return lexEOF
		case r == '\n':
			l.emit(Newline, nil)
			return lexAny
		case r == ';':
			for r != '\n' && r != -1 {
				r = l.next()
			}
			if r == '\n' {
				l.emit(Newline, nil)
				return lexAny
			}
			return lexEOF
		case unicode.IsSpace(r):
			continue
		case r == ':':
			l.emit(Colon, nil)
		case r == '-':
			l.emit(Minus, nil)
		case '0' <= r && r <= '9':
			return lexNumber
		case unicode.IsLetter(r) || r == '_' || r == '.':
			return lexIdent
		default:
			l.emit(Raw, string(r))
		}
		return lexAny
	}
}

func lexNumber(l *lexer) stateFn {
	r := l.next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		r = l.next()
	}
	l.backup()
	s := l.input[l.start:l.off]
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		l.emit(Raw, s)
		return lexAny
	}
	l.emit(Int, int(v))
	return lexAny
}

func lexIdent(l *lexer) stateFn {
	r := l.next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' {
		r = l.next()
	}
	l.backup()
	l.emit(Ident, l.input[l.start:l.off])
	return lexAny
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lexer) stateFn {
	l.tpos = l.pos
	l.emit(EOF, nil)
	return lexEOF
}
