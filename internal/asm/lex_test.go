// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	l := newLexer("loop: ADD 0x0F ; add\n  -3 %\n12z")
	want := []Item{
		{Ident, Pos{1, 1}, "loop"},
		{Colon, Pos{1, 5}, nil},
		{Ident, Pos{1, 7}, "ADD"},
		{Int, Pos{1, 11}, 15},
		{Newline, Pos{1, 16}, nil},
		{Minus, Pos{2, 3}, nil},
		{Int, Pos{2, 4}, 3},
		{Raw, Pos{2, 6}, "%"},
		{Newline, Pos{2, 7}, nil},
		{Raw, Pos{3, 1}, "12z"},
		{EOF, Pos{3, 4}, nil},
		{EOF, Pos{3, 4}, nil},
	}
	for i, w := range want {
		got := l.Lex()
		if !assert.Equal(t, w, got, "token %d", i) {
			return
		}
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, `identifier "LDA"`, Item{Type: Ident, Value: "LDA"}.String())
	assert.Equal(t, "number 42", Item{Type: Int, Value: 42}.String())
	assert.Equal(t, "end of line", Item{Type: Newline}.String())
	assert.Equal(t, "line 3 col 7", Pos{3, 7}.String())
}
