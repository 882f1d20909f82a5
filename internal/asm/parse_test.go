// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package asm_test

import (
	"testing"

	"github.com/DanStevens/DigitalElectronics-sub000/internal/asm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `
; three times table
	ldi 3
	STA 15
start:
loop: ADD 15  ; comment
	out
	JMP loop
	DB -1
	42
`
	stmts, err := asm.Parse(src)
	require.NoError(t, err)
	want := []asm.Statement{
		{Mnemonic: "LDI", Operand: asm.Operand{Value: 3, Pos: asm.Pos{3, 6}}, HasOperand: true, Pos: asm.Pos{3, 2}},
		{Mnemonic: "STA", Operand: asm.Operand{Value: 15, Pos: asm.Pos{4, 6}}, HasOperand: true, Pos: asm.Pos{4, 2}},
		{Label: "start", Pos: asm.Pos{5, 1}},
		{Label: "loop", Mnemonic: "ADD", Operand: asm.Operand{Value: 15, Pos: asm.Pos{6, 11}}, HasOperand: true, Pos: asm.Pos{6, 7}},
		{Mnemonic: "OUT", Pos: asm.Pos{7, 2}},
		{Mnemonic: "JMP", Operand: asm.Operand{Label: "loop", Pos: asm.Pos{8, 6}}, HasOperand: true, Pos: asm.Pos{8, 2}},
		{Mnemonic: "DB", Operand: asm.Operand{Value: -1, Pos: asm.Pos{9, 5}}, HasOperand: true, Pos: asm.Pos{9, 2}},
		{Operand: asm.Operand{Value: 42, Pos: asm.Pos{10, 2}}, HasOperand: true, Pos: asm.Pos{10, 2}},
	}
	assert.Equal(t, want, stmts)
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		src string
		pos asm.Pos
	}{
		{"LDA 1 2", asm.Pos{1, 7}},
		{"LDA %", asm.Pos{1, 5}},
		{"\n  ADD -x", asm.Pos{2, 8}},
		{"x: : y", asm.Pos{1, 4}},
	}
	for _, d := range td {
		_, err := asm.Parse(d.src)
		require.Error(t, err, d.src)
		e, ok := errors.Cause(err).(*asm.Error)
		require.True(t, ok, "%q: error type %T", d.src, errors.Cause(err))
		assert.Equal(t, d.pos, e.Pos, d.src)
	}
}
