// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package be801

import (
	"fmt"
	"strings"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/DanStevens/DigitalElectronics-sub000/internal/asm"
	"github.com/pkg/errors"
)

var opcodes = func() map[string]Opcode {
	m := make(map[string]Opcode)
	for op, n := range mnemonics {
		if n != "" {
			m[n] = Opcode(op)
		}
	}
	return m
}()

// Assemble assembles a BE-801 program and returns its RAM image.
//
// Each line has the form
//
//	[label:] [mnemonic [operand]] [; comment]
//
// An operand is a number or a label. Numbers are decimal, hexadecimal (0x1F)
// or binary (0b101). A line with a bare number, or the DB directive, emits a
// data byte in the range [-128, 255]. ORG n moves the location counter to n.
//
// Instruction operands must be in the range [0, 15] and the image must fit in
// RAM; otherwise the returned error wraps digital.ErrRange. Syntax errors
// report the line and column of the offending token.
//
func Assemble(src string) ([]byte, error) {
	stmts, err := asm.Parse(src)
	if err != nil {
		return nil, err
	}

	// first pass: labels
	labels := make(map[string]int)
	pc := 0
	for _, s := range stmts {
		if s.Label != "" {
			if _, ok := labels[s.Label]; ok {
				return nil, errors.Errorf("%s: label %q redefined", s.Pos, s.Label)
			}
			labels[s.Label] = pc
		}
		switch s.Mnemonic {
		case "ORG":
			if !s.HasOperand || s.Operand.Label != "" {
				return nil, errors.Errorf("%s: ORG expects a numeric address", s.Pos)
			}
			pc = s.Operand.Value
		case "":
			if s.HasOperand {
				pc++
			}
		default:
			pc++
		}
		if pc < 0 || pc > RAMSize {
			return nil, errors.Wrapf(digital.ErrRange, "%s: address %d outside of RAM", s.Pos, pc)
		}
	}

	// second pass: encoding
	var image []byte
	pc = 0
	emit := func(b byte) {
		for len(image) <= pc {
			image = append(image, 0)
		}
		image[pc] = b
		pc++
	}
	value := func(o asm.Operand) (int, error) {
		if o.Label == "" {
			return o.Value, nil
		}
		v, ok := labels[o.Label]
		if !ok {
			return 0, errors.Errorf("%s: undefined label %q", o.Pos, o.Label)
		}
		return v, nil
	}
	for _, s := range stmts {
		switch s.Mnemonic {
		case "ORG":
			pc = s.Operand.Value
			continue
		case "", "DB":
			if !s.HasOperand {
				if s.Mnemonic == "DB" {
					return nil, errors.Errorf("%s: DB expects a value", s.Pos)
				}
				continue
			}
			v, err := value(s.Operand)
			if err != nil {
				return nil, err
			}
			if v < -128 || v > 255 {
				return nil, errors.Wrapf(digital.ErrRange, "%s: data value %d not in [-128, 255]", s.Operand.Pos, v)
			}
			emit(byte(v))
			continue
		}
		op, ok := opcodes[s.Mnemonic]
		if !ok {
			return nil, errors.Errorf("%s: unknown instruction %s", s.Pos, s.Mnemonic)
		}
		v := 0
		switch {
		case op.HasOperand() && !s.HasOperand:
			return nil, errors.Errorf("%s: %s expects an operand", s.Pos, s.Mnemonic)
		case !op.HasOperand() && s.HasOperand:
			return nil, errors.Errorf("%s: %s takes no operand", s.Operand.Pos, s.Mnemonic)
		case s.HasOperand:
			if v, err = value(s.Operand); err != nil {
				return nil, err
			}
			if v < 0 || v > 15 {
				return nil, errors.Wrapf(digital.ErrRange, "%s: operand %d not in [0, 15]", s.Operand.Pos, v)
			}
		}
		emit(byte(op)<<4 | byte(v))
	}
	return image, nil
}

// Disassemble returns the assembly form of instruction b, like "LDA 14" or
// "OUT". Undefined opcodes are rendered as data.
//
func Disassemble(b byte) string {
	op := Opcode(b >> 4)
	switch {
	case op.Mnemonic() == "":
		return fmt.Sprintf("DB 0x%02X", b)
	case op.HasOperand():
		return fmt.Sprintf("%s %d", op.Mnemonic(), b&0xF)
	}
	return op.Mnemonic()
}

// Listing returns a disassembly of a RAM image, one line per byte with its
// address and hex value.
//
func Listing(image []byte) string {
	var b strings.Builder
	for i, v := range image {
		fmt.Fprintf(&b, "%2d  %02X  %s\n", i, v, Disassemble(v))
	}
	return b.String()
}
