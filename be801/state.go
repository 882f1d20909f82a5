// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package be801

import (
	"fmt"
	"strings"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
)

// State is a snapshot of the observable state of a computer.
//
type State struct {
	PC      uint8
	MAR     uint8
	IR      uint8
	A, B    uint8
	Out     uint8
	ALU     uint8
	Carry   bool
	Bus     digital.Output
	Step    int
	Control Signal
	Halted  bool
	Manual  bool
	RAM     [RAMSize]uint8
}

func u8(v digital.BitVector) uint8 {
	return uint8(v.Uint32())
}

// Snapshot returns the current state of c.
//
func (c *Computer) Snapshot() State {
	s := State{
		PC:      u8(c.ProbePC()),
		MAR:     u8(c.ProbeMemoryAddress()),
		IR:      u8(c.ProbeInstructionRegister()),
		A:       u8(c.ProbeARegister()),
		B:       u8(c.ProbeBRegister()),
		Out:     u8(c.ProbeOutputRegister()),
		ALU:     u8(c.ProbeALU()),
		Carry:   c.ProbeCarry(),
		Bus:     c.ProbeBus(),
		Step:    c.ProbeMicroStep(),
		Control: c.ProbeControlWord(),
		Halted:  c.Halted(),
		Manual:  c.manual,
	}
	for i := range s.RAM {
		v, err := c.ProbeRAM(i)
		if err != nil {
			panic(err)
		}
		s.RAM[i] = u8(v)
	}
	return s
}

// String returns a multi-line dump of s.
//
//	PC=0 MAR=15 IR=FF (HLT) step=0 control=-
//	A=255 B=255 ALU=254 C=1 OUT=255 bus=Z
//	RAM 00: 1E 1F E0 FF FF FF FF FF
//	RAM 08: FF FF FF FF FF FF 1E 0C
//
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PC=%d MAR=%d IR=%02X (%s) step=%d control=%s", s.PC, s.MAR, s.IR, Disassemble(s.IR), s.Step, s.Control)
	if s.Halted {
		b.WriteString(" halted")
	}
	if s.Manual {
		b.WriteString(" manual")
	}
	c := 0
	if s.Carry {
		c = 1
	}
	fmt.Fprintf(&b, "\nA=%d B=%d ALU=%d C=%d OUT=%d bus=%s\n", s.A, s.B, s.ALU, c, s.Out, s.Bus)
	for i := 0; i < len(s.RAM); i += 8 {
		fmt.Fprintf(&b, "RAM %02X:", i)
		for _, v := range s.RAM[i : i+8] {
			fmt.Fprintf(&b, " %02X", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
