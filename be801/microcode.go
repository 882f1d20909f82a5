// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package be801

import "sync"

// Opcode is the high nibble of an instruction.
//
type Opcode uint8

// Instruction set. The low nibble of an instruction is its operand.
//
const (
	OpNOP Opcode = 0x0 // no operation
	OpLDA Opcode = 0x1 // A = RAM[operand]
	OpADD Opcode = 0x2 // A = A + RAM[operand]
	OpSUB Opcode = 0x3 // A = A - RAM[operand]
	OpSTA Opcode = 0x4 // RAM[operand] = A
	OpLDI Opcode = 0x5 // A = operand
	OpJMP Opcode = 0x6 // PC = operand
	OpOUT Opcode = 0xE // OUT = A
	OpHLT Opcode = 0xF // halt
)

var mnemonics = [16]string{
	OpNOP: "NOP", OpLDA: "LDA", OpADD: "ADD", OpSUB: "SUB", OpSTA: "STA",
	OpLDI: "LDI", OpJMP: "JMP", OpOUT: "OUT", OpHLT: "HLT",
}

// Mnemonic returns the assembly mnemonic of op, or an empty string for
// undefined opcodes.
//
func (op Opcode) Mnemonic() string { return mnemonics[op&0xF] }

// HasOperand returns true if the instruction uses its operand nibble.
//
func (op Opcode) HasOperand() bool {
	switch op {
	case OpLDA, OpADD, OpSUB, OpSTA, OpLDI, OpJMP:
		return true
	}
	return false
}

// StepsPerInstruction is the number of micro-steps of every instruction. The
// step counter goes back to 0 when it reaches this value.
//
const StepsPerInstruction = 6

// MaxSteps is the number of micro-steps per opcode in the microcode table.
//
const MaxSteps = 8

// fetch cycle, common to all instructions.
var fetch = [2]Signal{MI | CO, RO | II | CE}

// microprogram per opcode, steps 2 and up.
var microprograms = [16][]Signal{
	OpLDA: {IO | MI, RO | AI},
	OpADD: {IO | MI, RO | BI, EO | AI},
	OpSUB: {IO | MI, RO | BI, EO | AI | SU},
	OpSTA: {IO | MI, AO | RI},
	OpLDI: {IO | AI},
	OpJMP: {IO | J},
	OpOUT: {AO | OI},
	OpHLT: {HLT},
}

// Microcode returns the control word for the given opcode and micro-step.
//
func Microcode(op Opcode, step int) Signal {
	switch {
	case step < 0 || step >= MaxSteps:
		return 0
	case step < len(fetch):
		return fetch[step]
	}
	p := microprograms[op&0xF]
	if step-len(fetch) < len(p) {
		return p[step-len(fetch)]
	}
	return 0
}

// ROM layout: bits 0-2 step, bits 3-6 opcode, bit 7 selects the low or high
// byte of the control word.
const (
	romStepBits   = 3
	romOpcodeBits = 4
	romHalf       = 1 << (romStepBits + romOpcodeBits)
	romSize       = 2 * romHalf
)

var (
	romOnce  sync.Once
	romImage []byte
)

// MicrocodeROM returns the microcode as a ROM image shared by all computers.
// It must not be modified.
//
func MicrocodeROM() []byte {
	romOnce.Do(func() {
		romImage = make([]byte, romSize)
		for op := 0; op < 16; op++ {
			for step := 0; step < MaxSteps; step++ {
				w := Microcode(Opcode(op), step)
				a := op<<romStepBits | step
				romImage[a] = byte(w)
				romImage[a|romHalf] = byte(w >> 8)
			}
		}
	})
	return romImage
}
