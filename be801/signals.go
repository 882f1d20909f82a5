// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package be801

import "strings"

// Signal is a set of control lines. Each line is a single bit flag; a control
// word is the OR of the lines asserted during one micro-step.
//
type Signal uint16

// Control lines. Bit 0 is unused.
//
const (
	J   Signal = 1 << (iota + 1) // jump: program counter in
	CO                           // program counter out
	CE                           // program counter count enable
	OI                           // output register in
	BI                           // B register in
	SU                           // ALU subtract
	EO                           // ALU out
	AO                           // A register out
	AI                           // A register in
	II                           // instruction register in
	IO                           // instruction register out (operand)
	RO                           // RAM out
	RI                           // RAM in
	MI                           // memory address register in
	HLT                          // halt
)

var signalNames = []struct {
	s    Signal
	name string
}{
	{HLT, "HLT"}, {MI, "MI"}, {RI, "RI"}, {RO, "RO"}, {IO, "IO"},
	{II, "II"}, {AI, "AI"}, {AO, "AO"}, {EO, "EO"}, {SU, "SU"},
	{BI, "BI"}, {OI, "OI"}, {CE, "CE"}, {CO, "CO"}, {J, "J"},
}

// Signals returns the individual control lines, in control word order from
// HLT down to J.
//
func Signals() []Signal {
	r := make([]Signal, len(signalNames))
	for i := range signalNames {
		r[i] = signalNames[i].s
	}
	return r
}

// ParseSignal returns the control line with the given name.
//
func ParseSignal(name string) (Signal, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, n := range signalNames {
		if n.name == name {
			return n.s, true
		}
	}
	return 0, false
}

// String returns the asserted lines separated by '|', like "MI|CO". An empty
// control word is "-".
//
func (s Signal) String() string {
	var b strings.Builder
	for _, n := range signalNames {
		if s&n.s != 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(n.name)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
