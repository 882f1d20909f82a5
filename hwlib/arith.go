// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
)

// HalfAdder is a XOR and an AND gate.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
type HalfAdder struct {
	s, c Gate
}

// MakeHalfAdder returns a new half adder.
func MakeHalfAdder() HalfAdder { return HalfAdder{MakeGate(Xor), MakeGate(And)} }

// Set sets both inputs.
func (h *HalfAdder) Set(a, b bool) { h.s.Set(a, b); h.c.Set(a, b) }

// S returns the sum output.
func (h *HalfAdder) S() bool { return h.s.Out() }

// C returns the carry output.
func (h *HalfAdder) C() bool { return h.c.Out() }

// FullAdder is two half adders and an OR gate.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
type FullAdder struct {
	h0, h1 HalfAdder
	cout   Gate
}

// MakeFullAdder returns a new full adder.
func MakeFullAdder() FullAdder {
	return FullAdder{MakeHalfAdder(), MakeHalfAdder(), MakeGate(Or)}
}

// Set sets all inputs.
//
func (f *FullAdder) Set(a, b, cin bool) {
	f.h0.Set(a, b)
	f.h1.Set(f.h0.S(), cin)
	f.cout.Set(f.h0.C(), f.h1.C())
}

// S returns the sum output.
func (f *FullAdder) S() bool { return f.h1.S() }

// Cout returns the carry output.
func (f *FullAdder) Cout() bool { return f.cout.Out() }

// ALU is a N bits ripple carry adder/subtracter. When subtract is high, b is
// inverted by a bank of XOR gates and the carry in is set, computing a - b in
// two's complement.
//
//	Inputs: a[bits], b[bits], subtract, enable
//	Outputs: out[bits], carry
//	Function: if subtract { sum = a - b } else { sum = a + b }
//	          if enable { out = sum } else { out = Z }
//
type ALU struct {
	a, b     digital.BitVector
	subtract bool
	inv      []Gate
	adders   []FullAdder
	out      TriStateBuffer
}

// NewALU returns a new ALU of the given width with all inputs low. It panics
// if bits is not in [1, digital.MaxBits].
//
func NewALU(bits int) *ALU {
	if bits < 1 || bits > digital.MaxBits {
		panic(errors.Wrapf(digital.ErrRange, "ALU width %d", bits))
	}
	u := &ALU{
		a:      digital.MustFromUint(bits, 0),
		b:      digital.MustFromUint(bits, 0),
		inv:    make([]Gate, bits),
		adders: make([]FullAdder, bits),
		out:    MakeTriStateBuffer(bits),
	}
	for i := range u.adders {
		u.inv[i] = MakeGate(Xor)
		u.adders[i] = MakeFullAdder()
	}
	u.sync()
	return u
}

func (u *ALU) sync() {
	carry := u.subtract
	sum := u.a
	for i := range u.adders {
		u.inv[i].Set(u.b.Bit(i), u.subtract)
		f := &u.adders[i]
		f.Set(u.a.Bit(i), u.inv[i].Out(), carry)
		carry = f.Cout()
		_ = sum.Set(i, f.S())
	}
	u.out.SetData(sum)
}

// SetA sets input a.
func (u *ALU) SetA(v digital.BitVector) { u.a = overlay(u.a, v); u.sync() }

// SetB sets input b.
func (u *ALU) SetB(v digital.BitVector) { u.b = overlay(u.b, v); u.sync() }

// SetSubtract sets the subtract line.
func (u *ALU) SetSubtract(v bool) { u.subtract = v; u.sync() }

// SetEnable sets the output enable line.
func (u *ALU) SetEnable(v bool) { u.out.SetEnable(v) }

// Output returns the ALU output.
func (u *ALU) Output() digital.Output { return u.out.Output() }

// Probe returns the sum or difference, regardless of the enable line.
func (u *ALU) Probe() digital.BitVector { return u.out.Probe() }

// Carry returns the carry out of the last stage.
func (u *ALU) Carry() bool { return u.adders[len(u.adders)-1].Cout() }
