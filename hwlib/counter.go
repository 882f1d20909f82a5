// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
)

// BinaryCounter is a N bits ripple counter made of JK flip flops with j and k
// tied high. Stage i+1 is clocked when stage i goes from high to low.
//
//	Outputs: q[bits]
//	Function: on Increment, q = q + 1 mod 2^bits
//
// A new counter holds zero.
//
type BinaryCounter struct {
	stages []JKFlipFlop
}

// NewBinaryCounter returns a new counter of the given width. It panics if bits
// is not in [1, digital.MaxBits].
//
func NewBinaryCounter(bits int) *BinaryCounter {
	if bits < 1 || bits > digital.MaxBits {
		panic(errors.Wrapf(digital.ErrRange, "counter width %d", bits))
	}
	c := &BinaryCounter{stages: make([]JKFlipFlop, bits)}
	for i := range c.stages {
		f := &c.stages[i]
		*f = MakeJKFlipFlop()
		f.SetJ(true)
		f.SetK(true)
	}
	c.Clear()
	return c
}

// Width returns the counter width in bits.
func (c *BinaryCounter) Width() int { return len(c.stages) }

// Increment clocks the first stage and ripples the carry through the next
// stages.
//
func (c *BinaryCounter) Increment() {
	for i := range c.stages {
		f := &c.stages[i]
		f.Clock()
		if f.Q() {
			// no high to low transition, the next stages do not see a clock edge.
			break
		}
	}
}

// Set loads v into the counter by driving j and k of every stage that must
// change and clocking it. Missing high bits of v are treated as zeros.
//
func (c *BinaryCounter) Set(v digital.BitVector) {
	for i := range c.stages {
		f := &c.stages[i]
		want := i < v.Len() && v.Bit(i)
		if f.Q() == want {
			continue
		}
		f.SetJ(want)
		f.SetK(!want)
		f.Clock()
		f.SetJ(true)
		f.SetK(true)
	}
}

// Clear sets the counter to zero.
func (c *BinaryCounter) Clear() { c.Set(digital.BitVector{}) }

// Probe returns the counter value.
//
func (c *BinaryCounter) Probe() digital.BitVector {
	v := digital.MustFromUint(len(c.stages), 0)
	for i := range c.stages {
		_ = v.Set(i, c.stages[i].Q())
	}
	return v
}

// ProgramCounter is a binary counter with a tri-state output.
//
//	Inputs: data[bits], countEnable, load, enable
//	Outputs: out[bits]
//	Function: on clock, if load { q = data } else if countEnable { q++ }
//	          if enable { out = q } else { out = Z }
//
type ProgramCounter struct {
	counter     *BinaryCounter
	out         TriStateBuffer
	data        digital.BitVector
	load        bool
	countEnable bool
}

// NewProgramCounter returns a new program counter of the given width, set to
// zero.
//
func NewProgramCounter(bits int) *ProgramCounter {
	return &ProgramCounter{
		counter: NewBinaryCounter(bits),
		out:     MakeTriStateBuffer(bits),
		data:    digital.MustFromUint(bits, 0),
	}
}

// Width returns the counter width in bits.
func (p *ProgramCounter) Width() int { return p.counter.Width() }

func (p *ProgramCounter) sync() { p.out.SetData(p.counter.Probe()) }

// Inc increments the counter.
func (p *ProgramCounter) Inc() { p.counter.Increment(); p.sync() }

// Jump loads addr into the counter.
func (p *ProgramCounter) Jump(addr digital.BitVector) { p.counter.Set(addr); p.sync() }

// SetData sets the data inputs used by a load on the next clock.
func (p *ProgramCounter) SetData(v digital.BitVector) { p.data = overlay(p.data, v) }

// SetLoad sets the load (jump) line.
func (p *ProgramCounter) SetLoad(v bool) { p.load = v }

// Loading returns the state of the load line.
func (p *ProgramCounter) Loading() bool { return p.load }

// SetCountEnable sets the count enable line.
func (p *ProgramCounter) SetCountEnable(v bool) { p.countEnable = v }

// SetEnable sets the output enable line.
func (p *ProgramCounter) SetEnable(v bool) { p.out.SetEnable(v) }

// Clock loads or increments the counter depending on the control lines. Load
// has priority over count enable.
//
func (p *ProgramCounter) Clock() {
	switch {
	case p.load:
		p.Jump(p.data)
	case p.countEnable:
		p.Inc()
	}
}

// Output returns the counter output.
func (p *ProgramCounter) Output() digital.Output { return p.out.Output() }

// Probe returns the counter value.
func (p *ProgramCounter) Probe() digital.BitVector { return p.counter.Probe() }

// Reset clears the counter and disables the output.
//
func (p *ProgramCounter) Reset() {
	p.counter.Clear()
	p.sync()
	p.out.SetEnable(false)
}
