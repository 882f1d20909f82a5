// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
)

// a register bit cell: a D latch whose enable line is AND(load, clk).
type registerCell struct {
	gate  Gate
	latch GatedDLatch
}

func (c *registerCell) pulse(load bool) {
	c.gate.Set(load, true)
	c.latch.SetEnable(c.gate.Out())
	c.gate.Set(load, false)
	c.latch.SetEnable(c.gate.Out())
}

// Register is a N bits register with load and output enable lines.
//
//	Inputs: data[bits], load, enable
//	Outputs: out[bits]
//	Function: on clock, if load { q = data }
//	          if enable { out = q } else { out = Z }
//
// A new register holds all ones, like after Reset.
//
type Register struct {
	load  bool
	cells []registerCell
	out   TriStateBuffer
}

// NewRegister returns a new register of the given width. It panics if bits is
// not in [1, digital.MaxBits].
//
func NewRegister(bits int) *Register {
	if bits < 1 || bits > digital.MaxBits {
		panic(errors.Wrapf(digital.ErrRange, "register width %d", bits))
	}
	r := &Register{
		cells: make([]registerCell, bits),
		out:   MakeTriStateBuffer(bits),
	}
	for i := range r.cells {
		r.cells[i] = registerCell{gate: MakeGate(And), latch: MakeGatedDLatch()}
	}
	r.Reset()
	return r
}

// Width returns the register width in bits.
func (r *Register) Width() int { return len(r.cells) }

// SetData sets the data inputs. Only the first min(v.Len(), r.Width()) cells
// are updated: the high bits of a short vector leave the corresponding inputs
// unchanged and excess bits are ignored.
//
func (r *Register) SetData(v digital.BitVector) {
	n := v.Len()
	if n > len(r.cells) {
		n = len(r.cells)
	}
	for i := 0; i < n; i++ {
		r.cells[i].latch.SetD(v.Bit(i))
	}
}

// SetLoad sets the load line.
func (r *Register) SetLoad(v bool) { r.load = v }

// Loading returns the state of the load line.
func (r *Register) Loading() bool { return r.load }

// SetEnable sets the output enable line.
func (r *Register) SetEnable(v bool) { r.out.SetEnable(v) }

// Enabled returns the state of the output enable line.
func (r *Register) Enabled() bool { return r.out.Enabled() }

// SetLoadEnable sets both the load and output enable lines. A register cannot
// load from a bus it is driving, so asserting both returns an error wrapping
// digital.ErrInvalidOperation and leaves the register untouched.
//
func (r *Register) SetLoadEnable(load, enable bool) error {
	if load && enable {
		return errors.Wrap(digital.ErrInvalidOperation, "register load and enable both asserted")
	}
	r.SetLoad(load)
	r.SetEnable(enable)
	return nil
}

// Clock latches the data inputs if the load line is asserted.
//
func (r *Register) Clock() {
	for i := range r.cells {
		r.cells[i].pulse(r.load)
	}
	r.out.SetData(r.Probe())
}

// Output returns the register output.
func (r *Register) Output() digital.Output { return r.out.Output() }

// Probe returns the register contents, regardless of the enable line.
//
func (r *Register) Probe() digital.BitVector {
	v := digital.MustFromUint(len(r.cells), 0)
	for i := range r.cells {
		_ = v.Set(i, r.cells[i].latch.Q())
	}
	return v
}

// Reset sets all bits to 1, bypassing the load line, and disables the output.
// The data inputs are preserved.
//
func (r *Register) Reset() {
	for i := range r.cells {
		c := &r.cells[i]
		d := c.latch.D()
		c.latch.SetD(true)
		c.latch.SetEnable(true)
		c.latch.SetEnable(false)
		c.latch.SetD(d)
	}
	r.out.SetData(r.Probe())
	r.out.SetEnable(false)
}
