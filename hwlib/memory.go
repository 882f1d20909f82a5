// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
)

// ROM is a read only memory of bytes.
//
//	Inputs: address, enable
//	Outputs: out[8]
//	Function: if enable { out = data[address] } else { out = Z }
//
type ROM struct {
	data   []byte
	addr   int
	enable bool
}

// NewROM returns a ROM holding data. The slice is not copied and must not be
// modified afterwards; several ROMs may share the same data.
//
func NewROM(data []byte) *ROM {
	return &ROM{data: data}
}

// Len returns the ROM capacity in bytes.
func (r *ROM) Len() int { return len(r.data) }

// SetAddress selects the byte at address a. It returns an error wrapping
// digital.ErrRange if a is outside of [0, r.Len()-1].
//
func (r *ROM) SetAddress(a digital.BitVector) error {
	return r.SetAddressInt(int(a.Uint32()))
}

// SetAddressInt is like SetAddress with an integer address.
//
func (r *ROM) SetAddressInt(a int) error {
	if a < 0 || a >= len(r.data) {
		return errors.Wrapf(digital.ErrRange, "ROM address %d not in [0, %d]", a, len(r.data)-1)
	}
	r.addr = a
	return nil
}

// SetEnable sets the output enable line.
func (r *ROM) SetEnable(v bool) { r.enable = v }

// Output returns the ROM output.
//
func (r *ROM) Output() digital.Output {
	if !r.enable || len(r.data) == 0 {
		return digital.HighZ
	}
	return digital.Driving(r.Probe())
}

// Probe returns the selected byte, regardless of the enable line.
//
func (r *ROM) Probe() digital.BitVector {
	if len(r.data) == 0 {
		return digital.FromUint8(0)
	}
	return digital.FromUint8(r.data[r.addr])
}

// RAMWords is the number of words in a RAM.
//
const RAMWords = 16

// RAM is a directly addressable memory of 16 words. Each word is a register
// whose load and enable lines are the outputs of AND(decoder line, load) and
// AND(decoder line, enable).
//
//	Inputs: address[4], data[bits], load, enable
//	Outputs: out[bits]
//	Function: on clock, if load { word[address] = data }
//	          if enable { out = word[address] } else { out = Z }
//
type RAM struct {
	decoder *Decoder4to16
	words   [RAMWords]*Register
	loads   [RAMWords]Gate
	enables [RAMWords]Gate
	load    bool
	enable  bool
	addr    int
}

// NewRAM returns a new RAM with words of the given width. Every word holds all
// ones.
//
func NewRAM(bits int) *RAM {
	m := &RAM{decoder: NewDecoder4to16()}
	for i := range m.words {
		m.words[i] = NewRegister(bits)
		m.loads[i] = MakeGate(And)
		m.enables[i] = MakeGate(And)
	}
	m.sync()
	return m
}

func (m *RAM) sync() {
	for i, w := range m.words {
		line := m.decoder.Line(i)
		m.loads[i].Set(line, m.load)
		m.enables[i].Set(line, m.enable)
		w.SetLoad(m.loads[i].Out())
		w.SetEnable(m.enables[i].Out())
	}
}

// MaxAddress returns the highest valid address.
func (m *RAM) MaxAddress() int { return RAMWords - 1 }

// Width returns the word width in bits.
func (m *RAM) Width() int { return m.words[0].Width() }

// SetAddress selects a word. It returns an error wrapping digital.ErrRange if
// the value of a is greater than MaxAddress.
//
func (m *RAM) SetAddress(a digital.BitVector) error {
	if int(a.Uint32()) > m.MaxAddress() {
		return errors.Wrapf(digital.ErrRange, "RAM address %d not in [0, %d]", a.Uint32(), m.MaxAddress())
	}
	if err := m.decoder.SetAddress(a); err != nil {
		return err
	}
	m.addr = int(a.Uint32())
	m.sync()
	return nil
}

// Address returns the selected address.
func (m *RAM) Address() int { return m.addr }

// SetData sets the data inputs of every word. Only the selected word latches
// them on clock.
//
func (m *RAM) SetData(v digital.BitVector) {
	for _, w := range m.words {
		w.SetData(v)
	}
}

// SetLoad sets the load line.
func (m *RAM) SetLoad(v bool) { m.load = v; m.sync() }

// Loading returns the state of the load line.
func (m *RAM) Loading() bool { return m.load }

// SetEnable sets the output enable line.
func (m *RAM) SetEnable(v bool) { m.enable = v; m.sync() }

// SetLoadEnable sets both the load and output enable lines. Asserting both
// returns an error wrapping digital.ErrInvalidOperation and leaves the lines
// untouched.
//
func (m *RAM) SetLoadEnable(load, enable bool) error {
	if load && enable {
		return errors.Wrap(digital.ErrInvalidOperation, "RAM load and enable both asserted")
	}
	m.load, m.enable = load, enable
	m.sync()
	return nil
}

// Clock clocks every word. Only the selected one can have its load line
// asserted.
//
func (m *RAM) Clock() {
	for _, w := range m.words {
		w.Clock()
	}
}

// Output returns the output of the selected word.
//
func (m *RAM) Output() digital.Output {
	for _, w := range m.words {
		if o := w.Output(); !o.IsHighZ() {
			return o
		}
	}
	return digital.HighZ
}

// Probe returns the contents of the selected word.
func (m *RAM) Probe() digital.BitVector { return m.words[m.addr].Probe() }

// ProbeAt returns the contents of the word at address a.
//
func (m *RAM) ProbeAt(a int) (digital.BitVector, error) {
	if a < 0 || a > m.MaxAddress() {
		return digital.BitVector{}, errors.Wrapf(digital.ErrRange, "RAM address %d not in [0, %d]", a, m.MaxAddress())
	}
	return m.words[a].Probe(), nil
}

// IndirectRAM is a RAM with an internal 4 bits address register. Address and
// data share the same input lines, the loadAddress line routing them to the
// address register.
//
//	Inputs: in[bits], loadAddress, load, enable
//	Outputs: out[bits]
//	Function: on clock, if load { word[address] = in }
//	                    if loadAddress { address = in[0..3] }
//	          if enable { out = word[address] } else { out = Z }
//
// Both loads may happen on the same clock: the data is then written at the
// address selected before the clock, and the address register takes the 4 low
// bits of the same input.
//
type IndirectRAM struct {
	addr *Register
	ram  *RAM
}

// NewIndirectRAM returns a new indirectly addressable RAM with words of the
// given width.
//
func NewIndirectRAM(bits int) *IndirectRAM {
	m := &IndirectRAM{addr: NewRegister(4), ram: NewRAM(bits)}
	m.syncAddress()
	return m
}

func (m *IndirectRAM) syncAddress() {
	// a 4 bits register always holds a valid address.
	if err := m.ram.SetAddress(m.addr.Probe()); err != nil {
		panic(err)
	}
}

// SetData sets the shared address/data inputs.
//
func (m *IndirectRAM) SetData(v digital.BitVector) {
	m.addr.SetData(v)
	m.ram.SetData(v)
}

// SetLoadAddress sets the address register load line.
func (m *IndirectRAM) SetLoadAddress(v bool) { m.addr.SetLoad(v) }

// SetLoad sets the data load line.
func (m *IndirectRAM) SetLoad(v bool) { m.ram.SetLoad(v) }

// SetEnable sets the output enable line.
func (m *IndirectRAM) SetEnable(v bool) { m.ram.SetEnable(v) }

// SetLoadEnable sets the data load and output enable lines. See
// RAM.SetLoadEnable.
//
func (m *IndirectRAM) SetLoadEnable(load, enable bool) error {
	return m.ram.SetLoadEnable(load, enable)
}

// Loading returns true if either the address or the data load line is
// asserted.
//
func (m *IndirectRAM) Loading() bool { return m.addr.Loading() || m.ram.Loading() }

// Clock writes data at the current address if load is asserted, then latches
// a new address if loadAddress is asserted.
//
func (m *IndirectRAM) Clock() {
	m.ram.Clock()
	m.addr.Clock()
	m.syncAddress()
}

// Output returns the output of the selected word.
func (m *IndirectRAM) Output() digital.Output { return m.ram.Output() }

// Probe returns the contents of the selected word.
func (m *IndirectRAM) Probe() digital.BitVector { return m.ram.Probe() }

// ProbeAt returns the contents of the word at address a.
func (m *IndirectRAM) ProbeAt(a int) (digital.BitVector, error) { return m.ram.ProbeAt(a) }

// ProbeAddress returns the contents of the address register.
func (m *IndirectRAM) ProbeAddress() digital.BitVector { return m.addr.Probe() }

// MaxAddress returns the highest valid address.
func (m *IndirectRAM) MaxAddress() int { return m.ram.MaxAddress() }

// Reset resets the address register to all ones. Memory contents are
// preserved.
//
func (m *IndirectRAM) Reset() {
	m.addr.Reset()
	m.syncAddress()
}
