// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
)

// Decoder4to16 is a 4 to 16 line decoder. Line y is the output of a 4 inputs
// AND gate fed with each address line or its complement, following the bit
// pattern of y.
//
//	Inputs: a[4]
//	Outputs: y[16]
//	Function: y[i] = (i == a)
//
type Decoder4to16 struct {
	addr  [4]bool
	inv   [4]Inverter
	lines [16]And4
}

// NewDecoder4to16 returns a new decoder with address 0 selected.
//
func NewDecoder4to16() *Decoder4to16 {
	d := new(Decoder4to16)
	for i := range d.lines {
		d.lines[i] = MakeAnd4()
	}
	d.sync()
	return d
}

func (d *Decoder4to16) sync() {
	for i := range d.inv {
		d.inv[i].Set(d.addr[i])
	}
	var in [4]bool
	for y := range d.lines {
		for i := range in {
			if y&(1<<uint(i)) != 0 {
				in[i] = d.addr[i]
			} else {
				in[i] = d.inv[i].Out()
			}
		}
		d.lines[y].Set(in[0], in[1], in[2], in[3])
	}
}

// SetAddress sets the address inputs. It returns an error wrapping
// digital.ErrRange if the value of a is greater than 15.
//
func (d *Decoder4to16) SetAddress(a digital.BitVector) error {
	if a.Uint32() > 15 {
		return errors.Wrapf(digital.ErrRange, "decoder address %d", a.Uint32())
	}
	for i := range d.addr {
		d.addr[i] = a.Uint32()&(1<<uint(i)) != 0
	}
	d.sync()
	return nil
}

// Line returns the state of output line y. It panics with an error wrapping
// digital.ErrRange if y is not in [0, 15].
//
func (d *Decoder4to16) Line(y int) bool {
	if y < 0 || y >= len(d.lines) {
		panic(errors.Wrapf(digital.ErrRange, "decoder line %d not in [0, %d]", y, len(d.lines)-1))
	}
	return d.lines[y].Out()
}

// Output returns all 16 output lines.
//
func (d *Decoder4to16) Output() digital.BitVector {
	v := digital.MustFromUint(16, 0)
	for y := range d.lines {
		_ = v.Set(y, d.lines[y].Out())
	}
	return v
}
