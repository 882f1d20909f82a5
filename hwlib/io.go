// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
)

// Switches is a bank of front panel switches connected to a bus through
// tri-state buffers. It lets an operator put values on a bus by hand.
//
//	Inputs: enable
//	Outputs: out[bits]
//	Function: if enable { out = switches } else { out = Z }
//
type Switches struct {
	buf TriStateBuffer
}

// NewSwitches returns a new bank of switches, all off, with the output
// disabled.
//
func NewSwitches(bits int) *Switches {
	return &Switches{MakeTriStateBuffer(bits)}
}

// Set sets the switches to v.
func (s *Switches) Set(v digital.BitVector) { s.buf.SetData(v) }

// Toggle flips switch i.
//
func (s *Switches) Toggle(i int) error {
	v := s.buf.Probe()
	b, err := v.Get(i)
	if err != nil {
		return err
	}
	_ = v.Set(i, !b)
	s.buf.SetData(v)
	return nil
}

// SetEnable sets the output enable line.
func (s *Switches) SetEnable(v bool) { s.buf.SetEnable(v) }

// Output returns the switches output.
func (s *Switches) Output() digital.Output { return s.buf.Output() }

// Probe returns the switches state.
func (s *Switches) Probe() digital.BitVector { return s.buf.Probe() }
