// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital

import (
	"strings"

	"github.com/pkg/errors"
)

// A Driver is a module with a tri-state output that can be attached to a bus.
//
type Driver interface {
	Output() Output
}

// A Receiver is a module that can latch values from a bus. Loading reports
// whether the module's load line is currently asserted.
//
type Receiver interface {
	Loading() bool
	SetData(v BitVector)
}

type busModule struct {
	name string
	d    Driver
	r    Receiver
}

// ParallelBus connects the tri-state outputs and data inputs of several
// modules.
//
// Undriven lines are pulled low: a value narrower than the bus is zero
// extended on transfer and a wider one is truncated.
//
type ParallelBus struct {
	width int
	mods  []busModule
	state Output
}

// NewParallelBus returns a new bus with the given line count.
//
func NewParallelBus(width int) (*ParallelBus, error) {
	if width <= 0 || width > MaxBits {
		return nil, errors.Wrapf(ErrRange, "bus width %d not in [1, %d]", width, MaxBits)
	}
	return &ParallelBus{width: width}, nil
}

// Width returns the number of lines of the bus.
//
func (b *ParallelBus) Width() int { return b.width }

// Attach attaches the output of module d to the bus. If d also implements
// Receiver, it will receive transfers while its load line is asserted.
//
func (b *ParallelBus) Attach(name string, d Driver) {
	m := busModule{name: name, d: d}
	if r, ok := d.(Receiver); ok {
		m.r = r
	}
	b.mods = append(b.mods, m)
}

// Connect connects a module that only receives from the bus.
//
func (b *ParallelBus) Connect(name string, r Receiver) {
	b.mods = append(b.mods, busModule{name: name, r: r})
}

// Drivers returns the names of the modules currently driving the bus.
//
func (b *ParallelBus) Drivers() []string {
	var names []string
	for _, m := range b.mods {
		if m.d != nil && !m.d.Output().IsHighZ() {
			names = append(names, m.name)
		}
	}
	return names
}

// Transfer samples the outputs of all attached modules and sends the driven
// value to every receiver with its load line asserted.
//
// If no module drives the bus, the bus goes into high impedance and receivers
// are left untouched. If more than one module drives the bus, Transfer returns
// an error that wraps ErrBusContention.
//
func (b *ParallelBus) Transfer() error {
	var (
		v     BitVector
		count int
	)
	for _, m := range b.mods {
		if m.d == nil {
			continue
		}
		if o, ok := m.d.Output().Value(); ok {
			v = o
			count++
		}
	}
	switch count {
	case 0:
		b.state = HighZ
		return nil
	case 1:
	default:
		b.state = HighZ
		return errors.Wrapf(ErrBusContention, "bus driven by %s", strings.Join(b.Drivers(), ", "))
	}

	v, _ = v.Resize(b.width)
	b.state = Driving(v)
	for _, m := range b.mods {
		if m.r != nil && m.r.Loading() {
			m.r.SetData(v)
		}
	}
	return nil
}

// Probe returns the bus state after the last transfer.
//
func (b *ParallelBus) Probe() Output { return b.state }

// Reset puts the bus back in high impedance.
//
func (b *ParallelBus) Reset() { b.state = HighZ }
