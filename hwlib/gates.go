// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of components for the simulator, from logic
// gates to memories.
//
// Every component is built from the components of the layer below: latches are
// made of NOR and AND gates, registers of latches, counters of JK flip-flops,
// memories of registers and decoders. Components own their parts and propagate
// input changes through them synchronously, on every call to a Set method.
//
// Sequential components only change state on Clock. Components that can be
// attached to a digital.ParallelBus implement digital.Driver and, if they can
// load from it, digital.Receiver.
//
package hwlib

// A GateFunc is the boolean function of a two inputs logic gate.
//
type GateFunc func(a, b bool) bool

// Two inputs logic functions.
//
var (
	And  GateFunc = func(a, b bool) bool { return a && b }
	Nand GateFunc = func(a, b bool) bool { return !(a && b) }
	Or   GateFunc = func(a, b bool) bool { return a || b }
	Nor  GateFunc = func(a, b bool) bool { return !(a || b) }
	Xor  GateFunc = func(a, b bool) bool { return a && !b || !a && b }
	Xnor GateFunc = func(a, b bool) bool { return a && b || !a && !b }
)

// Gate is a two inputs logic gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = fn(a, b)
//
// The zero value is an AND gate with both inputs low.
//
type Gate struct {
	fn   GateFunc
	a, b bool
	out  bool
}

// MakeGate returns a new gate for the given function with both inputs low.
//
func MakeGate(fn GateFunc) Gate {
	return Gate{fn: fn, out: fn(false, false)}
}

// Set sets both inputs.
//
func (g *Gate) Set(a, b bool) {
	g.a, g.b = a, b
	if g.fn == nil {
		g.fn = And
	}
	g.out = g.fn(a, b)
}

// SetA sets input a.
func (g *Gate) SetA(v bool) { g.Set(v, g.b) }

// SetB sets input b.
func (g *Gate) SetB(v bool) { g.Set(g.a, v) }

// Out returns the gate output.
func (g *Gate) Out() bool { return g.out }

// Inverter is a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
type Inverter struct {
	in bool
}

// Set sets the input.
func (i *Inverter) Set(v bool) { i.in = v }

// Out returns the inverted input.
func (i *Inverter) Out() bool { return !i.in }

// Buffer is a non-inverting buffer.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in
//
type Buffer struct {
	in bool
}

// Set sets the input.
func (b *Buffer) Set(v bool) { b.in = v }

// Out returns the input.
func (b *Buffer) Out() bool { return b.in }

// And3 is a 3 inputs AND gate made of two chained AND gates.
//
//	Inputs: in[3]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2]
//
// The zero value is ready to use.
//
type And3 struct {
	g0, g1 Gate
}

// MakeAnd3 returns a new 3 inputs AND gate.
//
func MakeAnd3() And3 {
	return And3{MakeGate(And), MakeGate(And)}
}

// Set sets all inputs.
//
func (g *And3) Set(a, b, c bool) {
	g.g0.Set(a, b)
	g.g1.Set(g.g0.Out(), c)
}

// SetInput sets input i.
//
func (g *And3) SetInput(i int, v bool) {
	in := [3]bool{g.g0.a, g.g0.b, g.g1.b}
	in[i] = v
	g.Set(in[0], in[1], in[2])
}

// Out returns the gate output.
func (g *And3) Out() bool { return g.g1.Out() }

// And4 is a 4 inputs AND gate made of three chained AND gates.
//
//	Inputs: in[4]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && in[3]
//
// The zero value is ready to use.
//
type And4 struct {
	g0, g1, g2 Gate
}

// MakeAnd4 returns a new 4 inputs AND gate.
//
func MakeAnd4() And4 {
	return And4{MakeGate(And), MakeGate(And), MakeGate(And)}
}

// Set sets all inputs.
//
func (g *And4) Set(a, b, c, d bool) {
	g.g0.Set(a, b)
	g.g1.Set(g.g0.Out(), c)
	g.g2.Set(g.g1.Out(), d)
}

// SetInput sets input i.
//
func (g *And4) SetInput(i int, v bool) {
	in := [4]bool{g.g0.a, g.g0.b, g.g1.b, g.g2.b}
	in[i] = v
	g.Set(in[0], in[1], in[2], in[3])
}

// Out returns the gate output.
func (g *And4) Out() bool { return g.g2.Out() }
