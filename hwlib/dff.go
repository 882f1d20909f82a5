// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// DFlipFlop is a clocked data flip flop built around a gated D latch.
//
//	Inputs: d
//	Outputs: q, nq
//	Function: q(t) = d(t-1) // where t is the current clock cycle.
//
// Changing d between clock pulses has no effect on q.
//
type DFlipFlop struct {
	latch GatedDLatch
}

// MakeDFlipFlop returns a new flip flop in its power-on state (q=1).
//
func MakeDFlipFlop() DFlipFlop {
	return DFlipFlop{MakeGatedDLatch()}
}

// SetD sets the data input.
func (f *DFlipFlop) SetD(v bool) { f.latch.SetD(v) }

// Clock pulses the latch enable line high then low, capturing d.
//
func (f *DFlipFlop) Clock() {
	f.latch.SetEnable(true)
	f.latch.SetEnable(false)
}

// Q returns the q output.
func (f *DFlipFlop) Q() bool { return f.latch.Q() }

// NQ returns the complemented output.
func (f *DFlipFlop) NQ() bool { return f.latch.NQ() }

// JKFlipFlop is a JK flip flop: a SR latch fed by two 3 inputs AND gates, each
// taking the latch's own complementary output as third input.
//
//	Inputs: j, k
//	Outputs: q, nq
//	Function: j=0, k=0 => hold
//	          j=1, k=0 => q=1
//	          j=0, k=1 => q=0
//	          j=1, k=1 => toggle
//
// The feedback from q and nq is sampled once per clock pulse.
//
type JKFlipFlop struct {
	j, k, clk bool
	s, r      And3
	latch     SRLatch
}

// MakeJKFlipFlop returns a new flip flop in its power-on state (q=1).
//
func MakeJKFlipFlop() JKFlipFlop {
	return JKFlipFlop{s: MakeAnd3(), r: MakeAnd3(), latch: MakeSRLatch()}
}

func (f *JKFlipFlop) sync() {
	q, nq := f.latch.Q(), f.latch.NQ()
	f.s.Set(f.j, f.clk, nq)
	f.r.Set(f.k, f.clk, q)
	f.latch.Set(f.s.Out(), f.r.Out())
}

// SetJ sets the j input.
func (f *JKFlipFlop) SetJ(v bool) { f.j = v; f.sync() }

// SetK sets the k input.
func (f *JKFlipFlop) SetK(v bool) { f.k = v; f.sync() }

// Clock pulses the gates enable line high then low.
//
func (f *JKFlipFlop) Clock() {
	f.clk = true
	f.sync()
	f.clk = false
	f.sync()
}

// Q returns the q output.
func (f *JKFlipFlop) Q() bool { return f.latch.Q() }

// NQ returns the complemented output.
func (f *JKFlipFlop) NQ() bool { return f.latch.NQ() }
