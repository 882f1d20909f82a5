// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// SRLatch is a set-reset latch made of two cross-coupled NOR gates.
//
//	Inputs: s, r
//	Outputs: q, nq
//	Function: s=1, r=0 => q=1, nq=0
//	          s=0, r=1 => q=0, nq=1
//	          s=0, r=0 => hold
//	          s=1, r=1 => q=0, nq=0
//
// A new latch starts with q=1, nq=0. The zero value is not a valid latch, use
// MakeSRLatch.
//
type SRLatch struct {
	s, r bool
	q    Gate // out = !(r || nq)
	nq   Gate // out = !(s || q)
}

// MakeSRLatch returns a new latch in its power-on state.
//
func MakeSRLatch() SRLatch {
	l := SRLatch{
		q:  Gate{fn: Nor, out: true},
		nq: Gate{fn: Nor, b: true},
	}
	l.sync()
	return l
}

// sync propagates the inputs through the NOR gates until the outputs settle.
// Releasing s=r=1 to s=r=0 settles with q=1.
func (l *SRLatch) sync() {
	for i := 0; i < 4; i++ {
		q, nq := l.q.Out(), l.nq.Out()
		l.q.Set(l.r, l.nq.Out())
		l.nq.Set(l.s, l.q.Out())
		if q == l.q.Out() && nq == l.nq.Out() {
			return
		}
	}
}

// Set sets both inputs.
//
func (l *SRLatch) Set(s, r bool) {
	l.s, l.r = s, r
	l.sync()
}

// SetS sets the set input.
func (l *SRLatch) SetS(v bool) { l.Set(v, l.r) }

// SetR sets the reset input.
func (l *SRLatch) SetR(v bool) { l.Set(l.s, v) }

// Q returns the q output.
func (l *SRLatch) Q() bool { return l.q.Out() }

// NQ returns the complemented output.
func (l *SRLatch) NQ() bool { return l.nq.Out() }

// GatedSRLatch is a SR latch with an enable input. s and r only reach the
// latch while enable is high.
//
//	Inputs: s, r, enable
//	Outputs: q, nq
//
type GatedSRLatch struct {
	enable bool
	s, r   Gate // AND gates
	latch  SRLatch
}

// MakeGatedSRLatch returns a new gated latch in its power-on state.
//
func MakeGatedSRLatch() GatedSRLatch {
	return GatedSRLatch{s: MakeGate(And), r: MakeGate(And), latch: MakeSRLatch()}
}

func (l *GatedSRLatch) sync() {
	l.s.SetB(l.enable)
	l.r.SetB(l.enable)
	l.latch.Set(l.s.Out(), l.r.Out())
}

// SetS sets the set input.
func (l *GatedSRLatch) SetS(v bool) { l.s.SetA(v); l.sync() }

// SetR sets the reset input.
func (l *GatedSRLatch) SetR(v bool) { l.r.SetA(v); l.sync() }

// SetEnable sets the enable input.
func (l *GatedSRLatch) SetEnable(v bool) { l.enable = v; l.sync() }

// Q returns the q output.
func (l *GatedSRLatch) Q() bool { return l.latch.Q() }

// NQ returns the complemented output.
func (l *GatedSRLatch) NQ() bool { return l.latch.NQ() }

// GatedDLatch is a gated SR latch with r wired to the inverted d input. While
// enable is high, q follows d.
//
//	Inputs: d, enable
//	Outputs: q, nq
//
type GatedDLatch struct {
	inv   Inverter
	latch GatedSRLatch
}

// MakeGatedDLatch returns a new D latch in its power-on state.
//
func MakeGatedDLatch() GatedDLatch {
	l := GatedDLatch{latch: MakeGatedSRLatch()}
	l.SetD(false)
	return l
}

// SetD sets the data input.
//
func (l *GatedDLatch) SetD(v bool) {
	l.inv.Set(v)
	l.latch.s.SetA(v)
	l.latch.r.SetA(l.inv.Out())
	l.latch.sync()
}

// D returns the data input.
func (l *GatedDLatch) D() bool { return !l.inv.Out() }

// SetEnable sets the enable input.
func (l *GatedDLatch) SetEnable(v bool) { l.latch.SetEnable(v) }

// Q returns the q output.
func (l *GatedDLatch) Q() bool { return l.latch.Q() }

// NQ returns the complemented output.
func (l *GatedDLatch) NQ() bool { return l.latch.NQ() }
