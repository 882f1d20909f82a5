// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	hl "github.com/DanStevens/DigitalElectronics-sub000/hwlib"
	"github.com/stretchr/testify/assert"
)

func TestSRLatch(t *testing.T) {
	l := hl.MakeSRLatch()
	assert.True(t, l.Q(), "power-on Q")
	assert.False(t, l.NQ(), "power-on NQ")

	td := []struct {
		s, r  bool
		q, nq bool
	}{
		{false, true, false, true},  // reset
		{false, false, false, true}, // hold
		{true, false, true, false},  // set
		{false, false, true, false}, // hold
		{true, true, false, false},  // illegal
	}
	for i, d := range td {
		l.Set(d.s, d.r)
		assert.Equal(t, d.q, l.Q(), "step %d: Q", i)
		assert.Equal(t, d.nq, l.NQ(), "step %d: NQ", i)
	}

	l.SetS(false)
	l.SetR(false)
	assert.NotEqual(t, l.Q(), l.NQ(), "outputs complementary after leaving illegal state")
}

func TestGatedSRLatch(t *testing.T) {
	l := hl.MakeGatedSRLatch()
	l.SetR(true)
	assert.True(t, l.Q(), "reset while disabled")
	l.SetEnable(true)
	assert.False(t, l.Q())
	l.SetR(false)
	l.SetS(true)
	assert.True(t, l.Q())
	l.SetEnable(false)
	l.SetS(false)
	l.SetR(true)
	assert.True(t, l.Q(), "hold while disabled")
	assert.False(t, l.NQ())
}

func TestGatedDLatch(t *testing.T) {
	l := hl.MakeGatedDLatch()
	q := l.Q()
	l.SetD(!q)
	assert.Equal(t, q, l.Q(), "disabled latch holds")
	assert.Equal(t, !q, l.D())

	l.SetEnable(true)
	for _, d := range []bool{false, true, false, true} {
		l.SetD(d)
		assert.Equal(t, d, l.Q(), "transparent")
		assert.Equal(t, !d, l.NQ())
	}
	l.SetEnable(false)
	l.SetD(false)
	assert.True(t, l.Q(), "latched value")
}

func TestDFlipFlop(t *testing.T) {
	f := hl.MakeDFlipFlop()
	f.SetD(false)
	f.Clock()
	assert.False(t, f.Q())
	f.SetD(true)
	assert.False(t, f.Q(), "output changes only on clock")
	f.Clock()
	assert.True(t, f.Q())
	assert.False(t, f.NQ())
}

func TestJKFlipFlop(t *testing.T) {
	f := hl.MakeJKFlipFlop()
	assert.True(t, f.Q(), "power-on Q")

	td := []struct {
		j, k bool
		q    bool
	}{
		{false, true, false}, // reset
		{false, false, false},
		{true, false, true}, // set
		{false, false, true},
		{true, true, false}, // toggle
		{true, true, true},
		{true, true, false},
		{true, false, true},
		{true, false, true},
	}
	for i, d := range td {
		f.SetJ(d.j)
		f.SetK(d.k)
		f.Clock()
		assert.Equal(t, d.q, f.Q(), "step %d: j=%v k=%v", i, d.j, d.k)
		assert.Equal(t, !d.q, f.NQ(), "step %d: NQ", i)
	}
}
