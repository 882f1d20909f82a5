// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital_test

import (
	"testing"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// latch is a minimal bus module.
type latch struct {
	v      digital.BitVector
	load   bool
	enable bool
}

func (l *latch) Output() digital.Output {
	if !l.enable {
		return digital.HighZ
	}
	return digital.Driving(l.v)
}

func (l *latch) Loading() bool               { return l.load }
func (l *latch) SetData(v digital.BitVector) { l.v = v }

func TestOutput(t *testing.T) {
	var o digital.Output
	assert.True(t, o.IsHighZ(), "zero value")
	assert.True(t, o.Equal(digital.HighZ))
	assert.Equal(t, "Z", o.String())

	o = digital.Driving(digital.FromUint8(0))
	assert.False(t, o.IsHighZ())
	assert.False(t, o.Equal(digital.HighZ), "driving zero is not high impedance")
	v, ok := o.Value()
	assert.True(t, ok)
	assert.Equal(t, 8, v.Len())
}

func TestParallelBus(t *testing.T) {
	_, err := digital.NewParallelBus(0)
	assert.Equal(t, digital.ErrRange, errors.Cause(err))

	bus, err := digital.NewParallelBus(8)
	require.NoError(t, err)
	a := &latch{v: digital.FromUint8(42)}
	b := &latch{v: digital.FromUint8(0xFF)}
	n := &latch{v: digital.MustFromUint(4, 0xF)}
	bus.Attach("A", a)
	bus.Attach("B", b)
	bus.Attach("N", n)

	// nothing driving
	b.load = true
	require.NoError(t, bus.Transfer())
	assert.True(t, bus.Probe().IsHighZ())
	assert.Equal(t, uint32(0xFF), b.v.Uint32(), "receivers untouched")

	a.enable = true
	require.NoError(t, bus.Transfer())
	assert.Equal(t, []string{"A"}, bus.Drivers())
	assert.True(t, bus.Probe().Equal(digital.Driving(digital.FromUint8(42))))
	assert.Equal(t, uint32(42), b.v.Uint32())

	// narrow drivers are zero extended to the bus width
	a.enable = false
	n.enable = true
	require.NoError(t, bus.Transfer())
	assert.Equal(t, uint32(0xF), b.v.Uint32())
	assert.Equal(t, 8, b.v.Len())

	a.enable = true
	err = bus.Transfer()
	if errors.Cause(err) != digital.ErrBusContention {
		t.Fatalf("got error %v, expected bus contention", err)
	}
	assert.Contains(t, err.Error(), "A, N")
	assert.True(t, bus.Probe().IsHighZ())

	bus.Reset()
	assert.True(t, bus.Probe().IsHighZ())
	assert.Equal(t, 8, bus.Width())
}

func TestParallelBus_connect(t *testing.T) {
	bus, _ := digital.NewParallelBus(4)
	src := &latch{v: digital.FromUint8(0x5A), enable: true}
	dst := &latch{load: true}
	bus.Attach("SRC", src)
	bus.Connect("DST", dst)
	require.NoError(t, bus.Transfer())
	assert.Equal(t, uint32(0xA), dst.v.Uint32(), "wide drivers are truncated")
	assert.Equal(t, []string{"SRC"}, bus.Drivers())
}
