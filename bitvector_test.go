// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital_test

import (
	"testing"
	"testing/quick"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func TestNewBitVector(t *testing.T) {
	for _, n := range []int{0, 1, 8, 32} {
		v, err := digital.NewBitVector(n)
		require.NoError(t, err)
		assert.Equal(t, n, v.Len())
		assert.Equal(t, uint32(0), v.Uint32())
	}
	for _, n := range []int{-1, 33} {
		_, err := digital.NewBitVector(n)
		if errors.Cause(err) != digital.ErrRange {
			trace(t, err)
			t.Fatalf("NewBitVector(%d): got error %v, expected ErrRange", n, err)
		}
	}
	_, err := digital.FromUint(40, 0)
	assert.Equal(t, digital.ErrRange, errors.Cause(err))

	v := digital.MustFromUint(4, 0xFF)
	assert.Equal(t, uint32(0xF), v.Uint32(), "FromUint keeps the low bits")
}

func TestBitVector_bits(t *testing.T) {
	v := digital.FromBools(true, false, true, true)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, uint32(0xD), v.Uint32())
	assert.Equal(t, []bool{true, false, true, true}, v.Bools())

	require.NoError(t, v.Set(1, true))
	b, err := v.Get(1)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = v.Get(4)
	assert.Equal(t, digital.ErrIndex, errors.Cause(err))
	err = v.Set(-1, true)
	assert.Equal(t, digital.ErrIndex, errors.Cause(err))
	assert.Panics(t, func() { v.Bit(4) })

	long := make([]bool, 40)
	long[39] = true
	assert.Equal(t, 32, digital.FromBools(long...).Len())
	assert.Equal(t, uint32(0), digital.FromBools(long...).Uint32())

	assert.Equal(t, uint32(0x0201), digital.FromBytes(1, 2).Uint32())
	assert.Equal(t, 16, digital.FromBytes(1, 2).Len())
}

func TestBitVector_roundTrip(t *testing.T) {
	u8 := func(x uint8) bool {
		v, err := digital.FromUint8(x).ToUint8()
		return err == nil && v == x
	}
	i8 := func(x int8) bool {
		v, err := digital.FromInt8(x).ToInt8()
		return err == nil && v == x
	}
	u16 := func(x uint16) bool {
		v, err := digital.FromUint16(x).ToUint16()
		return err == nil && v == x
	}
	i16 := func(x int16) bool {
		v, err := digital.FromInt16(x).ToInt16()
		return err == nil && v == x
	}
	u32 := func(x uint32) bool {
		v, err := digital.FromUint32(x).ToUint32()
		return err == nil && v == x
	}
	i32 := func(x int32) bool {
		v, err := digital.FromInt32(x).ToInt32()
		return err == nil && v == x
	}
	for _, f := range []interface{}{u8, i8, u16, i16, u32, i32} {
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	}

	// every byte
	for x := 0; x < 256; x++ {
		if !u8(uint8(x)) {
			t.Errorf("uint8 round trip failed for %d", x)
		}
		if !i8(int8(x)) {
			t.Errorf("int8 round trip failed for %d", int8(x))
		}
	}
}

func TestBitVector_conversion(t *testing.T) {
	_, err := digital.FromUint16(1).ToUint8()
	assert.Equal(t, digital.ErrConversion, errors.Cause(err))
	_, err = digital.FromUint32(1).ToInt16()
	assert.Equal(t, digital.ErrConversion, errors.Cause(err))

	// short vectors are zero extended
	v, err := digital.MustFromUint(4, 0xF).ToInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(15), v)
}

func TestBitVector_sliceConcat(t *testing.T) {
	v := digital.FromUint8(0xA5)
	lo, err := v.Slice(0, 4)
	require.NoError(t, err)
	hi, err := v.Slice(4, 8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5), lo.Uint32())
	assert.Equal(t, uint32(0xA), hi.Uint32())

	c, err := lo.Concat(hi)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())
	assert.True(t, c.Equal(v))

	_, err = v.Slice(4, 9)
	assert.Equal(t, digital.ErrIndex, errors.Cause(err))
	_, err = digital.FromUint32(0).Concat(lo)
	assert.Equal(t, digital.ErrRange, errors.Cause(err))

	r, err := v.Resize(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), r.Uint32())
	r, err = v.Resize(16)
	require.NoError(t, err)
	assert.Equal(t, 16, r.Len())
	assert.Equal(t, uint32(0xA5), r.Uint32())
}

func TestBitVector_compare(t *testing.T) {
	a, b := digital.MustFromUint(4, 3), digital.FromUint8(3)
	assert.True(t, a.Equal(b), "equality ignores length")
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(digital.FromUint8(4)))
	assert.Equal(t, 1, digital.FromUint8(200).Compare(a))
}

func TestBitVector_Format(t *testing.T) {
	td := []struct {
		v    digital.BitVector
		f    digital.BitFormat
		want string
	}{
		{digital.FromBools(true, true, false, false), digital.BinaryMSBFirst, "0011"},
		{digital.FromBools(true, true, false, false), digital.BinaryLSBFirst, "1100"},
		{digital.FromInt8(-42), digital.SignedDecimal, "-42"},
		{digital.FromInt8(-42), digital.UnsignedDecimal, "214"},
		{digital.FromInt8(-42), digital.SignedHex, "-2A"},
		{digital.FromUint8(0xD6), digital.UnsignedHex, "D6"},
		{digital.FromUint8(0x0A), digital.SignedHex, "0A"},
		{digital.MustFromUint(12, 0xABC), digital.UnsignedHex, "0ABC"},
		{digital.MustFromUint(12, 0xABC), digital.SignedDecimal, "2748"},
		{digital.FromInt32(-1), digital.SignedDecimal, "-1"},
		{digital.FromUint32(1), digital.UnsignedHex, "00000001"},
	}
	for _, d := range td {
		if got := d.v.Format(d.f); got != d.want {
			t.Errorf("Format(%s, %d) = %q, expected %q", d.v, d.f, got, d.want)
		}
	}
	assert.Equal(t, "00101010", digital.FromUint8(42).String())
}

func TestParseBitVector(t *testing.T) {
	v, err := digital.ParseBitVector("0010_1010")
	require.NoError(t, err)
	assert.Equal(t, 8, v.Len())
	assert.Equal(t, uint32(42), v.Uint32())

	v, err = digital.ParseBitVector("1 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v.Uint32())
	assert.Equal(t, 3, v.Len())

	_, err = digital.ParseBitVector("0102")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pos 4")

	_, err = digital.ParseBitVector(string(make([]byte, 33)))
	require.Error(t, err)
	long := "1"
	for i := 0; i < 32; i++ {
		long += "0"
	}
	_, err = digital.ParseBitVector(long)
	assert.Equal(t, digital.ErrRange, errors.Cause(err))

	f := func(x uint32) bool {
		v, err := digital.ParseBitVector(digital.FromUint32(x).String())
		return err == nil && v.Uint32() == x && v.Len() == 32
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
