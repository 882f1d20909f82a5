// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"
	"testing/quick"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
	hl "github.com/DanStevens/DigitalElectronics-sub000/hwlib"
	"github.com/DanStevens/DigitalElectronics-sub000/hwtest"
)

func TestHalfAdder(t *testing.T) {
	h := hl.MakeHalfAdder()
	hwtest.TruthTable(t, 2, func(in []bool) []bool {
		h.Set(in[0], in[1])
		return []bool{h.S(), h.C()}
	}, [][]bool{
		{false, false, false, false},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, false, true},
	})
}

func TestFullAdder(t *testing.T) {
	f := hl.MakeFullAdder()
	hwtest.TruthTable(t, 3, func(in []bool) []bool {
		f.Set(in[0], in[1], in[2])
		return []bool{f.S(), f.Cout()}
	}, [][]bool{
		{false, false, false, false, false},
		{false, false, true, true, false},
		{false, true, false, true, false},
		{false, true, true, false, true},
		{true, false, false, true, false},
		{true, false, true, false, true},
		{true, true, false, false, true},
		{true, true, true, true, true},
	})
}

func TestALU(t *testing.T) {
	u := hl.NewALU(8)
	hwtest.CheckTriState(t, u)

	add := func(a, b uint8) bool {
		u.SetSubtract(false)
		u.SetA(digital.FromUint8(a))
		u.SetB(digital.FromUint8(b))
		return u.Probe().Uint32() == uint32(a+b) && u.Carry() == (int(a)+int(b) > 255)
	}
	if err := quick.Check(add, nil); err != nil {
		t.Error(err)
	}
	sub := func(a, b uint8) bool {
		u.SetA(digital.FromUint8(a))
		u.SetB(digital.FromUint8(b))
		u.SetSubtract(true)
		// carry out is the inverted borrow
		return u.Probe().Uint32() == uint32(a-b) && u.Carry() == (a >= b)
	}
	if err := quick.Check(sub, nil); err != nil {
		t.Error(err)
	}

	u.SetSubtract(false)
	u.SetA(digital.FromUint8(30))
	u.SetB(digital.FromUint8(12))
	u.SetEnable(true)
	if o := u.Output(); !o.Equal(digital.Driving(digital.FromUint8(42))) {
		t.Fatalf("30 + 12 = %s", o)
	}
}
