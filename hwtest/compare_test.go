// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"testing"

	"github.com/DanStevens/DigitalElectronics-sub000/hwlib"
	"github.com/DanStevens/DigitalElectronics-sub000/hwtest"
)

func gateFunc(fn hwlib.GateFunc) hwtest.PartFunc {
	g := hwlib.MakeGate(fn)
	return func(in []bool) []bool {
		g.Set(in[0], in[1])
		return []bool{g.Out()}
	}
}

// customOr is OR built from NAND gates.
func customOr(in []bool) []bool {
	notA, notB, out := hwlib.MakeGate(hwlib.Nand), hwlib.MakeGate(hwlib.Nand), hwlib.MakeGate(hwlib.Nand)
	notA.Set(in[0], in[0])
	notB.Set(in[1], in[1])
	out.Set(notA.Out(), notB.Out())
	return []bool{out.Out()}
}

func TestComparePart(t *testing.T) {
	hwtest.ComparePart(t, 2, gateFunc(hwlib.Or), customOr)
}

func TestTruthTable(t *testing.T) {
	hwtest.TruthTable(t, 2, customOr, [][]bool{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	})
}

func TestCheckTriState(t *testing.T) {
	b := hwlib.MakeTriStateBuffer(4)
	hwtest.CheckTriState(t, &b)
}

func TestTrace(t *testing.T) {
	var tr hwtest.Trace
	tr.Logf("a=%d", 1)
	tr.Logf("b=%s", "x")
	tr.Check(t, `
		a=1
		b=x
	`)
}
