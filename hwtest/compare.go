// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
)

// A PartFunc simulates a combinational part: it returns the outputs of the
// part for the given inputs.
//
type PartFunc func(in []bool) []bool

func boolString(in []bool) string {
	var b strings.Builder
	for _, v := range in {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// TruthTable checks part against a truth table. Each row of table holds the
// n inputs followed by the expected outputs.
//
func TruthTable(t testing.TB, n int, part PartFunc, table [][]bool) {
	t.Helper()
	for i, row := range table {
		in, want := row[:n], row[n:]
		got := part(append([]bool(nil), in...))
		if len(got) != len(want) {
			t.Fatalf("row %d: got %d outputs, expected %d", i, len(got), len(want))
		}
		for o := range want {
			if got[o] != want[o] {
				t.Errorf("row %d: in=%s => out[%d]=%v, expected %v", i, boolString(in), o, got[o], want[o])
			}
		}
	}
}

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// ComparePart takes two parts and compares their outputs given the same n
// inputs: all zeros, all ones, then random inputs. The number of random
// iterations is 2^n, capped to 4096.
//
func ComparePart(t testing.TB, n int, part1, part2 PartFunc) {
	t.Helper()

	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	inputs := make([]bool, n)

	check := func() {
		t.Helper()
		o1, o2 := part1(append([]bool(nil), inputs...)), part2(append([]bool(nil), inputs...))
		if len(o1) != len(o2) {
			t.Fatalf("len(out1) = %d != len(out2) = %d", len(o1), len(o2))
		}
		for i := range o1 {
			if o1[i] != o2[i] {
				t.Fatalf("seed %d: in=%s\nExpected out[%d]=%v\nGot %v", seed, boolString(inputs), i, o1[i], o2[i])
			}
		}
	}

	// try all 0
	check()

	// try all 1
	for i := range inputs {
		inputs[i] = true
	}
	check()

	iter := n
	if iter > 12 {
		iter = 12
	}
	for i := 0; i < 1<<uint(iter); i++ {
		for in := range inputs {
			inputs[in] = randBool(r)
		}
		check()
	}
}

// A TriStateDevice is a device with a tri-state output controlled by an
// enable line.
//
type TriStateDevice interface {
	digital.Driver
	SetEnable(bool)
	Probe() digital.BitVector
}

// CheckTriState checks that d drives its probed value when enabled and is in
// high impedance when disabled. The enable line is left off.
//
func CheckTriState(t testing.TB, d TriStateDevice) {
	t.Helper()
	d.SetEnable(false)
	if o := d.Output(); !o.IsHighZ() {
		t.Errorf("disabled output = %s, expected Z", o)
	}
	d.SetEnable(true)
	want := d.Probe()
	if o := d.Output(); !o.Equal(digital.Driving(want)) {
		t.Errorf("enabled output = %s, expected %s", o, want)
	}
	d.SetEnable(false)
	if o := d.Output(); !o.IsHighZ() {
		t.Errorf("output = %s after disable, expected Z", o)
	}
}

// Trace records lines of text to be compared against an expected trace.
//
type Trace struct {
	b strings.Builder
}

// Logf appends a formatted line to the trace.
//
func (tr *Trace) Logf(format string, args ...interface{}) {
	fmt.Fprintf(&tr.b, format, args...)
	tr.b.WriteByte('\n')
}

func (tr *Trace) String() string { return tr.b.String() }

// Check compares the trace with the expected text, line by line. Leading and
// trailing blank space in want is ignored.
//
func (tr *Trace) Check(t testing.TB, want string) {
	t.Helper()
	got := strings.Split(strings.TrimSpace(tr.b.String()), "\n")
	exp := strings.Split(strings.TrimSpace(want), "\n")
	for i := 0; i < len(got) || i < len(exp); i++ {
		var g, e string
		if i < len(got) {
			g = strings.TrimSpace(got[i])
		}
		if i < len(exp) {
			e = strings.TrimSpace(exp[i])
		}
		if g != e {
			t.Fatalf("trace line %d:\ngot:      %s\nexpected: %s\nfull trace:\n%s", i+1, g, e, tr.b.String())
		}
	}
}
