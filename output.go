// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital

// Output is the state of a tri-state output: either driving a value or in high
// impedance. High impedance is not the same as driving zero: a module in high
// impedance does not contribute any value to the lines it is connected to.
//
// The zero value is HighZ.
//
type Output struct {
	v       BitVector
	driving bool
}

// HighZ is the high impedance output.
//
var HighZ = Output{}

// Driving returns an output driving v.
//
func Driving(v BitVector) Output {
	return Output{v, true}
}

// Value returns the driven value and true, or an empty vector and false if o
// is in high impedance.
//
func (o Output) Value() (BitVector, bool) {
	return o.v, o.driving
}

// IsHighZ returns true if o is not driving.
//
func (o Output) IsHighZ() bool { return !o.driving }

// Equal returns true if both outputs are in high impedance or if both drive
// the same numeric value.
//
func (o Output) Equal(p Output) bool {
	return o.driving == p.driving && o.v.Equal(p.v)
}

func (o Output) String() string {
	if !o.driving {
		return "Z"
	}
	return o.v.String()
}
