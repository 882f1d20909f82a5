// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
)

// TriStateBuffer is a bank of tri-state buffers sharing one enable line.
//
//	Inputs: data[bits], enable
//	Outputs: out[bits]
//	Function: if enable { out = data } else { out = Z }
//
type TriStateBuffer struct {
	data   digital.BitVector
	enable bool
}

// MakeTriStateBuffer returns a disabled buffer bank of the given width.
//
func MakeTriStateBuffer(bits int) TriStateBuffer {
	return TriStateBuffer{data: digital.MustFromUint(bits, 0)}
}

// SetData sets the buffer inputs. Bits past the buffer width are ignored and
// missing high bits are left unchanged. A zero TriStateBuffer takes the width
// of the first vector set.
//
func (t *TriStateBuffer) SetData(v digital.BitVector) {
	if t.data.Len() == 0 {
		t.data = v
		return
	}
	t.data = overlay(t.data, v)
}

// SetEnable sets the enable line.
func (t *TriStateBuffer) SetEnable(v bool) { t.enable = v }

// Enabled returns the state of the enable line.
func (t *TriStateBuffer) Enabled() bool { return t.enable }

// Output returns the buffer output.
//
func (t *TriStateBuffer) Output() digital.Output {
	if !t.enable {
		return digital.HighZ
	}
	return digital.Driving(t.data)
}

// Probe returns the buffer inputs, regardless of the enable line.
func (t *TriStateBuffer) Probe() digital.BitVector { return t.data }

// overlay returns dst with its low bits replaced by the bits of src. The
// length of dst is preserved.
func overlay(dst, src digital.BitVector) digital.BitVector {
	n := src.Len()
	if n > dst.Len() {
		n = dst.Len()
	}
	for i := 0; i < n; i++ {
		_ = dst.Set(i, src.Bit(i))
	}
	return dst
}
