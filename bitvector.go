// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxBits is the maximum length of a BitVector.
//
const MaxBits = 32

// A BitVector is a fixed length sequence of at most MaxBits bits. Bit 0 is the
// least significant bit.
//
// BitVector is a value type: assigning or passing a BitVector copies it.
//
// The zero value is an empty vector.
//
type BitVector struct {
	v uint32
	n uint8
}

func mask(n int) uint32 {
	if n >= MaxBits {
		return ^uint32(0)
	}
	return 1<<uint(n) - 1
}

func checkLen(n int) error {
	if n < 0 || n > MaxBits {
		return errors.Wrapf(ErrRange, "bit vector length %d not in [0, %d]", n, MaxBits)
	}
	return nil
}

// NewBitVector returns a zeroed BitVector of length n.
//
func NewBitVector(n int) (BitVector, error) {
	if err := checkLen(n); err != nil {
		return BitVector{}, err
	}
	return BitVector{n: uint8(n)}, nil
}

// FromUint returns a BitVector of length n holding the n least significant
// bits of v.
//
func FromUint(n int, v uint32) (BitVector, error) {
	if err := checkLen(n); err != nil {
		return BitVector{}, err
	}
	return BitVector{v & mask(n), uint8(n)}, nil
}

// MustFromUint is like FromUint but panics if n is out of range. It is meant
// for wiring code where n is a constant.
//
func MustFromUint(n int, v uint32) BitVector {
	b, err := FromUint(n, v)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBools returns a BitVector whose bit i is b[i]. Values past MaxBits are
// ignored.
//
func FromBools(b ...bool) BitVector {
	if len(b) > MaxBits {
		b = b[:MaxBits]
	}
	var v uint32
	for i, bit := range b {
		if bit {
			v |= 1 << uint(i)
		}
	}
	return BitVector{v, uint8(len(b))}
}

// FromBytes returns a BitVector built from the given bytes in little endian
// order, 8 bits per byte. Bits past MaxBits are ignored.
//
func FromBytes(b ...byte) BitVector {
	if len(b) > MaxBits/8 {
		b = b[:MaxBits/8]
	}
	var v uint32
	for i, x := range b {
		v |= uint32(x) << uint(i*8)
	}
	return BitVector{v, uint8(len(b) * 8)}
}

// FromUint8 returns an 8 bits BitVector.
func FromUint8(v uint8) BitVector { return BitVector{uint32(v), 8} }

// FromInt8 returns an 8 bits BitVector holding the two's complement of v.
func FromInt8(v int8) BitVector { return BitVector{uint32(uint8(v)), 8} }

// FromUint16 returns a 16 bits BitVector.
func FromUint16(v uint16) BitVector { return BitVector{uint32(v), 16} }

// FromInt16 returns a 16 bits BitVector holding the two's complement of v.
func FromInt16(v int16) BitVector { return BitVector{uint32(uint16(v)), 16} }

// FromUint32 returns a 32 bits BitVector.
func FromUint32(v uint32) BitVector { return BitVector{v, 32} }

// FromInt32 returns a 32 bits BitVector holding the two's complement of v.
func FromInt32(v int32) BitVector { return BitVector{uint32(v), 32} }

// Len returns the length of b.
//
func (b BitVector) Len() int { return int(b.n) }

// Uint32 returns the bits of b as an unsigned integer.
//
func (b BitVector) Uint32() uint32 { return b.v }

// Get returns the value of bit i.
//
func (b BitVector) Get(i int) (bool, error) {
	if i < 0 || i >= int(b.n) {
		return false, errors.Wrapf(ErrIndex, "bit %d of %d bits vector", i, b.n)
	}
	return b.v&(1<<uint(i)) != 0, nil
}

// Bit returns the value of bit i. It panics if i is out of range.
//
func (b BitVector) Bit(i int) bool {
	v, err := b.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Set sets bit i to v.
//
func (b *BitVector) Set(i int, v bool) error {
	if i < 0 || i >= int(b.n) {
		return errors.Wrapf(ErrIndex, "bit %d of %d bits vector", i, b.n)
	}
	if v {
		b.v |= 1 << uint(i)
	} else {
		b.v &^= 1 << uint(i)
	}
	return nil
}

// Bools returns the bits of b as a slice, lsb first.
//
func (b BitVector) Bools() []bool {
	r := make([]bool, b.n)
	for i := range r {
		r[i] = b.v&(1<<uint(i)) != 0
	}
	return r
}

func (b BitVector) narrow(bits int) error {
	if int(b.n) > bits {
		return errors.Wrapf(ErrConversion, "%d bits vector to %d bits integer", b.n, bits)
	}
	return nil
}

// ToUint8 converts b to an uint8. It fails if b is longer than 8 bits.
//
func (b BitVector) ToUint8() (uint8, error) {
	if err := b.narrow(8); err != nil {
		return 0, err
	}
	return uint8(b.v), nil
}

// ToInt8 converts b to an int8. Vectors shorter than 8 bits are zero extended.
// It fails if b is longer than 8 bits.
//
func (b BitVector) ToInt8() (int8, error) {
	v, err := b.ToUint8()
	return int8(v), err
}

// ToUint16 converts b to an uint16. It fails if b is longer than 16 bits.
//
func (b BitVector) ToUint16() (uint16, error) {
	if err := b.narrow(16); err != nil {
		return 0, err
	}
	return uint16(b.v), nil
}

// ToInt16 converts b to an int16. Vectors shorter than 16 bits are zero
// extended. It fails if b is longer than 16 bits.
//
func (b BitVector) ToInt16() (int16, error) {
	v, err := b.ToUint16()
	return int16(v), err
}

// ToUint32 converts b to an uint32. It never fails.
//
func (b BitVector) ToUint32() (uint32, error) {
	return b.v, b.narrow(32)
}

// ToInt32 converts b to an int32. Vectors shorter than 32 bits are zero
// extended.
//
func (b BitVector) ToInt32() (int32, error) {
	v, err := b.ToUint32()
	return int32(v), err
}

// Slice returns bits lo through hi-1 of b as a new vector.
//
func (b BitVector) Slice(lo, hi int) (BitVector, error) {
	if lo < 0 || hi > int(b.n) || lo > hi {
		return BitVector{}, errors.Wrapf(ErrIndex, "slice [%d:%d] of %d bits vector", lo, hi, b.n)
	}
	return BitVector{(b.v >> uint(lo)) & mask(hi-lo), uint8(hi - lo)}, nil
}

// Concat returns a new vector with the bits of b followed by the bits of hi,
// b being the least significant part.
//
func (b BitVector) Concat(hi BitVector) (BitVector, error) {
	n := int(b.n) + int(hi.n)
	if n > MaxBits {
		return BitVector{}, errors.Wrapf(ErrRange, "concatenation of %d and %d bits", b.n, hi.n)
	}
	return BitVector{b.v | hi.v<<b.n, uint8(n)}, nil
}

// Resize returns a copy of b truncated or zero extended to n bits.
//
func (b BitVector) Resize(n int) (BitVector, error) {
	if err := checkLen(n); err != nil {
		return BitVector{}, err
	}
	return BitVector{b.v & mask(n), uint8(n)}, nil
}

// Equal returns true if b and o have the same numeric value, regardless of
// their length.
//
func (b BitVector) Equal(o BitVector) bool { return b.v == o.v }

// Compare compares the numeric values of b and o and returns -1, 0 or +1.
//
func (b BitVector) Compare(o BitVector) int {
	switch {
	case b.v < o.v:
		return -1
	case b.v > o.v:
		return 1
	}
	return 0
}

// BitFormat selects the text representation used by BitVector.Format.
//
type BitFormat int

// Supported formats.
//
const (
	BinaryMSBFirst BitFormat = iota
	BinaryLSBFirst
	SignedDecimal
	UnsignedDecimal
	SignedHex
	UnsignedHex
)

// width returns the narrowest integer width that holds b.
func (b BitVector) width() int {
	switch {
	case b.n <= 8:
		return 8
	case b.n <= 16:
		return 16
	}
	return 32
}

func (b BitVector) signed() int64 {
	switch b.width() {
	case 8:
		return int64(int8(b.v))
	case 16:
		return int64(int16(b.v))
	}
	return int64(int32(b.v))
}

// Format returns the text representation of b in the given format.
//
// Decimal and hexadecimal formats interpret b as an integer of the narrowest
// width among 8, 16 and 32 bits that can hold it. Hexadecimal output is zero
// padded to that width.
//
func (b BitVector) Format(f BitFormat) string {
	switch f {
	case BinaryMSBFirst, BinaryLSBFirst:
		var sb strings.Builder
		for i := 0; i < int(b.n); i++ {
			bit := i
			if f == BinaryMSBFirst {
				bit = int(b.n) - 1 - i
			}
			if b.v&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		return sb.String()
	case SignedDecimal:
		return strconv.FormatInt(b.signed(), 10)
	case UnsignedDecimal:
		return strconv.FormatUint(uint64(b.v), 10)
	case SignedHex:
		if s := b.signed(); s < 0 {
			return fmt.Sprintf("-%0*X", b.width()/4, -s)
		}
		fallthrough
	case UnsignedHex:
		return fmt.Sprintf("%0*X", b.width()/4, b.v)
	}
	panic("unknown bit format " + strconv.Itoa(int(f)))
}

// String returns b as a binary string, msb first.
//
func (b BitVector) String() string {
	return b.Format(BinaryMSBFirst)
}
