// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital

import (
	"github.com/pkg/errors"
)

// ParseBitVector parses a binary string, msb first, into a BitVector. Spaces
// and underscores can be used as digit separators. For example:
//
//	ParseBitVector("0010_1010") // 8 bits vector, value 42
//
func ParseBitVector(s string) (BitVector, error) {
	var (
		v uint32
		n int
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '_':
			continue
		case '0', '1':
			if n == MaxBits {
				return BitVector{}, parseError(s, i, ErrRange, "too many bits")
			}
			v = v<<1 | uint32(c-'0')
			n++
		default:
			return BitVector{}, parseError(s, i, nil, "expected 0 or 1")
		}
	}
	return BitVector{v, uint8(n)}, nil
}

func parseError(in string, pos int, kind error, msg string) error {
	if kind == nil {
		return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
	}
	return errors.Wrapf(kind, "in %q at pos %d: %s", in, pos+1, msg)
}
