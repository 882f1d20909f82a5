// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package digital

import "github.com/pkg/errors"

// Error kinds returned by the simulator. Errors returned by this module wrap
// one of these with some context; use errors.Cause (or the standard errors.Is)
// to test for a specific kind:
//
//	if errors.Cause(err) == digital.ErrBusContention {
//		// two modules were driving the bus
//	}
//
// None of these are recoverable conditions: a correctly wired circuit never
// returns them.
//
var (
	// ErrRange is returned for lengths, addresses or values outside of a
	// component's declared bounds.
	ErrRange = errors.New("value out of range")
	// ErrIndex is returned when accessing a bit past the end of a BitVector.
	ErrIndex = errors.New("index out of range")
	// ErrConversion is returned when a BitVector is too wide to be converted
	// to an integer type without data loss.
	ErrConversion = errors.New("conversion overflow")
	// ErrBusContention is returned when more than one module drives a bus.
	ErrBusContention = errors.New("bus contention")
	// ErrInvalidOperation is returned for requests that a component cannot
	// honor, like loading a register while it drives its output.
	ErrInvalidOperation = errors.New("invalid operation")
)
