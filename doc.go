/*
Package digital provides the value types shared by every component of the
simulator: the BitVector, tri-state outputs and the parallel bus that connects
them.

Components themselves live in package hwlib, from logic gates up to memories,
and package be801 wires them into a small microcoded 8 bits computer.

The simulation is synchronous and single threaded. Components are plain
structs owning their sub-components. Every input change is propagated at once
through the owned parts, and state only changes on an explicit Clock call.
Given the same sequence of calls, a circuit always ends up in the same state.

Components sharing a bus expose a tri-state Output. At most one of them may
drive the bus during a transfer:

	bus, _ := digital.NewParallelBus(8)
	bus.Attach("A", regA)
	bus.Attach("B", regB)
	regA.SetEnable(true)
	regB.SetLoad(true)
	if err := bus.Transfer(); err != nil {
		// ErrBusContention
	}
	regB.Clock()

*/
package digital
