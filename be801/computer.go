// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package be801 implements the BE-801, a microcoded 8 bits breadboard computer
// with 16 bytes of RAM.
//
// Registers, RAM, ALU and program counter are hwlib components sharing an 8
// bits bus. A control unit reads a 16 bits control word from a microcode ROM
// for each micro-step of the fetch-decode-execute cycle and drives the control
// lines of the components accordingly.
//
//	c := be801.New()
//	if err := c.LoadRAM(program); err != nil {
//		// ...
//	}
//	for !c.Halted() {
//		if err := c.Clock(); err != nil {
//			// ...
//		}
//	}
//	out, _ := c.ProbeOutputRegister().ToUint8()
//
// In manual control mode, the microcode is bypassed and the control lines set
// with SetControlSignals are used for the next clock.
//
package be801

import (
	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/DanStevens/DigitalElectronics-sub000/hwlib"
	"github.com/DanStevens/DigitalElectronics-sub000/internal/logger"
	"github.com/pkg/errors"
)

const (
	// WordBits is the width of the bus, registers and RAM words.
	WordBits = 8
	// AddressBits is the width of RAM addresses and of the program counter.
	AddressBits = 4
	// RAMSize is the RAM capacity in bytes.
	RAMSize = hwlib.RAMWords

	logTag = "be801"
)

// Computer is a BE-801 computer.
//
// A Computer is not safe for concurrent use.
//
type Computer struct {
	bus   *digital.ParallelBus
	pc    *hwlib.ProgramCounter
	mem   *hwlib.IndirectRAM
	ir    *hwlib.Register
	irOut hwlib.TriStateBuffer // operand nibble of the instruction register
	a     *hwlib.Register
	b     *hwlib.Register
	out   *hwlib.Register
	alu   *hwlib.ALU
	sw    *hwlib.Switches

	// control unit
	rom     *hwlib.ROM
	step    *hwlib.BinaryCounter
	stepDec *hwlib.Decoder4to16
	halt    hwlib.SRLatch
	control Signal
	manual  bool
}

// New returns a new computer, reset. RAM holds all ones.
//
func New() *Computer {
	c := &Computer{
		pc:      hwlib.NewProgramCounter(AddressBits),
		mem:     hwlib.NewIndirectRAM(WordBits),
		ir:      hwlib.NewRegister(WordBits),
		irOut:   hwlib.MakeTriStateBuffer(AddressBits),
		a:       hwlib.NewRegister(WordBits),
		b:       hwlib.NewRegister(WordBits),
		out:     hwlib.NewRegister(WordBits),
		alu:     hwlib.NewALU(WordBits),
		sw:      hwlib.NewSwitches(WordBits),
		rom:     hwlib.NewROM(MicrocodeROM()),
		step:    hwlib.NewBinaryCounter(4),
		stepDec: hwlib.NewDecoder4to16(),
		halt:    hwlib.MakeSRLatch(),
	}
	bus, err := digital.NewParallelBus(WordBits)
	if err != nil {
		panic(err)
	}
	bus.Attach("PC", c.pc)
	bus.Attach("RAM", c.mem)
	bus.Attach("IR", &c.irOut)
	bus.Connect("IR", c.ir)
	bus.Attach("A", c.a)
	bus.Attach("B", c.b)
	bus.Attach("ALU", c.alu)
	bus.Attach("OUT", c.out)
	bus.Attach("SW", c.sw)
	c.bus = bus

	c.reset()
	return c
}

// syncIR updates the instruction register's operand buffer.
func (c *Computer) syncIR() {
	v, _ := c.ir.Probe().Slice(0, AddressBits)
	c.irOut.SetData(v)
}

// syncALU feeds the A and B registers to the ALU.
func (c *Computer) syncALU() {
	c.alu.SetA(c.a.Probe())
	c.alu.SetB(c.b.Probe())
}

// load and output enable lines of the same module.
var exclusive = [...]struct {
	in, out Signal
}{{AI, AO}, {RI, RO}, {II, IO}}

// lines that load a module from the bus.
const busLoads = J | OI | BI | AI | II | RI | MI

func checkSignals(s Signal) error {
	for _, p := range exclusive {
		if s&(p.in|p.out) == p.in|p.out {
			return errors.Wrapf(digital.ErrInvalidOperation, "control word %s loads and drives the same module", s)
		}
	}
	return nil
}

// apply drives the component control lines from s.
func (c *Computer) apply(s Signal) error {
	if err := checkSignals(s); err != nil {
		return err
	}
	if err := c.a.SetLoadEnable(s&AI != 0, s&AO != 0); err != nil {
		return err
	}
	if err := c.mem.SetLoadEnable(s&RI != 0, s&RO != 0); err != nil {
		return err
	}
	c.mem.SetLoadAddress(s&MI != 0)
	c.ir.SetLoad(s&II != 0)
	c.irOut.SetEnable(s&IO != 0)
	c.b.SetLoad(s&BI != 0)
	c.out.SetLoad(s&OI != 0)
	c.alu.SetSubtract(s&SU != 0)
	c.alu.SetEnable(s&EO != 0)
	c.pc.SetCountEnable(s&CE != 0)
	c.pc.SetEnable(s&CO != 0)
	c.pc.SetLoad(s&J != 0)
	return nil
}

// release resets all control lines.
func (c *Computer) release() {
	c.control = 0
	if err := c.apply(0); err != nil {
		panic(err)
	}
}

// decode reads the control word for the current opcode and step from the
// microcode ROM: one read for the low byte and one for the high byte.
func (c *Computer) decode() Signal {
	step, _ := c.step.Probe().Slice(0, romStepBits)
	op, _ := c.ir.Probe().Slice(AddressBits, WordBits)
	addr, err := step.Concat(op)
	if err != nil {
		panic(err)
	}
	var w Signal
	for half := 0; half < 2; half++ {
		a, _ := addr.Concat(digital.FromBools(half == 1))
		if err := c.rom.SetAddress(a); err != nil {
			panic(err)
		}
		c.rom.SetEnable(true)
		v, _ := c.rom.Output().Value()
		c.rom.SetEnable(false)
		w |= Signal(v.Uint32()) << uint(8*half)
	}
	return w
}

// nextStep increments the step counter, going back to 0 when the decoder sees
// StepsPerInstruction.
func (c *Computer) nextStep() {
	c.step.Increment()
	c.syncStepDecoder()
	if c.stepDec.Line(StepsPerInstruction) {
		c.step.Clear()
		c.syncStepDecoder()
	}
}

func (c *Computer) syncStepDecoder() {
	if err := c.stepDec.SetAddress(c.step.Probe()); err != nil {
		panic(err)
	}
}

// Clock runs one micro-step: it asserts the control lines for the step (from
// the microcode ROM, or as set by SetControlSignals in manual mode), transfers
// the bus, clocks every component and releases all control lines.
//
// Once halted, Clock does nothing until Reset.
//
// An error is returned if more than one component drives the bus. In that
// case no component is clocked. If no component drives the bus, modules with
// their load line asserted keep their contents.
//
func (c *Computer) Clock() error {
	if c.Halted() {
		return nil
	}
	if !c.manual {
		c.control = c.decode()
	}
	s := c.control
	defer c.release()
	if err := c.apply(s); err != nil {
		return err
	}
	if err := c.bus.Transfer(); err != nil {
		logger.Logf(logTag, "%v (control word %s)", err, s)
		return errors.Wrapf(err, "step %d, control word %s", c.ProbeMicroStep(), s)
	}
	if c.bus.Probe().IsHighZ() && s&busLoads != 0 {
		// nothing to load from
		if err := c.apply(s &^ busLoads); err != nil {
			panic(err)
		}
	}

	c.mem.Clock()
	c.ir.Clock()
	c.syncIR()
	c.a.Clock()
	c.b.Clock()
	c.out.Clock()
	c.pc.Clock()
	c.syncALU()

	if s&HLT != 0 {
		c.halt.SetS(true)
		c.halt.SetS(false)
		logger.Logf(logTag, "halted at PC=%d", c.pc.Probe().Uint32())
	}
	if !c.manual {
		c.nextStep()
	}
	return nil
}

// Run clocks the computer until it halts or after maxClocks clocks. It returns
// the number of clocks run.
//
func (c *Computer) Run(maxClocks int) (int, error) {
	n := 0
	for ; n < maxClocks && !c.Halted(); n++ {
		if err := c.Clock(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *Computer) reset() {
	c.a.Reset()
	c.b.Reset()
	c.out.Reset()
	c.ir.Reset()
	c.syncIR()
	c.mem.Reset()
	c.pc.Reset()
	c.step.Clear()
	c.syncStepDecoder()
	c.halt.SetR(true)
	c.halt.SetR(false)
	c.sw.SetEnable(false)
	c.bus.Reset()
	c.release()
	c.syncALU()
}

// Reset sets all registers to all ones, the program counter and step counter
// to 0 and clears the halt flag. RAM contents and the control mode are
// preserved.
//
func (c *Computer) Reset() {
	c.reset()
	logger.Log(logTag, "reset")
}

// LoadRAM writes program into RAM starting at address 0, then resets the
// computer. Each byte takes two clocks: the address is put on the bus by the
// front panel switches with MI asserted, then the data with RI asserted.
//
func (c *Computer) LoadRAM(program []byte) (err error) {
	if len(program) > RAMSize {
		return errors.Wrapf(digital.ErrRange, "program size %d exceeds RAM size %d", len(program), RAMSize)
	}

	manual := c.manual
	c.manual = true
	c.halt.SetR(true)
	c.halt.SetR(false)
	defer func() {
		c.sw.SetEnable(false)
		c.manual = manual
		if err == nil {
			c.Reset()
		}
	}()

	c.sw.SetEnable(true)
	for i, v := range program {
		c.sw.Set(digital.FromUint8(uint8(i)))
		if err = c.clockWith(MI); err != nil {
			return errors.Wrapf(err, "load address %d", i)
		}
		c.sw.Set(digital.FromUint8(v))
		if err = c.clockWith(RI); err != nil {
			return errors.Wrapf(err, "load data at address %d", i)
		}
	}
	logger.Logf(logTag, "loaded %d bytes", len(program))
	return nil
}

func (c *Computer) clockWith(s Signal) error {
	if err := c.SetControlSignals(s); err != nil {
		return err
	}
	return c.Clock()
}

// SetManualControlMode turns manual control mode on or off. Pending control
// lines are released.
//
func (c *Computer) SetManualControlMode(v bool) {
	c.manual = v
	c.release()
}

// ManualControlMode returns true in manual control mode.
func (c *Computer) ManualControlMode() bool { return c.manual }

// SetControlSignals sets the control word used by the next clock in manual
// control mode. It returns an error wrapping digital.ErrInvalidOperation if
// the computer is not in manual mode or if s would have a module load from
// the bus while driving it. On error, the pending control word is left
// unchanged.
//
func (c *Computer) SetControlSignals(s Signal) error {
	if !c.manual {
		return errors.Wrap(digital.ErrInvalidOperation, "control signals can only be set in manual control mode")
	}
	if err := c.apply(s); err != nil {
		if e := c.apply(c.control); e != nil {
			panic(e)
		}
		return err
	}
	c.control = s
	return nil
}

// SetControlSignal asserts or releases the control lines in s, leaving the
// other lines unchanged. See SetControlSignals.
//
func (c *Computer) SetControlSignal(s Signal, v bool) error {
	w := c.control
	if v {
		w |= s
	} else {
		w &^= s
	}
	return c.SetControlSignals(w)
}

// Halted returns true if the computer has executed a HLT instruction.
func (c *Computer) Halted() bool { return c.halt.Q() }

// ProbePC returns the program counter.
func (c *Computer) ProbePC() digital.BitVector { return c.pc.Probe() }

// ProbeInstructionRegister returns the 8 bits of the instruction register.
func (c *Computer) ProbeInstructionRegister() digital.BitVector { return c.ir.Probe() }

// ProbeOpcode returns the opcode in the instruction register.
//
func (c *Computer) ProbeOpcode() Opcode {
	return Opcode(c.ir.Probe().Uint32() >> AddressBits)
}

// ProbeARegister returns the A register.
func (c *Computer) ProbeARegister() digital.BitVector { return c.a.Probe() }

// ProbeBRegister returns the B register.
func (c *Computer) ProbeBRegister() digital.BitVector { return c.b.Probe() }

// ProbeOutputRegister returns the output register.
func (c *Computer) ProbeOutputRegister() digital.BitVector { return c.out.Probe() }

// ProbeMemoryAddress returns the memory address register.
func (c *Computer) ProbeMemoryAddress() digital.BitVector { return c.mem.ProbeAddress() }

// ProbeRAM returns the RAM contents at addr.
//
func (c *Computer) ProbeRAM(addr int) (digital.BitVector, error) {
	return c.mem.ProbeAt(addr)
}

// ProbeBus returns the bus state after the last clock.
func (c *Computer) ProbeBus() digital.Output { return c.bus.Probe() }

// ProbeALU returns the ALU result, regardless of its output enable line.
func (c *Computer) ProbeALU() digital.BitVector { return c.alu.Probe() }

// ProbeCarry returns the ALU carry out.
func (c *Computer) ProbeCarry() bool { return c.alu.Carry() }

// ProbeMicroStep returns the micro-step counter.
//
func (c *Computer) ProbeMicroStep() int { return int(c.step.Probe().Uint32()) }

// ProbeControlWord returns the control lines currently asserted. Outside of
// manual mode, lines are only asserted during Clock, see NextControlWord.
//
func (c *Computer) ProbeControlWord() Signal { return c.control }

// NextControlWord returns the control word the next clock will assert.
//
func (c *Computer) NextControlWord() Signal {
	if c.manual {
		return c.control
	}
	return c.decode()
}
