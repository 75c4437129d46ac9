// This file is part of Whiskers.
//
// Whiskers is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Whiskers is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Whiskers.  If not, see <https://www.gnu.org/licenses/>.

package sm83

import (
	"fmt"

	"github.com/whiskers-emu/whiskers/logger"
)

// Memory is the interface required by the CPU to access the address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Addresses of the interrupt registers.
const (
	AddrIF = uint16(0xff0f)
	AddrIE = uint16(0xffff)
)

// Interrupt sources. The value is the bit in the IF and IE registers.
const (
	IntVBlank = iota
	IntSTAT
	IntTimer
	IntSerial
	IntJoypad
)

// number of cycles consumed by interrupt dispatch
const interruptCycles = 20

// Result records the most recently executed instruction.
type Result struct {
	Address     uint16
	Prefixed    bool
	Opcode      uint8
	Instruction Instruction
	Operand     uint16
	Cycles      int
}

func (r Result) String() string {
	s := fmt.Sprintf("%04x %s", r.Address, r.Instruction)
	switch r.Instruction.Size - 1 - btoi(r.Prefixed) {
	case 1:
		s = fmt.Sprintf("%s [%02x]", s, r.Operand)
	case 2:
		s = fmt.Sprintf("%s [%04x]", s, r.Operand)
	}
	return fmt.Sprintf("%s (%d)", s, r.Cycles)
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CPU implements the SM83.
type CPU struct {
	Registers

	mem Memory

	// Timer is clocked by the CPU and must be ticked by the caller with the
	// number of cycles returned by ExecuteInstruction()
	Timer *Timer

	// interrupt master enable
	ime bool

	// EI takes effect after the instruction that follows it. counts down
	// to zero at the end of each instruction
	eiDelay int

	// waiting for an interrupt after a HALT instruction
	halted bool

	// stopped by a STOP instruction, an illegal instruction, a jump to self
	// with interrupts disabled, or by the host
	stopped bool

	instructionAddress uint16

	// the immediate data of the current instruction
	operand uint16

	LastResult Result

	// OnInstruction is called after every instruction if it is not nil
	OnInstruction func(Result)
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory) *CPU {
	c := &CPU{
		mem: mem,
	}
	c.Timer = newTimer(c)
	c.HardReset()
	return c
}

func (c *CPU) String() string {
	return c.Registers.String()
}

// SoftReset puts the CPU into the state it has when the reset line is held.
func (c *CPU) SoftReset() {
	c.SP = 0xfffe
	c.PC = 0x0000
	c.ime = false
	c.eiDelay = 0
	c.halted = false
	c.stopped = false
	c.LastResult = Result{}
}

// HardReset puts the CPU into the power-on state.
func (c *CPU) HardReset() {
	c.Registers.reset()
	c.Timer.reset()
	c.SoftReset()
}

// SkipBoot sets the registers to the values they have after the boot ROM
// has finished.
func (c *CPU) SkipBoot() {
	c.SetAF(0x01b0)
	c.SetBC(0x0013)
	c.SetDE(0x00d8)
	c.SetHL(0x014d)
	c.SP = 0xfffe
	c.PC = 0x0100
	c.Timer.counter = 0xabcc
}

// IsStopped returns true if the CPU is stopped.
func (c *CPU) IsStopped() bool {
	return c.stopped
}

// SetStopped sets the stopped state of the CPU.
func (c *CPU) SetStopped(stopped bool) {
	c.stopped = stopped
}

// IsHalted returns true if the CPU is waiting for an interrupt.
func (c *CPU) IsHalted() bool {
	return c.halted
}

// IME returns the state of the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// RequestInterrupt sets the interrupt's bit in the IF register.
func (c *CPU) RequestInterrupt(interrupt int) {
	c.mem.Write(AddrIF, c.mem.Read(AddrIF)|uint8(1<<interrupt))
}

func (c *CPU) pendingInterrupts() uint8 {
	return c.mem.Read(AddrIE) & c.mem.Read(AddrIF) & 0x1f
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.mem.Write(c.SP, uint8(v>>8))
	c.SP--
	c.mem.Write(c.SP, uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.mem.Read(c.SP))
	c.SP++
	hi := uint16(c.mem.Read(c.SP))
	c.SP++
	return hi<<8 | lo
}

func (c *CPU) fetch() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	return v
}

// serviceInterrupt dispatches the highest priority pending interrupt.
// returns false if there is no interrupt to service.
func (c *CPU) serviceInterrupt() bool {
	pending := c.pendingInterrupts()
	if pending == 0 {
		return false
	}

	// a pending interrupt ends a HALT even when interrupts are disabled
	c.halted = false

	if !c.ime {
		return false
	}

	for i := range 5 {
		b := uint8(1 << i)
		if pending&b == b {
			c.ime = false
			c.mem.Write(AddrIF, c.mem.Read(AddrIF)&^b)
			c.push16(c.PC)
			c.PC = 0x0040 + uint16(i)*8
			return true
		}
	}

	return false
}

// ExecuteInstruction runs one instruction and returns the number of cycles
// used. Zero is returned if the CPU is stopped.
//
// If the CPU is halted, four cycles are returned without executing an
// instruction so that the rest of the system continues to run.
func (c *CPU) ExecuteInstruction() int {
	if c.stopped {
		return 0
	}

	if c.serviceInterrupt() {
		return interruptCycles
	}

	if c.halted {
		return 4
	}

	c.instructionAddress = c.PC
	opcode := c.fetch()

	var in Instruction
	isPrefixed := opcode == 0xcb
	if isPrefixed {
		in = prefixed[c.fetch()]
	} else {
		in = unprefixed[opcode]
	}

	if in.Illegal() {
		c.stopped = true
		logger.Logf(logger.Allow, "SM83", "illegal opcode (%02x) at %04x", opcode, c.instructionAddress)
		return 0
	}

	// read the immediate data
	c.operand = 0
	n := in.Size - 1
	if isPrefixed {
		n--
	}
	for i := range n {
		c.operand |= uint16(c.fetch()) << (8 * i)
	}

	cycles := in.handler(c, in.dst, in.src)
	if in.dst != nil {
		in.dst.Postfix(c)
	}
	if in.src != nil {
		in.src.Postfix(c)
	}

	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.ime = true
		}
	}

	c.LastResult = Result{
		Address:     c.instructionAddress,
		Prefixed:    isPrefixed,
		Opcode:      opcode,
		Instruction: in,
		Operand:     c.operand,
		Cycles:      cycles,
	}
	if c.OnInstruction != nil {
		c.OnInstruction(c.LastResult)
	}

	return cycles
}
