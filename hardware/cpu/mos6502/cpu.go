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

package mos6502

import (
	"fmt"

	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502/execution"
	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502/instructions"
	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502/registers"
	"github.com/whiskers-emu/whiskers/logger"
)

// Memory is the interface required by the CPU to access the address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Vectors used by the CPU.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// number of cycles consumed by interrupt servicing
const interruptCycles = 7

// CPU implements the 6502. Register logic is implemented by the Register
// type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem          Memory
	instructions []*instructions.Definition

	// LastResult is the result of the most recently executed instruction
	LastResult execution.Result

	// the cpu has encountered a KIL instruction or an opcode it can not
	// execute. requires a reset
	Killed bool

	// stopped by the host
	stopped bool

	// the next call to ExecuteInstruction() will load the PC from the reset
	// vector before doing anything else
	pendingReset bool

	// interrupt requests. serviced at the start of the next instruction
	nmi bool
	irq bool

	// OnInstruction is called after every instruction if it is not nil
	OnInstruction func(execution.Result)
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is hard reset before returning.
func NewCPU(mem Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		instructions: instructions.GetDefinitions(),
	}
	mc.HardReset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// HardReset puts the CPU into the power-on state. The PC is loaded from the
// reset vector on the next call to ExecuteInstruction().
func (mc *CPU) HardReset() {
	mc.LastResult.Reset()
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Killed = false
	mc.stopped = false
	mc.nmi = false
	mc.irq = false
	mc.pendingReset = true
}

// SoftReset emulates the reset line. The A, X and Y registers are preserved
// and the stack pointer is moved as though three values had been pushed.
func (mc *CPU) SoftReset() {
	mc.LastResult.Reset()
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.SP.Load(mc.SP.Value() - 3)
	mc.Killed = false
	mc.stopped = false
	mc.nmi = false
	mc.irq = false
	mc.pendingReset = true
}

// IsStopped returns true if the CPU has been stopped by the host or killed by
// the program.
func (mc *CPU) IsStopped() bool {
	return mc.stopped || mc.Killed
}

// SetStopped sets the stopped state of the CPU.
func (mc *CPU) SetStopped(stopped bool) {
	mc.stopped = stopped
}

// NMI requests a non-maskable interrupt.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// IRQ requests an interrupt. The request is dropped if interrupts are
// disabled when it is serviced.
func (mc *CPU) IRQ() {
	mc.irq = true
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := uint16(mc.mem.Read(address))
	hi := uint16(mc.mem.Read(address + 1))
	return hi<<8 | lo
}

// read16ZeroPage reads a pointer from the zero page. the high byte of the
// pointer wraps around to the beginning of the zero page.
func (mc *CPU) read16ZeroPage(address uint8) uint16 {
	lo := uint16(mc.mem.Read(uint16(address)))
	hi := uint16(mc.mem.Read(uint16(address + 1)))
	return hi<<8 | lo
}

func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

func (mc *CPU) read16BitPC() uint16 {
	v := mc.read16(mc.PC.Address())
	mc.PC.Add(2)
	return v
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(0x0100|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(0x0100 | mc.SP.Address())
}

func (mc *CPU) push16(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

func (mc *CPU) pull16() uint16 {
	lo := uint16(mc.pull())
	hi := uint16(mc.pull())
	return hi<<8 | lo
}

// interrupt pushes the PC and status register and loads the PC from the
// vector
func (mc *CPU) interrupt(vector uint16, brk bool) {
	mc.push16(mc.PC.Address())
	p := mc.Status.Value()
	if brk {
		p |= 0x10
	} else {
		p &^= 0x10
	}
	mc.push(p)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))
}

func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.Status.Carry = r.Value() >= value
	mc.setZN(r.Value() - value)
}

func (mc *CPU) adc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) sbc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

// ExecuteInstruction steps CPU forward one instruction and returns the
// number of cycles used. The basic process when executing an instruction is
// this:
//
//  1. service any pending reset or interrupt
//  2. read opcode and look up instruction definition
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// Zero is returned if the CPU is stopped or killed.
func (mc *CPU) ExecuteInstruction() int {
	if mc.Killed || mc.stopped {
		return 0
	}

	if mc.pendingReset {
		mc.pendingReset = false
		mc.PC.Load(mc.read16(ResetVector))
	}

	if mc.nmi {
		mc.nmi = false
		mc.irq = false
		mc.interrupt(NMIVector, false)
		return interruptCycles
	}

	if mc.irq {
		mc.irq = false
		if !mc.Status.InterruptDisable {
			mc.interrupt(IRQVector, false)
			return interruptCycles
		}
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC()
	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = defn.Bytes

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// all other modes where the effect requires it
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// accumulator instructions use the implied addressing mode

	case instructions.Immediate:
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = address

	case instructions.Absolute:
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command
		indirectAddress := mc.read16BitPC()
		mc.LastResult.InstructionData = indirectAddress

		// the high byte of the address is read from the same page as the low
		// byte. when the indirect address is on a page boundary the high byte
		// comes from the beginning of the page
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = "indirect addressing bug (JMP bug)"
		}
		lo := uint16(mc.mem.Read(indirectAddress))
		hi := uint16(mc.mem.Read(indirectAddress&0xff00 | (indirectAddress+1)&0x00ff))
		address = hi<<8 | lo

	case instructions.IndexedIndirect:
		// (zp,X) addressing. the indexed pointer wraps around the zero page
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = mc.read16ZeroPage(zp + mc.X.Value())

	case instructions.IndirectIndexed:
		// (zp),Y addressing
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		base := mc.read16ZeroPage(zp)
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		base := mc.read16BitPC()
		mc.LastResult.InstructionData = base
		address = base + mc.X.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		base := mc.read16BitPC()
		mc.LastResult.InstructionData = base
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.Y.Value())
	}

	mc.LastResult.Cycles = defn.Cycles
	if defn.PageSensitive && mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}

	// read value from memory if the instruction requires it. accumulator
	// instructions operate on the A register and never read memory
	if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Immediate {
		switch defn.Effect {
		case instructions.Read, instructions.RMW:
			value = mc.mem.Read(address)
		}
	}

	// accumulator mode for the shift and rotate instructions
	accumulator := defn.AddressingMode == instructions.Implied

	switch defn.Operator {
	case instructions.Nop, instructions.Nopu:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		mc.push(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setZN(mc.A.Value())
	case instructions.Php:
		mc.push(mc.Status.Value() | 0x10)
	case instructions.Plp:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(value)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(value)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(value)

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())
	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())
	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setZN(mc.Y.Value())

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		r := registers.NewRegister(value, "")
		if accumulator {
			r = mc.A
		}
		switch defn.Operator {
		case instructions.Asl:
			mc.Status.Carry = r.ASL()
		case instructions.Lsr:
			mc.Status.Carry = r.LSR()
		case instructions.Rol:
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		case instructions.Ror:
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		}
		mc.setZN(r.Value())
		if accumulator {
			mc.A = r
		} else {
			mc.mem.Write(address, r.Value())
		}

	case instructions.Inc:
		value++
		mc.setZN(value)
		mc.mem.Write(address, value)
	case instructions.Dec:
		value--
		mc.setZN(value)
		mc.mem.Write(address, value)

	case instructions.Adc:
		mc.adc(value)
	case instructions.Sbc, instructions.Sbcu:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)
	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)
	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction. RTS adds one to the pulled address
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pull16() + 1)

	case instructions.Brk:
		// BRK skips the byte following the opcode
		mc.PC.Add(1)
		mc.interrupt(IRQVector, true)

	case instructions.Rti:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false
		mc.PC.Load(mc.pull16())

	// undocumented instructions
	case instructions.Kil:
		mc.Killed = true
		logger.Logf(logger.Allow, "CPU", "KIL instruction (%02x) at %04x", opcode, mc.LastResult.Address)

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.Sax:
		mc.mem.Write(address, mc.A.Value()&mc.X.Value())

	case instructions.Dcp:
		value--
		mc.mem.Write(address, value)
		mc.compare(mc.A, value)

	case instructions.Isc:
		value++
		mc.mem.Write(address, value)
		mc.sbc(value)

	case instructions.Slo:
		mc.Status.Carry = value&0x80 == 0x80
		value <<= 1
		mc.mem.Write(address, value)
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())

	case instructions.Rla:
		r := registers.NewRegister(value, "")
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.mem.Write(address, r.Value())
		mc.A.AND(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.Sre:
		mc.Status.Carry = value&0x01 == 0x01
		value >>= 1
		mc.mem.Write(address, value)
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())

	case instructions.Rra:
		r := registers.NewRegister(value, "")
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.mem.Write(address, r.Value())
		mc.adc(r.Value())

	case instructions.Anc:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.A.Value()&0x40 == 0x40
		mc.Status.Overflow = (mc.A.Value()>>6)&0x01 != (mc.A.Value()>>5)&0x01

	case instructions.Sbx:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= value
		mc.X.Load(ax - value)
		mc.setZN(mc.X.Value())

	case instructions.Xaa:
		// unstable. the magic constant is the most commonly observed value
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.setZN(mc.A.Value())

	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setZN(v)

	case instructions.Ahx:
		mc.mem.Write(address, mc.A.Value()&mc.X.Value()&(uint8(address>>8)+1))
	case instructions.Shx:
		mc.mem.Write(address, mc.X.Value()&(uint8(address>>8)+1))
	case instructions.Shy:
		mc.mem.Write(address, mc.Y.Value()&(uint8(address>>8)+1))
	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.mem.Write(address, mc.SP.Value()&(uint8(address>>8)+1))

	default:
		mc.Killed = true
		logger.Logf(logger.Allow, "CPU", "unimplemented instruction (%s) at %04x", defn, mc.LastResult.Address)
	}

	if mc.OnInstruction != nil {
		mc.OnInstruction(mc.LastResult)
	}

	return mc.LastResult.Cycles
}

// branch to the PC relative address if flag is true. the address is the
// unsigned 8 bit offset as read from the program
func (mc *CPU) branch(flag bool, offset uint16) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	mc.LastResult.Cycles++

	// sign extend the offset
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	if mc.PC.Add(offset) {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}
