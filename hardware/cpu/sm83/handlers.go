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

// handler implements the semantics of an instruction. the number of cycles
// consumed is returned.
type handler func(c *CPU, dst Operand, src Operand) int

func nop(_ *CPU, _ Operand, _ Operand) int {
	return 4
}

func stop(c *CPU, _ Operand, _ Operand) int {
	c.stopped = true
	return 4
}

func halt(c *CPU, _ Operand, _ Operand) int {
	// the CPU only halts if there is no enabled interrupt pending
	if c.pendingInterrupts() == 0 {
		c.halted = true
	}
	return 4
}

func ld(c *CPU, dst Operand, src Operand) int {
	dst.Store(c, src.Load(c))
	cycles := 4 + operandCycles(dst) + operandCycles(src)

	// LD SP,HL has an internal delay
	if _, ok := dst.(reg16); ok {
		if _, ok := src.(reg16); ok {
			cycles += 4
		}
	}
	return cycles
}

// ldhl is LD HL,SP+r8
func ldhl(c *CPU, _ Operand, src Operand) int {
	c.SetHL(c.addSP(src.Load(c)))
	return 12
}

func push(c *CPU, dst Operand, _ Operand) int {
	c.push16(dst.Load(c))
	return 16
}

func pop(c *CPU, dst Operand, _ Operand) int {
	dst.Store(c, c.pop16())
	return 12
}

func inc8(c *CPU, dst Operand, _ Operand) int {
	v := uint8(dst.Load(c))
	r := v + 1
	dst.Store(c, uint16(r))
	c.SetFlag(FlagZ, r == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, v&0x0f == 0x0f)
	return 4 + operandCycles(dst)*2
}

func dec8(c *CPU, dst Operand, _ Operand) int {
	v := uint8(dst.Load(c))
	r := v - 1
	dst.Store(c, uint16(r))
	c.SetFlag(FlagZ, r == 0)
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, v&0x0f == 0x00)
	return 4 + operandCycles(dst)*2
}

func inc16(c *CPU, dst Operand, _ Operand) int {
	dst.Store(c, dst.Load(c)+1)
	return 8
}

func dec16(c *CPU, dst Operand, _ Operand) int {
	dst.Store(c, dst.Load(c)-1)
	return 8
}

func (c *CPU) add8(v uint8, carry bool) {
	var ci uint16
	if carry && c.Flag(FlagC) {
		ci = 1
	}
	a := c.A
	r := uint16(a) + uint16(v) + ci
	c.A = uint8(r)
	c.setFlags(c.A == 0, false, uint16(a&0x0f)+uint16(v&0x0f)+ci > 0x0f, r > 0xff)
}

func (c *CPU) sub8(v uint8, carry bool) uint8 {
	var ci int
	if carry && c.Flag(FlagC) {
		ci = 1
	}
	a := c.A
	r := int(a) - int(v) - ci
	c.setFlags(uint8(r) == 0, true, int(a&0x0f)-int(v&0x0f)-ci < 0, r < 0)
	return uint8(r)
}

func add(c *CPU, _ Operand, src Operand) int {
	c.add8(uint8(src.Load(c)), false)
	return 4 + operandCycles(src)
}

func adc(c *CPU, _ Operand, src Operand) int {
	c.add8(uint8(src.Load(c)), true)
	return 4 + operandCycles(src)
}

func sub(c *CPU, _ Operand, src Operand) int {
	c.A = c.sub8(uint8(src.Load(c)), false)
	return 4 + operandCycles(src)
}

func sbc(c *CPU, _ Operand, src Operand) int {
	c.A = c.sub8(uint8(src.Load(c)), true)
	return 4 + operandCycles(src)
}

func cp(c *CPU, _ Operand, src Operand) int {
	c.sub8(uint8(src.Load(c)), false)
	return 4 + operandCycles(src)
}

func and(c *CPU, _ Operand, src Operand) int {
	c.A &= uint8(src.Load(c))
	c.setFlags(c.A == 0, false, true, false)
	return 4 + operandCycles(src)
}

func xor(c *CPU, _ Operand, src Operand) int {
	c.A ^= uint8(src.Load(c))
	c.setFlags(c.A == 0, false, false, false)
	return 4 + operandCycles(src)
}

func or(c *CPU, _ Operand, src Operand) int {
	c.A |= uint8(src.Load(c))
	c.setFlags(c.A == 0, false, false, false)
	return 4 + operandCycles(src)
}

// addhl is ADD HL,rr
func addhl(c *CPU, _ Operand, src Operand) int {
	hl := c.HL()
	v := src.Load(c)
	r := uint32(hl) + uint32(v)
	c.SetHL(uint16(r))
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, (hl&0x0fff)+(v&0x0fff) > 0x0fff)
	c.SetFlag(FlagC, r > 0xffff)
	return 8
}

// addSP adds the signed operand to SP and returns the result. the flags are
// set from the unsigned addition of the low bytes
func (c *CPU) addSP(operand uint16) uint16 {
	sp := c.SP
	e := operand & 0xff
	c.setFlags(false, false, (sp&0x0f)+(e&0x0f) > 0x0f, (sp&0xff)+e > 0xff)
	return sp + uint16(int8(e))
}

func addsp(c *CPU, _ Operand, src Operand) int {
	c.SP = c.addSP(src.Load(c))
	return 16
}

func jr(c *CPU, dst Operand, _ Operand) int {
	target := dst.Load(c)

	// a jump to itself with interrupts disabled can never end
	if target == c.instructionAddress && !c.ime {
		c.stopped = true
	}

	c.PC = target
	return 12
}

func jrcc(c *CPU, dst Operand, src Operand) int {
	if dst.Load(c) == 0 {
		return 8
	}
	c.PC = src.Load(c)
	return 12
}

func jp(c *CPU, dst Operand, _ Operand) int {
	c.PC = dst.Load(c)
	return 16
}

func jpcc(c *CPU, dst Operand, src Operand) int {
	if dst.Load(c) == 0 {
		return 12
	}
	c.PC = src.Load(c)
	return 16
}

// jphl is JP (HL). the name of the instruction is misleading because the
// jump is to the value of HL and not to the memory pointed to by HL
func jphl(c *CPU, _ Operand, _ Operand) int {
	c.PC = c.HL()
	return 4
}

func call(c *CPU, dst Operand, _ Operand) int {
	c.push16(c.PC)
	c.PC = dst.Load(c)
	return 24
}

func callcc(c *CPU, dst Operand, src Operand) int {
	if dst.Load(c) == 0 {
		return 12
	}
	c.push16(c.PC)
	c.PC = src.Load(c)
	return 24
}

func ret(c *CPU, _ Operand, _ Operand) int {
	c.PC = c.pop16()
	return 16
}

func retcc(c *CPU, dst Operand, _ Operand) int {
	if dst.Load(c) == 0 {
		return 8
	}
	c.PC = c.pop16()
	return 20
}

func reti(c *CPU, _ Operand, _ Operand) int {
	c.PC = c.pop16()
	c.ime = true
	return 16
}

func rst(c *CPU, dst Operand, _ Operand) int {
	c.push16(c.PC)
	c.PC = dst.Load(c)
	return 16
}

func di(c *CPU, _ Operand, _ Operand) int {
	c.ime = false
	c.eiDelay = 0
	return 4
}

// ei takes effect after the following instruction
func ei(c *CPU, _ Operand, _ Operand) int {
	c.eiDelay = 2
	return 4
}

func rlca(c *CPU, _ Operand, _ Operand) int {
	carry := c.A >> 7
	c.A = c.A<<1 | carry
	c.setFlags(false, false, false, carry == 1)
	return 4
}

func rla(c *CPU, _ Operand, _ Operand) int {
	carry := c.A >> 7
	c.A <<= 1
	if c.Flag(FlagC) {
		c.A |= 0x01
	}
	c.setFlags(false, false, false, carry == 1)
	return 4
}

func rrca(c *CPU, _ Operand, _ Operand) int {
	carry := c.A & 0x01
	c.A = c.A>>1 | carry<<7
	c.setFlags(false, false, false, carry == 1)
	return 4
}

func rra(c *CPU, _ Operand, _ Operand) int {
	carry := c.A & 0x01
	c.A >>= 1
	if c.Flag(FlagC) {
		c.A |= 0x80
	}
	c.setFlags(false, false, false, carry == 1)
	return 4
}

func daa(c *CPU, _ Operand, _ Operand) int {
	a := c.A
	carry := c.Flag(FlagC)

	if !c.Flag(FlagN) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.Flag(FlagH) || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.Flag(FlagH) {
			a -= 0x06
		}
	}

	c.A = a
	c.SetFlag(FlagZ, a == 0)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, carry)
	return 4
}

func cpl(c *CPU, _ Operand, _ Operand) int {
	c.A = ^c.A
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, true)
	return 4
}

func scf(c *CPU, _ Operand, _ Operand) int {
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, true)
	return 4
}

func ccf(c *CPU, _ Operand, _ Operand) int {
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, !c.Flag(FlagC))
	return 4
}

// cbShift returns a handler for the rotate and shift instructions of the CB
// table. the function returns the result and the carry
func cbShift(fn func(v uint8, carry bool) (uint8, bool)) handler {
	return func(c *CPU, dst Operand, _ Operand) int {
		r, carry := fn(uint8(dst.Load(c)), c.Flag(FlagC))
		dst.Store(c, uint16(r))
		c.setFlags(r == 0, false, false, carry)
		return 8 + operandCycles(dst)*2
	}
}

var (
	rlc = cbShift(func(v uint8, _ bool) (uint8, bool) {
		return v<<1 | v>>7, v&0x80 == 0x80
	})
	rrc = cbShift(func(v uint8, _ bool) (uint8, bool) {
		return v>>1 | v<<7, v&0x01 == 0x01
	})
	rl = cbShift(func(v uint8, carry bool) (uint8, bool) {
		r := v << 1
		if carry {
			r |= 0x01
		}
		return r, v&0x80 == 0x80
	})
	rr = cbShift(func(v uint8, carry bool) (uint8, bool) {
		r := v >> 1
		if carry {
			r |= 0x80
		}
		return r, v&0x01 == 0x01
	})
	sla = cbShift(func(v uint8, _ bool) (uint8, bool) {
		return v << 1, v&0x80 == 0x80
	})
	sra = cbShift(func(v uint8, _ bool) (uint8, bool) {
		return v>>1 | v&0x80, v&0x01 == 0x01
	})
	swap = cbShift(func(v uint8, _ bool) (uint8, bool) {
		return v<<4 | v>>4, false
	})
	srl = cbShift(func(v uint8, _ bool) (uint8, bool) {
		return v >> 1, v&0x01 == 0x01
	})
)

func bit(c *CPU, dst Operand, src Operand) int {
	b := uint8(1) << dst.Load(c)
	c.SetFlag(FlagZ, uint8(src.Load(c))&b == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, true)
	return 8 + operandCycles(src)
}

func res(c *CPU, dst Operand, src Operand) int {
	b := uint8(1) << dst.Load(c)
	src.Store(c, uint16(uint8(src.Load(c))&^b))
	return 8 + operandCycles(src)*2
}

func set(c *CPU, dst Operand, src Operand) int {
	b := uint8(1) << dst.Load(c)
	src.Store(c, uint16(uint8(src.Load(c))|b))
	return 8 + operandCycles(src)*2
}
