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

import "fmt"

// Operand is the source or destination of an instruction.
type Operand interface {
	// Load the value of the operand. 8 bit operands return the value in the
	// lower byte.
	Load(c *CPU) uint16

	// Store the value to the operand. 8 bit operands ignore the upper byte.
	Store(c *CPU, v uint16)

	// Postfix is called once the handler has completed.
	Postfix(c *CPU)

	String() string
}

// operands with no postfix step embed noPostfix
type noPostfix struct{}

func (noPostfix) Postfix(_ *CPU) {}

// operands that can not be written to embed readOnly
type readOnly struct{}

func (readOnly) Store(_ *CPU, _ uint16) {}

type reg8 int

const (
	regA reg8 = iota
	regB
	regC
	regD
	regE
	regH
	regL
)

func (r reg8) Load(c *CPU) uint16 {
	switch r {
	case regA:
		return uint16(c.A)
	case regB:
		return uint16(c.B)
	case regC:
		return uint16(c.C)
	case regD:
		return uint16(c.D)
	case regE:
		return uint16(c.E)
	case regH:
		return uint16(c.H)
	case regL:
		return uint16(c.L)
	}
	return 0
}

func (r reg8) Store(c *CPU, v uint16) {
	switch r {
	case regA:
		c.A = uint8(v)
	case regB:
		c.B = uint8(v)
	case regC:
		c.C = uint8(v)
	case regD:
		c.D = uint8(v)
	case regE:
		c.E = uint8(v)
	case regH:
		c.H = uint8(v)
	case regL:
		c.L = uint8(v)
	}
}

func (r reg8) Postfix(_ *CPU) {}

func (r reg8) String() string {
	return [...]string{"A", "B", "C", "D", "E", "H", "L"}[r]
}

type reg16 int

const (
	regAF reg16 = iota
	regBC
	regDE
	regHL
	regSP
)

func (r reg16) Load(c *CPU) uint16 {
	switch r {
	case regAF:
		return c.AF()
	case regBC:
		return c.BC()
	case regDE:
		return c.DE()
	case regHL:
		return c.HL()
	case regSP:
		return c.SP
	}
	return 0
}

func (r reg16) Store(c *CPU, v uint16) {
	switch r {
	case regAF:
		c.SetAF(v)
	case regBC:
		c.SetBC(v)
	case regDE:
		c.SetDE(v)
	case regHL:
		c.SetHL(v)
	case regSP:
		c.SP = v
	}
}

func (r reg16) Postfix(_ *CPU) {}

func (r reg16) String() string {
	return [...]string{"AF", "BC", "DE", "HL", "SP"}[r]
}

// immediate data follows the opcode in the program
type immediate struct {
	noPostfix
	readOnly
	label string
	bytes int
}

var (
	d8  = immediate{label: "d8", bytes: 1}
	d16 = immediate{label: "d16", bytes: 2}
	r8  = immediate{label: "r8", bytes: 1}
	a16 = immediate{label: "a16", bytes: 2}

	// signed offset of LD HL,SP+r8
	spR8 = immediate{label: "SP+r8", bytes: 1}
)

func (o immediate) Load(c *CPU) uint16 {
	return c.operand
}

func (o immediate) String() string {
	return o.label
}

type indirectMode int

const (
	indBC indirectMode = iota
	indDE
	indHL
	indHLInc
	indHLDec
	indC
	indA8
	indA16
)

// indirect is an 8 bit memory operand
type indirect struct {
	mode indirectMode
}

func (o indirect) address(c *CPU) uint16 {
	switch o.mode {
	case indBC:
		return c.BC()
	case indDE:
		return c.DE()
	case indHL, indHLInc, indHLDec:
		return c.HL()
	case indC:
		return 0xff00 | uint16(c.C)
	case indA8:
		return 0xff00 | c.operand&0xff
	case indA16:
		return c.operand
	}
	return 0
}

func (o indirect) Load(c *CPU) uint16 {
	return uint16(c.mem.Read(o.address(c)))
}

func (o indirect) Store(c *CPU, v uint16) {
	c.mem.Write(o.address(c), uint8(v))
}

func (o indirect) Postfix(c *CPU) {
	switch o.mode {
	case indHLInc:
		c.SetHL(c.HL() + 1)
	case indHLDec:
		c.SetHL(c.HL() - 1)
	}
}

func (o indirect) String() string {
	return [...]string{"(BC)", "(DE)", "(HL)", "(HL+)", "(HL-)", "(C)", "(a8)", "(a16)"}[o.mode]
}

// indirect16 is the 16 bit form of the (a16) operand. it is only used to
// store the stack pointer
type indirect16 struct {
	noPostfix
}

func (o indirect16) Load(c *CPU) uint16 {
	lo := uint16(c.mem.Read(c.operand))
	hi := uint16(c.mem.Read(c.operand + 1))
	return hi<<8 | lo
}

func (o indirect16) Store(c *CPU, v uint16) {
	c.mem.Write(c.operand, uint8(v))
	c.mem.Write(c.operand+1, uint8(v>>8))
}

func (o indirect16) String() string {
	return "(a16)"
}

// relative is the destination of a JR instruction. the address is relative
// to the address of the next instruction
type relative struct {
	noPostfix
	readOnly
}

func (o relative) Load(c *CPU) uint16 {
	return c.PC + uint16(int8(c.operand))
}

func (o relative) String() string {
	return "r8"
}

// condition for conditional flow instructions. loads as 1 if the condition
// is met
type condition struct {
	noPostfix
	readOnly
	flag  uint8
	state bool
	label string
}

var (
	condNZ = condition{flag: FlagZ, state: false, label: "NZ"}
	condZ  = condition{flag: FlagZ, state: true, label: "Z"}
	condNC = condition{flag: FlagC, state: false, label: "NC"}
	condC  = condition{flag: FlagC, state: true, label: "C"}
)

func (o condition) Load(c *CPU) uint16 {
	if c.Flag(o.flag) == o.state {
		return 1
	}
	return 0
}

func (o condition) String() string {
	return o.label
}

// vector is the target address of a RST instruction
type vector uint16

func (o vector) Load(_ *CPU) uint16 {
	return uint16(o)
}

func (o vector) Store(_ *CPU, _ uint16) {}

func (o vector) Postfix(_ *CPU) {}

func (o vector) String() string {
	return fmt.Sprintf("%02XH", uint16(o))
}

// bitNumber is the bit operand of the BIT, RES and SET instructions
type bitNumber uint8

func (o bitNumber) Load(_ *CPU) uint16 {
	return uint16(o)
}

func (o bitNumber) Store(_ *CPU, _ uint16) {}

func (o bitNumber) Postfix(_ *CPU) {}

func (o bitNumber) String() string {
	return fmt.Sprintf("%d", uint8(o))
}

// operandBytes returns the number of bytes the operand adds to the size of
// the instruction
func operandBytes(o Operand) int {
	switch o := o.(type) {
	case immediate:
		return o.bytes
	case relative:
		return 1
	case indirect:
		switch o.mode {
		case indA8:
			return 1
		case indA16:
			return 2
		}
	case indirect16:
		return 2
	}
	return 0
}

// operandCycles returns the number of cycles required to fetch the operand
// from the program and to access memory once
func operandCycles(o Operand) int {
	switch o.(type) {
	case immediate, relative:
		return operandBytes(o) * 4
	case indirect:
		return operandBytes(o)*4 + 4
	case indirect16:
		return operandBytes(o)*4 + 8
	}
	return 0
}
