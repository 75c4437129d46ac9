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
	"strings"
)

// Instruction is an entry in the instruction table.
type Instruction struct {
	Mnemonic string

	// the size of the instruction in bytes, including the opcode and any
	// prefix byte
	Size int

	handler handler
	dst     Operand
	src     Operand
}

// Illegal returns true if the instruction has no handler.
func (in Instruction) Illegal() bool {
	return in.handler == nil
}

func (in Instruction) String() string {
	s := strings.Builder{}
	s.WriteString(in.Mnemonic)
	if in.dst != nil {
		s.WriteString(" ")
		s.WriteString(in.dst.String())
		if in.src != nil {
			s.WriteString(",")
			s.WriteString(in.src.String())
		}
	} else if in.src != nil {
		s.WriteString(" ")
		s.WriteString(in.src.String())
	}
	return s.String()
}

// the instruction tables. the prefixed table is indexed by the byte that
// follows the 0xcb prefix
var unprefixed, prefixed = buildTables()

// Lookup returns the instruction for the opcode. if the opcode is the 0xcb
// prefix then the entry is taken from the prefixed table and indexed by the
// second byte.
func Lookup(opcode uint8, next uint8) Instruction {
	if opcode == 0xcb {
		return prefixed[next]
	}
	return unprefixed[opcode]
}

func newInstruction(mnemonic string, h handler, dst Operand, src Operand) Instruction {
	in := Instruction{
		Mnemonic: mnemonic,
		Size:     1,
		handler:  h,
		dst:      dst,
		src:      src,
	}
	if dst != nil {
		in.Size += operandBytes(dst)
	}
	if src != nil {
		in.Size += operandBytes(src)
	}
	return in
}

func buildTables() ([256]Instruction, [256]Instruction) {
	var u [256]Instruction
	var p [256]Instruction

	// the 8 bit operands in the order they are encoded in the opcode
	r := []Operand{regB, regC, regD, regE, regH, regL, indirect{mode: indHL}, regA}

	// the 16 bit register pairs in the order they are encoded in the opcode
	pairs := []Operand{regBC, regDE, regHL, regSP}

	// PUSH and POP use AF in place of SP
	rrStack := []Operand{regBC, regDE, regHL, regAF}

	conds := []Operand{condNZ, condZ, condNC, condC}

	for i := range 4 {
		base := uint8(i) << 4
		u[base|0x01] = newInstruction("LD", ld, pairs[i], d16)
		u[base|0x03] = newInstruction("INC", inc16, pairs[i], nil)
		u[base|0x09] = newInstruction("ADD", addhl, regHL, pairs[i])
		u[base|0x0b] = newInstruction("DEC", dec16, pairs[i], nil)

		u[0xc1|base] = newInstruction("POP", pop, rrStack[i], nil)
		u[0xc5|base] = newInstruction("PUSH", push, rrStack[i], nil)
	}

	for i := range 8 {
		op := uint8(i) << 3
		u[op|0x04] = newInstruction("INC", inc8, r[i], nil)
		u[op|0x05] = newInstruction("DEC", dec8, r[i], nil)
		u[op|0x06] = newInstruction("LD", ld, r[i], d8)
		u[0xc7|op] = newInstruction("RST", rst, vector(uint16(op)), nil)
	}

	for i, c := range conds {
		op := uint8(i) << 3
		u[0x20|op] = newInstruction("JR", jrcc, c, relative{})
		u[0xc0|op] = newInstruction("RET", retcc, c, nil)
		u[0xc2|op] = newInstruction("JP", jpcc, c, a16)
		u[0xc4|op] = newInstruction("CALL", callcc, c, a16)
	}

	u[0x00] = newInstruction("NOP", nop, nil, nil)
	u[0x02] = newInstruction("LD", ld, indirect{mode: indBC}, regA)
	u[0x07] = newInstruction("RLCA", rlca, nil, nil)
	u[0x08] = newInstruction("LD", ld, indirect16{}, regSP)
	u[0x0a] = newInstruction("LD", ld, regA, indirect{mode: indBC})
	u[0x0f] = newInstruction("RRCA", rrca, nil, nil)

	u[0x10] = newInstruction("STOP", stop, nil, d8)
	u[0x12] = newInstruction("LD", ld, indirect{mode: indDE}, regA)
	u[0x17] = newInstruction("RLA", rla, nil, nil)
	u[0x18] = newInstruction("JR", jr, relative{}, nil)
	u[0x1a] = newInstruction("LD", ld, regA, indirect{mode: indDE})
	u[0x1f] = newInstruction("RRA", rra, nil, nil)

	u[0x22] = newInstruction("LD", ld, indirect{mode: indHLInc}, regA)
	u[0x27] = newInstruction("DAA", daa, nil, nil)
	u[0x2a] = newInstruction("LD", ld, regA, indirect{mode: indHLInc})
	u[0x2f] = newInstruction("CPL", cpl, nil, nil)

	u[0x32] = newInstruction("LD", ld, indirect{mode: indHLDec}, regA)
	u[0x37] = newInstruction("SCF", scf, nil, nil)
	u[0x3a] = newInstruction("LD", ld, regA, indirect{mode: indHLDec})
	u[0x3f] = newInstruction("CCF", ccf, nil, nil)

	// 8 bit register to register loads
	for i := range 64 {
		op := 0x40 | uint8(i)
		if op == 0x76 {
			u[op] = newInstruction("HALT", halt, nil, nil)
			continue
		}
		u[op] = newInstruction("LD", ld, r[i>>3], r[i&0x07])
	}

	// 8 bit arithmetic and logic with the accumulator
	alu := []struct {
		mnemonic string
		h        handler
	}{
		{"ADD", add}, {"ADC", adc}, {"SUB", sub}, {"SBC", sbc},
		{"AND", and}, {"XOR", xor}, {"OR", or}, {"CP", cp},
	}
	for i, a := range alu {
		for j := range 8 {
			u[0x80|uint8(i)<<3|uint8(j)] = newInstruction(a.mnemonic, a.h, regA, r[j])
		}
		u[0xc6|uint8(i)<<3] = newInstruction(a.mnemonic, a.h, regA, d8)
	}

	u[0xc3] = newInstruction("JP", jp, a16, nil)
	u[0xc9] = newInstruction("RET", ret, nil, nil)
	u[0xcb] = Instruction{Mnemonic: "PREFIX CB", Size: 2}
	u[0xcd] = newInstruction("CALL", call, a16, nil)

	u[0xd9] = newInstruction("RETI", reti, nil, nil)

	u[0xe0] = newInstruction("LDH", ld, indirect{mode: indA8}, regA)
	u[0xe2] = newInstruction("LD", ld, indirect{mode: indC}, regA)
	u[0xe8] = newInstruction("ADD", addsp, regSP, r8)
	u[0xe9] = newInstruction("JP", jphl, regHL, nil)
	u[0xea] = newInstruction("LD", ld, indirect{mode: indA16}, regA)

	u[0xf0] = newInstruction("LDH", ld, regA, indirect{mode: indA8})
	u[0xf2] = newInstruction("LD", ld, regA, indirect{mode: indC})
	u[0xf3] = newInstruction("DI", di, nil, nil)
	u[0xf8] = newInstruction("LD", ldhl, regHL, spR8)
	u[0xf9] = newInstruction("LD", ld, regSP, regHL)
	u[0xfa] = newInstruction("LD", ld, regA, indirect{mode: indA16})
	u[0xfb] = newInstruction("EI", ei, nil, nil)

	// illegal opcodes have no handler
	for _, op := range []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd} {
		u[op] = Instruction{Mnemonic: "ILLEGAL", Size: 1}
	}

	// the prefixed table is entirely regular
	shifts := []struct {
		mnemonic string
		h        handler
	}{
		{"RLC", rlc}, {"RRC", rrc}, {"RL", rl}, {"RR", rr},
		{"SLA", sla}, {"SRA", sra}, {"SWAP", swap}, {"SRL", srl},
	}
	for i, s := range shifts {
		for j := range 8 {
			p[uint8(i)<<3|uint8(j)] = newInstruction(s.mnemonic, s.h, r[j], nil)
		}
	}
	for b := range 8 {
		for j := range 8 {
			op := uint8(b)<<3 | uint8(j)
			p[0x40|op] = newInstruction("BIT", bit, bitNumber(b), r[j])
			p[0x80|op] = newInstruction("RES", res, bitNumber(b), r[j])
			p[0xc0|op] = newInstruction("SET", set, bitNumber(b), r[j])
		}
	}
	for i := range p {
		p[i].Size++
	}

	return u, p
}
