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

package instructions

// the definitions table is indexed by opcode.
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Operator: Brk, Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x01, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x02, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x03, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW},
	{OpCode: 0x04, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x05, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x06, Mnemonic: "ASL", Operator: Asl, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x07, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x08, Mnemonic: "PHP", Operator: Php, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	{OpCode: 0x09, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x0a, Mnemonic: "ASL", Operator: Asl, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW},
	{OpCode: 0x0b, Mnemonic: "ANC", Operator: Anc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x0c, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x0d, Mnemonic: "ORA", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x0e, Mnemonic: "ASL", Operator: Asl, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x0f, Mnemonic: "SLO", Operator: Slo, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x10, Mnemonic: "BPL", Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0x11, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x12, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x13, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW},
	{OpCode: 0x14, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x15, Mnemonic: "ORA", Operator: Ora, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x16, Mnemonic: "ASL", Operator: Asl, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x17, Mnemonic: "SLO", Operator: Slo, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x18, Mnemonic: "CLC", Operator: Clc, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x19, Mnemonic: "ORA", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x1a, Mnemonic: "NOP", Operator: Nopu, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x1b, Mnemonic: "SLO", Operator: Slo, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW},
	{OpCode: 0x1c, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x1d, Mnemonic: "ORA", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x1e, Mnemonic: "ASL", Operator: Asl, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x1f, Mnemonic: "SLO", Operator: Slo, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x20, Mnemonic: "JSR", Operator: Jsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine},
	{OpCode: 0x21, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x22, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x23, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW},
	{OpCode: 0x24, Mnemonic: "BIT", Operator: Bit, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x25, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x26, Mnemonic: "ROL", Operator: Rol, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x27, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x28, Mnemonic: "PLP", Operator: Plp, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x29, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x2a, Mnemonic: "ROL", Operator: Rol, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW},
	{OpCode: 0x2b, Mnemonic: "ANC", Operator: Anc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x2c, Mnemonic: "BIT", Operator: Bit, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x2d, Mnemonic: "AND", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x2e, Mnemonic: "ROL", Operator: Rol, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x2f, Mnemonic: "RLA", Operator: Rla, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x30, Mnemonic: "BMI", Operator: Bmi, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0x31, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x32, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x33, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW},
	{OpCode: 0x34, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x35, Mnemonic: "AND", Operator: And, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x36, Mnemonic: "ROL", Operator: Rol, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x37, Mnemonic: "RLA", Operator: Rla, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x38, Mnemonic: "SEC", Operator: Sec, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x39, Mnemonic: "AND", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x3a, Mnemonic: "NOP", Operator: Nopu, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x3b, Mnemonic: "RLA", Operator: Rla, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW},
	{OpCode: 0x3c, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x3d, Mnemonic: "AND", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x3e, Mnemonic: "ROL", Operator: Rol, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x3f, Mnemonic: "RLA", Operator: Rla, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x40, Mnemonic: "RTI", Operator: Rti, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x41, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x42, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x43, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW},
	{OpCode: 0x44, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x45, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x46, Mnemonic: "LSR", Operator: Lsr, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x47, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x48, Mnemonic: "PHA", Operator: Pha, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	{OpCode: 0x49, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x4a, Mnemonic: "LSR", Operator: Lsr, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW},
	{OpCode: 0x4b, Mnemonic: "ALR", Operator: Alr, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x4c, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow},
	{OpCode: 0x4d, Mnemonic: "EOR", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x4e, Mnemonic: "LSR", Operator: Lsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x4f, Mnemonic: "SRE", Operator: Sre, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x50, Mnemonic: "BVC", Operator: Bvc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0x51, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x52, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x53, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW},
	{OpCode: 0x54, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x55, Mnemonic: "EOR", Operator: Eor, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x56, Mnemonic: "LSR", Operator: Lsr, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x57, Mnemonic: "SRE", Operator: Sre, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x58, Mnemonic: "CLI", Operator: Cli, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x59, Mnemonic: "EOR", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x5a, Mnemonic: "NOP", Operator: Nopu, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x5b, Mnemonic: "SRE", Operator: Sre, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW},
	{OpCode: 0x5c, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x5d, Mnemonic: "EOR", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x5e, Mnemonic: "LSR", Operator: Lsr, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x5f, Mnemonic: "SRE", Operator: Sre, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x60, Mnemonic: "RTS", Operator: Rts, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
	{OpCode: 0x61, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x62, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x63, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW},
	{OpCode: 0x64, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x65, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x66, Mnemonic: "ROR", Operator: Ror, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x67, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x68, Mnemonic: "PLA", Operator: Pla, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x69, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x6a, Mnemonic: "ROR", Operator: Ror, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: RMW},
	{OpCode: 0x6b, Mnemonic: "ARR", Operator: Arr, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x6c, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow},
	{OpCode: 0x6d, Mnemonic: "ADC", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x6e, Mnemonic: "ROR", Operator: Ror, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x6f, Mnemonic: "RRA", Operator: Rra, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x70, Mnemonic: "BVS", Operator: Bvs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0x71, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x72, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x73, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW},
	{OpCode: 0x74, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x75, Mnemonic: "ADC", Operator: Adc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x76, Mnemonic: "ROR", Operator: Ror, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x77, Mnemonic: "RRA", Operator: Rra, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x78, Mnemonic: "SEI", Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x79, Mnemonic: "ADC", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x7a, Mnemonic: "NOP", Operator: Nopu, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x7b, Mnemonic: "RRA", Operator: Rra, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW},
	{OpCode: 0x7c, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x7d, Mnemonic: "ADC", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x7e, Mnemonic: "ROR", Operator: Ror, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x7f, Mnemonic: "RRA", Operator: Rra, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x80, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x81, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
	{OpCode: 0x82, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x83, Mnemonic: "SAX", Operator: Sax, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
	{OpCode: 0x84, Mnemonic: "STY", Operator: Sty, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x85, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x86, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x87, Mnemonic: "SAX", Operator: Sax, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x88, Mnemonic: "DEY", Operator: Dey, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x89, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x8a, Mnemonic: "TXA", Operator: Txa, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x8b, Mnemonic: "XAA", Operator: Xaa, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x8c, Mnemonic: "STY", Operator: Sty, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8d, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8e, Mnemonic: "STX", Operator: Stx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8f, Mnemonic: "SAX", Operator: Sax, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x90, Mnemonic: "BCC", Operator: Bcc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0x91, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
	{OpCode: 0x92, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x93, Mnemonic: "AHX", Operator: Ahx, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
	{OpCode: 0x94, Mnemonic: "STY", Operator: Sty, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x95, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x96, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x97, Mnemonic: "SAX", Operator: Sax, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x98, Mnemonic: "TYA", Operator: Tya, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x99, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x9a, Mnemonic: "TXS", Operator: Txs, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x9b, Mnemonic: "TAS", Operator: Tas, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x9c, Mnemonic: "SHY", Operator: Shy, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x9d, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x9e, Mnemonic: "SHX", Operator: Shx, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x9f, Mnemonic: "AHX", Operator: Ahx, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0xa0, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xa1, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xa2, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xa3, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xa4, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa5, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa6, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa7, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa8, Mnemonic: "TAY", Operator: Tay, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xa9, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xaa, Mnemonic: "TAX", Operator: Tax, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xab, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xac, Mnemonic: "LDY", Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xad, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xae, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xaf, Mnemonic: "LAX", Operator: Lax, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xb0, Mnemonic: "BCS", Operator: Bcs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0xb1, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xb2, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0xb3, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xb4, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xb5, Mnemonic: "LDA", Operator: Lda, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xb6, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
	{OpCode: 0xb7, Mnemonic: "LAX", Operator: Lax, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
	{OpCode: 0xb8, Mnemonic: "CLV", Operator: Clv, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xb9, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xba, Mnemonic: "TSX", Operator: Tsx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xbb, Mnemonic: "LAS", Operator: Las, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xbc, Mnemonic: "LDY", Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xbd, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xbe, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xbf, Mnemonic: "LAX", Operator: Lax, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xc0, Mnemonic: "CPY", Operator: Cpy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xc1, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xc2, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xc3, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW},
	{OpCode: 0xc4, Mnemonic: "CPY", Operator: Cpy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xc5, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xc6, Mnemonic: "DEC", Operator: Dec, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0xc7, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0xc8, Mnemonic: "INY", Operator: Iny, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xc9, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xca, Mnemonic: "DEX", Operator: Dex, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xcb, Mnemonic: "SBX", Operator: Sbx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xcc, Mnemonic: "CPY", Operator: Cpy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xcd, Mnemonic: "CMP", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xce, Mnemonic: "DEC", Operator: Dec, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0xcf, Mnemonic: "DCP", Operator: Dcp, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0xd0, Mnemonic: "BNE", Operator: Bne, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0xd1, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xd2, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0xd3, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW},
	{OpCode: 0xd4, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xd5, Mnemonic: "CMP", Operator: Cmp, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xd6, Mnemonic: "DEC", Operator: Dec, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xd7, Mnemonic: "DCP", Operator: Dcp, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xd8, Mnemonic: "CLD", Operator: Cld, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xd9, Mnemonic: "CMP", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xda, Mnemonic: "NOP", Operator: Nopu, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xdb, Mnemonic: "DCP", Operator: Dcp, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW},
	{OpCode: 0xdc, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xdd, Mnemonic: "CMP", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xde, Mnemonic: "DEC", Operator: Dec, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xdf, Mnemonic: "DCP", Operator: Dcp, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xe0, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xe1, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xe2, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xe3, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW},
	{OpCode: 0xe4, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xe5, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xe6, Mnemonic: "INC", Operator: Inc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0xe7, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0xe8, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xe9, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xea, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xeb, Mnemonic: "SBC", Operator: Sbcu, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xec, Mnemonic: "CPX", Operator: Cpx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xed, Mnemonic: "SBC", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xee, Mnemonic: "INC", Operator: Inc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0xef, Mnemonic: "ISC", Operator: Isc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0xf0, Mnemonic: "BEQ", Operator: Beq, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	{OpCode: 0xf1, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xf2, Mnemonic: "KIL", Operator: Kil, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0xf3, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW},
	{OpCode: 0xf4, Mnemonic: "NOP", Operator: Nopu, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xf5, Mnemonic: "SBC", Operator: Sbc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xf6, Mnemonic: "INC", Operator: Inc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xf7, Mnemonic: "ISC", Operator: Isc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xf8, Mnemonic: "SED", Operator: Sed, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xf9, Mnemonic: "SBC", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xfa, Mnemonic: "NOP", Operator: Nopu, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xfb, Mnemonic: "ISC", Operator: Isc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW},
	{OpCode: 0xfc, Mnemonic: "NOP", Operator: Nopu, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xfd, Mnemonic: "SBC", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xfe, Mnemonic: "INC", Operator: Inc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xff, Mnemonic: "ISC", Operator: Isc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
}

// GetDefinitions returns the table of instruction definitions for the 6502.
// The table is indexed by opcode and should not be altered.
func GetDefinitions() []*Definition {
	defns := make([]*Definition, len(definitions))
	for i := range definitions {
		defns[i] = &definitions[i]
	}
	return defns
}
