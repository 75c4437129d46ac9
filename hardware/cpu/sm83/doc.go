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

// Package sm83 emulates the Sharp SM83 CPU found in the DMG handheld.
//
// Instructions are decoded through two tables of 256 entries. The first is
// indexed by the opcode and the second by the byte following the 0xcb
// prefix. Each entry names a handler function and up to two operands. The
// handler is responsible for the semantics of the instruction and the
// operands for where the data comes from and goes to. For example, the
// instruction
//
//	LD A,(HL+)
//
// uses the LD handler with the A register as the destination and the (HL+)
// indirect as the source. After the handler has run, the (HL+) operand
// increments the HL register.
//
// The CPU also holds the timer registers (DIV, TIMA, TMA and TAC) because
// the timer is driven directly from the CPU clock.
package sm83
