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

// Package mos6502 emulates the 6502 CPU found in the 2A03 of the 6502
// console. Decimal mode is recorded in the status register but arithmetic is
// always binary, as it is on the 2A03.
//
// The CPU is not cycle stepped. ExecuteInstruction() runs one instruction and
// returns the number of cycles it consumed. The caller uses that number to
// advance the rest of the hardware.
//
// Interrupts are requested with NMI() and IRQ() and are serviced at the
// start of the next call to ExecuteInstruction().
//
// The undocumented opcodes are emulated, including the KIL family which
// halts the CPU until it is reset.
package mos6502
