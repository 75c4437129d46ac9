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

// Package instructions defines the table of instruction definitions for the
// 6502. Every one of the 256 opcodes has a definition, including the
// undocumented opcodes.
//
// The definitions describe how the operand is fetched (the addressing mode),
// the number of bytes and base number of cycles consumed, whether an
// additional cycle is required when an indexed access crosses a page, and
// the effect category of the instruction.
package instructions
