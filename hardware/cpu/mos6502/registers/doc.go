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

// Package registers implements the three types of register found in the 6502.
// The 8-bit general purpose registers (A, X, Y and the stack pointer), the
// 16-bit program counter and the status register.
//
// The Register type implements the arithmetic and logic operations of the
// CPU. The carry and overflow results are returned to the caller, which is
// responsible for updating the status register.
package registers
