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

// Package nes implements the picture generator of the 6502 console.
//
// A frame is 262 scanlines of 341 dots. Scanlines 0 to 239 are visible and
// each visible dot from 1 to 256 produces one pixel. The vblank flag is set
// on scanline 241 and cleared on the pre-render scanline (261). The
// completed frame is presented when the pre-render scanline wraps to zero.
//
// Pattern tables, nametables and palette RAM are accessed through the bus
// given to NewPPU(). The eight register ports are accessed by the CPU with
// ReadRegister() and WriteRegister(). OAM is held by the PPU.
//
// All 64 sprites are considered for every pixel. There is no limit to the
// number of sprites on a scanline.
package nes
