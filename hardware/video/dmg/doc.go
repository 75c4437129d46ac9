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

// Package dmg implements the picture generator of the DMG console.
//
// The PPU is clocked one dot at a time. A scanline is 456 dots long and a
// frame is 154 scanlines. The first 144 scanlines are visible and are split
// into three modes:
//
//	Search	dots 0 to 79. up to 10 sprites are selected from OAM
//	Picture	from dot 80. 168 dots plus 10 dots for each selected sprite
//	HBlank	the remainder of the scanline
//
// Scanlines 144 to 153 are the VBlank period. Entering VBlank requests the
// VBlank interrupt through the bus and the completed frame is presented
// when the scanline counter wraps back to zero.
//
// The PPU accesses VRAM, OAM and the interrupt flag register through the bus
// given to NewPPU(). The register ports are mapped into the CPU bus with
// MapPorts().
package dmg
