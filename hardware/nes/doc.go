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

// Package nes is the composition root of the 6502 console. It connects the
// 6502 CPU, the picture generator, the controllers and the cartridge.
//
// The CPU bus:
//
//	0000-1fff	2k RAM, mirrored every 0x800 bytes
//	2000-3fff	PPU registers, mirrored every eight bytes
//	4014		OAM DMA
//	4016		controller strobe and controller one
//	4017		controller two
//	6000-ffff	cartridge
//
// The PPU has its own bus, the PPUBus type, which maps the pattern tables to
// the cartridge, the nametables to VRAM through the cartridge's mirroring
// and holds palette RAM.
package nes
