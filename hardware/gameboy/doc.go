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

// Package gameboy is the composition root of the DMG console. It connects
// the SM83 CPU, the picture generator, the timer and the cartridge through
// two buses.
//
// The CPU bus covers the entire address space:
//
//	0000-7fff	cartridge ROM (boot ROM overlays 0000-00ff until unmapped)
//	8000-9fff	VRAM
//	a000-bfff	cartridge RAM
//	c000-fdff	WRAM (e000-fdff mirrors c000-ddff)
//	fe00-fe9f	OAM
//	ff00		joypad
//	ff01-ff02	serial
//	ff04-ff07	timer
//	ff0f		interrupt flags
//	ff40-ff4b	PPU registers and OAM DMA
//	ff50		boot ROM unmap
//	ff80-fffe	HRAM
//	ffff		interrupt enable
//
// The PPU bus maps VRAM, OAM and the two interrupt registers. The interrupt
// registers are the same storage in both buses.
package gameboy
