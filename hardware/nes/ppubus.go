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

package nes

import (
	"github.com/whiskers-emu/whiskers/hardware/cartridge/ines"
	nesvideo "github.com/whiskers-emu/whiskers/hardware/video/nes"
)

// PPUBus is the bus seen by the PPU. It implements the bus.Bus interface.
//
//	0000-1fff	pattern tables (cartridge CHR)
//	2000-3eff	nametables (VRAM, mirrored by the cartridge)
//	3f00-3fff	palette RAM
type PPUBus struct {
	cart ines.Mapper

	// nametable memory. four-screen cartridges use all 4k
	vram [0x1000]uint8

	palette [0x20]uint8
}

func (b *PPUBus) reset() {
	clear(b.vram[:])
	clear(b.palette[:])
}

// Read implements the bus.Bus interface.
func (b *PPUBus) Read(address uint16) uint8 {
	address &= 0x3fff
	switch {
	case address < 0x2000:
		if b.cart == nil {
			return 0
		}
		return b.cart.PPURead(address)
	case address < 0x3f00:
		if b.cart == nil {
			return 0
		}
		return b.vram[b.cart.Mirror(address)]
	}
	return b.palette[nesvideo.PaletteAddress(address)]
}

// Write implements the bus.Bus interface.
func (b *PPUBus) Write(address uint16, data uint8) {
	address &= 0x3fff
	switch {
	case address < 0x2000:
		if b.cart != nil {
			b.cart.PPUWrite(address, data)
		}
	case address < 0x3f00:
		if b.cart != nil {
			b.vram[b.cart.Mirror(address)] = data
		}
	default:
		b.palette[nesvideo.PaletteAddress(address)] = data & 0x3f
	}
}

// MapsRead implements the bus.Bus interface.
func (b *PPUBus) MapsRead(_ uint16) bool {
	return true
}

// MapsWrite implements the bus.Bus interface.
func (b *PPUBus) MapsWrite(_ uint16) bool {
	return true
}
