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

// Register port numbers. The CPU address of a port is 0x2000 plus the port
// number, mirrored every eight bytes up to 0x3fff.
const (
	PPUCTRL = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA
)

// PPUCTRL bits.
const (
	ctrlNametable     = 0x03
	ctrlIncrement     = 0x04
	ctrlSpritePattern = 0x08
	ctrlBGPattern     = 0x10
	ctrlNMI           = 0x80
)

// PPUMASK bits.
const (
	maskBG      = 0x08
	maskSprites = 0x10
)

// PPUSTATUS bits.
const (
	statusSprite0 = 0x40
	statusVBlank  = 0x80
)

// Sprite attribute bits.
const (
	attrPalette  = 0x03
	attrPriority = 0x20
	attrFlipH    = 0x40
	attrFlipV    = 0x80
)

// ReadRegister returns the value of the register port. Reading PPUSTATUS
// clears the vblank flag and the write toggle. Reading PPUDATA advances the
// VRAM address.
func (ppu *PPU) ReadRegister(port int) uint8 {
	switch port & 0x07 {
	case PPUSTATUS:
		v := ppu.status | ppu.latch&0x1f
		ppu.status &^= statusVBlank
		ppu.toggle = false
		return v
	case OAMDATA:
		return ppu.oam[ppu.oamAddr]
	case PPUDATA:
		a := ppu.vramAddr & 0x3fff
		var v uint8
		if a < 0x3f00 {
			v = ppu.readBuffer
			ppu.readBuffer = ppu.mem.Read(a)
		} else {
			// palette reads are not buffered. the buffer is filled with the
			// nametable byte underneath the palette
			v = ppu.mem.Read(a)
			ppu.readBuffer = ppu.mem.Read(a - 0x1000)
		}
		ppu.incrementAddr()
		return v
	}

	// write only registers return the last value written to any port
	return ppu.latch
}

// WriteRegister writes data to the register port.
func (ppu *PPU) WriteRegister(port int, data uint8) {
	ppu.latch = data

	switch port & 0x07 {
	case PPUCTRL:
		nmi := ppu.ctrl&ctrlNMI == 0 && data&ctrlNMI == ctrlNMI
		ppu.ctrl = data

		// enabling NMI during vblank generates an NMI immediately
		if nmi && ppu.status&statusVBlank == statusVBlank {
			ppu.nmi()
		}
	case PPUMASK:
		ppu.mask = data
	case PPUSTATUS:
	case OAMADDR:
		ppu.oamAddr = data
	case OAMDATA:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++
	case PPUSCROLL:
		if ppu.toggle {
			ppu.scrollY = data
		} else {
			ppu.scrollX = data
		}
		ppu.toggle = !ppu.toggle
	case PPUADDR:
		if ppu.toggle {
			ppu.vramAddr = ppu.tempAddr | uint16(data)
		} else {
			ppu.tempAddr = uint16(data&0x3f) << 8
		}
		ppu.toggle = !ppu.toggle
	case PPUDATA:
		ppu.mem.Write(ppu.vramAddr&0x3fff, data)
		ppu.incrementAddr()
	}
}

func (ppu *PPU) incrementAddr() {
	if ppu.ctrl&ctrlIncrement == ctrlIncrement {
		ppu.vramAddr += 32
	} else {
		ppu.vramAddr++
	}
}
