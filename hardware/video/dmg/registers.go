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

package dmg

// Addresses of the register ports.
const (
	AddrLCDC = 0xff40
	AddrSTAT = 0xff41
	AddrSCY  = 0xff42
	AddrSCX  = 0xff43
	AddrLY   = 0xff44
	AddrLYC  = 0xff45
	AddrBGP  = 0xff47
	AddrOBP0 = 0xff48
	AddrOBP1 = 0xff49
	AddrWY   = 0xff4a
	AddrWX   = 0xff4b
)

// LCDC bits.
const (
	lcdcBGEnable     = 0x01
	lcdcSpriteEnable = 0x02
	lcdcSpriteTall   = 0x04
	lcdcBGMap        = 0x08
	lcdcTileData     = 0x10
	lcdcWindowEnable = 0x20
	lcdcWindowMap    = 0x40
	lcdcEnable       = 0x80
)

// STAT bits.
const (
	statCoincidence = 0x04
	statHBlankInt   = 0x08
	statVBlankInt   = 0x10
	statSearchInt   = 0x20
	statLYCInt      = 0x40
	statWritable    = 0x78
)

// Addresses of memory accessed by the PPU.
const (
	addrTileData0 = 0x8000
	addrTileData1 = 0x9000
	addrMap0      = 0x9800
	addrMap1      = 0x9c00
	addrOAM       = 0xfe00
	addrIF        = 0xff0f
)

// Interrupt bits in the IF register.
const (
	intVBlank = 0x01
	intSTAT   = 0x02
)

// Mode is the current state of the PPU. The values are those reported in
// bits 0 and 1 of the STAT register.
type Mode uint8

// List of valid Mode values.
const (
	HBlank Mode = iota
	VBlank
	Search
	Picture
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case Search:
		return "Search"
	case Picture:
		return "Picture"
	}
	return "unknown mode"
}
