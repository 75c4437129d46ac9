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

package ines

import (
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
)

// Mapper implementations hold the PRG and CHR data of a cartridge. The CPU
// side of the cartridge is accessed through the bus.Bus interface and the
// PPU side with PPURead() and PPUWrite().
type Mapper interface {
	bus.Bus

	// ID returns the name of the mapper
	ID() string

	// Header returns the parsed iNES header
	Header() Header

	// Reset any volatile registers in the mapper
	Reset()

	// PPURead reads from the pattern tables (0x0000 to 0x1fff)
	PPURead(address uint16) uint8

	// PPUWrite writes to the pattern tables. writes are ignored if the
	// cartridge has CHR ROM
	PPUWrite(address uint16, data uint8)

	// Mirror converts a nametable address (0x2000 to 0x3eff) to an index into
	// nametable VRAM. VRAM is 2k except for four-screen cartridges which
	// supply an additional 2k
	Mirror(address uint16) uint16

	// SaveRAM returns the PRG RAM. the slice should not be retained by the
	// caller
	SaveRAM() []uint8

	// LoadRAM copies data into PRG RAM
	LoadRAM(data []uint8)

	// HasBattery returns true if PRG RAM is battery backed
	HasBattery() bool

	// IsDirty returns true if PRG RAM has been written to since the last call
	// to ClearDirty()
	IsDirty() bool

	// ClearDirty resets the dirty flag
	ClearDirty()
}

// the nametable pages used for each of the four logical nametables
var mirrorPages = map[Mirroring][4]uint16{
	Horizontal:  {0, 0, 1, 1},
	Vertical:    {0, 1, 0, 1},
	SingleLower: {0, 0, 0, 0},
	SingleUpper: {1, 1, 1, 1},
	FourScreen:  {0, 1, 2, 3},
}

// mirror is the basic implementation of Mapper.Mirror()
func mirror(m Mirroring, address uint16) uint16 {
	a := (address - 0x2000) & 0x0fff
	return mirrorPages[m][a/0x400]*0x400 + a&0x3ff
}
