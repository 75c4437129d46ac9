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

import "fmt"

// nrom is mapper 0. there is no bank switching.
//
//	6000-7fff	PRG RAM
//	8000-bfff	first 16k PRG bank
//	c000-ffff	last 16k PRG bank
//
// NROM-128 cartridges have one PRG bank, which is therefore mirrored. if the
// cartridge has no CHR ROM then 8k of CHR RAM is provided.
type nrom struct {
	mappingID string
	header    Header

	prg [][]uint8
	chr []uint8

	chrRAM bool

	ram   []uint8
	dirty bool
}

const prgRAMSize = 0x2000

func newNROM(h Header, prg []uint8, chr []uint8) *nrom {
	cart := &nrom{
		mappingID: "NROM",
		header:    h,
		ram:       make([]uint8, prgRAMSize),
	}

	for i := range h.PRGBanks {
		b := make([]uint8, prgBankSize)
		copy(b, prg[i*prgBankSize:])
		cart.prg = append(cart.prg, b)
	}

	if len(chr) == 0 {
		cart.chr = make([]uint8, chrBankSize)
		cart.chrRAM = true
	} else {
		cart.chr = make([]uint8, len(chr))
		copy(cart.chr, chr)
	}

	return cart
}

func (cart *nrom) String() string {
	return fmt.Sprintf("[%s] %s", cart.mappingID, cart.header)
}

// ID implements the Mapper interface.
func (cart *nrom) ID() string {
	return cart.mappingID
}

// Header implements the Mapper interface.
func (cart *nrom) Header() Header {
	return cart.header
}

// Reset implements the Mapper interface.
func (cart *nrom) Reset() {
}

// Read implements the bus.Bus interface.
func (cart *nrom) Read(address uint16) uint8 {
	switch {
	case address >= 0xc000:
		return cart.prg[len(cart.prg)-1][address-0xc000]
	case address >= 0x8000:
		return cart.prg[0][address-0x8000]
	case address >= 0x6000:
		return cart.ram[address-0x6000]
	}
	return 0
}

// Write implements the bus.Bus interface.
func (cart *nrom) Write(address uint16, data uint8) {
	if address >= 0x6000 && address <= 0x7fff {
		cart.ram[address-0x6000] = data
		cart.dirty = true
	}
}

// MapsRead implements the bus.Bus interface.
func (cart *nrom) MapsRead(address uint16) bool {
	return address >= 0x6000
}

// MapsWrite implements the bus.Bus interface.
func (cart *nrom) MapsWrite(address uint16) bool {
	return address >= 0x6000
}

// PPURead implements the Mapper interface.
func (cart *nrom) PPURead(address uint16) uint8 {
	return cart.chr[int(address&0x1fff)%len(cart.chr)]
}

// PPUWrite implements the Mapper interface.
func (cart *nrom) PPUWrite(address uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[address&0x1fff] = data
	}
}

// Mirror implements the Mapper interface.
func (cart *nrom) Mirror(address uint16) uint16 {
	return mirror(cart.header.Mirroring, address)
}

// SaveRAM implements the Mapper interface.
func (cart *nrom) SaveRAM() []uint8 {
	return cart.ram
}

// LoadRAM implements the Mapper interface.
func (cart *nrom) LoadRAM(data []uint8) {
	copy(cart.ram, data)
}

// HasBattery implements the Mapper interface.
func (cart *nrom) HasBattery() bool {
	return cart.header.Battery
}

// IsDirty implements the Mapper interface.
func (cart *nrom) IsDirty() bool {
	return cart.dirty
}

// ClearDirty implements the Mapper interface.
func (cart *nrom) ClearDirty() {
	cart.dirty = false
}
