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

import "fmt"

// mbc1 is the first memory bank controller. it supports up to 2MB of ROM
// and a single bank of 8k RAM.
//
//	0000-1fff	RAM enable (write 0x0a to the low nibble to enable)
//	2000-3fff	low five bits of ROM bank number. zero selects bank one
//	4000-5fff	upper two bits of ROM bank number
//	6000-7fff	banking mode (ignored)
//
// bank zero is always mapped to 0000-3fff and the selected bank to
// 4000-7fff. the bank number wraps around the number of banks in the
// cartridge.
type mbc1 struct {
	cartRAM

	mappingID string
	title     string
	banks     [][]uint8

	lower uint8
	upper uint8
	bank  int
}

func newMBC1(title string, banks [][]uint8, battery bool) *mbc1 {
	cart := &mbc1{
		cartRAM:   newCartRAM(ramSize, battery),
		mappingID: "MBC1",
		title:     title,
		banks:     banks,
	}
	cart.Reset()
	return cart
}

func (cart *mbc1) String() string {
	return fmt.Sprintf("%s [%s] %s", cart.title, cart.mappingID, cart.MappedBanks())
}

// ID implements the Mapper interface.
func (cart *mbc1) ID() string {
	return cart.mappingID
}

// Title implements the Mapper interface.
func (cart *mbc1) Title() string {
	return cart.title
}

// MappedBanks implements the Mapper interface.
func (cart *mbc1) MappedBanks() string {
	return fmt.Sprintf("Banks: 0 %d", cart.bank)
}

// NumBanks implements the Mapper interface.
func (cart *mbc1) NumBanks() int {
	return len(cart.banks)
}

// Reset implements the Mapper interface.
func (cart *mbc1) Reset() {
	cart.lower = 1
	cart.upper = 0
	cart.enabled = false
	cart.selectBank()
}

func (cart *mbc1) selectBank() {
	cart.bank = (int(cart.upper)<<5 | int(cart.lower)) % len(cart.banks)
}

// Read implements the bus.Bus interface.
func (cart *mbc1) Read(address uint16) uint8 {
	switch {
	case address < bankSize:
		return cart.banks[0][address]
	case romMapped(address):
		return cart.banks[cart.bank][address-bankSize]
	case ramMapped(address):
		return cart.read(int(address - 0xa000))
	}
	return openBus
}

// Write implements the bus.Bus interface.
func (cart *mbc1) Write(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.enabled = ramEnabled(data)
	case address <= 0x3fff:
		cart.lower = data & 0x1f
		if cart.lower == 0 {
			cart.lower = 1
		}
		cart.selectBank()
	case address <= 0x5fff:
		cart.upper = data & 0x03
		cart.selectBank()
	case address <= 0x7fff:
	case ramMapped(address):
		cart.write(int(address-0xa000), data)
	}
}

// MapsRead implements the bus.Bus interface.
func (cart *mbc1) MapsRead(address uint16) bool {
	return romMapped(address) || (ramMapped(address) && cart.enabled)
}

// MapsWrite implements the bus.Bus interface.
func (cart *mbc1) MapsWrite(address uint16) bool {
	return romMapped(address) || ramMapped(address)
}
