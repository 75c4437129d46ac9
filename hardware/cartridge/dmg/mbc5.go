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

// mbc5 supports up to 8MB of ROM and 128k of RAM in sixteen 8k banks.
//
//	0000-1fff	RAM enable (write 0x0a to the low nibble to enable)
//	2000-2fff	low eight bits of ROM bank number
//	3000-3fff	bit 8 of ROM bank number
//	4000-5fff	RAM bank number
//
// unlike the MBC1, bank zero can be mapped to 4000-7fff.
type mbc5 struct {
	cartRAM

	mappingID string
	title     string
	banks     [][]uint8

	romBank int
	ramBank int
	bank    int
}

const mbc5RAMBanks = 16

func newMBC5(title string, banks [][]uint8, battery bool) *mbc5 {
	cart := &mbc5{
		cartRAM:   newCartRAM(ramSize*mbc5RAMBanks, battery),
		mappingID: "MBC5",
		title:     title,
		banks:     banks,
	}
	cart.Reset()
	return cart
}

func (cart *mbc5) String() string {
	return fmt.Sprintf("%s [%s] %s", cart.title, cart.mappingID, cart.MappedBanks())
}

// ID implements the Mapper interface.
func (cart *mbc5) ID() string {
	return cart.mappingID
}

// Title implements the Mapper interface.
func (cart *mbc5) Title() string {
	return cart.title
}

// MappedBanks implements the Mapper interface.
func (cart *mbc5) MappedBanks() string {
	return fmt.Sprintf("Banks: 0 %d RAM: %d", cart.bank, cart.ramBank)
}

// NumBanks implements the Mapper interface.
func (cart *mbc5) NumBanks() int {
	return len(cart.banks)
}

// Reset implements the Mapper interface.
func (cart *mbc5) Reset() {
	cart.romBank = 1
	cart.ramBank = 0
	cart.enabled = false
	cart.bank = cart.romBank % len(cart.banks)
}

// Read implements the bus.Bus interface.
func (cart *mbc5) Read(address uint16) uint8 {
	switch {
	case address < bankSize:
		return cart.banks[0][address]
	case romMapped(address):
		return cart.banks[cart.bank][address-bankSize]
	case ramMapped(address):
		return cart.read(cart.ramBank*ramSize + int(address-0xa000))
	}
	return openBus
}

// Write implements the bus.Bus interface.
func (cart *mbc5) Write(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.enabled = ramEnabled(data)
	case address <= 0x2fff:
		cart.romBank = cart.romBank&0x100 | int(data)
		cart.bank = cart.romBank % len(cart.banks)
	case address <= 0x3fff:
		cart.romBank = cart.romBank&0xff | int(data&0x01)<<8
		cart.bank = cart.romBank % len(cart.banks)
	case address <= 0x5fff:
		cart.ramBank = int(data & 0x0f)
	case address <= 0x7fff:
	case ramMapped(address):
		cart.write(cart.ramBank*ramSize+int(address-0xa000), data)
	}
}

// MapsRead implements the bus.Bus interface.
func (cart *mbc5) MapsRead(address uint16) bool {
	return romMapped(address) || (ramMapped(address) && cart.enabled)
}

// MapsWrite implements the bus.Bus interface.
func (cart *mbc5) MapsWrite(address uint16) bool {
	return romMapped(address) || ramMapped(address)
}
