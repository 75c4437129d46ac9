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

// noMapper is the plain 32k cartridge. the two banks are always mapped and
// writes to the cartridge are ignored.
type noMapper struct {
	mappingID string
	title     string
	banks     [][]uint8
}

func newNoMapper(title string, banks [][]uint8) *noMapper {
	return &noMapper{
		mappingID: "ROM",
		title:     title,
		banks:     banks,
	}
}

func (cart *noMapper) String() string {
	return fmt.Sprintf("%s [%s]", cart.title, cart.mappingID)
}

// ID implements the Mapper interface.
func (cart *noMapper) ID() string {
	return cart.mappingID
}

// Title implements the Mapper interface.
func (cart *noMapper) Title() string {
	return cart.title
}

// MappedBanks implements the Mapper interface.
func (cart *noMapper) MappedBanks() string {
	return "Banks: 0 1"
}

// NumBanks implements the Mapper interface.
func (cart *noMapper) NumBanks() int {
	return len(cart.banks)
}

// Reset implements the Mapper interface.
func (cart *noMapper) Reset() {
}

// SaveRAM implements the Mapper interface.
func (cart *noMapper) SaveRAM() []uint8 {
	return nil
}

// LoadRAM implements the Mapper interface.
func (cart *noMapper) LoadRAM(_ []uint8) {
}

// HasBattery implements the Mapper interface.
func (cart *noMapper) HasBattery() bool {
	return false
}

// IsDirty implements the Mapper interface.
func (cart *noMapper) IsDirty() bool {
	return false
}

// ClearDirty implements the Mapper interface.
func (cart *noMapper) ClearDirty() {
}

// Read implements the bus.Bus interface.
func (cart *noMapper) Read(address uint16) uint8 {
	return cart.banks[address/bankSize][address%bankSize]
}

// Write implements the bus.Bus interface.
func (cart *noMapper) Write(_ uint16, _ uint8) {
}

// MapsRead implements the bus.Bus interface.
func (cart *noMapper) MapsRead(address uint16) bool {
	return romMapped(address)
}

// MapsWrite implements the bus.Bus interface.
func (cart *noMapper) MapsWrite(_ uint16) bool {
	return false
}
