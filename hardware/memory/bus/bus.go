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

package bus

// Bus is implemented by every addressable device.
type Bus interface {
	// Read returns the byte at the address. Reading may cause side effects
	// in the device.
	Read(address uint16) uint8

	// Write the byte to the address.
	Write(address uint16, data uint8)

	// MapsRead returns true if the device answers reads at the address.
	MapsRead(address uint16) bool

	// MapsWrite returns true if the device answers writes at the address.
	MapsWrite(address uint16) bool
}

// Read16 reads a little-endian 16-bit value from the bus.
func Read16(b Bus, address uint16) uint16 {
	lo := uint16(b.Read(address))
	hi := uint16(b.Read(address + 1))
	return hi<<8 | lo
}

// Write16 writes a little-endian 16-bit value to the bus.
func Write16(b Bus, address uint16, data uint16) {
	b.Write(address, uint8(data))
	b.Write(address+1, uint8(data>>8))
}
