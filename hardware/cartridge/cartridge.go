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

// Package cartridge holds the definitions shared by the cartridge formats of
// both consoles. The formats themselves are in the dmg and ines
// sub-packages.
package cartridge

// Battery is implemented by cartridges that have RAM that can be saved
// between sessions. It is up to the host to decide when to save the RAM.
type Battery interface {
	// SaveRAM returns the cartridge RAM. the slice should not be retained by
	// the caller
	SaveRAM() []uint8

	// LoadRAM copies data into cartridge RAM
	LoadRAM(data []uint8)

	// HasBattery returns true if the cartridge RAM is battery backed
	HasBattery() bool

	// IsDirty returns true if cartridge RAM has been written to since the
	// last call to ClearDirty()
	IsDirty() bool

	// ClearDirty resets the dirty flag
	ClearDirty()
}
