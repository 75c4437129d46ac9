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

import (
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
)

// Mapper implementations hold the ROM and RAM of a cartridge and keep track
// of which banks are mapped into the address space.
type Mapper interface {
	bus.Bus

	// ID returns the name of the mapper
	ID() string

	// Title returns the title from the cartridge header
	Title() string

	// MappedBanks returns a short description of the currently mapped banks
	MappedBanks() string

	// NumBanks returns the number of 16k ROM banks
	NumBanks() int

	// Reset the bank selection and RAM enable state. RAM contents are not
	// affected
	Reset()

	// SaveRAM returns the cartridge RAM. the slice should not be retained by
	// the caller. a cartridge with no RAM returns a nil slice
	SaveRAM() []uint8

	// LoadRAM copies data into cartridge RAM. any data past the end of the
	// cartridge RAM is ignored
	LoadRAM(data []uint8)

	// HasBattery returns true if the cartridge RAM is battery backed
	HasBattery() bool

	// IsDirty returns true if cartridge RAM has been written to since the last
	// call to ClearDirty()
	IsDirty() bool

	// ClearDirty resets the dirty flag
	ClearDirty()
}

const (
	bankSize = 0x4000
	ramSize  = 0x2000

	// value returned by reads of disabled RAM
	openBus = 0xff
)

// ramEnabled returns true if the value written to the RAM enable range
// enables the RAM
func ramEnabled(v uint8) bool {
	return v&0x0f == 0x0a
}

// romMapped returns true if the address is in the ROM area
func romMapped(address uint16) bool {
	return address <= 0x7fff
}

// ramMapped returns true if the address is in the cartridge RAM area
func ramMapped(address uint16) bool {
	return address >= 0xa000 && address <= 0xbfff
}

// cartRAM is cartridge RAM with a dirty flag. it is embedded by mappers that
// have RAM
type cartRAM struct {
	ram     []uint8
	enabled bool
	dirty   bool
	battery bool
}

func newCartRAM(size int, battery bool) cartRAM {
	r := cartRAM{
		ram:     make([]uint8, size),
		battery: battery,
	}
	for i := range r.ram {
		r.ram[i] = 0xff
	}
	return r
}

// SaveRAM implements the Mapper interface.
func (r *cartRAM) SaveRAM() []uint8 {
	return r.ram
}

// LoadRAM implements the Mapper interface.
func (r *cartRAM) LoadRAM(data []uint8) {
	copy(r.ram, data)
}

// HasBattery implements the Mapper interface.
func (r *cartRAM) HasBattery() bool {
	return r.battery
}

// IsDirty implements the Mapper interface.
func (r *cartRAM) IsDirty() bool {
	return r.dirty
}

// ClearDirty implements the Mapper interface.
func (r *cartRAM) ClearDirty() {
	r.dirty = false
}

func (r *cartRAM) read(idx int) uint8 {
	if !r.enabled {
		return openBus
	}
	return r.ram[idx%len(r.ram)]
}

func (r *cartRAM) write(idx int, data uint8) {
	if !r.enabled {
		return
	}
	r.ram[idx%len(r.ram)] = data
	r.dirty = true
}
