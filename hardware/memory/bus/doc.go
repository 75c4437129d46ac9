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

// Package bus defines the memory bus concept shared by both consoles.
//
// Every addressable device implements the Bus interface. A device answers
// whether it claims an address for reading or writing (MapsRead() and
// MapsWrite()) and performs the access itself (Read() and Write()).
//
// The Mapped type is a composite bus that resolves one 16-bit address space
// from a list of mappings. Mappings are consulted in a fixed order:
//
//  1. priority overlays, used for boot ROMs that shadow low memory until a
//     control register unmaps them
//  2. child buses, in registration order. the first child that claims the
//     address answers the access. cartridge mappers are mapped this way
//  3. flat mappings (byte arrays and single address registers) in insertion
//     order
//  4. the unmapped value
//
// Within a tier the first matching mapping wins. A mapping inserted later
// that overlaps an earlier one is therefore unreachable for the overlapping
// addresses.
//
// Array mappings wrap addresses modulo the length of the backing array. One
// small array can therefore answer a larger, mirrored range:
//
//	wram := make([]uint8, 0x2000)
//	cpuBus.MapArray(wram, 0xc000, 0x3e00) // 0xe000 mirrors 0xc000
//
// Bus misses are not errors. A read that nothing claims returns the unmapped
// value and a write that nothing claims is dropped.
package bus
