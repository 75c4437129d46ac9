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

// Package dmg implements the cartridge mappers of the DMG handheld.
//
// Load() inspects the cartridge header and returns the appropriate Mapper.
// The supported mappers are the plain ROM cartridge (no mapper), the MBC1
// and the MBC5. Every Mapper is also a bus.Bus and is added to the CPU bus
// as a child bus.
//
// Cartridge RAM is exposed through SaveRAM() and LoadRAM(). The IsDirty()
// function reports whether the RAM has been written to since the last call
// to ClearDirty(), which allows the host to persist battery-backed RAM only
// when it has changed.
package dmg
