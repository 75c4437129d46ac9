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

// Package hardware is the base package for the emulated consoles. It and its
// sub-packages contain everything required for a headless emulation.
//
// The composition roots are the gameboy and nes packages. Both implement
// core.Core, which is the only type the host needs to know about. The
// remaining sub-packages are the components shared between or specific to
// the two consoles:
//
//	cpu/mos6502   the 6502 instruction engine
//	cpu/sm83      the SM83 instruction engine and timer
//	memory/bus    the address decoder used by both consoles
//	cartridge     cartridge formats and mappers
//	video         the two picture generators
//	controls      host key bindings shared by both consoles
//	clocks        clock speeds and refresh rates
package hardware
