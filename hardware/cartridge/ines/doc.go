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

// Package ines loads cartridge images in the iNES format for the 6502
// console.
//
// The header is 16 bytes long:
//
//	0-3	"NES" followed by 0x1a
//	4	number of 16k PRG ROM banks
//	5	number of 8k CHR ROM banks (zero means the cartridge has CHR RAM)
//	6	flags 6: mirroring, battery, trainer, four-screen and mapper low nibble
//	7	flags 7: header version and mapper high nibble
//
// An optional 512 byte trainer follows the header, followed by the PRG data
// and then the CHR data. NES 2.0 headers are rejected.
//
// Only mapper 0 (NROM) is supported.
package ines
