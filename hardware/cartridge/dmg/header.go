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
	"strings"
)

// Locations in the cartridge header.
const (
	headerTitle     = 0x0134
	headerTitleEnd  = 0x0143
	headerType      = 0x0147
	headerMinLength = headerType + 1
)

// Patterns for curated errors returned by Load().
const (
	UnsupportedMapper = "cartridge: unsupported mapper type (%#02x)"
	ImageTooShort     = "cartridge: image too short (%d bytes)"
)

// the title is padded with zero bytes and may contain unprintable characters
// in the bytes that later cartridges used for the manufacturer code
func parseTitle(data []uint8) string {
	s := strings.Builder{}
	for _, b := range data[headerTitle : headerTitleEnd+1] {
		if b == 0x00 {
			break
		}
		if b >= 0x20 && b < 0x7f {
			s.WriteByte(b)
		}
	}
	t := strings.TrimSpace(s.String())
	if t == "" {
		return "untitled"
	}
	return t
}

// splitBanks divides the data into 16k banks. the last bank is padded with
// 0xff if necessary. there are always at least two banks
func splitBanks(data []uint8) [][]uint8 {
	n := (len(data) + bankSize - 1) / bankSize
	n = max(n, 2)

	banks := make([][]uint8, n)
	for i := range banks {
		banks[i] = make([]uint8, bankSize)
		for j := range banks[i] {
			banks[i][j] = 0xff
		}
		if i*bankSize < len(data) {
			copy(banks[i], data[i*bankSize:])
		}
	}
	return banks
}
