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
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/logger"
)

// Load creates a new Mapper for the cartridge data. The mapper type is taken
// from the cartridge header.
func Load(data []uint8) (Mapper, error) {
	if len(data) < headerMinLength {
		return nil, curated.Errorf(ImageTooShort, len(data))
	}

	title := parseTitle(data)
	banks := splitBanks(data)

	var cart Mapper

	switch t := data[headerType]; t {
	case 0x00, 0x08, 0x09:
		cart = newNoMapper(title, banks)
	case 0x01, 0x02, 0x03:
		cart = newMBC1(title, banks, t == 0x03)
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		cart = newMBC5(title, banks, t == 0x1b || t == 0x1e)
	default:
		return nil, curated.Errorf(UnsupportedMapper, t)
	}

	logger.Logf(logger.Allow, cart.ID(), "loaded %q (%d banks)", title, cart.NumBanks())

	return cart, nil
}
