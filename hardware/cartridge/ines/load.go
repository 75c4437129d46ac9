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

package ines

import (
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/logger"
)

// Load parses the iNES image and returns a Mapper. No Mapper is returned if
// there is an error.
func Load(data []uint8) (Mapper, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if h.PRGBanks == 0 {
		return nil, curated.Errorf(NoPRG)
	}

	if len(data) < h.expectedLength() {
		return nil, curated.Errorf(Truncated, len(data), h.expectedLength())
	}

	if h.Mapper != 0 {
		return nil, curated.Errorf(UnsupportedMapper, h.Mapper)
	}

	// skip header and trainer
	data = data[headerSize:]
	if h.Trainer {
		data = data[trainerSize:]
	}

	prg := data[:h.PRGBanks*prgBankSize]
	chr := data[len(prg) : len(prg)+h.CHRBanks*chrBankSize]

	cart := newNROM(h, prg, chr)
	logger.Logf(logger.Allow, "iNES", "%s", h)

	return cart, nil
}
