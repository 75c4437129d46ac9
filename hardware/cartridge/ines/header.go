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
	"bytes"
	"fmt"

	"github.com/whiskers-emu/whiskers/curated"
)

// Patterns for curated errors returned by Load().
const (
	BadMagic           = "iNES: bad magic number"
	UnsupportedVersion = "iNES: unsupported header version (NES 2.0)"
	UnsupportedMapper  = "iNES: unsupported mapper (%d)"
	Truncated          = "iNES: truncated image (%d bytes, expected %d)"
	NoPRG              = "iNES: no PRG banks"
)

// Magic is the first four bytes of an iNES image.
var Magic = []byte{'N', 'E', 'S', 0x1a}

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 0x4000
	chrBankSize = 0x2000
)

// Mirroring describes how the four nametables are mapped to VRAM.
type Mirroring int

// List of mirroring types.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleLower
	SingleUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleLower:
		return "single (lower)"
	case SingleUpper:
		return "single (upper)"
	case FourScreen:
		return "four-screen"
	}
	return "unknown mirroring"
}

// Header is the parsed iNES header.
type Header struct {
	PRGBanks  int
	CHRBanks  int
	Mirroring Mirroring
	Battery   bool
	Trainer   bool
	Mapper    int
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d: PRG %dx16k CHR %dx8k %s", h.Mapper, h.PRGBanks, h.CHRBanks, h.Mirroring)
}

// IsINES returns true if the data begins with the iNES magic number.
func IsINES(data []uint8) bool {
	return bytes.HasPrefix(data, Magic)
}

// ParseHeader parses the first 16 bytes of the image. The length of the
// image is not checked.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < headerSize {
		return Header{}, curated.Errorf(Truncated, len(data), headerSize)
	}
	if !IsINES(data) {
		return Header{}, curated.Errorf(BadMagic)
	}

	flags6 := data[6]
	flags7 := data[7]

	if (flags7>>2)&0x03 == 0x02 {
		return Header{}, curated.Errorf(UnsupportedVersion)
	}

	h := Header{
		PRGBanks: int(data[4]),
		CHRBanks: int(data[5]),
		Battery:  flags6&0x02 == 0x02,
		Trainer:  flags6&0x04 == 0x04,
		Mapper:   int(flags6>>4) | int(flags7&0xf0),
	}

	switch {
	case flags6&0x08 == 0x08:
		h.Mirroring = FourScreen
	case flags6&0x01 == 0x01:
		h.Mirroring = Vertical
	default:
		h.Mirroring = Horizontal
	}

	return h, nil
}

// expectedLength returns the number of bytes the image should contain
func (h Header) expectedLength() int {
	n := headerSize + h.PRGBanks*prgBankSize + h.CHRBanks*chrBankSize
	if h.Trainer {
		n += trainerSize
	}
	return n
}
