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

package dmg_test

import (
	"testing"

	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/cartridge/dmg"
	"github.com/whiskers-emu/whiskers/test"
)

// makeImage creates a cartridge image with the number of 16k banks. the
// first byte of each bank is the bank number
func makeImage(numBanks int, cartType uint8, title string) []uint8 {
	data := make([]uint8, numBanks*0x4000)
	for i := range numBanks {
		data[i*0x4000] = uint8(i)
		data[i*0x4000+1] = uint8(i >> 8)
	}
	copy(data[0x134:], title)
	data[0x147] = cartType
	return data
}

func TestLoadErrors(t *testing.T) {
	_, err := dmg.Load(make([]uint8, 0x147))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dmg.ImageTooShort))

	_, err = dmg.Load(makeImage(2, 0x0f, "TEST"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dmg.UnsupportedMapper))
}

func TestTitle(t *testing.T) {
	cart, err := dmg.Load(makeImage(2, 0x00, "TETRIS"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Title(), "TETRIS")
	test.ExpectEquality(t, cart.ID(), "ROM")

	cart, err = dmg.Load(makeImage(2, 0x00, ""))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Title(), "untitled")
}

func TestNoMapper(t *testing.T) {
	// a short image is padded to two banks
	data := makeImage(1, 0x00, "SHORT")
	cart, err := dmg.Load(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 2)
	test.ExpectEquality(t, cart.Read(0x4000), 0xff)
	test.ExpectEquality(t, cart.Read(0x0147), 0x00)

	test.ExpectSuccess(t, cart.MapsRead(0x7fff))
	test.ExpectFailure(t, cart.MapsRead(0x8000))
	test.ExpectFailure(t, cart.MapsWrite(0x2000))
	test.ExpectFailure(t, cart.MapsRead(0xa000))
	test.ExpectEquality(t, len(cart.SaveRAM()), 0)
}

func TestMBC1Banking(t *testing.T) {
	cart, err := dmg.Load(makeImage(8, 0x01, "MBC1"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "MBC1")

	// bank one is selected by default
	test.ExpectEquality(t, cart.Read(0x4000), 0x01)

	cart.Write(0x2000, 0x05)
	test.ExpectEquality(t, cart.Read(0x4000), 0x05)
	test.ExpectEquality(t, cart.Read(0x0000), 0x00)

	// bank zero selects bank one
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), 0x01)

	// bank number wraps around the number of banks
	cart.Write(0x3fff, 0x0a)
	test.ExpectEquality(t, cart.Read(0x4000), 0x02)

	// only five bits are used
	cart.Write(0x2000, 0xe3)
	test.ExpectEquality(t, cart.Read(0x4000), 0x03)

	cart.Reset()
	test.ExpectEquality(t, cart.Read(0x4000), 0x01)
}

func TestMBC1RAM(t *testing.T) {
	cart, err := dmg.Load(makeImage(4, 0x03, "MBC1"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.HasBattery())

	// disabled RAM is not mapped for reading and writes are ignored
	test.ExpectFailure(t, cart.MapsRead(0xa000))
	test.ExpectSuccess(t, cart.MapsWrite(0xa000))
	cart.Write(0xa000, 0x12)
	test.ExpectFailure(t, cart.IsDirty())
	test.ExpectEquality(t, cart.Read(0xa000), 0xff)

	cart.Write(0x0000, 0x0a)
	test.ExpectSuccess(t, cart.MapsRead(0xa000))

	// RAM is initialised to 0xff
	test.ExpectEquality(t, cart.Read(0xbfff), 0xff)

	cart.Write(0xa000, 0x12)
	test.ExpectSuccess(t, cart.IsDirty())
	test.ExpectEquality(t, cart.Read(0xa000), 0x12)
	test.ExpectEquality(t, cart.SaveRAM()[0], 0x12)
	test.ExpectEquality(t, len(cart.SaveRAM()), 0x2000)

	cart.ClearDirty()
	test.ExpectFailure(t, cart.IsDirty())

	// only the low nibble is used to enable
	cart.Write(0x1000, 0x1a)
	test.ExpectSuccess(t, cart.MapsRead(0xa000))
	cart.Write(0x1000, 0x0b)
	test.ExpectFailure(t, cart.MapsRead(0xa000))

	cart.LoadRAM([]uint8{0x01, 0x02, 0x03})
	cart.Write(0x0000, 0x0a)
	test.ExpectEquality(t, cart.Read(0xa002), 0x03)
	test.ExpectFailure(t, cart.IsDirty())
}

func TestMBC5(t *testing.T) {
	cart, err := dmg.Load(makeImage(0x120, 0x1b, "MBC5"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "MBC5")
	test.ExpectSuccess(t, cart.HasBattery())

	test.ExpectEquality(t, cart.Read(0x4000), 0x01)

	// bank zero can be selected
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), 0x00)

	// bit 8 of the bank number
	cart.Write(0x2000, 0x10)
	cart.Write(0x3000, 0x01)
	test.ExpectEquality(t, cart.Read(0x4000), 0x10)
	test.ExpectEquality(t, cart.Read(0x4001), 0x01)

	// RAM banks
	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x03)
	cart.Write(0xa000, 0x33)
	cart.Write(0x4000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), 0xff)
	cart.Write(0x4000, 0x03)
	test.ExpectEquality(t, cart.Read(0xa000), 0x33)
	test.ExpectEquality(t, cart.SaveRAM()[3*0x2000], 0x33)
	test.ExpectEquality(t, len(cart.SaveRAM()), 16*0x2000)
}
