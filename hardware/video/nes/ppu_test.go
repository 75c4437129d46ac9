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

package nes_test

import (
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	"github.com/whiskers-emu/whiskers/hardware/video/nes"
	"github.com/whiskers-emu/whiskers/test"
)

type fixture struct {
	mem    []uint8
	ppu    *nes.PPU
	frames int
	nmis   int
}

func newFixture() *fixture {
	f := &fixture{
		mem: make([]uint8, 0x4000),
	}

	m := bus.NewMapped("test PPU")
	m.MapArray(f.mem, 0x0000, len(f.mem))

	f.ppu = nes.NewPPU(m)
	f.ppu.OnFrame = func(_ []uint32) {
		f.frames++
	}
	f.ppu.OnNMI = func() {
		f.nmis++
	}

	// move all sprites off screen
	f.ppu.WriteRegister(nes.OAMADDR, 0)
	for range 256 {
		f.ppu.WriteOAM(0xff)
	}

	return f
}

// frame clocks the PPU for one complete frame
func (f *fixture) frame() {
	f.ppu.Clock(nes.DotsPerLine * nes.LinesPerFrame)
}

func (f *fixture) pixel(x int, y int) uint32 {
	return f.ppu.Frame()[y*nes.Width+x]
}

func TestFrameTiming(t *testing.T) {
	f := newFixture()

	f.ppu.Clock(nes.DotsPerLine*nes.LinesPerFrame - 1)
	test.ExpectEquality(t, f.frames, 0)
	test.ExpectEquality(t, f.ppu.Scanline(), nes.LinesPerFrame-1)

	f.ppu.Clock(1)
	test.ExpectEquality(t, f.frames, 1)
	test.ExpectEquality(t, f.ppu.Scanline(), 0)
	test.ExpectEquality(t, f.ppu.Dot(), 0)

	f.frame()
	test.ExpectEquality(t, f.frames, 2)
}

func TestVBlank(t *testing.T) {
	f := newFixture()

	// up to and including dot 0 of scanline 241
	f.ppu.Clock(241*nes.DotsPerLine + 1)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x80, 0)

	f.ppu.Clock(1)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x80, 0x80)
	test.ExpectEquality(t, f.nmis, 0)

	// reading PPUSTATUS clears the flag
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x80, 0)

	// NMI on the next frame
	f.ppu.WriteRegister(nes.PPUCTRL, 0x80)
	f.frame()
	test.ExpectEquality(t, f.nmis, 1)

	// flag is cleared on the pre-render scanline
	f.ppu.Clock(20 * nes.DotsPerLine)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x80, 0)
}

func TestNMIEnableDuringVBlank(t *testing.T) {
	f := newFixture()
	f.ppu.Clock(242 * nes.DotsPerLine)
	test.ExpectEquality(t, f.nmis, 0)
	f.ppu.WriteRegister(nes.PPUCTRL, 0x80)
	test.ExpectEquality(t, f.nmis, 1)

	// writing the register again does not generate another NMI
	f.ppu.WriteRegister(nes.PPUCTRL, 0x80)
	test.ExpectEquality(t, f.nmis, 1)
}

func TestPPUData(t *testing.T) {
	f := newFixture()

	f.ppu.WriteRegister(nes.PPUADDR, 0x21)
	f.ppu.WriteRegister(nes.PPUADDR, 0x08)
	f.ppu.WriteRegister(nes.PPUDATA, 0x55)
	f.ppu.WriteRegister(nes.PPUDATA, 0x66)
	test.ExpectEquality(t, f.mem[0x2108], 0x55)
	test.ExpectEquality(t, f.mem[0x2109], 0x66)

	// increment by 32
	f.ppu.WriteRegister(nes.PPUCTRL, 0x04)
	f.ppu.WriteRegister(nes.PPUADDR, 0x22)
	f.ppu.WriteRegister(nes.PPUADDR, 0x00)
	f.ppu.WriteRegister(nes.PPUDATA, 0x01)
	f.ppu.WriteRegister(nes.PPUDATA, 0x02)
	test.ExpectEquality(t, f.mem[0x2200], 0x01)
	test.ExpectEquality(t, f.mem[0x2220], 0x02)

	// reads are buffered
	f.ppu.WriteRegister(nes.PPUCTRL, 0x00)
	f.ppu.WriteRegister(nes.PPUADDR, 0x21)
	f.ppu.WriteRegister(nes.PPUADDR, 0x08)
	f.ppu.ReadRegister(nes.PPUDATA)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUDATA), 0x55)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUDATA), 0x66)

	// palette reads are not
	f.mem[0x3f01] = 0x2a
	f.ppu.WriteRegister(nes.PPUADDR, 0x3f)
	f.ppu.WriteRegister(nes.PPUADDR, 0x01)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUDATA), 0x2a)
}

func TestWriteToggle(t *testing.T) {
	f := newFixture()

	// a single write leaves the toggle set. reading PPUSTATUS resets it
	f.ppu.WriteRegister(nes.PPUADDR, 0x3f)
	f.ppu.ReadRegister(nes.PPUSTATUS)
	f.ppu.WriteRegister(nes.PPUADDR, 0x23)
	f.ppu.WriteRegister(nes.PPUADDR, 0x45)
	f.ppu.WriteRegister(nes.PPUDATA, 0x99)
	test.ExpectEquality(t, f.mem[0x2345], 0x99)

	// mirrored ports
	f.ppu.WriteRegister(nes.PPUADDR+8, 0x23)
	f.ppu.WriteRegister(nes.PPUADDR+16, 0x46)
	f.ppu.WriteRegister(nes.PPUDATA+24, 0x98)
	test.ExpectEquality(t, f.mem[0x2346], 0x98)
}

func TestOAM(t *testing.T) {
	f := newFixture()
	f.ppu.WriteRegister(nes.OAMADDR, 0x10)
	f.ppu.WriteRegister(nes.OAMDATA, 0x01)
	f.ppu.WriteRegister(nes.OAMDATA, 0x02)
	f.ppu.WriteRegister(nes.OAMADDR, 0x11)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.OAMDATA), 0x02)

	// reading does not increment
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.OAMDATA), 0x02)
}

// putTile fills every row of the tile in the pattern table with the value
func (f *fixture) putTile(pattern uint16, tile int, value uint8) {
	for row := range 8 {
		a := pattern + uint16(tile)*16 + uint16(row)
		f.mem[a] = 0x00
		f.mem[a+8] = 0x00
		if value&0x01 == 0x01 {
			f.mem[a] = 0xff
		}
		if value&0x02 == 0x02 {
			f.mem[a+8] = 0xff
		}
	}
}

func TestBackground(t *testing.T) {
	f := newFixture()

	f.putTile(0x0000, 1, 1)
	f.mem[0x2000] = 1
	f.mem[0x2002] = 1

	// top-left quadrant uses palette group 2 and top-right uses group 0
	f.mem[0x23c0] = 0b00000010

	f.mem[0x3f00] = 0x0f
	f.mem[0x3f01] = 0x30
	f.mem[0x3f09] = 0x21

	f.ppu.WriteRegister(nes.PPUMASK, 0x08)
	f.frame()

	test.ExpectEquality(t, f.pixel(0, 0), nes.Colours[0x21])
	test.ExpectEquality(t, f.pixel(7, 7), nes.Colours[0x21])
	test.ExpectEquality(t, f.pixel(8, 0), nes.Colours[0x0f])
	test.ExpectEquality(t, f.pixel(16, 0), nes.Colours[0x30])
	test.ExpectEquality(t, f.pixel(0, 8), nes.Colours[0x0f])

	// background disabled shows the backdrop colour
	f.ppu.WriteRegister(nes.PPUMASK, 0x00)
	f.frame()
	test.ExpectEquality(t, f.pixel(0, 0), nes.Colours[0x0f])
}

func TestPatternTableSelect(t *testing.T) {
	f := newFixture()

	f.putTile(0x1000, 0, 3)
	f.mem[0x3f03] = 0x11

	f.ppu.WriteRegister(nes.PPUMASK, 0x08)
	f.frame()
	test.ExpectEquality(t, f.pixel(0, 0), nes.Colours[0x00])

	f.ppu.WriteRegister(nes.PPUCTRL, 0x10)
	f.frame()
	test.ExpectEquality(t, f.pixel(0, 0), nes.Colours[0x11])
}

func TestScroll(t *testing.T) {
	f := newFixture()

	f.putTile(0x0000, 1, 1)
	f.mem[0x2001] = 1
	f.mem[0x3f01] = 0x30

	f.ppu.WriteRegister(nes.PPUMASK, 0x08)
	f.ppu.WriteRegister(nes.PPUSCROLL, 8)
	f.ppu.WriteRegister(nes.PPUSCROLL, 0)
	f.frame()
	test.ExpectEquality(t, f.pixel(0, 0), nes.Colours[0x30])
	test.ExpectEquality(t, f.pixel(8, 0), nes.Colours[0x00])

	// the right edge of the screen shows the second nametable
	f.mem[0x2400] = 1
	f.frame()
	test.ExpectEquality(t, f.pixel(nes.Width-8, 0), nes.Colours[0x30])
}

// putSprite writes the sprite to OAM
func (f *fixture) putSprite(n int, y uint8, tile uint8, attr uint8, x uint8) {
	f.ppu.WriteRegister(nes.OAMADDR, uint8(n*4))
	f.ppu.WriteRegister(nes.OAMDATA, y)
	f.ppu.WriteRegister(nes.OAMDATA, tile)
	f.ppu.WriteRegister(nes.OAMDATA, attr)
	f.ppu.WriteRegister(nes.OAMDATA, x)
}

func TestSprites(t *testing.T) {
	f := newFixture()

	f.putTile(0x0000, 2, 3)
	f.mem[0x3f17] = 0x16
	f.putSprite(5, 10, 2, 0x01, 20)

	// sprite 6 is lower priority than sprite 5
	f.mem[0x3f1f] = 0x2a
	f.putSprite(6, 10, 2, 0x03, 24)

	f.ppu.WriteRegister(nes.PPUMASK, 0x10)
	f.frame()

	test.ExpectEquality(t, f.pixel(20, 10), nes.Colours[0x16])
	test.ExpectEquality(t, f.pixel(27, 17), nes.Colours[0x16])
	test.ExpectEquality(t, f.pixel(28, 17), nes.Colours[0x2a])
	test.ExpectEquality(t, f.pixel(19, 10), nes.Colours[0x00])
	test.ExpectEquality(t, f.pixel(20, 18), nes.Colours[0x00])

	// sprites disabled
	f.ppu.WriteRegister(nes.PPUMASK, 0x00)
	f.frame()
	test.ExpectEquality(t, f.pixel(20, 10), nes.Colours[0x00])
}

func TestSpriteFlip(t *testing.T) {
	f := newFixture()

	// tile 2 has only the top-left pixel set
	f.mem[0x0020] = 0x80
	f.mem[0x3f11] = 0x16

	f.putSprite(0, 0, 2, 0x40|0x80, 0)
	f.ppu.WriteRegister(nes.PPUMASK, 0x10)
	f.frame()

	test.ExpectEquality(t, f.pixel(0, 0), nes.Colours[0x00])
	test.ExpectEquality(t, f.pixel(7, 7), nes.Colours[0x16])
}

func TestSpritePriorityAndSprite0(t *testing.T) {
	f := newFixture()

	// opaque background everywhere
	f.putTile(0x0000, 0, 1)
	f.mem[0x3f01] = 0x30

	f.putTile(0x0000, 2, 1)
	f.mem[0x3f11] = 0x16

	// sprite 0 is behind the background
	f.putSprite(0, 100, 2, 0x20, 100)
	f.putSprite(1, 120, 2, 0x00, 100)

	f.ppu.WriteRegister(nes.PPUMASK, 0x18)

	f.ppu.Clock(99 * nes.DotsPerLine)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x40, 0)
	f.ppu.Clock(2 * nes.DotsPerLine)
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x40, 0x40)

	f.ppu.Clock(nes.DotsPerLine*nes.LinesPerFrame - 101*nes.DotsPerLine)
	test.ExpectEquality(t, f.pixel(100, 100), nes.Colours[0x30])
	test.ExpectEquality(t, f.pixel(100, 120), nes.Colours[0x16])

	// cleared on the pre-render scanline
	test.ExpectEquality(t, f.ppu.ReadRegister(nes.PPUSTATUS)&0x40, 0)
}

func TestPaletteAddress(t *testing.T) {
	test.ExpectEquality(t, nes.PaletteAddress(0x3f00), 0x00)
	test.ExpectEquality(t, nes.PaletteAddress(0x3f10), 0x00)
	test.ExpectEquality(t, nes.PaletteAddress(0x3f14), 0x04)
	test.ExpectEquality(t, nes.PaletteAddress(0x3f1c), 0x0c)
	test.ExpectEquality(t, nes.PaletteAddress(0x3f11), 0x11)
	test.ExpectEquality(t, nes.PaletteAddress(0x3f2f), 0x0f)
	test.ExpectEquality(t, nes.PaletteAddress(0x3fff), 0x1f)
}
