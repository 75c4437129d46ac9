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
	"fmt"

	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	"github.com/whiskers-emu/whiskers/logger"
)

// Frame dimensions and timing.
const (
	Width         = 160
	Height        = 144
	DotsPerLine   = 456
	LinesPerFrame = 154

	searchDots  = 80
	pictureDots = 168
	spriteDots  = 10

	maxSprites = 10
	numOAM     = 40
)

// Palette is the colour of each of the four shades, as ARGB.
var Palette = [4]uint32{0xffe2f3e4, 0xff94e344, 0xff46878f, 0xff332c50}

// sprite is an entry in OAM with the position adjusted to screen
// coordinates.
type sprite struct {
	y    int
	x    int
	tile uint8
	attr uint8
}

// PPU is the DMG picture generator.
type PPU struct {
	mem bus.Bus

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	mode Mode
	dot  int
	line int

	// the dot at which the picture mode ends for the current scanline
	pictureEnd int

	// internal line counter for the window. only advances on scanlines
	// where the window was drawn
	windowLine  int
	windowDrawn bool

	// sprites selected during the search mode
	sprites []sprite

	// the colour index of the background pixel, before palette mapping, for
	// each pixel of the current scanline. used for sprite priority
	bgIndex [Width]uint8

	frame []uint32
	blank []uint32

	// OnFrame is called with the completed frame. the slice is owned by the
	// PPU and should not be retained
	OnFrame func(frame []uint32)
}

// NewPPU is the preferred method of initialisation for the PPU type. The bus
// should map VRAM, OAM and the IF register.
func NewPPU(mem bus.Bus) *PPU {
	ppu := &PPU{
		mem:     mem,
		sprites: make([]sprite, 0, maxSprites),
		frame:   make([]uint32, Width*Height),
		blank:   make([]uint32, Width*Height),
	}
	for i := range ppu.blank {
		ppu.blank[i] = Palette[0]
	}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("LY=%03d dot=%03d %s LCDC=%02x STAT=%02x", ppu.line, ppu.dot, ppu.mode, ppu.lcdc, ppu.ReadRegister(AddrSTAT))
}

// Reset the PPU to the power-on state. The LCD is enabled.
func (ppu *PPU) Reset() {
	ppu.lcdc = lcdcEnable | lcdcTileData | lcdcBGEnable
	ppu.stat = 0
	ppu.scy = 0
	ppu.scx = 0
	ppu.lyc = 0
	ppu.bgp = 0xfc
	ppu.obp0 = 0xff
	ppu.obp1 = 0xff
	ppu.wy = 0
	ppu.wx = 0
	ppu.restart()
	copy(ppu.frame, ppu.blank)
}

// restart the frame from the first dot of the first scanline
func (ppu *PPU) restart() {
	ppu.dot = 0
	ppu.line = 0
	ppu.mode = Search
	ppu.windowLine = 0
	ppu.windowDrawn = false
	ppu.sprites = ppu.sprites[:0]
	ppu.compareLY()
}

// Enabled returns true if the LCD is enabled.
func (ppu *PPU) Enabled() bool {
	return ppu.lcdc&lcdcEnable == lcdcEnable
}

// Mode returns the current mode of the PPU.
func (ppu *PPU) Mode() Mode {
	return ppu.mode
}

// LY returns the current scanline.
func (ppu *PPU) LY() int {
	return ppu.line
}

// Dot returns the current dot in the scanline.
func (ppu *PPU) Dot() int {
	return ppu.dot
}

// Frame returns the frame buffer as it currently stands.
func (ppu *PPU) Frame() []uint32 {
	return ppu.frame
}

// Clock the PPU for the number of dots. Nothing happens if the LCD is
// disabled.
func (ppu *PPU) Clock(dots int) {
	for range dots {
		if !ppu.Enabled() {
			return
		}
		ppu.step()
	}
}

// step advances the PPU by one dot
func (ppu *PPU) step() {
	if ppu.line < Height {
		switch ppu.dot {
		case 0:
			ppu.setMode(Search)
			ppu.search()
		case searchDots:
			ppu.setMode(Picture)
			ppu.pictureEnd = searchDots + pictureDots + len(ppu.sprites)*spriteDots
		case ppu.pictureEnd:
			ppu.setMode(HBlank)
		}

		if ppu.mode == Picture {
			x := ppu.dot - searchDots
			if x < Width {
				ppu.pixel(x)
			}
		}
	} else if ppu.line == Height && ppu.dot == 0 {
		ppu.setMode(VBlank)
		ppu.requestInterrupt(intVBlank)
	}

	ppu.dot++
	if ppu.dot < DotsPerLine {
		return
	}

	ppu.dot = 0
	if ppu.windowDrawn {
		ppu.windowLine++
		ppu.windowDrawn = false
	}

	ppu.line++
	if ppu.line >= LinesPerFrame {
		ppu.line = 0
		ppu.windowLine = 0
		ppu.present(ppu.frame)
	}
	ppu.compareLY()
}

func (ppu *PPU) present(frame []uint32) {
	if ppu.OnFrame != nil {
		ppu.OnFrame(frame)
	}
}

func (ppu *PPU) requestInterrupt(bit uint8) {
	ppu.mem.Write(addrIF, ppu.mem.Read(addrIF)|bit)
}

// setMode changes the mode and requests the STAT interrupt if the mode's
// interrupt is enabled
func (ppu *PPU) setMode(mode Mode) {
	ppu.mode = mode

	var enable uint8
	switch mode {
	case HBlank:
		enable = statHBlankInt
	case VBlank:
		enable = statVBlankInt
	case Search:
		enable = statSearchInt
	}

	if ppu.stat&enable != 0 {
		ppu.requestInterrupt(intSTAT)
	}
}

// compareLY sets the coincidence flag and requests the STAT interrupt on a
// match if it is enabled
func (ppu *PPU) compareLY() {
	if uint8(ppu.line) != ppu.lyc {
		ppu.stat &^= statCoincidence
		return
	}
	ppu.stat |= statCoincidence
	if ppu.stat&statLYCInt == statLYCInt && ppu.Enabled() {
		ppu.requestInterrupt(intSTAT)
	}
}

// search selects up to ten sprites that cover the current scanline. the
// sprites are selected in OAM order
func (ppu *PPU) search() {
	ppu.sprites = ppu.sprites[:0]

	height := 8
	if ppu.lcdc&lcdcSpriteTall == lcdcSpriteTall {
		height = 16
	}

	for i := range numOAM {
		a := uint16(addrOAM + i*4)
		y := int(ppu.mem.Read(a)) - 16
		if ppu.line < y || ppu.line >= y+height {
			continue
		}
		ppu.sprites = append(ppu.sprites, sprite{
			y:    y,
			x:    int(ppu.mem.Read(a+1)) - 8,
			tile: ppu.mem.Read(a + 2),
			attr: ppu.mem.Read(a + 3),
		})
		if len(ppu.sprites) == maxSprites {
			break
		}
	}
}

// tileAddress returns the address of the tile data for the background and
// window
func (ppu *PPU) tileAddress(id uint8) uint16 {
	if ppu.lcdc&lcdcTileData == lcdcTileData {
		return addrTileData0 + uint16(id)*16
	}
	return uint16(int(addrTileData1) + int(int8(id))*16)
}

// tilePixel returns the two bit colour index of the pixel in the tile row
// at address. bit 7 of the row data is the leftmost pixel
func (ppu *PPU) tilePixel(address uint16, x int) uint8 {
	lo := ppu.mem.Read(address)
	hi := ppu.mem.Read(address + 1)
	shift := 7 - uint(x)
	return (hi>>shift)&0x01<<1 | (lo>>shift)&0x01
}

// mapIndex returns the colour index of the pixel at x, y in the 256x256
// tile map at base
func (ppu *PPU) mapIndex(base uint16, x int, y int) uint8 {
	id := ppu.mem.Read(base + uint16(y/8)*32 + uint16(x/8))
	return ppu.tilePixel(ppu.tileAddress(id)+uint16(y%8)*2, x%8)
}

// shade maps a colour index through a palette register
func shade(palette uint8, idx uint8) uint32 {
	return Palette[(palette>>(idx*2))&0x03]
}

// pixel draws the pixel at x on the current scanline
func (ppu *PPU) pixel(x int) {
	var idx uint8

	if ppu.lcdc&lcdcBGEnable == lcdcBGEnable {
		base := uint16(addrMap0)
		if ppu.lcdc&lcdcBGMap == lcdcBGMap {
			base = addrMap1
		}
		bx := (x + int(ppu.scx)) & 0xff
		by := (ppu.line + int(ppu.scy)) & 0xff
		idx = ppu.mapIndex(base, bx, by)

		if ppu.lcdc&lcdcWindowEnable == lcdcWindowEnable && ppu.line >= int(ppu.wy) {
			wx := x - (int(ppu.wx) - 7)
			if wx >= 0 {
				base := uint16(addrMap0)
				if ppu.lcdc&lcdcWindowMap == lcdcWindowMap {
					base = addrMap1
				}
				idx = ppu.mapIndex(base, wx, ppu.windowLine)
				ppu.windowDrawn = true
			}
		}
	}

	ppu.bgIndex[x] = idx
	col := shade(ppu.bgp, idx)

	if ppu.lcdc&lcdcSpriteEnable == lcdcSpriteEnable {
		if c, ok := ppu.spritePixel(x, idx); ok {
			col = c
		}
	}

	ppu.frame[ppu.line*Width+x] = col
}

// spritePixel returns the colour of the sprite pixel at x. the first
// sprite in OAM order with an opaque pixel is used. the second return value
// is false if there is no visible sprite pixel
func (ppu *PPU) spritePixel(x int, bgIdx uint8) (uint32, bool) {
	height := 8
	if ppu.lcdc&lcdcSpriteTall == lcdcSpriteTall {
		height = 16
	}

	for _, s := range ppu.sprites {
		sx := x - s.x
		if sx < 0 || sx >= 8 {
			continue
		}

		sy := ppu.line - s.y
		if s.attr&0x40 == 0x40 {
			sy = height - 1 - sy
		}
		if s.attr&0x20 == 0x20 {
			sx = 7 - sx
		}

		tile := s.tile
		if height == 16 {
			tile &= 0xfe
		}

		idx := ppu.tilePixel(addrTileData0+uint16(tile)*16+uint16(sy)*2, sx)
		if idx == 0 {
			continue
		}

		// behind background colours 1 to 3
		if s.attr&0x80 == 0x80 && bgIdx != 0 {
			return 0, false
		}

		palette := ppu.obp0
		if s.attr&0x10 == 0x10 {
			palette = ppu.obp1
		}
		return shade(palette, idx), true
	}

	return 0, false
}

// ReadRegister returns the value of the register port at address.
func (ppu *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case AddrLCDC:
		return ppu.lcdc
	case AddrSTAT:
		v := 0x80 | ppu.stat&(statWritable|statCoincidence)
		if ppu.Enabled() {
			v |= uint8(ppu.mode)
		}
		return v
	case AddrSCY:
		return ppu.scy
	case AddrSCX:
		return ppu.scx
	case AddrLY:
		return uint8(ppu.line)
	case AddrLYC:
		return ppu.lyc
	case AddrBGP:
		return ppu.bgp
	case AddrOBP0:
		return ppu.obp0
	case AddrOBP1:
		return ppu.obp1
	case AddrWY:
		return ppu.wy
	case AddrWX:
		return ppu.wx
	}
	return 0xff
}

// WriteRegister writes data to the register port at address. LY is read
// only.
func (ppu *PPU) WriteRegister(address uint16, data uint8) {
	switch address {
	case AddrLCDC:
		ppu.writeLCDC(data)
	case AddrSTAT:
		ppu.stat = ppu.stat&^statWritable | data&statWritable
	case AddrSCY:
		ppu.scy = data
	case AddrSCX:
		ppu.scx = data
	case AddrLYC:
		ppu.lyc = data
		ppu.compareLY()
	case AddrBGP:
		ppu.bgp = data
	case AddrOBP0:
		ppu.obp0 = data
	case AddrOBP1:
		ppu.obp1 = data
	case AddrWY:
		ppu.wy = data
	case AddrWX:
		ppu.wx = data
	}
}

func (ppu *PPU) writeLCDC(data uint8) {
	wasEnabled := ppu.Enabled()
	ppu.lcdc = data

	switch {
	case wasEnabled && !ppu.Enabled():
		// the frame buffer is left intact. a blank frame is presented in
		// its place
		logger.Logf(logger.Allow, "DMG PPU", "LCD disabled on LY=%d", ppu.line)
		ppu.restart()
		ppu.mode = HBlank
		ppu.present(ppu.blank)
	case !wasEnabled && ppu.Enabled():
		ppu.restart()
	}
}

// MapPorts maps the PPU register ports into the bus.
func (ppu *PPU) MapPorts(m *bus.Mapped) {
	for _, a := range []uint16{AddrLCDC, AddrSTAT, AddrSCY, AddrSCX, AddrLY, AddrLYC,
		AddrBGP, AddrOBP0, AddrOBP1, AddrWY, AddrWX} {
		var write func(uint8)
		if a != AddrLY {
			write = func(v uint8) { ppu.WriteRegister(a, v) }
		}
		m.MapRegister(a, func() uint8 { return ppu.ReadRegister(a) }, write)
	}
}
