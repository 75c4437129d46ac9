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

package nes

import (
	"fmt"

	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
)

// Frame dimensions and timing.
const (
	Width         = 256
	Height        = 240
	DotsPerLine   = 341
	LinesPerFrame = 262

	vblankLine    = 241
	preRenderLine = 261

	numSprites = 64
)

// PPU is the 6502 console picture generator.
type PPU struct {
	mem bus.Bus

	ctrl   uint8
	mask   uint8
	status uint8

	// the last value written to any port
	latch uint8

	oam     [numSprites * 4]uint8
	oamAddr uint8

	scrollX uint8
	scrollY uint8

	vramAddr   uint16
	tempAddr   uint16
	toggle     bool
	readBuffer uint8

	dot  int
	line int

	frame []uint32

	// OnFrame is called with the completed frame. the slice is owned by the
	// PPU and should not be retained
	OnFrame func(frame []uint32)

	// OnNMI is called when the PPU raises the non-maskable interrupt
	OnNMI func()
}

// NewPPU is the preferred method of initialisation for the PPU type. The bus
// should cover the PPU address space from 0x0000 to 0x3fff.
func NewPPU(mem bus.Bus) *PPU {
	ppu := &PPU{
		mem:   mem,
		frame: make([]uint32, Width*Height),
	}
	ppu.HardReset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("SL=%03d dot=%03d CTRL=%02x MASK=%02x STATUS=%02x ADDR=%04x",
		ppu.line, ppu.dot, ppu.ctrl, ppu.mask, ppu.status, ppu.vramAddr)
}

// SoftReset clears the control and scroll registers and restarts the frame.
func (ppu *PPU) SoftReset() {
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.scrollX = 0
	ppu.scrollY = 0
	ppu.toggle = false
	ppu.readBuffer = 0
	ppu.dot = 0
	ppu.line = 0
}

// HardReset also clears the status, OAM and address registers.
func (ppu *PPU) HardReset() {
	ppu.SoftReset()
	ppu.status = 0
	ppu.latch = 0
	ppu.oamAddr = 0
	ppu.vramAddr = 0
	ppu.tempAddr = 0
	clear(ppu.oam[:])
	clear(ppu.frame)
}

// Scanline returns the current scanline.
func (ppu *PPU) Scanline() int {
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

// WriteOAM writes directly to OAM. Used by OAM DMA.
func (ppu *PPU) WriteOAM(data uint8) {
	ppu.WriteRegister(OAMDATA, data)
}

func (ppu *PPU) nmi() {
	if ppu.OnNMI != nil {
		ppu.OnNMI()
	}
}

// Clock the PPU for the number of dots.
func (ppu *PPU) Clock(dots int) {
	for range dots {
		ppu.step()
	}
}

func (ppu *PPU) step() {
	switch {
	case ppu.line < Height:
		if ppu.dot >= 1 && ppu.dot <= Width {
			ppu.pixel(ppu.dot - 1)
		}
	case ppu.line == vblankLine && ppu.dot == 1:
		ppu.status |= statusVBlank
		if ppu.ctrl&ctrlNMI == ctrlNMI {
			ppu.nmi()
		}
	case ppu.line == preRenderLine && ppu.dot == 1:
		ppu.status &^= statusVBlank | statusSprite0
	}

	ppu.dot++
	if ppu.dot < DotsPerLine {
		return
	}
	ppu.dot = 0

	ppu.line++
	if ppu.line >= LinesPerFrame {
		ppu.line = 0
		if ppu.OnFrame != nil {
			ppu.OnFrame(ppu.frame)
		}
	}
}

// pixel draws the pixel at x on the current scanline
func (ppu *PPU) pixel(x int) {
	var bgValue uint8
	var bgColour uint16

	if ppu.mask&maskBG == maskBG {
		bgValue, bgColour = ppu.background(x)
	}

	colour := ppu.mem.Read(0x3f00 + bgColour)

	if ppu.mask&maskSprites == maskSprites {
		if c, ok := ppu.sprite(x, bgValue); ok {
			colour = c
		}
	}

	ppu.frame[ppu.line*Width+x] = Colours[colour&0x3f]
}

// patternPixel returns the two bit value of the pixel in the tile row. the
// high bit plane is eight bytes after the low plane
func (ppu *PPU) patternPixel(address uint16, column int) uint8 {
	shift := 7 - uint(column)
	lo := (ppu.mem.Read(address) >> shift) & 0x01
	hi := (ppu.mem.Read(address+8) >> shift) & 0x01
	return hi<<1 | lo
}

// background returns the two bit pixel value and the palette RAM offset
// for the background pixel at x. the palette offset is zero for transparent
// pixels
func (ppu *PPU) background(x int) (uint8, uint16) {
	// position in the 512x480 space of the four logical nametables
	px := x + int(ppu.scrollX) + int(ppu.ctrl&0x01)*Width
	py := ppu.line + int(ppu.scrollY) + int(ppu.ctrl>>1&0x01)*Height
	px %= Width * 2
	py %= Height * 2

	nt := uint16(px/Width + py/Height*2)
	px %= Width
	py %= Height

	tileX := uint16(px / 8)
	tileY := uint16(py / 8)
	base := 0x2000 + nt*0x400

	id := uint16(ppu.mem.Read(base + tileY*32 + tileX))

	pattern := uint16(0)
	if ppu.ctrl&ctrlBGPattern == ctrlBGPattern {
		pattern = 0x1000
	}

	v := ppu.patternPixel(pattern+id*16+uint16(py%8), px%8)
	if v == 0 {
		return 0, 0
	}

	attr := ppu.mem.Read(base | 0x03c0 | tileX>>2 | tileY>>2<<3)
	if tileY&0x02 == 0x02 {
		attr >>= 4
	}
	if tileX&0x02 == 0x02 {
		attr >>= 2
	}
	group := uint16(attr & 0x03)

	return v, group*4 + uint16(v)
}

// sprite returns the colour of the sprite pixel at x. the lowest numbered
// sprite with an opaque pixel is used. the second return value is false if
// there is no visible sprite pixel
func (ppu *PPU) sprite(x int, bgValue uint8) (uint8, bool) {
	pattern := uint16(0)
	if ppu.ctrl&ctrlSpritePattern == ctrlSpritePattern {
		pattern = 0x1000
	}

	for i := range numSprites {
		y := int(ppu.oam[i*4])
		if y >= 0xef {
			continue
		}
		tile := uint16(ppu.oam[i*4+1])
		attr := ppu.oam[i*4+2]
		sx := int(ppu.oam[i*4+3])

		row := ppu.line - y
		column := x - sx
		if row < 0 || row >= 8 || column < 0 || column >= 8 {
			continue
		}

		if attr&attrFlipV == attrFlipV {
			row = 7 - row
		}
		if attr&attrFlipH == attrFlipH {
			column = 7 - column
		}

		v := ppu.patternPixel(pattern+tile*16+uint16(row), column)
		if v == 0 {
			continue
		}

		if i == 0 && bgValue != 0 && x != Width-1 {
			ppu.status |= statusSprite0
		}

		if attr&attrPriority == attrPriority && bgValue != 0 {
			return 0, false
		}

		return ppu.mem.Read(0x3f10 + uint16(attr&attrPalette)*4 + uint16(v)), true
	}

	return 0, false
}
