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
	"strings"
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/nes"
	"github.com/whiskers-emu/whiskers/logger"
	"github.com/whiskers-emu/whiskers/test"
)

const (
	prgSize = 0x4000
	chrSize = 0x2000
)

// image builds an NROM-128 image. the program is placed at 0x8000 and the
// NMI handler at 0x8100
func image(vertical bool, program []uint8, handler []uint8) []uint8 {
	data := make([]uint8, 16+prgSize+chrSize)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, 1, 1})
	if vertical {
		data[6] = 0x01
	}

	prg := data[16 : 16+prgSize]
	copy(prg, program)
	copy(prg[0x100:], handler)

	// NMI, reset and IRQ vectors
	copy(prg[0x3ffa:], []uint8{0x00, 0x81, 0x00, 0x80, 0x00, 0x81})

	return data
}

// idle is a program that loops forever
var idle = []uint8{0x4c, 0x00, 0x80}

func newNES(t *testing.T, data []uint8) *nes.NES {
	t.Helper()
	n := nes.NewNES()
	test.DemandSuccess(t, n.LoadCartridge(data))
	return n
}

func TestConsole(t *testing.T) {
	n := nes.NewNES()
	test.ExpectEquality(t, n.Console(), "NES")
	test.ExpectEquality(t, n.FrameWidth(), 256)
	test.ExpectEquality(t, n.FrameHeight(), 240)
	test.ExpectEquality(t, n.Title(), "")
	test.ExpectSuccess(t, n.Battery() == nil)
}

func TestLoadError(t *testing.T) {
	n := nes.NewNES()
	test.ExpectFailure(t, n.LoadCartridge([]uint8{0x00, 0x01, 0x02}))
	test.ExpectSuccess(t, n.Cart == nil)
}

func TestFrame(t *testing.T) {
	n := newNES(t, image(false, idle, nil))

	var frames int
	n.OnPresentFrame(func(frame []uint32, width int, height int) {
		test.ExpectEquality(t, len(frame), width*height)
		frames++
	})

	var cycles int
	for frames == 0 {
		cycles += n.Clock()
	}

	// 262 lines of 341 dots at three dots per CPU cycle
	test.ExpectApproximate(t, cycles, 29781, 0.001)
}

func TestNMI(t *testing.T) {
	program := []uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0x80, // JMP $8005
	}
	handler := []uint8{
		0xe6, 0x10, // INC $10
		0x40, // RTI
	}
	n := newNES(t, image(false, program, handler))

	var frames int
	n.OnPresentFrame(func(_ []uint32, _ int, _ int) {
		frames++
	})

	for frames < 3 {
		n.Clock()
	}

	// the handler runs once for each vblank
	test.ExpectEquality(t, n.Mem.Read(0x0010), 3)
}

func TestRAMMirror(t *testing.T) {
	n := newNES(t, image(false, idle, nil))
	n.Mem.Write(0x0012, 0x34)
	test.ExpectEquality(t, n.Mem.Read(0x0812), 0x34)
	test.ExpectEquality(t, n.Mem.Read(0x1812), 0x34)
	n.Mem.Write(0x1fff, 0x56)
	test.ExpectEquality(t, n.Mem.Read(0x07ff), 0x56)
}

func TestUnclaimedWrite(t *testing.T) {
	n := newNES(t, image(false, idle, nil))

	logger.Clear()
	defer logger.Clear()
	w := &strings.Builder{}

	// the audio registers are not emulated
	n.Mem.Write(0x4000, 0x30)
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "bus: NES CPU: unclaimed write 0x4000 = 0x30\n")
}

// vramWrite writes to VRAM through the CPU ports
func vramWrite(n *nes.NES, address uint16, data uint8) {
	n.Mem.Write(0x2006, uint8(address>>8))
	n.Mem.Write(0x2006, uint8(address))
	n.Mem.Write(0x2007, data)
}

// vramRead reads VRAM through the CPU ports. the first read fills the buffer
func vramRead(n *nes.NES, address uint16) uint8 {
	n.Mem.Write(0x2006, uint8(address>>8))
	n.Mem.Write(0x2006, uint8(address))
	n.Mem.Read(0x2007)
	n.Mem.Write(0x2006, uint8(address>>8))
	n.Mem.Write(0x2006, uint8(address))
	return n.Mem.Read(0x2007)
}

func TestMirroring(t *testing.T) {
	n := newNES(t, image(false, idle, nil))
	vramWrite(n, 0x2005, 0x55)
	test.ExpectEquality(t, vramRead(n, 0x2405), 0x55)
	test.ExpectInequality(t, vramRead(n, 0x2805), 0x55)

	n = newNES(t, image(true, idle, nil))
	vramWrite(n, 0x2005, 0x55)
	test.ExpectEquality(t, vramRead(n, 0x2805), 0x55)
	test.ExpectInequality(t, vramRead(n, 0x2405), 0x55)

	// nametable area above 0x3000 mirrors 0x2000
	test.ExpectEquality(t, vramRead(n, 0x3005), 0x55)
}

func TestPalette(t *testing.T) {
	n := newNES(t, image(false, idle, nil))

	// the port registers repeat every eight bytes
	n.Mem.Write(0x3ffe, 0x3f)
	n.Mem.Write(0x3ffe, 0x10)
	n.Mem.Write(0x3fff, 0xe1)

	n.Mem.Write(0x2006, 0x3f)
	n.Mem.Write(0x2006, 0x00)
	test.ExpectEquality(t, n.Mem.Read(0x2007), 0x21)
}

func TestCHRRAM(t *testing.T) {
	data := image(false, idle, nil)
	data[5] = 0
	data = data[:16+prgSize]
	n := newNES(t, data)

	vramWrite(n, 0x0123, 0x99)
	test.ExpectEquality(t, vramRead(n, 0x0123), 0x99)
}

func TestDMA(t *testing.T) {
	program := []uint8{
		0xa9, 0x02, // LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
		0x4c, 0x05, 0x80, // JMP $8005
	}
	n := newNES(t, image(false, program, nil))

	for i := range uint16(256) {
		n.Mem.Write(0x0200+i, uint8(i)^0xa5)
	}

	test.ExpectEquality(t, n.Clock(), 2)
	test.ExpectEquality(t, n.Clock(), 4+513)

	n.Mem.Write(0x2003, 0x05)
	test.ExpectEquality(t, n.Mem.Read(0x2004), 0x05^0xa5)
	n.Mem.Write(0x2003, 0xff)
	test.ExpectEquality(t, n.Mem.Read(0x2004), 0xff^0xa5)

	// the stall is only added once
	test.ExpectEquality(t, n.Clock(), 3)
}

func TestController(t *testing.T) {
	n := newNES(t, image(false, idle, nil))
	ctrls := controls.Default()
	n.ConnectControls(ctrls)

	ctrls.Press("X")
	ctrls.Press("Down")

	n.Mem.Write(0x4016, 0x01)
	n.Mem.Write(0x4016, 0x00)

	// A, B, Select, Start, Up, Down, Left, Right
	expected := []uint8{1, 0, 0, 0, 0, 1, 0, 0}
	for i, v := range expected {
		test.ExpectEquality(t, n.Mem.Read(0x4016), v, i)
	}

	// exhausted shift register
	test.ExpectEquality(t, n.Mem.Read(0x4016), 1)

	// second controller is not connected
	for range 8 {
		test.ExpectEquality(t, n.Mem.Read(0x4017), 0)
	}

	// while the strobe is high the first button is returned continuously
	ctrls.Release("X")
	n.Mem.Write(0x4016, 0x01)
	test.ExpectEquality(t, n.Mem.Read(0x4016), 0)
	test.ExpectEquality(t, n.Mem.Read(0x4016), 0)
	ctrls.Press("X")
	test.ExpectEquality(t, n.Mem.Read(0x4016), 1)
}

func TestStopped(t *testing.T) {
	n := newNES(t, image(false, idle, nil))
	n.SetStopped(true)
	test.ExpectSuccess(t, n.IsStopped())
	test.ExpectEquality(t, n.Clock(), 0)
	n.SetStopped(false)
	test.ExpectInequality(t, n.Clock(), 0)
}

func TestReset(t *testing.T) {
	n := newNES(t, image(false, idle, nil))
	n.Mem.Write(0x0010, 0x42)
	n.SoftReset()
	test.ExpectEquality(t, n.Mem.Read(0x0010), 0x42)
	n.HardReset()
	test.ExpectEquality(t, n.Mem.Read(0x0010), 0)
	test.ExpectEquality(t, n.Clock(), 3)
}
