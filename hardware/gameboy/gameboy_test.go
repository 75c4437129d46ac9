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

package gameboy_test

import (
	"strings"
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/gameboy"
	"github.com/whiskers-emu/whiskers/logger"
	"github.com/whiskers-emu/whiskers/test"
)

// makeCartridge returns a 32k image with no mapper. the program is placed
// at the entry point (0x0100)
func makeCartridge(program ...uint8) []uint8 {
	data := make([]uint8, 0x8000)
	copy(data[0x0134:], "WHISKERS")
	copy(data[0x0100:], program)
	return data
}

// a program that loops forever without stopping the CPU
var idleLoop = []uint8{
	0x00,             // NOP
	0xc3, 0x00, 0x01, // JP 0100
}

func newGameBoy(t *testing.T, program ...uint8) *gameboy.GameBoy {
	t.Helper()
	gb := gameboy.NewGameBoy()
	test.DemandSuccess(t, gb.LoadCartridge(makeCartridge(program...)))
	gb.HardReset()
	return gb
}

func TestFrame(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)
	test.ExpectEquality(t, gb.Title(), "WHISKERS")
	test.ExpectEquality(t, gb.CPU.PC, 0x0100)

	var frames int
	var width, height, size int
	gb.OnPresentFrame(func(frame []uint32, w int, h int) {
		frames++
		width = w
		height = h
		size = len(frame)
	})

	// one frame of dots at two dots per cycle
	var cycles int
	for cycles < 456*154/2 {
		c := gb.Clock()
		test.DemandSuccess(t, c > 0)
		cycles += c
	}

	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, width, 160)
	test.ExpectEquality(t, height, 144)
	test.ExpectEquality(t, size, 160*144)
	test.ExpectEquality(t, gb.FrameWidth(), width)
	test.ExpectEquality(t, gb.FrameHeight(), height)
}

func TestVBlankInterrupt(t *testing.T) {
	program := []uint8{
		0xfb,             // EI
		0x76,             // HALT
		0xc3, 0x01, 0x01, // JP 0101
	}
	handler := []uint8{
		0x3e, 0x42,       // LD A,42
		0xea, 0x00, 0xc0, // LD (c000),A
		0xd9,             // RETI
	}

	data := makeCartridge(program...)
	copy(data[0x0040:], handler)

	gb := gameboy.NewGameBoy()
	test.DemandSuccess(t, gb.LoadCartridge(data))
	gb.HardReset()
	gb.Mem.Write(0xffff, 0x01)

	for range 20000 {
		gb.Clock()
		if gb.Mem.Read(0xc000) == 0x42 {
			break
		}
	}
	test.ExpectEquality(t, gb.Mem.Read(0xc000), 0x42)
	test.ExpectEquality(t, gb.PPU.LY(), 144)

	// interrupt flag has been acknowledged
	test.ExpectEquality(t, gb.Mem.Read(0xff0f)&0x01, 0)
}

func TestMemoryMap(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)

	// hard reset fills WRAM
	test.ExpectEquality(t, gb.Mem.Read(0xc000), 0xff)

	// echo RAM
	gb.Mem.Write(0xc123, 0x12)
	test.ExpectEquality(t, gb.Mem.Read(0xe123), 0x12)
	gb.Mem.Write(0xfdff, 0x34)
	test.ExpectEquality(t, gb.Mem.Read(0xddff), 0x34)

	gb.Mem.Write(0xff80, 0x56)
	test.ExpectEquality(t, gb.Mem.Read(0xff80), 0x56)

	// ROM is not writable and there is no cartridge RAM
	gb.Mem.Write(0x0100, 0x99)
	test.ExpectEquality(t, gb.Mem.Read(0x0100), 0x00)
	test.ExpectEquality(t, gb.Mem.Read(0xa000), 0xff)

	// unused area
	test.ExpectEquality(t, gb.Mem.Read(0xfea0), 0xff)

	// writes to the unused area are logged
	logger.Clear()
	defer logger.Clear()
	w := &strings.Builder{}
	gb.Mem.Write(0xfea0, 0x12)
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "bus: DMG CPU: unclaimed write 0xfea0 = 0x12\n")
}

func TestInterruptRegisters(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)

	gb.Mem.Write(0xff0f, 0xff)
	test.ExpectEquality(t, gb.Mem.Read(0xff0f), 0xff)
	gb.Mem.Write(0xff0f, 0x00)
	test.ExpectEquality(t, gb.Mem.Read(0xff0f), 0xe0)

	gb.CPU.RequestInterrupt(2)
	test.ExpectEquality(t, gb.Mem.Read(0xff0f), 0xe4)
}

func TestSerial(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)

	for _, c := range []byte("ok\n") {
		gb.Mem.Write(0xff01, c)
		gb.Mem.Write(0xff02, 0x81)
	}
	test.ExpectEquality(t, gb.SerialOutput(), "ok\n")
	test.ExpectEquality(t, gb.Mem.Read(0xff0f)&0x08, 0x08)

	// transfer has completed
	test.ExpectEquality(t, gb.Mem.Read(0xff02)&0x80, 0)
	test.ExpectEquality(t, gb.Mem.Read(0xff01), 0xff)

	// not a transfer
	gb.Mem.Write(0xff01, 'x')
	gb.Mem.Write(0xff02, 0x01)
	test.ExpectEquality(t, gb.SerialOutput(), "ok\n")
}

func TestTimerRegisters(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)

	gb.Mem.Write(0xff04, 0x12)
	test.ExpectEquality(t, gb.Mem.Read(0xff04), 0x00)

	// 256 cycles per DIV increment
	gb.CPU.Timer.Tick(256)
	test.ExpectEquality(t, gb.Mem.Read(0xff04), 0x01)

	gb.Mem.Write(0xff06, 0xf0)
	test.ExpectEquality(t, gb.Mem.Read(0xff06), 0xf0)
	gb.Mem.Write(0xff07, 0x05)
	test.ExpectEquality(t, gb.Mem.Read(0xff07), 0xfd)

	// TIMA increments every 16 cycles and overflows to TMA
	gb.Mem.Write(0xff05, 0xff)
	gb.CPU.Timer.Tick(16)
	test.ExpectEquality(t, gb.Mem.Read(0xff05), 0xf0)
	test.ExpectEquality(t, gb.Mem.Read(0xff0f)&0x04, 0x04)
}

func TestDMA(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)

	for i := range uint16(0xa0) {
		gb.Mem.Write(0xc100+i, uint8(i))
	}
	gb.Mem.Write(0xff46, 0xc1)

	test.ExpectEquality(t, gb.Mem.Read(0xfe00), 0x00)
	test.ExpectEquality(t, gb.Mem.Read(0xfe9f), 0x9f)
}

func TestBootROM(t *testing.T) {
	gb := gameboy.NewGameBoy()
	test.DemandSuccess(t, gb.LoadCartridge(makeCartridge(idleLoop...)))

	bios := make([]uint8, 0x100)
	for i := range bios {
		bios[i] = 0x31
	}
	gb.ConnectBios(bios)
	gb.HardReset()

	test.ExpectEquality(t, gb.CPU.PC, 0x0000)
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x31)
	test.ExpectEquality(t, gb.Mem.Read(0x0100), 0x00)

	// writing zero does not unmap
	gb.Mem.Write(0xff50, 0x00)
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x31)

	gb.Mem.Write(0xff50, 0x01)
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x00)

	// remapped on reset
	gb.SoftReset()
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x31)

	// removed
	gb.ConnectBios(nil)
	gb.SoftReset()
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x00)
	test.ExpectEquality(t, gb.CPU.PC, 0x0100)
}

func TestJoypad(t *testing.T) {
	gb := newGameBoy(t, idleLoop...)
	c := controls.Default()
	gb.ConnectControls(c)

	c.Press("Right")
	c.Press("Return")

	// nothing selected
	gb.Mem.Write(0xff00, 0x30)
	test.ExpectEquality(t, gb.Mem.Read(0xff00), 0xff)

	// directions
	gb.Mem.Write(0xff00, 0x20)
	test.ExpectEquality(t, gb.Mem.Read(0xff00), 0xee)

	// buttons
	gb.Mem.Write(0xff00, 0x10)
	test.ExpectEquality(t, gb.Mem.Read(0xff00), 0xd7)
}

func TestStopped(t *testing.T) {
	gb := newGameBoy(t, 0x18, 0xfe) // JR -2
	test.ExpectInequality(t, gb.Clock(), 0)
	test.ExpectSuccess(t, gb.IsStopped())
	test.ExpectEquality(t, gb.Clock(), 0)

	gb.SetStopped(false)
	test.ExpectFailure(t, gb.IsStopped())
}

func TestLoadError(t *testing.T) {
	gb := gameboy.NewGameBoy()
	test.ExpectFailure(t, gb.LoadCartridge(make([]uint8, 0x100)))
	test.ExpectEquality(t, gb.Title(), "")
	test.ExpectSuccess(t, gb.Battery() == nil)
}
