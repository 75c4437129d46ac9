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

package gameboy

import (
	"fmt"

	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/cartridge"
	"github.com/whiskers-emu/whiskers/hardware/cartridge/dmg"
	"github.com/whiskers-emu/whiskers/hardware/clocks"
	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/cpu/sm83"
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	dmgvideo "github.com/whiskers-emu/whiskers/hardware/video/dmg"
	"github.com/whiskers-emu/whiskers/logger"
)

// Addresses of the registers handled by the GameBoy type.
const (
	addrJOYP      = 0xff00
	addrSB        = 0xff01
	addrSC        = 0xff02
	addrDMA       = 0xff46
	addrUnmapBoot = 0xff50
)

// GameBoy is the DMG console.
type GameBoy struct {
	CPU *sm83.CPU
	PPU *dmgvideo.PPU

	// Mem is the bus seen by the CPU
	Mem *bus.Mapped

	// the bus seen by the PPU
	ppuMem *bus.Mapped

	Cart dmg.Mapper

	vram []uint8
	wram []uint8
	oam  []uint8
	hram []uint8

	// the interrupt registers are mapped into both buses
	iflag []uint8
	ie    []uint8

	bios []uint8

	// the boot ROM currently overlaid onto the CPU bus. nil if the boot ROM
	// has been unmapped or if there is no boot ROM
	biosMapped []uint8

	serial   serial
	joypad   joypad
	controls *controls.Set

	onFrame func(frame []uint32, width int, height int)
}

// NewGameBoy is the preferred method of initialisation for the GameBoy
// type. There is no cartridge attached.
func NewGameBoy() *GameBoy {
	gb := &GameBoy{
		vram:  make([]uint8, 0x2000),
		wram:  make([]uint8, 0x2000),
		oam:   make([]uint8, 0xa0),
		hram:  make([]uint8, 0x7f),
		iflag: make([]uint8, 1),
		ie:    make([]uint8, 1),
	}

	gb.ppuMem = bus.NewMapped("DMG PPU")
	gb.ppuMem.SetUnmappedValue(0xff)
	gb.ppuMem.MapArray(gb.vram, 0x8000, len(gb.vram))
	gb.ppuMem.MapArray(gb.oam, 0xfe00, len(gb.oam))
	gb.ppuMem.MapArray(gb.iflag, sm83.AddrIF, 1)
	gb.ppuMem.MapArray(gb.ie, sm83.AddrIE, 1)

	gb.PPU = dmgvideo.NewPPU(gb.ppuMem)
	gb.PPU.OnFrame = func(frame []uint32) {
		if gb.onFrame != nil {
			gb.onFrame(frame, dmgvideo.Width, dmgvideo.Height)
		}
	}

	gb.Mem = bus.NewMapped("DMG CPU")
	gb.Mem.SetUnmappedValue(0xff)
	gb.Mem.LogMisses(logger.Allow)
	gb.CPU = sm83.NewCPU(gb.Mem)

	gb.Mem.MapArray(gb.vram, 0x8000, len(gb.vram))
	gb.Mem.MapArray(gb.wram, 0xc000, 0x3e00)
	gb.Mem.MapArray(gb.oam, 0xfe00, len(gb.oam))

	gb.Mem.MapRegister(addrJOYP, gb.joypad.read(gb), gb.joypad.write)
	gb.Mem.MapRegister(addrSB, gb.serial.readData, gb.serial.writeData)
	gb.Mem.MapRegister(addrSC, gb.serial.readControl, func(v uint8) {
		if gb.serial.writeControl(v) {
			gb.CPU.RequestInterrupt(sm83.IntSerial)
		}
	})

	t := gb.CPU.Timer
	gb.Mem.MapRegister(sm83.AddrDIV, t.DIV, func(_ uint8) { t.ResetDIV() })
	gb.Mem.MapRegister(sm83.AddrTIMA, t.TIMA, t.SetTIMA)
	gb.Mem.MapRegister(sm83.AddrTMA, t.TMA, t.SetTMA)
	gb.Mem.MapRegister(sm83.AddrTAC, t.TAC, t.SetTAC)

	gb.Mem.MapRegister(sm83.AddrIF, func() uint8 {
		return gb.iflag[0] | 0xe0
	}, func(v uint8) {
		gb.iflag[0] = v & 0x1f
	})

	gb.PPU.MapPorts(gb.Mem)
	gb.Mem.MapRegister(addrDMA, nil, gb.dma)
	gb.Mem.MapRegister(addrUnmapBoot, nil, gb.unmapBios)

	gb.Mem.MapArray(gb.hram, 0xff80, len(gb.hram))
	gb.Mem.MapArray(gb.ie, sm83.AddrIE, 1)

	gb.HardReset()

	return gb
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s\n%s", gb.CPU, gb.PPU)
}

// Console returns the name of the console.
func (gb *GameBoy) Console() string {
	return "DMG"
}

// LoadCartridge parses the cartridge data and attaches it to the CPU bus.
// The console is not reset.
func (gb *GameBoy) LoadCartridge(data []uint8) error {
	cart, err := dmg.Load(data)
	if err != nil {
		return curated.Errorf("gameboy: %v", err)
	}
	gb.Mem.UnmapAllBuses()
	gb.Mem.MapBus(cart)
	gb.Cart = cart
	return nil
}

// Title returns the title of the attached cartridge. Returns the empty
// string if there is no cartridge.
func (gb *GameBoy) Title() string {
	if gb.Cart == nil {
		return ""
	}
	return gb.Cart.Title()
}

// Battery returns the RAM of the attached cartridge. Returns nil if there is
// no cartridge or if the cartridge has no battery.
func (gb *GameBoy) Battery() cartridge.Battery {
	if gb.Cart == nil || !gb.Cart.HasBattery() {
		return nil
	}
	return gb.Cart
}

// Bus returns the bus as seen by the CPU.
func (gb *GameBoy) Bus() bus.Bus {
	return gb.Mem
}

// Clock runs one CPU instruction and then advances the PPU and timer by the
// same number of cycles. Returns the number of CPU cycles.
func (gb *GameBoy) Clock() int {
	cycles := gb.CPU.ExecuteInstruction()
	gb.PPU.Clock(cycles * clocks.DMGDotsPerCycle)
	gb.CPU.Timer.Tick(cycles)
	return cycles
}

// HardReset fills RAM with 0xff and resets every component.
func (gb *GameBoy) HardReset() {
	for _, m := range [][]uint8{gb.wram, gb.vram, gb.oam} {
		for i := range m {
			m[i] = 0xff
		}
	}
	clear(gb.hram)
	gb.iflag[0] = 0
	gb.ie[0] = 0
	gb.serial.reset()
	gb.joypad.reset()
	if gb.Cart != nil {
		gb.Cart.Reset()
	}
	gb.CPU.HardReset()
	gb.SoftReset()
}

// SoftReset resets the CPU and PPU. The boot ROM is mapped if there is one.
// Otherwise the CPU is put into the state it has after the boot ROM has
// finished.
func (gb *GameBoy) SoftReset() {
	gb.CPU.SoftReset()
	gb.PPU.Reset()

	if gb.biosMapped != nil {
		gb.Mem.UnmapArray(gb.biosMapped)
		gb.biosMapped = nil
	}

	if gb.bios != nil {
		gb.Mem.PriorityMap(gb.bios, 0x0000)
		gb.biosMapped = gb.bios
	} else {
		gb.CPU.SkipBoot()
	}
}

// IsStopped returns true if the CPU has stopped.
func (gb *GameBoy) IsStopped() bool {
	return gb.CPU.IsStopped()
}

// SetStopped stops or restarts the CPU.
func (gb *GameBoy) SetStopped(stopped bool) {
	gb.CPU.SetStopped(stopped)
}

// ConnectBios sets the boot ROM. It is mapped on the next reset. A nil
// slice removes the boot ROM.
func (gb *GameBoy) ConnectBios(data []uint8) {
	if data == nil {
		gb.bios = nil
		return
	}
	gb.bios = make([]uint8, len(data))
	copy(gb.bios, data)
}

// ConnectControls sets the controls read by the joypad register.
func (gb *GameBoy) ConnectControls(c *controls.Set) {
	gb.controls = c
}

// OnPresentFrame sets the function called with each completed frame.
func (gb *GameBoy) OnPresentFrame(f func(frame []uint32, width int, height int)) {
	gb.onFrame = f
}

// RefreshRate returns the refresh rate in Hz.
func (gb *GameBoy) RefreshRate() float64 {
	return clocks.DMGRefresh
}

// ClockSpeed returns the CPU clock speed in Hz.
func (gb *GameBoy) ClockSpeed() float64 {
	return clocks.DMG * 1000000
}

// FrameWidth returns the width of the frame presented by OnPresentFrame().
func (gb *GameBoy) FrameWidth() int {
	return dmgvideo.Width
}

// FrameHeight returns the height of the frame presented by OnPresentFrame().
func (gb *GameBoy) FrameHeight() int {
	return dmgvideo.Height
}

// SerialOutput returns everything sent through the serial port.
func (gb *GameBoy) SerialOutput() string {
	return gb.serial.output.String()
}

// dma copies 0xa0 bytes to OAM from the page given by v
func (gb *GameBoy) dma(v uint8) {
	src := uint16(v) << 8
	for i := range uint16(len(gb.oam)) {
		gb.oam[i] = gb.Mem.Read(src + i)
	}
}

func (gb *GameBoy) unmapBios(v uint8) {
	if v&0x01 == 0x01 && gb.biosMapped != nil {
		gb.Mem.UnmapArray(gb.biosMapped)
		gb.biosMapped = nil
		logger.Log(logger.Allow, "core", "boot ROM unmapped")
	}
}
