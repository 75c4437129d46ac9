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

	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/cartridge"
	"github.com/whiskers-emu/whiskers/hardware/cartridge/ines"
	"github.com/whiskers-emu/whiskers/hardware/clocks"
	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502"
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	nesvideo "github.com/whiskers-emu/whiskers/hardware/video/nes"
	"github.com/whiskers-emu/whiskers/logger"
)

// Addresses of the registers handled by the NES type.
const (
	addrOAMDMA = 0x4014
	addrJOY1   = 0x4016
	addrJOY2   = 0x4017
)

// the number of cycles the CPU is suspended for during OAM DMA
const dmaCycles = 513

// NES is the 6502 console.
type NES struct {
	CPU *mos6502.CPU
	PPU *nesvideo.PPU

	// Mem is the bus seen by the CPU
	Mem *bus.Mapped

	// PPUMem is the bus seen by the PPU
	PPUMem *PPUBus

	Cart ines.Mapper

	ram []uint8

	strobe   bool
	pad1     controller
	pad2     controller
	controls *controls.Set

	// cycles to add to the result of the next call to Clock()
	stall int

	onFrame func(frame []uint32, width int, height int)
}

// ports maps the eight PPU registers into the CPU bus
type ports struct {
	ppu *nesvideo.PPU
}

func (p ports) Read(address uint16) uint8 {
	return p.ppu.ReadRegister(int(address & 0x07))
}

func (p ports) Write(address uint16, data uint8) {
	p.ppu.WriteRegister(int(address&0x07), data)
}

func (p ports) MapsRead(address uint16) bool {
	return address >= 0x2000 && address < 0x4000
}

func (p ports) MapsWrite(address uint16) bool {
	return p.MapsRead(address)
}

// NewNES is the preferred method of initialisation for the NES type. There
// is no cartridge attached.
func NewNES() *NES {
	n := &NES{
		ram:    make([]uint8, 0x800),
		PPUMem: &PPUBus{},
	}

	n.PPU = nesvideo.NewPPU(n.PPUMem)
	n.PPU.OnFrame = func(frame []uint32) {
		if n.onFrame != nil {
			n.onFrame(frame, nesvideo.Width, nesvideo.Height)
		}
	}

	n.Mem = bus.NewMapped("NES CPU")
	n.Mem.SetUnmappedValue(0x00)
	n.Mem.LogMisses(logger.Allow)
	n.Mem.MapArray(n.ram, 0x0000, 0x2000)
	n.Mem.MapBus(ports{ppu: n.PPU})
	n.Mem.MapRegister(addrOAMDMA, nil, n.dma)
	n.Mem.MapRegister(addrJOY1, func() uint8 {
		return n.readController(&n.pad1)
	}, n.writeStrobe)
	n.Mem.MapRegister(addrJOY2, func() uint8 {
		return n.readController(&n.pad2)
	}, nil)

	n.CPU = mos6502.NewCPU(n.Mem)
	n.PPU.OnNMI = n.CPU.NMI

	n.HardReset()

	return n
}

func (n *NES) String() string {
	return fmt.Sprintf("%s\n%s", n.CPU, n.PPU)
}

// Console returns the name of the console.
func (n *NES) Console() string {
	return "NES"
}

// LoadCartridge parses the iNES data and attaches the cartridge to both
// buses. The console is not reset.
func (n *NES) LoadCartridge(data []uint8) error {
	cart, err := ines.Load(data)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	if n.Cart != nil {
		n.Mem.UnmapBus(n.Cart)
	}
	n.Mem.MapBus(cart)
	n.PPUMem.cart = cart
	n.Cart = cart
	return nil
}

// Title returns the empty string. iNES images do not carry a title.
func (n *NES) Title() string {
	return ""
}

// Battery returns the PRG RAM of the attached cartridge. Returns nil if
// there is no cartridge or if the cartridge has no battery.
func (n *NES) Battery() cartridge.Battery {
	if n.Cart == nil || !n.Cart.HasBattery() {
		return nil
	}
	return n.Cart
}

// Bus returns the bus as seen by the CPU.
func (n *NES) Bus() bus.Bus {
	return n.Mem
}

// Clock runs one CPU instruction and then advances the PPU three dots for
// every CPU cycle. Returns the number of CPU cycles, including any cycles
// used by OAM DMA.
func (n *NES) Clock() int {
	cycles := n.CPU.ExecuteInstruction()
	cycles += n.stall
	n.stall = 0
	n.PPU.Clock(cycles * clocks.NESDotsPerCycle)
	return cycles
}

// HardReset resets every component and clears RAM.
func (n *NES) HardReset() {
	clear(n.ram)
	n.PPUMem.reset()
	n.CPU.HardReset()
	n.PPU.HardReset()
	n.strobe = false
	n.stall = 0
	n.pad1.reset()
	n.pad2.reset()
	if n.Cart != nil {
		n.Cart.Reset()
	}
}

// SoftReset resets the CPU and PPU.
func (n *NES) SoftReset() {
	n.CPU.SoftReset()
	n.PPU.SoftReset()
	n.strobe = false
	n.stall = 0
}

// IsStopped returns true if the CPU has stopped.
func (n *NES) IsStopped() bool {
	return n.CPU.IsStopped()
}

// SetStopped stops or restarts the CPU.
func (n *NES) SetStopped(stopped bool) {
	n.CPU.SetStopped(stopped)
}

// ConnectBios is accepted and ignored. The console has no boot ROM.
func (n *NES) ConnectBios(_ []uint8) {
}

// ConnectControls sets the controls read by the first controller. The
// second controller is not connected.
func (n *NES) ConnectControls(c *controls.Set) {
	n.controls = c
}

// OnPresentFrame sets the function called with each completed frame.
func (n *NES) OnPresentFrame(f func(frame []uint32, width int, height int)) {
	n.onFrame = f
}

// RefreshRate returns the refresh rate in Hz.
func (n *NES) RefreshRate() float64 {
	return clocks.NESRefresh
}

// ClockSpeed returns the CPU clock speed in Hz.
func (n *NES) ClockSpeed() float64 {
	return clocks.NES * 1000000
}

// FrameWidth returns the width of the frame presented by OnPresentFrame().
func (n *NES) FrameWidth() int {
	return nesvideo.Width
}

// FrameHeight returns the height of the frame presented by OnPresentFrame().
func (n *NES) FrameHeight() int {
	return nesvideo.Height
}

// dma copies 256 bytes from the page given by v into OAM
func (n *NES) dma(v uint8) {
	src := uint16(v) << 8
	for i := range uint16(256) {
		n.PPU.WriteOAM(n.Mem.Read(src + i))
	}
	n.stall += dmaCycles
}

func (n *NES) writeStrobe(v uint8) {
	strobe := v&0x01 == 0x01

	// the button state is latched while the strobe is high and on the
	// falling edge
	if strobe || n.strobe {
		n.pad1.latch(n.controls)
		n.pad2.latch(nil)
	}
	n.strobe = strobe
}

func (n *NES) readController(c *controller) uint8 {
	if n.strobe {
		if c == &n.pad1 {
			c.latch(n.controls)
		} else {
			c.latch(nil)
		}
	}
	return c.read()
}
