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

package core

import (
	"github.com/whiskers-emu/whiskers/cartridgeloader"
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/cartridge"
	"github.com/whiskers-emu/whiskers/hardware/cartridge/ines"
	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/gameboy"
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	"github.com/whiskers-emu/whiskers/hardware/nes"
	"github.com/whiskers-emu/whiskers/logger"
)

// UnknownFormat is returned by Select() when the console for a cartridge
// cannot be decided.
const UnknownFormat = "core: unknown cartridge format (%s)"

// Core is implemented by each emulated console.
type Core interface {
	// Console returns the short name of the console
	Console() string

	// Clock runs one CPU instruction and brings the rest of the console up
	// to date. Returns the number of CPU cycles used. Zero is returned if
	// the console is stopped
	Clock() int

	HardReset()
	SoftReset()

	IsStopped() bool
	SetStopped(bool)

	// ConnectBios attaches a boot ROM. Consoles without a boot ROM ignore
	// the data
	ConnectBios([]uint8)

	ConnectControls(*controls.Set)

	// OnPresentFrame sets the function called with each completed frame.
	// The frame is ARGB and is owned by the console
	OnPresentFrame(func(frame []uint32, width int, height int))

	// RefreshRate is the number of frames per second
	RefreshRate() float64

	// ClockSpeed is the number of CPU cycles per second
	ClockSpeed() float64

	FrameWidth() int
	FrameHeight() int

	LoadCartridge([]uint8) error

	// Title returns the title stored in the cartridge, if any
	Title() string

	// Battery returns nil if the cartridge has no battery backed RAM
	Battery() cartridge.Battery

	// Bus returns the memory as seen by the CPU
	Bus() bus.Bus
}

// Select loads the named file and returns a Core with the cartridge
// attached. The console is chosen by the file extension or, failing that,
// by the cartridge header.
func Select(filename string) (Core, error) {
	ld := cartridgeloader.NewLoader(filename, cartridgeloader.FormatAuto)
	return SelectLoader(&ld)
}

// SelectLoader is the same as Select() but with a caller prepared Loader.
func SelectLoader(ld *cartridgeloader.Loader) (Core, error) {
	err := ld.Load()
	if err != nil {
		return nil, err
	}

	format := ld.Format
	if format == cartridgeloader.FormatAuto || format == "" {
		if ines.IsINES(ld.Data) {
			format = cartridgeloader.FormatNES
		}
	}

	var c Core

	switch format {
	case cartridgeloader.FormatDMG:
		c = gameboy.NewGameBoy()
	case cartridgeloader.FormatNES:
		c = nes.NewNES()
	default:
		return nil, curated.Errorf(UnknownFormat, ld.ShortName())
	}

	err = c.LoadCartridge(ld.Data)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "core", "%s: %s (%s)", c.Console(), ld.ShortName(), ld.Hash)

	return c, nil
}
