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

package main

import (
	"errors"
	"os"
	"time"

	"github.com/whiskers-emu/whiskers/battery"
	"github.com/whiskers-emu/whiskers/cartridgeloader"
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/core"
	"github.com/whiskers-emu/whiskers/logger"
	"github.com/whiskers-emu/whiskers/macro"
	"github.com/whiskers-emu/whiskers/paths"
)

// errStopped is returned by runFrame() when the console has stopped.
var errStopped = errors.New("console has stopped")

// session is a console with everything attached to it that the host
// provides.
type session struct {
	core     core.Core
	filename string
	controls *controls.Set
	macro    *macro.Macro
	saver    *battery.Saver

	// called with every presented frame
	present []func(frame []uint32, width int, height int)

	frames    int
	presented bool
}

type sessionOptions struct {
	bios    string
	script  string
	saveDir string

	// battery RAM is neither loaded nor saved
	noBattery bool
}

func newSession(filename string, opts sessionOptions) (*session, error) {
	c, err := core.Select(filename)
	if err != nil {
		return nil, err
	}

	s := &session{
		core:     c,
		filename: filename,
		controls: controls.Default(),
	}
	c.ConnectControls(s.controls)

	c.OnPresentFrame(func(frame []uint32, width int, height int) {
		s.frames++
		s.presented = true
		for _, f := range s.present {
			f(frame, width, height)
		}
	})

	if opts.bios != "" {
		data, err := os.ReadFile(opts.bios)
		if err != nil {
			return nil, curated.Errorf("bios: %v", err)
		}
		c.ConnectBios(data)
		c.SoftReset()
	}

	if bat := c.Battery(); bat != nil && !opts.noBattery {
		name := c.Title()
		if name == "" {
			name = s.shortName()
		}
		fn, err := paths.SaveFile(opts.saveDir, name)
		if err != nil {
			return nil, err
		}
		s.saver, err = battery.NewSaver(bat, fn)
		if err != nil {
			return nil, err
		}
	}

	if opts.script != "" {
		s.macro, err = macro.NewMacro(opts.script, s.controls, c.Bus())
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *session) shortName() string {
	return cartridgeloader.NewLoader(s.filename, cartridgeloader.FormatAuto).ShortName()
}

// onPresent adds a function to be called with every presented frame.
func (s *session) onPresent(f func(frame []uint32, width int, height int)) {
	s.present = append(s.present, f)
}

// runFrame clocks the console until a frame is presented. If the console
// does not present a frame within two frames worth of cycles, because the
// screen has been turned off for example, then runFrame() returns anyway.
func (s *session) runFrame() error {
	limit := int(2 * s.core.ClockSpeed() / s.core.RefreshRate())

	s.presented = false
	for cycles := 0; !s.presented && cycles < limit; {
		n := s.core.Clock()
		if n == 0 {
			return errStopped
		}
		cycles += n
	}

	if s.macro != nil {
		err := s.macro.Frame()
		if err != nil {
			logger.Log(logger.Allow, "macro", err)
		}
	}

	if s.saver != nil {
		err := s.saver.Check(time.Now())
		if err != nil {
			logger.Log(logger.Allow, "battery", err)
		}
	}

	return nil
}

// quit returns true if the macro has asked for the emulation to end.
func (s *session) quit() bool {
	return s.macro != nil && s.macro.Quit()
}

func (s *session) close() error {
	if s.macro != nil {
		s.macro.Close()
	}
	if s.saver != nil {
		return s.saver.Save()
	}
	return nil
}
