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
	"fmt"
	"io"

	"github.com/whiskers-emu/whiskers/gui/sdlplay"
	"github.com/whiskers-emu/whiskers/modalflag"
	"github.com/whiskers-emu/whiskers/version"
)

// run opens a window and plays the cartridge until the window is closed.
func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	amb := addAmbient(md)
	scale := md.AddFloat64("scale", 3.0, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to the refresh rate of the console")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}
	amb.apply(output)

	s, err := newSession(filename, amb.options())
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s - %s", version.Title(), s.shortName())
	scr, err := sdlplay.NewSdlPlay(title, s.core.FrameWidth(), s.core.FrameHeight(),
		float32(*scale), s.core.RefreshRate(), s.controls)
	if err != nil {
		return err
	}
	defer scr.Destroy()
	scr.SetFPSCap(*fpsCap)

	s.onPresent(scr.Present)

	intChan, stopInt := interrupted()
	defer stopInt()

	for {
		select {
		case <-intChan:
			return s.close()
		default:
		}

		switch scr.Service() {
		case sdlplay.QuitRequest:
			return s.close()
		case sdlplay.ResetRequest:
			s.core.HardReset()
		}

		err = s.runFrame()
		if err != nil {
			if errors.Is(err, errStopped) {
				fmt.Fprintln(output, "console has stopped")
				return s.close()
			}
			_ = s.close()
			return err
		}

		if s.quit() {
			return s.close()
		}
	}
}
