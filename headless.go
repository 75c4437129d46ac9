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
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/digest"
	"github.com/whiskers-emu/whiskers/modalflag"
	"github.com/whiskers-emu/whiskers/performance"
	"github.com/whiskers-emu/whiskers/screenshot"
	"github.com/whiskers-emu/whiskers/terminal"
)

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	amb := addAmbient(md)
	frames := md.AddInt("frames", 60, "number of frames to run (0 runs until quit)")
	shot := md.AddString("screenshot", "", "save the last frame as a BMP file")
	viz := md.AddString("memviz", "", "write a graph of the console to a DOT file")
	useTerm := md.AddBool("term", false, "monitor the emulation in the terminal")
	profile := md.AddString("profile", "", "write a CPU profile to file")

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

	dig := digest.NewVideo()
	s.onPresent(dig.Frame)

	var last []uint32
	s.onPresent(func(frame []uint32, _ int, _ int) {
		last = frame
	})

	var mon *terminal.Monitor
	if *useTerm {
		mon, err = terminal.NewMonitor(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer mon.CleanUp()
	}

	intChan, stopInt := interrupted()
	defer stopInt()

	start := time.Now()
	err = performance.RunProfiled(*profile, func() error {
		return runHeadless(s, *frames, mon, intChan)
	})
	if err != nil {
		_ = s.close()
		return err
	}
	elapsed := time.Since(start)

	err = s.close()
	if err != nil {
		return err
	}

	fps, accuracy := performance.CalcFPS(s.core.RefreshRate(), s.frames, elapsed.Seconds())
	fmt.Fprintf(output, "%s: %d frames in %.2fs (%.1f fps, %.1f%%)\n", s.core.Console(), s.frames, elapsed.Seconds(), fps, accuracy)
	fmt.Fprintf(output, "digest: %s\n", dig.Hash())

	if *shot != "" {
		if last == nil {
			return curated.Errorf("screenshot: no frame presented")
		}
		err = screenshot.Save(*shot, last, s.core.FrameWidth(), s.core.FrameHeight())
		if err != nil {
			return err
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, s.core)
		err = f.Close()
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	return nil
}

// runHeadless runs the session for the number of frames. The monitor can be
// nil. A frames value of zero runs until the monitor, the script or an
// interrupt asks to quit.
func runHeadless(s *session, frames int, mon *terminal.Monitor, intChan <-chan os.Signal) error {
	var commands <-chan terminal.Command
	if mon != nil {
		commands = mon.Commands()
	}

	var paused bool
	var step bool

	fpsStart := time.Now()
	fpsFrames := s.frames
	var fps float64

	for frames == 0 || s.frames < frames {
		if paused && !step {
			select {
			case <-intChan:
				return nil
			case c := <-commands:
				switch c {
				case terminal.Pause:
					paused = false
				case terminal.Step:
					step = true
				case terminal.Reset:
					s.core.HardReset()
				case terminal.Quit:
					return nil
				}
			}
			continue // for loop
		}
		step = false

		select {
		case <-intChan:
			return nil
		case c := <-commands:
			switch c {
			case terminal.Pause:
				paused = true
			case terminal.Reset:
				s.core.HardReset()
			case terminal.Quit:
				return nil
			}
		default:
		}

		err := s.runFrame()
		if err != nil {
			if errors.Is(err, errStopped) {
				return nil
			}
			return err
		}

		if s.quit() {
			return nil
		}

		if mon != nil {
			if d := time.Since(fpsStart); d >= time.Second {
				fps, _ = performance.CalcFPS(s.core.RefreshRate(), s.frames-fpsFrames, d.Seconds())
				fpsStart = time.Now()
				fpsFrames = s.frames
			}
			mon.Status(s.core.Console(), s.frames, fps, paused)
		}
	}

	return nil
}

// digestMode prints the digest of the frames and nothing else.
func digestMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	bios := md.AddString("bios", "", "boot ROM file (DMG only)")
	frames := md.AddInt("frames", 60, "number of frames to run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	hash, err := digestFrames(filename, *bios, *frames)
	if err != nil {
		return err
	}
	fmt.Fprintln(output, hash)

	return nil
}

// digestFrames runs the cartridge for the number of frames and returns the
// chained digest. Battery RAM is neither loaded nor saved.
func digestFrames(filename string, bios string, frames int) (string, error) {
	s, err := newSession(filename, sessionOptions{bios: bios, noBattery: true})
	if err != nil {
		return "", err
	}

	dig := digest.NewVideo()
	s.onPresent(dig.Frame)

	for s.frames < frames {
		err := s.runFrame()
		if err != nil {
			if errors.Is(err, errStopped) {
				break // for loop
			}
			return "", err
		}
	}

	return dig.Hash(), s.close()
}
