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

package sdlplay

import (
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/logger"
	"github.com/whiskers-emu/whiskers/performance/limiter"
)

const pixelDepth = 4

// Request is returned by Service() when the user has asked for something
// other than a control to be pressed.
type Request int

// List of valid Request values.
const (
	NoRequest Request = iota
	QuitRequest
	ResetRequest
)

// SdlPlay is a window showing the output of a console.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	controls *controls.Set

	// limit screen updates to the refresh rate of the console
	lmtr   *limiter.FpsLimiter
	fpsCap bool
}

// NewSdlPlay opens a window for frames of the given size. The window is
// scaled by the scale value.
func NewSdlPlay(title string, width int, height int, scale float32, refreshRate float64, ctrls *controls.Set) (*SdlPlay, error) {
	runtime.LockOSThread()

	scr := &SdlPlay{
		width:    int32(width),
		height:   int32(height),
		controls: ctrls,
		lmtr:     limiter.NewFPSLimiter(refreshRate),
		fpsCap:   true,
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if scale < 1 {
		scale = 1
	}

	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(float32(width)*scale), int32(float32(height)*scale),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the texture to fit the window, keeping the aspect
	// ratio of the console
	err = scr.renderer.SetLogicalSize(scr.width, scr.height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// frames are ARGB, which is the same as SDL's ARGB8888 on every
	// platform because the format is defined in terms of 32 bit values
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "window %dx%d scale %.1f", width, height, scale)

	return scr, nil
}

// Destroy the window and quit SDL.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// SetFPSCap turns frame pacing on or off.
func (scr *SdlPlay) SetFPSCap(limit bool) {
	scr.fpsCap = limit
}

// Present the frame in the window. It has the same signature as the
// function expected by core.Core.OnPresentFrame().
func (scr *SdlPlay) Present(frame []uint32, width int, height int) {
	if int32(width) != scr.width || int32(height) != scr.height || len(frame) < width*height {
		logger.Logf(logger.Allow, "sdlplay", "frame size mismatch (%dx%d)", width, height)
		return
	}

	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	err := scr.texture.Update(nil, unsafe.Pointer(&frame[0]), width*pixelDepth)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}

	_ = scr.renderer.Clear()
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}
	scr.renderer.Present()
}

// Service the SDL event queue. Keyboard events are passed to the controls.
func (scr *SdlPlay) Service() Request {
	req := NoRequest

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			req = QuitRequest

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}

			key := sdl.GetKeyName(ev.Keysym.Sym)

			switch ev.Type {
			case sdl.KEYDOWN:
				switch key {
				case "Escape":
					req = QuitRequest
				case "F5":
					if req == NoRequest {
						req = ResetRequest
					}
				default:
					if scr.controls != nil {
						scr.controls.Press(key)
					}
				}
			case sdl.KEYUP:
				if scr.controls != nil {
					scr.controls.Release(key)
				}
			}
		}
	}

	return req
}
