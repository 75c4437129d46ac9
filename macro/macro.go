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

package macro

import (
	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	"github.com/whiskers-emu/whiskers/logger"
	lua "github.com/yuin/gopher-lua"
)

// Macro is a Lua script that controls an emulation.
type Macro struct {
	controls *controls.Set
	mem      bus.Bus

	filename string

	state *lua.LState
	co    *lua.LState
	fn    *lua.LFunction

	// number of frames before the script is resumed
	wait int

	done bool
	quit bool
}

// NewMacro loads the Lua script from file. The script does not start until
// the first call to Frame().
func NewMacro(filename string, ctrls *controls.Set, mem bus.Bus) (*Macro, error) {
	mcr := newMacro(filename, ctrls, mem)
	fn, err := mcr.state.LoadFile(filename)
	if err != nil {
		mcr.state.Close()
		return nil, curated.Errorf("macro: %v", err)
	}
	mcr.fn = fn
	return mcr, nil
}

// NewMacroString is the same as NewMacro() except that the script is taken
// from a string.
func NewMacroString(script string, ctrls *controls.Set, mem bus.Bus) (*Macro, error) {
	mcr := newMacro("string", ctrls, mem)
	fn, err := mcr.state.LoadString(script)
	if err != nil {
		mcr.state.Close()
		return nil, curated.Errorf("macro: %v", err)
	}
	mcr.fn = fn
	return mcr, nil
}

func newMacro(filename string, ctrls *controls.Set, mem bus.Bus) *Macro {
	mcr := &Macro{
		controls: ctrls,
		mem:      mem,
		filename: filename,
		state:    lua.NewState(),
	}
	mcr.co, _ = mcr.state.NewThread()

	mcr.state.SetGlobal("frame", mcr.state.NewFunction(mcr.frame))
	mcr.state.SetGlobal("press", mcr.state.NewFunction(mcr.press))
	mcr.state.SetGlobal("release", mcr.state.NewFunction(mcr.release))
	mcr.state.SetGlobal("peek", mcr.state.NewFunction(mcr.peek))
	mcr.state.SetGlobal("poke", mcr.state.NewFunction(mcr.poke))
	mcr.state.SetGlobal("log", mcr.state.NewFunction(mcr.log))
	mcr.state.SetGlobal("quit", mcr.state.NewFunction(mcr.setQuit))

	return mcr
}

// Close the Lua state.
func (mcr *Macro) Close() {
	mcr.state.Close()
}

// Done returns true if the script has finished.
func (mcr *Macro) Done() bool {
	return mcr.done
}

// Quit returns true if the script has asked for the emulation to end.
func (mcr *Macro) Quit() bool {
	return mcr.quit
}

// Frame should be called once per frame. The script is resumed if it is no
// longer waiting. Any error in the script ends the script.
func (mcr *Macro) Frame() error {
	if mcr.done {
		return nil
	}

	if mcr.wait > 0 {
		mcr.wait--
		if mcr.wait > 0 {
			return nil
		}
	}

	st, err, values := mcr.state.Resume(mcr.co, mcr.fn)
	if err != nil {
		mcr.done = true
		return curated.Errorf("macro: %s: %v", mcr.filename, err)
	}

	switch st {
	case lua.ResumeYield:
		mcr.wait = 1
		if len(values) > 0 {
			if n, ok := values[0].(lua.LNumber); ok && n > 0 {
				mcr.wait = int(n)
			}
		}
	default:
		mcr.done = true
		logger.Logf(logger.Allow, "macro", "%s: finished", mcr.filename)
	}

	return nil
}

func (mcr *Macro) frame(L *lua.LState) int {
	n := L.OptInt(1, 1)
	return L.Yield(lua.LNumber(n))
}

func (mcr *Macro) press(L *lua.LState) int {
	err := mcr.controls.PressControl(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (mcr *Macro) release(L *lua.LState) int {
	mcr.controls.ReleaseControl(L.CheckString(1))
	return 0
}

func (mcr *Macro) peek(L *lua.LState) int {
	v := mcr.mem.Read(uint16(L.CheckInt(1)))
	L.Push(lua.LNumber(v))
	return 1
}

func (mcr *Macro) poke(L *lua.LState) int {
	mcr.mem.Write(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Log(logger.Allow, "macro", L.CheckString(1))
	return 0
}

func (mcr *Macro) setQuit(_ *lua.LState) int {
	mcr.quit = true
	return 0
}
