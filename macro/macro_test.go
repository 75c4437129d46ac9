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

package macro_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/hardware/memory/bus"
	"github.com/whiskers-emu/whiskers/macro"
	"github.com/whiskers-emu/whiskers/test"
)

func newBus() *bus.Mapped {
	m := bus.NewMapped("test")
	m.MapArray(make([]uint8, 0x100), 0x0000, 0x100)
	return m
}

func TestScript(t *testing.T) {
	ctrls := controls.Default()
	mem := newBus()

	mcr, err := macro.NewMacroString(`
		poke(0x10, peek(0x11) + 0x42)
		press("A")
		frame(2)
		release("A")
		log("done")
	`, ctrls, mem)
	test.DemandSuccess(t, err)
	defer mcr.Close()

	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectEquality(t, mem.Read(0x10), 0x42)
	test.ExpectSuccess(t, ctrls.Get(controls.A))
	test.ExpectSuccess(t, !mcr.Done())

	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectSuccess(t, ctrls.Get(controls.A))

	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectSuccess(t, !ctrls.Get(controls.A))
	test.ExpectSuccess(t, mcr.Done())

	// further frames do nothing
	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectSuccess(t, !mcr.Quit())
}

func TestQuit(t *testing.T) {
	mcr, err := macro.NewMacroString(`frame() quit()`, controls.Default(), newBus())
	test.DemandSuccess(t, err)
	defer mcr.Close()

	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectSuccess(t, !mcr.Quit())
	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectSuccess(t, mcr.Quit())
}

func TestErrors(t *testing.T) {
	_, err := macro.NewMacroString(`this is not lua`, controls.Default(), newBus())
	test.ExpectFailure(t, err)

	mcr, err := macro.NewMacroString(`press("Turbo")`, controls.Default(), newBus())
	test.DemandSuccess(t, err)
	defer mcr.Close()
	test.ExpectFailure(t, mcr.Frame())
	test.ExpectSuccess(t, mcr.Done())

	_, err = macro.NewMacro(filepath.Join(t.TempDir(), "missing.lua"), controls.Default(), newBus())
	test.ExpectFailure(t, err)
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8(`poke(0, 7)`), 0o644))

	mem := newBus()
	mcr, err := macro.NewMacro(fn, controls.Default(), mem)
	test.DemandSuccess(t, err)
	defer mcr.Close()

	test.ExpectSuccess(t, mcr.Frame())
	test.ExpectEquality(t, mem.Read(0x00), 7)
	test.ExpectSuccess(t, mcr.Done())
}
