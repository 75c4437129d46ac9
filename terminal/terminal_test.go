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

package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/terminal"
	"github.com/whiskers-emu/whiskers/test"
)

func TestDecode(t *testing.T) {
	c, ok := terminal.Decode(' ')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, terminal.Pause)

	c, ok = terminal.Decode('S')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, terminal.Step)

	c, ok = terminal.Decode(3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, terminal.Quit)

	_, ok = terminal.Decode('x')
	test.ExpectFailure(t, ok)
}

func TestStatusLine(t *testing.T) {
	test.ExpectEquality(t, terminal.StatusLine("DMG", 10, 59.73, false, 0), "DMG frame 10 59.7fps")
	test.ExpectEquality(t, terminal.StatusLine("NES", 1, 60, true, 0), "NES frame 1 60.0fps [paused]")
	test.ExpectEquality(t, terminal.StatusLine("NES", 1, 60, true, 3), "NES")
}

func TestNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = terminal.NewMonitor(f, f)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, terminal.NotTerminal))
}
