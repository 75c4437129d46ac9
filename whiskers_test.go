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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/whiskers-emu/whiskers/test"
)

// dmgCartridge writes a 32k image with no mapper that loops forever
func dmgCartridge(t *testing.T) string {
	t.Helper()
	data := make([]uint8, 0x8000)
	copy(data[0x0134:], "WHISKERS")
	copy(data[0x0100:], []uint8{0x00, 0xc3, 0x00, 0x01})
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

// nesCartridge writes an NROM-128 image that loops forever
func nesCartridge(t *testing.T) string {
	t.Helper()
	data := make([]uint8, 16+0x4000+0x2000)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, 1, 1})
	copy(data[16:], []uint8{0x4c, 0x00, 0x80})
	copy(data[16+0x3ffc:], []uint8{0x00, 0x80})
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func newWriter(t *testing.T) *test.CappedWriter {
	t.Helper()
	w, err := test.NewCappedWriter(4096)
	test.DemandSuccess(t, err)
	return w
}

func TestVersionMode(t *testing.T) {
	w := newWriter(t)
	test.ExpectEquality(t, launch([]string{"version"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Whiskers "))
}

func TestArguments(t *testing.T) {
	w := newWriter(t)
	test.ExpectEquality(t, launch([]string{"headless"}, w), exitError)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cartridge required"))

	w.Reset()
	test.ExpectEquality(t, launch([]string{"digest", "a.gb", "b.gb"}, w), exitError)

	w.Reset()
	test.ExpectEquality(t, launch([]string{"headless", "-frames", "1", filepath.Join(t.TempDir(), "missing.gb")}, w), exitError)

	w.Reset()
	test.ExpectEquality(t, launch([]string{"headless", "-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "-frames"))
}

func TestDigest(t *testing.T) {
	for _, fn := range []string{dmgCartridge(t), nesCartridge(t)} {
		a, err := digestFrames(fn, "", 5)
		test.DemandSuccess(t, err)
		b, err := digestFrames(fn, "", 5)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, a, b, fn)

		c, err := digestFrames(fn, "", 6)
		test.DemandSuccess(t, err)
		test.ExpectInequality(t, c, a, fn)
	}
}

func TestDigestMode(t *testing.T) {
	fn := dmgCartridge(t)
	hash, err := digestFrames(fn, "", 3)
	test.DemandSuccess(t, err)

	w := newWriter(t)
	test.ExpectEquality(t, launch([]string{"digest", "-frames", "3", fn}, w), exitOK)
	test.ExpectEquality(t, w.String(), hash+"\n")
}

func TestHeadless(t *testing.T) {
	dir := t.TempDir()
	shot := filepath.Join(dir, "shot.bmp")
	viz := filepath.Join(dir, "core.dot")
	script := filepath.Join(dir, "script.lua")
	test.DemandSuccess(t, os.WriteFile(script, []uint8(`frame(2) poke(0xc000, 0x55) quit()`), 0o644))

	w := newWriter(t)
	code := launch([]string{"headless", "-frames", "10",
		"-screenshot", shot, "-memviz", viz, "-script", script,
		"-save", dir, dmgCartridge(t)}, w)
	test.ExpectEquality(t, code, exitOK)

	// the script quits before the requested number of frames
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "DMG: 3 frames"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "digest: "))

	_, err := os.Stat(shot)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(viz)
	test.ExpectSuccess(t, err)
}

func TestSession(t *testing.T) {
	s, err := newSession(nesCartridge(t), sessionOptions{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.core.Console(), "NES")
	test.ExpectEquality(t, s.shortName(), "test")

	var sizes []int
	s.onPresent(func(frame []uint32, width int, height int) {
		sizes = append(sizes, len(frame))
		test.ExpectEquality(t, width*height, len(frame))
	})

	for range 3 {
		test.DemandSuccess(t, s.runFrame())
	}
	test.ExpectEquality(t, s.frames, 3)
	test.ExpectEquality(t, len(sizes), 3)
	test.ExpectSuccess(t, !s.quit())
	test.ExpectSuccess(t, s.close())

	s.core.SetStopped(true)
	test.ExpectFailure(t, s.runFrame())
}
