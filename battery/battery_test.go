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

package battery_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/whiskers-emu/whiskers/battery"
	"github.com/whiskers-emu/whiskers/test"
)

type ram struct {
	data  []uint8
	dirty bool
}

func (r *ram) SaveRAM() []uint8 {
	return r.data
}

func (r *ram) LoadRAM(data []uint8) {
	copy(r.data, data)
	r.dirty = true
}

func (r *ram) HasBattery() bool {
	return true
}

func (r *ram) IsDirty() bool {
	return r.dirty
}

func (r *ram) ClearDirty() {
	r.dirty = false
}

func TestSaver(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.sav")
	r := &ram{data: make([]uint8, 4)}

	s, err := battery.NewSaver(r, fn)
	test.DemandSuccess(t, err)

	// nothing to save
	test.ExpectSuccess(t, s.Save())
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	r.data[1] = 0x42
	r.dirty = true

	// too soon
	test.ExpectSuccess(t, s.Check(time.Now()))
	test.ExpectSuccess(t, r.dirty)

	test.ExpectSuccess(t, s.Check(time.Now().Add(2*time.Second)))
	test.ExpectSuccess(t, !r.dirty)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 4)
	test.ExpectEquality(t, data[1], 0x42)

	// a new saver loads the file
	r2 := &ram{data: make([]uint8, 4)}
	_, err = battery.NewSaver(r2, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r2.data[1], 0x42)
	test.ExpectSuccess(t, !r2.dirty)
}

func TestSaveError(t *testing.T) {
	r := &ram{data: make([]uint8, 4), dirty: true}
	s, err := battery.NewSaver(r, filepath.Join(t.TempDir(), "missing", "game.sav"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, s.Save())
}
