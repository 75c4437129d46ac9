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

// Package battery keeps the battery backed RAM of a cartridge in a file
// between sessions. The RAM is loaded when the Saver is created and written
// back when it has changed, at most once per second and when the emulation
// ends.
package battery

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/hardware/cartridge"
	"github.com/whiskers-emu/whiskers/logger"
)

// the minimum time between saves
const interval = time.Second

// Saver writes cartridge RAM to a file.
type Saver struct {
	bat      cartridge.Battery
	filename string
	last     time.Time
}

// NewSaver loads the file into the cartridge RAM, if the file exists. A
// missing file is not an error.
func NewSaver(bat cartridge.Battery, filename string) (*Saver, error) {
	s := &Saver{
		bat:      bat,
		filename: filename,
		last:     time.Now(),
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, curated.Errorf("battery: %v", err)
	}

	bat.LoadRAM(data)
	bat.ClearDirty()
	logger.Logf(logger.Allow, "battery", "loaded %d bytes from %s", len(data), filename)

	return s, nil
}

// Check saves the RAM if it has changed and if enough time has passed since
// the last save.
func (s *Saver) Check(now time.Time) error {
	if now.Sub(s.last) < interval {
		return nil
	}
	s.last = now
	return s.Save()
}

// Save the RAM if it has changed.
func (s *Saver) Save() error {
	if !s.bat.IsDirty() {
		return nil
	}

	err := os.WriteFile(s.filename, s.bat.SaveRAM(), 0o600)
	if err != nil {
		return curated.Errorf("battery: %v", err)
	}
	s.bat.ClearDirty()
	logger.Logf(logger.Allow, "battery", "saved %s", s.filename)

	return nil
}
