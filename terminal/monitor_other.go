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

//go:build !linux && !darwin

package terminal

import (
	"os"

	"github.com/whiskers-emu/whiskers/curated"
)

// Monitor is not available on this platform.
type Monitor struct{}

// NewMonitor always returns an error on this platform.
func NewMonitor(_ *os.File, _ *os.File) (*Monitor, error) {
	return nil, curated.Errorf(NotTerminal)
}

// CleanUp does nothing on this platform.
func (m *Monitor) CleanUp() {}

// Commands returns nil on this platform.
func (m *Monitor) Commands() <-chan Command {
	return nil
}

// Status does nothing on this platform.
func (m *Monitor) Status(_ string, _ int, _ float64, _ bool) {}
