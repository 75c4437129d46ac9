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

package controls_test

import (
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/controls"
	"github.com/whiskers-emu/whiskers/test"
)

func TestPressRelease(t *testing.T) {
	s := controls.Default()

	test.ExpectEquality(t, s.Get(controls.A), false)
	test.ExpectSuccess(t, s.Press("X"))
	test.ExpectEquality(t, s.Get(controls.A), true)
	test.ExpectEquality(t, s.String(), "A")
	test.ExpectSuccess(t, s.Release("X"))
	test.ExpectEquality(t, s.Get(controls.A), false)

	// unbound keys
	test.ExpectFailure(t, s.Press("Q"))
	test.ExpectFailure(t, s.Release("Q"))
}

func TestSharedControl(t *testing.T) {
	s := controls.Default()

	s.Press("Right Shift")
	s.Press("Backspace")
	s.Release("Right Shift")
	test.ExpectEquality(t, s.Get(controls.Select), true)
	s.Release("Backspace")
	test.ExpectEquality(t, s.Get(controls.Select), false)
}

func TestLock(t *testing.T) {
	s := controls.Default()

	// locking a control that is not held does nothing
	s.Lock(controls.Start)
	s.Press("Return")
	test.ExpectEquality(t, s.Get(controls.Start), true)

	s.Lock(controls.Start)
	test.ExpectEquality(t, s.Get(controls.Start), false)

	s.Release("Return")
	s.Press("Return")
	test.ExpectEquality(t, s.Get(controls.Start), true)
}

func TestNames(t *testing.T) {
	s := controls.Default()
	n := s.Names()
	test.DemandEquality(t, len(n), 8)
	test.ExpectEquality(t, n[0], "A")
	test.ExpectEquality(t, n[7], "Up")

	test.ExpectEquality(t, len(controls.NewSet().Names()), 0)
}

func TestPressControl(t *testing.T) {
	s := controls.Default()
	test.ExpectSuccess(t, s.PressControl(controls.Left))
	test.ExpectEquality(t, s.Get(controls.Left), true)
	s.ReleaseControl(controls.Left)
	test.ExpectEquality(t, s.Get(controls.Left), false)

	test.ExpectFailure(t, s.PressControl("Turbo"))
}
