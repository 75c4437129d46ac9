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

// Package controls binds host keys to the named controls of the emulated
// consoles.
//
// The host calls Press() and Release() with the name of the key. The
// console queries the state of a control by name with Get(). Control names
// are shared between the two consoles: "A", "B", "Select", "Start", "Up",
// "Down", "Left" and "Right".
package controls

import (
	"fmt"
	"slices"
	"strings"

	"github.com/whiskers-emu/whiskers/curated"
)

// UnknownControl is the pattern for the error returned by PressControl().
const UnknownControl = "controls: unknown control (%s)"

// List of control names used by both consoles.
const (
	A      = "A"
	B      = "B"
	Select = "Select"
	Start  = "Start"
	Up     = "Up"
	Down   = "Down"
	Left   = "Left"
	Right  = "Right"
)

// Set of bindings between key names and control names. The zero value has no
// bindings.
type Set struct {
	// key name -> control name
	bindings map[string]string

	// keys that are currently pressed
	pressed map[string]bool

	// controls that have been locked. a lock is released when every key bound
	// to the control has been released
	locked map[string]bool
}

// NewSet returns a Set with no bindings.
func NewSet() *Set {
	return &Set{
		bindings: make(map[string]string),
		pressed:  make(map[string]bool),
		locked:   make(map[string]bool),
	}
}

// Default returns a Set with the default bindings.
func Default() *Set {
	s := NewSet()
	s.Bind("Z", B)
	s.Bind("X", A)
	s.Bind("Return", Start)
	s.Bind("Right Shift", Select)
	s.Bind("Backspace", Select)
	s.Bind("Up", Up)
	s.Bind("Down", Down)
	s.Bind("Left", Left)
	s.Bind("Right", Right)
	return s
}

func (s *Set) String() string {
	b := strings.Builder{}
	for _, n := range s.Names() {
		if s.Get(n) {
			b.WriteString(n)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// Bind a key to a control. A key can only be bound to one control but a
// control can have many keys.
func (s *Set) Bind(key string, control string) {
	s.bindings[key] = control
}

// Press the key. Returns false if the key is not bound to a control.
func (s *Set) Press(key string) bool {
	if _, ok := s.bindings[key]; !ok {
		return false
	}
	s.pressed[key] = true
	return true
}

// Release the key. Returns false if the key is not bound to a control.
func (s *Set) Release(key string) bool {
	control, ok := s.bindings[key]
	if !ok {
		return false
	}
	delete(s.pressed, key)
	if !s.held(control) {
		delete(s.locked, control)
	}
	return true
}

// PressControl presses the control directly, without going through a key
// binding. Used by scripts.
func (s *Set) PressControl(control string) error {
	key := fmt.Sprintf("control:%s", control)
	if !slices.Contains(s.Names(), control) {
		return curated.Errorf(UnknownControl, control)
	}
	s.bindings[key] = control
	s.pressed[key] = true
	return nil
}

// ReleaseControl releases a control pressed with PressControl().
func (s *Set) ReleaseControl(control string) {
	s.Release(fmt.Sprintf("control:%s", control))
}

// held returns true if any key bound to the control is pressed
func (s *Set) held(control string) bool {
	for k := range s.pressed {
		if s.bindings[k] == control {
			return true
		}
	}
	return false
}

// Get returns true if the control is held and has not been locked.
func (s *Set) Get(control string) bool {
	return s.held(control) && !s.locked[control]
}

// Lock suppresses the control until every key bound to it has been released.
// Locking a control that is not held has no effect.
func (s *Set) Lock(control string) {
	if s.held(control) {
		s.locked[control] = true
	}
}

// Names returns the sorted list of control names that have at least one key
// bound.
func (s *Set) Names() []string {
	var names []string
	for _, c := range s.bindings {
		if !slices.Contains(names, c) {
			names = append(names, c)
		}
	}
	slices.Sort(names)
	return names
}
