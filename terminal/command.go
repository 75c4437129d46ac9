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

package terminal

import (
	"fmt"
	"strings"
)

// NotTerminal is returned by NewMonitor() when the input is not a terminal.
const NotTerminal = "terminal: input is not a terminal"

// Command is sent by the monitor in response to a key press.
type Command int

// List of valid Command values.
const (
	Pause Command = iota
	Step
	Reset
	Quit
)

func (c Command) String() string {
	switch c {
	case Pause:
		return "pause"
	case Step:
		return "step"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Decode returns the command for the key. The second return value is false
// if the key has no command.
func Decode(key byte) (Command, bool) {
	switch key {
	case ' ':
		return Pause, true
	case 's', 'S':
		return Step, true
	case 'r', 'R':
		return Reset, true
	case 'q', 'Q', keyInterrupt, keyEsc:
		return Quit, true
	}
	return 0, false
}

const (
	keyInterrupt = 3
	keyEsc       = 27
)

// StatusLine returns the line shown by the monitor. The line is truncated
// to the width. A width of zero means no truncation.
func StatusLine(console string, frame int, fps float64, paused bool, width int) string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s frame %d %.1ffps", console, frame, fps)
	if paused {
		s.WriteString(" [paused]")
	}
	if width > 0 && s.Len() > width {
		return s.String()[:width]
	}
	return s.String()
}
