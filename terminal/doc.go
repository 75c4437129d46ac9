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

// Package terminal implements a simple monitor for the HEADLESS mode. The
// terminal is put into cbreak mode so that single key presses control the
// emulation without waiting for the return key:
//
//	space   pause or resume
//	s       run one frame while paused
//	r       reset the console
//	q       quit
//
// A status line is redrawn in place once per frame. The monitor is only
// available when the input is a terminal.
package terminal
