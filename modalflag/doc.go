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

// Package modalflag wraps the flag package of the standard library. It
// handles program modes and allows different flags for each mode.
//
// Arguments are given with NewArgs() and Parse() is called with no
// arguments. Flags are added in the same way as the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "DIGEST", "VERSION")
//	p, err := md.Parse()
//
// The first sub-mode is the default. If the first non-flag argument is the
// name of a sub-mode then that mode is selected and the argument is
// consumed. Flags for the selected mode are added after a call to NewMode()
// and then parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 60, "number of frames to run")
//		p, err = md.Parse()
//	}
//
// Path() returns the chain of modes selected so far, separated by a slash.
package modalflag
