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

// Package core defines the Core interface implemented by the emulated
// consoles and the Select() functions that choose a console for a cartridge
// file.
//
// The host only ever deals with the Core interface. Once a Core has been
// selected the host calls Clock() repeatedly, pacing the calls with the
// values returned by ClockSpeed() and RefreshRate(), and receives completed
// frames through the function given to OnPresentFrame().
package core
