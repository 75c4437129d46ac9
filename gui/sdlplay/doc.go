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

// Package sdlplay presents the frames of a console in an SDL window and
// passes keyboard events to a controls.Set. Key names are those reported by
// SDL, for example "Z", "Return" or "Right Shift".
//
// Escape closes the window and F5 requests a reset. All functions must be
// called from the same goroutine that called NewSdlPlay().
package sdlplay
