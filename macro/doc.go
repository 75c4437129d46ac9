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

// Package macro runs Lua scripts that control the emulation. A script runs
// alongside the emulation and is resumed once per frame. The following
// functions are available to the script:
//
//	frame(n)          wait for n frames (default 1)
//	press(control)    press the named control ("A", "B", "Start", etc.)
//	release(control)  release the named control
//	peek(address)     read a byte from the CPU bus
//	poke(address, v)  write a byte to the CPU bus
//	log(message)      write a message to the log
//	quit()            end the emulation
//
// For example, to press Start once the game has booted:
//
//	frame(120)
//	press("Start")
//	frame(2)
//	release("Start")
package macro
