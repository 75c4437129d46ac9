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

package gameboy

import "github.com/whiskers-emu/whiskers/hardware/controls"

// joypad implements the JOYP register. bits 4 and 5 select the direction
// keys and the button keys respectively. a selected line is active low, as
// are the pressed keys in the lower nibble
type joypad struct {
	sel uint8
}

func (j *joypad) reset() {
	j.sel = 0x30
}

func (j *joypad) write(v uint8) {
	j.sel = v & 0x30
}

var (
	directions = [4]string{controls.Right, controls.Left, controls.Up, controls.Down}
	buttons    = [4]string{controls.A, controls.B, controls.Select, controls.Start}
)

// read returns the read function for the register. the controls are taken
// from the GameBoy at the time of the read
func (j *joypad) read(gb *GameBoy) func() uint8 {
	return func() uint8 {
		v := uint8(0x0f)
		if gb.controls != nil {
			if j.sel&0x10 == 0 {
				v &= pressed(gb.controls, directions)
			}
			if j.sel&0x20 == 0 {
				v &= pressed(gb.controls, buttons)
			}
		}
		return 0xc0 | j.sel | v
	}
}

// pressed returns the lower nibble with the bit cleared for each control
// that is held
func pressed(c *controls.Set, names [4]string) uint8 {
	v := uint8(0x0f)
	for i, n := range names {
		if c.Get(n) {
			v &^= 1 << i
		}
	}
	return v
}
