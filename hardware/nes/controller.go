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

package nes

import "github.com/whiskers-emu/whiskers/hardware/controls"

// the order in which buttons are shifted out of the controller
var buttonOrder = [8]string{
	controls.A, controls.B, controls.Select, controls.Start,
	controls.Up, controls.Down, controls.Left, controls.Right,
}

// controller is the standard controller. the state of the buttons is latched
// into a shift register while the strobe is high
type controller struct {
	shift uint8
	count int
}

func (c *controller) reset() {
	c.shift = 0
	c.count = 0
}

func (c *controller) latch(ctrls *controls.Set) {
	c.shift = 0
	c.count = 0
	if ctrls == nil {
		return
	}
	for i, n := range buttonOrder {
		if ctrls.Get(n) {
			c.shift |= 1 << i
		}
	}
}

// read returns the next bit of the shift register. after eight reads the
// controller returns one
func (c *controller) read() uint8 {
	if c.count >= len(buttonOrder) {
		return 0x01
	}
	v := c.shift & 0x01
	c.shift >>= 1
	c.count++
	return v
}
