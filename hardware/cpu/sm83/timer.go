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

package sm83

// Addresses of the timer registers.
const (
	AddrDIV  = uint16(0xff04)
	AddrTIMA = uint16(0xff05)
	AddrTMA  = uint16(0xff06)
	AddrTAC  = uint16(0xff07)
)

// Timer implements the DIV, TIMA, TMA and TAC registers.
//
// DIV is the upper byte of a 16 bit counter that increments every cycle.
// TIMA increments when the counter bit selected by TAC falls from one to
// zero. When TIMA overflows it is reloaded from TMA and the timer interrupt
// is requested.
type Timer struct {
	cpu *CPU

	counter uint16
	tima    uint8
	tma     uint8
	tac     uint8
}

func newTimer(cpu *CPU) *Timer {
	return &Timer{cpu: cpu}
}

func (t *Timer) reset() {
	t.counter = 0
	t.tima = 0
	t.tma = 0
	t.tac = 0
}

// the counter bit that clocks TIMA for each of the four TAC rates
var tacBits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

func (t *Timer) enabled() bool {
	return t.tac&0x04 == 0x04
}

func (t *Timer) incrementTIMA() {
	t.tima++
	if t.tima == 0 {
		t.tima = t.tma
		t.cpu.RequestInterrupt(IntTimer)
	}
}

// Tick advances the timer by the number of CPU cycles.
func (t *Timer) Tick(cycles int) {
	bit := tacBits[t.tac&0x03]
	for range cycles {
		prev := t.counter
		t.counter++
		if t.enabled() && prev&bit == bit && t.counter&bit == 0 {
			t.incrementTIMA()
		}
	}
}

// DIV returns the value of the divider register.
func (t *Timer) DIV() uint8 {
	return uint8(t.counter >> 8)
}

// ResetDIV is called on any write to the DIV register.
func (t *Timer) ResetDIV() {
	// resetting the counter can cause a falling edge on the selected bit
	if t.enabled() && t.counter&tacBits[t.tac&0x03] != 0 {
		t.incrementTIMA()
	}
	t.counter = 0
}

// TIMA returns the value of the timer counter.
func (t *Timer) TIMA() uint8 {
	return t.tima
}

// SetTIMA sets the value of the timer counter.
func (t *Timer) SetTIMA(v uint8) {
	t.tima = v
}

// TMA returns the value of the timer modulo.
func (t *Timer) TMA() uint8 {
	return t.tma
}

// SetTMA sets the value of the timer modulo.
func (t *Timer) SetTMA(v uint8) {
	t.tma = v
}

// TAC returns the value of the timer control register. Unused bits read
// as one.
func (t *Timer) TAC() uint8 {
	return t.tac | 0xf8
}

// SetTAC sets the timer control register.
func (t *Timer) SetTAC(v uint8) {
	t.tac = v & 0x07
}
