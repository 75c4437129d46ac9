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

import "fmt"

// Flags in the F register.
const (
	FlagZ = uint8(0x80)
	FlagN = uint8(0x40)
	FlagH = uint8(0x20)
	FlagC = uint8(0x10)
)

// Registers of the SM83. The 8 bit registers can be paired as AF, BC, DE and
// HL. The lower nibble of F is always zero.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x %s",
		r.AF(), r.BC(), r.DE(), r.HL(), r.SP, r.PC, r.flagString())
}

func (r Registers) flagString() string {
	b := []byte("znhc")
	for i, f := range []uint8{FlagZ, FlagN, FlagH, FlagC} {
		if r.F&f == f {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// AF returns the A and F registers as a pair.
func (r Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F)
}

// SetAF sets the A and F registers. The lower nibble of F is discarded.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & 0xf0
}

// BC returns the B and C registers as a pair.
func (r Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets the B and C registers.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the D and E registers as a pair.
func (r Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets the D and E registers.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the H and L registers as a pair.
func (r Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets the H and L registers.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// Flag returns true if the flag is set.
func (r Registers) Flag(f uint8) bool {
	return r.F&f == f
}

// SetFlag sets or clears the flag.
func (r *Registers) SetFlag(f uint8, set bool) {
	if set {
		r.F |= f
	} else {
		r.F &^= f
	}
}

// setFlags sets all four flags in one go.
func (r *Registers) setFlags(z, n, h, c bool) {
	r.F = 0
	r.SetFlag(FlagZ, z)
	r.SetFlag(FlagN, n)
	r.SetFlag(FlagH, h)
	r.SetFlag(FlagC, c)
}

func (r *Registers) reset() {
	*r = Registers{}
}
