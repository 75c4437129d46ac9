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

package registers_test

import (
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502/registers"
	"github.com/whiskers-emu/whiskers/test"
)

func TestAdd(t *testing.T) {
	r := registers.NewRegister(0x50, "A")
	carry, overflow := r.Add(0x50, false)
	test.ExpectEquality(t, r.Value(), 0xa0)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r.IsNegative())

	r.Load(0xff)
	carry, overflow = r.Add(0x01, false)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r.IsZero())

	// carry in with a result that wraps to the original value
	r.Load(0x10)
	carry, _ = r.Add(0xff, true)
	test.ExpectEquality(t, r.Value(), 0x10)
	test.ExpectSuccess(t, carry)
}

func TestSubtract(t *testing.T) {
	r := registers.NewRegister(0x50, "A")
	carry, overflow := r.Subtract(0xf0, true)
	test.ExpectEquality(t, r.Value(), 0x60)
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, overflow)

	r.Load(0x50)
	carry, overflow = r.Subtract(0xb0, true)
	test.ExpectEquality(t, r.Value(), 0xa0)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	r.Load(0x05)
	carry, _ = r.Subtract(0x03, true)
	test.ExpectEquality(t, r.Value(), 0x02)
	test.ExpectSuccess(t, carry)
}

func TestShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "A")
	test.ExpectSuccess(t, r.ASL())
	test.ExpectEquality(t, r.Value(), 0x02)
	test.ExpectFailure(t, r.LSR())
	test.ExpectEquality(t, r.Value(), 0x01)
	test.ExpectSuccess(t, r.ROR(true))
	test.ExpectEquality(t, r.Value(), 0x80)
	test.ExpectSuccess(t, r.ROL(false))
	test.ExpectEquality(t, r.Value(), 0x00)
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	sr.Reset()
	sr.InterruptDisable = true
	test.ExpectEquality(t, sr.Value(), 0x24)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x10fe)
	test.ExpectFailure(t, pc.Add(1))
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0x1100)
	test.ExpectEquality(t, pc.String(), "1100")
}
