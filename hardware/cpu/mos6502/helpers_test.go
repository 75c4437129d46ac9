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

package mos6502_test

import (
	"fmt"
	"testing"

	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502"
	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502/registers"
)

// mockMem is a flat 64K address space
type mockMem struct {
	data [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// putInstructions writes the bytes to memory at the origin and returns the
// address following the last byte
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// newCPU returns a CPU that will begin execution at origin
func newCPU(origin uint16) (*mos6502.CPU, *mockMem) {
	mem := &mockMem{}
	mem.data[mos6502.ResetVector] = uint8(origin)
	mem.data[mos6502.ResetVector+1] = uint8(origin >> 8)
	return mos6502.NewCPU(mem), mem
}

func assert(t *testing.T, r any, x any) {
	t.Helper()

	switch r := r.(type) {
	case registers.StatusRegister:
		if r.String() != x.(string) {
			t.Errorf("assert StatusRegister failed (%s  - wanted %s)", r, x.(string))
		}
	case registers.Register:
		if r.Value() != uint8(x.(int)) {
			t.Errorf("assert Register failed (%#02x  - wanted %#02x)", r.Value(), x.(int))
		}
	case registers.ProgramCounter:
		if r.Address() != uint16(x.(int)) {
			t.Errorf("assert ProgramCounter failed (%#04x  - wanted %#04x)", r.Address(), x.(int))
		}
	case bool:
		if r != x.(bool) {
			t.Errorf("assert Bool failed (%v  - wanted %v)", r, x.(bool))
		}
	case int:
		if r != x.(int) {
			t.Errorf("assert Int failed (%d  - wanted %d)", r, x.(int))
		}
	default:
		panic(fmt.Sprintf("assert: unsupported type %T", r))
	}
}

// step executes n instructions and returns the total number of cycles
func step(mc *mos6502.CPU, n int) int {
	var cycles int
	for range n {
		cycles += mc.ExecuteInstruction()
	}
	return cycles
}
