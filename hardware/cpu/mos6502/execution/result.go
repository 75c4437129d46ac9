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

package execution

import (
	"fmt"
	"strings"

	"github.com/whiskers-emu/whiskers/hardware/cpu/mos6502/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// a reference to the instruction definition
	Defn *instructions.Definition

	// the address at which the instruction began
	Address uint16

	// instruction data is the actual instruction data. so, for example, in
	// the case of ROL <$0a, the InstructionData will be $0a.
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// the number of cycles used by the instruction, including any page fault
	// and branch penalties
	Cycles int

	// whether a page fault occurred during instruction execution
	PageFault bool

	// whether the branch instruction branched
	BranchSuccess bool

	// description of any CPU quirk triggered by the instruction
	CPUBug string
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the instruction data formatted according to the
// addressing mode of the instruction.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", r.Address+2+uint16(int8(r.InstructionData)))
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	return ""
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic))
	if o := r.Operand(); o != "" {
		s.WriteString(" ")
		s.WriteString(o)
	}
	s.WriteString(fmt.Sprintf(" (%d)", r.Cycles))
	if r.PageFault {
		s.WriteString(" *")
	}
	if r.CPUBug != "" {
		s.WriteString(fmt.Sprintf(" [%s]", r.CPUBug))
	}
	return s.String()
}
