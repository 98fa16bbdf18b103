// Package instruction contains the encoded form of an assembled instruction.
package instruction

import (
	"fmt"
	"strings"

	"github.com/retroenv/nesgoasm/internal/arch/m6502"
)

// Instruction is an encoded instruction at its final address.
type Instruction struct {
	Address  uint16
	Line     int // source line number
	Mnemonic string
	Mode     m6502.Mode
	Data     []byte // opcode followed by the operand bytes
}

// Opcode returns the opcode byte.
func (i Instruction) Opcode() byte {
	return i.Data[0]
}

// Operand returns the operand bytes.
func (i Instruction) Operand() []byte {
	return i.Data[1:]
}

// Len returns the encoded length of the instruction.
func (i Instruction) Len() int {
	return len(i.Data)
}

// IsBranch returns true if the instruction is a relative branch.
func (i Instruction) IsBranch() bool {
	return i.Mode == m6502.Relative
}

// BranchTarget returns the destination address of a relative branch.
func (i Instruction) BranchTarget() (uint16, bool) {
	if !i.IsBranch() || len(i.Data) != 2 {
		return 0, false
	}
	next := int(i.Address) + i.Len()
	return uint16(next + int(int8(i.Data[1]))), true
}

// String returns a listing line with address, encoded bytes and the
// disassembled instruction.
func (i Instruction) String() string {
	hex := make([]string, 0, len(i.Data))
	for _, b := range i.Data {
		hex = append(hex, fmt.Sprintf("%02X", b))
	}

	operand, err := m6502.FormatOperand(i.Mode, m6502.OperandValue(i.Operand()))
	if err != nil {
		operand = "?"
	}
	line := fmt.Sprintf("$%04X  %-8s  %s %s", i.Address, strings.Join(hex, " "), i.Mnemonic, operand)
	return strings.TrimRight(line, " ")
}
