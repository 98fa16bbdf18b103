package m6502

import (
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

// Mode is the addressing mode of an instruction.
type Mode uint8

// All supported addressing modes.
const (
	Accumulator Mode = iota + 1
	Immediate
	Absolute
	ZeroPage
	ZeroPageX
	ZeroPageY
	AbsoluteX
	AbsoluteY
	Implied
	Relative
	IndirectX
	IndirectY
	Indirect
)

// Modes lists all addressing modes in declaration order.
var Modes = []Mode{
	Accumulator, Immediate, Absolute, ZeroPage, ZeroPageX, ZeroPageY,
	AbsoluteX, AbsoluteY, Implied, Relative, IndirectX, IndirectY, Indirect,
}

type modeInfo struct {
	name       string
	length     int
	addressing m6502.AddressingMode
}

var modes = map[Mode]modeInfo{
	Accumulator: {"accumulator", 1, m6502.AccumulatorAddressing},
	Immediate:   {"immediate", 2, m6502.ImmediateAddressing},
	Absolute:    {"absolute", 3, m6502.AbsoluteAddressing},
	ZeroPage:    {"zero page", 2, m6502.ZeroPageAddressing},
	ZeroPageX:   {"zero page,X", 2, m6502.ZeroPageXAddressing},
	ZeroPageY:   {"zero page,Y", 2, m6502.ZeroPageYAddressing},
	AbsoluteX:   {"absolute,X", 3, m6502.AbsoluteXAddressing},
	AbsoluteY:   {"absolute,Y", 3, m6502.AbsoluteYAddressing},
	Implied:     {"implied", 1, m6502.ImpliedAddressing},
	Relative:    {"relative", 2, m6502.RelativeAddressing},
	IndirectX:   {"(indirect,X)", 2, m6502.IndirectXAddressing},
	IndirectY:   {"(indirect),Y", 2, m6502.IndirectYAddressing},
	Indirect:    {"(indirect)", 3, m6502.IndirectAddressing},
}

// Length returns the total instruction length in bytes for the mode,
// including the opcode byte. It returns 0 for an invalid mode.
func (m Mode) Length() int {
	return modes[m].length
}

// OperandLength returns the number of operand bytes that follow the opcode.
func (m Mode) OperandLength() int {
	if l := m.Length(); l > 0 {
		return l - 1
	}
	return 0
}

// CPUAddressing returns the matching addressing mode of the reference CPU definition.
func (m Mode) CPUAddressing() m6502.AddressingMode {
	return modes[m].addressing
}

// IsIndexed returns whether the mode is using indexed addressing.
func (m Mode) IsIndexed() bool {
	switch m {
	case ZeroPageX, ZeroPageY, AbsoluteX, AbsoluteY, IndirectX, IndirectY:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	info, ok := modes[m]
	if !ok {
		return "invalid"
	}
	return info.name
}
