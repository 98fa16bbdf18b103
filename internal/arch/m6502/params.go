package m6502

import (
	"fmt"
)

type paramFormatterFunc func(value uint16) string

var paramFormatter = map[Mode]paramFormatterFunc{
	Implied:     paramFormatterNone,
	Accumulator: paramFormatterNone,
	Immediate:   paramFormatterImmediate,
	Absolute:    paramFormatterWord(""),
	AbsoluteX:   paramFormatterWord(",X"),
	AbsoluteY:   paramFormatterWord(",Y"),
	ZeroPage:    paramFormatterByte(""),
	ZeroPageX:   paramFormatterByte(",X"),
	ZeroPageY:   paramFormatterByte(",Y"),
	Relative:    paramFormatterByte(""),
	Indirect:    paramFormatterIndirect,
	IndirectX:   paramFormatterIndirectX,
	IndirectY:   paramFormatterIndirectY,
}

// FormatOperand returns the operand literal for the operand value in the
// given mode, the result parses back into the same operand.
func FormatOperand(mode Mode, value uint16) (string, error) {
	fun, ok := paramFormatter[mode]
	if !ok {
		return "", fmt.Errorf("unsupported addressing mode %d", mode)
	}
	return fun(value), nil
}

// OperandValue returns the operand value of the little endian operand bytes.
func OperandValue(data []byte) uint16 {
	switch len(data) {
	case 1:
		return uint16(data[0])
	case 2:
		return uint16(data[1])<<8 | uint16(data[0])
	default:
		return 0
	}
}

func paramFormatterNone(uint16) string {
	return ""
}

func paramFormatterImmediate(value uint16) string {
	return fmt.Sprintf("#$%02X", value)
}

func paramFormatterByte(suffix string) paramFormatterFunc {
	return func(value uint16) string {
		return fmt.Sprintf("$%02X%s", value, suffix)
	}
}

func paramFormatterWord(suffix string) paramFormatterFunc {
	return func(value uint16) string {
		return fmt.Sprintf("$%04X%s", value, suffix)
	}
}

func paramFormatterIndirect(value uint16) string {
	return fmt.Sprintf("($%04X)", value)
}

func paramFormatterIndirectX(value uint16) string {
	return fmt.Sprintf("($%02X,X)", value)
}

func paramFormatterIndirectY(value uint16) string {
	return fmt.Sprintf("($%02X),Y", value)
}
