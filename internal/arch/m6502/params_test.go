package m6502

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFormatOperand(t *testing.T) {
	tests := []struct {
		mode     Mode
		value    uint16
		expected string
	}{
		{Implied, 0, ""},
		{Accumulator, 0, ""},
		{Immediate, 0x4a, "#$4A"},
		{ZeroPage, 0x10, "$10"},
		{ZeroPageX, 0x10, "$10,X"},
		{ZeroPageY, 0x10, "$10,Y"},
		{Absolute, 0x1234, "$1234"},
		{AbsoluteX, 0x0400, "$0400,X"},
		{AbsoluteY, 0x0400, "$0400,Y"},
		{Relative, 0xfd, "$FD"},
		{Indirect, 0xfffc, "($FFFC)"},
		{IndirectX, 0x20, "($20,X)"},
		{IndirectY, 0x22, "($22),Y"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s, err := FormatOperand(tt.mode, tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	_, err := FormatOperand(0, 0)
	assert.Error(t, err)
}

func TestFormatOperandParsesBack(t *testing.T) {
	for _, ins := range Instructions() {
		if ins.Mode == Implied || ins.Mode == Accumulator || ins.Mode == Relative {
			continue
		}

		s, err := FormatOperand(ins.Mode, 0x12)
		assert.NoError(t, err)

		op, err := ParseOperand(s)
		assert.NoError(t, err, s)
		assert.Equal(t, ins.Mode, op.Mode, s)
		assert.Equal(t, uint16(0x12), op.Value, s)
	}
}

func TestOperandValue(t *testing.T) {
	assert.Equal(t, uint16(0), OperandValue(nil))
	assert.Equal(t, uint16(0x4a), OperandValue([]byte{0x4a}))
	assert.Equal(t, uint16(0x1234), OperandValue([]byte{0x34, 0x12}))
}
