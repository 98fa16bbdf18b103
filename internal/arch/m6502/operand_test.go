package m6502

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		text  string
		mode  Mode
		value uint16
	}{
		{"", Accumulator, 0},
		{"#$4A", Immediate, 0x4A},
		{"$1234", Absolute, 0x1234},
		{"$10", ZeroPage, 0x10},
		{"$10,X", ZeroPageX, 0x10},
		{"$10,y", ZeroPageY, 0x10},
		{"$abCD,x", AbsoluteX, 0xABCD},
		{"$ABCD,Y", AbsoluteY, 0xABCD},
		{"($20,X)", IndirectX, 0x20},
		{"($20),y", IndirectY, 0x20},
		{"($FFFC)", Indirect, 0xFFFC},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			op, err := ParseOperand(tt.text)
			assert.NoError(t, err)
			assert.Equal(t, tt.mode, op.Mode)
			assert.Equal(t, tt.value, op.Value)
		})
	}
}

func TestParseOperandInvalid(t *testing.T) {
	invalid := []string{
		"$", "$1", "$123", "$12345", "#$1234", "#12", "12", "$12,Z",
		"($1234,X)", "($12)", "($1234),Y", "($12,X", "$12,X)", "A", "$GG",
	}

	for _, text := range invalid {
		t.Run(text, func(t *testing.T) {
			_, err := ParseOperand(text)
			assert.True(t, errors.Is(err, ErrIllegalOperand))
			assert.False(t, IsOperand(text))
		})
	}
}

func TestIsAssignmentValue(t *testing.T) {
	assert.True(t, IsAssignmentValue("#$10"))
	assert.True(t, IsAssignmentValue("$4A"))
	assert.True(t, IsAssignmentValue("$1234"))
	assert.False(t, IsAssignmentValue("$10,X"))
	assert.False(t, IsAssignmentValue("($10),Y"))
	assert.False(t, IsAssignmentValue(""))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		mnemonic string
		operand  string
		mode     Mode
	}{
		{"LDA", "#$10", Immediate},
		{"LDA", "$10", ZeroPage},
		{"LDA", "$1000", Absolute},
		{"LDX", "$10,Y", ZeroPageY},
		{"ASL", "", Accumulator},
		{"JMP", "($1000)", Indirect},
		{"BNE", "$05", Relative},
		{"BNE", "", Relative},
		{"NOP", "", Implied},
		{"JSR", "$1234", Absolute},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic+" "+tt.operand, func(t *testing.T) {
			mode, err := Resolve(tt.mnemonic, tt.operand)
			assert.NoError(t, err)
			assert.Equal(t, tt.mode, mode)
		})
	}
}

func TestResolveIllegalInstruction(t *testing.T) {
	tests := []struct {
		mnemonic string
		operand  string
	}{
		{"LDA", ""},
		{"STA", "#$10"},
		{"LDA", "$10,Y"},
		{"JMP", "$10"},
		{"XXX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic+" "+tt.operand, func(t *testing.T) {
			_, err := Resolve(tt.mnemonic, tt.operand)
			assert.True(t, errors.Is(err, ErrIllegalInstruction))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		mnemonic string
		operand  string
		expected []byte
	}{
		{"LDA", "$1234", []byte{0xAD, 0x34, 0x12}},
		{"LDA", "#$4A", []byte{0xA9, 0x4A}},
		{"STA", "($20),Y", []byte{0x91, 0x20}},
		{"JMP", "($FFFC)", []byte{0x6C, 0xFC, 0xFF}},
		{"ROL", "", []byte{0x2A}},
		{"RTS", "", []byte{0x60}},
		{"JSR", "$C000", []byte{0x20, 0x00, 0xC0}},
		{"BEQ", "$FE", []byte{0xF0, 0xFE}},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic+" "+tt.operand, func(t *testing.T) {
			data, mode, err := Encode(tt.mnemonic, tt.operand)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, data)
			assert.Equal(t, mode.Length(), len(data))
		})
	}
}

func TestEncodeIllegalOperand(t *testing.T) {
	tests := []struct {
		mnemonic string
		operand  string
	}{
		{"NOP", "$10"},
		{"BNE", "$1234"},
		{"BNE", "#$10"},
		{"BNE", ""},
		{"JSR", "$12"},
		{"JSR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic+" "+tt.operand, func(t *testing.T) {
			_, _, err := Encode(tt.mnemonic, tt.operand)
			assert.True(t, errors.Is(err, ErrIllegalOperand))
		})
	}
}
