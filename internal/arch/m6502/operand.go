package m6502

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/nesgoasm/internal/translate"
)

var (
	ErrIllegalInstruction = errors.New(translate.From("illegal instruction"))
	ErrIllegalOperand     = errors.New(translate.From("illegal operand"))
)

// Operand is a parsed operand literal.
type Operand struct {
	Mode  Mode   // addressing mode implied by the operand syntax
	Value uint16 // byte or word value of the literal
}

// Bytes returns the operand value bytes in little endian order.
func (o Operand) Bytes() []byte {
	switch o.Mode.OperandLength() {
	case 1:
		return []byte{byte(o.Value)}
	case 2:
		return []byte{byte(o.Value), byte(o.Value >> 8)}
	default:
		return nil
	}
}

// ParseOperand parses the operand literal syntax. Hex literals have to be
// exactly 2 or 4 digits, the mode is derived from the literal width and
// the surrounding syntax. An empty text returns an accumulator operand.
func ParseOperand(text string) (Operand, error) {
	if text == "" {
		return Operand{Mode: Accumulator}, nil
	}

	var op Operand
	var ok bool
	switch text[0] {
	case '#':
		op, ok = parseImmediate(text[1:])
	case '$':
		op, ok = parseDirect(text)
	case '(':
		op, ok = parseIndirect(text[1:])
	}
	if !ok {
		return Operand{}, fmt.Errorf("%w '%s'", ErrIllegalOperand, text)
	}
	return op, nil
}

// IsOperand returns whether the text is a valid non empty operand literal.
func IsOperand(text string) bool {
	if text == "" {
		return false
	}
	_, err := ParseOperand(text)
	return err == nil
}

// IsAssignmentValue returns whether the text is a valid value for a label
// assignment: an immediate byte, a byte or a word.
func IsAssignmentValue(text string) bool {
	op, err := ParseOperand(text)
	if err != nil {
		return false
	}
	switch op.Mode {
	case Immediate, ZeroPage, Absolute:
		return true
	default:
		return false
	}
}

// Resolve returns the addressing mode of the mnemonic for the operand text.
// Mnemonics with a single legal form always return that form. The resulting
// combination has to be supported by the opcode table.
func Resolve(mnemonic, operand string) (Mode, error) {
	encodings, ok := opcodes[mnemonic]
	if !ok {
		return 0, fmt.Errorf("%w: unknown mnemonic '%s'", ErrIllegalInstruction, mnemonic)
	}
	if mode, ok := fixedModes[mnemonic]; ok {
		return mode, nil
	}

	op, err := ParseOperand(operand)
	if err != nil {
		return 0, err
	}
	if _, ok := encodings[op.Mode]; !ok {
		return 0, fmt.Errorf("%w: %s does not support %s addressing", ErrIllegalInstruction, mnemonic, op.Mode)
	}
	return op.Mode, nil
}

// Encode resolves the addressing mode and returns the opcode byte followed
// by the operand bytes in little endian order.
func Encode(mnemonic, operand string) ([]byte, Mode, error) {
	mode, err := Resolve(mnemonic, operand)
	if err != nil {
		return nil, 0, err
	}

	op, err := ParseOperand(operand)
	if err != nil {
		return nil, 0, err
	}
	if op.Mode != syntaxMode(mode) {
		if operand == "" {
			return nil, 0, fmt.Errorf("%w: %s requires an operand", ErrIllegalOperand, mnemonic)
		}
		return nil, 0, fmt.Errorf("%w '%s' for %s in %s addressing", ErrIllegalOperand, operand, mnemonic, mode)
	}

	opcode := opcodes[mnemonic][mode]
	data := make([]byte, 0, mode.Length())
	data = append(data, opcode)
	data = append(data, op.Bytes()...)
	return data, mode, nil
}

// syntaxMode returns the mode that the operand syntax has to have for an
// instruction in the given mode. Branch displacements are written as byte
// literals and implied instructions do not take an operand.
func syntaxMode(mode Mode) Mode {
	switch mode {
	case Relative:
		return ZeroPage
	case Implied:
		return Accumulator
	default:
		return mode
	}
}

func parseImmediate(s string) (Operand, bool) {
	if !strings.HasPrefix(s, "$") {
		return Operand{}, false
	}
	value, digits := parseHex(s[1:])
	if digits != 2 || len(s) != 3 {
		return Operand{}, false
	}
	return Operand{Mode: Immediate, Value: value}, true
}

func parseDirect(s string) (Operand, bool) {
	value, digits := parseHex(s[1:])
	rest := s[1+digits:]

	var zeroPage, absolute Mode
	switch strings.ToUpper(rest) {
	case "":
		zeroPage, absolute = ZeroPage, Absolute
	case ",X":
		zeroPage, absolute = ZeroPageX, AbsoluteX
	case ",Y":
		zeroPage, absolute = ZeroPageY, AbsoluteY
	default:
		return Operand{}, false
	}

	switch digits {
	case 2:
		return Operand{Mode: zeroPage, Value: value}, true
	case 4:
		return Operand{Mode: absolute, Value: value}, true
	default:
		return Operand{}, false
	}
}

func parseIndirect(s string) (Operand, bool) {
	if !strings.HasPrefix(s, "$") {
		return Operand{}, false
	}
	value, digits := parseHex(s[1:])
	rest := strings.ToUpper(s[1+digits:])

	switch {
	case digits == 2 && rest == ",X)":
		return Operand{Mode: IndirectX, Value: value}, true
	case digits == 2 && rest == "),Y":
		return Operand{Mode: IndirectY, Value: value}, true
	case digits == 4 && rest == ")":
		return Operand{Mode: Indirect, Value: value}, true
	default:
		return Operand{}, false
	}
}

// parseHex parses the leading hex digits of s and returns the value and the
// number of digits read. More than 4 digits are reported but not converted.
func parseHex(s string) (uint16, int) {
	var value uint16
	digits := 0
	for digits < len(s) {
		c := s[digits]
		var nibble byte
		switch {
		case c >= '0' && c <= '9':
			nibble = c - '0'
		case c >= 'a' && c <= 'f':
			nibble = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			nibble = c - 'A' + 10
		default:
			return value, digits
		}
		value = value<<4 | uint16(nibble)
		digits++
	}
	return value, digits
}
