// Package parser classifies assembly source lines.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/retroenv/nesgoasm/internal/arch/m6502"
	"github.com/retroenv/nesgoasm/internal/translate"
)

// ErrSyntax is returned for a line that does not match any line grammar.
var ErrSyntax = errors.New(translate.From("syntax error"))

const commentStart = ';'

// labelExcludedChars can not be part of a label name.
const labelExcludedChars = ";$#=()"

// SyntaxError describes a line that could not be classified.
type SyntaxError struct {
	LineNo int
	Line   string
}

func (e *SyntaxError) Error() string {
	return translate.From("line %s '%s': %v", strconv.Itoa(e.LineNo), e.Line, ErrSyntax)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// ParseAll classifies all lines of a source, line numbers start at 1.
func ParseAll(source []string) ([]Line, error) {
	lines := make([]Line, 0, len(source))
	for i, text := range source {
		line, err := Parse(i+1, text)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Parse classifies a single source line.
func Parse(number int, text string) (Line, error) {
	line := Line{
		Number: number,
		Text:   text,
		Code:   StripComment(text),
	}

	if strings.TrimSpace(line.Code) == "" {
		line.Kind = Blank
		return line, nil
	}

	var ok bool
	if strings.ContainsRune(line.Code, '=') {
		ok = parseAssignment(&line)
	} else {
		ok = parseStatement(&line)
	}
	if !ok {
		return Line{}, &SyntaxError{LineNo: number, Line: text}
	}
	return line, nil
}

// StripComment removes everything from the first comment character to the end of the line.
func StripComment(text string) string {
	if i := strings.IndexByte(text, commentStart); i >= 0 {
		return text[:i]
	}
	return text
}

// IsLabel returns whether the token is a valid label name.
func IsLabel(token string) bool {
	if token == "" {
		return false
	}
	return !strings.ContainsAny(token, labelExcludedChars) && len(strings.Fields(token)) == 1
}

func parseAssignment(line *Line) bool {
	name, value, found := strings.Cut(line.Code, "=")
	if !found {
		return false
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if !IsLabel(name) || !m6502.IsAssignmentValue(value) {
		return false
	}

	line.Kind = Assignment
	line.Label = name
	line.Value = value
	return true
}

func parseStatement(line *Line) bool {
	fields := strings.Fields(line.Code)

	switch len(fields) {
	case 1:
		switch {
		case m6502.IsMnemonic(fields[0]):
			line.Kind = Mnemonic
			line.Mnemonic = fields[0]
		case IsLabel(fields[0]):
			line.Kind = Label
			line.Label = fields[0]
		default:
			return false
		}
		return true

	case 2:
		if m6502.IsMnemonic(fields[0]) {
			line.Mnemonic = fields[0]
			return parseOperand(line, fields[1], MnemonicOperand, MnemonicLabel)
		}
		if IsLabel(fields[0]) && m6502.IsMnemonic(fields[1]) {
			line.Kind = LabelMnemonic
			line.Label = fields[0]
			line.Mnemonic = fields[1]
			return true
		}
		return false

	case 3:
		if !IsLabel(fields[0]) || !m6502.IsMnemonic(fields[1]) {
			return false
		}
		line.Label = fields[0]
		line.Mnemonic = fields[1]
		return parseOperand(line, fields[2], LabelMnemonicOperand, LabelMnemonicLabel)

	default:
		return false
	}
}

// parseOperand sets the operand of the line, which can be either an
// operand literal or a label reference.
func parseOperand(line *Line, token string, operandKind, labelKind Kind) bool {
	switch {
	case m6502.IsOperand(token):
		line.Kind = operandKind
		line.Operand = token
	case IsLabel(token):
		line.Kind = labelKind
		line.OperandLabel = token
	default:
		return false
	}
	return true
}
