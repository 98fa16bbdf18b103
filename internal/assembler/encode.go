package assembler

import (
	"fmt"

	"github.com/retroenv/nesgoasm/internal/arch/m6502"
	"github.com/retroenv/nesgoasm/internal/instruction"
	"github.com/retroenv/nesgoasm/internal/parser"
	"github.com/retroenv/nesgoasm/internal/program"
	"github.com/retroenv/nesgoasm/internal/symbols"
)

const (
	minBranchOffset = -128
	maxBranchOffset = 127
)

// Encode walks all lines a second time and encodes the instructions using
// the completed layout of the first pass.
func Encode(lines []parser.Line, layout Layout) (*program.Program, error) {
	if len(layout.Addresses) != len(lines) {
		return nil, fmt.Errorf("%w: layout has %d lines, source has %d",
			errLayoutMismatch, len(layout.Addresses), len(lines))
	}

	prog := program.New(layout.Labels)
	cursor := 0

	for i, line := range lines {
		if !line.HasInstruction() {
			continue
		}
		if cursor != layout.Addresses[i] {
			return nil, newLineError(line, fmt.Errorf("%w: $%04X != $%04X",
				errLayoutMismatch, cursor, layout.Addresses[i]))
		}

		data, mode, err := encodeLine(layout.Labels, line, cursor)
		if err != nil {
			return nil, newLineError(line, err)
		}

		prog.Append(instruction.Instruction{
			Address:  uint16(cursor),
			Line:     line.Number,
			Mnemonic: line.Mnemonic,
			Mode:     mode,
			Data:     data,
		})
		cursor += len(data)
	}

	return prog, nil
}

func encodeLine(labels symbols.Table, line parser.Line, cursor int) ([]byte, m6502.Mode, error) {
	if line.OperandLabel == "" {
		return m6502.Encode(line.Mnemonic, line.Operand)
	}

	sym, ok := labels.Get(line.OperandLabel)
	if !ok {
		return nil, 0, fmt.Errorf("%w '%s'", ErrUnresolvedLabel, line.OperandLabel)
	}
	if sym.IsConstant() {
		return m6502.Encode(line.Mnemonic, sym.Value)
	}

	data, err := encodeBranch(line.Mnemonic, sym, cursor)
	if err != nil {
		return nil, 0, err
	}
	return data, m6502.Relative, nil
}

// encodeBranch encodes a relative branch to an address label. The offset
// is relative to the address following the branch instruction.
func encodeBranch(mnemonic string, target symbols.Symbol, cursor int) ([]byte, error) {
	if !m6502.IsBranch(mnemonic) {
		return nil, fmt.Errorf("%w: address label '%s' can only be used by relative branches",
			m6502.ErrIllegalOperand, target.Name)
	}
	opcode, ok := m6502.Opcode(mnemonic, m6502.Relative)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not support relative addressing", m6502.ErrIllegalInstruction, mnemonic)
	}

	next := cursor + m6502.Relative.Length()
	offset := int(target.Address) - next
	if offset < minBranchOffset || offset > maxBranchOffset {
		return nil, fmt.Errorf("%w: offset %d to label '%s' is not in range [%d, %d]",
			ErrBranchRange, offset, target.Name, minBranchOffset, maxBranchOffset)
	}

	if offset < 0 {
		offset += 256 // two's complement
	}
	return []byte{opcode, byte(offset)}, nil
}
