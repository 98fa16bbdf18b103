package assembler

import (
	"fmt"

	"github.com/retroenv/nesgoasm/internal/arch/m6502"
	"github.com/retroenv/nesgoasm/internal/parser"
	"github.com/retroenv/nesgoasm/internal/program"
	"github.com/retroenv/nesgoasm/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// Layout is the result of the first pass.
type Layout struct {
	Labels    symbols.Table
	Addresses []int // start address of every line, indexed like the source lines
	Size      int   // total image size in bytes
}

// BuildLabels walks all lines once and computes the address of every label
// and instruction. The returned label table is complete and read-only.
func BuildLabels(logger *log.Logger, lines []parser.Line) (Layout, error) {
	constants := collectConstants(lines)
	builder := symbols.NewBuilder()
	addresses := make([]int, len(lines))
	cursor := 0

	for i, line := range lines {
		addresses[i] = cursor

		switch {
		case line.Kind == parser.Assignment:
			defineLabel(logger, builder, symbols.Symbol{
				Name:  line.Label,
				Kind:  symbols.ConstantKind,
				Value: line.Value,
				Line:  line.Number,
			})
			continue

		case line.DefinesAddress():
			if cursor >= program.MaxSize {
				return Layout{}, newLineError(line, fmt.Errorf("%w: label '%s' is outside of the address space",
					ErrProgramTooLarge, line.Label))
			}
			defineLabel(logger, builder, symbols.Symbol{
				Name:    line.Label,
				Kind:    symbols.AddressKind,
				Address: uint16(cursor),
				Line:    line.Number,
			})
		}

		if !line.HasInstruction() {
			continue
		}

		length, err := instructionLength(builder, constants, line)
		if err != nil {
			return Layout{}, newLineError(line, err)
		}
		cursor += length
		if cursor > program.MaxSize {
			return Layout{}, newLineError(line, fmt.Errorf("%w: image exceeds %d bytes", ErrProgramTooLarge, program.MaxSize))
		}
	}

	return Layout{
		Labels:    builder.Freeze(),
		Addresses: addresses,
		Size:      cursor,
	}, nil
}

// collectConstants returns the last assigned value of every assignment label,
// which allows constants to be used before their assignment line.
func collectConstants(lines []parser.Line) map[string]string {
	constants := map[string]string{}
	for _, line := range lines {
		if line.Kind == parser.Assignment {
			constants[line.Label] = line.Value
		}
	}
	return constants
}

func defineLabel(logger *log.Logger, builder *symbols.Builder, sym symbols.Symbol) {
	previous, redefined := builder.Define(sym)
	if !redefined {
		return
	}
	logger.Warn("Label defined multiple times, using the later definition",
		log.String("label", sym.Name),
		log.Int("line", sym.Line),
		log.Int("previous", previous.Line),
	)
}

// instructionLength returns the encoded length of the instruction of the line.
// Instructions with a single addressing mode do not depend on the operand,
// which allows them to reference labels that are defined later.
func instructionLength(builder *symbols.Builder, constants map[string]string, line parser.Line) (int, error) {
	operand := line.Operand

	if line.OperandLabel != "" {
		// the binding of the label is only final in pass 2
		if mode, fixed := m6502.FixedMode(line.Mnemonic); fixed {
			return mode.Length(), nil
		}
		value, ok := constants[line.OperandLabel]
		if !ok {
			if sym, bound := builder.Get(line.OperandLabel); bound && sym.IsAddress() {
				return 0, fmt.Errorf("%w: address label '%s' can only be used by relative branches",
					m6502.ErrIllegalOperand, line.OperandLabel)
			}
			return 0, fmt.Errorf("%w '%s'", ErrUnresolvedLabel, line.OperandLabel)
		}
		operand = value
	}

	data, _, err := m6502.Encode(line.Mnemonic, operand)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

func newLineError(line parser.Line, err error) error {
	return &LineError{
		LineNo: line.Number,
		Line:   line.Text,
		Err:    err,
	}
}
