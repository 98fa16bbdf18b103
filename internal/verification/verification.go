// Package verification verifies that the generated binary image decodes back
// into the assembled instructions.
package verification

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/nesgoasm/internal/program"
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// maxReportedMismatches limits the number of mismatches that get logged.
const maxReportedMismatches = 10

var errMismatch = errors.New("output mismatch")

// VerifyOutput decodes the image of the program using the reference CPU
// opcode table and compares every decoded instruction with the assembled one.
// It also checks that all address labels point to an instruction start or
// to the end of the image.
func VerifyOutput(logger *log.Logger, app *program.Program) error {
	starts, err := checkInstructions(logger, app)
	if err != nil {
		return err
	}
	return checkLabels(logger, app, starts)
}

func checkInstructions(logger *log.Logger, app *program.Program) (set.Set[int], error) {
	starts := set.New[int]()
	var diffs int

	offset := 0
	for _, ins := range app.Instructions {
		if offset >= len(app.Code) {
			return nil, fmt.Errorf("%w: image ends at $%04X before instruction of line %d",
				errMismatch, offset, ins.Line)
		}
		if int(ins.Address) != offset {
			return nil, fmt.Errorf("%w: instruction of line %d expected at $%04X but placed at $%04X",
				errMismatch, ins.Line, offset, ins.Address)
		}
		starts.Add(offset)

		if err := checkDecoded(app.Code[offset], ins.Mnemonic, ins.Mode.CPUAddressing()); err != nil {
			diffs++
			if diffs <= maxReportedMismatches {
				logger.Error("Instruction mismatch",
					log.Hex("address", offset),
					log.Int("line", ins.Line),
					log.String("instruction", ins.String()),
					log.Hex("opcode", app.Code[offset]),
					log.Err(err))
			}
		}

		end := offset + ins.Len()
		if end > len(app.Code) {
			return nil, fmt.Errorf("%w: instruction of line %d exceeds image size", errMismatch, ins.Line)
		}
		if !bytes.Equal(ins.Data, app.Code[offset:end]) {
			diffs++
			if diffs <= maxReportedMismatches {
				logger.Error("Instruction bytes mismatch",
					log.Hex("address", offset),
					log.Int("line", ins.Line))
			}
		}
		offset = end
	}

	if offset != len(app.Code) {
		return nil, fmt.Errorf("%w: mismatched lengths, %d != %d", errMismatch, offset, len(app.Code))
	}
	if diffs > 0 {
		return nil, fmt.Errorf("%w: %d instruction mismatches", errMismatch, diffs)
	}
	return starts, nil
}

func checkDecoded(opcode byte, mnemonic string, addressing m6502.AddressingMode) error {
	decoded := m6502.Opcodes[opcode]
	if decoded.Instruction == nil {
		return errors.New("opcode does not decode to an instruction")
	}
	if decoded.Instruction.Unofficial {
		return fmt.Errorf("opcode decodes to unofficial instruction %s", decoded.Instruction.Name)
	}
	name := strings.ToUpper(decoded.Instruction.Name)
	if name != mnemonic {
		return fmt.Errorf("expected %s but opcode decodes to %s", mnemonic, name)
	}
	if decoded.Addressing != addressing {
		return fmt.Errorf("addressing mode mismatch for %s, expected %d but got %d",
			mnemonic, addressing, decoded.Addressing)
	}
	return nil
}

func checkLabels(logger *log.Logger, app *program.Program, starts set.Set[int]) error {
	addresses := make([]uint16, 0, len(app.Labels.Addresses()))
	for address := range app.Labels.Addresses() {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)

	var diffs int
	for _, address := range addresses {
		if starts.Contains(int(address)) || int(address) == len(app.Code) {
			continue
		}
		diffs++
		logger.Error("Label does not point to an instruction", log.Hex("address", address))
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d labels point inside of instructions", errMismatch, diffs)
}

