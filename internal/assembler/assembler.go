// Package assembler implements the two pass assembler.
package assembler

import (
	"fmt"

	"github.com/retroenv/nesgoasm/internal/parser"
	"github.com/retroenv/nesgoasm/internal/program"
	"github.com/retroenv/nesgoasm/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// Assembler translates assembly source lines into a binary image.
type Assembler struct {
	logger *log.Logger
}

// New returns a new assembler.
func New(logger *log.Logger) *Assembler {
	return &Assembler{
		logger: logger,
	}
}

// Assemble classifies all source lines, builds the label table in a first
// pass and encodes all instructions in a second pass.
func (a *Assembler) Assemble(source []string) (*program.Program, error) {
	lines, err := parser.ParseAll(source)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}

	layout, err := BuildLabels(a.logger, lines)
	if err != nil {
		return nil, fmt.Errorf("building label table: %w", err)
	}
	a.logger.Debug("First pass completed",
		log.Int("lines", len(lines)),
		log.Int("labels", layout.Labels.Len()),
		log.Int("size", layout.Size),
	)

	prog, err := Encode(lines, layout)
	if err != nil {
		return nil, fmt.Errorf("encoding instructions: %w", err)
	}
	a.logger.Debug("Second pass completed",
		log.Int("instructions", len(prog.Instructions)),
		log.Int("size", prog.Size()),
	)

	a.logLabels(prog.Labels)
	return prog, nil
}

func (a *Assembler) logLabels(labels symbols.Table) {
	for _, sym := range labels.Sorted() {
		if sym.IsAddress() {
			a.logger.Debug("Label", log.String("name", sym.Name), log.Hex("address", sym.Address))
		} else {
			a.logger.Debug("Constant", log.String("name", sym.Name), log.String("value", sym.Value))
		}
	}
}
