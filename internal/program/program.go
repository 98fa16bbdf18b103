// Package program represents an assembled program.
package program

import (
	"github.com/retroenv/nesgoasm/internal/instruction"
	"github.com/retroenv/nesgoasm/internal/symbols"
)

// MaxSize is the maximum size of the image, the 6502 address space.
const MaxSize = 0x10000

// Program is the result of assembling a source.
type Program struct {
	Code         []byte                    // binary image starting at address 0
	Instructions []instruction.Instruction // all instructions in address order
	Labels       symbols.Table
}

// New creates a new program for the given label table.
func New(labels symbols.Table) *Program {
	return &Program{
		Labels: labels,
	}
}

// Append adds an encoded instruction to the end of the image.
func (p *Program) Append(ins instruction.Instruction) {
	p.Code = append(p.Code, ins.Data...)
	p.Instructions = append(p.Instructions, ins)
}

// Size returns the size of the image in bytes.
func (p *Program) Size() int {
	return len(p.Code)
}
