package parser

import (
	"fmt"
	"strings"
)

// Kind is the classified form of a source line.
type Kind uint8

// All line kinds.
const (
	Blank                Kind = iota // empty or comment only
	Label                            // LABEL
	Assignment                       // LABEL = VALUE
	Mnemonic                         // MNE
	MnemonicOperand                  // MNE OPERAND
	MnemonicLabel                    // MNE LABEL
	LabelMnemonic                    // LABEL MNE
	LabelMnemonicOperand             // LABEL MNE OPERAND
	LabelMnemonicLabel               // LABEL MNE LABEL
)

var kindNames = [...]string{
	Blank:                "blank",
	Label:                "label",
	Assignment:           "assignment",
	Mnemonic:             "mnemonic",
	MnemonicOperand:      "mnemonic operand",
	MnemonicLabel:        "mnemonic label",
	LabelMnemonic:        "label mnemonic",
	LabelMnemonicOperand: "label mnemonic operand",
	LabelMnemonicLabel:   "label mnemonic label",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Line is a classified source line.
type Line struct {
	Number int    // 1-based line number
	Text   string // raw source text
	Code   string // text without comment

	Kind         Kind
	Label        string // label defined by this line
	Mnemonic     string
	Operand      string // operand literal
	OperandLabel string // label referenced as operand
	Value        string // assigned value of an assignment line
}

// HasInstruction returns whether the line contains an instruction.
func (l Line) HasInstruction() bool {
	return l.Mnemonic != ""
}

// DefinesAddress returns whether the line binds a label to the current address.
func (l Line) DefinesAddress() bool {
	return l.Label != "" && l.Kind != Assignment
}

// String returns a short description of the line used in log output.
func (l Line) String() string {
	return fmt.Sprintf("%d: %s", l.Number, strings.TrimSpace(l.Code))
}
