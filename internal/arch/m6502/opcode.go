package m6502

import (
	"github.com/retroenv/retrogolib/set"
)

// Instruction identifies one encoding of a mnemonic.
type Instruction struct {
	Mnemonic string
	Mode     Mode
}

// opcodes maps every official mnemonic and its supported addressing modes
// to the encoding byte.
var opcodes = map[string]map[Mode]byte{
	"ADC": {
		IndirectX: 0x61,
		ZeroPage:  0x65,
		Immediate: 0x69,
		Absolute:  0x6D,
		IndirectY: 0x71,
		ZeroPageX: 0x75,
		AbsoluteY: 0x79,
		AbsoluteX: 0x7D,
	},
	"AND": {
		IndirectX: 0x21,
		ZeroPage:  0x25,
		Immediate: 0x29,
		Absolute:  0x2D,
		IndirectY: 0x31,
		ZeroPageX: 0x35,
		AbsoluteY: 0x39,
		AbsoluteX: 0x3D,
	},
	"ASL": {
		ZeroPage:    0x06,
		Accumulator: 0x0A,
		Absolute:    0x0E,
		ZeroPageX:   0x16,
		AbsoluteX:   0x1E,
	},
	"BCC": {
		Relative: 0x90,
	},
	"BCS": {
		Relative: 0xB0,
	},
	"BEQ": {
		Relative: 0xF0,
	},
	"BIT": {
		ZeroPage: 0x24,
		Absolute: 0x2C,
	},
	"BMI": {
		Relative: 0x30,
	},
	"BNE": {
		Relative: 0xD0,
	},
	"BPL": {
		Relative: 0x10,
	},
	"BRK": {
		Implied: 0x00,
	},
	"BVC": {
		Relative: 0x50,
	},
	"BVS": {
		Relative: 0x70,
	},
	"CLC": {
		Implied: 0x18,
	},
	"CLD": {
		Implied: 0xD8,
	},
	"CLI": {
		Implied: 0x58,
	},
	"CLV": {
		Implied: 0xB8,
	},
	"CMP": {
		IndirectX: 0xC1,
		ZeroPage:  0xC5,
		Immediate: 0xC9,
		Absolute:  0xCD,
		IndirectY: 0xD1,
		ZeroPageX: 0xD5,
		AbsoluteY: 0xD9,
		AbsoluteX: 0xDD,
	},
	"CPX": {
		Immediate: 0xE0,
		ZeroPage:  0xE4,
		Absolute:  0xEC,
	},
	"CPY": {
		Immediate: 0xC0,
		ZeroPage:  0xC4,
		Absolute:  0xCC,
	},
	"DEC": {
		ZeroPage:  0xC6,
		Absolute:  0xCE,
		ZeroPageX: 0xD6,
		AbsoluteX: 0xDE,
	},
	"DEX": {
		Implied: 0xCA,
	},
	"DEY": {
		Implied: 0x88,
	},
	"EOR": {
		IndirectX: 0x41,
		ZeroPage:  0x45,
		Immediate: 0x49,
		Absolute:  0x4D,
		IndirectY: 0x51,
		ZeroPageX: 0x55,
		AbsoluteY: 0x59,
		AbsoluteX: 0x5D,
	},
	"INC": {
		ZeroPage:  0xE6,
		Absolute:  0xEE,
		ZeroPageX: 0xF6,
		AbsoluteX: 0xFE,
	},
	"INX": {
		Implied: 0xE8,
	},
	"INY": {
		Implied: 0xC8,
	},
	"JMP": {
		Absolute: 0x4C,
		Indirect: 0x6C,
	},
	"JSR": {
		Absolute: 0x20,
	},
	"LDA": {
		IndirectX: 0xA1,
		ZeroPage:  0xA5,
		Immediate: 0xA9,
		Absolute:  0xAD,
		IndirectY: 0xB1,
		ZeroPageX: 0xB5,
		AbsoluteY: 0xB9,
		AbsoluteX: 0xBD,
	},
	"LDX": {
		Immediate: 0xA2,
		ZeroPage:  0xA6,
		Absolute:  0xAE,
		ZeroPageY: 0xB6,
		AbsoluteY: 0xBE,
	},
	"LDY": {
		Immediate: 0xA0,
		ZeroPage:  0xA4,
		Absolute:  0xAC,
		ZeroPageX: 0xB4,
		AbsoluteX: 0xBC,
	},
	"LSR": {
		ZeroPage:    0x46,
		Accumulator: 0x4A,
		Absolute:    0x4E,
		ZeroPageX:   0x56,
		AbsoluteX:   0x5E,
	},
	"NOP": {
		Implied: 0xEA,
	},
	"ORA": {
		IndirectX: 0x01,
		ZeroPage:  0x05,
		Immediate: 0x09,
		Absolute:  0x0D,
		IndirectY: 0x11,
		ZeroPageX: 0x15,
		AbsoluteY: 0x19,
		AbsoluteX: 0x1D,
	},
	"PHA": {
		Implied: 0x48,
	},
	"PHP": {
		Implied: 0x08,
	},
	"PLA": {
		Implied: 0x68,
	},
	"PLP": {
		Implied: 0x28,
	},
	"ROL": {
		ZeroPage:    0x26,
		Accumulator: 0x2A,
		Absolute:    0x2E,
		ZeroPageX:   0x36,
		AbsoluteX:   0x3E,
	},
	"ROR": {
		ZeroPage:    0x66,
		Accumulator: 0x6A,
		Absolute:    0x6E,
		ZeroPageX:   0x76,
		AbsoluteX:   0x7E,
	},
	"RTI": {
		Implied: 0x40,
	},
	"RTS": {
		Implied: 0x60,
	},
	"SBC": {
		IndirectX: 0xE1,
		ZeroPage:  0xE5,
		Immediate: 0xE9,
		Absolute:  0xED,
		IndirectY: 0xF1,
		ZeroPageX: 0xF5,
		AbsoluteY: 0xF9,
		AbsoluteX: 0xFD,
	},
	"SEC": {
		Implied: 0x38,
	},
	"SED": {
		Implied: 0xF8,
	},
	"SEI": {
		Implied: 0x78,
	},
	"STA": {
		IndirectX: 0x81,
		ZeroPage:  0x85,
		Absolute:  0x8D,
		IndirectY: 0x91,
		ZeroPageX: 0x95,
		AbsoluteY: 0x99,
		AbsoluteX: 0x9D,
	},
	"STX": {
		ZeroPage:  0x86,
		Absolute:  0x8E,
		ZeroPageY: 0x96,
	},
	"STY": {
		ZeroPage:  0x84,
		Absolute:  0x8C,
		ZeroPageX: 0x94,
	},
	"TAX": {
		Implied: 0xAA,
	},
	"TAY": {
		Implied: 0xA8,
	},
	"TSX": {
		Implied: 0xBA,
	},
	"TXA": {
		Implied: 0x8A,
	},
	"TXS": {
		Implied: 0x9A,
	},
	"TYA": {
		Implied: 0x98,
	},
}

// fixedModes contains all mnemonics that only support a single addressing mode.
var fixedModes = map[string]Mode{
	"BCC": Relative,
	"BCS": Relative,
	"BEQ": Relative,
	"BMI": Relative,
	"BNE": Relative,
	"BPL": Relative,
	"BRK": Implied,
	"BVC": Relative,
	"BVS": Relative,
	"CLC": Implied,
	"CLD": Implied,
	"CLI": Implied,
	"CLV": Implied,
	"DEX": Implied,
	"DEY": Implied,
	"INX": Implied,
	"INY": Implied,
	"JSR": Absolute,
	"NOP": Implied,
	"PHA": Implied,
	"PHP": Implied,
	"PLA": Implied,
	"PLP": Implied,
	"RTI": Implied,
	"RTS": Implied,
	"SEC": Implied,
	"SED": Implied,
	"SEI": Implied,
	"TAX": Implied,
	"TAY": Implied,
	"TSX": Implied,
	"TXA": Implied,
	"TXS": Implied,
	"TYA": Implied,
}

var (
	mnemonics = buildMnemonicSet()
	decode    = buildDecodeTable()
)

func buildMnemonicSet() set.Set[string] {
	s := set.New[string]()
	for name := range opcodes {
		s.Add(name)
	}
	return s
}

func buildDecodeTable() map[byte]Instruction {
	m := make(map[byte]Instruction, 151)
	for name, encodings := range opcodes {
		for mode, b := range encodings {
			m[b] = Instruction{Mnemonic: name, Mode: mode}
		}
	}
	return m
}

// IsMnemonic returns whether the token is one of the supported mnemonics.
// Mnemonics are matched case sensitive in upper case.
func IsMnemonic(token string) bool {
	return mnemonics.Contains(token)
}

// Mnemonics returns the number of supported mnemonics.
func Mnemonics() int {
	return len(opcodes)
}

// FixedMode returns the addressing mode of a mnemonic that only has a
// single legal form.
func FixedMode(mnemonic string) (Mode, bool) {
	mode, ok := fixedModes[mnemonic]
	return mode, ok
}

// IsBranch returns whether the mnemonic is a relative branch instruction.
func IsBranch(mnemonic string) bool {
	return fixedModes[mnemonic] == Relative
}

// Opcode returns the encoding byte of the mnemonic in the given addressing mode.
func Opcode(mnemonic string, mode Mode) (byte, bool) {
	b, ok := opcodes[mnemonic][mode]
	return b, ok
}

// Decode returns the instruction that is encoded by the given opcode byte.
func Decode(b byte) (Instruction, bool) {
	ins, ok := decode[b]
	return ins, ok
}

// Instructions returns all supported encodings.
func Instructions() []Instruction {
	var result []Instruction
	for name, encodings := range opcodes {
		for mode := range encodings {
			result = append(result, Instruction{Mnemonic: name, Mode: mode})
		}
	}
	return result
}
