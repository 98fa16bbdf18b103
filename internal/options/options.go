// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input assembly source file"`
	Output string `flag:"o" usage:"output binary file, - for stdout (default: input name with .bin extension)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.asm)"`
}

// Flags contains behavior options.
type Flags struct {
	AssembleTest bool `flag:"verify" usage:"verify output by decoding it and comparing it to the assembled instructions"`
	Debug        bool `flag:"debug" usage:"enable debug logging"`
	Quiet        bool `flag:"q" usage:"quiet mode"`
}

// Program options of the assembler.
type Program struct {
	Parameters
	Flags
}

// StdoutOutput is the output name that writes the binary to stdout.
const StdoutOutput = "-"

// WritesToStdout returns whether the output should be written to stdout.
func (p Program) WritesToStdout() bool {
	return p.Output == StdoutOutput
}
