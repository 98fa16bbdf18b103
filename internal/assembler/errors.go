package assembler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/retroenv/nesgoasm/internal/translate"
)

var (
	ErrBranchRange     = errors.New(translate.From("branch out of range"))
	ErrUnresolvedLabel = errors.New(translate.From("unresolved label"))
	ErrProgramTooLarge = errors.New(translate.From("program too large"))

	errLayoutMismatch = errors.New("instruction address differs from first pass")
)

// LineError is a fatal error of a specific source line.
type LineError struct {
	LineNo int
	Line   string
	Err    error
}

func (e *LineError) Error() string {
	return translate.From("line %s '%s': %v", strconv.Itoa(e.LineNo), strings.TrimSpace(e.Line), e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
