// Package writer implements binary image file writing functionality.
package writer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/nesgoasm/internal/program"
	"golang.org/x/term"
)

// ErrTerminalOutput is returned when binary output would be written to a terminal.
var ErrTerminalOutput = errors.New("refusing to write binary output to a terminal")

// defaultFileMode is the mode of newly created output files.
const defaultFileMode os.FileMode = 0o644

// Writer writes the binary image of an assembled program.
type Writer struct {
	app *program.Program
}

// New creates a new writer.
func New(app *program.Program) *Writer {
	return &Writer{
		app: app,
	}
}

// Write writes the image to the writer.
func (w Writer) Write(writer io.Writer) error {
	if _, err := writer.Write(w.app.Code); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

// WriteFile writes the image to a temporary file in the directory of the
// target and renames it to the target name afterwards, an existing output
// file is therefore never left partially written.
func (w Writer) WriteFile(path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = w.Write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(outputMode(path)); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file to '%s': %w", path, err)
	}
	return nil
}

// WriteStdout writes the image to stdout unless stdout is a terminal.
func (w Writer) WriteStdout() error {
	return w.writeFile(os.Stdout)
}

func (w Writer) writeFile(file *os.File) error {
	if term.IsTerminal(int(file.Fd())) {
		return ErrTerminalOutput
	}
	return w.Write(file)
}

// outputMode returns the mode of the file that gets replaced or the default
// mode for a new file.
func outputMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}
