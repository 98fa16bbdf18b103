// Package config handles application configuration and setup
package config

import (
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
)

// OutputExtension is the file extension of generated binary files.
const OutputExtension = ".bin"

// CreateLogger creates a logger with appropriate settings. When the binary
// image is written to stdout, log output goes to stderr.
func CreateLogger(debug, quiet, imageOnStdout bool) *log.Logger {
	return log.NewWithConfig(loggerConfig(debug, quiet, imageOnStdout))
}

func loggerConfig(debug, quiet, imageOnStdout bool) log.Config {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	if imageOnStdout {
		cfg.Output = os.Stderr
	}
	return cfg
}

// OutputFilename returns the binary file name for a source file name.
func OutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + OutputExtension
}
