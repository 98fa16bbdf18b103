// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/retroenv/nesgoasm/internal/config"
	"github.com/retroenv/nesgoasm/internal/options"
	"github.com/retroenv/nesgoasm/internal/pipeline"
	"github.com/retroenv/nesgoasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow. The output is
// only written after assembling and the optional verification succeeded.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	pipe := pipeline.New(logger)
	app, err := pipe.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Debug {
		for _, ins := range app.Instructions {
			logger.Debug(ins.String(), log.Int("line", ins.Line))
		}
	}

	w := writer.New(app)
	if opts.WritesToStdout() {
		if err := w.WriteStdout(); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := w.WriteFile(opts.Output); err != nil {
		return fmt.Errorf("writing output file %s: %w", opts.Output, err)
	}

	if !opts.Quiet {
		logger.Info("Output written",
			log.String("file", opts.Output),
			log.Int("size", app.Size()),
			log.Int("labels", app.Labels.Len()))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	return config.OutputFilename(inputFile)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("nesgoasm", log.String("version", buildinfo.Version(version, commit, date)))
}
