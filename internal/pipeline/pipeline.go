// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/nesgoasm/internal/assembler"
	"github.com/retroenv/nesgoasm/internal/loader"
	"github.com/retroenv/nesgoasm/internal/options"
	"github.com/retroenv/nesgoasm/internal/program"
	"github.com/retroenv/nesgoasm/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new assembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input file of the options and runs the assembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*program.Program, error) {
	source, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	return p.ExecuteWithSource(ctx, source, opts)
}

// ExecuteWithSource runs the assembly pipeline with source lines that are
// already in memory.
func (p *Pipeline) ExecuteWithSource(ctx context.Context, source []string, opts options.Program) (*program.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assembling: %w", err)
	}

	p.printInfo(opts, source)

	asm := assembler.New(p.logger)
	app, err := asm.Assemble(source)
	if err != nil {
		return nil, fmt.Errorf("assembling: %w", err)
	}

	// Verify output (if requested)
	if opts.AssembleTest {
		if err := verification.VerifyOutput(p.logger, app); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return app, nil
}

// printInfo prints information about the source being processed.
func (p *Pipeline) printInfo(opts options.Program, source []string) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing source",
		log.String("file", opts.Input),
		log.Int("lines", len(source)),
	)
}
