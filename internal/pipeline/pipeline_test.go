package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/nesgoasm/internal/assembler"
	"github.com/retroenv/nesgoasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tmpFile := createTempFile(t, "start LDX #$08\nloop DEX\nBNE loop\nRTS\n")
	opts := options.Program{
		Parameters: options.Parameters{Input: tmpFile},
		Flags:      options.Flags{AssembleTest: true},
	}

	app, err := p.Execute(context.Background(), opts)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa2, 0x08, 0xca, 0xd0, 0xfd, 0x60}, app.Code)
}

func TestExecuteErrors(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("missing file", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: "/nonexistent/file.asm"}}
		_, err := p.Execute(context.Background(), opts)
		assert.ErrorContains(t, err, "loading source")
	})

	t.Run("assembly error", func(t *testing.T) {
		opts := options.Program{Flags: options.Flags{Quiet: true}}
		_, err := p.ExecuteWithSource(context.Background(), []string{"JMP nowhere"}, opts)
		assert.True(t, errors.Is(err, assembler.ErrUnresolvedLabel))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.ExecuteWithSource(ctx, []string{"NOP"}, options.Program{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func createTempFile(t *testing.T, data string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.asm")
	if err := os.WriteFile(tmpFile, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
