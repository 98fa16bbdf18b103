package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load source file", func(t *testing.T) {
		tmpFile := createTempFile(t, "start LDA #$01\n\tBNE start ; loop\n")

		lines, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []string{"start LDA #$01", "\tBNE start ; loop"}, lines)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		tmpFile := createTempFile(t, "NOP\nRTS")

		lines, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []string{"NOP", "RTS"}, lines)
	})

	t.Run("empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, "")

		lines, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, lines, 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.asm")
		assert.Error(t, err)
	})
}

func TestLoadFromReader(t *testing.T) {
	t.Run("windows line endings", func(t *testing.T) {
		lines, err := New().LoadFromReader(strings.NewReader("NOP\r\nRTS\r\n"))
		assert.NoError(t, err)
		assert.Equal(t, []string{"NOP", "RTS"}, lines)
	})

	t.Run("blank lines are kept", func(t *testing.T) {
		lines, err := New().LoadFromReader(strings.NewReader("NOP\n\n\nRTS\n"))
		assert.NoError(t, err)
		assert.Equal(t, []string{"NOP", "", "", "RTS"}, lines)
	})
}

func createTempFile(t *testing.T, data string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.asm")
	if err := os.WriteFile(tmpFile, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
