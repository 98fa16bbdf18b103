package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/nesgoasm/internal/program"
	"github.com/retroenv/nesgoasm/internal/symbols"
	"github.com/retroenv/retrogolib/assert"
)

func testProgram() *program.Program {
	app := program.New(symbols.NewBuilder().Freeze())
	app.Code = []byte{0xa9, 0x01, 0x60}
	return app
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, New(testProgram()).Write(&buf))
	assert.Equal(t, []byte{0xa9, 0x01, 0x60}, buf.Bytes())
}

func TestWriteFile(t *testing.T) {
	t.Run("new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.bin")

		assert.NoError(t, New(testProgram()).WriteFile(path))

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0xa9, 0x01, 0x60}, data)
	})

	t.Run("replace existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.bin")
		assert.NoError(t, os.WriteFile(path, []byte("previous content"), 0600))

		assert.NoError(t, New(testProgram()).WriteFile(path))

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0xa9, 0x01, 0x60}, data)

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 1, "temp file was not cleaned up")
	})

	t.Run("new file mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.bin")
		assert.NoError(t, New(testProgram()).WriteFile(path))

		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, defaultFileMode, info.Mode().Perm())
	})

	t.Run("replaced file keeps mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.bin")
		assert.NoError(t, os.WriteFile(path, []byte("previous"), 0600))
		assert.NoError(t, os.Chmod(path, 0o640))

		assert.NoError(t, New(testProgram()).WriteFile(path))

		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.bin")
		assert.Error(t, New(testProgram()).WriteFile(path))
	})
}

func TestWriteToRegularFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "stdout.bin"))
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.NoError(t, New(testProgram()).writeFile(file))
}
