package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load CHIP8 file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		loader := New()
		program, err := loader.Load(tmpFile, arch.CHIP8System)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, program)
	})

	t.Run("maximum program size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		loader := New()
		program, err := loader.Load(tmpFile, arch.CHIP8System)
		assert.NoError(t, err)
		assert.Len(t, program, chip8.MaxProgramSize)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		_, err := loader.Load("/nonexistent/file.ch8", arch.CHIP8System)
		assert.Error(t, err)
	})
}

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		system  arch.System
		wantErr error
	}{
		{"single instruction", []byte{0x00, 0xE0}, arch.CHIP8System, nil},
		{"odd length", []byte{0x00, 0xE0, 0x12}, arch.CHIP8System, nil},
		{"empty", nil, arch.CHIP8System, ErrEmptyFile},
		{"too large", make([]byte, chip8.MaxProgramSize+1), arch.CHIP8System, chip8.ErrProgramTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := New()
			program, err := loader.LoadFromBytes(tt.data, tt.system)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.data, program)
		})
	}

	t.Run("unsupported system", func(t *testing.T) {
		loader := New()
		_, err := loader.LoadFromBytes([]byte{0xEA}, arch.NES)
		assert.ErrorContains(t, err, "unsupported system")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
