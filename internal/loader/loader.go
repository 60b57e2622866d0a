// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/arch"
)

// ErrEmptyFile is returned for ROM files without content.
var ErrEmptyFile = errors.New("empty ROM file")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file for the given system. CHIP-8 ROMs have no header,
// the file content is the raw program.
func (l *Loader) Load(filename string, system arch.System) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return l.LoadFromBytes(data, system)
}

// LoadFromBytes checks that the program data can be loaded by the system.
func (l *Loader) LoadFromBytes(data []byte, system arch.System) ([]byte, error) {
	if system != arch.CHIP8System {
		return nil, fmt.Errorf("unsupported system '%s'", system)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", chip8.ErrProgramTooLarge, len(data), chip8.MaxProgramSize)
	}
	return data, nil
}
