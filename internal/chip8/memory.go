package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: built-in hexadecimal font (16 glyphs of 5 bytes)
//	0x200-0xFFF: program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// FontStart is the address of the glyph for digit 0.
	FontStart = 0x50

	// ProgramStart is the address the program image is loaded to and execution starts at.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	glyphSize = 5
)

var font = [16 * glyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat byte addressable memory of the machine.
// Every access is bounds checked.
type Memory struct {
	data [MemorySize]byte
}

// newMemory returns a memory with the font table and the program image loaded.
func newMemory(program []byte) (*Memory, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m := &Memory{}
	copy(m.data[FontStart:], font[:])
	copy(m.data[ProgramStart:], program)
	return m, nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, outOfBounds(int(address), 1)
	}
	return m.data[address], nil
}

// ReadWord returns the big-endian 16 bit word at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= MemorySize {
		return 0, outOfBounds(int(address), 2)
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= MemorySize {
		return outOfBounds(int(address), 1)
	}
	m.data[address] = value
	return nil
}

// Slice returns the memory window of the given length starting at address.
// The returned slice aliases the memory and is capped to its length.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	start := int(address)
	end := start + length
	if length < 0 || end > MemorySize {
		return nil, outOfBounds(start, length)
	}
	return m.data[start:end:end], nil
}

// GlyphAddress returns the address of the font glyph for the given value.
func GlyphAddress(value uint8) uint16 {
	return FontStart + uint16(value)*glyphSize
}
