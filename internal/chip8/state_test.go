package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryBounds(t *testing.T) {
	m, err := newMemory(nil)
	assert.NoError(t, err)

	assert.NoError(t, m.Write(MemorySize-1, 0xAB))
	b, err := m.Read(MemorySize - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	_, err = m.Read(MemorySize)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.True(t, errors.Is(m.Write(MemorySize, 1), ErrOutOfBounds))

	_, err = m.ReadWord(MemorySize - 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, err = m.ReadWord(0xFFFF)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	window, err := m.Slice(MemorySize-2, 2)
	assert.NoError(t, err)
	assert.Len(t, window, 2)
	assert.Equal(t, 2, cap(window))

	_, err = m.Slice(MemorySize-2, 3)
	assert.ErrorContains(t, err, "$0FFE-$1000")
}

func TestMemoryReadWord(t *testing.T) {
	m, err := newMemory([]byte{0xA2, 0x50})
	assert.NoError(t, err)

	word, err := m.ReadWord(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xA250), word)
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(0x50), GlyphAddress(0))
	assert.Equal(t, uint16(0x82), GlyphAddress(0xA))
	assert.Equal(t, uint16(0x9B), GlyphAddress(0xF))
}

func TestStack(t *testing.T) {
	var s Stack

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))

	for i := range uint16(StackDepth) {
		assert.NoError(t, s.Push(0x200+i*2))
	}
	assert.True(t, errors.Is(s.Push(0x300), ErrStackOverflow))
	assert.Equal(t, StackDepth, s.Depth())

	for i := StackDepth - 1; i >= 0; i-- {
		address, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x200+i*2), address)
	}
	assert.Equal(t, 0, s.Depth())
}

func TestTimersFloor(t *testing.T) {
	var timers Timers
	timers.Tick()
	assert.Equal(t, uint8(0), timers.Delay)
	assert.Equal(t, uint8(0), timers.Sound)

	timers.Delay = 1
	timers.Sound = 3
	timers.Tick()
	timers.Tick()
	assert.Equal(t, uint8(0), timers.Delay)
	assert.Equal(t, uint8(1), timers.Sound)
	assert.True(t, timers.SoundActive())
}

func TestKeypad(t *testing.T) {
	var k Keypad

	_, ok := k.FirstDown()
	assert.False(t, ok)

	assert.NoError(t, k.Press(0x9))
	assert.NoError(t, k.Press(0x3))
	key, ok := k.FirstDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3), key)

	assert.NoError(t, k.Release(0x3))
	key, _ = k.FirstDown()
	assert.Equal(t, uint8(0x9), key)

	assert.True(t, errors.Is(k.Press(NumKeys), ErrInvalidKey))
	assert.False(t, k.IsDown(NumKeys))
}

func TestFramebuffer(t *testing.T) {
	var f Framebuffer

	f.Set(0, 0, true)
	f.Set(63, 31, true)
	f.Set(64, 0, true)
	f.Set(-1, 5, true)
	assert.True(t, f.Pixel(0, 0))
	assert.True(t, f.Pixel(63, 31))
	assert.False(t, f.Pixel(64, 0))
	assert.Equal(t, 2, f.Lit())
	assert.Equal(t, uint64(1)<<63, f.Row(0))
	assert.Equal(t, uint64(1), f.Row(31))

	f.Set(0, 0, false)
	assert.False(t, f.Pixel(0, 0))

	f.Clear()
	assert.Equal(t, 0, f.Lit())
}

func TestFramebufferBlit(t *testing.T) {
	var f Framebuffer

	assert.False(t, f.blit(0, 0, 0xFF))
	assert.Equal(t, uint64(0xFF)<<56, f.Row(0))

	assert.False(t, f.blit(62, 1, 0xC3))
	assert.Equal(t, uint64(0x3), f.Row(1))

	// zero bits never change pixels
	assert.False(t, f.blit(0, 0, 0x00))
	assert.True(t, f.blit(4, 0, 0x10))
	assert.Equal(t, uint64(0xFE)<<56, f.Row(0))
}
