package chip8

import "math/bits"

// Display dimensions in pixels.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer is the monochrome 64x32 display. Every row is stored as a bit mask
// with column 0 in the most significant bit.
type Framebuffer struct {
	rows [ScreenHeight]uint64
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.rows = [ScreenHeight]uint64{}
}

// Pixel returns whether the pixel at the given position is on.
// Positions outside of the display are off.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return f.rows[y]&columnBit(x) != 0
}

// Set turns the pixel at the given position on or off. Positions outside of the
// display are ignored. The interpreter itself only mutates pixels by drawing.
func (f *Framebuffer) Set(x, y int, on bool) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	if on {
		f.rows[y] |= columnBit(x)
	} else {
		f.rows[y] &^= columnBit(x)
	}
}

// Row returns the pixels of a row as bit mask, column 0 being bit 63.
func (f *Framebuffer) Row(y int) uint64 {
	if y < 0 || y >= ScreenHeight {
		return 0
	}
	return f.rows[y]
}

// Lit returns the number of pixels that are on.
func (f *Framebuffer) Lit() int {
	var n int
	for _, row := range f.rows {
		n += bits.OnesCount64(row)
	}
	return n
}

// blit XORs an 8 pixel wide sprite row onto the display at the given position.
// Pixels right of the display edge are clipped. It returns whether any pixel
// that was on got turned off.
func (f *Framebuffer) blit(x, y int, sprite byte) bool {
	var mask uint64
	if shift := ScreenWidth - 8 - x; shift >= 0 {
		mask = uint64(sprite) << shift
	} else {
		mask = uint64(sprite) >> -shift
	}

	collision := f.rows[y]&mask != 0
	f.rows[y] ^= mask
	return collision
}

func columnBit(x int) uint64 {
	return 1 << (ScreenWidth - 1 - x)
}
