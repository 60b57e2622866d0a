// Package display converts the interpreter framebuffer to and from a text screen format.
//
// A screen consists of 32 lines of 64 characters, '#' for a pixel that is on
// and '.' for a pixel that is off.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Pixel characters of the text screen format.
const (
	PixelOn  = '#'
	PixelOff = '.'
)

// Render writes the framebuffer as text screen.
func Render(w io.Writer, fb chip8.Framebuffer) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, chip8.ScreenWidth+1)
	line[chip8.ScreenWidth] = '\n'

	for y := range chip8.ScreenHeight {
		for x := range chip8.ScreenWidth {
			line[x] = PixelOff
			if fb.Pixel(x, y) {
				line[x] = PixelOn
			}
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing screen: %w", err)
	}
	return nil
}

// Parse reads a text screen into a framebuffer. Trailing whitespace of lines
// is ignored.
func Parse(r io.Reader) (chip8.Framebuffer, error) {
	var fb chip8.Framebuffer
	scanner := bufio.NewScanner(r)

	var y int
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" && y == chip8.ScreenHeight {
			continue
		}
		if y == chip8.ScreenHeight {
			return fb, fmt.Errorf("screen has more than %d lines", chip8.ScreenHeight)
		}
		if len(line) != chip8.ScreenWidth {
			return fb, fmt.Errorf("line %d has %d characters, expected %d", y+1, len(line), chip8.ScreenWidth)
		}

		for x := range chip8.ScreenWidth {
			switch line[x] {
			case PixelOn:
				fb.Set(x, y, true)
			case PixelOff:
			default:
				return fb, fmt.Errorf("invalid pixel character '%c' in line %d", line[x], y+1)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return fb, fmt.Errorf("reading screen: %w", err)
	}

	if y != chip8.ScreenHeight {
		return fb, fmt.Errorf("screen has %d lines, expected %d", y, chip8.ScreenHeight)
	}
	return fb, nil
}
