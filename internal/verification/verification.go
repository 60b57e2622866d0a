// Package verification verifies that the final screen of a run matches an expected screen.
package verification

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/log"
)

const maxReportedMismatches = 10

// VerifyScreen compares the framebuffer with the screen stored in the expected file.
func VerifyScreen(logger *log.Logger, expectedFile string, fb chip8.Framebuffer) error {
	file, err := os.Open(expectedFile)
	if err != nil {
		return fmt.Errorf("opening expected screen file '%s': %w", expectedFile, err)
	}
	defer func() {
		_ = file.Close()
	}()

	expected, err := display.Parse(file)
	if err != nil {
		return fmt.Errorf("parsing expected screen file '%s': %w", expectedFile, err)
	}

	return checkScreenEqual(logger, expected, fb)
}

func checkScreenEqual(logger *log.Logger, expected, got chip8.Framebuffer) error {
	var diffs int
	for y := range chip8.ScreenHeight {
		if expected.Row(y) == got.Row(y) {
			continue
		}

		for x := range chip8.ScreenWidth {
			want := expected.Pixel(x, y)
			if want == got.Pixel(x, y) {
				continue
			}

			diffs++
			if diffs <= maxReportedMismatches {
				logger.Error("Pixel mismatch",
					log.Int("x", x),
					log.Int("y", y),
					log.String("expected", pixelState(want)))
			}
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d pixel mismatches", diffs)
}

func pixelState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
