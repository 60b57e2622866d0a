package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestRender(t *testing.T) {
	vm, err := chip8.New([]byte{
		0xA0, 0x50, // LD I, $050
		0xD0, 0x05, // DRW V0, V0, 5
	})
	assert.NoError(t, err)
	assert.NoError(t, vm.Step())
	assert.NoError(t, vm.Step())

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, vm.Framebuffer()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, chip8.ScreenHeight)

	blank := strings.Repeat(".", chip8.ScreenWidth-4)
	want := []string{
		"####" + blank,
		"#..#" + blank,
		"#..#" + blank,
		"#..#" + blank,
		"####" + blank,
		strings.Repeat(".", chip8.ScreenWidth),
	}
	if diff := cmp.Diff(want, lines[:6]); diff != "" {
		t.Errorf("screen: (-want, +got)\n%s", diff)
	}
}

func TestParseRoundTrip(t *testing.T) {
	var fb chip8.Framebuffer
	fb.Set(0, 0, true)
	fb.Set(10, 5, true)
	fb.Set(63, 31, true)

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, fb))
	buf.WriteString("\n")

	parsed, err := Parse(&buf)
	assert.NoError(t, err)
	assert.Equal(t, fb, parsed)
}

func TestParseErrors(t *testing.T) {
	row := strings.Repeat(".", chip8.ScreenWidth) + "\n"
	tests := []struct {
		name   string
		screen string
		errMsg string
	}{
		{"too few lines", strings.Repeat(row, 3), "screen has 3 lines"},
		{"too many lines", strings.Repeat(row, chip8.ScreenHeight+1), "more than 32 lines"},
		{"short line", "...\n", "line 1 has 3 characters"},
		{"invalid character", strings.Repeat("x", chip8.ScreenWidth) + "\n", "invalid pixel character 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.screen))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
