package runner

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// KeyEvent presses or releases a keypad key at the start of a frame.
type KeyEvent struct {
	Frame int
	Key   uint8
	Down  bool
}

// ParseKeyEvents parses a comma separated list of key events in the format
// frame:key:down or frame:key:up, with the key given as hexadecimal digit.
func ParseKeyEvents(s string) ([]KeyEvent, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var events []KeyEvent
	for _, item := range strings.Split(s, ",") {
		event, err := parseKeyEvent(strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func parseKeyEvent(s string) (KeyEvent, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return KeyEvent{}, fmt.Errorf("invalid key event '%s', expected frame:key:down|up", s)
	}

	frame, err := strconv.Atoi(parts[0])
	if err != nil || frame < 0 {
		return KeyEvent{}, fmt.Errorf("invalid frame in key event '%s'", s)
	}

	key, err := strconv.ParseUint(parts[1], 16, 8)
	if err != nil || key >= chip8.NumKeys {
		return KeyEvent{}, fmt.Errorf("invalid key in key event '%s', expected 0-f", s)
	}

	var down bool
	switch strings.ToLower(parts[2]) {
	case "down":
		down = true
	case "up":
	default:
		return KeyEvent{}, fmt.Errorf("invalid state in key event '%s', expected down or up", s)
	}

	return KeyEvent{
		Frame: frame,
		Key:   uint8(key),
		Down:  down,
	}, nil
}

// keySchedule applies key events in frame order.
type keySchedule struct {
	events []KeyEvent
	next   int
}

func newKeySchedule(events []KeyEvent) *keySchedule {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b KeyEvent) int {
		return a.Frame - b.Frame
	})
	return &keySchedule{events: sorted}
}

// apply delivers all events that are due at the given frame.
func (k *keySchedule) apply(vm *chip8.VM, frame int) error {
	for ; k.next < len(k.events) && k.events[k.next].Frame <= frame; k.next++ {
		event := k.events[k.next]
		var err error
		if event.Down {
			err = vm.KeyDown(event.Key)
		} else {
			err = vm.KeyUp(event.Key)
		}
		if err != nil {
			return fmt.Errorf("applying key event: %w", err)
		}
	}
	return nil
}
