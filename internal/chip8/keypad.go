package chip8

import "fmt"

// NumKeys is the number of keys of the hexadecimal keypad.
const NumKeys = 16

// Keypad contains the key down state of the keys 0x0-0xF.
type Keypad struct {
	keys [NumKeys]bool
}

// Press marks the key as down.
func (k *Keypad) Press(key uint8) error {
	if key >= NumKeys {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	k.keys[key] = true
	return nil
}

// Release marks the key as up.
func (k *Keypad) Release(key uint8) error {
	if key >= NumKeys {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	k.keys[key] = false
	return nil
}

// IsDown returns whether the key is down. Keys outside of the keypad are never down.
func (k *Keypad) IsDown(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return k.keys[key]
}

// FirstDown returns the lowest key that is down.
func (k *Keypad) FirstDown() (uint8, bool) {
	for i, down := range k.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}
