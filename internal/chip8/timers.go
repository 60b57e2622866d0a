package chip8

// Timers contains the delay and sound countdown timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements both timers by one, stopping at zero.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// SoundActive returns whether the sound timer is running, which is when the
// host should play its tone.
func (t *Timers) SoundActive() bool {
	return t.Sound > 0
}
