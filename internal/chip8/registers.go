package chip8

const (
	// NumRegisters is the number of general purpose registers V0-VF.
	NumRegisters = 16

	// FlagRegister is the index of VF which receives carry, borrow, shift and collision flags.
	FlagRegister = 0xF

	addressMask = 0x0FFF
)

// Registers contains the general purpose registers and the index register.
type Registers struct {
	V [NumRegisters]uint8
	I uint16 // 12 bit effective address
}

// Get returns the value of register V<index>.
func (r *Registers) Get(index uint8) uint8 {
	return r.V[index&0xF]
}

// Set sets register V<index> to value.
func (r *Registers) Set(index, value uint8) {
	r.V[index&0xF] = value
}

// SetFlag sets VF to 1 or 0.
func (r *Registers) SetFlag(set bool) {
	if set {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}

// SetIndex sets the index register, masked to 12 bits.
func (r *Registers) SetIndex(address uint16) {
	r.I = address & addressMask
}
