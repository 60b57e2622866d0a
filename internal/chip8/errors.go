package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned for opcodes that match no instruction when the
	// interpreter runs with UnknownOpcodeFail.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow is returned when a call is made at maximum call depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is made with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOutOfBounds is returned when a fetch or memory access leaves the address space.
	ErrOutOfBounds = errors.New("address out of bounds")
	// ErrProgramTooLarge is returned when a program does not fit into the program area.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrInvalidKey is returned for key indices outside of 0x0-0xF.
	ErrInvalidKey = errors.New("invalid key index")
)

// ExecError wraps a fatal condition raised while executing an instruction.
type ExecError struct {
	Address uint16 // address the instruction was fetched from
	Opcode  uint16
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing opcode $%04X at $%04X: %v", e.Opcode, e.Address, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func outOfBounds(address, length int) error {
	if length <= 1 {
		return fmt.Errorf("%w: $%04X", ErrOutOfBounds, address)
	}
	return fmt.Errorf("%w: $%04X-$%04X", ErrOutOfBounds, address, address+length-1)
}
