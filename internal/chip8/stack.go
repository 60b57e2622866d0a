package chip8

import "fmt"

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack is the fixed capacity return address stack.
type Stack struct {
	entries [StackDepth]uint16
	depth   int
}

// Push saves a return address.
func (s *Stack) Push(address uint16) error {
	if s.depth == StackDepth {
		return fmt.Errorf("%w: depth %d reached", ErrStackOverflow, StackDepth)
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

// Pop removes and returns the most recently saved return address.
func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.entries[s.depth], nil
}

// Depth returns the number of saved return addresses.
func (s *Stack) Depth() int {
	return s.depth
}
