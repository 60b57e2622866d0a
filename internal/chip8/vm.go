// Package chip8 implements a CHIP-8 interpreter.
//
// The VM owns all machine state: memory, registers, call stack, timers, keypad
// and framebuffer. The host drives it by calling Step once per instruction and
// TickTimers at its own fixed cadence, usually 60 Hz, and feeds key events
// through KeyDown and KeyUp. The VM does no internal synchronization, a host
// that renders or injects keys from another goroutine has to serialize access.
package chip8

import (
	"fmt"
	"math/rand/v2"
)

// State is the execution state of the VM.
type State uint8

const (
	// StateReady means the next step fetches an instruction.
	StateReady State = iota
	// StateAwaitingKey means the VM is blocked by a wait for key instruction.
	StateAwaitingKey
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateAwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// UnknownOpcodePolicy controls how opcodes that match no instruction are handled.
type UnknownOpcodePolicy uint8

const (
	// UnknownOpcodeIgnore consumes unknown opcodes without changing any state.
	UnknownOpcodeIgnore UnknownOpcodePolicy = iota
	// UnknownOpcodeFail makes Step return ErrUnknownOpcode.
	UnknownOpcodeFail
)

// TraceFunc is called for every fetched instruction before it is executed.
type TraceFunc func(address uint16, ins Instruction)

// Option configures a VM.
type Option func(*VM)

// WithUnknownOpcodePolicy sets the handling of unknown opcodes.
func WithUnknownOpcodePolicy(policy UnknownOpcodePolicy) Option {
	return func(vm *VM) {
		vm.unknownOpcodes = policy
	}
}

// WithRandomSource sets the source of random bytes used by the random instruction.
func WithRandomSource(random func() uint8) Option {
	return func(vm *VM) {
		vm.random = random
	}
}

// WithTracer sets a function that gets called for every executed instruction.
func WithTracer(trace TraceFunc) Option {
	return func(vm *VM) {
		vm.trace = trace
	}
}

// VM is a CHIP-8 virtual machine.
type VM struct {
	memory      *Memory
	registers   Registers
	stack       Stack
	timers      Timers
	keypad      Keypad
	framebuffer Framebuffer

	pc           uint16
	state        State
	waitRegister uint8 // destination register while in StateAwaitingKey

	unknownOpcodes UnknownOpcodePolicy
	random         func() uint8
	trace          TraceFunc
}

// New returns a VM with the font table and the program loaded and the program
// counter at the program start.
func New(program []byte, options ...Option) (*VM, error) {
	memory, err := newMemory(program)
	if err != nil {
		return nil, err
	}

	vm := &VM{
		memory: memory,
		pc:     ProgramStart,
		random: randomByte,
	}
	for _, option := range options {
		option(vm)
	}
	return vm, nil
}

// Step executes a single instruction. While the VM waits for a key, a step
// only checks the keypad and completes the wait once a key is down.
// Returned errors are fatal. After a failed instruction the program counter
// already points past it, all other state is left as it was at the failure.
func (vm *VM) Step() error {
	if vm.state == StateAwaitingKey {
		vm.resolveKeyWait()
		return nil
	}

	address := vm.pc
	word, err := vm.memory.ReadWord(address)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}
	vm.pc += 2

	ins := Decode(word)
	if vm.trace != nil {
		vm.trace(address, ins)
	}

	if err := vm.execute(ins); err != nil {
		return &ExecError{
			Address: address,
			Opcode:  word,
			Err:     err,
		}
	}
	return nil
}

// TickTimers decrements the delay and sound timer. The host calls it at a fixed
// rate independent of the instruction rate.
func (vm *VM) TickTimers() {
	vm.timers.Tick()
}

// KeyDown marks a key of the keypad as pressed.
func (vm *VM) KeyDown(key uint8) error {
	return vm.keypad.Press(key)
}

// KeyUp marks a key of the keypad as released.
func (vm *VM) KeyUp(key uint8) error {
	return vm.keypad.Release(key)
}

// Framebuffer returns a copy of the current display content.
func (vm *VM) Framebuffer() Framebuffer {
	return vm.framebuffer
}

// PC returns the address of the next instruction to fetch.
func (vm *VM) PC() uint16 {
	return vm.pc
}

// I returns the index register.
func (vm *VM) I() uint16 {
	return vm.registers.I
}

// V returns the value of the general purpose register V<index>.
func (vm *VM) V(index uint8) uint8 {
	return vm.registers.Get(index)
}

// DelayTimer returns the delay timer value.
func (vm *VM) DelayTimer() uint8 {
	return vm.timers.Delay
}

// SoundTimer returns the sound timer value.
func (vm *VM) SoundTimer() uint8 {
	return vm.timers.Sound
}

// SoundActive returns whether the host should currently play a tone.
func (vm *VM) SoundActive() bool {
	return vm.timers.SoundActive()
}

// StackDepth returns the number of active subroutine calls.
func (vm *VM) StackDepth() int {
	return vm.stack.Depth()
}

// State returns the execution state.
func (vm *VM) State() State {
	return vm.state
}

// ReadMemory returns the byte at the given memory address.
func (vm *VM) ReadMemory(address uint16) (byte, error) {
	return vm.memory.Read(address)
}

func (vm *VM) resolveKeyWait() {
	key, ok := vm.keypad.FirstDown()
	if !ok {
		return
	}
	vm.registers.Set(vm.waitRegister, key)
	vm.state = StateReady
}

func randomByte() uint8 {
	return uint8(rand.Uint32())
}
