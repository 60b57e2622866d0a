// Package runner implements the real time execution loop that drives the interpreter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Config of the execution loop.
type Config struct {
	InstructionsPerSecond int
	TimerHz               int // timer decrements per second, also the frame rate
	MaxFrames             int // 0 runs until the context is cancelled
	Unpaced               bool
	Trace                 bool
	Keys                  []KeyEvent
}

// Result describes a finished run.
type Result struct {
	Frames int
	Steps  int
}

// Runner executes a program frame by frame. Every frame executes the share of
// instructions per second that falls on one timer period and then decrements
// the timers once.
type Runner struct {
	logger *log.Logger
	cfg    Config

	unknownOpcodes set.Set[uint16] // addresses of unknown opcodes that were reported
	soundActive    bool
}

// New creates a new execution loop.
func New(logger *log.Logger, cfg Config) (*Runner, error) {
	if cfg.InstructionsPerSecond <= 0 || cfg.TimerHz <= 0 {
		return nil, fmt.Errorf("invalid rates, %d instructions and %d timer ticks per second",
			cfg.InstructionsPerSecond, cfg.TimerHz)
	}
	if cfg.Unpaced && cfg.MaxFrames == 0 {
		return nil, errors.New("unpaced execution requires a frame limit")
	}

	return &Runner{
		logger:         logger,
		cfg:            cfg,
		unknownOpcodes: set.New[uint16](),
	}, nil
}

// Load creates a VM for the program that reports its executed instructions
// to the runner.
func (r *Runner) Load(program []byte, options ...chip8.Option) (*chip8.VM, error) {
	options = append(options, chip8.WithTracer(r.trace))
	vm, err := chip8.New(program, options...)
	if err != nil {
		return nil, fmt.Errorf("creating interpreter: %w", err)
	}
	return vm, nil
}

// StepsPerFrame returns the number of instructions executed per timer frame.
func (r *Runner) StepsPerFrame() int {
	return max(1, r.cfg.InstructionsPerSecond/r.cfg.TimerHz)
}

// Run executes the program until the frame limit is reached, the context gets
// cancelled or the interpreter fails.
func (r *Runner) Run(ctx context.Context, vm *chip8.VM) (Result, error) {
	var result Result
	var ticker *time.Ticker
	if !r.cfg.Unpaced {
		ticker = time.NewTicker(time.Second / time.Duration(r.cfg.TimerHz))
		defer ticker.Stop()
	}

	keys := newKeySchedule(r.cfg.Keys)
	stepsPerFrame := r.StepsPerFrame()

	for frame := 0; r.cfg.MaxFrames == 0 || frame < r.cfg.MaxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := keys.apply(vm, frame); err != nil {
			return result, fmt.Errorf("frame %d: %w", frame, err)
		}

		for range stepsPerFrame {
			if err := vm.Step(); err != nil {
				r.logger.Debug("Execution halted",
					log.Int("frame", frame),
					log.Hex("pc", vm.PC()),
					log.Err(err))
				return result, fmt.Errorf("frame %d: %w", frame, err)
			}
			result.Steps++
		}

		vm.TickTimers()
		r.reportSound(vm)
		result.Frames++

		if ticker != nil {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-ticker.C:
			}
		}
	}

	r.logger.Debug("Frame limit reached",
		log.Int("frames", result.Frames),
		log.Int("steps", result.Steps))
	return result, nil
}

// trace is called by the interpreter for every fetched instruction.
func (r *Runner) trace(address uint16, ins chip8.Instruction) {
	if ins.Kind == chip8.KindUnknown && !r.unknownOpcodes.Contains(address) {
		r.unknownOpcodes.Add(address)
		r.logger.Warn("Unknown opcode",
			log.Hex("address", address),
			log.Hex("opcode", ins.Raw))
	}

	if r.cfg.Trace {
		r.logger.Debug("Executing",
			log.Hex("address", address),
			log.String("instruction", ins.String()))
	}
}

// reportSound logs changes of the sound state, as the interpreter has no audio output.
func (r *Runner) reportSound(vm *chip8.VM) {
	active := vm.SoundActive()
	if active == r.soundActive {
		return
	}
	r.soundActive = active
	if active {
		r.logger.Debug("Sound on", log.Uint8("timer", vm.SoundTimer()))
	} else {
		r.logger.Debug("Sound off")
	}
}
