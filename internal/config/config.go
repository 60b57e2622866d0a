// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// VMOptions returns the interpreter options for the program options.
func VMOptions(opts options.Program) []chip8.Option {
	var vmOptions []chip8.Option
	if opts.Strict {
		vmOptions = append(vmOptions, chip8.WithUnknownOpcodePolicy(chip8.UnknownOpcodeFail))
	}
	return vmOptions
}

// RunnerConfig returns the execution loop configuration for the program options.
func RunnerConfig(opts options.Program) (runner.Config, error) {
	keys, err := runner.ParseKeyEvents(opts.Keys)
	if err != nil {
		return runner.Config{}, fmt.Errorf("parsing key events: %w", err)
	}

	return runner.Config{
		InstructionsPerSecond: opts.InstructionsPerSecond,
		TimerHz:               opts.TimerHz,
		MaxFrames:             opts.Frames,
		Unpaced:               opts.Unpaced,
		Trace:                 opts.Trace,
		Keys:                  keys,
	}, nil
}
