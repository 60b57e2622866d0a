// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Println(e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg: fmt.Sprintf("Potential argument %s found after file to run, please pass the file to run as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.System = strings.ToLower(opts.System)
	if opts.System != "" {
		if system, _ := arch.SystemFromString(opts.System); system != arch.CHIP8System {
			return fmt.Errorf("unsupported system: %s. Valid options: %s", opts.System, arch.CHIP8System)
		}
	}

	if opts.InstructionsPerSecond <= 0 {
		return fmt.Errorf("invalid instructions per second %d, must be positive", opts.InstructionsPerSecond)
	}
	if opts.TimerHz <= 0 {
		return fmt.Errorf("invalid timer frequency %d, must be positive", opts.TimerHz)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.Unpaced && opts.Frames == 0 {
		return errors.New("option -unpaced requires -frames")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the file to write the final screen to")
	flags.StringVar(&opts.Expect, "expect", "", "name of a screen file to verify the final screen against")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.ch8")
	flags.StringVar(&opts.System, "s", "", "system to run (chip8) - if not auto-detected from file extension")
	flags.BoolVar(&opts.Strict, "strict", false, "stop execution at unknown opcodes instead of skipping them")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.InstructionsPerSecond, "ips", opts.InstructionsPerSecond, "instructions executed per second")
	flags.IntVar(&opts.TimerHz, "timer-hz", opts.TimerHz, "timer decrements per second")
	flags.IntVar(&opts.Frames, "frames", 0, "number of timer frames to run, 0 runs until interrupted")
	flags.StringVar(&opts.Keys, "keys", "", "scripted key events as frame:key:down|up, comma separated, for example 10:a:down,20:a:up")
	flags.BoolVar(&opts.Unpaced, "unpaced", false, "run frames as fast as possible instead of in real time, requires -frames")
}
