// Package options contains the program options.
package options

// Default run options.
const (
	DefaultInstructionsPerSecond = 700
	DefaultTimerHz               = 60
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"file to write the final screen to"`
	Expect string `flag:"expect" usage:"screen file the final screen is verified against"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	System string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Strict bool   `flag:"strict" usage:"treat unknown opcodes as fatal errors"`
	Trace  bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// RunFlags contains options controlling the execution loop.
type RunFlags struct {
	InstructionsPerSecond int    `flag:"ips" usage:"instructions executed per second" default:"700"`
	TimerHz               int    `flag:"timer-hz" usage:"timer decrements per second" default:"60"`
	Frames                int    `flag:"frames" usage:"number of timer frames to run, 0 runs until interrupted"`
	Keys                  string `flag:"keys" usage:"scripted key events frame:key:down|up, comma separated"`
	Unpaced               bool   `flag:"unpaced" usage:"run frames as fast as possible, requires -frames"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	RunFlags
}

// New returns program options with default run options.
func New() Program {
	return Program{
		RunFlags: RunFlags{
			InstructionsPerSecond: DefaultInstructionsPerSecond,
			TimerHz:               DefaultTimerHz,
		},
	}
}
