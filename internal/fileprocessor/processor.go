// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete run of a single ROM file: loading,
// execution, writing of the final screen and the optional verification.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	system, err := detector.New(logger).Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	program, err := loader.New().Load(opts.Input, system)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	runnerConfig, err := config.RunnerConfig(opts)
	if err != nil {
		return err
	}
	run, err := runner.New(logger, runnerConfig)
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	vm, err := run.Load(program, config.VMOptions(opts)...)
	if err != nil {
		return err
	}

	printInfo(logger, opts, len(program), run.StepsPerFrame())

	result, runErr := run.Run(ctx, vm)
	logger.Info("Run finished",
		log.String("file", opts.Input),
		log.Int("frames", result.Frames),
		log.Int("steps", result.Steps))

	// an interrupted open ended run still produces its final screen
	interrupted := errors.Is(runErr, context.Canceled) && opts.Frames == 0
	if runErr != nil && !interrupted {
		return fmt.Errorf("running program: %w", runErr)
	}

	fb := vm.Framebuffer()
	logger.Debug("Final screen", log.Int("lit_pixels", fb.Lit()))
	if err := writeScreen(opts, fb); err != nil {
		return err
	}

	if opts.Expect != "" {
		if err := verification.VerifyScreen(logger, opts.Expect, fb); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return runErr
}

// ProcessFiles runs all given files and returns the number of files that
// failed. Processing stops at a cancelled context, the returned error is
// then the cancellation.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program, files []string) (int, error) {
	var failed int
	for _, file := range files {
		opts.Input = file
		if len(files) > 1 {
			opts.Output = GenerateOutputFilename(file)
		}

		if err := ProcessFile(ctx, logger, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				return failed, err
			}
			logger.Error("Running program failed", log.String("file", file), log.Err(err))
			failed++
		}
	}
	return failed, nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files found matching '%s'", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the screen output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".screen.txt"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8 - CHIP-8 interpreter",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// printInfo prints the information about the input file and the run settings.
func printInfo(logger *log.Logger, opts options.Program, size, stepsPerFrame int) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Int("frames", opts.Frames),
	)
	logger.Debug("Run settings",
		log.Int("instructions_per_second", opts.InstructionsPerSecond),
		log.Int("timer_hz", opts.TimerHz),
		log.Int("steps_per_frame", stepsPerFrame),
		log.String("unknown_opcodes", unknownOpcodeMode(opts.Strict)),
	)
}

func unknownOpcodeMode(strict bool) string {
	if strict {
		return "fail"
	}
	return "ignore"
}

func writeScreen(opts options.Program, fb chip8.Framebuffer) error {
	if opts.Output == "" {
		if err := display.Render(os.Stdout, fb); err != nil {
			return fmt.Errorf("writing screen: %w", err)
		}
		return nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	if err := renderAndClose(file, fb); err != nil {
		return fmt.Errorf("writing output file %s: %w", opts.Output, err)
	}
	return nil
}

// renderAndClose renders the screen and closes the writer, a failed close
// is reported if rendering succeeded.
func renderAndClose(w io.WriteCloser, fb chip8.Framebuffer) (err error) {
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing: %w", closeErr)
		}
	}()

	if err := display.Render(w, fb); err != nil {
		return fmt.Errorf("rendering screen: %w", err)
	}
	return nil
}
