// Package cli contains the command logic shared by the spindle binary,
// keeping cmd/spindle to flag parsing and dispatch.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/spindle"
	"github.com/aretw0/spindle/internal/logging"
	"github.com/aretw0/spindle/internal/presentation/tui"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/registry"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Source      string // machine name or document path
	Input       string
	MaxSteps    int
	JSON        bool
	Interactive bool
	Debug       bool

	In  io.Reader
	Out io.Writer
}

// Execute handles the 'run' command logic, dispatching to single-shot or
// interactive mode.
func Execute(opts RunOptions, reg *registry.Registry) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	def, err := ResolveMachine(opts.Source, reg)
	if err != nil {
		return err
	}

	interpOpts := []spindle.Option{spindle.WithLogger(logger)}
	if opts.MaxSteps > 0 {
		interpOpts = append(interpOpts, spindle.WithMaxSteps(opts.MaxSteps))
	}
	interp, err := spindle.New(def, interpOpts...)
	if err != nil {
		return err
	}

	if opts.Interactive {
		return runInteractive(opts, interp)
	}
	return runOnce(opts, interp)
}

func runOnce(opts RunOptions, interp *spindle.Interpreter) error {
	out, err := interp.Run(opts.Input)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "    ")
		return enc.Encode(out)
	}

	fmt.Fprintln(opts.Out, tui.RenderOutcome(outputProfile(opts.Out), opts.Input, out))
	return nil
}

func runInteractive(opts RunOptions, interp *spindle.Interpreter) error {
	profile := outputProfile(opts.Out)

	runner := spindle.NewRunner(opts.In, opts.Out)
	runner.Renderer = func(input string, out machine.Outcome) string {
		return tui.RenderOutcome(profile, input, out)
	}
	return runner.Run(interp)
}

// outputProfile degrades to plain ASCII when the output is not a terminal,
// so piped output stays free of escape sequences.
func outputProfile(out io.Writer) termenv.Profile {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ColorProfile()
	}
	return termenv.Ascii
}
