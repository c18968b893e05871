package spindle

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/spindle/internal/runtime"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
)

// Ensure Interpreter satisfies the executor port used by adapters.
var _ ports.Executor = (*Interpreter)(nil)

// Version is the library version reported by the CLI and the adapters.
var Version = "0.3.0"

// Interpreter is the high-level entry point for the spindle library.
// It binds one machine Definition to the internal execution engine and
// provides a simplified API for consumers. An Interpreter is safe for
// concurrent use: the Definition is read-only and every run owns its
// own tape and counters.
type Interpreter struct {
	def    *machine.Definition
	engine *runtime.Engine

	logger      *slog.Logger
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring the Interpreter.
type Option func(*Interpreter)

// WithLogger sets a custom structured logger for step diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithMaxSteps overrides the default step budget (10000) for Run.
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) {
		i.runtimeOpts = append(i.runtimeOpts, runtime.WithMaxSteps(n))
	}
}

// WithStepHook registers an observer called for every applied transition.
func WithStepHook(hook runtime.StepHook) Option {
	return func(i *Interpreter) {
		i.runtimeOpts = append(i.runtimeOpts, runtime.WithStepHook(hook))
	}
}

// New initializes an Interpreter for the given Definition.
func New(def *machine.Definition, opts ...Option) (*Interpreter, error) {
	if def == nil {
		return nil, fmt.Errorf("machine definition is required")
	}

	interp := &Interpreter{def: def}
	for _, opt := range opts {
		opt(interp)
	}

	runtimeOpts := interp.runtimeOpts
	if interp.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(interp.logger))
	}
	interp.engine = runtime.NewEngine(runtimeOpts...)

	return interp, nil
}

// Run simulates the machine on input with the configured step budget.
// It returns a *machine.InputError when input contains a symbol outside the
// input alphabet, and a *machine.TransitionError when the run hits a
// transition with a malformed direction. Both leave the Interpreter valid
// for further runs.
func (i *Interpreter) Run(input string) (machine.Outcome, error) {
	return i.engine.Run(i.def, input)
}

// RunWithLimit simulates the machine on input with an explicit step budget,
// overriding the configured one. Non-positive limits fall back to it.
func (i *Interpreter) RunWithLimit(input string, maxSteps int) (machine.Outcome, error) {
	return i.engine.RunWithLimit(i.def, input, maxSteps)
}

// MaxSteps returns the configured default step budget.
func (i *Interpreter) MaxSteps() int { return i.engine.MaxSteps() }

// Definition returns the machine description bound to this Interpreter.
// Callers must treat it as read-only.
func (i *Interpreter) Definition() *machine.Definition { return i.def }
