package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/spindle/pkg/machine"
)

// DefaultMaxSteps is the step budget applied when no limit is configured.
// The budget is the only defense against non-halting machines; it is a
// heuristic bound, not a decision procedure.
const DefaultMaxSteps = 10000

// HaltReason tells observers why a run stopped.
type HaltReason string

const (
	// HaltAccept means the machine entered an accepting state.
	HaltAccept HaltReason = "accept"
	// HaltReject means the machine entered a state listed in the reject set.
	HaltReject HaltReason = "reject"
	// HaltNoTransition means the machine read a (state, symbol) pair with no
	// transition defined. The verdict is the same as HaltReject; the reason
	// is kept distinct for diagnostics.
	HaltNoTransition HaltReason = "no_transition"
	// HaltBudget means the step budget ran out.
	HaltBudget HaltReason = "budget_exhausted"
)

// StepEvent describes one applied transition, for observability hooks.
type StepEvent struct {
	Step   int
	State  string
	Read   string
	Action machine.Action
}

// StepHook observes each applied transition. Hooks run synchronously inside
// the simulation loop; keep them cheap.
type StepHook func(StepEvent)

// Engine simulates a Definition on an input string. An Engine holds no
// per-run state: every run allocates its own tape, head and counter, so a
// single Engine may serve concurrent runs without synchronization.
type Engine struct {
	maxSteps int
	logger   *slog.Logger
	hook     StepHook
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSteps sets the default step budget for runs that don't carry their
// own limit. Non-positive values keep the default.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithLogger sets a structured logger for step-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStepHook registers an observer for applied transitions.
func WithStepHook(hook StepHook) Option {
	return func(e *Engine) {
		e.hook = hook
	}
}

// NewEngine creates an execution engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxSteps: DefaultMaxSteps,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxSteps returns the engine's default step budget.
func (e *Engine) MaxSteps() int { return e.maxSteps }

// Run simulates def on input with the engine's default step budget.
func (e *Engine) Run(def *machine.Definition, input string) (machine.Outcome, error) {
	return e.RunWithLimit(def, input, e.maxSteps)
}

// RunWithLimit simulates def on input for at most maxSteps steps.
//
// The input is validated against the input alphabet before any step runs;
// a violation returns a *machine.InputError. The halt check happens before
// the read/write of each step, so a machine whose initial state is already
// accepting (or rejecting) halts with zero steps and the tape untouched.
// A (state, symbol) pair with no transition halts with a Reject verdict.
// A transition whose direction is neither Left nor Right aborts the run
// with a *machine.TransitionError.
//
// When the budget runs out first, the verdict is Undetermined and Halted is
// false. RunWithLimit never mutates def.
func (e *Engine) RunWithLimit(def *machine.Definition, input string, maxSteps int) (machine.Outcome, error) {
	if maxSteps <= 0 {
		maxSteps = e.maxSteps
	}
	if err := def.ValidateInput(input); err != nil {
		return machine.Outcome{}, err
	}

	tp := newTape(input, def.BlankSymbol)
	state := def.InitialState
	steps := 0

	for steps < maxSteps {
		if def.IsAccept(state) {
			e.logger.Debug("halted", "reason", HaltAccept, "state", state, "steps", steps)
			return halted(machine.Accept, state, steps, tp), nil
		}
		if def.IsReject(state) {
			e.logger.Debug("halted", "reason", HaltReject, "state", state, "steps", steps)
			return halted(machine.Reject, state, steps, tp), nil
		}

		tp.extend()
		symbol := tp.read()

		act, ok := def.Lookup(state, symbol)
		if !ok {
			// Unspecified transition is a rejection, not an error.
			e.logger.Debug("halted", "reason", HaltNoTransition, "state", state, "symbol", symbol, "steps", steps)
			return halted(machine.Reject, state, steps, tp), nil
		}

		if act.Move != machine.Left && act.Move != machine.Right {
			return machine.Outcome{}, &machine.TransitionError{
				State:     state,
				Symbol:    symbol,
				Direction: act.Move,
			}
		}

		tp.write(act.Write)
		if act.Move == machine.Left {
			tp.moveLeft()
		} else {
			tp.moveRight()
		}

		if e.hook != nil {
			e.hook(StepEvent{Step: steps, State: state, Read: symbol, Action: act})
		}

		state = act.Next
		steps++
	}

	e.logger.Debug("halted", "reason", HaltBudget, "state", state, "steps", steps)
	return machine.Outcome{
		Verdict:    machine.Undetermined,
		FinalState: state,
		Steps:      steps,
		Halted:     false,
		Tape:       tp.String(),
	}, nil
}

func halted(verdict machine.Verdict, state string, steps int, tp *tape) machine.Outcome {
	return machine.Outcome{
		Verdict:    verdict,
		FinalState: state,
		Steps:      steps,
		Halted:     true,
		Tape:       tp.String(),
	}
}
