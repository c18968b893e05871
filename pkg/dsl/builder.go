package dsl

import (
	"fmt"

	"github.com/aretw0/spindle/pkg/machine"
)

type rule struct {
	key machine.Key
	act machine.Action
}

// Builder accumulates machine parts until Build assembles a Definition.
type Builder struct {
	initial string
	blank   string
	states  []string
	input   []string
	tape    []string
	accept  []string
	reject  []string
	rules   []rule
	errs    []error
}

// New creates a builder for a machine starting in initialState.
func New(initialState string) *Builder {
	return &Builder{
		initial: initialState,
		blank:   machine.DefaultBlank,
	}
}

// Blank overrides the default blank symbol ("_").
func (b *Builder) Blank(symbol string) *Builder {
	b.blank = symbol
	return b
}

// States pins the state set explicitly. Without it, Build infers the states
// from the initial state, the halting sets and the rules.
func (b *Builder) States(states ...string) *Builder {
	b.states = append(b.states, states...)
	return b
}

// Input declares the input alphabet.
func (b *Builder) Input(symbols ...string) *Builder {
	b.input = append(b.input, symbols...)
	return b
}

// Tape pins the tape alphabet explicitly. Without it, Build infers it from
// the input alphabet, the blank symbol and the symbols the rules touch.
func (b *Builder) Tape(symbols ...string) *Builder {
	b.tape = append(b.tape, symbols...)
	return b
}

// Accept declares accepting states.
func (b *Builder) Accept(states ...string) *Builder {
	b.accept = append(b.accept, states...)
	return b
}

// Reject declares rejecting states.
func (b *Builder) Reject(states ...string) *Builder {
	b.reject = append(b.reject, states...)
	return b
}

// On starts a transition rule for the (state, symbol) pair.
func (b *Builder) On(state, symbol string) *RuleBuilder {
	return &RuleBuilder{
		builder: b,
		key:     machine.Key{State: state, Symbol: symbol},
		// Writing back the symbol just read is the common case.
		write: symbol,
	}
}

// Build assembles and validates the Definition.
func (b *Builder) Build() (*machine.Definition, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	transitions := make(machine.Transitions, len(b.rules))
	for _, r := range b.rules {
		if _, dup := transitions[r.key]; dup {
			return nil, fmt.Errorf("duplicate rule for (%s, %s)", r.key.State, r.key.Symbol)
		}
		transitions[r.key] = r.act
	}

	states := machine.NewSet(b.states...)
	if len(b.states) == 0 {
		states = machine.NewSet(b.initial)
		for _, s := range b.accept {
			states[s] = true
		}
		for _, s := range b.reject {
			states[s] = true
		}
		for _, r := range b.rules {
			states[r.key.State] = true
			states[r.act.Next] = true
		}
	}

	tape := machine.NewSet(b.tape...)
	if len(b.tape) == 0 {
		tape = machine.NewSet(b.input...)
		tape[b.blank] = true
		for _, r := range b.rules {
			tape[r.key.Symbol] = true
			tape[r.act.Write] = true
		}
	}

	return machine.New(
		states,
		machine.NewSet(b.input...),
		tape,
		transitions,
		b.initial,
		machine.NewSet(b.accept...),
		machine.NewSet(b.reject...),
		machine.WithBlank(b.blank),
	)
}

// RuleBuilder assembles one transition rule.
type RuleBuilder struct {
	builder *Builder
	key     machine.Key
	write   string
	move    machine.Direction
}

// Write sets the symbol written over the cell (defaults to the symbol read).
func (rb *RuleBuilder) Write(symbol string) *RuleBuilder {
	rb.write = symbol
	return rb
}

// Left moves the head one cell left after writing.
func (rb *RuleBuilder) Left() *RuleBuilder {
	rb.move = machine.Left
	return rb
}

// Right moves the head one cell right after writing.
func (rb *RuleBuilder) Right() *RuleBuilder {
	rb.move = machine.Right
	return rb
}

// To completes the rule with the state to enter and returns the Builder.
func (rb *RuleBuilder) To(next string) *Builder {
	if rb.move == "" {
		rb.builder.errs = append(rb.builder.errs,
			fmt.Errorf("rule (%s, %s): missing direction, call Left() or Right()", rb.key.State, rb.key.Symbol))
		return rb.builder
	}
	rb.builder.rules = append(rb.builder.rules, rule{
		key: rb.key,
		act: machine.Action{Next: next, Write: rb.write, Move: rb.move},
	})
	return rb.builder
}
