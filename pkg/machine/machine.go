package machine

import "sort"

// DefaultBlank is the tape-fill symbol used when none is configured.
const DefaultBlank = "_"

// Set is a collection of distinct state or symbol identifiers.
type Set map[string]bool

// NewSet builds a Set from its members.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = true
	}
	return s
}

// Has reports membership.
func (s Set) Has(member string) bool { return s[member] }

// SubsetOf reports whether every member of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	for m := range s {
		if !other[m] {
			return false
		}
	}
	return true
}

// DisjointFrom reports whether s and other share no members.
func (s Set) DisjointFrom(other Set) bool {
	for m := range s {
		if other[m] {
			return false
		}
	}
	return true
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	for m := range s {
		out[m] = true
	}
	return out
}

// Definition is a validated, immutable Turing machine description.
// Build one with New; treat the exported fields as read-only.
type Definition struct {
	States        Set
	InputAlphabet Set
	TapeAlphabet  Set
	Transitions   Transitions
	InitialState  string
	AcceptStates  Set
	RejectStates  Set
	BlankSymbol   string
}

// Option configures optional parts of a Definition during construction.
type Option func(*Definition)

// WithBlank overrides the default blank symbol ("_").
func WithBlank(symbol string) Option {
	return func(d *Definition) {
		d.BlankSymbol = symbol
	}
}

// New builds a Definition and checks its structural invariants:
//
//  1. the initial state is a member of the state set,
//  2. accept and reject states are subsets of the state set,
//  3. accept and reject states are disjoint.
//
// Violations return a *DefinitionError. Transition targets are not checked
// here; an entry referencing an unknown state or symbol only matters if the
// run reaches it. All inputs are copied, so later mutation of the arguments
// does not affect the returned Definition.
func New(states, inputAlphabet, tapeAlphabet Set, transitions Transitions, initialState string, acceptStates, rejectStates Set, opts ...Option) (*Definition, error) {
	def := &Definition{
		States:        states.clone(),
		InputAlphabet: inputAlphabet.clone(),
		TapeAlphabet:  tapeAlphabet.clone(),
		Transitions:   make(Transitions, len(transitions)),
		InitialState:  initialState,
		AcceptStates:  acceptStates.clone(),
		RejectStates:  rejectStates.clone(),
		BlankSymbol:   DefaultBlank,
	}
	for k, v := range transitions {
		def.Transitions[k] = v
	}

	for _, opt := range opts {
		opt(def)
	}

	if !def.States.Has(def.InitialState) {
		return nil, &DefinitionError{
			Field:  "initial_state",
			Reason: "not a member of the state set",
			Value:  def.InitialState,
		}
	}
	if !def.AcceptStates.SubsetOf(def.States) {
		return nil, &DefinitionError{
			Field:  "accept_states",
			Reason: "must be a subset of the state set",
		}
	}
	if !def.RejectStates.SubsetOf(def.States) {
		return nil, &DefinitionError{
			Field:  "reject_states",
			Reason: "must be a subset of the state set",
		}
	}
	if !def.AcceptStates.DisjointFrom(def.RejectStates) {
		return nil, &DefinitionError{
			Field:  "accept_states",
			Reason: "must be disjoint from the reject states",
		}
	}

	return def, nil
}

// Lookup resolves the transition for a (state, symbol) pair.
func (d *Definition) Lookup(state, symbol string) (Action, bool) {
	act, ok := d.Transitions[Key{State: state, Symbol: symbol}]
	return act, ok
}

// IsAccept reports whether state is an accepting state.
func (d *Definition) IsAccept(state string) bool { return d.AcceptStates.Has(state) }

// IsReject reports whether state is an explicit rejecting state.
func (d *Definition) IsReject(state string) bool { return d.RejectStates.Has(state) }

// ValidateInput checks that every symbol of input belongs to the input
// alphabet. The first offending symbol is reported as an *InputError.
func (d *Definition) ValidateInput(input string) error {
	for i, r := range input {
		if !d.InputAlphabet.Has(string(r)) {
			return &InputError{Symbol: string(r), Position: i}
		}
	}
	return nil
}
