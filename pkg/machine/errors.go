package machine

import "fmt"

// DefinitionError reports an invariant violated while building a Definition.
type DefinitionError struct {
	Field  string // Definition field that failed validation
	Reason string // Human-readable reason for failure
	Value  any    // The offending value, when there is a single one
}

func (e *DefinitionError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("machine definition: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("machine definition: %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// InputError reports an input string symbol outside the input alphabet.
// It is raised before any simulation step runs; the Definition itself
// stays valid and reusable.
type InputError struct {
	Symbol   string
	Position int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input symbol %q at position %d", e.Symbol, e.Position)
}

// TransitionError reports a malformed transition encountered mid-run,
// such as a direction that is neither Left nor Right. It indicates a defect
// in the transition table that construction does not check for.
type TransitionError struct {
	State     string
	Symbol    string
	Direction Direction
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid direction %q in transition (%s, %s)", string(e.Direction), e.State, e.Symbol)
}
