package machine

// Verdict is the three-way result of an execution.
type Verdict string

const (
	// Accept means the machine halted in an accepting state.
	Accept Verdict = "accept"
	// Reject means the machine halted in a rejecting state, or read a
	// (state, symbol) pair with no transition defined.
	Reject Verdict = "reject"
	// Undetermined means the step budget ran out before the machine
	// reached a halting state. It is a bound, not a decision: the machine
	// may or may not halt given more steps.
	Undetermined Verdict = "undetermined"
)

// Outcome is the record produced by one execution.
type Outcome struct {
	Verdict    Verdict `json:"verdict" yaml:"verdict"`
	FinalState string  `json:"final_state" yaml:"final_state"`
	Steps      int     `json:"steps" yaml:"steps"`
	Halted     bool    `json:"halted" yaml:"halted"`
	Tape       string  `json:"tape" yaml:"tape"`
}

// Accepted reports whether the machine halted accepting.
func (o Outcome) Accepted() bool { return o.Verdict == Accept }

// Rejected reports whether the machine halted rejecting.
func (o Outcome) Rejected() bool { return o.Verdict == Reject }
