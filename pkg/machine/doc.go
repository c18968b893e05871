// Package machine defines the immutable description of a single-tape
// deterministic Turing machine and the value types produced by executing one.
//
// A Definition bundles the state set, the input and tape alphabets, a sparse
// transition table, the initial state and the accepting/rejecting state sets.
// Construction through New is the only place the structural invariants are
// checked; once built, a Definition is read-only and may be shared freely
// across concurrent executions.
//
// Basic usage:
//
//	def, err := machine.New(
//	    machine.NewSet("q0", "accept"),
//	    machine.NewSet("0", "1"),
//	    machine.NewSet("0", "1", "_"),
//	    machine.Transitions{
//	        {State: "q0", Symbol: "0"}: {Next: "q0", Write: "0", Move: machine.Right},
//	        {State: "q0", Symbol: "1"}: {Next: "q0", Write: "1", Move: machine.Right},
//	        {State: "q0", Symbol: "_"}: {Next: "accept", Write: "_", Move: machine.Right},
//	    },
//	    "q0",
//	    machine.NewSet("accept"),
//	    machine.NewSet(),
//	)
//
// The transition table is deliberately partial: a (state, symbol) pair with
// no entry is a rejection at run time, not a construction error. Transition
// targets are likewise not validated against the declared sets; a malformed
// direction only surfaces at the step that uses it.
//
// This package has no dependencies beyond the Go standard library so it can
// be embedded anywhere the execution engine is not needed.
package machine
