// Package catalog ships a small set of known-good example machines used for
// demonstrations and tests. Entries carry no logic of their own; they are
// plain Definitions with correct transition tables.
package catalog

import "github.com/aretw0/spindle/pkg/machine"

// Entry pairs a named example machine with a human description.
type Entry struct {
	Name        string
	Description string
	Definition  *machine.Definition
}

// Catalog entry names.
const (
	NameEvenOnes       = "even-ones"
	NameEqualZerosOnes = "equal-zeros-ones"
	NameAcceptAll      = "accept-all"
)

// EvenOnes accepts strings over {0,1} containing an even number of 1s,
// including zero. Two live states toggle on every 1 read; the verdict is
// decided when the head reaches the trailing blank.
func EvenOnes() *machine.Definition {
	return mustNew(
		machine.NewSet("q0", "q1", "accept", "reject"),
		machine.NewSet("0", "1"),
		machine.NewSet("0", "1", "_"),
		machine.Transitions{
			{State: "q0", Symbol: "0"}: {Next: "q0", Write: "0", Move: machine.Right},
			{State: "q0", Symbol: "1"}: {Next: "q1", Write: "1", Move: machine.Right},
			{State: "q0", Symbol: "_"}: {Next: "accept", Write: "_", Move: machine.Right},
			{State: "q1", Symbol: "0"}: {Next: "q1", Write: "0", Move: machine.Right},
			{State: "q1", Symbol: "1"}: {Next: "q0", Write: "1", Move: machine.Right},
			{State: "q1", Symbol: "_"}: {Next: "reject", Write: "_", Move: machine.Right},
		},
		"q0",
		machine.NewSet("accept"),
		machine.NewSet("reject"),
	)
}

// EqualZerosOnes accepts strings of the form 0^n 1^n for n >= 1 with a
// mark-and-sweep strategy: mark the leftmost unmarked 0 as X, scan right to
// the leftmost unmarked 1 and mark it Y, sweep back and repeat. Once every 0
// is marked, only X/Y markers and the trailing blank may remain.
func EqualZerosOnes() *machine.Definition {
	return mustNew(
		machine.NewSet("q0", "q1", "q2", "q3", "accept", "reject"),
		machine.NewSet("0", "1"),
		machine.NewSet("0", "1", "X", "Y", "_"),
		machine.Transitions{
			// Mark the leftmost unmarked 0.
			{State: "q0", Symbol: "0"}: {Next: "q1", Write: "X", Move: machine.Right},
			{State: "q0", Symbol: "_"}: {Next: "reject", Write: "_", Move: machine.Right},
			{State: "q0", Symbol: "1"}: {Next: "reject", Write: "1", Move: machine.Right},

			// Scan right for the matching 1.
			{State: "q1", Symbol: "0"}: {Next: "q1", Write: "0", Move: machine.Right},
			{State: "q1", Symbol: "Y"}: {Next: "q1", Write: "Y", Move: machine.Right},
			{State: "q1", Symbol: "1"}: {Next: "q2", Write: "Y", Move: machine.Left},
			{State: "q1", Symbol: "_"}: {Next: "reject", Write: "_", Move: machine.Right},

			// Sweep back to the last marker.
			{State: "q2", Symbol: "0"}: {Next: "q2", Write: "0", Move: machine.Left},
			{State: "q2", Symbol: "Y"}: {Next: "q2", Write: "Y", Move: machine.Left},
			{State: "q2", Symbol: "X"}: {Next: "q0", Write: "X", Move: machine.Right},

			// Every 0 is marked: verify only markers remain.
			{State: "q0", Symbol: "X"}: {Next: "q3", Write: "X", Move: machine.Right},
			{State: "q3", Symbol: "X"}: {Next: "q3", Write: "X", Move: machine.Right},
			{State: "q3", Symbol: "Y"}: {Next: "q3", Write: "Y", Move: machine.Right},
			{State: "q3", Symbol: "_"}: {Next: "accept", Write: "_", Move: machine.Right},
		},
		"q0",
		machine.NewSet("accept"),
		machine.NewSet("reject"),
	)
}

// AcceptAll accepts every string over {0,1,a,b}, including the empty one.
// A single live state skips right over any input symbol and accepts on the
// trailing blank.
func AcceptAll() *machine.Definition {
	return mustNew(
		machine.NewSet("q0", "accept"),
		machine.NewSet("0", "1", "a", "b"),
		machine.NewSet("0", "1", "a", "b", "_"),
		machine.Transitions{
			{State: "q0", Symbol: "0"}: {Next: "q0", Write: "0", Move: machine.Right},
			{State: "q0", Symbol: "1"}: {Next: "q0", Write: "1", Move: machine.Right},
			{State: "q0", Symbol: "a"}: {Next: "q0", Write: "a", Move: machine.Right},
			{State: "q0", Symbol: "b"}: {Next: "q0", Write: "b", Move: machine.Right},
			{State: "q0", Symbol: "_"}: {Next: "accept", Write: "_", Move: machine.Right},
		},
		"q0",
		machine.NewSet("accept"),
		machine.NewSet(),
	)
}

// All returns the catalog entries in display order. Definitions are built
// fresh on every call so no caller can alias another's copy.
func All() []Entry {
	return []Entry{
		{
			Name:        NameEvenOnes,
			Description: "Accepts strings over {0,1} with an even number of 1s",
			Definition:  EvenOnes(),
		},
		{
			Name:        NameEqualZerosOnes,
			Description: "Accepts strings of the form 0^n 1^n (n >= 1)",
			Definition:  EqualZerosOnes(),
		},
		{
			Name:        NameAcceptAll,
			Description: "Accepts any string over {0,1,a,b}",
			Definition:  AcceptAll(),
		},
	}
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range All() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// The catalog tables are fixed and known to satisfy the construction
// invariants; a failure here is a programming error.
func mustNew(states, input, tape machine.Set, trans machine.Transitions, initial string, accept, reject machine.Set) *machine.Definition {
	def, err := machine.New(states, input, tape, trans, initial, accept, reject)
	if err != nil {
		panic(err)
	}
	return def
}
