package ports

import "github.com/aretw0/spindle/pkg/machine"

// Executor is the capability adapters need from the interpreter core:
// run a machine on an input and expose the bound definition.
type Executor interface {
	// Run simulates the machine with the default step budget.
	Run(input string) (machine.Outcome, error)

	// RunWithLimit simulates the machine with an explicit step budget.
	// Non-positive limits fall back to the default.
	RunWithLimit(input string, maxSteps int) (machine.Outcome, error)

	// Definition returns the read-only machine description.
	Definition() *machine.Definition
}
