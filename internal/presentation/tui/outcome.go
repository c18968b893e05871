package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/spindle/pkg/machine"
)

// RenderOutcome produces the colored terminal rendering of a run outcome.
// The profile controls color degradation (use termenv.ColorProfile() for a
// real terminal, termenv.Ascii for plain output).
func RenderOutcome(profile termenv.Profile, input string, out machine.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Input string: %q\n", input)
	fmt.Fprintf(&b, "Steps executed: %d\n", out.Steps)
	fmt.Fprintf(&b, "Final state: %s\n", out.FinalState)
	fmt.Fprintf(&b, "Machine halted: %v\n", out.Halted)

	switch out.Verdict {
	case machine.Accept:
		verdict := termenv.String(fmt.Sprintf("✓ ACCEPTS (halted in state %s)", out.FinalState)).
			Foreground(profile.Color("#22c55e")).Bold()
		b.WriteString(verdict.String())
	case machine.Reject:
		verdict := termenv.String(fmt.Sprintf("✗ REJECTS (final state: %s)", out.FinalState)).
			Foreground(profile.Color("#ef4444")).Bold()
		b.WriteString(verdict.String())
	default:
		verdict := termenv.String("? DID NOT HALT (step budget exhausted)").
			Foreground(profile.Color("#eab308")).Bold()
		b.WriteString(verdict.String())
	}
	return b.String()
}
