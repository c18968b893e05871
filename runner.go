package spindle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/spindle/pkg/machine"
)

// OutcomeRenderer transforms an outcome into the text shown to the user.
// This keeps presentation (colors, markdown, JSON) out of the core package.
type OutcomeRenderer func(input string, out machine.Outcome) string

// Runner drives an interactive execute loop over provided IO: read an input
// string, run the machine, print the outcome, repeat. Errors from a single
// run (bad input symbol, malformed transition) are reported and the loop
// continues, so the user can retry with corrected input.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Prompt   string
	Renderer OutcomeRenderer
}

// NewRunner creates a Runner with the default prompt and plain rendering.
// Input and Output must be set by the caller (os.Stdin/os.Stdout for a CLI,
// buffers in tests).
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{
		Input:  in,
		Output: out,
		Prompt: "Enter input string (or 'back' to return): ",
	}
}

// Run loops until the reader is drained or the user types one of
// "back", "exit" or "quit".
func (r *Runner) Run(interp *Interpreter) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	render := r.Renderer
	if render == nil {
		render = renderPlain
	}

	scanner := bufio.NewScanner(r.Input)
	for {
		fmt.Fprint(r.Output, r.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.Output)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "back", "exit", "quit":
			return nil
		}

		out, err := interp.Run(input)
		if err != nil {
			fmt.Fprintf(r.Output, "Error: %v\n", err)
			continue
		}

		fmt.Fprintln(r.Output, render(input, out))
	}
}

func renderPlain(input string, out machine.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Input string: %q\n", input)
	fmt.Fprintf(&b, "Steps executed: %d\n", out.Steps)
	fmt.Fprintf(&b, "Final state: %s\n", out.FinalState)
	fmt.Fprintf(&b, "Machine halted: %v\n", out.Halted)
	switch out.Verdict {
	case machine.Accept:
		fmt.Fprintf(&b, "RESULT: ACCEPTS (halted in state %s)", out.FinalState)
	case machine.Reject:
		fmt.Fprintf(&b, "RESULT: REJECTS (final state: %s)", out.FinalState)
	default:
		b.WriteString("RESULT: DID NOT HALT (step budget exhausted)")
	}
	return b.String()
}
