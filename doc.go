/*
Package spindle is a deterministic single-tape Turing machine interpreter.

Given a validated machine definition and an input string, it simulates the
tape, head and state evolution step by step and reports whether the machine
halts accepting, halts rejecting, or fails to halt within a step budget.

# Concept

A machine is described by a finite state set, an input alphabet, a tape
alphabet, a sparse transition table, an initial state and disjoint accept and
reject state sets. The interpreter owns the simulation only; how definitions
reach it (files, HTTP payloads, the built-in catalog) is the caller's concern.
Because execution is deterministic and definitions are immutable after
construction, one definition can serve any number of concurrent runs.

Halting is undecidable in general, so the interpreter never tries to prove
it: a run that exhausts its step budget reports the Undetermined verdict,
which is explicitly distinct from a rejection.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/spindle"
		"github.com/aretw0/spindle/pkg/catalog"
	)

	func main() {
		interp, err := spindle.New(catalog.EvenOnes())
		if err != nil {
			log.Fatal(err)
		}

		out, err := interp.Run("1101")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(out.Verdict, out.FinalState, out.Steps)
	}

Custom machines are built with pkg/machine, or decoded from JSON/YAML
documents with pkg/codec.
*/
package spindle
