// Package tests provides reusable contract suites for ports implementations.
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
)

// RunOutcomeStoreContract verifies that a store complies with
// ports.OutcomeStore. Adapters call it from their own test files.
func RunOutcomeStoreContract(t *testing.T, store ports.OutcomeStore) {
	t.Helper()
	ctx := context.Background()

	outcome := &machine.Outcome{
		Verdict:    machine.Accept,
		FinalState: "accept",
		Steps:      7,
		Halted:     true,
		Tape:       "0101_",
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save(ctx, "key-1", outcome); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := store.Load(ctx, "key-1")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if *got != *outcome {
			t.Errorf("Load = %+v, want %+v", got, outcome)
		}
	})

	t.Run("LoadIsolation", func(t *testing.T) {
		got, err := store.Load(ctx, "key-1")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		// Mutating the loaded record must not affect the stored one.
		got.Verdict = machine.Reject

		again, err := store.Load(ctx, "key-1")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if again.Verdict != machine.Accept {
			t.Error("store leaked a mutable reference to its record")
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "absent")
		if !errors.Is(err, ports.ErrOutcomeNotFound) {
			t.Errorf("Load(absent) error = %v, want ErrOutcomeNotFound", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		keys, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		found := false
		for _, k := range keys {
			if k == "key-1" {
				found = true
			}
		}
		if !found {
			t.Errorf("List = %v, want to contain key-1", keys)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "key-1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "key-1"); !errors.Is(err, ports.ErrOutcomeNotFound) {
			t.Errorf("Load after Delete error = %v, want ErrOutcomeNotFound", err)
		}

		// Deleting an absent key is not an error.
		if err := store.Delete(ctx, "absent"); err != nil {
			t.Errorf("Delete(absent) = %v, want nil", err)
		}
	})
}
