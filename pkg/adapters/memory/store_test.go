package memory_test

import (
	"testing"

	"github.com/aretw0/spindle/pkg/adapters/memory"
	"github.com/aretw0/spindle/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	tests.RunOutcomeStoreContract(t, memory.NewStore())
}
