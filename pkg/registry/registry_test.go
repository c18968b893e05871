package registry_test

import (
	"testing"

	"github.com/aretw0/spindle/pkg/catalog"
	"github.com/aretw0/spindle/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromCatalog(t *testing.T) {
	r := registry.NewFromCatalog()

	entries := r.List()
	require.Len(t, entries, 3)
	// Sorted by name.
	assert.Equal(t, catalog.NameAcceptAll, entries[0].Name)

	entry, err := r.Lookup(catalog.NameEvenOnes)
	require.NoError(t, err)
	assert.NotNil(t, entry.Definition)
}

func TestRegister_Overwrites(t *testing.T) {
	r := registry.NewRegistry()

	def := catalog.AcceptAll()
	r.Register("mine", "first", def)
	r.Register("mine", "second", def)

	entry, err := r.Lookup("mine")
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Description)
	assert.Len(t, r.List(), 1)
}

func TestLookup_Missing(t *testing.T) {
	r := registry.NewRegistry()
	_, err := r.Lookup("ghost")
	assert.ErrorContains(t, err, "machine not found")
}
