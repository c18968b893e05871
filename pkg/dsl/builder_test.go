package dsl_test

import (
	"testing"

	"github.com/aretw0/spindle/pkg/catalog"
	"github.com/aretw0/spindle/pkg/dsl"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MatchesCatalogMachine(t *testing.T) {
	def, err := dsl.New("q0").
		Input("0", "1").
		Accept("accept").
		Reject("reject").
		On("q0", "0").Write("0").Right().To("q0").
		On("q0", "1").Write("1").Right().To("q1").
		On("q0", "_").Write("_").Right().To("accept").
		On("q1", "0").Write("0").Right().To("q1").
		On("q1", "1").Write("1").Right().To("q0").
		On("q1", "_").Write("_").Right().To("reject").
		Build()
	require.NoError(t, err)

	assert.Equal(t, catalog.EvenOnes().Fingerprint(), def.Fingerprint())
}

func TestBuild_InfersStatesAndTape(t *testing.T) {
	def, err := dsl.New("start").
		Input("a").
		Accept("done").
		On("start", "a").Write("X").Right().To("start").
		On("start", "_").Left().To("done").
		Build()
	require.NoError(t, err)

	assert.True(t, def.States.Has("start"))
	assert.True(t, def.States.Has("done"))
	assert.True(t, def.TapeAlphabet.Has("X"))
	assert.True(t, def.TapeAlphabet.Has("_"))
}

func TestBuild_DefaultWriteEchoesRead(t *testing.T) {
	def, err := dsl.New("q0").
		Input("a").
		Accept("ok").
		On("q0", "a").Right().To("ok").
		Build()
	require.NoError(t, err)

	act, ok := def.Lookup("q0", "a")
	require.True(t, ok)
	assert.Equal(t, "a", act.Write)
}

func TestBuild_DuplicateRule(t *testing.T) {
	_, err := dsl.New("q0").
		Input("a").
		Accept("ok").
		On("q0", "a").Right().To("ok").
		On("q0", "a").Left().To("ok").
		Build()
	assert.ErrorContains(t, err, "duplicate rule")
}

func TestBuild_MissingDirection(t *testing.T) {
	_, err := dsl.New("q0").
		Input("a").
		Accept("ok").
		On("q0", "a").To("ok").
		Build()
	assert.ErrorContains(t, err, "missing direction")
}

func TestBuild_ValidationDelegated(t *testing.T) {
	_, err := dsl.New("q0").
		Input("a").
		States("q0", "halt").
		Accept("halt").
		Reject("halt").
		Build()

	var defErr *machine.DefinitionError
	assert.ErrorAs(t, err, &defErr)
}

func TestBuild_CustomBlank(t *testing.T) {
	def, err := dsl.New("q0").
		Blank("#").
		Input("a").
		Accept("ok").
		On("q0", "#").Right().To("ok").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "#", def.BlankSymbol)
	assert.True(t, def.TapeAlphabet.Has("#"))
}
