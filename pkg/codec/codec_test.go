package codec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/spindle/internal/runtime"
	"github.com/aretw0/spindle/pkg/catalog"
	"github.com/aretw0/spindle/pkg/codec"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parityJSON = `{
    "states": ["q0", "q1", "accept", "reject"],
    "alphabet": ["0", "1"],
    "tape_alphabet": ["0", "1", "_"],
    "initial_state": "q0",
    "accept_states": ["accept"],
    "reject_states": ["reject"],
    "transitions": {
        "q0,0": ["q0", "0", "R"],
        "q0,1": ["q1", "1", "R"],
        "q0,_": ["accept", "_", "R"],
        "q1,0": ["q1", "0", "R"],
        "q1,1": ["q0", "1", "R"],
        "q1,_": ["reject", "_", "R"]
    }
}`

const parityYAML = `states: [q0, q1, accept, reject]
alphabet: ["0", "1"]
tape_alphabet: ["0", "1", "_"]
initial_state: q0
accept_states: [accept]
reject_states: [reject]
transitions:
  "q0,0": [q0, "0", R]
  "q0,1": [q1, "1", R]
  "q0,_": [accept, "_", R]
  "q1,0": [q1, "0", R]
  "q1,1": [q0, "1", R]
  "q1,_": [reject, "_", R]
`

func TestDecodeJSON_RunsLikeTheCatalogMachine(t *testing.T) {
	doc, err := codec.DecodeJSON([]byte(parityJSON))
	require.NoError(t, err)

	def, err := doc.Definition()
	require.NoError(t, err)

	// Missing blank_symbol falls back to the default.
	assert.Equal(t, machine.DefaultBlank, def.BlankSymbol)
	assert.Equal(t, catalog.EvenOnes().Fingerprint(), def.Fingerprint())

	out, err := runtime.NewEngine().Run(def, "1101")
	require.NoError(t, err)
	assert.Equal(t, machine.Reject, out.Verdict)
}

func TestDecodeYAML(t *testing.T) {
	doc, err := codec.DecodeYAML([]byte(parityYAML))
	require.NoError(t, err)

	def, err := doc.Definition()
	require.NoError(t, err)
	assert.Equal(t, catalog.EvenOnes().Fingerprint(), def.Fingerprint())
}

func TestDecodeFile_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "parity.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(parityJSON), 0o644))
	yamlPath := filepath.Join(dir, "parity.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(parityYAML), 0o644))

	fromJSON, err := codec.DecodeFile(jsonPath)
	require.NoError(t, err)
	fromYAML, err := codec.DecodeFile(yamlPath)
	require.NoError(t, err)

	defJSON, err := fromJSON.Definition()
	require.NoError(t, err)
	defYAML, err := fromYAML.Definition()
	require.NoError(t, err)
	assert.Equal(t, defJSON.Fingerprint(), defYAML.Fingerprint())
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := codec.DecodeFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDefinition_BadTransitionKey(t *testing.T) {
	doc, err := codec.DecodeJSON([]byte(parityJSON))
	require.NoError(t, err)
	doc.Transitions["malformed"] = []string{"q0", "0", "R"}

	_, err = doc.Definition()
	assert.ErrorContains(t, err, "malformed")
}

func TestDefinition_BadTransitionArity(t *testing.T) {
	doc, err := codec.DecodeJSON([]byte(parityJSON))
	require.NoError(t, err)
	doc.Transitions["q0,0"] = []string{"q0", "0"}

	_, err = doc.Definition()
	assert.ErrorContains(t, err, "3")
}

func TestDefinition_BadDirection(t *testing.T) {
	doc, err := codec.DecodeJSON([]byte(parityJSON))
	require.NoError(t, err)
	doc.Transitions["q0,0"] = []string{"q0", "0", "U"}

	_, err = doc.Definition()
	assert.ErrorContains(t, err, "direction")
}

func TestDefinition_PropagatesConstructionErrors(t *testing.T) {
	doc, err := codec.DecodeJSON([]byte(parityJSON))
	require.NoError(t, err)
	doc.InitialState = "ghost"

	_, err = doc.Definition()
	require.Error(t, err)

	var defErr *machine.DefinitionError
	assert.ErrorAs(t, err, &defErr)
}

func TestDefinition_BlankSymbolOverride(t *testing.T) {
	doc, err := codec.DecodeJSON([]byte(parityJSON))
	require.NoError(t, err)
	doc.BlankSymbol = "#"
	doc.TapeAlphabet = append(doc.TapeAlphabet, "#")

	def, err := doc.Definition()
	require.NoError(t, err)
	assert.Equal(t, "#", def.BlankSymbol)
}

func TestFromMap(t *testing.T) {
	raw := map[string]any{
		"states":        []any{"q0", "accept"},
		"alphabet":      []any{"0"},
		"tape_alphabet": []any{"0", "_"},
		"initial_state": "q0",
		"accept_states": []any{"accept"},
		"reject_states": []any{},
		"transitions": map[string]any{
			"q0,0": []any{"q0", "0", "R"},
			"q0,_": []any{"accept", "_", "R"},
		},
	}

	doc, err := codec.FromMap(raw)
	require.NoError(t, err)

	def, err := doc.Definition()
	require.NoError(t, err)

	out, err := runtime.NewEngine().Run(def, "00")
	require.NoError(t, err)
	assert.Equal(t, machine.Accept, out.Verdict)
}

func TestFromDefinition_RoundTrip(t *testing.T) {
	original := catalog.EqualZerosOnes()

	doc := codec.FromDefinition(original)
	data, err := doc.EncodeJSON()
	require.NoError(t, err)

	decoded, err := codec.DecodeJSON(data)
	require.NoError(t, err)
	def, err := decoded.Definition()
	require.NoError(t, err)

	assert.Equal(t, original.Fingerprint(), def.Fingerprint())
}
