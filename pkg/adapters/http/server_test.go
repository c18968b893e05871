package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spindlehttp "github.com/aretw0/spindle/pkg/adapters/http"
	"github.com/aretw0/spindle/pkg/adapters/memory"
	"github.com/aretw0/spindle/pkg/catalog"
	"github.com/aretw0/spindle/pkg/codec"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/registry"
)

func newTestHandler(opts ...spindlehttp.Option) http.Handler {
	return spindlehttp.NewHandler(registry.NewFromCatalog(), opts...)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeOutcome(t *testing.T, w *httptest.ResponseRecorder) machine.Outcome {
	t.Helper()
	var out machine.Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRun(t *testing.T) {
	handler := newTestHandler()

	doc := codec.FromDefinition(catalog.EvenOnes())
	w := postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: *doc, Input: "11"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeOutcome(t, w)
	assert.Equal(t, machine.Accept, out.Verdict)
	assert.True(t, out.Halted)
}

func TestRun_InvalidMachine(t *testing.T) {
	handler := newTestHandler()

	doc := codec.FromDefinition(catalog.EvenOnes())
	doc.InitialState = "ghost"
	w := postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: *doc, Input: ""})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRun_InvalidInput(t *testing.T) {
	handler := newTestHandler()

	doc := codec.FromDefinition(catalog.EvenOnes())
	w := postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: *doc, Input: "012"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid input symbol")
}

func TestRun_BadBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("POST", "/run", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRun_StepBudget(t *testing.T) {
	handler := newTestHandler()

	loop := codec.Document{
		States:        []string{"q0", "halt"},
		Alphabet:      []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		InitialState:  "q0",
		AcceptStates:  []string{"halt"},
		RejectStates:  []string{},
		Transitions: map[string][]string{
			"q0,a": {"q0", "a", "R"},
			"q0,_": {"q0", "_", "R"},
		},
	}
	w := postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: loop, Input: "a", MaxSteps: 25})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeOutcome(t, w)
	assert.Equal(t, machine.Undetermined, out.Verdict)
	assert.Equal(t, 25, out.Steps)
	assert.False(t, out.Halted)
}

func TestListExamples(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("GET", "/examples", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var infos []spindlehttp.ExampleInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, catalog.NameAcceptAll, infos[0].Name)
}

func TestRunExample(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, fmt.Sprintf("/examples/%s/run", catalog.NameEqualZerosOnes),
		spindlehttp.ExampleRunRequest{Input: "0011"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decodeOutcome(t, w)
	assert.Equal(t, machine.Accept, out.Verdict)
}

func TestRunExample_Unknown(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/examples/ghost/run", spindlehttp.ExampleRunRequest{Input: ""})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun_Memoized(t *testing.T) {
	store := memory.NewStore()
	handler := newTestHandler(spindlehttp.WithOutcomeStore(store))

	doc := codec.FromDefinition(catalog.EvenOnes())
	w := postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: *doc, Input: "101"})
	require.Equal(t, http.StatusOK, w.Code)

	keys, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 1)

	// Second run is served from the cache and returns the same outcome.
	first := decodeOutcome(t, w)
	w = postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: *doc, Input: "101"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decodeOutcome(t, w))

	keys, err = store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler()

	doc := codec.FromDefinition(catalog.EvenOnes())
	postJSON(t, handler, "/run", spindlehttp.RunRequest{Machine: *doc, Input: "1"})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `spindle_runs_total{verdict="reject"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("OPTIONS", "/run", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
