// Package codec converts machine documents (the JSON/YAML wire format) to
// and from validated machine Definitions.
//
// A document looks like:
//
//	{
//	    "states": ["q0", "q1", "accept", "reject"],
//	    "alphabet": ["0", "1"],
//	    "tape_alphabet": ["0", "1", "_"],
//	    "initial_state": "q0",
//	    "accept_states": ["accept"],
//	    "reject_states": ["reject"],
//	    "blank_symbol": "_",
//	    "transitions": {
//	        "q0,0": ["q0", "0", "R"],
//	        "q0,1": ["q1", "1", "R"],
//	        "q1,_": ["accept", "_", "R"]
//	    }
//	}
//
// Transition keys are "state,symbol" pairs; values are
// [next_state, write_symbol, direction] with direction "L" or "R".
// blank_symbol is optional and defaults to "_".
package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/spindle/pkg/machine"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document is the serialized shape of a machine definition.
type Document struct {
	States       []string            `json:"states" yaml:"states"`
	Alphabet     []string            `json:"alphabet" yaml:"alphabet"`
	TapeAlphabet []string            `json:"tape_alphabet" yaml:"tape_alphabet"`
	InitialState string              `json:"initial_state" yaml:"initial_state"`
	AcceptStates []string            `json:"accept_states" yaml:"accept_states"`
	RejectStates []string            `json:"reject_states" yaml:"reject_states"`
	BlankSymbol  string              `json:"blank_symbol,omitempty" yaml:"blank_symbol,omitempty"`
	Transitions  map[string][]string `json:"transitions" yaml:"transitions"`
}

// DecodeJSON parses a JSON machine document.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse machine document: %w", err)
	}
	return &doc, nil
}

// DecodeYAML parses a YAML machine document.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse machine document: %w", err)
	}
	return &doc, nil
}

// DecodeFile reads a machine document from disk, picking the format from the
// file extension (.yaml/.yml for YAML, JSON otherwise).
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// FromMap decodes a machine document arriving as a generic map, as adapter
// payloads do. Field names follow the json tags.
func FromMap(raw map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode machine document: %w", err)
	}
	return &doc, nil
}

// Definition splits the composite transition keys, parses the directions and
// builds a validated machine.Definition.
func (d *Document) Definition() (*machine.Definition, error) {
	transitions := make(machine.Transitions, len(d.Transitions))
	for key, value := range d.Transitions {
		parts := strings.SplitN(key, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("transition key %q: want \"state,symbol\"", key)
		}
		if len(value) != 3 {
			return nil, fmt.Errorf("transition %q: want [next_state, write_symbol, direction], got %d elements", key, len(value))
		}
		move, err := machine.ParseDirection(value[2])
		if err != nil {
			return nil, fmt.Errorf("transition %q: %w", key, err)
		}
		transitions[machine.Key{State: parts[0], Symbol: parts[1]}] = machine.Action{
			Next:  value[0],
			Write: value[1],
			Move:  move,
		}
	}

	var opts []machine.Option
	if d.BlankSymbol != "" {
		opts = append(opts, machine.WithBlank(d.BlankSymbol))
	}

	return machine.New(
		machine.NewSet(d.States...),
		machine.NewSet(d.Alphabet...),
		machine.NewSet(d.TapeAlphabet...),
		transitions,
		d.InitialState,
		machine.NewSet(d.AcceptStates...),
		machine.NewSet(d.RejectStates...),
		opts...,
	)
}

// FromDefinition re-encodes a Definition as a Document with sorted fields.
func FromDefinition(def *machine.Definition) *Document {
	transitions := make(map[string][]string, len(def.Transitions))
	for key, act := range def.Transitions {
		transitions[key.State+","+key.Symbol] = []string{act.Next, act.Write, string(act.Move)}
	}
	return &Document{
		States:       def.States.Values(),
		Alphabet:     def.InputAlphabet.Values(),
		TapeAlphabet: def.TapeAlphabet.Values(),
		InitialState: def.InitialState,
		AcceptStates: def.AcceptStates.Values(),
		RejectStates: def.RejectStates.Values(),
		BlankSymbol:  def.BlankSymbol,
		Transitions:  transitions,
	}
}

// EncodeJSON renders the document as indented JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "    ")
}
