package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/spindle/pkg/codec"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/registry"
)

// ResolveMachine turns a command line machine source into a Definition.
// A source is either a registered machine name or a path to a JSON/YAML
// machine document; names win over files with the same spelling.
func ResolveMachine(source string, reg *registry.Registry) (*machine.Definition, error) {
	if entry, err := reg.Lookup(source); err == nil {
		return entry.Definition, nil
	}

	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("unknown machine %q: not an example name or a readable file", source)
	}

	doc, err := codec.DecodeFile(source)
	if err != nil {
		return nil, err
	}
	return doc.Definition()
}
