package machine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Fingerprint returns a stable hex digest of the Definition. Two definitions
// with the same states, alphabets, transitions, initial state, halting sets
// and blank symbol produce the same fingerprint regardless of map iteration
// order. Execution is deterministic, so (fingerprint, input, step limit)
// fully identifies an outcome; stores use it as a cache key.
func (d *Definition) Fingerprint() string {
	var b strings.Builder

	writeSet := func(label string, s Set) {
		b.WriteString(label)
		b.WriteByte('=')
		b.WriteString(strings.Join(s.Values(), ","))
		b.WriteByte('\n')
	}

	writeSet("states", d.States)
	writeSet("alphabet", d.InputAlphabet)
	writeSet("tape_alphabet", d.TapeAlphabet)
	fmt.Fprintf(&b, "initial=%s\n", d.InitialState)
	writeSet("accept", d.AcceptStates)
	writeSet("reject", d.RejectStates)
	fmt.Fprintf(&b, "blank=%s\n", d.BlankSymbol)

	keys := make([]Key, 0, len(d.Transitions))
	for k := range d.Transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Symbol < keys[j].Symbol
	})
	for _, k := range keys {
		act := d.Transitions[k]
		fmt.Fprintf(&b, "t:%s,%s->%s,%s,%s\n", k.State, k.Symbol, act.Next, act.Write, act.Move)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
