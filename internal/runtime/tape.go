package runtime

import "strings"

// tape is the growable cell window for a single run. The tape is
// conceptually infinite in both directions; this window only ever grows by
// one blank cell at the boundary the head currently touches, so its length
// is bounded by the input length plus the number of steps executed.
type tape struct {
	cells []string
	head  int
	blank string
}

// newTape seeds the window with the input symbols, or a single blank cell
// when the input is empty. The head starts on the leftmost cell.
func newTape(input, blank string) *tape {
	if input == "" {
		return &tape{cells: []string{blank}, blank: blank}
	}
	cells := make([]string, 0, len(input))
	for _, r := range input {
		cells = append(cells, string(r))
	}
	return &tape{cells: cells, blank: blank}
}

// extend grows the window so the head addresses a real cell. Moving left of
// the first cell prepends one blank and re-anchors the head at 0; moving at
// or past the last cell appends one blank.
func (t *tape) extend() {
	if t.head < 0 {
		t.cells = append([]string{t.blank}, t.cells...)
		t.head = 0
	}
	if t.head >= len(t.cells) {
		t.cells = append(t.cells, t.blank)
	}
}

func (t *tape) read() string { return t.cells[t.head] }

func (t *tape) write(symbol string) { t.cells[t.head] = symbol }

func (t *tape) moveLeft()  { t.head-- }
func (t *tape) moveRight() { t.head++ }

// String returns the window contents as one string, work symbols included.
func (t *tape) String() string { return strings.Join(t.cells, "") }

func (t *tape) len() int { return len(t.cells) }
