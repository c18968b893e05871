package machine

import "fmt"

// Direction indicates where the head moves after a transition writes.
type Direction string

const (
	// Left shifts the head one cell towards the start of the tape.
	Left Direction = "L"
	// Right shifts the head one cell towards the end of the tape.
	Right Direction = "R"
)

// ParseDirection converts the wire representation ("L"/"R") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Left:
		return Left, nil
	case Right:
		return Right, nil
	default:
		return "", fmt.Errorf("invalid direction %q (want %q or %q)", s, Left, Right)
	}
}

// Key identifies one entry in the transition table.
type Key struct {
	State  string
	Symbol string
}

// Action is the effect of firing a transition: the state to enter, the
// symbol to write over the cell just read, and the head movement.
type Action struct {
	Next  string
	Write string
	Move  Direction
}

// Transitions is the sparse transition function. Pairs absent from the map
// mean "no move defined"; the engine halts with a reject verdict when it
// reads one.
type Transitions map[Key]Action
