package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_SeedsInput(t *testing.T) {
	tp := newTape("011", "_")
	assert.Equal(t, 3, tp.len())
	assert.Equal(t, "0", tp.read())
	assert.Equal(t, "011", tp.String())
}

func TestTape_EmptyInputIsSingleBlank(t *testing.T) {
	tp := newTape("", "_")
	assert.Equal(t, 1, tp.len())
	assert.Equal(t, "_", tp.read())
}

func TestTape_GrowsLeftAndReanchors(t *testing.T) {
	tp := newTape("1", "_")
	tp.moveLeft()
	tp.extend()

	assert.Equal(t, 0, tp.head)
	assert.Equal(t, "_1", tp.String())
	assert.Equal(t, "_", tp.read())
}

func TestTape_GrowsRight(t *testing.T) {
	tp := newTape("1", "_")
	tp.moveRight()
	tp.extend()

	assert.Equal(t, 1, tp.head)
	assert.Equal(t, "1_", tp.String())
}

func TestTape_GrowsAtMostOneCell(t *testing.T) {
	tp := newTape("1", "_")
	tp.extend() // head addressable, nothing to do
	assert.Equal(t, 1, tp.len())

	tp.moveRight()
	tp.extend()
	assert.Equal(t, 2, tp.len())
}

func TestTape_WriteOverwritesCell(t *testing.T) {
	tp := newTape("01", "_")
	tp.write("X")
	assert.Equal(t, "X1", tp.String())

	// Writing the symbol just read is still a write.
	tp.write("X")
	assert.Equal(t, "X1", tp.String())
}
