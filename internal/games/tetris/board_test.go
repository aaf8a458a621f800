package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard(10, 20)

	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Equal(t, 0, b.Filled())
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			assert.True(t, b.IsEmpty(x, y))
		}
	}
}

func TestNewBoardInvalidSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 20) })
	assert.Panics(t, func() { NewBoard(10, -1) })
}

func TestBoardAtOutOfBounds(t *testing.T) {
	b := NewBoard(4, 4)
	assert.Equal(t, Cell{}, b.At(-1, 0))
	assert.Equal(t, Cell{}, b.At(0, 4))
	assert.False(t, b.InBounds(4, 0))
	assert.False(t, b.RowFull(-1))
}

func TestBoardWithCellsDoesNotMutate(t *testing.T) {
	b := NewBoard(4, 4)
	painted := b.withCells([]Position{{X: 1, Y: 2}, {X: 9, Y: 9}}, Cell{Filled: true, Color: core.ColorRed})

	assert.True(t, b.IsEmpty(1, 2), "original board must stay empty")
	assert.Equal(t, Cell{Filled: true, Color: core.ColorRed}, painted.At(1, 2))
	assert.Equal(t, 1, painted.Filled(), "off-board cells are ignored")
}

func TestBoardRowFull(t *testing.T) {
	b := fillRow(NewBoard(5, 3), 2)
	b = fillRow(b, 1, 3)

	assert.True(t, b.RowFull(2))
	assert.False(t, b.RowFull(1))
	assert.False(t, b.RowFull(0))
}

func TestBoardEqualAndString(t *testing.T) {
	a := fill(NewBoard(3, 2), Position{X: 0, Y: 1})
	b := fill(NewBoard(3, 2), Position{X: 0, Y: 1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewBoard(3, 2)))
	assert.False(t, a.Equal(NewBoard(2, 3)))
	assert.Equal(t, "...\n#..", a.String())
}
