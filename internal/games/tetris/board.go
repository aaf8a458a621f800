// Package tetris implements the falling-block puzzle rules: the board, the
// piece catalog, collision and placement, line clears and scoring, the pure
// state transitions, and the Controller that drives them on a gravity timer.
//
// Boards, pieces and states are values. Every operation returns a new value
// and never edits one it was given, so any State handed to a consumer stays
// valid after later transitions.
package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is one board position. An empty cell has Filled == false; Color only
// matters for rendering.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Position is a board coordinate. Row 0 is the top (spawn side).
type Position struct {
	X, Y int
}

// Board is a fixed-size grid of cells.
// Rows are never modified after construction and may be shared between boards.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard returns an empty board. Non-positive dimensions are a programmer
// error and panic.
func NewBoard(width, height int) Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}
	return Board{width: width, height: height, rows: rows}
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) is on the board.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Out-of-bounds positions read as empty.
func (b Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.rows[y][x]
}

// IsEmpty reports whether the cell at (x, y) is empty.
func (b Board) IsEmpty(x, y int) bool {
	return !b.At(x, y).Filled
}

// RowFull reports whether every cell of row y is occupied.
func (b Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two boards have the same size and cells.
func (b Board) Equal(other Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.rows {
		for x := range b.rows[y] {
			if b.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// withCells returns a copy of the board with the given cells painted.
// Only touched rows are copied; positions off the board are ignored.
func (b Board) withCells(cells []Position, c Cell) Board {
	rows := make([][]Cell, b.height)
	copy(rows, b.rows)

	copied := make(map[int]bool)
	for _, p := range cells {
		if !b.InBounds(p.X, p.Y) {
			continue
		}
		if !copied[p.Y] {
			row := make([]Cell, b.width)
			copy(row, b.rows[p.Y])
			rows[p.Y] = row
			copied[p.Y] = true
		}
		rows[p.Y][p.X] = c
	}
	return Board{width: b.width, height: b.height, rows: rows}
}

// String renders the board as text: '.' for empty cells, '#' for filled ones.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
