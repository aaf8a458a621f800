package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Catalog indexes for fixedRandom sequences.
const (
	idxI = iota
	idxO
	idxT
	idxS
	idxZ
	idxJ
	idxL
)

// fixedRandom replays a fixed sequence of draws.
type fixedRandom struct {
	seq []int
	i   int
}

func newFixedRandom(seq ...int) *fixedRandom {
	return &fixedRandom{seq: seq}
}

func (f *fixedRandom) Intn(n int) int {
	v := f.seq[f.i%len(f.seq)] % n
	f.i++
	return v
}

// fillRow returns b with row y filled except for the listed columns.
func fillRow(b Board, y int, except ...int) Board {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	var cells []Position
	for x, _n := 0, b.Width(); x < _n; x++ {
		if !skip[x] {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return b.withCells(cells, Cell{Filled: true, Color: core.ColorGray})
}

// fill returns b with the given cells occupied.
func fill(b Board, cells ...Position) Board {
	return b.withCells(cells, Cell{Filled: true, Color: core.ColorGray})
}

// customPiece builds a piece from an arbitrary matrix.
func customPiece(pos Position, rows ...string) Piece {
	return Piece{
		shape:  Shape{name: "X", color: core.ColorRed, matrix: parseMatrix(rows...)},
		matrix: parseMatrix(rows...),
		pos:    pos,
	}
}

func mustShape(name string) Shape {
	s, ok := ShapeByName(name)
	if !ok {
		panic("unknown shape " + name)
	}
	return s
}
