package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Direction is a single-step translation of the active piece.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the three known directions.
func (d Direction) Valid() bool {
	return d == DirLeft || d == DirRight || d == DirDown
}

// ParseDirection converts "left", "right" or "down" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("tetris: unknown direction %q", s)
}

// offset returns the translation for one step in d.
func (d Direction) offset() Position {
	switch d {
	case DirLeft:
		return Position{X: -1}
	case DirRight:
		return Position{X: 1}
	case DirDown:
		return Position{Y: 1}
	}
	panic(fmt.Sprintf("tetris: unknown direction %d", int(d)))
}

// Piece is the active tetromino: a shape with its current matrix, anchor
// (top-left of the bounding box) and rotation counter. The matrix is the
// source of truth for collision; the counter is informational.
type Piece struct {
	shape    Shape
	matrix   Matrix
	pos      Position
	rotation int
}

// Shape returns the catalog shape the piece was spawned from.
func (p Piece) Shape() Shape {
	return p.shape
}

// Matrix returns the current occupancy matrix.
func (p Piece) Matrix() Matrix {
	return p.matrix
}

// Position returns the anchor.
func (p Piece) Position() Position {
	return p.pos
}

// Rotation returns 0, 90, 180 or 270.
func (p Piece) Rotation() int {
	return p.rotation
}

// Color returns the color the piece locks with.
func (p Piece) Color() core.Color {
	return p.shape.color
}

// At returns a copy of the piece anchored at pos.
func (p Piece) At(pos Position) Piece {
	p.pos = pos
	return p
}

// Blocks returns the absolute board positions of the occupied cells.
func (p Piece) Blocks() []Position {
	return p.blocksAt(p.pos)
}

func (p Piece) blocksAt(pos Position) []Position {
	cells := p.matrix.Cells()
	for i := range cells {
		cells[i].X += pos.X
		cells[i].Y += pos.Y
	}
	return cells
}

// Spawn places a shape horizontally centered on row 0 with rotation 0.
func Spawn(board Board, shape Shape) Piece {
	return Piece{
		shape:  shape,
		matrix: shape.matrix,
		pos: Position{
			X: board.Width()/2 - shape.matrix.Cols()/2,
			Y: 0,
		},
	}
}

// IsValidPosition reports whether the piece fits with its anchor at pos.
// Cells must be inside the side walls and above the floor; cells above the
// top edge (y < 0) count as empty, everything else must land on empty cells.
func IsValidPosition(board Board, piece Piece, pos Position) bool {
	for _, c := range piece.blocksAt(pos) {
		if c.X < 0 || c.X >= board.Width() || c.Y >= board.Height() {
			return false
		}
		if c.Y >= 0 && !board.IsEmpty(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Fits reports whether the piece is valid at its current anchor.
func Fits(board Board, piece Piece) bool {
	return IsValidPosition(board, piece, piece.pos)
}

// Move translates the piece one step. It returns false when the step is
// blocked; the caller decides whether that means lock or nothing.
// Unknown directions panic.
func Move(board Board, piece Piece, dir Direction) (Piece, bool) {
	off := dir.offset()
	pos := Position{X: piece.pos.X + off.X, Y: piece.pos.Y + off.Y}
	if !IsValidPosition(board, piece, pos) {
		return piece, false
	}
	return piece.At(pos), true
}

// Rotate turns the piece 90 degrees clockwise around its anchor.
// There are no wall kicks: a rotation that does not fit in place fails.
func Rotate(board Board, piece Piece) (Piece, bool) {
	rotated := piece
	rotated.matrix = piece.matrix.Rotate()
	rotated.rotation = (piece.rotation + 90) % 360
	if !Fits(board, rotated) {
		return piece, false
	}
	return rotated, true
}

// GhostPosition returns the lowest anchor the piece reaches by falling
// straight down. The probe stops at the floor, so it always terminates.
func GhostPosition(board Board, piece Piece) Position {
	pos := piece.pos
	for pos.Y < board.Height() && IsValidPosition(board, piece, Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	return pos
}

// Lock returns a board with the piece's cells painted in its color.
// Cells outside the board are dropped.
func Lock(board Board, piece Piece) Board {
	return board.withCells(piece.Blocks(), Cell{Filled: true, Color: piece.Color()})
}

// HardDrop moves the piece to its ghost position and reports how many rows it fell.
func HardDrop(board Board, piece Piece) (Piece, int) {
	ghost := GhostPosition(board, piece)
	return piece.At(ghost), ghost.Y - piece.pos.Y
}
