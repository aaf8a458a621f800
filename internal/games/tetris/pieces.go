package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Matrix is a piece occupancy grid indexed [row][col].
// Matrices are treated as immutable once built.
type Matrix [][]bool

// parseMatrix builds a matrix from rows of '#' (occupied) and '.' (empty).
func parseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			panic(fmt.Sprintf("tetris: ragged shape row %q", row))
		}
		m[y] = make([]bool, len(row))
		for x, ch := range row {
			m[y][x] = ch == '#'
		}
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Rotate returns the matrix turned 90 degrees clockwise.
// An R x C matrix becomes C x R.
func (m Matrix) Rotate() Matrix {
	rows, cols := m.Rows(), m.Cols()
	rotated := make(Matrix, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rotated[col][rows-1-row] = m[row][col]
		}
	}
	return rotated
}

// Cells returns the occupied offsets, row by row.
func (m Matrix) Cells() []Position {
	var cells []Position
	for y, row := range m {
		for x, on := range row {
			if on {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// Equal reports whether two matrices have the same shape and occupancy.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for y := range m {
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with '#' and '.' rows joined by newlines.
func (m Matrix) String() string {
	lines := make([]string, len(m))
	for y, row := range m {
		var sb strings.Builder
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Shape is an immutable catalog entry: a name, a color and a spawn matrix.
type Shape struct {
	name   string
	color  core.Color
	matrix Matrix
}

// Name returns the shape letter (I, O, T, S, Z, J, L).
func (s Shape) Name() string {
	return s.name
}

// Color returns the color used when the shape locks.
func (s Shape) Color() core.Color {
	return s.color
}

// Matrix returns the spawn occupancy matrix.
func (s Shape) Matrix() Matrix {
	return s.matrix
}

// catalog holds the seven shapes in a fixed order.
var catalog = [...]Shape{
	{name: "I", color: core.ColorCyan, matrix: parseMatrix(
		"....",
		"####",
		"....",
		"....",
	)},
	{name: "O", color: core.ColorYellow, matrix: parseMatrix(
		"##",
		"##",
	)},
	{name: "T", color: core.ColorPurple, matrix: parseMatrix(
		".#.",
		"###",
		"...",
	)},
	{name: "S", color: core.ColorGreen, matrix: parseMatrix(
		".##",
		"##.",
		"...",
	)},
	{name: "Z", color: core.ColorRed, matrix: parseMatrix(
		"##.",
		".##",
		"...",
	)},
	{name: "J", color: core.ColorBlue, matrix: parseMatrix(
		"#..",
		"###",
		"...",
	)},
	{name: "L", color: core.ColorOrange, matrix: parseMatrix(
		"..#",
		"###",
		"...",
	)},
}

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = len(catalog)

// Shapes returns the catalog in its fixed order.
func Shapes() []Shape {
	out := make([]Shape, ShapeCount)
	copy(out, catalog[:])
	return out
}

// ShapeByName looks up a catalog shape by its letter, case-insensitively.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range catalog {
		if strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return Shape{}, false
}

// RandomSource supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// RandomShape draws a shape uniformly at random. Draws are independent;
// there is no bag, so repeats and droughts are possible.
func RandomShape(rng RandomSource) Shape {
	return catalog[rng.Intn(ShapeCount)]
}
