package tetris

import (
	"fmt"
	"strings"
)

// Snapshot is a flat, comparable-by-field summary of a State for
// determinism checks, the headless simulator and debugging.
type Snapshot struct {
	Status   Status
	Score    int
	Level    int
	Lines    int
	Piece    string // empty before the first start
	PieceX   int
	PieceY   int
	Rotation int
	GhostY   int
	Next     string
	Filled   int      // locked cells
	Rows     []string // '#' locked, '@' active piece, '.' empty
}

// Snapshot flattens the state.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Status: s.Status(),
		Score:  s.Score,
		Level:  s.Level,
		Lines:  s.Lines,
		Filled: s.Board.Filled(),
	}
	if s.Next != nil {
		snap.Next = s.Next.Name()
	}

	grid := make([][]byte, s.Board.Height())
	for y := range grid {
		grid[y] = make([]byte, s.Board.Width())
		for x := range grid[y] {
			if s.Board.IsEmpty(x, y) {
				grid[y][x] = '.'
			} else {
				grid[y][x] = '#'
			}
		}
	}

	if s.Current != nil {
		p := *s.Current
		snap.Piece = p.Shape().Name()
		snap.PieceX = p.Position().X
		snap.PieceY = p.Position().Y
		snap.Rotation = p.Rotation()
		ghost, _ := s.Ghost()
		snap.GhostY = ghost.Y
		for _, b := range p.Blocks() {
			if s.Board.InBounds(b.X, b.Y) {
				grid[b.Y][b.X] = '@'
			}
		}
	}

	snap.Rows = make([]string, len(grid))
	for y, row := range grid {
		snap.Rows[y] = string(row)
	}
	return snap
}

// DebugState returns a multi-line description of the state.
func (s State) DebugState() string {
	snap := s.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s, Score: %d, Level: %d, Lines: %d\n", snap.Status, snap.Score, snap.Level, snap.Lines)
	if snap.Piece != "" {
		fmt.Fprintf(&b, "Piece: %s at (%d, %d) rot %d, ghost y %d, next %s\n",
			snap.Piece, snap.PieceX, snap.PieceY, snap.Rotation, snap.GhostY, snap.Next)
	}
	b.WriteString(strings.Join(snap.Rows, "\n"))
	b.WriteByte('\n')
	return b.String()
}
