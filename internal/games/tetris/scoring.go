package tetris

import "time"

// MaxLinesPerLock is the most rows a single lock can complete.
const MaxLinesPerLock = 4

// ClearLines removes every complete row and inserts as many empty rows at
// the top. Remaining rows keep their order. With nothing to clear the input
// board is returned as is.
func ClearLines(board Board) (Board, int) {
	kept := make([][]Cell, 0, board.height)
	for y, row := range board.rows {
		if !board.RowFull(y) {
			kept = append(kept, row)
		}
	}

	cleared := board.height - len(kept)
	if cleared == 0 {
		return board, 0
	}

	rows := make([][]Cell, 0, board.height)
	for _i := 0; _i < cleared; _i++ {
		rows = append(rows, make([]Cell, board.width))
	}
	rows = append(rows, kept...)

	return Board{width: board.width, height: board.height, rows: rows}, cleared
}

// ScoreTable holds the points awarded per action.
type ScoreTable struct {
	Single   int
	Double   int
	Triple   int
	Tetris   int
	SoftDrop int // per manual down step
	HardDrop int // per row of hard drop distance
}

// DefaultScoreTable returns the classic 100/300/500/800 table.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Single:   100,
		Double:   300,
		Triple:   500,
		Tetris:   800,
		SoftDrop: 1,
		HardDrop: 2,
	}
}

// LineClear returns the points for clearing lines rows at once while at
// level. Counts outside 1..4 score nothing.
func (t ScoreTable) LineClear(lines, level int) int {
	var base int
	switch lines {
	case 1:
		base = t.Single
	case 2:
		base = t.Double
	case 3:
		base = t.Triple
	case 4:
		base = t.Tetris
	default:
		return 0
	}
	return base * (level + 1)
}

// LevelFor derives the level from the cumulative line count.
func LevelFor(lines, linesPerLevel int) int {
	if linesPerLevel <= 0 {
		return 0
	}
	return lines / linesPerLevel
}

// Timing defines the gravity period as a linear function of level.
type Timing struct {
	Initial  time.Duration
	Decrease time.Duration // per level
	Floor    time.Duration
}

// DefaultTiming returns 1000ms at level 0, 100ms faster per level, 50ms minimum.
func DefaultTiming() Timing {
	return Timing{
		Initial:  1000 * time.Millisecond,
		Decrease: 100 * time.Millisecond,
		Floor:    50 * time.Millisecond,
	}
}

// DropInterval returns the gravity tick period for level.
func (t Timing) DropInterval(level int) time.Duration {
	return max(t.Floor, t.Initial-time.Duration(level)*t.Decrease)
}
