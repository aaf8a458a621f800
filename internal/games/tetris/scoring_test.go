package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearLinesBottomRow(t *testing.T) {
	b := fillRow(NewBoard(10, 20), 19, 0)
	b = fill(b, Position{X: 3, Y: 18})

	locked := Lock(b, customPiece(Position{X: 0, Y: 19}, "#"))
	require.True(t, locked.RowFull(19))

	cleared, n := ClearLines(locked)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, cleared.Filled())
	assert.False(t, cleared.IsEmpty(3, 19), "the row above shifts down")
	assert.True(t, cleared.IsEmpty(0, 19))
	for x := 0; x < 10; x++ {
		assert.True(t, cleared.IsEmpty(x, 0), "an empty row is inserted at the top")
	}
}

func TestClearLinesKeepsOrder(t *testing.T) {
	b := NewBoard(6, 6)
	b = fill(b, Position{X: 1, Y: 2})
	b = fillRow(b, 3)
	b = fill(b, Position{X: 2, Y: 4})
	b = fillRow(b, 5)

	cleared, n := ClearLines(b)
	require.Equal(t, 2, n)

	assert.Equal(t, "......\n......\n......\n......\n.#....\n..#...", cleared.String())
	assert.Equal(t, 6, cleared.Height())
}

func TestClearLinesNothingToClear(t *testing.T) {
	b := fillRow(NewBoard(10, 20), 19, 4)

	same, n := ClearLines(b)
	assert.Equal(t, 0, n)
	assert.True(t, same.Equal(b))
}

func TestClearLinesIdempotent(t *testing.T) {
	b := NewBoard(10, 20)
	for y := 16; y < 20; y++ {
		b = fillRow(b, y)
	}
	b = fill(b, Position{X: 7, Y: 15})

	once, n := ClearLines(b)
	require.Equal(t, MaxLinesPerLock, n)

	twice, n := ClearLines(once)
	assert.Equal(t, 0, n)
	assert.True(t, once.Equal(twice))
	assert.Equal(t, 41, b.Filled(), "input board is untouched")
}

func TestLineClearScore(t *testing.T) {
	table := DefaultScoreTable()

	tests := []struct {
		lines, level int
		want         int
	}{
		{0, 0, 0},
		{1, 0, 100},
		{2, 0, 300},
		{3, 0, 500},
		{4, 0, 800},
		{1, 2, 300},
		{2, 1, 600},
		{4, 9, 8000},
		{5, 0, 0},
		{-1, 3, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, table.LineClear(tc.lines, tc.level), "lines=%d level=%d", tc.lines, tc.level)
	}
}

func TestLineClearScoreMonotonic(t *testing.T) {
	table := DefaultScoreTable()
	for level := 0; level < 15; level++ {
		for lines := 1; lines < MaxLinesPerLock; lines++ {
			assert.Less(t, table.LineClear(lines, level), table.LineClear(lines+1, level))
		}
		for lines := 1; lines <= MaxLinesPerLock; lines++ {
			assert.Less(t, table.LineClear(lines, level), table.LineClear(lines, level+1))
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		lines, perLevel, want int
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{25, 10, 2},
		{7, 3, 2},
		{7, 0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LevelFor(tc.lines, tc.perLevel), "lines=%d per=%d", tc.lines, tc.perLevel)
	}
}

func TestDropInterval(t *testing.T) {
	timing := DefaultTiming()

	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, time.Second},
		{1, 900 * time.Millisecond},
		{5, 500 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{20, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, timing.DropInterval(tc.level), "level %d", tc.level)
	}

	for level := 0; level < 30; level++ {
		assert.GreaterOrEqual(t, timing.DropInterval(level), timing.DropInterval(level+1))
	}
}
