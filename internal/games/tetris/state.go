package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Status is the controller state derived from a State's flags.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one immutable snapshot of a game.
// Current is nil before the first start; Next is nil until a game starts.
// Playing and GameOver are never both true; Paused matters only while Playing.
type State struct {
	Board    Board
	Current  *Piece
	Next     *Shape
	Score    int
	Level    int
	Lines    int
	Playing  bool
	Paused   bool
	GameOver bool
}

// Status derives the controller state from the flags.
func (s State) Status() Status {
	switch {
	case s.GameOver:
		return StatusGameOver
	case !s.Playing:
		return StatusNotStarted
	case s.Paused:
		return StatusPaused
	default:
		return StatusPlaying
	}
}

// Active reports whether gravity and piece input apply.
func (s State) Active() bool {
	return s.Playing && !s.Paused && !s.GameOver && s.Current != nil
}

// Ghost returns the landing anchor of the current piece.
func (s State) Ghost() (Position, bool) {
	if s.Current == nil {
		return Position{}, false
	}
	return GhostPosition(s.Board, *s.Current), true
}

// Rules bundles the tunables the transitions depend on.
type Rules struct {
	Width         int
	Height        int
	LinesPerLevel int
	Scoring       ScoreTable
	Timing        Timing
}

// DefaultRules returns a 10x20 board with the classic scoring and timing.
func DefaultRules() Rules {
	return Rules{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		LinesPerLevel: 10,
		Scoring:       DefaultScoreTable(),
		Timing:        DefaultTiming(),
	}
}

// RulesFromConfig converts a validated configuration into Rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		Scoring: ScoreTable{
			Single:   cfg.Scoring.Single,
			Double:   cfg.Scoring.Double,
			Triple:   cfg.Scoring.Triple,
			Tetris:   cfg.Scoring.Tetris,
			SoftDrop: cfg.Scoring.SoftDrop,
			HardDrop: cfg.Scoring.HardDrop,
		},
		Timing: Timing{
			Initial:  time.Duration(cfg.Timing.InitialDropMs) * time.Millisecond,
			Decrease: time.Duration(cfg.Timing.DecreaseMs) * time.Millisecond,
			Floor:    time.Duration(cfg.Timing.FloorMs) * time.Millisecond,
		},
	}
}

// NewState returns the not-started state: an empty board and nothing else.
func (r Rules) NewState() State {
	return State{Board: NewBoard(r.Width, r.Height)}
}

// Start begins a fresh game: empty board, zeroed counters, a piece spawned
// from a freshly drawn shape and another shape drawn as the preview.
// If the spawned piece does not fit, the game is over immediately.
func (r Rules) Start(rng RandomSource) State {
	first := RandomShape(rng)
	s := State{
		Board:   NewBoard(r.Width, r.Height),
		Next:    &first,
		Playing: true,
	}
	return r.spawnNext(s, rng)
}

// Restart is Start from any state.
func (r Rules) Restart(rng RandomSource) State {
	return r.Start(rng)
}

// Tick applies one gravity step. A blocked piece locks.
func (r Rules) Tick(s State, rng RandomSource) State {
	if !s.Active() {
		return s
	}
	if moved, ok := Move(s.Board, *s.Current, DirDown); ok {
		s.Current = &moved
		return s
	}
	return r.lockCurrent(s, *s.Current, 0, rng)
}

// Move shifts the current piece. A successful manual down step scores soft
// drop points; a blocked move changes nothing.
func (r Rules) Move(s State, dir Direction) State {
	if !s.Active() {
		return s
	}
	moved, ok := Move(s.Board, *s.Current, dir)
	if !ok {
		return s
	}
	s.Current = &moved
	if dir == DirDown {
		s.Score += r.Scoring.SoftDrop
	}
	return s
}

// Rotate turns the current piece clockwise if it fits in place.
func (r Rules) Rotate(s State) State {
	if !s.Active() {
		return s
	}
	rotated, ok := Rotate(s.Board, *s.Current)
	if !ok {
		return s
	}
	s.Current = &rotated
	return s
}

// HardDrop drops the current piece to its ghost position and locks it,
// scoring per row dropped on top of any line clear.
func (r Rules) HardDrop(s State, rng RandomSource) State {
	if !s.Active() {
		return s
	}
	dropped, distance := HardDrop(s.Board, *s.Current)
	return r.lockCurrent(s, dropped, distance*r.Scoring.HardDrop, rng)
}

// TogglePause flips Paused and nothing else.
func TogglePause(s State) State {
	s.Paused = !s.Paused
	return s
}

// lockCurrent runs the lock sequence: merge, clear, score, level, respawn.
// Line-clear points use the level from before this lock.
func (r Rules) lockCurrent(s State, piece Piece, bonus int, rng RandomSource) State {
	board, cleared := ClearLines(Lock(s.Board, piece))

	s.Board = board
	s.Score += r.Scoring.LineClear(cleared, s.Level) + bonus
	s.Lines += cleared
	s.Level = LevelFor(s.Lines, r.LinesPerLevel)

	return r.spawnNext(s, rng)
}

// spawnNext promotes the preview shape to the active piece and draws a new
// preview. A spawn collision ends the game with the piece left in place.
func (r Rules) spawnNext(s State, rng RandomSource) State {
	var shape Shape
	if s.Next != nil {
		shape = *s.Next
	} else {
		shape = RandomShape(rng)
	}
	piece := Spawn(s.Board, shape)
	next := RandomShape(rng)

	s.Current = &piece
	s.Next = &next

	if !Fits(s.Board, piece) {
		s.GameOver = true
		s.Playing = false
	}
	return s
}
