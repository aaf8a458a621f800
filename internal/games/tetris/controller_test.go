package tetris

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	c      *Controller
	clock  *clock.Mock
	states <-chan State
	cancel context.CancelFunc
	errs   chan error
}

func newHarness(t *testing.T, rules Rules, opts ...Option) *harness {
	t.Helper()

	mock := clock.NewMock()
	opts = append([]Option{WithClock(mock), WithRandom(newFixedRandom(idxO))}, opts...)
	c := NewController(rules, opts...)

	states, unsubscribe := c.Subscribe()
	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() { errs <- c.Run(ctx) }()

	h := &harness{c: c, clock: mock, states: states, cancel: cancel, errs: errs}
	t.Cleanup(func() {
		unsubscribe()
		cancel()
	})
	return h
}

// waitFor reads snapshots until one satisfies ok.
func (h *harness) waitFor(t *testing.T, what string, ok func(State) bool) State {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case s, open := <-h.states:
			require.True(t, open, "subscription closed while waiting for %s", what)
			if ok(s) {
				return s
			}
		case <-timeout:
			require.FailNow(t, "timed out waiting for "+what)
		}
	}
}

func (h *harness) stop(t *testing.T) error {
	t.Helper()
	h.cancel()
	select {
	case err := <-h.errs:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "Run did not return")
		return nil
	}
}

func playing(s State) bool { return s.Status() == StatusPlaying }

func TestControllerInitialState(t *testing.T) {
	h := newHarness(t, DefaultRules())

	s := h.waitFor(t, "initial snapshot", func(State) bool { return true })
	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Equal(t, StatusNotStarted, h.c.State().Status())
	assert.Equal(t, DefaultRules(), h.c.Rules())
}

func TestControllerGravity(t *testing.T) {
	h := newHarness(t, DefaultRules())

	require.NoError(t, h.c.Start())
	s := h.waitFor(t, "start", playing)
	assert.Equal(t, 0, s.Current.Position().Y)

	h.clock.Add(time.Second)
	s = h.waitFor(t, "first tick", func(s State) bool { return s.Current.Position().Y == 1 })
	assert.Zero(t, s.Score, "gravity does not score")

	h.clock.Add(time.Second)
	h.waitFor(t, "second tick", func(s State) bool { return s.Current.Position().Y == 2 })
}

func TestControllerPauseStopsGravity(t *testing.T) {
	h := newHarness(t, DefaultRules())

	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)

	require.NoError(t, h.c.TogglePause())
	h.waitFor(t, "pause", func(s State) bool { return s.Paused })

	h.clock.Add(5 * time.Second)

	require.NoError(t, h.c.TogglePause())
	s := h.waitFor(t, "resume", func(s State) bool { return s.Playing && !s.Paused })
	assert.Equal(t, 0, s.Current.Position().Y, "no tick while paused")

	h.clock.Add(time.Second)
	h.waitFor(t, "tick after resume", func(s State) bool { return s.Current.Position().Y == 1 })
}

func TestControllerActionsWhilePausedAreIgnored(t *testing.T) {
	h := newHarness(t, DefaultRules())

	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)
	require.NoError(t, h.c.TogglePause())
	paused := h.waitFor(t, "pause", func(s State) bool { return s.Paused })

	require.NoError(t, h.c.Move(DirLeft))
	require.NoError(t, h.c.Rotate())
	require.NoError(t, h.c.HardDrop())
	require.NoError(t, h.c.TogglePause())

	s := h.waitFor(t, "resume", func(s State) bool { return !s.Paused })
	assert.Equal(t, paused.Current, s.Current)
	assert.Equal(t, 0, s.Board.Filled())
}

func TestControllerLevelChangeReschedules(t *testing.T) {
	rules := DefaultRules()
	rules.Width = 4
	rules.LinesPerLevel = 1
	h := newHarness(t, rules)

	require.NoError(t, h.c.Start())
	s := h.waitFor(t, "start", playing)
	require.Equal(t, 1, s.Current.Position().X)

	require.NoError(t, h.c.Move(DirLeft))
	require.NoError(t, h.c.HardDrop())
	require.NoError(t, h.c.Move(DirRight))
	require.NoError(t, h.c.HardDrop())

	s = h.waitFor(t, "double clear", func(s State) bool { return s.Lines == 2 })
	require.Equal(t, 2, s.Level)
	require.Equal(t, 800*time.Millisecond, rules.Timing.DropInterval(s.Level))

	h.clock.Add(799 * time.Millisecond)
	require.NoError(t, h.c.Rotate())
	s = h.waitFor(t, "rotate", func(s State) bool { return s.Current.Rotation() == 90 })
	assert.Equal(t, 0, s.Current.Position().Y, "level 2 interval has not elapsed")

	h.clock.Add(time.Millisecond)
	h.waitFor(t, "tick at level 2 interval", func(s State) bool { return s.Current.Position().Y == 1 })
}

func TestControllerGameOverStopsGravity(t *testing.T) {
	rules := DefaultRules()
	rules.Width = 4
	rules.Height = 2
	h := newHarness(t, rules)

	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)
	require.NoError(t, h.c.HardDrop())
	over := h.waitFor(t, "game over", func(s State) bool { return s.GameOver })

	h.clock.Add(10 * time.Second)
	require.NoError(t, h.c.Rotate())
	s := h.waitFor(t, "rotate", func(State) bool { return true })

	assert.Equal(t, over, s)
	assert.False(t, s.Playing)
}

func TestControllerRestart(t *testing.T) {
	h := newHarness(t, DefaultRules())

	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)
	require.NoError(t, h.c.HardDrop())
	h.waitFor(t, "drop", func(s State) bool { return s.Score == 36 })

	require.NoError(t, h.c.Restart())
	s := h.waitFor(t, "restart", func(s State) bool { return s.Score == 0 })
	assert.Equal(t, StatusPlaying, s.Status())
	assert.Equal(t, 0, s.Board.Filled())
}

func TestControllerRejectsUnknownDirection(t *testing.T) {
	h := newHarness(t, DefaultRules())

	err := h.c.Move(Direction(9))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStopped)
}

func TestControllerRunTwice(t *testing.T) {
	h := newHarness(t, DefaultRules())
	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)

	assert.ErrorIs(t, h.c.Run(context.Background()), ErrRunning)
}

func TestControllerStop(t *testing.T) {
	h := newHarness(t, DefaultRules())
	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)

	err := h.stop(t)
	assert.True(t, errors.Is(err, context.Canceled))

	assert.ErrorIs(t, h.c.Start(), ErrStopped)
	assert.ErrorIs(t, h.c.HardDrop(), ErrStopped)
	assert.ErrorIs(t, h.c.Move(DirDown), ErrStopped)

	for range h.states {
	}

	late, cancel := h.c.Subscribe()
	defer cancel()
	_, open := <-late
	assert.False(t, open)

	assert.Equal(t, StatusPlaying, h.c.State().Status(), "last snapshot stays readable")
}

func TestControllerUnsubscribe(t *testing.T) {
	h := newHarness(t, DefaultRules())

	states, cancel := h.c.Subscribe()
	<-states
	cancel()
	cancel()

	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)

	for range states {
	}
}

func TestControllerLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	rules := DefaultRules()
	rules.Width = 4
	rules.Height = 2
	h := newHarness(t, rules, WithLogger(logger))

	require.NoError(t, h.c.Start())
	h.waitFor(t, "start", playing)
	require.NoError(t, h.c.HardDrop())
	h.waitFor(t, "game over", func(s State) bool { return s.GameOver })
	require.ErrorIs(t, h.stop(t), context.Canceled)

	out := buf.String()
	assert.Contains(t, out, "game started")
	assert.Contains(t, out, "gravity armed")
	assert.Contains(t, out, "gravity stopped")
	assert.Contains(t, out, "game over")
}
