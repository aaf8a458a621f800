package tetris

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
)

var (
	// ErrStopped is returned by actions once Run has returned.
	ErrStopped = errors.New("tetris: controller stopped")
	// ErrRunning is returned by a second concurrent call to Run.
	ErrRunning = errors.New("tetris: controller already running")
)

// commandBuffer bounds how many actions can queue ahead of the event loop.
const commandBuffer = 32

type commandKind int

const (
	cmdStart commandKind = iota
	cmdRestart
	cmdTogglePause
	cmdMove
	cmdRotate
	cmdHardDrop
	cmdTick
)

func (k commandKind) String() string {
	switch k {
	case cmdStart:
		return "start"
	case cmdRestart:
		return "restart"
	case cmdTogglePause:
		return "toggle_pause"
	case cmdMove:
		return "move"
	case cmdRotate:
		return "rotate"
	case cmdHardDrop:
		return "hard_drop"
	case cmdTick:
		return "tick"
	default:
		return "unknown"
	}
}

type command struct {
	kind commandKind
	dir  Direction
}

// Controller owns the live game state. All transitions, including gravity
// ticks, run one at a time on the goroutine that calls Run; action methods
// only enqueue. Consumers read snapshots via State or Subscribe.
type Controller struct {
	rules  Rules
	rng    RandomSource
	clock  clock.Clock
	logger *log.Logger

	cmds    chan command
	done    chan struct{}
	running atomic.Bool

	// Owned by the Run goroutine.
	timer *clock.Timer

	mu      sync.RWMutex
	state   State
	subs    map[int]chan State
	nextSub int
	stopped bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRandom sets the shape source. Defaults to a time-seeded math/rand.
func WithRandom(rng RandomSource) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithClock sets the clock driving gravity. Tests pass clock.NewMock().
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

// WithLogger sets the logger for game events. Defaults to discarding.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller in the not-started state.
// Invalid rules (non-positive board size) panic.
func NewController(rules Rules, opts ...Option) *Controller {
	c := &Controller{
		rules: rules,
		cmds:  make(chan command, commandBuffer),
		done:  make(chan struct{}),
		subs:  make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.state = rules.NewState()
	return c
}

// Rules returns the rules the controller was built with.
func (c *Controller) Rules() Rules {
	return c.rules
}

// Run processes actions and gravity ticks until ctx is cancelled.
// It returns ctx.Err(); afterwards actions fail with ErrStopped and
// subscription channels are closed.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer c.shutdown()

	for {
		var tick <-chan time.Time
		if c.timer != nil {
			tick = c.timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-c.cmds:
			c.apply(cmd)
		case <-tick:
			c.timer = nil
			c.apply(command{kind: cmdTick})
		}
	}
}

// Start begins a new game.
func (c *Controller) Start() error {
	return c.send(command{kind: cmdStart})
}

// Restart begins a new game from any state.
func (c *Controller) Restart() error {
	return c.send(command{kind: cmdRestart})
}

// TogglePause suspends or resumes gravity and piece input.
func (c *Controller) TogglePause() error {
	return c.send(command{kind: cmdTogglePause})
}

// Move shifts the active piece one cell. Unknown directions are rejected
// here so they never reach the event loop.
func (c *Controller) Move(dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("tetris: unknown direction %d", int(dir))
	}
	return c.send(command{kind: cmdMove, dir: dir})
}

// Rotate turns the active piece clockwise.
func (c *Controller) Rotate() error {
	return c.send(command{kind: cmdRotate})
}

// HardDrop drops and locks the active piece.
func (c *Controller) HardDrop() error {
	return c.send(command{kind: cmdHardDrop})
}

// State returns the last committed snapshot.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Subscribe returns a channel that receives the current snapshot right away
// and then every committed one. Slow readers only see the latest snapshot.
// The channel is closed by the returned cancel func or when Run exits.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan State, 1)
	if c.stopped {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.state

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

func (c *Controller) send(cmd command) error {
	select {
	case <-c.done:
		return ErrStopped
	default:
	}

	select {
	case c.cmds <- cmd:
		return nil
	case <-c.done:
		return ErrStopped
	}
}

// apply runs one transition, reschedules gravity and publishes the result.
// Publishing last means an observer of a snapshot sees a timer that already
// matches it.
func (c *Controller) apply(cmd command) {
	prev := c.State()
	next := c.transition(prev, cmd)

	c.logTransition(prev, next, cmd)
	c.reschedule(prev, next)
	c.publish(next)
}

func (c *Controller) transition(s State, cmd command) State {
	switch cmd.kind {
	case cmdStart:
		return c.rules.Start(c.rng)
	case cmdRestart:
		return c.rules.Restart(c.rng)
	case cmdTogglePause:
		return TogglePause(s)
	case cmdMove:
		return c.rules.Move(s, cmd.dir)
	case cmdRotate:
		return c.rules.Rotate(s)
	case cmdHardDrop:
		return c.rules.HardDrop(s, c.rng)
	case cmdTick:
		return c.rules.Tick(s, c.rng)
	default:
		return s
	}
}

// reschedule keeps the gravity timer running only while the game is active,
// re-arming it when the game becomes active or the level changes.
func (c *Controller) reschedule(prev, next State) {
	if !next.Active() {
		c.stopGravity()
		return
	}
	if c.timer == nil || !prev.Active() || prev.Level != next.Level {
		c.armGravity(c.rules.Timing.DropInterval(next.Level))
	}
}

func (c *Controller) armGravity(interval time.Duration) {
	c.stopGravity()
	c.timer = c.clock.Timer(interval)
	c.logger.Debug("gravity armed", "interval", interval)
}

func (c *Controller) stopGravity() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
	c.logger.Debug("gravity stopped")
}

func (c *Controller) publish(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = s
	for _, ch := range c.subs {
		select {
		case ch <- s:
		default:
			// Replace the unread snapshot with the newer one.
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}

func (c *Controller) logTransition(prev, next State, cmd command) {
	switch {
	case cmd.kind == cmdStart || cmd.kind == cmdRestart:
		c.logger.Info("game started", "command", cmd.kind, "width", next.Board.Width(), "height", next.Board.Height())
	case cmd.kind == cmdTogglePause:
		c.logger.Debug("pause toggled", "paused", next.Paused)
	}

	if cleared := next.Lines - prev.Lines; cleared > 0 && cmd.kind != cmdStart && cmd.kind != cmdRestart {
		c.logger.Info("lines cleared", "count", cleared, "total", next.Lines, "score", next.Score)
	}
	if next.Level > prev.Level {
		c.logger.Info("level up", "level", next.Level, "interval", c.rules.Timing.DropInterval(next.Level))
	}
	if next.GameOver && !prev.GameOver {
		c.logger.Info("game over", "score", next.Score, "lines", next.Lines, "level", next.Level)
	}
}

func (c *Controller) shutdown() {
	c.stopGravity()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	close(c.done)
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}
