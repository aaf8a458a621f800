package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagSteps int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with random input",
	Long: `Plays a game without a terminal UI. Each step applies one random
action (left, right, soft drop, rotate or hard drop) followed by one
gravity tick. The same seed and config always produce the same game.

Examples:
  tetris sim
  tetris sim --steps 2000 --seed 42
  tetris sim --log-file - --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 1000, "Maximum number of steps")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	final, steps := simulate(tetris.RulesFromConfig(cfg), flagSeed, flagSteps)
	logger.Info("simulation finished", "seed", flagSeed, "steps", steps, "score", final.Score, "status", final.Status())

	fmt.Printf("Seed: %d, Steps: %d\n", flagSeed, steps)
	fmt.Print(final.DebugState())
}

// simulate plays up to steps random actions, each followed by a gravity
// tick, and stops early on game over. It returns the final state and the
// number of steps taken.
func simulate(rules tetris.Rules, seed int64, steps int) (tetris.State, int) {
	rng := rand.New(rand.NewSource(seed))
	actions := core.GameActions()

	s := rules.Start(rng)
	n := 0
	for ; n < steps && !s.GameOver; n++ {
		s = applyAction(rules, s, actions[rng.Intn(len(actions))], rng)
		s = rules.Tick(s, rng)
	}
	return s, n
}

// applyAction runs the transition bound to a game action.
func applyAction(rules tetris.Rules, s tetris.State, a core.Action, rng tetris.RandomSource) tetris.State {
	switch a {
	case core.ActionLeft:
		return rules.Move(s, tetris.DirLeft)
	case core.ActionRight:
		return rules.Move(s, tetris.DirRight)
	case core.ActionSoftDrop:
		return rules.Move(s, tetris.DirDown)
	case core.ActionRotate:
		return rules.Rotate(s)
	case core.ActionHardDrop:
		return rules.HardDrop(s, rng)
	case core.ActionPause:
		return tetris.TogglePause(s)
	case core.ActionStart, core.ActionRestart:
		return rules.Restart(rng)
	default:
		return s
	}
}
