package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var flagNoGhost bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  Left/A/H        - Move left
  Right/D/L       - Move right
  Down/S/J        - Soft drop (+1 per row)
  Up/W/K/X        - Rotate clockwise
  Space           - Hard drop (+2 per row)
  P/Esc           - Pause
  Enter           - Start
  R               - Restart
  ?               - Toggle full help
  Q/Ctrl+C        - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --no-ghost
  tetris play --config ./wide.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoGhost, "no-ghost", false, "Hide the landing preview")
}

func runPlay(_ *cobra.Command, _ []string) {
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

	rcfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rcfg.ScreenW = w
		rcfg.ScreenH = h
	}

	// One extra row for the help line.
	minW, minH := tetris.MinScreenSize(cfg.Board.Width, cfg.Board.Height)
	if rcfg.ScreenW < minW || rcfg.ScreenH < minH+1 {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", rcfg.ScreenW, rcfg.ScreenH, minW, minH+1)
		os.Exit(1)
	}

	rcfg.Seed = flagSeed
	rcfg.ShowGhost = cfg.Display.ShowGhost && !flagNoGhost
	if rcfg.Seed == 0 {
		rcfg.Seed = time.Now().UnixNano()
	}

	rules := tetris.RulesFromConfig(cfg)
	ctrl := tetris.NewController(rules,
		tetris.WithRandom(rand.New(rand.NewSource(rcfg.Seed))),
		tetris.WithLogger(logger),
	)
	logger.Info("session started", "seed", rcfg.Seed, "board", fmt.Sprintf("%dx%d", rules.Width, rules.Height))

	if err := tui.Run(ctrl, rcfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	final := ctrl.State()
	logger.Info("session ended", "score", final.Score, "lines", final.Lines, "level", final.Level)
}
