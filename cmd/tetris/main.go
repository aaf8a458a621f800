// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play             - Play in the terminal
//	tetris pieces           - List the seven pieces
//	tetris config           - Print the effective configuration
//	tetris sim              - Run a headless game with random input
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.tetris/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible piece sequences
//	--log-file <path>   - Write logs to a file ("-" for stderr)
//	--log-level <name>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Stack falling blocks in your terminal",
	Long: `A falling-block puzzle game played in the terminal.

Available commands:
  play     - Start a game
  pieces   - Show the seven tetrominoes
  config   - Print the effective configuration as YAML
  sim      - Play a deterministic headless game with random input

Examples:
  tetris play
  tetris play --seed 42 --no-ghost
  tetris play --config ./fast.yaml --log-file tetris.log --log-level debug
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris sim --steps 500 --seed 7`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time for play)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path, \"-\" for stderr (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}
