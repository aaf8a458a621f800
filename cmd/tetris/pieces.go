package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List the seven tetrominoes",
	Long:  `Shows every piece in catalog order with its color and spawn orientation.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(_ *cobra.Command, _ []string) {
	fmt.Println("Pieces:")
	fmt.Println()

	for _, s := range tetris.Shapes() {
		fmt.Printf("  %s  (%s)\n", s.Name(), s.Color())
		for _, line := range strings.Split(s.Matrix().String(), "\n") {
			fmt.Printf("    %s\n", line)
		}
		fmt.Println()
	}
}
