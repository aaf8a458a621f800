package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants, in screen cells.
const (
	cellWidth   = 2  // each board cell is drawn two characters wide
	panelWidth  = 14 // side panel with preview and counters
	panelGap    = 2
	previewCols = 4
	previewRows = 2
)

// RenderOptions controls optional parts of the drawing.
type RenderOptions struct {
	ShowGhost bool
}

// MinScreenSize returns the smallest screen that fits a board of the given size.
func MinScreenSize(width, height int) (int, int) {
	w := width*cellWidth + 2 + panelGap + panelWidth
	h := height + 2
	return w, h
}

// Render draws the state into dst: the board with the active piece and
// its ghost, the next-piece preview, the counters and any status overlay.
func Render(s State, dst *core.Screen, opts RenderOptions) {
	dst.Clear()

	minW, minH := MinScreenSize(s.Board.Width(), s.Board.Height())
	if dst.Width() < minW || dst.Height() < minH {
		drawCentered(dst, dst.Height()/2-1, "Window too small", core.ColorDefault)
		drawCentered(dst, dst.Height()/2, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	ox := (dst.Width() - minW) / 2
	oy := (dst.Height() - minH) / 2
	boardRect := core.NewRect(ox, oy, s.Board.Width()*cellWidth+2, s.Board.Height()+2)

	renderBoard(s, dst, boardRect, opts)
	renderPanel(s, dst, boardRect.Right()+panelGap, oy)

	switch s.Status() {
	case StatusNotStarted:
		renderOverlay(dst, boardRect, "TETRIS", "Enter to start")
	case StatusPaused:
		renderOverlay(dst, boardRect, "Paused", "P to continue")
	case StatusGameOver:
		renderOverlay(dst, boardRect, "Game Over", "R to restart")
	}
}

// renderBoard draws the well, the locked cells, the ghost and the active piece.
func renderBoard(s State, dst *core.Screen, r core.Rect, opts RenderOptions) {
	dst.DrawBox(r, core.ColorGray)

	for y, h := 0, s.Board.Height(); y < h; y++ {
		for x, w := 0, s.Board.Width(); x < w; x++ {
			c := s.Board.At(x, y)
			if c.Filled {
				drawBlock(dst, r, x, y, '█', c.Color)
			} else {
				dst.SetColored(r.X+1+x*cellWidth+1, r.Y+1+y, '·', core.ColorDarkGray)
			}
		}
	}

	if s.Current == nil {
		return
	}
	piece := *s.Current

	if opts.ShowGhost && s.Status() != StatusGameOver {
		if ghost, ok := s.Ghost(); ok && ghost.Y != piece.Position().Y {
			for _, b := range piece.At(ghost).Blocks() {
				if s.Board.InBounds(b.X, b.Y) {
					drawBlock(dst, r, b.X, b.Y, '░', core.ColorGray)
				}
			}
		}
	}

	for _, b := range piece.Blocks() {
		if s.Board.InBounds(b.X, b.Y) {
			drawBlock(dst, r, b.X, b.Y, '█', piece.Color())
		}
	}
}

func drawBlock(dst *core.Screen, r core.Rect, x, y int, glyph rune, color core.Color) {
	px := r.X + 1 + x*cellWidth
	py := r.Y + 1 + y
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(px+i, py, glyph, color)
	}
}

// renderPanel draws the next-piece preview and the counters.
func renderPanel(s State, dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	box := core.NewRect(x, y+1, previewCols*cellWidth+2, previewRows+2)
	dst.DrawBox(box, core.ColorGray)

	if s.Next != nil {
		m := s.Next.Matrix()
		top := firstOccupiedRow(m)
		for _, c := range m.Cells() {
			row := c.Y - top
			if row >= previewRows || c.X >= previewCols {
				continue
			}
			drawBlock(dst, box, c.X, row, '█', s.Next.Color())
		}
	}

	line := box.Bottom() + 1
	for _, stat := range []struct {
		label string
		value int
	}{
		{"SCORE", s.Score},
		{"LEVEL", s.Level},
		{"LINES", s.Lines},
	} {
		dst.DrawText(x, line, stat.label)
		dst.DrawTextColored(x, line+1, fmt.Sprintf("%d", stat.value), core.ColorYellow)
		line += 3
	}
}

func firstOccupiedRow(m Matrix) int {
	for y, row := range m {
		for _, on := range row {
			if on {
				return y
			}
		}
	}
	return 0
}

// renderOverlay draws a boxed two-line message centered on the board.
func renderOverlay(dst *core.Screen, board core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	// Narrow boards are smaller than the box; keep it on screen.
	x := core.Clamp(board.X+(board.W-boxW)/2, 0, max(dst.Width()-boxW, 0))
	box := core.NewRect(x, board.Y+(board.H-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1)
	dst.DrawTextColored(box.X+(boxW-len(line2))/2, box.Y+3, line2, core.ColorGray)
}

func drawCentered(dst *core.Screen, y int, text string, color core.Color) {
	dst.DrawTextColored((dst.Width()-len(text))/2, y, text, color)
}
