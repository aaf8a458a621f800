// Package core holds the terminal-independent pieces shared by the game
// engine and the Bubble Tea front end: the cell buffer the board is drawn
// into, its palette, the action vocabulary and the session settings.
package core

// Rect is a region of the cell buffer, such as the well border, the preview
// box or a status overlay. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the region of w by h cells anchored at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column after the region; DrawBox draws its right
// border at Right()-1.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row after the region.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies in the region. Screen uses it
// to drop writes outside the buffer.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi]. Used to keep overlays inside the screen when
// the board is narrower than the message box.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Max returns the larger of a and b. Negative screen sizes clamp to zero with it.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
