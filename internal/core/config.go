package core

// RuntimeConfig contains settings the platform passes to a game session.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	Seed      int64 // RNG seed; 0 means seed from the current time
	ShowGhost bool  // Draw the landing preview of the active piece
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		Seed:      0,
		ShowGhost: true,
	}
}
