package core

// RuntimeConfig contains terminal and timing settings passed to the platform.
// The simulation itself works in world units and never reads these.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Render/update frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes the session for the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended
	Won      bool // Whether the session ended in a win
	Paused   bool // Whether the session is paused
}
