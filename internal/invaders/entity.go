package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Direction is a horizontal heading: -1 left, +1 right.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Player is the ship at the bottom of the field.
type Player struct {
	core.Rect
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	core.Rect
	VY float64

	spent bool // Pending removal at the end of the step
}

// Enemy is one cell of the formation. Dead enemies stay in the slice so
// row/col indices and iteration order never change during a session.
type Enemy struct {
	core.Rect
	Row   int
	Col   int
	Alive bool
}
