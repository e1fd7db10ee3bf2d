package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the per-tick motion state of a gravity-bound entity.
// DX and DY are the pending displacement until collisions commit them.
type PhysicsData struct {
	VelocityY     float64
	DX, DY        float64
	Rising        bool
	Falling       bool
	JumpRequested bool
}

// Grounded reports the entity is neither rising nor falling, i.e. it landed last tick.
func (p *PhysicsData) Grounded() bool {
	return !p.Rising && !p.Falling
}

var Physics = donburi.NewComponentType[PhysicsData]()
