package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity, starts requested jumps and derives rising/falling.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.VelocityY = gamemath.ApplyGravity(physics.VelocityY, cfg.Physics.Gravity, cfg.Physics.TerminalVelocity)
		if physics.JumpRequested {
			physics.VelocityY = cfg.Physics.JumpSpeed
			physics.JumpRequested = false
		}

		physics.Rising, physics.Falling = gamemath.VerticalFlags(physics.VelocityY)
		physics.DY = physics.VelocityY
	})
}
