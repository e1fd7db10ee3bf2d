package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/systems/factory"
	"github.com/automoto/deepdiver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns held keys into a horizontal step, facing, run animation and jump request.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	now := getOrCreateClock(ecs).Now

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		anim := components.Animation.Get(e)

		left := GetAction(input, cfg.ActionMoveLeft).Pressed
		right := GetAction(input, cfg.ActionMoveRight).Pressed

		physics.DX = gamemath.HorizontalDelta(left, right, cfg.Player.Speed)
		switch {
		case physics.DX > 0:
			player.Direction.X = cfg.DirectionRight
		case physics.DX < 0:
			player.Direction.X = cfg.DirectionLeft
		}
		player.Moving = physics.DX != 0

		if player.Moving {
			anim.SetClip(factory.RunClip(player.Direction.X))
			anim.CurrentAnimation.Advance(now)
		} else {
			anim.CurrentAnimation.Hold(cfg.DiverStand[player.Direction.X])
		}

		jump := GetAction(input, cfg.ActionJump).Pressed
		physics.JumpRequested = jump && physics.Grounded()
		if !jump {
			physics.Rising = false
		}
	})
}
