package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/systems/factory"
	"github.com/automoto/deepdiver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies swims each shark horizontally and turns it around at the screen edges.
// Sharks ignore gravity and tiles.
func UpdateEnemies(ecs *ecs.ECS) {
	now := getOrCreateClock(ecs).Now
	width := float64(cfg.C.Width)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		anim := components.Animation.Get(e)

		obj.X += enemy.Direction.X * enemy.Speed

		if obj.X <= 0 && enemy.Direction.X < 0 {
			obj.X = 0
			enemy.Direction.X = cfg.DirectionRight
		} else if obj.X+obj.W >= width && enemy.Direction.X > 0 {
			obj.X = width - obj.W
			enemy.Direction.X = cfg.DirectionLeft
		}

		anim.SetClip(factory.SwimClip(enemy.Direction.X))
		anim.CurrentAnimation.Advance(now)
	})
}
