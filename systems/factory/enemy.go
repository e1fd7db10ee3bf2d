package factory

import (
	"time"

	"github.com/automoto/deepdiver/archetypes"
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a shark with its top-left corner at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, now time.Duration) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := float64(cfg.Enemy.CollisionWidth), float64(cfg.Enemy.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	direction := cfg.Enemy.StartDirection
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: components.Vector{X: direction, Y: 0},
		Speed:     cfg.Enemy.Speed,
	})
	components.Animation.SetValue(enemy, newAnimationData(SwimClip(direction), now))

	addToSpace(ecs, obj)

	return enemy
}
