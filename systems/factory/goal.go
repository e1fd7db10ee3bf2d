package factory

import (
	"github.com/automoto/deepdiver/archetypes"
	"github.com/automoto/deepdiver/components"
	"github.com/automoto/deepdiver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal creates a goal marker covering one grid cell
func CreateGoal(ecs *ecs.ECS, x, y, size float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	return goal
}
