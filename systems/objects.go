package systems

import (
	"github.com/automoto/deepdiver/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved objects with the trigger space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
