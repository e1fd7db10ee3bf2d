package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances scene time by one tick. Animations read it instead of the wall clock.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.Ticks++
	clock.Now += cfg.C.TickDuration()
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
