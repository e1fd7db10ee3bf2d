package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateState(ecs *ecs.ECS) *components.StateData {
	entry, ok := components.State.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.State))
	}
	return components.State.Get(entry)
}

// Outcome reports how the dive ended, OutcomeNone while it is still running.
func Outcome(ecs *ecs.ECS) cfg.Outcome {
	return getOrCreateState(ecs).Outcome
}

// WithGameplayChecks wraps a system so it stops running once the dive has an outcome.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if Outcome(ecs) != cfg.OutcomeNone {
			return
		}
		system(ecs)
	}
}
