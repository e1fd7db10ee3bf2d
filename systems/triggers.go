package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers ends the dive when the diver touches a shark, reaches a goal marker,
// or leaves the screen vertically. Must run after UpdateObjects so space cells are current.
func UpdateTriggers(ecs *ecs.ECS) {
	state := getOrCreateState(ecs)
	if state.Outcome != cfg.OutcomeNone {
		return
	}

	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry).Object

	outcome := checkTriggers(obj)
	if outcome == cfg.OutcomeNone {
		return
	}
	state.Outcome = outcome
	state.Tick = getOrCreateClock(ecs).Ticks
}

func checkTriggers(obj *resolv.Object) cfg.Outcome {
	if obj.Y >= float64(cfg.C.Height) || obj.Y+obj.H <= 0 {
		return cfg.OutcomeOutOfBounds
	}

	if obj.Space == nil {
		return cfg.OutcomeNone
	}
	check := obj.Check(0, 0, tags.ResolvEnemy, tags.ResolvGoal)
	if check == nil {
		return cfg.OutcomeNone
	}
	// Cells are coarse; confirm real overlap before ending the dive.
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		if gamemath.ObjectsOverlap(obj, o) {
			return cfg.OutcomeCaught
		}
	}
	for _, o := range check.ObjectsByTags(tags.ResolvGoal) {
		if gamemath.ObjectsOverlap(obj, o) {
			return cfg.OutcomeGoal
		}
	}
	return cfg.OutcomeNone
}
