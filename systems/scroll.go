package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll keeps the diver inside the screen bands by moving the world instead.
// While scrolling, the diver's own vertical step is suppressed.
func UpdateScroll(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	bottomEdge := float64(cfg.C.Height) - cfg.Scroll.BottomMargin
	v := gamemath.ScrollVelocity(obj.Y, physics.Rising, physics.Falling, cfg.Scroll.TopBand, bottomEdge, cfg.Scroll.Speed)
	if v != 0 {
		physics.DY = 0
	}

	ApplyScroll(ecs.World, v)
}

// ApplyScroll moves every tile, shark and goal marker vertically by v and records it.
func ApplyScroll(w donburi.World, v float64) {
	scroll := getOrCreateScroll(w)
	scroll.Velocity = v
	if v == 0 {
		return
	}

	shift := func(e *donburi.Entry) {
		components.Object.Get(e).Y += v
	}
	tags.Solid.Each(w, shift)
	tags.Hazard.Each(w, shift)
	tags.Enemy.Each(w, shift)
	tags.Goal.Each(w, shift)

	if entry, ok := components.TileGrid.First(w); ok {
		components.TileGrid.Get(entry).Offset += v
	}
}

func getOrCreateScroll(w donburi.World) *components.ScrollData {
	entry, ok := components.Scroll.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Scroll))
	}
	return components.Scroll.Get(entry)
}

// ScrollVelocity returns the scroll applied on the last tick.
func ScrollVelocity(ecs *ecs.ECS) float64 {
	return getOrCreateScroll(ecs.World).Velocity
}
