package archetypes

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
	)
	SolidTile = newArchetype(
		tags.Solid,
		components.Tile,
		components.Object,
		components.Sprite,
	)
	HazardTile = newArchetype(
		tags.Hazard,
		components.Tile,
		components.Object,
		components.Sprite,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
	)
	TileGrid = newArchetype(
		components.TileGrid,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
