package factory

import (
	"time"

	"github.com/automoto/deepdiver/archetypes"
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/automoto/deepdiver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tileSprites = map[leveldata.TileKind]cfg.SpriteID{
	leveldata.SolidEndCapA:   cfg.SpriteRockEndCapA,
	leveldata.SolidSegmentA:  cfg.SpriteRockSegmentA,
	leveldata.SolidSegmentB:  cfg.SpriteRockSegmentB,
	leveldata.SolidEndCapB:   cfg.SpriteRockEndCapB,
	leveldata.HazardEndCapA:  cfg.SpriteHazardEndCapA,
	leveldata.HazardSegmentA: cfg.SpriteHazardSegmentA,
	leveldata.HazardSegmentB: cfg.SpriteHazardSegmentB,
	leveldata.HazardEndCapB:  cfg.SpriteHazardEndCapB,
}

// TileSprite returns the sheet frame drawn for a tile kind.
func TileSprite(kind leveldata.TileKind) cfg.SpriteID {
	return tileSprites[kind]
}

// CreateLevel spawns every tile, marker and actor of layout into the scene and
// returns the TileGrid entry indexing the tiles.
func CreateLevel(ecs *ecs.ECS, name string, layout *leveldata.Layout, now time.Duration) *donburi.Entry {
	level := archetypes.TileGrid.Spawn(ecs)
	grid := components.NewTileGrid(name, layout.Rows, layout.Cols, layout.TileSize)
	components.TileGrid.Set(level, grid)

	for _, spec := range layout.Solids {
		CreateTile(ecs, grid, spec, layout.TileSize)
	}
	for _, spec := range layout.Hazards {
		CreateTile(ecs, grid, spec, layout.TileSize)
	}
	for _, g := range layout.Goals {
		CreateGoal(ecs, g.X, g.Y, layout.TileSize)
	}
	for _, e := range layout.Enemies {
		CreateEnemy(ecs, e.X, e.Y, now)
	}
	CreatePlayer(ecs, layout.Player.X, layout.Player.Y, now)

	return level
}

// CreateTile spawns a solid or hazard tile and indexes it in grid.
func CreateTile(ecs *ecs.ECS, grid *components.TileGridData, spec leveldata.TileSpec, size float64) *donburi.Entry {
	arch, resolvTag := archetypes.SolidTile, tags.ResolvSolid
	if spec.Kind.IsHazard() {
		arch, resolvTag = archetypes.HazardTile, tags.ResolvHazard
	}
	tile := arch.Spawn(ecs)

	obj := resolv.NewObject(spec.X, spec.Y, size, size, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = tile

	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	components.Tile.SetValue(tile, components.TileData{Kind: spec.Kind, Row: spec.Row, Col: spec.Col})
	components.Sprite.SetValue(tile, components.SpriteData{Frame: TileSprite(spec.Kind)})

	grid.Put(spec.Row, spec.Col, spec.Kind, obj)

	return tile
}
