package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.Get(entry).Enabled = cfg.C.Debug
	}
	return components.Debug.Get(entry)
}

// UpdateDebug flips the overlay on the debug key.
func UpdateDebug(ecs *ecs.ECS) {
	debug := getOrCreateDebug(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines everything in the trigger space plus the tiles the
// resolver considered for the diver this tick.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !getOrCreateDebug(ecs).Enabled {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := colornames.Cyan
			if obj.HasTags(tags.ResolvPlayer) {
				c = colornames.Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = colornames.Red
			}
			strokeRect(screen, gamemath.RectOf(obj), c)
		}
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(player)

	if gridEntry, ok := components.TileGrid.First(ecs.World); ok {
		rect := gamemath.RectOf(components.Object.Get(player).Object)
		solids, hazards := gatherCandidates(components.TileGrid.Get(gridEntry), rect, physics.DX, physics.DY)
		for _, r := range append(solids, hazards...) {
			strokeRect(screen, r, colornames.Yellow)
		}
	}

	clock := getOrCreateClock(ecs)
	msg := fmt.Sprintf("TPS %0.1f  tick %d\nvy %v  scroll %v\nrising %v  falling %v",
		ebiten.ActualTPS(), clock.Ticks, physics.VelocityY, ScrollVelocity(ecs), physics.Rising, physics.Falling)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}
