package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// broadPhaseMargin is how many extra grid cells around the swept rect are tested.
const broadPhaseMargin = 1

// Candidate buffers reused across ticks to avoid allocations
var (
	solidCandidates  []*resolv.Object
	hazardCandidates []*resolv.Object
	solidRects       []gamemath.Rect
	hazardRects      []gamemath.Rect
)

// UpdateCollisions resolves the diver's pending step against nearby tiles and commits it.
func UpdateCollisions(ecs *ecs.ECS) {
	gridEntry, ok := components.TileGrid.First(ecs.World)
	if !ok {
		return
	}
	grid := components.TileGrid.Get(gridEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		rect := gamemath.RectOf(obj.Object)
		dx, dy := clampToScreen(rect, physics.DX), physics.DY

		solids, hazards := gatherCandidates(grid, rect, dx, dy)
		dx, dy = ResolveStep(rect, dx, dy, player.Direction.X, physics, solids, hazards)

		physics.DX, physics.DY = dx, dy
		obj.X += dx
		obj.Y += dy
	})
}

// clampToScreen stops horizontal motion at the left and right screen edges.
func clampToScreen(rect gamemath.Rect, dx float64) float64 {
	if rect.X <= 0 && dx < 0 {
		return 0
	}
	if rect.X >= float64(cfg.C.Width)-1 && dx > 0 {
		return 0
	}
	return dx
}

func gatherCandidates(grid *components.TileGridData, rect gamemath.Rect, dx, dy float64) ([]gamemath.Rect, []gamemath.Rect) {
	reach := cfg.Physics.Knockback
	swept := gamemath.Rect{
		X: rect.X - abs(dx) - reach,
		Y: rect.Y - abs(dy),
		W: rect.W + 2*(abs(dx)+reach),
		H: rect.H + 2*abs(dy),
	}
	solidCandidates, hazardCandidates = grid.Candidates(swept, broadPhaseMargin, solidCandidates[:0], hazardCandidates[:0])

	solidRects, hazardRects = solidRects[:0], hazardRects[:0]
	for _, o := range solidCandidates {
		solidRects = append(solidRects, gamemath.RectOf(o))
	}
	for _, o := range hazardCandidates {
		hazardRects = append(hazardRects, gamemath.RectOf(o))
	}
	return solidRects, hazardRects
}

// ResolveStep corrects a pending (dx, dy) against solid tiles and then hazard tiles, in the
// order given. Each tile is tested on the horizontal axis, the vertical axis, and finally
// diagonally. A landing on a hazard pushes the entity Knockback pixels away from facingX
// unless the push would bury it in a tile.
func ResolveStep(rect gamemath.Rect, dx, dy, facingX float64, physics *components.PhysicsData, solids, hazards []gamemath.Rect) (float64, float64) {
	for _, tile := range solids {
		dx, dy, _ = resolveTile(rect, tile, dx, dy, physics)
	}

	for _, tile := range hazards {
		var landed bool
		dx, dy, landed = resolveTile(rect, tile, dx, dy, physics)
		if landed {
			knocked := dx + gamemath.Knockback(facingX, cfg.Physics.Knockback)
			target := rect.Shift(knocked, dy)
			if !overlapsAny(target, solids) && !overlapsAny(target, hazards) {
				dx = knocked
			}
		}
	}

	return settle(rect, dx, dy, solids, hazards)
}

// resolveTile applies the three per-tile tests. landed reports a floor contact.
func resolveTile(rect, tile gamemath.Rect, dx, dy float64, physics *components.PhysicsData) (float64, float64, bool) {
	landed := false

	if rect.Shift(dx, 0).Overlaps(tile) {
		dx = 0
	}

	if rect.Shift(0, dy).Overlaps(tile) {
		// dy == 0 while rising happens when a scrolling ceiling moves into the diver
		if dy < 0 || (dy == 0 && physics.Rising) {
			dy = tile.Bottom() - rect.Y
			physics.VelocityY = 0
			physics.Rising = false
		} else if physics.Falling {
			dy = tile.Y - rect.Bottom()
			physics.VelocityY = 0
			physics.Falling = false
			landed = true
		}
	}

	if rect.Shift(dx, dy).Overlaps(tile) {
		dx = 0
	}

	return dx, dy, landed
}

// settle guarantees the committed rect overlaps no tile when a later tile's correction
// undid an earlier one. It gives up the horizontal step first, then the vertical one.
func settle(rect gamemath.Rect, dx, dy float64, solids, hazards []gamemath.Rect) (float64, float64) {
	blocked := func(x, y float64) bool {
		r := rect.Shift(x, y)
		return overlapsAny(r, solids) || overlapsAny(r, hazards)
	}
	switch {
	case !blocked(dx, dy):
		return dx, dy
	case !blocked(0, dy):
		return 0, dy
	case !blocked(dx, 0):
		return dx, 0
	}
	return 0, 0
}

func overlapsAny(r gamemath.Rect, tiles []gamemath.Rect) bool {
	for _, t := range tiles {
		if r.Overlaps(t) {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
