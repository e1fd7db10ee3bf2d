package systems

import (
	"testing"

	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/automoto/deepdiver/systems/factory"
	"github.com/automoto/deepdiver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeKeyboard reports the keys in its set as held.
type fakeKeyboard map[ebiten.Key]bool

func (k fakeKeyboard) IsKeyPressed(key ebiten.Key) bool { return k[key] }

func (k fakeKeyboard) hold(keys ...ebiten.Key) {
	for key := range k {
		delete(k, key)
	}
	for _, key := range keys {
		k[key] = true
	}
}

// newTestScene wires the dive systems in scene order around a level built from rows.
func newTestScene(t *testing.T, rows []string, kb KeyboardState) *ecs.ECS {
	t.Helper()

	layout, err := leveldata.Build(rows, cfg.C.TileSize)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return newTestSceneFromLayout(layout, kb)
}

func newTestSceneFromLayout(layout *leveldata.Layout, kb KeyboardState) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateClock)
	e.AddSystem(NewUpdateInput(kb))
	e.AddSystem(WithGameplayChecks(UpdatePlayer))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))
	e.AddSystem(WithGameplayChecks(UpdateScroll))
	e.AddSystem(WithGameplayChecks(UpdateCollisions))
	e.AddSystem(WithGameplayChecks(UpdateEnemies))
	e.AddSystem(WithGameplayChecks(UpdateObjects))
	e.AddSystem(WithGameplayChecks(UpdateTriggers))

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.C.TileSize, cfg.C.TileSize)
	factory.CreateLevel(e, "test", layout, 0)
	return e
}

type diver struct {
	obj     *components.ObjectData
	physics *components.PhysicsData
	player  *components.PlayerData
	anim    *components.AnimationData
}

func getDiver(t *testing.T, e *ecs.ECS) diver {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatalf("no diver in scene")
	}
	return diver{
		obj:     components.Object.Get(entry),
		physics: components.Physics.Get(entry),
		player:  components.Player.Get(entry),
		anim:    components.Animation.Get(entry),
	}
}

// tileRects returns every tile rect of a tag, in creation order.
func tileRects(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []gamemath.Rect {
	var rects []gamemath.Rect
	tag.Each(e.World, func(entry *donburi.Entry) {
		rects = append(rects, gamemath.RectOf(components.Object.Get(entry).Object))
	})
	return rects
}
