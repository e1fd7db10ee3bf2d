package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/systems"
	"github.com/automoto/deepdiver/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one dive through the level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	resources    *Resources
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, res *Resources) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, resources: res}
}

func (ps *PlatformerScene) State() cfg.GameState {
	return cfg.StatePlaying
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if outcome := systems.Outcome(ps.ecs); outcome != cfg.OutcomeNone {
		log.Printf("dive ended: %s", outcome)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.resources, outcome))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.NewUpdateInput(ps.resources.Keyboard))
	ecs.AddSystem(systems.UpdateDebug)

	// Order matters: the step is computed, scrolled, then resolved against the moved tiles.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateScroll))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.NewDrawTiles(ps.resources.Sprites))
	ecs.AddRenderer(cfg.Default, systems.NewDrawAnimated(ps.resources.Sprites))
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	// The trigger space covers the screen and holds the diver, sharks and goal markers.
	factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, cfg.C.TileSize, cfg.C.TileSize)
	factory.CreateLevel(ps.ecs, ps.resources.LevelName, ps.resources.Layout, 0)
}
