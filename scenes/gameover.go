package scenes

import (
	"sync"

	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene reports how the dive ended and offers another one
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	resources    *Resources
	outcome      cfg.Outcome
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, res *Resources, outcome cfg.Outcome) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, resources: res, outcome: outcome}
}

func (gs *GameOverScene) State() cfg.GameState {
	return cfg.StateGameOver
}

func (gs *GameOverScene) Outcome() cfg.Outcome {
	return gs.outcome
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.GetOrCreateGameOver(gs.ecs).Outcome = gs.outcome

	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(gs.sceneChanger, gs.resources)
	}

	gs.ecs.AddSystem(systems.NewUpdateInput(gs.resources.Keyboard))
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createPlatformerScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
