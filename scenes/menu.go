package scenes

import (
	"sync"

	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the start screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	resources    *Resources
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, res *Resources) *MenuScene {
	return &MenuScene{sceneChanger: sc, resources: res}
}

func (ms *MenuScene) State() cfg.GameState {
	return cfg.StateStartScreen
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(ms.sceneChanger, ms.resources)
	}

	ms.ecs.AddSystem(systems.NewUpdateInput(ms.resources.Keyboard))
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createPlatformerScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
