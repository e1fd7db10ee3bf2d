package systems

import (
	"log"

	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		screen := GetOrCreateScreen(e, cfg.Menu.FadeSeconds, cfg.Menu.PulseSeconds)
		updateScreen(screen, tickSeconds())

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			log.Printf("starting dive")
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// DrawMenu renders the start screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateScreen(e, cfg.Menu.FadeSeconds, cfg.Menu.PulseSeconds)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), cfg.Menu.TitleY, cfg.Menu.TitleColor, s.Alpha)
	drawCentered(screen, cfg.Menu.Prompt, fonts.Body.Get(), cfg.Menu.PromptY, cfg.Menu.TextColor, s.Alpha*s.Glow)
	drawCentered(screen, cfg.Menu.Hint, fonts.Small.Get(), cfg.Menu.HintY, cfg.Menu.TextColor, s.Alpha)
}
