package systems

import (
	"log"

	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		screen := GetOrCreateScreen(e, cfg.GameOver.FadeSeconds, cfg.Menu.PulseSeconds)
		updateScreen(screen, tickSeconds())

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			log.Printf("restarting dive")
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	s := GetOrCreateScreen(e, cfg.GameOver.FadeSeconds, cfg.Menu.PulseSeconds)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.GameOver.BackgroundColor, false)

	title := cfg.GameOver.Titles[gameOver.Outcome]
	drawCentered(screen, title, fonts.Title.Get(), cfg.GameOver.TitleY, cfg.GameOver.TitleColor, s.Alpha)
	drawCentered(screen, cfg.GameOver.Messages[gameOver.Outcome], fonts.Body.Get(), cfg.GameOver.MessageY, cfg.GameOver.TextColor, s.Alpha)
	drawCentered(screen, cfg.GameOver.Prompt, fonts.Body.Get(), cfg.GameOver.PromptY, cfg.GameOver.TextColor, s.Alpha*s.Glow)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
