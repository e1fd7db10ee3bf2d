package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game: start screen, dive, or game over.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	State() cfg.GameState
}

// Device is the keyboard and window the game is driven by.
type Device interface {
	systems.KeyboardState
	systems.WindowState
}

// Game drives the current scene at a fixed tick rate and owns the quit handling.
type Game struct {
	resources  *Resources
	device     Device
	scene      Scene
	input      components.InputData
	terminated bool
}

func NewGame(res *Resources, device Device) *Game {
	g := &Game{resources: res, device: device}
	if res.Keyboard == nil {
		res.Keyboard = device
	}
	g.scene = NewMenuScene(g, res)
	return g
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	next := scene.(Scene)
	log.Printf("state %s -> %s", g.State(), next.State())
	g.scene = next
}

// State is the state of the simulation loop.
func (g *Game) State() cfg.GameState {
	if g.terminated {
		return cfg.StateTerminated
	}
	return g.scene.State()
}

func (g *Game) Update() error {
	if g.terminated {
		return ebiten.Termination
	}

	systems.PollInput(g.device, &g.input)
	if g.device.IsWindowBeingClosed() || systems.GetAction(&g.input, cfg.ActionQuit).JustPressed {
		log.Printf("state %s -> %s", g.scene.State(), cfg.StateTerminated)
		g.terminated = true
		return ebiten.Termination
	}

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.terminated {
		return
	}
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
