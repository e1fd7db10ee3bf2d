package systems

import (
	"image/color"

	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GetOrCreateScreen returns the singleton Screen component, creating if needed.
// A zero pulseSeconds disables the prompt pulse.
func GetOrCreateScreen(e *ecs.ECS, fadeSeconds, pulseSeconds float32) *components.ScreenData {
	if _, ok := components.Screen.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Screen))
		data := components.ScreenData{
			Fade: gween.New(0, 1, fadeSeconds, ease.OutQuad),
			Glow: 1,
		}
		if pulseSeconds > 0 {
			data.Pulse = gween.New(1, cfg.Menu.PulseMin, pulseSeconds, ease.InOutSine)
		}
		components.Screen.SetValue(ent, data)
	}

	ent, _ := components.Screen.First(e.World)
	return components.Screen.Get(ent)
}

// updateScreen advances the fade-in and bounces the pulse between PulseMin and 1.
func updateScreen(s *components.ScreenData, dt float32) {
	s.Alpha, _ = s.Fade.Update(dt)

	if s.Pulse == nil {
		return
	}
	var done bool
	s.Glow, done = s.Pulse.Update(dt)
	if done {
		s.PulseRising = !s.PulseRising
		from, to := float32(1), cfg.Menu.PulseMin
		if s.PulseRising {
			from, to = to, from
		}
		s.Pulse = gween.New(from, to, cfg.Menu.PulseSeconds, ease.InOutSine)
	}
}

func tickSeconds() float32 {
	return float32(cfg.C.TickDuration().Seconds())
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y float64, c color.RGBA, alpha float32) {
	width := font.MeasureString(face, s).Round()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, s, face, x, int(y), fade(c, alpha))
}

func fade(c color.RGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * alpha)}
}
