package systems

import (
	"image/color"

	"github.com/automoto/deepdiver/assets"
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Placeholder colors used when a sprite is missing
var (
	solidColor  = color.RGBA{R: 95, G: 80, B: 65, A: 255}
	hazardColor = color.RGBA{R: 170, G: 70, B: 55, A: 255}
	diverColor  = cfg.Yellow
	sharkColor  = color.RGBA{R: 120, G: 135, B: 150, A: 255}
)

// DrawBackground fills the screen with open water.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.C.Background, false)
}

func onScreen(o *components.ObjectData, screen *ebiten.Image) bool {
	b := screen.Bounds()
	return o.X+o.W >= 0 && o.X <= float64(b.Dx()) && o.Y+o.H >= 0 && o.Y <= float64(b.Dy())
}

// NewDrawTiles renders every solid and hazard tile, scaling sheet frames to the tile size.
func NewDrawTiles(sprites *assets.Sprites) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		components.Tile.Each(ecs.World, func(e *donburi.Entry) {
			o := components.Object.Get(e)
			if !onScreen(o, screen) {
				return
			}

			img := sprites.Frame(components.Sprite.Get(e).Frame)
			if img == nil {
				c := solidColor
				if components.Tile.Get(e).Kind.IsHazard() {
					c = hazardColor
				}
				vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
				return
			}

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			b := img.Bounds()
			drawOp.GeoM.Scale(o.W/float64(b.Dx()), o.H/float64(b.Dy()))
			drawOp.GeoM.Translate(o.X, o.Y)
			screen.DrawImage(img, drawOp)
		})
	}
}

// NewDrawAnimated renders the diver and sharks at their current animation frame,
// anchored at the object's top-left corner.
func NewDrawAnimated(sprites *assets.Sprites) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		components.Animation.Each(ecs.World, func(e *donburi.Entry) {
			o := components.Object.Get(e)
			if !onScreen(o, screen) {
				return
			}

			img := sprites.Frame(components.Animation.Get(e).Frame())
			if img == nil {
				c := sharkColor
				if e.HasComponent(components.Player) {
					c = diverColor
				}
				vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
				return
			}

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(o.X, o.Y)
			screen.DrawImage(img, drawOp)
		})
	}
}
