package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// ManifestPath locates the level manifest inside LevelFS.
const ManifestPath = "levels/levels.yaml"

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return levelFS
}

// LoadLevel builds the named level from the embedded manifest. An empty name loads the start level.
func LoadLevel(name string) (*leveldata.Layout, error) {
	layout, err := leveldata.LoadLevel(levelFS, ManifestPath, name)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	log.Printf("loaded level %q: %dx%d, %d solids, %d hazards, %d sharks",
		name, layout.Cols, layout.Rows, len(layout.Solids), len(layout.Hazards), len(layout.Enemies))
	return layout, nil
}

// Sprites holds every frame cut from the sprite sheets.
type Sprites struct {
	sheets map[string]*ebiten.Image
	frames map[config.SpriteID]*ebiten.Image
}

// Frame returns the image for a sprite, or nil if it was never loaded.
func (s *Sprites) Frame(id config.SpriteID) *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.frames[id]
}

// LoadSprites decodes each sheet once and slices the frames listed in config.Sprites.
func LoadSprites() (*Sprites, error) {
	s := &Sprites{
		sheets: make(map[string]*ebiten.Image),
		frames: make(map[config.SpriteID]*ebiten.Image, len(config.Sprites)),
	}

	for id, def := range config.Sprites {
		sheet, ok := s.sheets[def.Sheet]
		if !ok {
			img, err := decodeSheet(def.Sheet)
			if err != nil {
				return nil, err
			}
			sheet = ebiten.NewImageFromImage(img)
			s.sheets[def.Sheet] = sheet
		}
		if !def.Rect.In(sheet.Bounds()) {
			return nil, fmt.Errorf("sprite %d: rect %v outside sheet %s %v", id, def.Rect, def.Sheet, sheet.Bounds())
		}
		s.frames[id] = sheet.SubImage(def.Rect).(*ebiten.Image)
	}

	return s, nil
}

func decodeSheet(name string) (image.Image, error) {
	p := path.Join("images", name)
	raw, err := imageFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", p, err)
	}
	return img, nil
}
