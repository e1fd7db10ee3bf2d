package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// TilesLayer is the Tiled layer read by LoadTMX.
const TilesLayer = "tiles"

// CodeProperty is the tileset tile property holding the level code.
const CodeProperty = "code"

// Manifest lists the levels bundled with the game.
type Manifest struct {
	Start  string       `yaml:"start"`
	Levels []LevelEntry `yaml:"levels"`
}

// LevelEntry describes one level either inline (Rows) or as a Tiled map (TMX).
type LevelEntry struct {
	Name     string   `yaml:"name"`
	TileSize int      `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
	TMX      string   `yaml:"tmx"`
}

// LoadManifest decodes the YAML manifest at manifestPath within fsys.
func LoadManifest(fsys fs.FS, manifestPath string) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", manifestPath, err)
	}
	if len(m.Levels) == 0 {
		return nil, fmt.Errorf("manifest %s: %w", manifestPath, ErrEmptyLevel)
	}
	if m.Start == "" {
		m.Start = m.Levels[0].Name
	}
	return &m, nil
}

// Find returns the entry with the given name.
func (m *Manifest) Find(name string) (*LevelEntry, error) {
	for i := range m.Levels {
		if m.Levels[i].Name == name {
			return &m.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
}

// LoadTMX reads a Tiled map and converts its tiles layer into code rows.
// Each tileset tile carries its level code in a "code" property; empty cells become '0'.
func LoadTMX(fsys fs.FS, tmxPath string) ([]string, int, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, 0, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TilesLayer {
			continue
		}

		rows := make([]string, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			row := make([]byte, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				row[x] = EmptyCode
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					continue
				}
				if code := tilesetTile.Properties.GetString(CodeProperty); code != "" {
					row[x] = code[0]
				}
			}
			rows[y] = string(row)
		}
		return rows, levelMap.TileWidth, nil
	}

	return nil, 0, fmt.Errorf("TMX %s has no %q layer: %w", tmxPath, TilesLayer, ErrEmptyLevel)
}

// LoadLevel resolves a manifest entry into a Layout. TMX paths are relative to the manifest.
func LoadLevel(fsys fs.FS, manifestPath, name string) (*Layout, error) {
	m, err := LoadManifest(fsys, manifestPath)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = m.Start
	}
	entry, err := m.Find(name)
	if err != nil {
		return nil, err
	}

	rows, tileSize := entry.Rows, entry.TileSize
	if entry.TMX != "" {
		tmxRows, tmxSize, err := LoadTMX(fsys, path.Join(path.Dir(manifestPath), entry.TMX))
		if err != nil {
			return nil, err
		}
		rows = tmxRows
		if tileSize == 0 {
			tileSize = tmxSize
		}
	}

	layout, err := Build(rows, tileSize)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return layout, nil
}
