package main

import (
	"log"

	"github.com/automoto/deepdiver/assets"
	"github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/fonts"
	"github.com/automoto/deepdiver/scenes"
	"github.com/automoto/deepdiver/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	sprites, err := assets.LoadSprites()
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	layout, err := assets.LoadLevel(config.C.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	res := &scenes.Resources{
		Sprites:   sprites,
		LevelName: config.C.Level,
		Layout:    layout,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(scenes.NewGame(res, systems.EbitenDevice{})); err != nil {
		log.Fatal(err)
	}
}
