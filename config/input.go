package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionConfirm
	ActionQuit
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionConfirm:   {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionQuit:      {Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
			ActionDebug:     {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
