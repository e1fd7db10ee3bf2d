package systems

import (
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeyboardState reports which keys are currently held.
type KeyboardState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// WindowState reports a pending window close.
type WindowState interface {
	IsWindowBeingClosed() bool
}

// EbitenDevice reads the live ebiten keyboard and window.
type EbitenDevice struct{}

func (EbitenDevice) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (EbitenDevice) IsWindowBeingClosed() bool        { return ebiten.IsWindowBeingClosed() }

// PollInput swaps the input buffers and samples every bound key.
// The first poll copies Current into Previous so keys already held are not reported as JustPressed.
func PollInput(kb KeyboardState, input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if kb.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}
}

// NewUpdateInput creates the system that polls kb into the scene's Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func NewUpdateInput(kb KeyboardState) ecs.System {
	return func(ecs *ecs.ECS) {
		PollInput(kb, getOrCreateInput(ecs))
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
