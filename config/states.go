package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; draw order comes from renderer registration order.
const Default ecs.LayerID = 0

// GameState is the top-level state of the simulation loop
type GameState int

const (
	StateStartScreen GameState = iota
	StatePlaying
	StateGameOver
	StateTerminated
)

func (s GameState) String() string {
	switch s {
	case StateStartScreen:
		return "StartScreen"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateTerminated:
		return "Terminated"
	}
	return "Unknown"
}

// Outcome records why a dive ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCaught
	OutcomeGoal
	OutcomeOutOfBounds
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaught:
		return "caught"
	case OutcomeGoal:
		return "goal"
	case OutcomeOutOfBounds:
		return "out-of-bounds"
	}
	return "none"
}
