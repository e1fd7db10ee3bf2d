package config

import (
	"image/color"
	"time"
)

// PhysicsConfig contains the per-tick physics constants (pixels and ticks)
type PhysicsConfig struct {
	Gravity          float64 // added to vertical speed every tick
	TerminalVelocity float64 // maximum downward speed
	JumpSpeed        float64 // vertical speed set when a jump starts (negative is up)
	Knockback        float64 // horizontal push applied when landing on a hazard tile
}

// PlayerConfig contains player movement and collision values
type PlayerConfig struct {
	Speed           float64
	CollisionWidth  int
	CollisionHeight int
}

// EnemyConfig contains the shark configuration
type EnemyConfig struct {
	Speed           float64
	StartDirection  float64
	CollisionWidth  int
	CollisionHeight int
}

// ScrollConfig describes the bands that trigger world scrolling
type ScrollConfig struct {
	Speed        float64 // tile displacement per tick while scrolling
	TopBand      float64 // player y at or above which rising scrolls the world down
	BottomMargin float64 // distance from the screen bottom at which falling scrolls the world up
}

// AnimationConfig contains animation timing
type AnimationConfig struct {
	FrameDelay time.Duration
}

// MenuConfig contains start screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	PromptY         float64
	HintY           float64
	Title           string
	Prompt          string
	Hint            string
	FadeSeconds     float32
	PulseSeconds    float32
	PulseMin        float32 // dimmest prompt alpha during the pulse
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	MessageY        float64
	PromptY         float64
	Titles          map[Outcome]string
	Messages        map[Outcome]string
	Prompt          string
	FadeSeconds     float32
}

// Config holds general game configuration
type Config struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	TileSize   int
	Background color.RGBA
	Level      string // manifest entry to play; empty selects the manifest start
	Debug      bool   // start dives with the collision overlay on
}

// TickDuration is the simulated time covered by one update.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Scroll ScrollConfig
var Animation AnimationConfig
var Menu MenuConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow    = color.RGBA{R: 214, G: 146, B: 0, A: 255}
	Green     = color.RGBA{R: 60, G: 92, B: 0, A: 255}
	Purple    = color.RGBA{R: 215, G: 135, B: 255, A: 255}
	Lime      = color.RGBA{R: 181, G: 230, B: 29, A: 255}
	Red       = color.RGBA{R: 221, G: 28, B: 1, A: 255}
	DeepWater = color.RGBA{R: 15, G: 55, B: 90, A: 255}
	Abyss     = color.RGBA{R: 5, G: 20, B: 40, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Title:      "Deep Diver",
		Width:      500,
		Height:     900,
		TPS:        60,
		TileSize:   25,
		Background: DeepWater,
	}

	Physics = PhysicsConfig{
		Gravity:          1,
		TerminalVelocity: 3,
		JumpSpeed:        -15,
		Knockback:        2,
	}

	// Collision box matches a single diver frame
	Player = PlayerConfig{
		Speed:           5,
		CollisionWidth:  14,
		CollisionHeight: 27,
	}

	Enemy = EnemyConfig{
		Speed:           2,
		StartDirection:  DirectionRight,
		CollisionWidth:  104,
		CollisionHeight: 34,
	}

	Scroll = ScrollConfig{
		Speed:        3,
		TopBand:      10,
		BottomMargin: 60,
	}

	Animation = AnimationConfig{
		FrameDelay: 100 * time.Millisecond,
	}

	Menu = MenuConfig{
		BackgroundColor: DeepWater,
		TitleColor:      Yellow,
		TextColor:       White,
		TitleY:          300,
		PromptY:         420,
		HintY:           860,
		Title:           "DEEP DIVER",
		Prompt:          "Press ENTER to dive",
		Hint:            "Arrows: Move   Up: Jump   Q: Quit",
		FadeSeconds:     0.6,
		PulseSeconds:    0.8,
		PulseMin:        0.35,
	}

	GameOver = GameOverConfig{
		BackgroundColor: Abyss,
		TitleColor:      Red,
		TextColor:       White,
		TitleY:          300,
		MessageY:        360,
		PromptY:         460,
		Titles: map[Outcome]string{
			OutcomeCaught:      "EATEN",
			OutcomeGoal:        "TREASURE FOUND",
			OutcomeOutOfBounds: "LOST",
		},
		Messages: map[Outcome]string{
			OutcomeCaught:      "The shark got you.",
			OutcomeGoal:        "You reached the bottom of the shaft.",
			OutcomeOutOfBounds: "You drifted out of sight.",
		},
		Prompt:      "Press ENTER to dive again",
		FadeSeconds: 0.6,
	}
}
