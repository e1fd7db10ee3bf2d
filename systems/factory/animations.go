package factory

import (
	"time"

	"github.com/automoto/deepdiver/assets/animations"
	"github.com/automoto/deepdiver/components"
	cfg "github.com/automoto/deepdiver/config"
)

// newAnimationData starts clip at the scene time now.
func newAnimationData(clip cfg.ClipID, now time.Duration) components.AnimationData {
	return components.AnimationData{
		CurrentAnimation: animations.NewAnimation(cfg.Clips[clip], cfg.Animation.FrameDelay, now),
		CurrentClip:      clip,
	}
}

// RunClip is the diver run cycle for a facing.
func RunClip(directionX float64) cfg.ClipID {
	if directionX < 0 {
		return cfg.ClipDiverRunLeft
	}
	return cfg.ClipDiverRunRight
}

// SwimClip is the shark cycle for a heading.
func SwimClip(directionX float64) cfg.ClipID {
	if directionX < 0 {
		return cfg.ClipSharkLeft
	}
	return cfg.ClipSharkRight
}
