package components

import (
	"github.com/automoto/deepdiver/assets/animations"
	"github.com/automoto/deepdiver/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentClip      config.ClipID
}

// SetClip switches to another clip. The frame index carries over so a diver
// turning around mid-run keeps its stride.
func (a *AnimationData) SetClip(clip config.ClipID) {
	if a.CurrentClip == clip && a.CurrentAnimation != nil {
		return
	}
	a.CurrentClip = clip
	if a.CurrentAnimation == nil {
		a.CurrentAnimation = animations.NewAnimation(config.Clips[clip], config.Animation.FrameDelay, 0)
		return
	}
	a.CurrentAnimation.SetFrames(config.Clips[clip])
}

// Frame is the sprite to draw this tick.
func (a *AnimationData) Frame() config.SpriteID {
	if a.CurrentAnimation == nil {
		return config.SpriteNone
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
