package gamemath

// ApplyGravity adds gravity to a vertical velocity and clamps it to the downward terminal value.
// Upward velocity is never clamped.
func ApplyGravity(velocityY, gravity, terminal float64) float64 {
	velocityY += gravity
	if velocityY > terminal {
		return terminal
	}
	return velocityY
}

// HorizontalDelta returns the per-tick x displacement for the held direction keys.
// Holding both or neither yields 0.
func HorizontalDelta(left, right bool, speed float64) float64 {
	switch {
	case left && !right:
		return -speed
	case right && !left:
		return speed
	}
	return 0
}

// VerticalFlags derives rising/falling from the sign of the vertical velocity.
func VerticalFlags(velocityY float64) (rising, falling bool) {
	if velocityY < 0 {
		return true, false
	}
	return false, true
}

// Knockback pushes opposite the facing direction (-1 left, 1 right).
func Knockback(facingX, amount float64) float64 {
	if facingX > 0 {
		return -amount
	}
	return amount
}

// ScrollVelocity returns the world scroll for the player's screen position.
// Rising inside the top band scrolls the world down; falling inside the bottom margin scrolls it up.
func ScrollVelocity(y float64, rising, falling bool, topBand, bottomEdge, speed float64) float64 {
	if y <= topBand && rising {
		return speed
	}
	if y >= bottomEdge && falling {
		return -speed
	}
	return 0
}
