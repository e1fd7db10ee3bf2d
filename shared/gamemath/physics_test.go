package gamemath

import "testing"

func TestApplyGravity(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"rest", 0, 1},
		{"below_terminal", 1, 2},
		{"reaches_terminal", 2, 3},
		{"clamped", 3, 3},
		{"after_jump", -15, -14},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ApplyGravity(c.in, 1, 3); got != c.want {
				t.Fatalf("ApplyGravity(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestApplyGravityNeverExceedsTerminal(t *testing.T) {
	v := -15.0
	for i := 0; i < 100; i++ {
		v = ApplyGravity(v, 1, 3)
		if v > 3 {
			t.Fatalf("tick %d: velocity %v exceeds terminal", i, v)
		}
	}
}

func TestHorizontalDelta(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -5},
		{"right", false, true, 5},
		{"both", true, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HorizontalDelta(c.left, c.right, 5); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestVerticalFlags(t *testing.T) {
	if r, f := VerticalFlags(-1); !r || f {
		t.Fatalf("negative velocity should be rising")
	}
	if r, f := VerticalFlags(0); r || !f {
		t.Fatalf("zero velocity should be falling")
	}
	if r, f := VerticalFlags(3); r || !f {
		t.Fatalf("positive velocity should be falling")
	}
}

func TestKnockback(t *testing.T) {
	if got := Knockback(1, 2); got != -2 {
		t.Fatalf("facing right knockback = %v, want -2", got)
	}
	if got := Knockback(-1, 2); got != 2 {
		t.Fatalf("facing left knockback = %v, want 2", got)
	}
}

func TestScrollVelocity(t *testing.T) {
	const screenH = 900.0
	cases := []struct {
		name            string
		y               float64
		rising, falling bool
		want            float64
	}{
		{"top_band_rising", 10, true, false, 3},
		{"top_band_falling", 5, false, true, 0},
		{"below_top_band", 11, true, false, 0},
		{"bottom_band_falling", screenH - 60, false, true, -3},
		{"bottom_band_rising", screenH - 10, true, false, 0},
		{"above_bottom_band", screenH - 61, false, true, 0},
		{"middle", 400, false, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ScrollVelocity(c.y, c.rising, c.falling, 10, screenH-60, 3)
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}
