package systems

import (
	"testing"

	"github.com/automoto/deepdiver/assets"
	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func TestFirstTickFromSpawn(t *testing.T) {
	e := newTestScene(t, []string{
		"4000012",
		"0000001",
		"P000001",
	}, fakeKeyboard{})

	e.Update()

	d := getDiver(t, e)
	if d.physics.VelocityY != 1 {
		t.Fatalf("VelocityY = %v, want 1", d.physics.VelocityY)
	}
	if d.obj.X != 0 || d.obj.Y != 51 {
		t.Fatalf("diver at (%v,%v), want (0,51)", d.obj.X, d.obj.Y)
	}
	if got := len(tileRects(e, tags.Solid)); got != 5 {
		t.Fatalf("solid tiles = %d, want 5", got)
	}
}

// openRows has the diver spawn at (100,25) with two empty rows below it.
var openRows = []string{
	"0000000000",
	"0000P00000",
	"0000000000",
	"1111111111",
}

func TestHorizontalStep(t *testing.T) {
	tests := []struct {
		name      string
		keys      []ebiten.Key
		wantX     float64
		wantFace  float64
		wantMoved bool
	}{
		{"no keys", nil, 100, cfg.DirectionRight, false},
		{"left", []ebiten.Key{ebiten.KeyLeft}, 95, cfg.DirectionLeft, true},
		{"right", []ebiten.Key{ebiten.KeyRight}, 105, cfg.DirectionRight, true},
		{"both", []ebiten.Key{ebiten.KeyLeft, ebiten.KeyRight}, 100, cfg.DirectionRight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := fakeKeyboard{}
			kb.hold(tt.keys...)
			e := newTestScene(t, openRows, kb)

			e.Update()

			d := getDiver(t, e)
			if d.obj.X != tt.wantX {
				t.Errorf("X = %v, want %v", d.obj.X, tt.wantX)
			}
			if d.player.Direction.X != tt.wantFace {
				t.Errorf("facing = %v, want %v", d.player.Direction.X, tt.wantFace)
			}
			if d.player.Moving != tt.wantMoved {
				t.Errorf("Moving = %v, want %v", d.player.Moving, tt.wantMoved)
			}
		})
	}
}

func TestScreenEdgesStopTheDiver(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		key   ebiten.Key
		wantX float64
	}{
		{
			name:  "left edge",
			rows:  []string{"0P000", "00000", "11111"},
			key:   ebiten.KeyLeft,
			wantX: 0,
		},
		{
			name:  "right edge",
			rows:  []string{"0000000000000000000P0", "000000000000000000000", "111111111111111111111"},
			key:   ebiten.KeyRight,
			wantX: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := fakeKeyboard{}
			kb.hold(tt.key)
			e := newTestScene(t, tt.rows, kb)

			for i := 0; i < 10; i++ {
				e.Update()
			}
			if got := getDiver(t, e).obj.X; got != tt.wantX {
				t.Fatalf("X = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	rows := make([]string, 30)
	for i := range rows {
		rows[i] = "0000000000"
	}
	rows[0] = "P000000000"
	rows[29] = "1111111111"
	e := newTestScene(t, rows, fakeKeyboard{})

	for i := 0; i < 10; i++ {
		e.Update()
		if v := getDiver(t, e).physics.VelocityY; v > cfg.Physics.TerminalVelocity {
			t.Fatalf("tick %d: VelocityY %v exceeds terminal velocity", i, v)
		}
	}
	if v := getDiver(t, e).physics.VelocityY; v != cfg.Physics.TerminalVelocity {
		t.Fatalf("VelocityY = %v, want %v", v, cfg.Physics.TerminalVelocity)
	}
}

// groundedRows spawns the diver two pixels into the floor so the first tick lands it.
var groundedRows = []string{
	"0000000000",
	"0000P00000",
	"1111111111",
}

func TestLandingAndJump(t *testing.T) {
	kb := fakeKeyboard{}
	e := newTestScene(t, groundedRows, kb)

	e.Update()
	d := getDiver(t, e)
	if d.obj.Y != 23 || d.physics.VelocityY != 0 {
		t.Fatalf("after landing: y=%v vy=%v, want y=23 vy=0", d.obj.Y, d.physics.VelocityY)
	}
	if !d.physics.Grounded() {
		t.Fatalf("diver should be grounded after landing")
	}

	// Standing still keeps the diver on the floor.
	e.Update()
	if d.obj.Y != 23 || !d.physics.Grounded() {
		t.Fatalf("standing: y=%v grounded=%v", d.obj.Y, d.physics.Grounded())
	}

	kb.hold(ebiten.KeyUp)
	e.Update()
	if d.physics.VelocityY != cfg.Physics.JumpSpeed {
		t.Fatalf("VelocityY = %v, want %v", d.physics.VelocityY, cfg.Physics.JumpSpeed)
	}
	if d.obj.Y != 23+cfg.Physics.JumpSpeed {
		t.Fatalf("Y = %v, want %v", d.obj.Y, 23+cfg.Physics.JumpSpeed)
	}
	if !d.physics.Rising {
		t.Fatalf("diver should be rising")
	}

	// Holding jump mid-air does not jump again.
	e.Update()
	if d.physics.VelocityY != cfg.Physics.JumpSpeed+cfg.Physics.Gravity {
		t.Fatalf("VelocityY = %v, want %v", d.physics.VelocityY, cfg.Physics.JumpSpeed+cfg.Physics.Gravity)
	}
}

func TestCeilingStopsJump(t *testing.T) {
	kb := fakeKeyboard{}
	e := newTestScene(t, []string{
		"0000000000",
		"1111111111",
		"0000000000",
		"0000000000",
		"0000P00000",
		"1111111111",
	}, kb)

	e.Update() // lands at y=98
	kb.hold(ebiten.KeyUp)

	d := getDiver(t, e)
	for i := 0; i < 8; i++ {
		e.Update()
		if d.obj.Y < 50 {
			t.Fatalf("tick %d: diver passed through the ceiling, y=%v", i, d.obj.Y)
		}
	}
}

func TestNoOverlapAfterResolution(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"grounded", groundedRows},
		{"ledges", []string{
			"100000000001",
			"100001100001",
			"100000000001",
			"1P0000001001",
			"100420000101",
			"111111aa1111",
		}},
		{"pit", []string{
			"1000000001",
			"1000P00001",
			"1000000001",
			"1aaaaaaaa1",
		}},
	}

	script := [][]ebiten.Key{
		{ebiten.KeyRight},
		{ebiten.KeyRight, ebiten.KeyUp},
		{},
		{ebiten.KeyLeft},
		{ebiten.KeyLeft, ebiten.KeyUp},
		{ebiten.KeyUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := fakeKeyboard{}
			e := newTestScene(t, tt.rows, kb)

			e.Update() // spawn tick settles the diver out of the floor
			for tick := 0; tick < 600; tick++ {
				kb.hold(script[(tick/25)%len(script)]...)
				e.Update()
				if Outcome(e) != cfg.OutcomeNone {
					return
				}
				assertNoTileOverlap(t, e, tick)
			}
		})
	}
}

func TestShaftNeverOverlaps(t *testing.T) {
	layout, err := assets.LoadLevel("shaft")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	kb := fakeKeyboard{}
	e := newTestSceneFromLayout(layout, kb)

	script := [][]ebiten.Key{
		{ebiten.KeyRight},
		{ebiten.KeyRight, ebiten.KeyUp},
		{ebiten.KeyLeft, ebiten.KeyUp},
		{},
		{ebiten.KeyLeft},
	}
	e.Update()
	for tick := 0; tick < 1500; tick++ {
		kb.hold(script[(tick/40)%len(script)]...)
		e.Update()
		if Outcome(e) != cfg.OutcomeNone {
			return
		}
		assertNoTileOverlap(t, e, tick)
	}
}

func assertNoTileOverlap(t *testing.T, e *ecs.ECS, tick int) {
	t.Helper()
	body := gamemath.RectOf(getDiver(t, e).obj.Object)
	for _, r := range append(tileRects(e, tags.Solid), tileRects(e, tags.Hazard)...) {
		if body.Overlaps(r) {
			t.Fatalf("tick %d: diver %+v overlaps tile %+v", tick, body, r)
		}
	}
}
