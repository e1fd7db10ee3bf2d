package systems

import (
	"testing"

	cfg "github.com/automoto/deepdiver/config"
	"github.com/automoto/deepdiver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

func TestDiveOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		keys     []ebiten.Key
		maxTicks int
		want     cfg.Outcome
	}{
		{
			name: "shark contact",
			rows: []string{
				"e000000000",
				"0P00000000",
				"1111111111",
			},
			maxTicks: 1,
			want:     cfg.OutcomeCaught,
		},
		{
			name: "goal marker",
			rows: []string{
				"0P000",
				"000D0",
				"11111",
			},
			keys:     []ebiten.Key{ebiten.KeyRight},
			maxTicks: 20,
			want:     cfg.OutcomeGoal,
		},
		{
			name: "quiet level",
			rows: []string{
				"0P000",
				"00000",
				"11111",
			},
			maxTicks: 20,
			want:     cfg.OutcomeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := fakeKeyboard{}
			kb.hold(tt.keys...)
			e := newTestScene(t, tt.rows, kb)

			for i := 0; i < tt.maxTicks && Outcome(e) == cfg.OutcomeNone; i++ {
				e.Update()
			}
			if got := Outcome(e); got != tt.want {
				t.Fatalf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutcomeFreezesTheDive(t *testing.T) {
	kb := fakeKeyboard{}
	kb.hold(ebiten.KeyRight)
	e := newTestScene(t, []string{
		"e000000000",
		"0P00000000",
		"1111111111",
	}, kb)

	e.Update()
	if Outcome(e) != cfg.OutcomeCaught {
		t.Fatalf("expected the shark to catch the diver")
	}
	if tick := getOrCreateState(e).Tick; tick != 1 {
		t.Fatalf("outcome tick = %d, want 1", tick)
	}

	d := getDiver(t, e)
	x, y := d.obj.X, d.obj.Y
	for i := 0; i < 5; i++ {
		e.Update()
	}
	if d.obj.X != x || d.obj.Y != y {
		t.Fatalf("diver kept moving after the dive ended")
	}
}

func TestCheckTriggers(t *testing.T) {
	newSpace := func(objs ...*resolv.Object) {
		space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cfg.C.TileSize, cfg.C.TileSize)
		for _, o := range objs {
			space.Add(o)
		}
	}

	tests := []struct {
		name   string
		diver  *resolv.Object
		others []*resolv.Object
		want   cfg.Outcome
	}{
		{
			name:  "below the screen",
			diver: resolv.NewObject(100, float64(cfg.C.Height), 14, 27, tags.ResolvPlayer),
			want:  cfg.OutcomeOutOfBounds,
		},
		{
			name:  "above the screen",
			diver: resolv.NewObject(100, -27, 14, 27, tags.ResolvPlayer),
			want:  cfg.OutcomeOutOfBounds,
		},
		{
			name:  "not in a space",
			diver: resolv.NewObject(100, 100, 14, 27, tags.ResolvPlayer),
			want:  cfg.OutcomeNone,
		},
		{
			name:   "shark beats goal",
			diver:  resolv.NewObject(100, 100, 14, 27, tags.ResolvPlayer),
			others: []*resolv.Object{resolv.NewObject(100, 100, 25, 25, tags.ResolvGoal), resolv.NewObject(60, 90, 104, 34, tags.ResolvEnemy)},
			want:   cfg.OutcomeCaught,
		},
		{
			name:   "same cell without contact",
			diver:  resolv.NewObject(100, 100, 14, 27, tags.ResolvPlayer),
			others: []*resolv.Object{resolv.NewObject(114, 100, 10, 10, tags.ResolvGoal)},
			want:   cfg.OutcomeNone,
		},
		{
			name:   "goal overlap",
			diver:  resolv.NewObject(100, 100, 14, 27, tags.ResolvPlayer),
			others: []*resolv.Object{resolv.NewObject(110, 120, 25, 25, tags.ResolvGoal)},
			want:   cfg.OutcomeGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name != "not in a space" {
				newSpace(append([]*resolv.Object{tt.diver}, tt.others...)...)
			}
			if got := checkTriggers(tt.diver); got != tt.want {
				t.Fatalf("checkTriggers = %v, want %v", got, tt.want)
			}
		})
	}
}
