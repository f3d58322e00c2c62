package bubbles

import (
	"testing"

	engine "github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

func TestLandingScore(t *testing.T) {
	g := newTestGame(t, New())

	// Warmup row 2 is "2233001122": slot (5,3) sits under the two reds at
	// (4,2) and (5,2).
	p := g.grid.Layout().Center(engine.C(5, 3))
	tests := []struct {
		color engine.Color
		want  int
	}{
		{0, 2},
		{1, 0},
	}
	for _, tc := range tests {
		if got := g.landingScore(p, tc.color); got != tc.want {
			t.Errorf("landingScore(color %d) = %d, expected %d", tc.color, got, tc.want)
		}
	}
}

func TestBotChoose(t *testing.T) {
	g := newTestGame(t, New())
	bot := NewBot()

	angle, ok := bot.Choose(g)
	if !ok {
		t.Fatal("Choose() found no shot on a fresh board")
	}
	if limit := g.cfg.Shooter.AimLimit; angle < -limit || angle > limit {
		t.Errorf("angle %v outside +-%v", angle, limit)
	}

	if !g.fire() {
		t.Fatal("fire() failed with a prepared bubble")
	}
	if _, ok := bot.Choose(g); ok {
		t.Error("Choose() should fail while the bubble is flying")
	}
}

func TestBotPlay(t *testing.T) {
	g := newTestGame(t, New())
	rounds := NewBot().Play(g, 2, 20000)
	if len(rounds) != 2 {
		t.Fatalf("played %d rounds, expected 2", len(rounds))
	}

	first := rounds[0]
	if first.LevelID != "01_warmup" || first.ShotsUsed == 0 {
		t.Errorf("first round = %+v", first)
	}
	want := "01_warmup"
	if first.Won {
		want = "02_stripes"
	}
	if rounds[1].LevelID != want {
		t.Errorf("second level = %q, expected %q", rounds[1].LevelID, want)
	}
}
