package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestMovePlayerClampsPerAxis(t *testing.T) {
	bounds := core.NewRect(0, 0, 1100, 745)

	tests := []struct {
		name     string
		pos, vel core.Vec2
		expected core.Vec2
	}{
		{"free move", vec(500, 300), vec(5, -5), vec(505, 295)},
		{"left edge", vec(2, 300), vec(-5, 0), vec(0, 300)},
		{"right edge", vec(998, 300), vec(5, 0), vec(1000, 300)},
		{"bottom edge keeps x move", vec(500, 3), vec(5, -5), vec(505, 0)},
		{"top edge keeps x move", vec(500, 643), vec(-5, 5), vec(495, 645)},
		{"corner", vec(1, 644), vec(-5, 5), vec(0, 645)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{Pos: tc.pos, Vel: tc.vel, Size: vec(100, 100)}
			movePlayer(&p, bounds)
			if p.Pos != tc.expected {
				t.Errorf("position = %+v, expected %+v", p.Pos, tc.expected)
			}
		})
	}
}

func TestAdvanceEnemiesFallAndCull(t *testing.T) {
	size := vec(100, 100)
	enemies := []Enemy{
		{Pos: vec(10, 500), Size: size},
		{Pos: vec(20, -97), Size: size}, // top reaches 0 -> culled
		{Pos: vec(30, -96), Size: size}, // top stays at 1 -> kept
		{Pos: vec(40, 745), Size: size},
	}

	got, culled := advanceEnemies(enemies, 3)

	if culled != 1 {
		t.Errorf("culled = %d, expected 1", culled)
	}
	expected := []core.Vec2{vec(10, 497), vec(30, -99), vec(40, 742)}
	if len(got) != len(expected) {
		t.Fatalf("got %d enemies, expected %d", len(got), len(expected))
	}
	for i, e := range got {
		if e.Pos != expected[i] {
			t.Errorf("enemy %d position = %+v, expected %+v", i, e.Pos, expected[i])
		}
	}
}

func TestAdvanceBulletsRiseAndCull(t *testing.T) {
	size := vec(20, 40)
	bullets := []Bullet{
		{Pos: vec(10, 100), Vel: vec(0, 10), Size: size},
		{Pos: vec(20, 736), Vel: vec(0, 10), Size: size}, // 746 > 745 -> culled
		{Pos: vec(30, 735), Vel: vec(0, 10), Size: size}, // 745 is not past the edge
	}

	got, culled := advanceBullets(bullets, 745)

	if culled != 1 {
		t.Errorf("culled = %d, expected 1", culled)
	}
	if len(got) != 2 {
		t.Fatalf("got %d bullets, expected 2", len(got))
	}
	if got[0].Pos != vec(10, 110) || got[1].Pos != vec(30, 745) {
		t.Errorf("unexpected survivors: %+v", got)
	}
}

func TestAdvanceEmpty(t *testing.T) {
	enemies, n := advanceEnemies(nil, 3)
	if len(enemies) != 0 || n != 0 {
		t.Error("advancing no enemies should be a no-op")
	}
	bullets, n := advanceBullets(nil, 745)
	if len(bullets) != 0 || n != 0 {
		t.Error("advancing no bullets should be a no-op")
	}
}
