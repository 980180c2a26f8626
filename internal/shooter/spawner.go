package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// RandSource is the randomness the spawner draws from.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type RandSource interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int
}

// Spawner decides once per tick whether a new enemy enters the playfield.
// The rate is constant for the lifetime of a session.
type Spawner struct {
	rng    RandSource
	chance int
	size   core.Vec2
}

// NewSpawner creates a spawner that spawns with probability 1/chance per tick.
func NewSpawner(rng RandSource, chance int, enemySize core.Vec2) *Spawner {
	if chance < 1 {
		chance = 1
	}
	return &Spawner{
		rng:    rng,
		chance: chance,
		size:   enemySize,
	}
}

// MaybeSpawn draws a uniform integer in [1, chance] and returns a new enemy
// iff the draw is 1. The enemy is placed at the top edge of the playfield
// with an integer x uniformly chosen from [0, width - enemy width].
func (s *Spawner) MaybeSpawn(width, height float64) (Enemy, bool) {
	if 1+s.rng.Intn(s.chance) != 1 {
		return Enemy{}, false
	}

	span := int(width - s.size.X)
	x := 0
	if span > 0 {
		x = s.rng.Intn(span + 1)
	}

	return Enemy{
		Pos:  core.Vec2{X: float64(x), Y: height},
		Size: s.size,
	}, true
}
