package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// seqRand replays vals cyclically. A value >= n is clamped to n-1.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	if v >= n {
		v = n - 1
	}
	return v
}

// alwaysSpawn makes every spawn draw hit and places enemies at x=0.
func alwaysSpawn() *seqRand { return &seqRand{vals: []int{0}} }

// neverSpawn makes every spawn draw miss (for chance > 1).
func neverSpawn() *seqRand { return &seqRand{vals: []int{1 << 30}} }

func newTestSession(t *testing.T, rng RandSource) *Session {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return NewSession(cfg, rng)
}

func vec(x, y float64) core.Vec2 { return core.Vec2{X: x, Y: y} }
