package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Snapshot is a read-only copy of everything the presentation layer may show.
// Taking a snapshot never changes the session.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	Playfield core.Rect

	PlayerAlive bool
	Player      core.Rect // Zero when PlayerAlive is false

	Enemies []core.Rect // Spawn order
	Bullets []core.Rect // Firing order
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		Score:     s.Score(),
		Playfield: s.bounds,
		Enemies:   make([]core.Rect, len(s.enemies)),
		Bullets:   make([]core.Rect, len(s.bullets)),
	}
	if s.player != nil {
		snap.PlayerAlive = true
		snap.Player = s.player.Rect()
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = e.Rect()
	}
	for i, b := range s.bullets {
		snap.Bullets[i] = b.Rect()
	}
	return snap
}
