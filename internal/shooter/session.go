// Package shooter implements a single-screen arcade shooter.
// The player ship dodges and shoots enemies that descend from the top of the
// playfield. The y axis grows upward: enemies fall by decrementing y, bullets
// rise by incrementing y.
package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateActive State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session owns every entity of one game and advances it tick by tick.
// It is not safe for concurrent use; the platform drives it from one loop.
type Session struct {
	cfg     config.ShooterConfig
	bounds  core.Rect
	spawner *Spawner

	state      State
	player     *Player // nil while GameOver
	enemies    []Enemy
	bullets    []Bullet
	finalScore int
	ticks      uint64
}

// NewSession creates an Active session with a fresh player.
// cfg is expected to have passed config.Validate.
func NewSession(cfg config.ShooterConfig, rng RandSource) *Session {
	s := &Session{
		cfg:    cfg,
		bounds: core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height),
		spawner: NewSpawner(rng, cfg.Spawn.Chance, core.Vec2{
			X: cfg.Enemy.Width,
			Y: cfg.Enemy.Height,
		}),
		enemies: make([]Enemy, 0, 16),
		bullets: make([]Bullet, 0, 32),
	}
	s.Restart()
	return s
}

// Restart resets the session to Active with a fresh player centered in the
// playfield, no enemies, no bullets and a zero score.
func (s *Session) Restart() {
	size := core.Vec2{X: s.cfg.Player.Width, Y: s.cfg.Player.Height}
	center := s.bounds.Center()
	s.player = &Player{
		Pos:  core.Vec2{X: center.X - size.X/2, Y: center.Y - size.Y/2},
		Size: size,
	}
	s.enemies = s.enemies[:0]
	s.bullets = s.bullets[:0]
	s.state = StateActive
	s.finalScore = 0
	s.ticks = 0
}

// Tick advances the simulation by one step: motion, spawning, collisions.
// Does nothing once the game is over.
func (s *Session) Tick() {
	if s.state == StateGameOver {
		return
	}
	s.ticks++

	movePlayer(s.player, s.bounds)
	s.enemies, _ = advanceEnemies(s.enemies, s.cfg.Enemy.FallSpeed)
	s.bullets, _ = advanceBullets(s.bullets, s.bounds.H)

	if e, ok := s.spawner.MaybeSpawn(s.bounds.W, s.bounds.H); ok {
		s.enemies = append(s.enemies, e)
	}

	if playerHit(*s.player, s.enemies) {
		s.gameOver()
		return
	}

	var kills int
	s.bullets, s.enemies, kills = resolveBulletHits(s.bullets, s.enemies)
	s.player.Score += kills
}

// gameOver removes the player and freezes the score.
func (s *Session) gameOver() {
	s.finalScore = s.player.Score
	s.player = nil
	s.state = StateGameOver
}

// SetPlayerAxisVelocity assigns one velocity component of the ship.
// Unknown axes, non-finite values and calls made after game over are ignored.
func (s *Session) SetPlayerAxisVelocity(axis Axis, value float64) {
	if s.state != StateActive || math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	switch axis {
	case AxisX:
		s.player.Vel.X = value
	case AxisY:
		s.player.Vel.Y = value
	}
}

// FireBullet launches a bullet horizontally centered on the ship with its top
// aligned to the ship's top edge. Ignored after game over.
func (s *Session) FireBullet() {
	if s.state != StateActive {
		return
	}
	w, h := s.cfg.Bullet.Width, s.cfg.Bullet.Height
	pr := s.player.Rect()
	s.bullets = append(s.bullets, Bullet{
		Pos:  core.Vec2{X: pr.Center().X - w/2, Y: pr.Top() - h},
		Vel:  core.Vec2{X: 0, Y: s.cfg.Bullet.Speed},
		Size: core.Vec2{X: w, Y: h},
	})
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score, or the final score once the game is over.
func (s *Session) Score() int {
	if s.player == nil {
		return s.finalScore
	}
	return s.player.Score
}

// Player returns a copy of the ship and whether it exists.
func (s *Session) Player() (Player, bool) {
	if s.player == nil {
		return Player{}, false
	}
	return *s.player, true
}

// Enemies returns a copy of the enemies in spawn order.
func (s *Session) Enemies() []Enemy {
	return append([]Enemy(nil), s.enemies...)
}

// Bullets returns a copy of the bullets in firing order.
func (s *Session) Bullets() []Bullet {
	return append([]Bullet(nil), s.bullets...)
}

// Ticks returns the number of ticks simulated since the last restart.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Playfield returns the simulation bounds.
func (s *Session) Playfield() core.Rect {
	return s.bounds
}

// PlacePlayer moves the ship to pos without clamping. Ignored after game over.
func (s *Session) PlacePlayer(pos core.Vec2) {
	if s.player != nil {
		s.player.Pos = pos
	}
}

// PlaceEnemy adds an enemy with its bottom-left corner at pos.
func (s *Session) PlaceEnemy(pos core.Vec2) {
	s.enemies = append(s.enemies, Enemy{
		Pos:  pos,
		Size: core.Vec2{X: s.cfg.Enemy.Width, Y: s.cfg.Enemy.Height},
	})
}

// PlaceBullet adds a bullet with its bottom-left corner at pos travelling at
// the configured bullet speed.
func (s *Session) PlaceBullet(pos core.Vec2) {
	s.bullets = append(s.bullets, Bullet{
		Pos:  pos,
		Vel:  core.Vec2{X: 0, Y: s.cfg.Bullet.Speed},
		Size: core.Vec2{X: s.cfg.Bullet.Width, Y: s.cfg.Bullet.Height},
	})
}
