package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Game adapts a Session to the platform: it turns input frames into session
// calls, adds pausing and draws snapshots into a character screen.
type Game struct {
	cfg     config.ShooterConfig
	session *Session
	paused  bool
}

// New creates a game that will run sessions with the given configuration.
// Reset must be called before the first Step.
func New(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset starts a new session seeded from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.session = NewSession(g.cfg, rand.New(rand.NewSource(rc.Seed)))
	g.paused = false
}

// Session exposes the running session, mainly for tests and diagnostics.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies the input collected since the last tick and advances the
// simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.State() == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Releases are honored even while paused so no key stays stuck
	g.applyReleases(in)

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyPresses(in)
	g.session.Tick()

	return core.StepResult{State: g.State()}
}

// applyReleases zeroes an axis when either of its keys went up.
func (g *Game) applyReleases(in core.InputFrame) {
	if in.WasReleased(core.ActionLeft) || in.WasReleased(core.ActionRight) {
		g.session.SetPlayerAxisVelocity(AxisX, 0)
	}
	if in.WasReleased(core.ActionUp) || in.WasReleased(core.ActionDown) {
		g.session.SetPlayerAxisVelocity(AxisY, 0)
	}
}

// applyPresses maps key-down actions to velocity assignments and shots.
func (g *Game) applyPresses(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	if in.Has(core.ActionLeft) {
		g.session.SetPlayerAxisVelocity(AxisX, -speed)
	}
	if in.Has(core.ActionRight) {
		g.session.SetPlayerAxisVelocity(AxisX, speed)
	}
	if in.Has(core.ActionUp) {
		g.session.SetPlayerAxisVelocity(AxisY, speed)
	}
	if in.Has(core.ActionDown) {
		g.session.SetPlayerAxisVelocity(AxisY, -speed)
	}
	if in.Has(core.ActionFire) {
		g.session.FireBullet()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}
