package tui

import "github.com/vovakirdan/space-shooter/internal/core"

// Game is what the terminal loop drives. Implementations must be
// deterministic for a given seed and input sequence.
type Game interface {
	// ID returns a unique identifier, used in logs.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new game with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick using the input collected since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current status without advancing.
	State() core.GameState
}

// GameFactory creates a fresh game, one per terminal session.
type GameFactory func() Game
