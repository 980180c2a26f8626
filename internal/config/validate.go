package config

import (
	"fmt"
	"math"
)

// ValidationError reports a configuration value that cannot drive a session.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks that every value is usable by the simulation.
// Returns the first offending field.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		field string
		val   float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
	}
	for _, p := range positive {
		if err := checkFinite(p.field, p.val); err != nil {
			return err
		}
		if p.val <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be positive, got %v", p.val)}
		}
	}

	nonNegative := []struct {
		field string
		val   float64
	}{
		{"player.speed", c.Player.Speed},
		{"enemy.fall_speed", c.Enemy.FallSpeed},
		{"bullet.speed", c.Bullet.Speed},
	}
	for _, p := range nonNegative {
		if err := checkFinite(p.field, p.val); err != nil {
			return err
		}
		if p.val < 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must not be negative, got %v", p.val)}
		}
	}

	if c.Player.Width > c.Playfield.Width || c.Player.Height > c.Playfield.Height {
		return ValidationError{Field: "player", Message: "ship does not fit in the playfield"}
	}
	if c.Spawn.Chance < 1 {
		return ValidationError{Field: "spawn.chance", Message: fmt.Sprintf("must be at least 1, got %d", c.Spawn.Chance)}
	}
	if c.Controls.InitialHoldTicks < 1 {
		return ValidationError{Field: "controls.initial_hold_ticks", Message: fmt.Sprintf("must be at least 1, got %d", c.Controls.InitialHoldTicks)}
	}
	if c.Controls.HoldTicks < 1 {
		return ValidationError{Field: "controls.hold_ticks", Message: fmt.Sprintf("must be at least 1, got %d", c.Controls.HoldTicks)}
	}
	return nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ValidationError{Field: field, Message: "must be a finite number"}
	}
	return nil
}
