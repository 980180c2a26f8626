package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// Values match the embedded defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{
			Width:  1100,
			Height: 745,
		},
		Player: PlayerConfig{
			Width:  100,
			Height: 100,
			Speed:  5,
		},
		Enemy: EnemyConfig{
			Width:     100,
			Height:    100,
			FallSpeed: 3,
		},
		Bullet: BulletConfig{
			Width:  20,
			Height: 40,
			Speed:  10,
		},
		Spawn: SpawnConfig{
			Chance: 60, // ~1 enemy per second at 60 ticks/s
		},
		Controls: ControlsConfig{
			InitialHoldTicks: 40,
			HoldTicks:        8,
		},
	}
}
