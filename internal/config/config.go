// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

// ShooterConfig contains all tunables of a shooter session.
// Speeds are expressed in playfield units per tick.
type ShooterConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// PlayfieldConfig defines the simulation area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Axis velocity applied while a movement key is held
}

// EnemyConfig defines the descending enemies.
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FallSpeed float64 `yaml:"fall_speed"`
}

// BulletConfig defines player bullets.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SpawnConfig defines the enemy spawn policy.
type SpawnConfig struct {
	// Chance is the denominator N of the per-tick 1-in-N spawn draw.
	Chance int `yaml:"chance"`
}

// ControlsConfig defines presentation-side input emulation.
type ControlsConfig struct {
	// InitialHoldTicks is how many ticks a freshly pressed movement key stays
	// held. It must cover the keyboard's delay before auto-repeat starts.
	InitialHoldTicks int `yaml:"initial_hold_ticks"`

	// HoldTicks is how many ticks a movement key stays held after an
	// auto-repeat. Terminals report no key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
// A preset is applied once when the session is created; difficulty never ramps.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset.
// Empty or unknown strings yield "" which keeps the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// ApplyPreset adjusts spawn chance and fall speed for a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Chance = 90
		cfg.Enemy.FallSpeed = 2
	case DifficultyNormal:
		cfg.Spawn.Chance = 60
		cfg.Enemy.FallSpeed = 3
	case DifficultyHard:
		cfg.Spawn.Chance = 30
		cfg.Enemy.FallSpeed = 4
	}
}
