// Package config provides YAML-based game settings and environment lookups.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Game contains all tunable simulation parameters.
type Game struct {
	Width            int           `yaml:"width"`
	Height           int           `yaml:"height"`
	Tick             time.Duration `yaml:"tick"`
	TicksPerAsteroid int           `yaml:"ticks_per_asteroid"`
	Seed             int64         `yaml:"seed"`
	AsteroidRadius   float64       `yaml:"asteroid_radius"`
	HealthMin        int           `yaml:"asteroid_health_min"`
	HealthMax        int           `yaml:"asteroid_health_max"`
	ProjectileSpeed  float64       `yaml:"projectile_speed"`
	ProjectileDamage int           `yaml:"projectile_damage"` // 0 = destroy on hit
}

// DefaultGame returns the built-in settings. It matches defaults/game.yaml.
func DefaultGame() Game {
	return Game{
		Width:            60,
		Height:           31,
		Tick:             500 * time.Millisecond,
		TicksPerAsteroid: 5,
		Seed:             0,
		AsteroidRadius:   2.0,
		HealthMin:        10,
		HealthMax:        50,
		ProjectileSpeed:  2.0,
		ProjectileDamage: 0,
	}
}

// ErrInvalid is wrapped by all validation failures.
var ErrInvalid = errors.New("invalid game config")

// Validate checks that the settings describe a playable simulation.
func (g Game) Validate() error {
	switch {
	case g.Width < 2 || g.Height < 1:
		return fmt.Errorf("%w: play area %dx%d too small", ErrInvalid, g.Width, g.Height)
	case g.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, g.Tick)
	case g.TicksPerAsteroid < 1:
		return fmt.Errorf("%w: ticks_per_asteroid must be >= 1, got %d", ErrInvalid, g.TicksPerAsteroid)
	case g.AsteroidRadius <= 0:
		return fmt.Errorf("%w: asteroid_radius must be positive, got %v", ErrInvalid, g.AsteroidRadius)
	case g.HealthMin < 1 || g.HealthMax < g.HealthMin:
		return fmt.Errorf("%w: asteroid health range [%d, %d]", ErrInvalid, g.HealthMin, g.HealthMax)
	case g.ProjectileSpeed < 0:
		return fmt.Errorf("%w: projectile_speed must not be negative, got %v", ErrInvalid, g.ProjectileSpeed)
	case g.ProjectileDamage < 0:
		return fmt.Errorf("%w: projectile_damage must not be negative, got %d", ErrInvalid, g.ProjectileDamage)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
