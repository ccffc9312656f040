// Package config provides YAML-based game configuration loading and
// launch variants for the shooter platform.
package config

import "fmt"

// ShooterConfig contains all configuration for the Bubble Shooter game.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Aim        AimConfig        `yaml:"aim"`
}

// FieldConfig defines the playfield geometry, in world units.
type FieldConfig struct {
	Radius   float64 `yaml:"radius"`    // Bubble radius
	Cols     int     `yaml:"cols"`      // Columns in even rows; width = cols * 2 * radius
	Height   float64 `yaml:"height"`    // Playfield height
	SeedRows int     `yaml:"seed_rows"` // Rows pre-filled at game start
}

// ProjectileConfig defines shot parameters.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"` // World units per tick
}

// AimConfig defines the cannon aim behavior, in degrees. Zero points
// right along the floor, 90 straight up.
type AimConfig struct {
	MinAngle  float64 `yaml:"min_angle"`  // Flattest aim toward the right wall
	MaxAngle  float64 `yaml:"max_angle"`  // Flattest aim toward the left wall
	StepAngle float64 `yaml:"step_angle"` // Rotation per held input tick
}

// VariantPreset represents a named launch variant.
type VariantPreset string

const (
	VariantClassic VariantPreset = "classic"
	VariantDense   VariantPreset = "dense"
)

// Validate reports the first problem that would make the playfield
// degenerate. Loaded configs pass through here before a game starts.
func (c ShooterConfig) Validate() error {
	if c.Field.Radius <= 0 {
		return fmt.Errorf("config: field radius %v must be positive", c.Field.Radius)
	}
	if c.Field.Cols < 4 {
		return fmt.Errorf("config: field needs at least 4 columns, got %d", c.Field.Cols)
	}
	if c.Field.Height < c.Field.Radius*4 {
		return fmt.Errorf("config: field height %v too small for radius %v", c.Field.Height, c.Field.Radius)
	}
	if c.Field.SeedRows < 0 {
		return fmt.Errorf("config: seed_rows %d must not be negative", c.Field.SeedRows)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("config: projectile speed %v must be positive", c.Projectile.Speed)
	}
	if c.Aim.MinAngle <= 0 || c.Aim.MaxAngle >= 180 || c.Aim.MinAngle >= c.Aim.MaxAngle {
		return fmt.Errorf("config: aim range [%v, %v] must sit inside (0, 180)", c.Aim.MinAngle, c.Aim.MaxAngle)
	}
	if c.Aim.StepAngle <= 0 {
		return fmt.Errorf("config: aim step %v must be positive", c.Aim.StepAngle)
	}
	return nil
}
