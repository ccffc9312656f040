package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default Bubble Shooter configuration.
// Matches defaults/shooter.yaml; used as the last-resort fallback.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Radius:   20,
			Cols:     15,
			Height:   640,
			SeedRows: 5,
		},
		Projectile: ProjectileConfig{
			Speed: 16,
		},
		Aim: AimConfig{
			MinAngle:  20,
			MaxAngle:  160,
			StepAngle: 2,
		},
	}
}
