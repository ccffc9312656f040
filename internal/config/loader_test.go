package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShooterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.yaml")

	yaml := `
field:
  radius: 12
  cols: 10
  height: 500
  seed_rows: 3
projectile:
  speed: 9
aim:
  min_angle: 30
  max_angle: 150
  step_angle: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error: %v", err)
	}
	if cfg.Field.Radius != 12 || cfg.Field.Cols != 10 {
		t.Errorf("field = %+v, expected radius 12, cols 10", cfg.Field)
	}
	if cfg.Field.SeedRows != 3 {
		t.Errorf("seed_rows = %d, expected 3", cfg.Field.SeedRows)
	}
	if cfg.Projectile.Speed != 9 {
		t.Errorf("speed = %v, expected 9", cfg.Projectile.Speed)
	}
	if cfg.Aim.StepAngle != 3 {
		t.Errorf("step_angle = %v, expected 3", cfg.Aim.StepAngle)
	}
}

func TestLoadShooterMissingCustomPath(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing custom path")
	}
}

func TestLoadShooterEmbeddedDefault(t *testing.T) {
	// No custom path and no user config in the temp home: the embedded
	// default must load and validate.
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultShooterConfig())
	}
}

func TestValidateRejectsDegenerateGeometry(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero_radius", func(c *ShooterConfig) { c.Field.Radius = 0 }},
		{"too_few_cols", func(c *ShooterConfig) { c.Field.Cols = 2 }},
		{"flat_field", func(c *ShooterConfig) { c.Field.Height = 10 }},
		{"negative_seed_rows", func(c *ShooterConfig) { c.Field.SeedRows = -1 }},
		{"zero_speed", func(c *ShooterConfig) { c.Projectile.Speed = 0 }},
		{"inverted_aim", func(c *ShooterConfig) { c.Aim.MinAngle, c.Aim.MaxAngle = 160, 20 }},
		{"zero_aim_step", func(c *ShooterConfig) { c.Aim.StepAngle = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestApplyVariantDense(t *testing.T) {
	cfg := DefaultShooterConfig()
	base := cfg

	ApplyVariant(&cfg, VariantDense)

	if cfg.Field.SeedRows != base.Field.SeedRows+3 {
		t.Errorf("dense seed_rows = %d, expected %d", cfg.Field.SeedRows, base.Field.SeedRows+3)
	}
	if cfg.Projectile.Speed <= base.Projectile.Speed {
		t.Errorf("dense speed = %v, expected faster than %v", cfg.Projectile.Speed, base.Projectile.Speed)
	}

	classic := DefaultShooterConfig()
	ApplyVariant(&classic, VariantClassic)
	if classic != base {
		t.Errorf("classic variant changed the config: %+v", classic)
	}
}
