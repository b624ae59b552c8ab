package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timing.SkillStagger != 100*time.Millisecond {
		t.Errorf("expected skill stagger 100ms, got %v", cfg.Timing.SkillStagger)
	}
	if cfg.Timing.SkillSettle != 100*time.Millisecond {
		t.Errorf("expected skill settle 100ms, got %v", cfg.Timing.SkillSettle)
	}
	if cfg.Timing.SkillInitial != 500*time.Millisecond {
		t.Errorf("expected initial skill reveal 500ms, got %v", cfg.Timing.SkillInitial)
	}
	if cfg.Timing.ThemeTransition != 500*time.Millisecond {
		t.Errorf("expected theme transition 500ms, got %v", cfg.Timing.ThemeTransition)
	}
	if cfg.Timing.EntranceDelay != 200*time.Millisecond {
		t.Errorf("expected entrance delay 200ms, got %v", cfg.Timing.EntranceDelay)
	}
	if cfg.Effects.TiltDamping != 20 {
		t.Errorf("expected tilt damping 20, got %v", cfg.Effects.TiltDamping)
	}
	if cfg.Effects.RevealThreshold != 0.1 {
		t.Errorf("expected reveal threshold 0.1, got %v", cfg.Effects.RevealThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.Ripple != 600*time.Millisecond {
		t.Errorf("expected default ripple, got %v", cfg.Timing.Ripple)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`resume: /tmp/me.yml
watch: false
log:
  level: debug
timing:
  skill_stagger: 250ms
effects:
  tilt_damping: 10
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resume != "/tmp/me.yml" {
		t.Errorf("resume: got %q", cfg.Resume)
	}
	if cfg.Watch {
		t.Error("watch: expected false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level: got %q", cfg.Log.Level)
	}
	if cfg.Timing.SkillStagger != 250*time.Millisecond {
		t.Errorf("timing.skill_stagger: got %v", cfg.Timing.SkillStagger)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Timing.SkillSettle != 100*time.Millisecond {
		t.Errorf("timing.skill_settle: got %v", cfg.Timing.SkillSettle)
	}
	if cfg.Effects.TiltDamping != 10 {
		t.Errorf("effects.tilt_damping: got %v", cfg.Effects.TiltDamping)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VITAE_RESUME", "/srv/resume.yml")
	t.Setenv("VITAE_LOG__LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resume != "/srv/resume.yml" {
		t.Errorf("resume: got %q", cfg.Resume)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level: got %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"negative stagger", func(c *Config) { c.Timing.SkillStagger = -time.Second }},
		{"negative entrance delay", func(c *Config) { c.Timing.EntranceDelay = -time.Millisecond }},
		{"zero frame", func(c *Config) { c.Timing.Frame = 0 }},
		{"zero damping", func(c *Config) { c.Effects.TiltDamping = 0 }},
		{"threshold above one", func(c *Config) { c.Effects.RevealThreshold = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv("VITAE_CONFIG", "/etc/vitae.yml")
	if got := DefaultPath(); got != "/etc/vitae.yml" {
		t.Errorf("DefaultPath() = %q", got)
	}

	t.Setenv("VITAE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "vitae", "config.yml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}
