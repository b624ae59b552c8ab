package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nested keys: VITAE_LOG__LEVEL maps to log.level.
const EnvPrefix = "VITAE_"

// Config is the top-level vitae configuration, corresponding to config.yml.
type Config struct {
	// Resume is the path to a résumé YAML file. Empty uses the built-in sample.
	Resume string `koanf:"resume" yaml:"resume"`
	// DB overrides the preference database path.
	DB string `koanf:"db" yaml:"db"`
	// Watch reloads the résumé file when it changes on disk.
	Watch bool `koanf:"watch" yaml:"watch"`

	Log     LogConfig     `koanf:"log" yaml:"log"`
	Timing  TimingConfig  `koanf:"timing" yaml:"timing"`
	Effects EffectsConfig `koanf:"effects" yaml:"effects"`
}

// LogConfig controls the file logger. The terminal belongs to the UI, so
// logs never go to stdout.
type LogConfig struct {
	Path  string `koanf:"path" yaml:"path"`
	Level string `koanf:"level" yaml:"level"` // debug, info, warn, error, off
}

// TimingConfig holds the delays used by the page animations.
type TimingConfig struct {
	SkillStagger    time.Duration `koanf:"skill_stagger" yaml:"skill_stagger"`
	SkillSettle     time.Duration `koanf:"skill_settle" yaml:"skill_settle"`
	// SkillInitial delays the fill when the skills section is open at start.
	SkillInitial    time.Duration `koanf:"skill_initial" yaml:"skill_initial"`
	Ripple          time.Duration `koanf:"ripple" yaml:"ripple"`
	ThemeTransition time.Duration `koanf:"theme_transition" yaml:"theme_transition"`
	EntranceDelay   time.Duration `koanf:"entrance_delay" yaml:"entrance_delay"`
	CardStagger     time.Duration `koanf:"card_stagger" yaml:"card_stagger"`
	Frame           time.Duration `koanf:"frame" yaml:"frame"`
}

// EffectsConfig holds the tuning constants of the decorative effects.
type EffectsConfig struct {
	TiltDamping     float64 `koanf:"tilt_damping" yaml:"tilt_damping"`
	RevealThreshold float64 `koanf:"reveal_threshold" yaml:"reveal_threshold"`
	Tilt            bool    `koanf:"tilt" yaml:"tilt"`
}

// DefaultConfig returns a Config with the stock page timings.
func DefaultConfig() *Config {
	return &Config{
		Watch: true,
		Log: LogConfig{
			Level: "info",
		},
		Timing: TimingConfig{
			SkillStagger:    100 * time.Millisecond,
			SkillSettle:     100 * time.Millisecond,
			SkillInitial:    500 * time.Millisecond,
			Ripple:          600 * time.Millisecond,
			ThemeTransition: 500 * time.Millisecond,
			EntranceDelay:   200 * time.Millisecond,
			CardStagger:     100 * time.Millisecond,
			Frame:           50 * time.Millisecond,
		},
		Effects: EffectsConfig{
			TiltDamping:     20,
			RevealThreshold: 0.1,
			Tilt:            true,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (VITAE_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error, off", c.Log.Level)
	}
	t := c.Timing
	for name, d := range map[string]time.Duration{
		"skill_stagger":    t.SkillStagger,
		"skill_settle":     t.SkillSettle,
		"skill_initial":    t.SkillInitial,
		"ripple":           t.Ripple,
		"theme_transition": t.ThemeTransition,
		"entrance_delay":   t.EntranceDelay,
		"card_stagger":     t.CardStagger,
	} {
		if d < 0 {
			return fmt.Errorf("timing.%s must be non-negative", name)
		}
	}
	if t.Frame <= 0 {
		return fmt.Errorf("timing.frame must be positive")
	}
	if c.Effects.TiltDamping <= 0 {
		return fmt.Errorf("effects.tilt_damping must be positive")
	}
	if c.Effects.RevealThreshold <= 0 || c.Effects.RevealThreshold > 1 {
		return fmt.Errorf("effects.reveal_threshold must be in (0, 1]")
	}
	return nil
}

// DefaultPath resolves the config file location:
// 1. VITAE_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/vitae/config.yml
// 3. ~/.config/vitae/config.yml
func DefaultPath() string {
	if p := os.Getenv("VITAE_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vitae", "config.yml")
}
