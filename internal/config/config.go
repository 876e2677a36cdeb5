// Package config loads the game settings from the embedded defaults, an
// optional YAML file and the environment.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/object"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfig   = "SHMUP_CONFIG"
	EnvLogLevel = "SHMUP_LOG_LEVEL"
	EnvSeed     = "SHMUP_SEED"
	EnvAudio    = "SHMUP_AUDIO"
)

// Tuning limits shared with the runtime sliders.
const (
	MinFireRate      = 1
	MaxFireRate      = 20
	MaxFireDirection = 360
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds every tunable setting of the game.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Waves     []WaveConfig    `yaml:"waves"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Audio     AudioConfig     `yaml:"audio"`
	Log       LogConfig       `yaml:"log"`

	// Seed for the random source. 0 seeds from the current time.
	Seed uint64 `yaml:"seed"`
}

// WindowConfig is the size of the play field in pixels.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig configures the player's ship and its shots.
type PlayerConfig struct {
	Lives         int     `yaml:"lives"`
	Size          float64 `yaml:"size"`
	FireRate      float64 `yaml:"fireRate"`      // Shots per second
	FireDirection float64 `yaml:"fireDirection"` // Degrees clockwise from straight up
	ShotSpeed     float64 `yaml:"shotSpeed"`
	ShotLifespan  float64 `yaml:"shotLifespan"` // Ms
	MoveStep      float64 `yaml:"moveStep"`     // Pixels per frame while a key is held
	PowerDuration float64 `yaml:"powerDuration"`
}

// EnemyConfig configures the ships spawned by every wave.
type EnemyConfig struct {
	ShotSpeed     float64 `yaml:"shotSpeed"`
	ShotLifespan  float64 `yaml:"shotLifespan"`  // Ms
	ChildDuration float64 `yaml:"childDuration"` // Ms a ship stays on the field
}

// WaveConfig configures one spawner of enemy ships.
type WaveConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"` // Fraction of the window width
	Path   string  `yaml:"path"`
	Mirror bool    `yaml:"mirror"`
	Speed  float64 `yaml:"speed"` // Downward speed of the ships
	Rate   float64 `yaml:"rate"`  // Ships per second
}

// ExplosionConfig configures the blast spawned on every hit.
type ExplosionConfig struct {
	Impulse   float64 `yaml:"impulse"`
	Gravity   float64 `yaml:"gravity"` // Downward pull on debris
	GroupSize int     `yaml:"groupSize"`
	Lifespan  float64 `yaml:"lifespan"` // Seconds
}

// AudioConfig configures the synthesized sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"` // Gain in halvings, 0 is unchanged
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty keeps the binary's default sink
}

// Default returns the embedded default configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return &cfg
}

// Load reads a YAML file on top of the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// FromEnv loads the file named by SHMUP_CONFIG and applies the other
// environment overrides.
func FromEnv() (*Config, error) {
	cfg, err := Load(GetEnv(EnvConfig, ""))
	if err != nil {
		return nil, err
	}

	cfg.Log.Level = GetEnv(EnvLogLevel, cfg.Log.Level)

	if cfg.Seed, err = getEnvUint(EnvSeed, cfg.Seed); err != nil {
		return nil, err
	}
	if cfg.Audio.Enabled, err = getEnvBool(EnvAudio, cfg.Audio.Enabled); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}

	p := c.Player
	if p.Lives < 1 {
		return fmt.Errorf("player lives must be at least 1, got %d", p.Lives)
	}
	if p.FireRate < MinFireRate || p.FireRate > MaxFireRate {
		return fmt.Errorf("player fireRate must be in [%d, %d], got %g", MinFireRate, MaxFireRate, p.FireRate)
	}
	if p.FireDirection < 0 || p.FireDirection > MaxFireDirection {
		return fmt.Errorf("player fireDirection must be in [0, %d], got %g", MaxFireDirection, p.FireDirection)
	}
	if p.Size <= 0 || p.MoveStep <= 0 || p.ShotSpeed <= 0 {
		return fmt.Errorf("player size, moveStep and shotSpeed must be positive")
	}
	if p.ShotLifespan <= 0 && p.ShotLifespan != object.Immortal {
		return fmt.Errorf("player shotLifespan must be positive, got %g", p.ShotLifespan)
	}

	if c.Enemy.ChildDuration <= 0 {
		return fmt.Errorf("enemy childDuration must be positive, got %g", c.Enemy.ChildDuration)
	}

	if len(c.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}
	for i, w := range c.Waves {
		if _, err := object.ParsePath(w.Path); err != nil {
			return fmt.Errorf("wave %d (%s): %w", i, w.Name, err)
		}
		if w.Rate <= 0 {
			return fmt.Errorf("wave %d (%s): rate must be positive, got %g", i, w.Name, w.Rate)
		}
		if w.X < 0 || w.X > 1 {
			return fmt.Errorf("wave %d (%s): x must be a fraction in [0, 1], got %g", i, w.Name, w.X)
		}
	}

	if c.Explosion.GroupSize < 1 {
		return fmt.Errorf("explosion groupSize must be at least 1, got %d", c.Explosion.GroupSize)
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sampleRate must be positive, got %d", c.Audio.SampleRate)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
