package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/tickcore/internal/core/observability/log"
)

// Input provider names accepted by InputConfig.Provider.
const (
	ProviderEmpty  = "empty"
	ProviderRandom = "random"
	ProviderScript = "script"
	ProviderLua    = "lua"
)

// Phase traversal names accepted by SimulationConfig.Traversal.
const (
	TraversalFlat   = "flat"
	TraversalScoped = "scoped"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TICKCORE_"

type Config struct {
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	World      WorldConfig      `yaml:"world" toml:"world"`
	Log        LogConfig        `yaml:"log" toml:"log"`
	Spectator  SpectatorConfig  `yaml:"spectator" toml:"spectator"`
}

type SimulationConfig struct {
	TickInterval time.Duration `yaml:"tick_interval" toml:"tick_interval"`
	Ticks        uint64        `yaml:"ticks" toml:"ticks"` // 0 runs until cancelled
	Traversal    string        `yaml:"traversal" toml:"traversal"`
}

type InputConfig struct {
	Provider string     `yaml:"provider" toml:"provider"`
	Seed     int64      `yaml:"seed" toml:"seed"`
	Script   [][]string `yaml:"script" toml:"script"`
	// Lua source is read from LuaFile when set, otherwise from LuaSource.
	LuaFile   string `yaml:"lua_file" toml:"lua_file"`
	LuaSource string `yaml:"lua_source" toml:"lua_source"`
}

type WorldConfig struct {
	Entities []EntitySpec `yaml:"entities" toml:"entities"`
}

// EntitySpec describes one seed entity. Facing applies to enemies and
// bullets, Sprite to actors.
type EntitySpec struct {
	Kind     string `yaml:"kind" toml:"kind"`
	Name     string `yaml:"name" toml:"name"`
	Position int    `yaml:"position" toml:"position"`
	Facing   string `yaml:"facing" toml:"facing"`
	Sprite   string `yaml:"sprite" toml:"sprite"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

type SpectatorConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Addr    string `yaml:"addr" toml:"addr"`
}

// Default returns the sample game: one actor and one patrolling enemy.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickInterval: 100 * time.Millisecond,
			Traversal:    TraversalFlat,
		},
		Input: InputConfig{
			Provider: ProviderRandom,
			Seed:     1,
		},
		World: WorldConfig{
			Entities: []EntitySpec{
				{Kind: "actor", Name: "Actor", Position: 10},
				{Kind: "enemy", Name: "Enemy", Position: 30, Facing: "right"},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Spectator: SpectatorConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path on top of Default, picking the decoder from the file
// extension, then applies environment overrides.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = LoadYAML(f)
	case ".toml":
		cfg, err = LoadTOML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err = cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadYAML decodes YAML from r on top of Default. An empty document yields Default.
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes TOML from r on top of Default. A [[world.entities]] list
// replaces the default world rather than merging into it.
func LoadTOML(r io.Reader) (*Config, error) {
	cfg := Default()
	defaults := cfg.World.Entities
	cfg.World.Entities = nil

	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined("world", "entities") {
		cfg.World.Entities = defaults
	}
	return cfg, nil
}

type envOverrides struct {
	LogLevel      string        `env:"LOG_LEVEL"`
	TickInterval  time.Duration `env:"TICK_INTERVAL"`
	Ticks         uint64        `env:"TICKS"`
	Traversal     string        `env:"TRAVERSAL"`
	InputProvider string        `env:"INPUT_PROVIDER"`
	InputSeed     int64         `env:"INPUT_SEED"`
	SpectatorAddr string        `env:"SPECTATOR_ADDR"`
}

// ApplyEnv overrides fields from TICKCORE_* environment variables. Unset
// variables leave the current values alone.
func (c *Config) ApplyEnv() error {
	o := envOverrides{
		LogLevel:      c.Log.Level,
		TickInterval:  c.Simulation.TickInterval,
		Ticks:         c.Simulation.Ticks,
		Traversal:     c.Simulation.Traversal,
		InputProvider: c.Input.Provider,
		InputSeed:     c.Input.Seed,
		SpectatorAddr: c.Spectator.Addr,
	}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	c.Log.Level = o.LogLevel
	c.Simulation.TickInterval = o.TickInterval
	c.Simulation.Ticks = o.Ticks
	c.Simulation.Traversal = o.Traversal
	c.Input.Provider = o.InputProvider
	c.Input.Seed = o.InputSeed
	c.Spectator.Addr = o.SpectatorAddr
	return nil
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Simulation.TickInterval <= 0 {
		return fmt.Errorf("%w: simulation.tick_interval must be positive, got %s", ErrInvalidConfig, c.Simulation.TickInterval)
	}
	switch c.Simulation.Traversal {
	case TraversalFlat, TraversalScoped:
	default:
		return fmt.Errorf("%w: simulation.traversal must be %q or %q, got %q", ErrInvalidConfig, TraversalFlat, TraversalScoped, c.Simulation.Traversal)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	switch c.Input.Provider {
	case ProviderEmpty, ProviderRandom:
	case ProviderScript:
		if len(c.Input.Script) == 0 {
			return fmt.Errorf("%w: input.script is empty", ErrInvalidConfig)
		}
	case ProviderLua:
		if c.Input.LuaFile == "" && c.Input.LuaSource == "" {
			return fmt.Errorf("%w: input.lua_file or input.lua_source is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownInputSource, c.Input.Provider)
	}

	if c.Spectator.Enabled && c.Spectator.Addr == "" {
		return fmt.Errorf("%w: spectator.addr is required when enabled", ErrInvalidConfig)
	}

	if _, err := c.World.Registry(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LuaScript returns the configured Lua source, reading LuaFile if set.
func (c InputConfig) LuaScript() (string, error) {
	if c.LuaFile == "" {
		return c.LuaSource, nil
	}
	data, err := os.ReadFile(c.LuaFile)
	if err != nil {
		return "", fmt.Errorf("read lua script %s: %w", c.LuaFile, err)
	}
	return string(data), nil
}
