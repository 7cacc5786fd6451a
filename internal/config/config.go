// Package config provides Viper-based configuration loading for the simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// SimulationConfig holds the per-session combat knobs.
type SimulationConfig struct {
	// DamageModel is one of the three defense table ids.
	DamageModel string `mapstructure:"damage_model"`
	// EnemyAttacksPerRound is how many attacks each enemy makes per round (1-5).
	EnemyAttacksPerRound int  `mapstructure:"enemy_attacks_per_round"`
	AbilitiesEnabled     bool `mapstructure:"abilities_enabled"`
	// Debug echoes every dice roll into the combat log.
	Debug bool `mapstructure:"debug"`
	// MaxRounds caps a single session (1-100).
	MaxRounds int `mapstructure:"max_rounds"`
	// SessionTimeout bounds the wall time of a single session (at most 1s).
	SessionTimeout time.Duration `mapstructure:"session_timeout"`
	// Sessions is the batch size used by batch mode.
	Sessions int `mapstructure:"sessions"`
	// Workers is the number of sessions run concurrently in batch mode.
	Workers int `mapstructure:"workers"`
	// Seed selects a reproducible dice source; 0 uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is "stderr" or a file path; stdout carries the combat log.
	Output string `mapstructure:"output"`
}

// ScriptingConfig holds Lua narration settings.
type ScriptingConfig struct {
	// Dir holds *.lua narration scripts; empty disables scripting.
	Dir string `mapstructure:"dir"`
	// InstructionLimit caps Lua opcodes per hook call; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Scripting  ScriptingConfig  `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if _, err := combat.ParseDamageModel(s.DamageModel); err != nil {
		errs = append(errs, fmt.Sprintf("simulation.damage_model: %v", err))
	}
	if s.EnemyAttacksPerRound < combat.MinAttacksPerRound || s.EnemyAttacksPerRound > combat.MaxAttacksPerRound {
		errs = append(errs, fmt.Sprintf("simulation.enemy_attacks_per_round must be %d-%d, got %d",
			combat.MinAttacksPerRound, combat.MaxAttacksPerRound, s.EnemyAttacksPerRound))
	}
	if s.MaxRounds < 1 || s.MaxRounds > combat.DefaultMaxRounds {
		errs = append(errs, fmt.Sprintf("simulation.max_rounds must be 1-%d, got %d", combat.DefaultMaxRounds, s.MaxRounds))
	}
	if s.SessionTimeout <= 0 || s.SessionTimeout > combat.DefaultSessionBudget {
		errs = append(errs, fmt.Sprintf("simulation.session_timeout must be in (0, %s], got %s", combat.DefaultSessionBudget, s.SessionTimeout))
	}
	if s.Sessions < 1 {
		errs = append(errs, fmt.Sprintf("simulation.sessions must be >= 1, got %d", s.Sessions))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 1, got %d", s.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" || l.Output == "stdout" {
		return fmt.Errorf("logging.output must be stderr or a file path, got %q", l.Output)
	}
	return nil
}

// newViper returns a Viper instance with defaults and SKIRMISH_ env overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.damage_model", string(combat.DefaultDamageModel))
	v.SetDefault("simulation.enemy_attacks_per_round", 1)
	v.SetDefault("simulation.abilities_enabled", true)
	v.SetDefault("simulation.debug", false)
	v.SetDefault("simulation.max_rounds", combat.DefaultMaxRounds)
	v.SetDefault("simulation.session_timeout", "1s")
	v.SetDefault("simulation.sessions", 1)
	v.SetDefault("simulation.workers", 1)
	v.SetDefault("simulation.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("scripting.dir", "")
	v.SetDefault("scripting.instruction_limit", 0)
}
