// Package config resolves cipherstack settings from defaults, an optional
// TOML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

const appName = "cipherstack"

// Environment variables consulted by Load.
const (
	EnvLogLevel  = "CIPHERSTACK_LOG_LEVEL"
	EnvAddr      = "CIPHERSTACK_ADDR"
	EnvMaxInput  = "CIPHERSTACK_MAX_INPUT"
	EnvCacheSize = "CIPHERSTACK_DIAGRAM_CACHE"
	EnvConfig    = "CIPHERSTACK_CONFIG"
)

// Config captures the resolved settings.
type Config struct {
	LogLevel         string `toml:"log_level"`
	Addr             string `toml:"addr"`
	MaxInput         int    `toml:"max_input"`
	DiagramCacheSize int    `toml:"diagram_cache"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:         "info",
		Addr:             ":8080",
		MaxInput:         errs.DefaultMaxTextLength,
		DiagramCacheSize: 128,
	}
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Load resolves the configuration. Precedence, lowest first:
//  1. built-in defaults
//  2. the TOML file named by CIPHERSTACK_CONFIG, or
//     $XDG_CONFIG_HOME/cipherstack/config.toml when unset
//  3. environment variables, including any loaded from ./.env
//
// A .env file never overrides variables already set in the environment.
// A missing config file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := strings.TrimSpace(os.Getenv(EnvConfig))
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			path = ""
		}
	}
	if path != "" {
		if err := loadFile(&cfg, path, explicit); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the XDG config file location
// (~/.config/cipherstack/config.toml).
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// fileConfig uses pointers so absent keys leave defaults untouched.
type fileConfig struct {
	LogLevel         *string `toml:"log_level"`
	Addr             *string `toml:"addr"`
	MaxInput         *int    `toml:"max_input"`
	DiagramCacheSize *int    `toml:"diagram_cache"`
}

func loadFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}

	if fc.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*fc.LogLevel)
	}
	if fc.Addr != nil {
		cfg.Addr = strings.TrimSpace(*fc.Addr)
	}
	if fc.MaxInput != nil {
		cfg.MaxInput = *fc.MaxInput
	}
	if fc.DiagramCacheSize != nil {
		cfg.DiagramCacheSize = *fc.DiagramCacheSize
	}
	return cfg.validate()
}

func applyEnvOverrides(cfg *Config) error {
	if val := strings.TrimSpace(os.Getenv(EnvLogLevel)); val != "" {
		cfg.LogLevel = val
	}
	if val := strings.TrimSpace(os.Getenv(EnvAddr)); val != "" {
		cfg.Addr = val
	}
	if val := strings.TrimSpace(os.Getenv(EnvMaxInput)); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvMaxInput, val)
		}
		cfg.MaxInput = n
	}
	if val := strings.TrimSpace(os.Getenv(EnvCacheSize)); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvCacheSize, val)
		}
		cfg.DiagramCacheSize = n
	}
	return cfg.validate()
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.MaxInput <= 0 {
		return fmt.Errorf("max input must be positive, got %d", c.MaxInput)
	}
	if c.DiagramCacheSize < 0 {
		return fmt.Errorf("diagram cache size must not be negative, got %d", c.DiagramCacheSize)
	}
	return nil
}
