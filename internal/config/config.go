package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvFile     = "COLORBALL_CONFIG"
	EnvLogLevel = "COLORBALL_LOG_LEVEL"
	EnvSeed     = "COLORBALL_SEED"
	EnvSound    = "COLORBALL_SOUND"
	EnvScale    = "COLORBALL_SCALE"
)

// Config holds runtime settings. Precedence: defaults < YAML file < environment.
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Seed     uint64  `yaml:"seed"` // 0 draws from system entropy
	Sound    bool    `yaml:"sound"`
	Scale    float64 `yaml:"scale"` // window scale factor
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Sound:    true,
		Scale:    1,
	}
}

// Load reads an optional .env file, then the YAML file named by
// COLORBALL_CONFIG (if set), then individual environment overrides.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Default()
	if path := os.Getenv(EnvFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvSound); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = on
	}
	if v := getenv(EnvScale); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvScale, err)
		}
		c.Scale = s
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Scale <= 0 || c.Scale > 8 {
		return fmt.Errorf("scale %v out of range (0, 8]", c.Scale)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "none", "disabled", "off":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
