// internal/config/config.go
//
// Settings for the feedback server and CLI.
// Values are merged in order: defaults <- YAML file <- environment.
//
// Environment variables:
//   FEEDBACK_CONFIG=/path/to/feedback.yaml   optional settings file
//   PORT, LOG_LEVEL, CLIENT_ORIGIN, WORD_LENGTH,
//   BATCH_MAX, BATCH_WORKERS, HANDLER_TIMEOUT
//
// The result is validated once and handed to callers by value; nothing in
// this package is mutable at runtime.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
	"github.com/robalobadob/wordle/apps/feedback/internal/render"
)

// Config is the effective runtime configuration.
type Config struct {
	Port           string        `yaml:"port"`
	LogLevel       string        `yaml:"logLevel"`
	ClientOrigin   string        `yaml:"clientOrigin"`
	WordLength     int           `yaml:"wordLength"`
	BatchMax       int           `yaml:"batchMax"`
	BatchWorkers   int           `yaml:"batchWorkers"`
	HandlerTimeout time.Duration `yaml:"handlerTimeout"`
	Glyphs         render.Glyphs `yaml:"glyphs"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Port:           "5175",
		LogLevel:       "info",
		ClientOrigin:   "http://localhost:5173",
		WordLength:     feedback.DefaultWordLength,
		BatchMax:       256,
		BatchWorkers:   8,
		HandlerTimeout: 10 * time.Second,
		Glyphs:         render.DefaultGlyphs,
	}
}

// Load builds the effective config from defaults, the optional file named
// by FEEDBACK_CONFIG, and the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("FEEDBACK_CONFIG"); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		mergeFile(&cfg, fileCfg)
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile parses a YAML settings file. Unset keys stay zero.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Port != "" {
		dst.Port = src.Port
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.ClientOrigin != "" {
		dst.ClientOrigin = src.ClientOrigin
	}
	if src.WordLength != 0 {
		dst.WordLength = src.WordLength
	}
	if src.BatchMax != 0 {
		dst.BatchMax = src.BatchMax
	}
	if src.BatchWorkers != 0 {
		dst.BatchWorkers = src.BatchWorkers
	}
	if src.HandlerTimeout != 0 {
		dst.HandlerTimeout = src.HandlerTimeout
	}
	if src.Glyphs.Hit != "" {
		dst.Glyphs.Hit = src.Glyphs.Hit
	}
	if src.Glyphs.Present != "" {
		dst.Glyphs.Present = src.Glyphs.Present
	}
	if src.Glyphs.Miss != "" {
		dst.Glyphs.Miss = src.Glyphs.Miss
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CLIENT_ORIGIN"); v != "" {
		cfg.ClientOrigin = v
	}
	if err := envInt("WORD_LENGTH", &cfg.WordLength); err != nil {
		return err
	}
	if err := envInt("BATCH_MAX", &cfg.BatchMax); err != nil {
		return err
	}
	if err := envInt("BATCH_WORKERS", &cfg.BatchWorkers); err != nil {
		return err
	}
	if v := os.Getenv("HANDLER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: HANDLER_TIMEOUT=%q: %w", v, err)
		}
		cfg.HandlerTimeout = d
	}
	return nil
}

// envInt overwrites *dst with the integer value of k when k is set.
func envInt(k string, dst *int) error {
	v := os.Getenv(k)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", k, v, err)
	}
	*dst = n
	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("config: wordLength %d: %w", c.WordLength, feedback.ErrWordLength)
	}
	if c.BatchMax < 1 {
		return errors.New("config: batchMax must be positive")
	}
	if c.BatchWorkers < 1 {
		return errors.New("config: batchWorkers must be positive")
	}
	if c.HandlerTimeout <= 0 {
		return errors.New("config: handlerTimeout must be positive")
	}
	if c.Port == "" {
		return errors.New("config: port is empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: logLevel: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
