package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/internal/pointio"
	"github.com/hupe1980/kmeans/random"
)

// Config holds the settings of a clustering run.
//
// Values are resolved in order: DefaultConfig, the YAML file, KMEANS_*
// environment variables, then command-line flags.
//
// Example YAML:
//
//	k: 3
//	init: kmeans++
//	seed: 42
//	max_iterations: 200
//	empty_clusters: reseed
//	output: json
//	log:
//	  level: debug
//	  format: json
type Config struct {
	K             int       `yaml:"k"`
	Init          string    `yaml:"init"`
	Seed          uint64    `yaml:"seed"`
	Random        bool      `yaml:"random"`
	MaxIterations int       `yaml:"max_iterations"`
	EmptyClusters string    `yaml:"empty_clusters"`
	Format        string    `yaml:"format"`
	Codec         string    `yaml:"codec"`
	Output        string    `yaml:"output"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in defaults. Runs are reproducible unless
// Random is set.
func DefaultConfig() *Config {
	return &Config{
		Init:          kmeans.InitKMeansPP.String(),
		Seed:          random.DefaultSeed,
		MaxIterations: kmeans.DefaultMaxIterations,
		EmptyClusters: kmeans.EmptyKeep.String(),
		Format:        "auto",
		Codec:         codec.Default.Name(),
		Output:        "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with KMEANS_* environment variables.
func (c *Config) ApplyEnv() error {
	var errs []error

	if v := os.Getenv("KMEANS_K"); v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr("KMEANS_K", err))
		c.K = n
	}
	if v := os.Getenv("KMEANS_INIT"); v != "" {
		c.Init = v
	}
	if v := os.Getenv("KMEANS_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 0, 64)
		errs = append(errs, envErr("KMEANS_SEED", err))
		c.Seed = n
	}
	if v := os.Getenv("KMEANS_RANDOM"); v != "" {
		c.Random = parseBool(v, c.Random)
	}
	if v := os.Getenv("KMEANS_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr("KMEANS_MAX_ITERATIONS", err))
		c.MaxIterations = n
	}
	if v := os.Getenv("KMEANS_EMPTY_CLUSTERS"); v != "" {
		c.EmptyClusters = v
	}
	if v := os.Getenv("KMEANS_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("KMEANS_CODEC"); v != "" {
		c.Codec = v
	}
	if v := os.Getenv("KMEANS_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("KMEANS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("KMEANS_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	return errors.Join(errs...)
}

func envErr(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", key, err)
}

// parseBool parses a boolean from string with a default value.
func parseBool(s string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultVal
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.K <= 0 {
		errs = append(errs, fmt.Errorf("k must be positive, got %d", c.K))
	}
	if _, err := kmeans.ParseInitMethod(c.Init); err != nil {
		errs = append(errs, err)
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations))
	}
	if _, err := kmeans.ParseEmptyClusterPolicy(c.EmptyClusters); err != nil {
		errs = append(errs, err)
	}
	if _, err := pointio.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		errs = append(errs, fmt.Errorf("unknown codec %q (want one of %s)", c.Codec, strings.Join(codec.Names(), ", ")))
	}
	switch c.Output {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown output %q (want text or json)", c.Output))
	}
	if _, err := c.logLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (c *Config) logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// Options converts a validated Config into clusterer options.
func (c *Config) Options() ([]kmeans.Option, error) {
	method, err := kmeans.ParseInitMethod(c.Init)
	if err != nil {
		return nil, err
	}
	policy, err := kmeans.ParseEmptyClusterPolicy(c.EmptyClusters)
	if err != nil {
		return nil, err
	}

	return []kmeans.Option{
		kmeans.WithK(c.K),
		kmeans.WithInitMethod(method),
		kmeans.WithSeed(c.Seed),
		kmeans.WithRandom(c.Random),
		kmeans.WithMaxIterations(c.MaxIterations),
		kmeans.WithEmptyClusterPolicy(policy),
	}, nil
}

// String returns a compact representation of the Config for logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{K: %d, Init: %s, Seed: %d, Random: %v, MaxIterations: %d, EmptyClusters: %s, Output: %s}",
		c.K, c.Init, c.Seed, c.Random, c.MaxIterations, c.EmptyClusters, c.Output,
	)
}
