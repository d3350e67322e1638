// Package config holds tincture's runtime settings and resolves them from
// defaults, a .env file, TINCTURE_* environment variables and command flags,
// in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/tincture/internal/contrast"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TINCTURE_"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Preview modes for terminal colour swatches.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// ErrInvalidConfig wraps every validation failure that is not a level or
// algorithm error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved set of settings for a run.
type Config struct {
	Level         contrast.Level
	Algorithm     contrast.Algorithm
	Precision     float64
	MaxIterations int
	Workers       int
	Format        string
	Preview       string
	LogLevel      string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Level:         contrast.LevelAA,
		Algorithm:     contrast.AlgorithmWCAG2,
		Precision:     contrast.DefaultPrecision,
		MaxIterations: contrast.DefaultMaxIterations,
		Workers:       1,
		Format:        FormatTable,
		Preview:       PreviewAuto,
	}
}

// Load returns the defaults overlaid with the given .env files (".env" when
// none are named) and then the process environment. Missing .env files are
// ignored. Variables already present in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Default()
	if err := cfg.FromEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv overlays TINCTURE_* variables read through getenv. Empty values
// leave the current setting untouched.
func (c *Config) FromEnv(getenv func(string) string) error {
	get := func(name string) string {
		return strings.TrimSpace(getenv(EnvPrefix + name))
	}

	if v := get("LEVEL"); v != "" {
		c.Level = contrast.Level(v)
	}
	if v := get("ALGORITHM"); v != "" {
		c.Algorithm = contrast.Algorithm(v)
	}
	if v := get("FORMAT"); v != "" {
		c.Format = v
	}
	if v := get("PREVIEW"); v != "" {
		c.Preview = v
	}
	if v := get("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	if v := get("PRECISION"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %sPRECISION: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Precision = f
	}
	if v := get("MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_ITERATIONS: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.MaxIterations = n
	}
	if v := get("WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sWORKERS: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Workers = n
	}

	return nil
}

// Validate normalises the level and algorithm names and checks every
// setting. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if level, err := contrast.ParseLevel(string(c.Level)); err != nil {
		errs = append(errs, fmt.Errorf("level: %w", err))
	} else {
		c.Level = level
	}

	if algo, err := contrast.ParseAlgorithm(string(c.Algorithm)); err != nil {
		errs = append(errs, fmt.Errorf("algorithm: %w", err))
	} else {
		c.Algorithm = algo
	}

	if c.Precision <= 0 || c.Precision >= 1 {
		errs = append(errs, fmt.Errorf("%w: precision must be in (0, 1), got %v", ErrInvalidConfig, c.Precision))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("%w: max iterations must be > 0, got %d", ErrInvalidConfig, c.MaxIterations))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers))
	}

	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown format %q (valid: table, json, yaml)", ErrInvalidConfig, c.Format))
	}

	c.Preview = strings.ToLower(c.Preview)
	switch c.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown preview mode %q (valid: auto, always, never)", ErrInvalidConfig, c.Preview))
	}

	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		errs = append(errs, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel))
	}

	return errors.Join(errs...)
}

// LogLevelOr returns the configured log level, or fallback when none is set.
func (c Config) LogLevelOr(fallback hclog.Level) hclog.Level {
	if c.LogLevel == "" {
		return fallback
	}
	if level := hclog.LevelFromString(c.LogLevel); level != hclog.NoLevel {
		return level
	}
	return fallback
}

// Fixer returns a search configured from c.
func (c Config) Fixer(logger hclog.Logger) *contrast.Fixer {
	return &contrast.Fixer{
		Precision:     c.Precision,
		MaxIterations: c.MaxIterations,
		Logger:        logger,
	}
}

// Calculator returns a result builder using c's search settings.
func (c Config) Calculator(logger hclog.Logger) *contrast.Calculator {
	return contrast.NewCalculator(c.Fixer(logger))
}
