package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tincture/internal/contrast"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, contrast.LevelAA, cfg.Level)
	assert.Equal(t, contrast.DefaultPrecision, cfg.Precision)
	assert.Equal(t, contrast.DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, FormatTable, cfg.Format)
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	err := cfg.FromEnv(envMap(map[string]string{
		"TINCTURE_LEVEL":          "aaa",
		"TINCTURE_PRECISION":      "0.01",
		"TINCTURE_MAX_ITERATIONS": "20",
		"TINCTURE_WORKERS":        " 4 ",
		"TINCTURE_FORMAT":         "JSON",
		"TINCTURE_PREVIEW":        "never",
		"TINCTURE_LOG_LEVEL":      "trace",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, contrast.LevelAAA, cfg.Level)
	assert.Equal(t, 0.01, cfg.Precision)
	assert.Equal(t, 20, cfg.MaxIterations)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, PreviewNever, cfg.Preview)
	assert.Equal(t, hclog.Trace, cfg.LogLevelOr(hclog.Warn))
}

func TestFromEnvEmptyKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.FromEnv(envMap(nil)))
	assert.Equal(t, Default(), cfg)
}

func TestFromEnvBadNumbers(t *testing.T) {
	for _, key := range []string{"TINCTURE_PRECISION", "TINCTURE_MAX_ITERATIONS", "TINCTURE_WORKERS"} {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := cfg.FromEnv(envMap(map[string]string{key: "lots"}))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "unknown level", mutate: func(c *Config) { c.Level = "AAAA" }, wantErr: contrast.ErrUnknownLevel},
		{name: "apca reserved", mutate: func(c *Config) { c.Algorithm = contrast.AlgorithmAPCA }, wantErr: contrast.ErrUnsupportedAlgorithm},
		{name: "zero precision", mutate: func(c *Config) { c.Precision = 0 }, wantErr: ErrInvalidConfig},
		{name: "precision too large", mutate: func(c *Config) { c.Precision = 1 }, wantErr: ErrInvalidConfig},
		{name: "zero iterations", mutate: func(c *Config) { c.MaxIterations = 0 }, wantErr: ErrInvalidConfig},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: ErrInvalidConfig},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: ErrInvalidConfig},
		{name: "unknown preview", mutate: func(c *Config) { c.Preview = "sometimes" }, wantErr: ErrInvalidConfig},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Level = "B"
	cfg.Workers = -2
	err := cfg.Validate()
	assert.ErrorIs(t, err, contrast.ErrUnknownLevel)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindLevelFlag(fs)
	BindSearchFlags(fs)
	BindOutputFlags(fs)
	BindWorkersFlag(fs)
	require.NoError(t, fs.Parse([]string{"-l", "AAA", "--workers", "8", "--preview"}))

	cfg := Default()
	cfg.Format = FormatYAML // from env; --format was not passed
	require.NoError(t, cfg.ApplyFlags(fs))

	assert.Equal(t, contrast.LevelAAA, cfg.Level)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, PreviewAlways, cfg.Preview)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, contrast.DefaultPrecision, cfg.Precision)
}

func TestApplyFlagsSkipsUnregistered(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindLevelFlag(fs)
	require.NoError(t, fs.Parse(nil))

	cfg := Default()
	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TINCTURE_WORKERS=3\nTINCTURE_LEVEL=AAA\n"), 0o600))

	// Real environment wins over the file.
	t.Setenv("TINCTURE_LEVEL", "AA")
	t.Cleanup(func() { os.Unsetenv("TINCTURE_WORKERS") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, contrast.LevelAA, cfg.Level)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestFixerAndCalculator(t *testing.T) {
	cfg := Default()
	cfg.Precision = 0.05
	cfg.MaxIterations = 7

	f := cfg.Fixer(nil)
	assert.Equal(t, 0.05, f.Precision)
	assert.Equal(t, 7, f.MaxIterations)

	r := cfg.Calculator(nil).BuildResult("a", "D1D5DB", "b", "FFFFFF", contrast.LevelAA)
	require.True(t, r.HasSuggestion())
	assert.GreaterOrEqual(t, contrast.Ratio(r.Suggestion, "FFFFFF"), contrast.ThresholdAA)
}
