package config

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tincture/internal/contrast"
)

// Flag names shared by the commands.
const (
	FlagLevel         = "level"
	FlagAlgorithm     = "algorithm"
	FlagPrecision     = "precision"
	FlagMaxIterations = "max-iterations"
	FlagWorkers       = "workers"
	FlagFormat        = "format"
	FlagPreview       = "preview"
)

// BindLevelFlag registers --level/-l.
func BindLevelFlag(fs *pflag.FlagSet) {
	fs.StringP(FlagLevel, "l", string(contrast.LevelAA), "target WCAG level (AA, AAA)")
}

// BindSearchFlags registers the flags that tune the fix search.
func BindSearchFlags(fs *pflag.FlagSet) {
	fs.String(FlagAlgorithm, string(contrast.AlgorithmWCAG2), "contrast algorithm (wcag2)")
	fs.Float64(FlagPrecision, contrast.DefaultPrecision, "lightness precision at which the fix search stops")
	fs.Int(FlagMaxIterations, contrast.DefaultMaxIterations, "maximum bisection steps per search direction")
}

// BindOutputFlags registers --format and --preview. A bare --preview means
// "always".
func BindOutputFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagFormat, "f", FormatTable, "output format (table, json, yaml)")
	fs.String(FlagPreview, PreviewAuto, "colour swatches in table output (auto, always, never)")
	fs.Lookup(FlagPreview).NoOptDefVal = PreviewAlways
}

// BindWorkersFlag registers --workers/-w.
func BindWorkersFlag(fs *pflag.FlagSet) {
	fs.IntP(FlagWorkers, "w", 1, "matrix rows computed concurrently")
}

// ApplyFlags overlays every flag in fs that the user set explicitly.
// Flags that were not registered on fs are skipped.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool {
		return err == nil && fs.Lookup(name) != nil && fs.Changed(name)
	}

	if changed(FlagLevel) {
		var v string
		v, err = fs.GetString(FlagLevel)
		c.Level = contrast.Level(v)
	}
	if changed(FlagAlgorithm) {
		var v string
		v, err = fs.GetString(FlagAlgorithm)
		c.Algorithm = contrast.Algorithm(v)
	}
	if changed(FlagPrecision) {
		c.Precision, err = fs.GetFloat64(FlagPrecision)
	}
	if changed(FlagMaxIterations) {
		c.MaxIterations, err = fs.GetInt(FlagMaxIterations)
	}
	if changed(FlagWorkers) {
		c.Workers, err = fs.GetInt(FlagWorkers)
	}
	if changed(FlagFormat) {
		c.Format, err = fs.GetString(FlagFormat)
	}
	if changed(FlagPreview) {
		c.Preview, err = fs.GetString(FlagPreview)
	}

	return err
}
