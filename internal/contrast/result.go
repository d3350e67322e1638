package contrast

import (
	"github.com/jmylchreest/tincture/internal/hexcolour"
)

// Result is the contrast record for one ordered foreground/background pair.
type Result struct {
	ForegroundID  string  `json:"foreground_id" yaml:"foreground_id"`
	ForegroundHex string  `json:"foreground_hex" yaml:"foreground_hex"`
	BackgroundID  string  `json:"background_id" yaml:"background_id"`
	BackgroundHex string  `json:"background_hex" yaml:"background_hex"`
	Ratio         float64 `json:"ratio" yaml:"ratio"`
	Evaluation    `yaml:",inline"`

	// Suggestion is a replacement foreground that passes the active level.
	// Empty when the pair already passes, is a self-pair, or no lightness
	// adjustment can reach the target.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// IsSelfPair reports whether both sides are the same colour instance.
// Identity, not value, decides: two entries sharing a hex are not a self-pair.
func (r Result) IsSelfPair() bool {
	return r.ForegroundID == r.BackgroundID
}

// HasSuggestion reports whether a fix was found for the pair.
func (r Result) HasSuggestion() bool {
	return r.Suggestion != ""
}

// Passes reports whether the pair meets the level's normal-text threshold.
func (r Result) Passes(level Level) bool {
	return level.Passes(r.Evaluation)
}

// Calculator composes ratios, evaluations and fix suggestions.
type Calculator struct {
	fixer *Fixer
}

// NewCalculator creates a Calculator that suggests fixes with the given
// Fixer. A nil Fixer uses DefaultFixer.
func NewCalculator(fixer *Fixer) *Calculator {
	if fixer == nil {
		fixer = DefaultFixer()
	}
	return &Calculator{fixer: fixer}
}

// BuildResult computes the result for one ordered pair. When the pair fails
// the level and is not a self-pair, the foreground is searched for the
// nearest colour meeting level.TargetRatio().
func (c *Calculator) BuildResult(fgID, fgHex, bgID, bgHex string, level Level) Result {
	ratio := Ratio(fgHex, bgHex)
	result := Result{
		ForegroundID:  fgID,
		ForegroundHex: canonical(fgHex),
		BackgroundID:  bgID,
		BackgroundHex: canonical(bgHex),
		Ratio:         ratio,
		Evaluation:    Evaluate(ratio),
	}

	if result.IsSelfPair() || result.Passes(level) {
		return result
	}

	if fix, ok := c.fixer.FindFix(fgHex, bgHex, level.TargetRatio()); ok {
		result.Suggestion = fix
	}

	return result
}

// BuildResult computes a Result using the default search settings.
func BuildResult(fgID, fgHex, bgID, bgHex string, level Level) Result {
	return NewCalculator(nil).BuildResult(fgID, fgHex, bgID, bgHex, level)
}

// canonical normalises a hex for display in results, leaving invalid input
// untouched so the caller can see what was passed in.
func canonical(hex string) string {
	if normalised, ok := hexcolour.Normalize(hex); ok {
		return normalised
	}
	return hex
}
