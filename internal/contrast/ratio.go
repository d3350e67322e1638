package contrast

import (
	"github.com/jmylchreest/tincture/internal/colour"
)

// Evaluation holds the independent WCAG pass flags for one ratio.
// The flags are separate axes rather than a hierarchy: 3.5 passes AA-large
// but fails AA.
type Evaluation struct {
	PassesAA          bool `json:"passes_aa" yaml:"passes_aa"`
	PassesAAA         bool `json:"passes_aaa" yaml:"passes_aaa"`
	PassesAALarge     bool `json:"passes_aa_large" yaml:"passes_aa_large"`
	PassesUIComponent bool `json:"passes_ui_component" yaml:"passes_ui_component"`
}

// Ratio returns the WCAG contrast ratio between two hex colours, rounded to
// two decimal places. The result is symmetric and lies in [1, 21].
// Unparseable input is treated as having no contrast (1.0); callers are
// expected to validate colours with the hexcolour package beforehand.
func Ratio(fgHex, bgHex string) float64 {
	fg, err := colour.ParseHex(fgHex)
	if err != nil {
		return 1
	}
	bg, err := colour.ParseHex(bgHex)
	if err != nil {
		return 1
	}
	return rgbRatio(fg, bg)
}

func rgbRatio(fg, bg colour.RGB) float64 {
	return colour.RoundRatio(colour.ContrastRatio(fg, bg))
}

// Evaluate compares a ratio against the fixed WCAG thresholds.
func Evaluate(ratio float64) Evaluation {
	return Evaluation{
		PassesAA:          ratio >= ThresholdAA,
		PassesAAA:         ratio >= ThresholdAAA,
		PassesAALarge:     ratio >= ThresholdAALarge,
		PassesUIComponent: ratio >= ThresholdUIComponent,
	}
}
