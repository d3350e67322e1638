// Package contrast implements WCAG 2.x contrast checking and the
// nearest-accessible-colour search used to suggest fixes for failing pairs.
//
// Every function in this package is pure: results depend only on the
// arguments and nothing is cached between calls.
package contrast

import (
	"errors"
	"fmt"
	"strings"
)

// WCAG 2.x thresholds.
const (
	ThresholdAA          = 4.5 // normal text, level AA
	ThresholdAAA         = 7.0 // normal text, level AAA
	ThresholdAALarge     = 3.0 // large text, level AA
	ThresholdUIComponent = 3.0 // non-text UI components and graphics
)

var (
	// ErrUnknownLevel is returned when a target level is neither AA nor AAA.
	ErrUnknownLevel = errors.New("unknown contrast level")

	// ErrUnsupportedAlgorithm is returned for reserved but unimplemented algorithms.
	ErrUnsupportedAlgorithm = errors.New("unsupported contrast algorithm")
)

// Level is the WCAG compliance tier that drives pass/fail judgements and
// fix suggestions.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AA":
		return LevelAA, nil
	case "AAA":
		return LevelAAA, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: AA, AAA)", ErrUnknownLevel, s)
	}
}

// String returns the level name.
func (l Level) String() string {
	return string(l)
}

// TargetRatio returns the normal-text ratio required by the level.
// Unknown levels fall back to AA.
func (l Level) TargetRatio() float64 {
	if l == LevelAAA {
		return ThresholdAAA
	}
	return ThresholdAA
}

// Passes reports whether the evaluation meets the level's normal-text flag.
func (l Level) Passes(e Evaluation) bool {
	if l == LevelAAA {
		return e.PassesAAA
	}
	return e.PassesAA
}

// Algorithm names a contrast algorithm.
type Algorithm string

const (
	// AlgorithmWCAG2 is the WCAG 2.x relative luminance ratio.
	AlgorithmWCAG2 Algorithm = "wcag2"

	// AlgorithmAPCA is reserved; it is not implemented.
	AlgorithmAPCA Algorithm = "apca"
)

// ParseAlgorithm parses an algorithm name. Only WCAG 2 is implemented.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case AlgorithmWCAG2, "wcag", "":
		return AlgorithmWCAG2, nil
	case AlgorithmAPCA:
		return "", fmt.Errorf("%w: %s is not implemented", ErrUnsupportedAlgorithm, AlgorithmAPCA)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}
