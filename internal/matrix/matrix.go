// Package matrix builds the all-pairs contrast matrix for a palette and
// summarises how many pairings pass the active target level.
package matrix

import (
	"math"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/tincture/internal/contrast"
)

// Entry is one colour taking part in a matrix. ID is the colour's identity;
// two entries may share a Hex without being the same colour.
type Entry struct {
	ID  string `json:"id" yaml:"id" toml:"id"`
	Hex string `json:"hex" yaml:"hex" toml:"hex"`
}

// Summary counts passing and failing pairs, excluding self-pairs.
type Summary struct {
	Total             int `json:"total" yaml:"total"`
	Passing           int `json:"passing" yaml:"passing"`
	Failing           int `json:"failing" yaml:"failing"`
	PercentagePassing int `json:"percentage_passing" yaml:"percentage_passing"`
}

// Builder computes contrast matrices.
type Builder struct {
	// Calculator produces each result. Nil uses the default search settings.
	Calculator *contrast.Calculator

	// Workers bounds how many rows are computed at once. Values below 2
	// build sequentially.
	Workers int

	// Logger receives debug output. Nil disables logging.
	Logger hclog.Logger
}

// Build returns one result for every ordered pair of colours, self-pairs
// included, in foreground-major order: the result for colours[i] on
// colours[j] is at index i*len(colours)+j.
//
// Build never fails. Colours are expected to have been validated upstream;
// an invalid hex simply yields a ratio of 1 and no suggestion.
func (b *Builder) Build(colours []Entry, level contrast.Level) []contrast.Result {
	n := len(colours)
	results := make([]contrast.Result, n*n)
	calc := b.Calculator
	if calc == nil {
		calc = contrast.NewCalculator(nil)
	}

	row := func(i int) {
		fg := colours[i]
		for j, bg := range colours {
			results[i*n+j] = calc.BuildResult(fg.ID, fg.Hex, bg.ID, bg.Hex, level)
		}
	}

	if b.Workers < 2 || n < 2 {
		for i := range colours {
			row(i)
		}
	} else {
		// Rows write disjoint slices of results, so no locking is needed.
		var g errgroup.Group
		g.SetLimit(b.Workers)
		for i := range colours {
			i := i
			g.Go(func() error {
				row(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	if b.Logger != nil {
		s := Summarize(results, level)
		b.Logger.Debug("built contrast matrix", "colours", n, "level", level,
			"passing", s.Passing, "failing", s.Failing)
	}

	return results
}

// Build computes a matrix sequentially with the default search settings.
func Build(colours []Entry, level contrast.Level) []contrast.Result {
	var b Builder
	return b.Build(colours, level)
}

// Lookup finds the result for the ordered (fgID, bgID) pair.
func Lookup(m []contrast.Result, fgID, bgID string) (contrast.Result, bool) {
	for _, r := range m {
		if r.ForegroundID == fgID && r.BackgroundID == bgID {
			return r, true
		}
	}
	return contrast.Result{}, false
}

// Summarize counts passing and failing pairs against level, ignoring
// self-pairs. PercentagePassing is rounded to the nearest integer and is 0
// for an empty or single-colour matrix.
func Summarize(m []contrast.Result, level contrast.Level) Summary {
	var s Summary
	for _, r := range m {
		if r.IsSelfPair() {
			continue
		}
		s.Total++
		if r.Passes(level) {
			s.Passing++
		}
	}
	s.Failing = s.Total - s.Passing

	if s.Total > 0 {
		s.PercentagePassing = int(math.Round(float64(s.Passing) / float64(s.Total) * 100))
	}

	return s
}

// Failing returns the non-self results that fail level, in matrix order.
func Failing(m []contrast.Result, level contrast.Level) []contrast.Result {
	var failing []contrast.Result
	for _, r := range m {
		if !r.IsSelfPair() && !r.Passes(level) {
			failing = append(failing, r)
		}
	}
	return failing
}
