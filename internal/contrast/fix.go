package contrast

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Search defaults.
const (
	DefaultPrecision     = 0.001
	DefaultMaxIterations = 50
)

// direction is the way lightness moves during a search.
type direction int

const (
	darken direction = iota
	lighten
)

func (d direction) String() string {
	if d == darken {
		return "darken"
	}
	return "lighten"
}

func (d direction) opposite() direction {
	if d == darken {
		return lighten
	}
	return darken
}

// Fixer searches for the nearest accessible replacement for a foreground
// colour by adjusting OKLCH lightness only. Chroma and hue are held fixed.
// Zero or negative fields fall back to the defaults.
type Fixer struct {
	// Precision is the lightness interval width at which the search stops.
	Precision float64

	// MaxIterations caps the number of bisection steps per direction.
	MaxIterations int

	// Logger receives trace output. Nil disables logging.
	Logger hclog.Logger
}

// DefaultFixer returns a Fixer with the default precision and iteration cap.
func DefaultFixer() *Fixer {
	return &Fixer{
		Precision:     DefaultPrecision,
		MaxIterations: DefaultMaxIterations,
	}
}

// FindFix returns the foreground colour closest in lightness to fgHex that
// reaches target against bgHex, in canonical hex form.
//
// If the pair already passes, the normalised foreground is returned as is.
// The boolean is false when either colour cannot be parsed or when no
// lightness in [0, 1] reaches the target within the sRGB gamut; callers
// should treat that as "unreachable", not as an error.
func (f *Fixer) FindFix(fgHex, bgHex string, target float64) (string, bool) {
	log := f.logger()

	fgRGB, err := colour.ParseHex(fgHex)
	if err != nil {
		log.Trace("foreground is not a colour", "foreground", fgHex)
		return "", false
	}
	bgRGB, err := colour.ParseHex(bgHex)
	if err != nil {
		log.Trace("background is not a colour", "background", bgHex)
		return "", false
	}

	if rgbRatio(fgRGB, bgRGB) >= target {
		return fgRGB.Hex(), true
	}

	fg := colour.ToOKLCH(fgRGB)
	bg := colour.ToOKLCH(bgRGB)

	// Move away from the background first: a lighter foreground gets lighter.
	primary := darken
	if fg.L > bg.L {
		primary = lighten
	}

	for _, dir := range []direction{primary, primary.opposite()} {
		candidate, ok := f.search(fg, bgRGB, target, dir)
		if !ok {
			log.Trace("no fix in direction", "foreground", fgRGB.Hex(), "background", bgRGB.Hex(),
				"target", target, "direction", dir)
			continue
		}

		// The candidate was measured after gamut clamping; confirm the
		// rounded ratio once more before handing it out.
		hex := candidate.Hex()
		if Ratio(hex, bgRGB.Hex()) < target {
			log.Trace("fix fell short after clamping", "candidate", hex, "target", target)
			return "", false
		}

		log.Trace("found fix", "foreground", fgRGB.Hex(), "background", bgRGB.Hex(),
			"target", target, "direction", dir, "fix", hex)
		return hex, true
	}

	return "", false
}

// search bisects lightness between the original and the extreme in dir.
// Passing midpoints pull the search back toward the original lightness so
// the smallest adjustment wins; failing midpoints push it toward the extreme.
func (f *Fixer) search(fg colour.OKLCH, bg colour.RGB, target float64, dir direction) (colour.RGB, bool) {
	low, high := fg.L, 1.0
	if dir == darken {
		low, high = 0.0, fg.L
	}

	var (
		best  colour.RGB
		found bool
	)

	for i := 0; i < f.maxIterations() && high-low >= f.precision(); i++ {
		mid := (low + high) / 2
		candidate := fg.WithLightness(mid)
		rgb := candidate.RGB()
		passes := rgbRatio(rgb, bg) >= target

		if passes {
			best, found = rgb, true
		}

		// Passing moves the bound nearest the original; failing moves the far one.
		switch {
		case dir == darken && passes:
			low = mid
		case dir == darken:
			high = mid
		case passes:
			high = mid
		default:
			low = mid
		}

		if passes && !candidate.InGamut() {
			f.logger().Trace("candidate clamped to gamut", "lightness", mid, "rgb", rgb.Hex())
		}
	}

	return best, found
}

func (f *Fixer) precision() float64 {
	if f.Precision <= 0 {
		return DefaultPrecision
	}
	return f.Precision
}

func (f *Fixer) maxIterations() int {
	if f.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return f.MaxIterations
}

func (f *Fixer) logger() hclog.Logger {
	if f.Logger == nil {
		return hclog.NewNullLogger()
	}
	return f.Logger
}

// FindFix searches with the default settings. See Fixer.FindFix.
func FindFix(fgHex, bgHex string, target float64) (string, bool) {
	return DefaultFixer().FindFix(fgHex, bgHex, target)
}
