package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLCH is a colour in the cylindrical form of the OKLab perceptual space.
// L is lightness in [0, 1], C is chroma (0 for greys, roughly 0.4 at most
// inside sRGB) and H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// ToOKLCH converts an sRGB colour to OKLCH.
func ToOKLCH(rgb RGB) OKLCH {
	l, c, h := toColorful(rgb).OkLch()
	return OKLCH{L: l, C: c, H: h}
}

// WithLightness returns a copy with lightness replaced, clamped to [0, 1].
func (o OKLCH) WithLightness(l float64) OKLCH {
	o.L = clamp01(l)
	return o
}

// RGB converts back to 8-bit sRGB. Colours outside the sRGB gamut are
// clamped per channel, so the round trip is lossy for extreme lightness and
// chroma combinations.
func (o OKLCH) RGB() RGB {
	c := colorful.OkLch(clamp01(o.L), o.C, o.H)
	r := clamp01(c.R)
	g := clamp01(c.G)
	b := clamp01(c.B)
	return RGB{
		R: uint8(r*255.0 + 0.5),
		G: uint8(g*255.0 + 0.5),
		B: uint8(b*255.0 + 0.5),
	}
}

// InGamut reports whether the colour is representable in sRGB without clamping.
func (o OKLCH) InGamut() bool {
	return colorful.OkLch(o.L, o.C, o.H).IsValid()
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// clamp01 clamps v to [0, 1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
