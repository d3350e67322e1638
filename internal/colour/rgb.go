// Package colour provides the colour maths behind tincture: 8-bit sRGB values,
// WCAG relative luminance and contrast, and OKLCH conversions.
package colour

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jmylchreest/tincture/internal/hexcolour"
)

// ErrInvalidHex is returned when a string is not a 3 or 6 digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB represents a colour as 8-bit sRGB channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// ParseHex parses a hex colour string into an RGB value.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(s string) (RGB, error) {
	hex, ok := hexcolour.Normalize(s)
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	// The pattern check guarantees these parse.
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical hex form of the colour (e.g. "1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color with full opacity.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(rgb.R)
	r |= r << 8
	g = uint32(rgb.G)
	g |= g << 8
	b = uint32(rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}
