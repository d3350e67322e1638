package contrast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/colour"
)

func lightness(t *testing.T, hex string) float64 {
	t.Helper()
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q) error = %v", hex, err)
	}
	return colour.ToOKLCH(rgb).L
}

func TestFindFixDarkensLightGreyOnWhite(t *testing.T) {
	if r := Ratio("D1D5DB", "FFFFFF"); r >= 4.5 {
		t.Fatalf("precondition: Ratio(D1D5DB, FFFFFF) = %v, want < 4.5", r)
	}

	fix, ok := FindFix("D1D5DB", "FFFFFF", 4.5)
	if !ok {
		t.Fatal("FindFix returned no fix")
	}
	if r := Ratio(fix, "FFFFFF"); r < 4.5 {
		t.Errorf("Ratio(%s, FFFFFF) = %v, want >= 4.5", fix, r)
	}
	if lightness(t, fix) >= lightness(t, "D1D5DB") {
		t.Errorf("fix %s is not darker than D1D5DB", fix)
	}
}

func TestFindFixLightensOnDarkBackground(t *testing.T) {
	fix, ok := FindFix("555555", "333333", 4.5)
	if !ok {
		t.Fatal("FindFix returned no fix")
	}
	if r := Ratio(fix, "333333"); r < 4.5 {
		t.Errorf("Ratio(%s, 333333) = %v, want >= 4.5", fix, r)
	}
	if lightness(t, fix) <= lightness(t, "555555") {
		t.Errorf("fix %s is not lighter than 555555", fix)
	}
}

func TestFindFixFallsBackToOppositeDirection(t *testing.T) {
	// Lighter than the background, but even white cannot reach 4.5 against
	// 777777, so the only route is down toward black.
	fix, ok := FindFix("808080", "777777", 4.5)
	if !ok {
		t.Fatal("FindFix returned no fix")
	}
	if r := Ratio(fix, "777777"); r < 4.5 {
		t.Errorf("Ratio(%s, 777777) = %v, want >= 4.5", fix, r)
	}
	if lightness(t, fix) >= lightness(t, "777777") {
		t.Errorf("fix %s should be darker than the background", fix)
	}
}

func TestFindFixIdempotent(t *testing.T) {
	tests := []struct {
		fg     string
		bg     string
		target float64
		want   string
	}{
		{fg: "000000", bg: "FFFFFF", target: 4.5, want: "000000"},
		{fg: "#767676", bg: "fff", target: 4.5, want: "767676"},
		{fg: "abc", bg: "000", target: 3, want: "AABBCC"},
	}

	for _, tt := range tests {
		got, ok := FindFix(tt.fg, tt.bg, tt.target)
		if !ok || got != tt.want {
			t.Errorf("FindFix(%q, %q, %v) = %q, %v, want %q, true", tt.fg, tt.bg, tt.target, got, ok, tt.want)
		}
	}
}

func TestFindFixUnreachable(t *testing.T) {
	tests := []struct {
		name   string
		fg     string
		bg     string
		target float64
	}{
		{name: "21 against mid grey", fg: "333333", bg: "808080", target: 21},
		{name: "21 against light grey", fg: "EEEEEE", bg: "AAAAAA", target: 21},
		{name: "AAA against mid grey", fg: "777777", bg: "808080", target: 7},
		{name: "invalid foreground", fg: "zzzzzz", bg: "FFFFFF", target: 4.5},
		{name: "invalid background", fg: "000000", bg: "12", target: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := FindFix(tt.fg, tt.bg, tt.target); ok {
				t.Errorf("FindFix(%q, %q, %v) = %q, want no fix", tt.fg, tt.bg, tt.target, got)
			}
		})
	}
}

func TestFindFixValidity(t *testing.T) {
	hexes := []string{"000000", "FFFFFF", "767676", "D1D5DB", "FF0000", "00FF00", "0000FF", "1E3A8A", "F5A623", "3366CC", "FF6600", "2D2D2D"}
	targets := []float64{3, 4.5, 7}

	for _, fg := range hexes {
		for _, bg := range hexes {
			for _, target := range targets {
				fix, ok := FindFix(fg, bg, target)
				if !ok {
					continue
				}
				if r := Ratio(fix, bg); r < target {
					t.Errorf("FindFix(%s, %s, %v) = %s with ratio %v", fg, bg, target, fix, r)
				}
			}
		}
	}
}

func TestFindFixDeterministic(t *testing.T) {
	first, ok1 := FindFix("FF6600", "FFFFFF", 7)
	for i := 0; i < 10; i++ {
		got, ok := FindFix("FF6600", "FFFFFF", 7)
		if got != first || ok != ok1 {
			t.Fatalf("run %d: FindFix = %q, %v, want %q, %v", i, got, ok, first, ok1)
		}
	}
}

func TestFindFixKeepsHue(t *testing.T) {
	fix, ok := FindFix("38A169", "FFFFFF", 4.5)
	if !ok {
		t.Fatal("FindFix returned no fix")
	}

	orig, _ := colour.ParseHex("38A169")
	got, _ := colour.ParseHex(fix)
	oh := colour.ToOKLCH(orig).H
	gh := colour.ToOKLCH(got).H
	if diff := oh - gh; diff > 2 || diff < -2 {
		t.Errorf("hue drifted from %.1f to %.1f (%s)", oh, gh, fix)
	}
}

func TestFixerZeroValueUsesDefaults(t *testing.T) {
	var f Fixer
	want, _ := FindFix("D1D5DB", "FFFFFF", 4.5)
	got, ok := f.FindFix("D1D5DB", "FFFFFF", 4.5)
	if !ok || got != want {
		t.Errorf("zero Fixer FindFix = %q, %v, want %q", got, ok, want)
	}
}

func TestFixerCoarsePrecisionStillValid(t *testing.T) {
	f := &Fixer{Precision: 0.1, MaxIterations: 3}
	fix, ok := f.FindFix("D1D5DB", "FFFFFF", 4.5)
	if !ok {
		t.Fatal("coarse search found nothing")
	}
	if r := Ratio(fix, "FFFFFF"); r < 4.5 {
		t.Errorf("Ratio(%s, FFFFFF) = %v, want >= 4.5", fix, r)
	}
}

func TestFixerLogsTrace(t *testing.T) {
	var buf bytes.Buffer
	f := DefaultFixer()
	f.Logger = hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &buf,
		Level:  hclog.Trace,
	})

	if _, ok := f.FindFix("D1D5DB", "FFFFFF", 4.5); !ok {
		t.Fatal("FindFix returned no fix")
	}
	if !strings.Contains(buf.String(), "found fix") {
		t.Errorf("expected trace output, got %q", buf.String())
	}
}
