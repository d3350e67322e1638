package contrast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildResult(t *testing.T) {
	tests := []struct {
		name           string
		fgID, fgHex    string
		bgID, bgHex    string
		level          Level
		wantRatio      float64
		wantSuggestion bool
	}{
		{name: "passing pair", fgID: "a", fgHex: "000000", bgID: "b", bgHex: "FFFFFF", level: LevelAA, wantRatio: 21},
		{name: "failing pair gets a fix", fgID: "a", fgHex: "D1D5DB", bgID: "b", bgHex: "FFFFFF", level: LevelAA, wantRatio: 1.47, wantSuggestion: true},
		{name: "AA pass but AAA fail", fgID: "a", fgHex: "767676", bgID: "b", bgHex: "FFFFFF", level: LevelAAA, wantRatio: 4.54, wantSuggestion: true},
		{name: "self pair never suggests", fgID: "a", fgHex: "D1D5DB", bgID: "a", bgHex: "FFFFFF", level: LevelAA, wantRatio: 1.47},
		{name: "unreachable has no suggestion", fgID: "a", fgHex: "777777", bgID: "b", bgHex: "808080", level: LevelAAA, wantRatio: 1.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildResult(tt.fgID, tt.fgHex, tt.bgID, tt.bgHex, tt.level)
			if got.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v, want %v", got.Ratio, tt.wantRatio)
			}
			if got.HasSuggestion() != tt.wantSuggestion {
				t.Errorf("HasSuggestion() = %v (%q), want %v", got.HasSuggestion(), got.Suggestion, tt.wantSuggestion)
			}
			if got.HasSuggestion() && Ratio(got.Suggestion, tt.bgHex) < tt.level.TargetRatio() {
				t.Errorf("suggestion %s does not reach %v", got.Suggestion, tt.level.TargetRatio())
			}
		})
	}
}

func TestBuildResultNormalisesHex(t *testing.T) {
	got := BuildResult("fg", "#abc", "bg", "fff", LevelAA)
	if got.ForegroundHex != "AABBCC" || got.BackgroundHex != "FFFFFF" {
		t.Errorf("hex = %s / %s, want AABBCC / FFFFFF", got.ForegroundHex, got.BackgroundHex)
	}
}

func TestResultIsSelfPair(t *testing.T) {
	// Same hex, different identity: not a self pair.
	r := BuildResult("a", "FFFFFF", "b", "FFFFFF", LevelAA)
	if r.IsSelfPair() {
		t.Error("different ids reported as self pair")
	}
	if r.Ratio != 1 {
		t.Errorf("Ratio = %v, want 1", r.Ratio)
	}

	self := BuildResult("a", "FFFFFF", "a", "FFFFFF", LevelAA)
	if !self.IsSelfPair() {
		t.Error("identical ids not reported as self pair")
	}
}

func TestResultPasses(t *testing.T) {
	r := BuildResult("a", "767676", "b", "FFFFFF", LevelAA)
	if !r.Passes(LevelAA) {
		t.Error("expected AA pass")
	}
	if r.Passes(LevelAAA) {
		t.Error("expected AAA fail")
	}
}

func TestCalculatorUsesFixer(t *testing.T) {
	coarse := NewCalculator(&Fixer{Precision: 0.25, MaxIterations: 1})
	fine := NewCalculator(nil)

	c := coarse.BuildResult("a", "D1D5DB", "b", "FFFFFF", LevelAA)
	f := fine.BuildResult("a", "D1D5DB", "b", "FFFFFF", LevelAA)
	if !c.HasSuggestion() || !f.HasSuggestion() {
		t.Fatalf("expected suggestions, got %q and %q", c.Suggestion, f.Suggestion)
	}
	if c.Suggestion == f.Suggestion {
		t.Errorf("coarse and fine searches agreed on %s; fixer settings ignored", c.Suggestion)
	}
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(BuildResult("a", "000000", "b", "FFFFFF", LevelAA))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{`"ratio":21`, `"passes_aa":true`, `"passes_ui_component":true`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON %s missing %s", out, want)
		}
	}
	if strings.Contains(out, "suggestion") {
		t.Errorf("JSON %s should omit empty suggestion", out)
	}
}
