package tui

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/scholarmatch/internal/score"
)

func TestPaletteColorsAreValidHex(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	colors := AllPaletteColors()
	if len(colors) != 26 {
		t.Fatalf("palette size = %d, want 26", len(colors))
	}
	seen := map[lipgloss.Color]bool{}
	for _, c := range colors {
		if !hex.MatchString(string(c)) {
			t.Errorf("color %q is not lowercase hex", c)
		}
		if seen[c] {
			t.Errorf("color %q appears twice", c)
		}
		seen[c] = true
	}
}

func TestSemanticAliases(t *testing.T) {
	cases := []struct {
		name  string
		alias lipgloss.Color
		want  lipgloss.Color
	}{
		{"accent", colorAccent, colorPink},
		{"brand", colorBrand, colorPink},
		{"focus", colorFocus, colorLavender},
		{"success", colorSuccess, colorGreen},
		{"error", colorError, colorRed},
		{"warning", colorWarning, colorYellow},
		{"info", colorInfo, colorTeal},
	}
	for _, tc := range cases {
		if tc.alias != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, tc.alias, tc.want)
		}
	}
}

func TestTierColors(t *testing.T) {
	cases := []struct {
		tier score.Tier
		want lipgloss.Color
	}{
		{score.TierSuccess, colorSuccess},
		{score.TierWarning, colorWarning},
		{score.TierSecondary, colorOverlay1},
	}
	for _, tc := range cases {
		if got := tierColor(tc.tier); got != tc.want {
			t.Errorf("tierColor(%s) = %q, want %q", tc.tier, got, tc.want)
		}
	}
}
