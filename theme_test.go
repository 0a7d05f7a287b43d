package main

import (
	"strings"
	"testing"
)

func TestLoadThemePaletteKnownThemes(t *testing.T) {
	for _, name := range []string{"nord", "dracula", "monokai", "github-dark"} {
		palette, err := LoadThemePalette(name)
		if err != nil {
			t.Fatalf("LoadThemePalette(%q): %v", name, err)
		}
		if palette.Name != name {
			t.Fatalf("palette name = %q, want %q", palette.Name, name)
		}

		fields := map[string]string{
			"Text":     palette.Text,
			"EditorBG": palette.EditorBG,
			"Keyword":  palette.Keyword,
			"String":   palette.String,
			"Number":   palette.Number,
			"Comment":  palette.Comment,
			"Property": palette.Property,
			"Preproc":  palette.Preproc,
		}
		for field, value := range fields {
			if !strings.HasPrefix(value, "#") || len(value) != 7 {
				t.Fatalf("%s %s = %q, want #RRGGBB", name, field, value)
			}
		}
	}
}

func TestLoadThemePaletteAliases(t *testing.T) {
	palette, err := LoadThemePalette("Solarized")
	if err != nil {
		t.Fatalf("LoadThemePalette alias: %v", err)
	}
	if palette.Name != "solarized-dark" {
		t.Fatalf("alias resolved to %q, want solarized-dark", palette.Name)
	}
}

func TestLoadThemePaletteEmptyNameDefaultsToNord(t *testing.T) {
	palette, err := LoadThemePalette("  ")
	if err != nil {
		t.Fatalf("LoadThemePalette(blank): %v", err)
	}
	if palette.Name != "nord" {
		t.Fatalf("blank theme resolved to %q, want nord", palette.Name)
	}
}

func TestLoadThemePaletteUnknownTheme(t *testing.T) {
	_, err := LoadThemePalette("no-such-theme")
	if err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "no-such-theme") || !strings.Contains(err.Error(), "nord") {
		t.Fatalf("error should name the theme and suggest alternatives: %v", err)
	}
}

func TestAdjustTone(t *testing.T) {
	if got := adjustTone("#000000", 16); got != "#101010" {
		t.Fatalf("adjustTone lighten = %q", got)
	}
	if got := adjustTone("#FFFFFF", 16); got != "#FFFFFF" {
		t.Fatalf("adjustTone clamps at white, got %q", got)
	}
	if got := adjustTone("#101010", -32); got != "#000000" {
		t.Fatalf("adjustTone clamps at black, got %q", got)
	}
	if got := adjustTone("not-a-color", 10); got != "not-a-color" {
		t.Fatalf("adjustTone should pass through invalid input, got %q", got)
	}
}

func TestParseHexRGB(t *testing.T) {
	r, g, b, ok := parseHexRGB("#2E3440")
	if !ok || r != 0x2E || g != 0x34 || b != 0x40 {
		t.Fatalf("parseHexRGB = (%d,%d,%d,%v)", r, g, b, ok)
	}
	if _, _, _, ok := parseHexRGB("#FFF"); ok {
		t.Fatalf("short hex should not parse")
	}
	if _, _, _, ok := parseHexRGB("garbage"); ok {
		t.Fatalf("garbage should not parse")
	}
}

func TestAutoDelta(t *testing.T) {
	if got := autoDelta("#000000", 12, -12); got != 12 {
		t.Fatalf("dark background delta = %d, want 12", got)
	}
	if got := autoDelta("#FFFFFF", 12, -12); got != -12 {
		t.Fatalf("light background delta = %d, want -12", got)
	}
	if got := autoDelta("invalid", 12, -12); got != 12 {
		t.Fatalf("invalid background delta = %d, want 12", got)
	}
}
