package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestDefaultsAreValid(t *testing.T) {
	spaces := Defaults()
	if err := Validate(spaces); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	var values []string
	for _, s := range spaces {
		values = append(values, s.Value)
		if len(s.Features) != 6 {
			t.Fatalf("%s has %d features, want 6", s.Value, len(s.Features))
		}
	}
	if got := strings.Join(values, ","); got != "studios,gallery,workshop,cafe" {
		t.Fatalf("values = %s", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		spaces []Space
	}{
		{name: "empty", spaces: nil},
		{name: "blank title", spaces: []Space{{Title: " ", Value: "a"}}},
		{name: "blank value", spaces: []Space{{Title: "A"}}},
		{name: "duplicate value", spaces: []Space{{Title: "A", Value: "a"}, {Title: "B", Value: "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.spaces); !errors.Is(err, ErrInvalidSpace) {
				t.Fatalf("err = %v, want ErrInvalidSpace", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spaces.toml")
	data := `
[[spaces]]
title = "Print Room"
value = "print"
body = "Risograph and screen printing."
features = ["Two-colour riso", "Drying racks"]
price = "By the hour"
cta = "Book"

[[spaces]]
title = "Roof"
value = "roof"
heading = "Rooftop Terrace"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spaces, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(spaces) != 2 {
		t.Fatalf("loaded %d spaces, want 2", len(spaces))
	}
	if spaces[0].Heading != "Print Room" {
		t.Fatalf("heading should default to title, got %q", spaces[0].Heading)
	}
	if spaces[1].Heading != "Rooftop Terrace" {
		t.Fatalf("explicit heading lost: %q", spaces[1].Heading)
	}
	if len(spaces[0].Features) != 2 || spaces[0].Features[1] != "Drying racks" {
		t.Fatalf("features = %v", spaces[0].Features)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if spaces, err := LoadFile(""); err != nil || len(spaces) != 4 {
		t.Fatalf("empty path should give defaults, got %d spaces, err %v", len(spaces), err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "dup.toml")
	data := "[[spaces]]\ntitle = \"A\"\nvalue = \"a\"\n[[spaces]]\ntitle = \"B\"\nvalue = \"a\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrInvalidSpace) {
		t.Fatalf("duplicate values err = %v", err)
	}
}

func TestCardRendersSpace(t *testing.T) {
	card := NewCard(Defaults()[0], "notty")
	out := card.Render(60, 40)
	plain := ansi.Strip(out)
	for _, want := range []string{"Art Studios", "environment", "Features", "✓ Natural north-facing light", "Starting from ₫500,000/week", "Reserve Studio", "/studios"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("card missing %q:\n%s", want, plain)
		}
	}
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 60 {
			t.Fatalf("line %d is %d wide", i, w)
		}
	}
	var paired bool
	for _, line := range strings.Split(plain, "\n") {
		if strings.Contains(line, "Natural north-facing light") && strings.Contains(line, "Flexible work surfaces") {
			paired = true
		}
	}
	if !paired {
		t.Fatalf("wide card should lay features out in two columns:\n%s", plain)
	}
}

func TestCardNarrowAndClipped(t *testing.T) {
	card := NewCard(Defaults()[1], "notty")
	plain := ansi.Strip(card.Render(40, 60))
	for _, line := range strings.Split(plain, "\n") {
		if strings.Contains(line, "Flexible lighting system") && strings.Contains(line, "Modular wall") {
			t.Fatalf("narrow card should use one column:\n%s", plain)
		}
	}
	if got := len(strings.Split(card.Render(40, 3), "\n")); got != 3 {
		t.Fatalf("clipped card has %d lines, want 3", got)
	}
	if card.Render(0, 5) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestCardCachesBodyPerWidth(t *testing.T) {
	card := NewCard(Defaults()[2], "notty")
	card.Render(50, 30)
	card.Render(50, 10)
	card.Render(70, 30)
	if len(card.bodies) != 2 {
		t.Fatalf("cached %d bodies, want 2", len(card.bodies))
	}
}
