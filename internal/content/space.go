// Package content holds the spaces shown in the carousel: the built-in
// CHUNG catalogue, loading overrides from a TOML file, and the card widget
// that renders one space.
package content

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSpace = errors.New("invalid space")

// Space is one bookable area of the venue.
type Space struct {
	Title    string   `mapstructure:"title"`
	Value    string   `mapstructure:"value"`
	Heading  string   `mapstructure:"heading"`
	Body     string   `mapstructure:"body"`
	Features []string `mapstructure:"features"`
	Price    string   `mapstructure:"price"`
	CTA      string   `mapstructure:"cta"`
	Link     string   `mapstructure:"link"`
}

// Validate checks that every space has a title and a unique value.
func Validate(spaces []Space) error {
	if len(spaces) == 0 {
		return fmt.Errorf("%w: no spaces defined", ErrInvalidSpace)
	}
	seen := make(map[string]int, len(spaces))
	for i, s := range spaces {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("%w: space %d has no title", ErrInvalidSpace, i)
		}
		if strings.TrimSpace(s.Value) == "" {
			return fmt.Errorf("%w: space %q has no value", ErrInvalidSpace, s.Title)
		}
		if prev, ok := seen[s.Value]; ok {
			return fmt.Errorf("%w: value %q used by spaces %d and %d", ErrInvalidSpace, s.Value, prev, i)
		}
		seen[s.Value] = i
	}
	return nil
}

// Defaults returns the four CHUNG spaces.
func Defaults() []Space {
	return []Space{
		{
			Title:   "Art Studios",
			Value:   "studios",
			Heading: "Art Studios",
			Body: "Our light-filled art studios provide the perfect environment for creative work and artistic exploration. " +
				"Each space is designed with artists in mind, featuring ample **natural light**, flexible work areas, and easy " +
				"access to shared resources.",
			Features: []string{
				"Natural north-facing light",
				"Flexible work surfaces",
				"Utility sinks in select studios",
				"24-hour access for members",
				"Climate-controlled environment",
				"Storage space for materials",
			},
			Price: "Starting from ₫500,000/week",
			CTA:   "Reserve Studio",
			Link:  "/studios",
		},
		{
			Title:   "Gallery Space",
			Value:   "gallery",
			Heading: "Gallery Space",
			Body: "Our versatile gallery space offers the perfect backdrop for exhibitions, installations, and cultural events. " +
				"The minimalist design allows artists to transform the space according to their vision and creative needs.",
			Features: []string{
				"Flexible lighting system",
				"Modular wall configurations",
				"Professional hanging system",
				"Sound system available",
				"Opening reception support",
				"Promotion on our channels",
			},
			Price: "Starting from ₫2,000,000/week",
			CTA:   "Book Gallery",
			Link:  "/gallery",
		},
		{
			Title:   "Workshop Space",
			Value:   "workshop",
			Heading: "Workshop Space",
			Body: "Our workshop space is designed for hands-on learning and collaborative creation. Whether you're teaching " +
				"screen printing, hosting a creative writing session, or conducting a design workshop, our versatile space " +
				"adapts to your needs.",
			Features: []string{
				"Flexible table arrangements",
				"Projector and screen",
				"Whiteboard and materials",
				"Sound system",
				"Basic tools available",
				"Cleanup services",
			},
			Price: "₫500,000 half-day / ₫800,000 full-day",
			CTA:   "Book Workshop",
			Link:  "/workshop",
		},
		{
			Title:   "Café & Library",
			Value:   "cafe",
			Heading: "Café & Library",
			Body: "Our café and library provide a relaxed space for casual meetings, reading, or simply enjoying a locally-sourced coffee. " +
				"Browse our curated collection of art books, magazines, and literature while connecting with fellow creatives.",
			Features: []string{
				"Vietnamese specialty coffee",
				"Curated art book collection",
				"Free WiFi",
				"Comfortable lounge seating",
				"Local pastries and snacks",
				"Monthly book club meetings",
			},
			Price: "Open to all visitors",
			CTA:   "View Menu",
			Link:  "/cafe",
		},
	}
}
