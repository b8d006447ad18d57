package app

import (
	"github.com/jask/spaces/core/carousel"
	"github.com/jask/spaces/internal/content"
)

// Tabs turns spaces into carousel tabs, each rendered by a content card.
func Tabs(spaces []content.Space, markdownStyle string) []carousel.Tab {
	tabs := make([]carousel.Tab, 0, len(spaces))
	for _, s := range spaces {
		tabs = append(tabs, carousel.Tab{
			Title:   s.Title,
			Value:   s.Value,
			Content: content.NewCard(s, markdownStyle),
		})
	}
	return tabs
}
