package core

import (
	"fmt"
	"strings"
)

func DefaultKeyBindings() []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"left", "h"}, Action: "carousel-prev", Description: "previous", Scopes: []string{ScopeCarousel}},
		{Keys: []string{"right", "l"}, Action: "carousel-next", Description: "next", Scopes: []string{ScopeCarousel}},
		{Keys: []string{"/", "ctrl+k"}, Action: "open-jump-palette", Description: "jump", Scopes: []string{ScopeCarousel}},
		{Keys: []string{"a"}, Action: "toggle-autoplay", Description: "autoplay", Scopes: []string{ScopeCarousel}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:command"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:command"}},
	}
	for i := 1; i <= 9; i++ {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{fmt.Sprint(i)},
			Action:      fmt.Sprintf("select-tab-%d", i),
			Description: fmt.Sprintf("space %d", i),
			Scopes:      []string{ScopeCarousel},
			Hidden:      true,
		})
	}
	return bindings
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
			Hidden:      b.Hidden,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
