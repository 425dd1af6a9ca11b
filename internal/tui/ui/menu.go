package ui

import (
	"fmt"
	"strings"
)

// FormatHints renders hints as a single line of tview color tags.
func FormatHints(theme *Theme, hints []MenuHint) string {
	keyColor := colorName(theme.MenuKeyColor)
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, fmt.Sprintf("[%s::b]<%s>[-:-:-] %s", keyColor, h.Key, h.Description))
	}
	return strings.Join(parts, "  ")
}
