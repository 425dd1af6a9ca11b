package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/arcade/internal/config"
	"github.com/matheus3301/arcade/internal/menu"
)

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor        tcell.Color
	AccentColor    tcell.Color
	HighlightFg    tcell.Color
	HighlightBg    tcell.Color
	StatusBgColor  tcell.Color
	StatusFgColor  tcell.Color
	MenuKeyColor   tcell.Color
	FlashInfoColor tcell.Color
	FlashWarnColor tcell.Color
	FlashErrColor  tcell.Color
}

// DefaultTheme returns the light green on black arcade look.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:        tcell.ColorBlack,
		AccentColor:    tcell.ColorLightGreen,
		HighlightFg:    tcell.ColorBlack,
		HighlightBg:    tcell.ColorLightGreen,
		StatusBgColor:  tcell.ColorDarkSlateGray,
		StatusFgColor:  tcell.ColorWhite,
		MenuKeyColor:   tcell.ColorLightGreen,
		FlashInfoColor: tcell.ColorNavajoWhite,
		FlashWarnColor: tcell.ColorOrange,
		FlashErrColor:  tcell.ColorOrangeRed,
	}
}

// ThemeFromConfig applies accent_color on top of DefaultTheme. The highlight
// background follows the accent so the selected row stays an inverted accent.
func ThemeFromConfig(cfg *config.Config) (*Theme, error) {
	t := DefaultTheme()
	if cfg == nil || cfg.AccentColor == "" {
		return t, nil
	}
	c := tcell.GetColor(cfg.AccentColor)
	if c == tcell.ColorDefault {
		return nil, fmt.Errorf("unknown accent color %q", cfg.AccentColor)
	}
	t.AccentColor = c
	t.HighlightBg = c
	t.MenuKeyColor = c
	return t, nil
}

// LineStyle maps a render style to a terminal style.
func (t *Theme) LineStyle(s menu.LineStyle) tcell.Style {
	if s == menu.StyleHighlighted {
		return tcell.StyleDefault.Foreground(t.HighlightFg).Background(t.HighlightBg)
	}
	return tcell.StyleDefault.Foreground(t.AccentColor).Background(t.BgColor)
}

// colorName returns a tview-compatible color name string.
func colorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
