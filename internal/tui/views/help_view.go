package views

import (
	"fmt"

	"github.com/matheus3301/arcade/internal/menu"
	"github.com/matheus3301/arcade/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays the key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.AccentColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.AccentColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.AccentColor)

	return &HelpView{TextView: tv, theme: theme}
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Init implements Component.
func (hv *HelpView) Init() {}

// Start implements Component.
func (hv *HelpView) Start() {}

// Stop implements Component.
func (hv *HelpView) Stop() {}

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// Update lists the navigation keys for conv and the shortcut bindings.
func (hv *HelpView) Update(conv menu.Convention, bindings []string) {
	hv.Clear()
	kc := fmt.Sprintf("#%06x", hv.theme.MenuKeyColor.Hex())

	_, _ = fmt.Fprintf(hv, "\n  [::b]Games Archive[-:-:-]\n\n")
	next, prev := "Up", "Down"
	if conv == menu.DownNext {
		next, prev = prev, next
	}
	_, _ = fmt.Fprintf(hv, "  [%s]%-6s[-:-:-] Next game (wraps to the first)\n", kc, next)
	_, _ = fmt.Fprintf(hv, "  [%s]%-6s[-:-:-] Previous game (wraps to the last)\n", kc, prev)
	_, _ = fmt.Fprintf(hv, "\n  [::b]Shortcuts[-:-:-]\n\n")
	for _, b := range bindings {
		_, _ = fmt.Fprintf(hv, "  [%s]%s[-:-:-]\n", kc, tview.Escape(b))
	}
}
