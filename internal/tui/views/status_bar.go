package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/arcade/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar displays key hints, the latest flash message and a clock.
type StatusBar struct {
	*tview.TextView
	theme *ui.Theme
	page  string
	hints []ui.MenuHint
	flash *ui.FlashMessage
	now   func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.StatusBgColor)
	tv.SetTextColor(theme.StatusFgColor)

	return &StatusBar{TextView: tv, theme: theme, now: time.Now}
}

// SetPage updates the page name and its hints.
func (sb *StatusBar) SetPage(name string, hints []ui.MenuHint) {
	sb.page = name
	sb.hints = hints
	sb.render()
}

// SetFlash sets the message shown until it expires.
func (sb *StatusBar) SetFlash(msg *ui.FlashMessage) {
	sb.flash = msg
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s | %s", sb.page, ui.FormatHints(sb.theme, sb.hints), sb.now().Format("15:04"))
	if flash := ui.FormatFlash(sb.theme, sb.flash); flash != "" {
		line += " | " + flash
	}

	_, _ = fmt.Fprint(sb, line)
}
