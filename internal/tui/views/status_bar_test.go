package views

import (
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/arcade/internal/menu"
	"github.com/matheus3301/arcade/internal/tui/ui"
)

func TestStatusBarRender(t *testing.T) {
	sb := NewStatusBar(ui.DefaultTheme())
	sb.now = func() time.Time { return time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC) }

	sb.SetPage("Games", []ui.MenuHint{{Key: "q", Description: "Quit"}})
	text := sb.GetText(true)
	for _, want := range []string{"Games", "<q> Quit", "15:04"} {
		if !strings.Contains(text, want) {
			t.Errorf("status %q missing %q", text, want)
		}
	}

	sb.SetFlash(&ui.FlashMessage{Text: "activated tetris"})
	if !strings.Contains(sb.GetText(true), "activated tetris") {
		t.Errorf("flash not shown: %q", sb.GetText(true))
	}
	sb.SetFlash(nil)
	if strings.Contains(sb.GetText(true), "activated") {
		t.Errorf("flash not cleared: %q", sb.GetText(true))
	}

	sb.now = func() time.Time { return time.Date(2026, 1, 2, 15, 5, 0, 0, time.UTC) }
	sb.SetFlash(nil)
	if !strings.Contains(sb.GetText(true), "15:05") {
		t.Errorf("clock not advanced by SetFlash: %q", sb.GetText(true))
	}
}

func TestHelpViewFollowsConvention(t *testing.T) {
	hv := NewHelpView(ui.DefaultTheme())
	hv.Update(menu.DownNext, []string{"q:quit"})
	text := hv.GetText(true)
	if !strings.Contains(text, "Down   Next game") {
		t.Errorf("help = %q", text)
	}
	if !strings.Contains(text, "q:quit") {
		t.Errorf("help missing binding: %q", text)
	}
}
