package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/arcade/internal/config"
	"github.com/matheus3301/arcade/internal/menu"
	"github.com/rivo/tview"
)

func TestThemeFromConfig(t *testing.T) {
	th, err := ThemeFromConfig(&config.Config{AccentColor: "aqua"})
	if err != nil {
		t.Fatal(err)
	}
	if th.AccentColor != tcell.ColorAqua || th.HighlightBg != tcell.ColorAqua {
		t.Errorf("accent = %v, highlight bg = %v, want aqua", th.AccentColor, th.HighlightBg)
	}

	if _, err := ThemeFromConfig(&config.Config{AccentColor: "nope"}); err == nil {
		t.Error("ThemeFromConfig() expected error for unknown color")
	}

	th, err = ThemeFromConfig(nil)
	if err != nil || th.AccentColor != tcell.ColorLightGreen {
		t.Errorf("ThemeFromConfig(nil) = %v, %v", th, err)
	}
}

func TestLineStyleSwapsColors(t *testing.T) {
	th := DefaultTheme()
	fg, bg, _ := th.LineStyle(menu.StyleAccent).Decompose()
	hfg, hbg, _ := th.LineStyle(menu.StyleHighlighted).Decompose()
	if fg != hbg || bg != hfg {
		t.Errorf("accent %v/%v, highlighted %v/%v: want swapped", fg, bg, hfg, hbg)
	}
}

func TestFlashExpires(t *testing.T) {
	now := time.Unix(0, 0)
	f := NewFlashModel()
	f.now = func() time.Time { return now }

	if f.Get() != nil {
		t.Error("new model has a message")
	}

	f.Info("activated tetris")
	msg := f.Get()
	if msg == nil || msg.Text != "activated tetris" || msg.Level != FlashInfo {
		t.Fatalf("Get() = %+v", msg)
	}

	select {
	case w := <-f.Watch():
		if w.Text != "activated tetris" {
			t.Errorf("watched %q", w.Text)
		}
	default:
		t.Error("Watch() did not receive the message")
	}

	now = now.Add(6 * time.Second)
	if f.Get() != nil {
		t.Error("message did not expire")
	}
}

func TestFormatFlash(t *testing.T) {
	th := DefaultTheme()
	if got := FormatFlash(th, nil); got != "" {
		t.Errorf("FormatFlash(nil) = %q", got)
	}
	f := NewFlashModel()
	f.Err(errors.New("boom"))
	got := FormatFlash(th, f.Get())
	if !strings.Contains(got, "boom") || !strings.HasPrefix(got, "[") {
		t.Errorf("FormatFlash() = %q", got)
	}
}

func TestFormatHints(t *testing.T) {
	got := FormatHints(DefaultTheme(), []MenuHint{{Key: "↑/↓", Description: "Move"}, {Key: "q", Description: "Quit"}})
	if !strings.Contains(got, "<↑/↓>[-:-:-] Move") || !strings.Contains(got, "<q>[-:-:-] Quit") {
		t.Errorf("FormatHints() = %q", got)
	}
}

func TestPagesStack(t *testing.T) {
	p := NewPages()
	var tops []string
	p.SetOnChange(func(top string) { tops = append(tops, top) })

	p.AddPage("games", tview.NewBox(), true, false)
	p.AddPage("help", tview.NewBox(), true, false)

	p.Push("games")
	p.Push("help")
	p.Push("help")
	if p.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", p.Depth())
	}
	if got := p.Pop(); got != "help" {
		t.Errorf("Pop() = %q, want help", got)
	}
	if got := p.Pop(); got != "" {
		t.Errorf("Pop() of last page = %q, want empty", got)
	}
	if p.Current() != "games" {
		t.Errorf("Current() = %q, want games", p.Current())
	}
	want := []string{"games", "help", "games"}
	if strings.Join(tops, ",") != strings.Join(want, ",") {
		t.Errorf("onChange saw %v, want %v", tops, want)
	}
}
