package menu

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		height  int
		wantTop int
	}{
		{20, 5},
		{10, 2},
		{100, 23},
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		top, bottom := Split(Rect{Width: 100, Height: tt.height})
		if top.Height != tt.wantTop {
			t.Errorf("height %d: top = %d, want %d", tt.height, top.Height, tt.wantTop)
		}
		if top.Height+bottom.Height != tt.height {
			t.Errorf("height %d: regions sum to %d", tt.height, top.Height+bottom.Height)
		}
		if bottom.Y != top.Y+top.Height {
			t.Errorf("height %d: bottom.Y = %d, want %d", tt.height, bottom.Y, top.Y+top.Height)
		}
	}
}

func TestRender100x20(t *testing.T) {
	s := New(DefaultItems)
	p := Render(s, Rect{Width: 100, Height: 20})

	if p.Title.Area != (Rect{Width: 100, Height: 5}) {
		t.Errorf("title area = %+v", p.Title.Area)
	}
	if p.List.Area != (Rect{Y: 5, Width: 100, Height: 15}) {
		t.Errorf("list area = %+v", p.List.Area)
	}
	if p.Title.Borders != BorderAll {
		t.Errorf("title borders = %b, want all", p.Title.Borders)
	}
	if p.List.Borders != BorderRight {
		t.Errorf("list borders = %b, want right only", p.List.Borders)
	}
	if len(p.Title.Lines) != len(Banner) {
		t.Errorf("title has %d lines, want %d", len(p.Title.Lines), len(Banner))
	}
	if p.Scrollbar.Area != (Rect{X: 99, Y: 5, Width: 1, Height: 15}) {
		t.Errorf("scrollbar area = %+v", p.Scrollbar.Area)
	}
	if p.Scrollbar.Begin != "↑" || p.Scrollbar.End != "↓" {
		t.Errorf("scrollbar symbols = %q %q", p.Scrollbar.Begin, p.Scrollbar.End)
	}
}

func TestRenderHighlightsSelection(t *testing.T) {
	s := New(DefaultItems)
	s.HandleKey(KeyUp)
	p := Render(s, Rect{Width: 40, Height: 10})

	want := []Line{
		{Text: "tetris", Style: StyleAccent},
		{Text: "snake_eats_apples", Style: StyleHighlighted},
	}
	if !reflect.DeepEqual(p.List.Lines, want) {
		t.Errorf("lines = %+v, want %+v", p.List.Lines, want)
	}
	if p.Scrollbar.Length != 2 || p.Scrollbar.Position != 1 {
		t.Errorf("scrollbar = %d/%d, want 1/2", p.Scrollbar.Position, p.Scrollbar.Length)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	s := New(DefaultItems)
	area := Rect{X: 3, Y: 1, Width: 80, Height: 24}
	a := Render(s, area)
	b := Render(s, area)
	if !reflect.DeepEqual(a, b) {
		t.Error("Render returned different plans for the same input")
	}
	if sel, _ := s.Selected(); sel != 0 {
		t.Errorf("Render changed the selection to %d", sel)
	}
}

func TestRenderEmptyMenu(t *testing.T) {
	p := Render(New(nil), Rect{Width: 40, Height: 10})
	if len(p.List.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(p.List.Lines))
	}
	if p.Scrollbar.Length != 0 {
		t.Errorf("scrollbar length = %d, want 0", p.Scrollbar.Length)
	}
}

func TestRenderZeroArea(t *testing.T) {
	p := Render(New(DefaultItems), Rect{})
	if !p.Scrollbar.Area.Empty() {
		t.Errorf("scrollbar area = %+v, want empty", p.Scrollbar.Area)
	}
}

func TestThumbRow(t *testing.T) {
	tests := []struct {
		length, pos, track, want int
	}{
		{2, 0, 13, 0},
		{2, 1, 13, 12},
		{5, 2, 9, 4},
		{1, 0, 10, 0},
		{0, 0, 10, 0},
		{3, 9, 5, 4},
	}
	for _, tt := range tests {
		sb := Scrollbar{Length: tt.length, Position: tt.pos}
		if got := sb.ThumbRow(tt.track); got != tt.want {
			t.Errorf("ThumbRow(len=%d pos=%d track=%d) = %d, want %d", tt.length, tt.pos, tt.track, got, tt.want)
		}
	}
}
