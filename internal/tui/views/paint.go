package views

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/arcade/internal/menu"
	"github.com/matheus3301/arcade/internal/tui/ui"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

// fill paints every cell of r with a blank in style.
func fill(screen tcell.Screen, r menu.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBorders draws the requested edges of r and returns the rect inside them.
func drawBorders(screen tcell.Screen, r menu.Rect, b menu.Borders, style tcell.Style) menu.Rect {
	if r.Empty() {
		return r
	}
	left, top := r.X, r.Y
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1

	if b.Has(menu.BorderTop) {
		for x := left; x <= right; x++ {
			screen.SetContent(x, top, tview.Borders.Horizontal, nil, style)
		}
	}
	if b.Has(menu.BorderBottom) {
		for x := left; x <= right; x++ {
			screen.SetContent(x, bottom, tview.Borders.Horizontal, nil, style)
		}
	}
	if b.Has(menu.BorderLeft) {
		for y := top; y <= bottom; y++ {
			screen.SetContent(left, y, tview.Borders.Vertical, nil, style)
		}
	}
	if b.Has(menu.BorderRight) {
		for y := top; y <= bottom; y++ {
			screen.SetContent(right, y, tview.Borders.Vertical, nil, style)
		}
	}
	if b.Has(menu.BorderTop | menu.BorderLeft) {
		screen.SetContent(left, top, tview.Borders.TopLeft, nil, style)
	}
	if b.Has(menu.BorderTop | menu.BorderRight) {
		screen.SetContent(right, top, tview.Borders.TopRight, nil, style)
	}
	if b.Has(menu.BorderBottom | menu.BorderLeft) {
		screen.SetContent(left, bottom, tview.Borders.BottomLeft, nil, style)
	}
	if b.Has(menu.BorderBottom | menu.BorderRight) {
		screen.SetContent(right, bottom, tview.Borders.BottomRight, nil, style)
	}

	inner := r
	if b.Has(menu.BorderTop) {
		inner.Y++
		inner.Height--
	}
	if b.Has(menu.BorderBottom) {
		inner.Height--
	}
	if b.Has(menu.BorderLeft) {
		inner.X++
		inner.Width--
	}
	if b.Has(menu.BorderRight) {
		inner.Width--
	}
	return inner
}

// drawBlock paints a block's borders and its centered lines, clipping to the
// inner rect.
func drawBlock(screen tcell.Screen, theme *ui.Theme, blk menu.Block) {
	inner := drawBorders(screen, blk.Area, blk.Borders, theme.LineStyle(menu.StyleAccent))
	if inner.Empty() {
		return
	}
	for i, line := range blk.Lines {
		if i >= inner.Height {
			break
		}
		drawCentered(screen, inner.X, inner.Y+i, inner.Width, line.Text, theme.LineStyle(line.Style))
	}
}

// drawCentered prints text centered in a row of the given width. Text wider
// than the row keeps its middle part.
func drawCentered(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	text = sanitizeForTerminal(text)
	textWidth := uniseg.StringWidth(text)
	offset := (width - textWidth) / 2

	col := x + offset
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if col >= x && col+w <= x+width {
			runes := []rune(cluster)
			screen.SetContent(col, y, runes[0], runes[1:], style)
		}
		col += w
		if col >= x+width {
			break
		}
	}
}

// drawScrollbar overlays the indicator on its one-column area: begin glyph on
// the first row, end glyph on the last, thumb somewhere on the track between.
func drawScrollbar(screen tcell.Screen, theme *ui.Theme, sb menu.Scrollbar) {
	a := sb.Area
	if a.Empty() {
		return
	}
	style := theme.LineStyle(menu.StyleAccent)
	top, bottom := a.Y, a.Y+a.Height-1

	track := a.Height - 2
	if track > 0 {
		thumb := -1
		if sb.Length > 0 {
			thumb = sb.ThumbRow(track)
		}
		for i := range track {
			glyph := menu.ScrollTrack
			if i == thumb {
				glyph = menu.ScrollThumb
			}
			screen.SetContent(a.X, top+1+i, firstRune(glyph), nil, style)
		}
	}
	screen.SetContent(a.X, top, firstRune(sb.Begin), nil, style)
	if bottom > top {
		screen.SetContent(a.X, bottom, firstRune(sb.End), nil, style)
	}
}

func firstRune(s string) rune {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
