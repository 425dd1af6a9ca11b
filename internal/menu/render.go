package menu

// TitlePercent is the share of the height given to the banner region.
const TitlePercent = 23

// Scrollbar glyphs.
const (
	ScrollBegin = "↑"
	ScrollEnd   = "↓"
	ScrollTrack = "║"
	ScrollThumb = "█"
)

// Banner is the static title art.
var Banner = []string{
	" ██████   █████  ███    ███ ███████ ███████      █████  ██████   ██████ ██   ██ ██ ██    ██ ███████ ",
	"██       ██   ██ ████  ████ ██      ██          ██   ██ ██   ██ ██      ██   ██ ██ ██    ██ ██      ",
	"██   ███ ███████ ██ ████ ██ █████   ███████     ███████ ██████  ██      ███████ ██ ██    ██ █████   ",
	"██    ██ ██   ██ ██  ██  ██ ██           ██     ██   ██ ██   ██ ██      ██   ██ ██  ██  ██  ██      ",
	" ██████  ██   ██ ██      ██ ███████ ███████     ██   ██ ██   ██  ██████ ██   ██ ██   ████   ███████ ",
}

// Rect is a cell rectangle on the output surface.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether r has no drawable cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Borders is a set of box edges.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all edges in e are set.
func (b Borders) Has(e Borders) bool { return b&e == e }

// LineStyle selects how a line is colored.
type LineStyle int

const (
	// StyleAccent is the default accent foreground.
	StyleAccent LineStyle = iota
	// StyleHighlighted swaps foreground and background of StyleAccent.
	StyleHighlighted
)

// Line is one centered row of text.
type Line struct {
	Text  string
	Style LineStyle
}

// Block is a bordered region holding centered lines.
type Block struct {
	Area    Rect
	Borders Borders
	Lines   []Line
}

// Scrollbar is a vertical position indicator over the right edge of Area.
type Scrollbar struct {
	Area     Rect
	Length   int
	Position int
	Begin    string
	End      string
}

// ThumbRow maps Position onto a track of the given number of rows.
func (sb Scrollbar) ThumbRow(track int) int {
	if sb.Length <= 1 || track <= 1 {
		return 0
	}
	pos := min(max(sb.Position, 0), sb.Length-1)
	return pos * (track - 1) / (sb.Length - 1)
}

// Plan is everything needed to draw the screen once.
type Plan struct {
	Title     Block
	List      Block
	Scrollbar Scrollbar
}

// Split divides area into the banner region and the list region. The two
// heights always add up to area.Height.
func Split(area Rect) (top, bottom Rect) {
	h := max(area.Height, 0)
	th := (h*TitlePercent + 50) / 100
	top = Rect{X: area.X, Y: area.Y, Width: area.Width, Height: th}
	bottom = Rect{X: area.X, Y: area.Y + th, Width: area.Width, Height: h - th}
	return top, bottom
}

// Render describes how s looks inside area. It has no side effects, so equal
// inputs always give equal plans.
func Render(s *State, area Rect) Plan {
	top, bottom := Split(area)

	title := Block{Area: top, Borders: BorderAll, Lines: make([]Line, len(Banner))}
	for i, row := range Banner {
		title.Lines[i] = Line{Text: row, Style: StyleAccent}
	}

	sel, ok := s.Selected()
	list := Block{Area: bottom, Borders: BorderRight, Lines: make([]Line, len(s.items))}
	for i, label := range s.items {
		style := StyleAccent
		if ok && i == sel {
			style = StyleHighlighted
		}
		list.Lines[i] = Line{Text: label, Style: style}
	}

	sb := Scrollbar{Length: len(s.items), Position: sel, Begin: ScrollBegin, End: ScrollEnd}
	if !bottom.Empty() {
		sb.Area = Rect{X: bottom.X + bottom.Width - 1, Y: bottom.Y, Width: 1, Height: bottom.Height}
	}

	return Plan{Title: title, List: list, Scrollbar: sb}
}
