package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/arcade/internal/bus"
	"github.com/matheus3301/arcade/internal/config"
	"github.com/matheus3301/arcade/internal/menu"
	"github.com/matheus3301/arcade/internal/tui/ui"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// GamesArchive is the games menu screen: banner on top, selectable list with
// a scrollbar below.
type GamesArchive struct {
	*tview.Box
	theme  *ui.Theme
	items  []string
	state  *menu.State
	tx     bus.Sender
	cfg    *config.Config
	logger *zap.Logger
}

// NewGamesArchive creates the screen over items. Call Init before drawing.
func NewGamesArchive(theme *ui.Theme, items []string, logger *zap.Logger) *GamesArchive {
	if logger == nil {
		logger = zap.NewNop()
	}
	box := tview.NewBox()
	box.SetBackgroundColor(theme.BgColor)
	return &GamesArchive{
		Box:    box,
		theme:  theme,
		items:  append([]string(nil), items...),
		state:  menu.New(items),
		logger: logger,
	}
}

// Name implements Component.
func (g *GamesArchive) Name() string { return "Games" }

// Init implements Component. It fixes the item list and selects the first item.
func (g *GamesArchive) Init() {
	conv := menu.UpNext
	if g.cfg != nil {
		if c, err := g.cfg.Convention(); err == nil {
			conv = c
		} else {
			g.logger.Warn("ignoring navigation setting", zap.Error(err))
		}
	}
	g.state = menu.New(g.items, menu.WithConvention(conv))
}

// Start implements Component.
func (g *GamesArchive) Start() {}

// Stop implements Component.
func (g *GamesArchive) Stop() {}

// Hints implements Component.
func (g *GamesArchive) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "↑/↓", Description: "Move"},
	}
}

// RegisterActionHandler implements Screen.
func (g *GamesArchive) RegisterActionHandler(tx bus.Sender) { g.tx = tx }

// RegisterConfig implements Screen. The convention takes effect on Init.
func (g *GamesArchive) RegisterConfig(cfg *config.Config) { g.cfg = cfg }

// Tick implements Screen. The menu has no time-based state.
func (g *GamesArchive) Tick() {}

// State exposes the menu state for inspection.
func (g *GamesArchive) State() *menu.State { return g.state }

// HandleKey moves the selection for Up and Down and ignores everything else.
// It reports whether the event was consumed.
func (g *GamesArchive) HandleKey(ev *tcell.EventKey) bool {
	var k menu.Key
	switch ev.Key() {
	case tcell.KeyUp:
		k = menu.KeyUp
	case tcell.KeyDown:
		k = menu.KeyDown
	default:
		return false
	}
	if g.state.HandleKey(k) {
		idx, _ := g.state.Selected()
		label, _ := g.state.SelectedLabel()
		g.logger.Debug("selection moved", zap.Stringer("key", k), zap.Int("index", idx))
		g.publish(bus.KindMoved, bus.Selection{Index: idx, Label: label})
	}
	return true
}

// Activate publishes the selected item as menu.activated and returns its
// label. Nothing is published for an empty menu.
func (g *GamesArchive) Activate() (string, bool) {
	label, ok := g.state.Activate()
	if !ok {
		return "", false
	}
	idx, _ := g.state.Selected()
	g.logger.Info("item activated", zap.String("label", label))
	g.publish(bus.KindActivated, bus.Selection{Index: idx, Label: label})
	return label, true
}

func (g *GamesArchive) publish(kind string, sel bus.Selection) {
	if g.tx == nil {
		return
	}
	g.tx.Publish(bus.Event{Kind: kind, Payload: sel})
}

// Plan returns the render description for the current inner rect.
func (g *GamesArchive) Plan() menu.Plan {
	x, y, w, h := g.GetInnerRect()
	return menu.Render(g.state, menu.Rect{X: x, Y: y, Width: w, Height: h})
}

// Draw implements tview.Primitive.
func (g *GamesArchive) Draw(screen tcell.Screen) {
	g.DrawForSubclass(screen, g)
	plan := g.Plan()

	bg := tcell.StyleDefault.Background(g.theme.BgColor)
	fill(screen, plan.Title.Area, bg)
	fill(screen, plan.List.Area, bg)

	drawBlock(screen, g.theme, plan.Title)
	drawBlock(screen, g.theme, plan.List)
	drawScrollbar(screen, g.theme, plan.Scrollbar)
}

// InputHandler implements tview.Primitive.
func (g *GamesArchive) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return g.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		g.HandleKey(event)
	})
}
