package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/arcade/internal/bus"
	"github.com/matheus3301/arcade/internal/config"
	"github.com/matheus3301/arcade/internal/store"
	"github.com/matheus3301/arcade/internal/tui/keys"
	"github.com/matheus3301/arcade/internal/tui/ui"
	"github.com/matheus3301/arcade/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageGames = "games"
	pageHelp  = "help"
)

// App is the main TUI application shell.
type App struct {
	app       *tview.Application
	pages     *ui.Pages
	theme     *ui.Theme
	cfg       *config.Config
	bus       *bus.Bus
	registry  *keys.Registry
	flash     *ui.FlashModel
	statusBar *views.StatusBar
	games     *views.GamesArchive
	help      *views.HelpView
	screens   []ui.Screen
	tick      time.Duration
	logger    *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewApp creates the TUI application around the games screen.
func NewApp(cfg *config.Config, theme *ui.Theme, b *bus.Bus, games *views.GamesArchive, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tick, err := cfg.Tick()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:       tview.NewApplication(),
		pages:     ui.NewPages(),
		theme:     theme,
		cfg:       cfg,
		bus:       b,
		registry:  keys.NewRegistry(),
		flash:     ui.NewFlashModel(),
		statusBar: views.NewStatusBar(theme),
		games:     games,
		help:      views.NewHelpView(theme),
		screens:   []ui.Screen{games},
		tick:      tick,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}

	for _, s := range a.screens {
		s.RegisterActionHandler(b)
		s.RegisterConfig(cfg)
		s.Init()
	}

	if err := a.setupBindings(); err != nil {
		cancel()
		return nil, err
	}
	a.setupLayout()

	return a, nil
}

func (a *App) setupBindings() error {
	a.registry.AddGlobal("quit", &keys.Action{
		Rune: keys.QuitRune, Key: tcell.KeyRune,
		Description: "q:quit", Visible: true,
		Handler: func() { a.quit() },
	})
	a.registry.AddGlobal("help", &keys.Action{
		Rune: keys.HelpRune, Key: tcell.KeyRune,
		Description: "?:help", Visible: true,
		Handler: func() { a.showHelp() },
	})

	// Activation has no default key; it exists only when configured.
	if a.cfg.ActivateKey == "" {
		return nil
	}
	key, r, err := keys.ParseBindable(a.cfg.ActivateKey)
	if err != nil {
		return fmt.Errorf("activate_key: %w", err)
	}
	a.registry.AddView(pageGames, "activate", &keys.Action{
		Key: key, Rune: r,
		Description: a.cfg.ActivateKey + ":activate", Visible: true,
		Handler: func() { a.games.Activate() },
	})
	return nil
}

func (a *App) setupLayout() {
	a.pages.AddPage(pageGames, a.games, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)
	a.pages.SetOnChange(a.pageChanged)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(root, true)
	a.app.SetInputCapture(a.handleKey)

	a.pages.Push(pageGames)
	a.app.SetFocus(a.games)
}

func (a *App) pageChanged(top string) {
	switch top {
	case pageHelp:
		a.statusBar.SetPage(a.help.Name(), a.help.Hints())
	default:
		a.statusBar.SetPage(a.games.Name(), a.games.Hints())
	}
}

// handleKey runs shell bindings first and passes everything else on to the
// focused screen.
func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	current := a.pages.Current()

	if event.Key() == tcell.KeyEscape && current == pageHelp {
		a.pages.Pop()
		a.app.SetFocus(a.games)
		return nil
	}

	if a.registry.HandleEvent(current, event) {
		return nil
	}
	return event
}

func (a *App) showHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	conv, _ := a.cfg.Convention()
	a.help.Update(conv, a.registry.Hints(pageGames))
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
}

func (a *App) quit() {
	a.bus.Publish(bus.Event{Kind: bus.KindQuit})
	a.Stop()
}

// NotifyActivation flashes a stored activation on the status bar. Safe to
// call from any goroutine.
func (a *App) NotifyActivation(act *store.Activation) {
	a.flash.Info(fmt.Sprintf("activated %s (%s)", act.Label, shortID(act.ID)))
}

// SetScreen draws on s instead of the terminal.
func (a *App) SetScreen(s tcell.Screen) {
	a.app.SetScreen(s)
}

// Run starts the TUI application and blocks until it stops.
func (a *App) Run() error {
	for _, s := range a.screens {
		s.Start()
	}
	a.startTickLoop()
	a.startFlashWatcher()
	a.logger.Info("tui started", zap.Duration("tick", a.tick))

	err := a.app.Run()

	for _, s := range a.screens {
		s.Stop()
	}
	a.cancel()
	a.logger.Info("tui stopped")
	return err
}

func (a *App) startTickLoop() {
	ticker := time.NewTicker(a.tick)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.bus.Publish(bus.Event{Kind: bus.KindTick})
				a.app.QueueUpdateDraw(func() {
					for _, s := range a.screens {
						s.Tick()
					}
					a.statusBar.SetFlash(a.flash.Get())
				})
			case <-a.ctx.Done():
				return
			}
		}
	}()
}

func (a *App) startFlashWatcher() {
	go func() {
		for {
			select {
			case <-a.flash.Watch():
				a.app.QueueUpdateDraw(func() {
					a.statusBar.SetFlash(a.flash.Get())
				})
			case <-a.ctx.Done():
				return
			}
		}
	}()
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
