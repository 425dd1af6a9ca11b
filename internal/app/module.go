package app

import (
	"context"
	"fmt"

	"github.com/matheus3301/arcade/internal/bus"
	"github.com/matheus3301/arcade/internal/config"
	"github.com/matheus3301/arcade/internal/history"
	"github.com/matheus3301/arcade/internal/lock"
	"github.com/matheus3301/arcade/internal/logging"
	"github.com/matheus3301/arcade/internal/menu"
	"github.com/matheus3301/arcade/internal/paths"
	"github.com/matheus3301/arcade/internal/store"
	"github.com/matheus3301/arcade/internal/tui"
	"github.com/matheus3301/arcade/internal/tui/ui"
	"github.com/matheus3301/arcade/internal/tui/views"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved command line settings passed to the fx module.
type Params struct {
	Home       string
	ConfigPath string // optional override; empty = <home>/config.toml
	Version    string
}

// Module returns the fx module for the arcade TUI, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Options(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		graph(p),
	)
}

func graph(p Params) fx.Option {
	return fx.Module("arcade",
		fx.Supply(p),
		fx.Provide(
			provideLayout,
			provideConfig,
			provideLogger,
			provideBus,
			provideLock,
			provideStore,
			provideRecorder,
			provideTheme,
			provideGames,
			tui.NewApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLayout(p Params) (paths.Layout, error) {
	l := paths.Resolve(p.Home)
	if err := l.EnsureDir(); err != nil {
		return l, fmt.Errorf("create home %s: %w", l.Home, err)
	}
	return l, nil
}

func provideConfig(p Params, l paths.Layout) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = l.ConfigPath()
	}
	return config.LoadOrDefault(path)
}

func provideLogger(p Params, l paths.Layout, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(l.LogPath(), cfg.LogLevel, p.Version)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(l paths.Layout, logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring instance lock", zap.String("home", l.Home))
	lk, err := lock.Acquire(l.Home)
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired")
	return lk, nil
}

// provideStore depends on the lock so only the owning instance migrates.
func provideStore(l paths.Layout, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	db, err := store.Open(l.DBPath())
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", l.DBPath()))
	return db, nil
}

func provideRecorder(db *store.DB, b *bus.Bus, logger *zap.Logger) *history.Recorder {
	return history.NewRecorder(db, b, logger)
}

func provideTheme(cfg *config.Config) (*ui.Theme, error) {
	return ui.ThemeFromConfig(cfg)
}

func provideGames(theme *ui.Theme, logger *zap.Logger) *views.GamesArchive {
	return views.NewGamesArchive(theme, menu.DefaultItems, logger)
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, a *tui.App, rec *history.Recorder, db *store.DB, lk *lock.Lock, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rec.SetOnRecorded(a.NotifyActivation)
			rec.Start(context.Background())

			// The TUI owns the terminal until the user quits; then the
			// whole app shuts down.
			go func() {
				code := 0
				if err := a.Run(); err != nil {
					logger.Error("tui error", zap.Error(err))
					code = 1
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Warn("shutdown request failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			a.Stop()
			rec.Stop()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("arcade stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
