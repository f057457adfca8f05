// Package cli wires configuration, logging, the reference engine context and
// the composer together for the command-line interface.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/config"
	"github.com/z1gc/gorime/internal/engine"
	"github.com/z1gc/gorime/internal/history"
	"github.com/z1gc/gorime/internal/logging"
)

// App holds the wired components shared by CLI commands.
type App struct {
	Manager  *config.Manager
	Config   *config.Config
	Log      zerolog.Logger
	Context  *engine.Memory
	Composer *composer.AsciiComposer

	store *history.Store // non-nil when the SQLite history is active
}

// NewApp loads configuration and wires the composer against the reference
// engine context.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return newApp(manager)
}

// NewAppAt is NewApp with an explicit config directory.
func NewAppAt(configDir string) (*App, error) {
	manager := config.NewManagerAt(configDir)
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return newApp(manager)
}

func newApp(manager *config.Manager) (*App, error) {
	cfg := manager.Get()

	log := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})

	app := &App{
		Manager: manager,
		Config:  cfg,
		Log:     log,
	}

	hist, err := app.openHistory(cfg)
	if err != nil {
		return nil, err
	}

	app.Context = engine.NewMemory(hist, nil)
	app.Composer = composer.New(app.Context, ComposerConfig(cfg),
		composer.WithLogger(log.With().Str("component", "composer").Logger()))

	// Config is the load-time snapshot. No command starts the watcher except
	// tui, which routes reloads through the program's own mailbox instead of
	// mutating shared app state from fsnotify's goroutine.
	return app, nil
}

func (a *App) openHistory(cfg *config.Config) (composer.History, error) {
	if cfg.History.Path == "" {
		return history.NewRing(cfg.History.Capacity), nil
	}
	path := cfg.History.Path
	if !filepath.IsAbs(path) {
		dataDir, err := config.GetDataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dataDir, path)
	}
	store, err := history.Open(path, a.Log.With().Str("component", "history").Logger())
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

// ComposerConfig maps the loaded configuration onto the composer's own
// config shape, attaching the preset as the fallback switch-key source.
func ComposerConfig(cfg *config.Config) composer.Config {
	return composer.Config{
		SwitchKey:            cfg.AsciiComposer.SwitchKey,
		FallbackSwitchKey:    config.DefaultSwitchKey(),
		GoodOldCapsLock:      cfg.AsciiComposer.GoodOldCapsLock,
		CapsPolarityInverted: cfg.AsciiComposer.CapsPolarityInverted,
	}
}

// Close releases the composer subscription and the history store.
func (a *App) Close() error {
	a.Composer.Close()
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
