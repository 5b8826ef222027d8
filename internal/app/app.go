package app

import (
	"io"
	"log/slog"

	"github.com/vk/blockforge/internal/handlers"
	"github.com/vk/blockforge/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	handlers *handlers.Handlers
	loader   *manifest.Loader
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and handler
// collection populated from the given block packages.
func NewApp(outW io.Writer, cfg *Config, packs ...handlers.Pack) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	h := handlers.New()
	if len(packs) == 0 {
		packs = corePacks
	}
	for _, pack := range packs {
		pack.Register(h)
	}
	logger.Debug("All block packages registered.", "handlers", len(h.Names()))

	return &App{
		outW:     outW,
		logger:   logger,
		handlers: h,
		loader:   manifest.NewLoader(),
		config:   cfg,
	}
}

// Handlers returns the application's handler collection. This is primarily
// for testing.
func (a *App) Handlers() *handlers.Handlers {
	return a.handlers
}
