package main

import (
	"context"
	"time"

	"github.com/ccxla/3RVX/internal/app"
	"github.com/ccxla/3RVX/internal/config"
	"github.com/ccxla/3RVX/internal/dispatch"
	"github.com/ccxla/3RVX/internal/history"
	"github.com/ccxla/3RVX/internal/inject"
	"github.com/ccxla/3RVX/internal/launch"
	"github.com/ccxla/3RVX/internal/logging"
	"github.com/ccxla/3RVX/internal/permissions"
	"github.com/ccxla/3RVX/internal/tray"
)

func runDaemon(configPath string) error {
	if configPath == "" {
		configPath = config.Path()
	}

	// Load config from XDG/Library/AppData
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger with configured level
	log := logging.NewWithLevel(cfg.LogLevel)

	// macOS gates synthetic key events behind accessibility approval
	if err := permissions.EnsurePermissions(); err != nil {
		log.Warn().Err(err).Msg("Media and virtual key hotkeys unavailable")
	}

	ctx, cancel := context.WithCancel(signalContext())
	defer cancel()

	// Register the configured hotkey definitions
	registry := dispatch.NewRegistry(log)
	registry.Reload(cfg.Definitions())

	// Open the dispatch history store
	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(config.DataDir())
		if err != nil {
			log.Error().Err(err).Msg("Failed to open history store")
			store = nil
		}
	}

	// Create tray UI first (we'll pass it to app)
	trayUI := tray.New(nil, version, commit) // App reference set below

	application := app.New(app.Config{
		Config:     cfg,
		ConfigPath: configPath,
		Registry:   registry,
		Volume:     dispatch.NewMemVolume(0.5, log),
		Brightness: dispatch.NewMemBrightness(0.5, log),
		Drives:     dispatch.NewMemDrives(log),
		Keys:       inject.New(),
		Launcher:   launch.New(log),
		History:    store,
		Logger:     log,
		StatusUI:   trayUI,
	})

	// Set app reference in tray
	trayUI.SetApp(application)

	if err := application.Start(ctx); err != nil {
		return err
	}

	// An Exit hotkey or the tray's Quit unwinds the tray loop
	go func() {
		<-application.Done()
		cancel()
	}()

	log.Info().Str("version", version).Msg("3RVX starting...")

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(ctx); err != nil {
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	return application.Shutdown(shutdownCtx)
}
