// Package app assembles the daemon: the hotkey registry, the
// dispatcher and its controllers, the history store, the web
// dashboard, and the config watcher.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ccxla/3RVX/internal/config"
	"github.com/ccxla/3RVX/internal/dispatch"
	"github.com/ccxla/3RVX/internal/history"
	"github.com/ccxla/3RVX/internal/web"
)

// StatusUI is an interface for reflecting state in the tray menu
type StatusUI interface {
	SetOSDChecked(enabled bool)
}

// Launcher opens external targets: Run hotkey commands and the
// dashboard URL.
type Launcher interface {
	Run(command string) error
	Open(url string) error
}

type Config struct {
	Config     *config.Config
	ConfigPath string
	Registry   *dispatch.Registry
	Volume     dispatch.VolumeController
	Brightness dispatch.LevelController
	Drives     dispatch.DriveEjector
	Keys       dispatch.KeySender
	Launcher   Launcher
	History    *history.Store // Optional - can be nil
	Logger     zerolog.Logger
	StatusUI   StatusUI // Optional - can be nil
}

type App struct {
	cfg        *config.Config
	cfgPath    string
	registry   *dispatch.Registry
	dispatcher *dispatch.Dispatcher
	history    *history.Store
	web        *web.Server
	launcher   Launcher
	log        zerolog.Logger
	status     StatusUI

	mu         sync.Mutex
	osdEnabled bool

	done     chan struct{}
	quitOnce sync.Once
}

func New(cfg Config) *App {
	a := &App{
		cfg:        cfg.Config,
		cfgPath:    cfg.ConfigPath,
		registry:   cfg.Registry,
		history:    cfg.History,
		launcher:   cfg.Launcher,
		log:        cfg.Logger,
		status:     cfg.StatusUI,
		osdEnabled: cfg.Config.OSD.Enabled,
		done:       make(chan struct{}),
	}

	a.dispatcher = dispatch.New(dispatch.Config{
		Registry:   cfg.Registry,
		Volume:     cfg.Volume,
		Brightness: cfg.Brightness,
		Drives:     cfg.Drives,
		Keys:       cfg.Keys,
		Runner:     cfg.Launcher,
		OSD:        osdHooks{a},
		App:        controlHooks{a},
		Units:      cfg.Config.OSD.Units,
		Observer:   a,
		Logger:     cfg.Logger,
	})

	if cfg.Config.Web.Enabled {
		a.web = web.NewServer(web.Config{
			Registry:   cfg.Registry,
			Dispatcher: a.dispatcher,
			History:    cfg.History,
			Port:       cfg.Config.Web.Port,
			Logger:     cfg.Logger,
		})
	}

	return a
}

// Dispatcher exposes the wired dispatcher for manual triggering.
func (a *App) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}

// Start prunes the history store and brings up the web server and the
// config watcher. It does not block; the tray loop owns the foreground.
func (a *App) Start(ctx context.Context) error {
	if a.history != nil && a.cfg.History.Keep > 0 {
		pruned, err := a.history.Prune(a.cfg.History.Keep)
		if err != nil {
			a.log.Warn().Err(err).Msg("Failed to prune history")
		} else if pruned > 0 {
			a.log.Info().Int64("events", pruned).Msg("Pruned history")
		}
	}

	if a.web != nil {
		go func() {
			if err := a.web.Start(ctx); err != nil {
				a.log.Error().Err(err).Msg("Web server error")
			}
		}()
	}

	if err := config.Watch(ctx, a.cfgPath, a.log, func() {
		if err := a.ReloadConfig(); err != nil {
			a.log.Error().Err(err).Msg("Failed to reload config")
		}
	}); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}

	a.log.Info().Int("hotkeys", a.registry.Len()).Msg("3RVX running")
	return nil
}

// Shutdown releases the app's resources. The web server and the
// watcher stop with the context passed to Start.
func (a *App) Shutdown(ctx context.Context) error {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			return fmt.Errorf("failed to close history store: %w", err)
		}
	}
	a.log.Info().Msg("Shut down")
	return nil
}

// ReloadConfig re-reads the config file and swaps the hotkey
// definitions. Web, history, and meter settings need a restart.
func (a *App) ReloadConfig() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	count := a.registry.Reload(cfg.Definitions())
	a.log.Info().Int("hotkeys", count).Msg("Hotkey definitions reloaded")
	return nil
}

// Quit signals the daemon to stop. Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		a.log.Info().Msg("Quit requested")
		close(a.done)
	})
}

// Done is closed when an Exit hotkey or the tray requests shutdown.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Tray actions

// OSDEnabled reports whether the on-screen display is active.
func (a *App) OSDEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.osdEnabled
}

// SetOSDEnabled flips the on-screen display and syncs the tray.
func (a *App) SetOSDEnabled(enabled bool) {
	a.mu.Lock()
	a.osdEnabled = enabled
	a.mu.Unlock()

	if a.status != nil {
		a.status.SetOSDChecked(enabled)
	}
	a.log.Info().Bool("enabled", enabled).Msg("OSD state changed")
}

// HotkeyList returns the registered definitions formatted one per line.
func (a *App) HotkeyList() []string {
	defs := a.registry.Definitions()
	list := make([]string, len(defs))
	for i, def := range defs {
		list[i] = def.String()
	}
	return list
}

// OpenDashboard opens the web dashboard in the default browser.
func (a *App) OpenDashboard() error {
	a.mu.Lock()
	enabled, port := a.cfg.Web.Enabled, a.cfg.Web.Port
	a.mu.Unlock()

	if !enabled {
		return fmt.Errorf("web dashboard is disabled in the config")
	}
	return a.launcher.Open(fmt.Sprintf("http://localhost:%d", port))
}

// HotkeyDispatched records the event and feeds the live dashboard.
func (a *App) HotkeyDispatched(ev dispatch.Event) {
	if a.history != nil {
		rec := &history.Event{
			At:     ev.At,
			Combo:  ev.Combo.String(),
			Action: ev.Action.String(),
			Args:   strings.Join(ev.Args, " "),
			OK:     ev.OK,
			Detail: ev.Detail,
		}
		if err := a.history.Append(rec); err != nil {
			a.log.Error().Err(err).Msg("Failed to record event")
		}
	}

	if a.web != nil {
		a.web.BroadcastEvent(ev)
	}
}

// osdHooks adapts the app's OSD state to the dispatcher's interface.
type osdHooks struct{ a *App }

func (h osdHooks) Enabled() bool           { return h.a.OSDEnabled() }
func (h osdHooks) SetEnabled(enabled bool) { h.a.SetOSDEnabled(enabled) }
func (h osdHooks) ShowVolumeSlider()       { h.a.log.Debug().Msg("Volume slider requested") }
func (h osdHooks) ShowBrightnessSlider()   { h.a.log.Debug().Msg("Brightness slider requested") }

// controlHooks routes Settings and Exit hotkeys back into the app.
type controlHooks struct{ a *App }

func (h controlHooks) OpenSettings() {
	if err := h.a.OpenDashboard(); err != nil {
		h.a.log.Error().Err(err).Msg("Failed to open dashboard")
	}
}

func (h controlHooks) Quit() { h.a.Quit() }
