package tray

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/ccxla/3RVX/internal/logging"
)

// Controller is the application surface the menu drives
type Controller interface {
	OSDEnabled() bool
	SetOSDEnabled(enabled bool)
	HotkeyList() []string
	ReloadConfig() error
	OpenDashboard() error
	Quit()
}

type UI struct {
	app     Controller
	version string
	commit  string
	log     zerolog.Logger

	ctx context.Context

	// Menu items
	mOSD *systray.MenuItem
}

func New(app Controller, version, commit string) *UI {
	log := logging.New()
	return &UI{
		app:     app,
		version: version,
		commit:  commit,
		log:     log,
	}
}

// SetApp sets the app reference (for circular dependency resolution)
func (u *UI) SetApp(app Controller) {
	u.app = app
}

// SetOSDChecked syncs the menu checkbox with the OSD state. Hotkey
// toggles land here too, so the guard covers calls before the menu is
// built.
func (u *UI) SetOSDChecked(enabled bool) {
	if u.mOSD == nil {
		return
	}
	if enabled {
		u.mOSD.Check()
	} else {
		u.mOSD.Uncheck()
	}
}

// Run starts the tray loop. It must run on the main thread and blocks
// until the menu quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	u.ctx = ctx
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	systray.SetTitle("🔊")
	systray.SetTooltip("3RVX volume hotkeys")

	// Build menu
	u.mOSD = systray.AddMenuItemCheckbox("On-Screen Display", "Show sliders when hotkeys fire", u.app.OSDEnabled())
	systray.AddSeparator()

	mDashboard := systray.AddMenuItem("Open Dashboard", "View hotkeys and dispatch history")
	mCopy := systray.AddMenuItem("Copy Hotkey List", "Copy the registered hotkeys")
	mReload := systray.AddMenuItem("Reload Config", "Re-read 3rvx.toml")

	systray.AddSeparator()
	mAbout := systray.AddMenuItem("About", "About 3RVX")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	// Event loop
	go u.handleEvents(mDashboard, mCopy, mReload, mAbout, mQuit)
}

func (u *UI) handleEvents(mDashboard, mCopy, mReload, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.ctx.Done():
			systray.Quit()
			return
		case <-u.mOSD.ClickedCh:
			u.toggleOSD()
		case <-mDashboard.ClickedCh:
			u.openDashboard()
		case <-mCopy.ClickedCh:
			u.copyHotkeyList()
		case <-mReload.ClickedCh:
			u.reloadConfig()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			u.log.Info().Msg("Quit requested from tray")
			u.app.Quit()
			systray.Quit()
			return
		}
	}
}

func (u *UI) toggleOSD() {
	enabled := !u.app.OSDEnabled()
	u.app.SetOSDEnabled(enabled)
	u.SetOSDChecked(enabled)
	if enabled {
		u.log.Info().Msg("Enabled on-screen display")
	} else {
		u.log.Info().Msg("Disabled on-screen display")
	}
}

func (u *UI) openDashboard() {
	if err := u.app.OpenDashboard(); err != nil {
		u.log.Error().Err(err).Msg("Failed to open dashboard")
	}
}

func (u *UI) copyHotkeyList() {
	list := u.app.HotkeyList()
	if len(list) == 0 {
		u.log.Warn().Msg("No hotkeys to copy")
		return
	}
	if err := clipboard.WriteAll(strings.Join(list, "\n")); err != nil {
		u.log.Error().Err(err).Msg("Failed to copy hotkey list")
		return
	}
	u.log.Info().Int("hotkeys", len(list)).Msg("Copied hotkey list")
}

func (u *UI) reloadConfig() {
	if err := u.app.ReloadConfig(); err != nil {
		u.log.Error().Err(err).Msg("Failed to reload config")
		return
	}
	u.log.Info().Msg("Config reloaded")
}

func (u *UI) showAbout() {
	// TODO: Show about dialog with native UI
	fmt.Printf("3RVX %s (%s)\nVolume and media hotkey daemon\n", u.version, u.commit)
}

func (u *UI) onExit() {
	// Cleanup
}
