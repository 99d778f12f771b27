// Package dispatch routes hotkey definitions to the controllers that
// carry them out.
package dispatch

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/ccxla/3RVX/internal/hotkey"
	"github.com/ccxla/3RVX/internal/keys"
	"github.com/rs/zerolog"
)

// Levels sit in 0..1. Values within this distance of a unit boundary
// count as being on the boundary.
const levelEpsilon = 0.000001

// LevelController reads and writes a device level in the range 0..1.
// Implementations clamp out-of-range values.
type LevelController interface {
	Level() float64
	SetLevel(level float64)
}

// VolumeController is a LevelController with a mute switch.
type VolumeController interface {
	LevelController
	Muted() bool
	SetMuted(muted bool)
}

// DriveEjector opens removable drive trays.
type DriveEjector interface {
	Eject(drive string) error
	EjectLast() error
}

// KeySender posts synthetic key taps to the active session.
type KeySender interface {
	Tap(vk int) error
}

// CommandRunner starts an external program without waiting for it.
type CommandRunner interface {
	Run(command string) error
}

// OSD is the on-screen display surface. Slider calls are requests;
// the surface decides how to present them.
type OSD interface {
	Enabled() bool
	SetEnabled(enabled bool)
	ShowVolumeSlider()
	ShowBrightnessSlider()
}

// AppControl exposes application actions to hotkeys.
type AppControl interface {
	OpenSettings()
	Quit()
}

// Event describes one dispatched hotkey.
type Event struct {
	At     time.Time
	Combo  keys.Combo
	Action hotkey.Action
	Args   []string
	OK     bool
	Detail string
}

// Observer is notified after every dispatch. Calls happen on the
// dispatching goroutine, so implementations should return quickly.
type Observer interface {
	HotkeyDispatched(Event)
}

// Config carries the collaborators a Dispatcher drives.
type Config struct {
	Registry   *Registry
	Volume     VolumeController
	Brightness LevelController
	Drives     DriveEjector
	Keys       KeySender
	Runner     CommandRunner
	OSD        OSD
	App        AppControl
	Units      int
	Observer   Observer // Optional - can be nil
	Logger     zerolog.Logger
}

// Dispatcher looks up combinations in a Registry and runs the matching
// definition against its controllers.
type Dispatcher struct {
	reg        *Registry
	volume     VolumeController
	brightness LevelController
	drives     DriveEjector
	keys       KeySender
	runner     CommandRunner
	osd        OSD
	app        AppControl
	observer   Observer
	log        zerolog.Logger

	// mu serializes handlers; level math reads and then writes.
	mu        sync.Mutex
	units     int
	increment float64
}

// New wires a Dispatcher from cfg. A non-positive unit scale falls
// back to the stock ten units.
func New(cfg Config) *Dispatcher {
	units := cfg.Units
	if units <= 0 {
		units = 10
	}
	return &Dispatcher{
		reg:        cfg.Registry,
		volume:     cfg.Volume,
		brightness: cfg.Brightness,
		drives:     cfg.Drives,
		keys:       cfg.Keys,
		runner:     cfg.Runner,
		osd:        cfg.OSD,
		app:        cfg.App,
		observer:   cfg.Observer,
		log:        cfg.Logger,
		units:      units,
		// One unit of level change. The integer division happens
		// first, so a scale of 3 steps by 0.3333 rather than a third.
		increment: float64(10000/units) / 10000,
	}
}

// Units reports the configured unit scale.
func (d *Dispatcher) Units() int {
	return d.units
}

// Dispatch runs the definition registered for combo and reports
// whether one was found. Handler failures are logged and recorded on
// the emitted Event rather than returned.
func (d *Dispatcher) Dispatch(combo keys.Combo) bool {
	def, ok := d.reg.Lookup(combo)
	if !ok {
		d.log.Debug().Str("combo", combo.String()).Msg("No hotkey registered")
		return false
	}

	d.mu.Lock()
	detail, err := d.route(def)
	d.mu.Unlock()

	ev := Event{
		At:     time.Now(),
		Combo:  def.Combo,
		Action: def.Action,
		Args:   append([]string(nil), def.Args...),
		OK:     err == nil,
		Detail: detail,
	}
	if err != nil {
		ev.Detail = err.Error()
		d.log.Error().Err(err).Str("hotkey", def.String()).Msg("Hotkey failed")
	} else {
		d.log.Info().Str("hotkey", def.String()).Str("detail", detail).Msg("Hotkey dispatched")
	}

	if d.observer != nil {
		d.observer.HotkeyDispatched(ev)
	}
	return true
}

func (d *Dispatcher) route(def *hotkey.Definition) (string, error) {
	switch def.Action {
	case hotkey.IncreaseVolume:
		d.unmute()
		return d.adjustLevel(d.volume, def, false), nil

	case hotkey.DecreaseVolume:
		d.unmute()
		return d.adjustLevel(d.volume, def, true), nil

	case hotkey.SetVolume:
		return d.setLevel(d.volume, def)

	case hotkey.Mute:
		muted := !d.volume.Muted()
		d.volume.SetMuted(muted)
		if muted {
			return "muted", nil
		}
		return "unmuted", nil

	case hotkey.VolumeSlider:
		d.osd.ShowVolumeSlider()
		return "volume slider requested", nil

	case hotkey.EjectDrive:
		drive := def.Args[0]
		if err := d.drives.Eject(drive); err != nil {
			return "", fmt.Errorf("eject %s: %w", drive, err)
		}
		return "ejected " + drive, nil

	case hotkey.EjectLastDisk:
		if err := d.drives.EjectLast(); err != nil {
			return "", fmt.Errorf("eject last: %w", err)
		}
		return "ejected last drive", nil

	case hotkey.IncreaseBrightness:
		return d.adjustLevel(d.brightness, def, false), nil

	case hotkey.DecreaseBrightness:
		return d.adjustLevel(d.brightness, def, true), nil

	case hotkey.SetBrightness:
		return d.setLevel(d.brightness, def)

	case hotkey.BrightnessSlider:
		d.osd.ShowBrightnessSlider()
		return "brightness slider requested", nil

	case hotkey.MediaKey:
		return d.mediaKey(def)

	case hotkey.VirtualKey:
		return d.virtualKey(def)

	case hotkey.Run:
		command := def.Args[0]
		if err := d.runner.Run(command); err != nil {
			return "", fmt.Errorf("run %q: %w", command, err)
		}
		return "ran " + command, nil

	case hotkey.ToggleOSD:
		enabled := !d.osd.Enabled()
		d.osd.SetEnabled(enabled)
		if enabled {
			return "osd enabled", nil
		}
		return "osd disabled", nil

	case hotkey.OpenSettings:
		d.app.OpenSettings()
		return "settings opened", nil

	case hotkey.Exit:
		d.app.Quit()
		return "exit requested", nil
	}

	return "", fmt.Errorf("no handler for action %d", int(def.Action))
}

func (d *Dispatcher) unmute() {
	if d.volume.Muted() {
		d.volume.SetMuted(false)
	}
}

// adjustLevel steps ctrl by the amount the definition carries. Percent
// amounts add a fraction of the full range; anything else moves whole
// units from the current unit position, one unit when no amount is
// given.
func (d *Dispatcher) adjustLevel(ctrl LevelController, def *hotkey.Definition, decrease bool) string {
	before := ctrl.Level()

	if def.AmountType() == hotkey.AmountPercent {
		delta := def.ArgToFloat(0) / 100
		if decrease {
			delta = -delta
		}
		ctrl.SetLevel(before + delta)
	} else {
		step := 1
		if decrease {
			step = -1
		}
		if def.AmountType() == hotkey.AmountUnits {
			step *= def.ArgToInt(0)
		}
		ctrl.SetLevel(float64(d.levelUnits(before)+step) * d.increment)
	}

	return levelDetail(before, ctrl.Level())
}

// setLevel jumps ctrl straight to the requested level. A definition
// without arguments changes nothing.
func (d *Dispatcher) setLevel(ctrl LevelController, def *hotkey.Definition) (string, error) {
	before := ctrl.Level()

	switch def.AmountType() {
	case hotkey.AmountNoArgs:
		return "no amount given", nil
	case hotkey.AmountUnits:
		ctrl.SetLevel(float64(def.ArgToInt(0)) * d.increment)
	case hotkey.AmountPercent:
		ctrl.SetLevel(def.ArgToFloat(0) / 100)
	default:
		return "", fmt.Errorf("unknown amount type %d", int(def.AmountType()))
	}

	return levelDetail(before, ctrl.Level()), nil
}

// levelUnits converts a level to whole units on the configured scale.
// Levels within a millionth of zero count as zero, and float noise at
// a unit boundary does not count as the next unit up.
func (d *Dispatcher) levelUnits(level float64) int {
	if level <= levelEpsilon {
		return 0
	}
	return int(math.Ceil(level*float64(d.units) - levelEpsilon))
}

func (d *Dispatcher) mediaKey(def *hotkey.Definition) (string, error) {
	index := def.ArgToInt(0)
	key := hotkey.Key(index)
	if !key.Known() {
		return "", fmt.Errorf("media key index %d out of range", index)
	}
	if err := d.keys.Tap(key.VK()); err != nil {
		return "", fmt.Errorf("media key %s: %w", key, err)
	}
	return "sent " + key.String(), nil
}

func (d *Dispatcher) virtualKey(def *hotkey.Definition) (string, error) {
	vk := def.HexArgToInt(0)
	if vk <= 0 || vk > 0xFFFF {
		return "", fmt.Errorf("no usable virtual key in %q", strings.Join(def.Args, " "))
	}
	if err := d.keys.Tap(vk); err != nil {
		return "", fmt.Errorf("virtual key 0x%02X: %w", vk, err)
	}
	return fmt.Sprintf("sent 0x%02X", vk), nil
}

func levelDetail(before, after float64) string {
	return fmt.Sprintf("level %.2f to %.2f", before, after)
}
