package dispatch

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// MemVolume is an in-memory VolumeController. It stands in for a real
// audio endpoint, clamping levels to 0..1 and logging transitions.
type MemVolume struct {
	mu    sync.Mutex
	level float64
	muted bool
	log   zerolog.Logger
}

// NewMemVolume returns a MemVolume starting at level.
func NewMemVolume(level float64, logger zerolog.Logger) *MemVolume {
	return &MemVolume{level: clampLevel(level), log: logger}
}

func (v *MemVolume) Level() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.level
}

func (v *MemVolume) SetLevel(level float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.level = clampLevel(level)
	v.log.Debug().Float64("level", v.level).Msg("Volume level set")
}

func (v *MemVolume) Muted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.muted
}

func (v *MemVolume) SetMuted(muted bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.muted = muted
	v.log.Debug().Bool("muted", muted).Msg("Volume mute set")
}

// MemBrightness is an in-memory LevelController standing in for a
// display backlight.
type MemBrightness struct {
	mu    sync.Mutex
	level float64
	log   zerolog.Logger
}

// NewMemBrightness returns a MemBrightness starting at level.
func NewMemBrightness(level float64, logger zerolog.Logger) *MemBrightness {
	return &MemBrightness{level: clampLevel(level), log: logger}
}

func (b *MemBrightness) Level() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

func (b *MemBrightness) SetLevel(level float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = clampLevel(level)
	b.log.Debug().Float64("level", b.level).Msg("Brightness level set")
}

// MemDrives is an in-memory DriveEjector that records eject requests.
type MemDrives struct {
	mu   sync.Mutex
	last string
	log  zerolog.Logger
}

// NewMemDrives returns a MemDrives with no eject history.
func NewMemDrives(logger zerolog.Logger) *MemDrives {
	return &MemDrives{log: logger}
}

func (d *MemDrives) Eject(drive string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = drive
	d.log.Info().Str("drive", drive).Msg("Drive ejected")
	return nil
}

// EjectLast ejects the most recently ejected drive again. It fails
// when no drive has been ejected yet.
func (d *MemDrives) EjectLast() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last == "" {
		return errors.New("no drive ejected yet")
	}
	d.log.Info().Str("drive", d.last).Msg("Drive ejected")
	return nil
}

// Last returns the most recently ejected drive, or "" when none has
// been ejected.
func (d *MemDrives) Last() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func clampLevel(level float64) float64 {
	switch {
	case level < 0:
		return 0
	case level > 1:
		return 1
	}
	return level
}
