package hotkey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ccxla/3RVX/internal/keys"
)

// captureLog redirects the global logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })
	return &buf
}

func TestValid(t *testing.T) {
	combo := keys.Combo(0x1234)

	tests := []struct {
		name string
		def  *Definition
		want bool
	}{
		{"set volume with amount", New(combo, SetVolume, "50"), true},
		{"set volume zero amount", New(combo, SetVolume, "0"), true},
		{"set brightness zero amount", New(combo, SetBrightness, "0"), true},
		{"increase volume no args", New(combo, IncreaseVolume), true},
		{"increase volume with amount", New(combo, IncreaseVolume, "5"), true},
		{"increase volume units type", New(combo, IncreaseVolume, "5", "1"), true},
		{"decrease brightness percent type", New(combo, DecreaseBrightness, "10", "2"), true},
		{"mute", New(combo, Mute), true},
		{"mute ignores args", New(combo, Mute, "whatever"), true},
		{"volume slider", New(combo, VolumeSlider), true},
		{"eject drive with letter", New(combo, EjectDrive, "D"), true},
		{"eject last disk no args", New(combo, EjectLastDisk), true},
		{"media key with index", New(combo, MediaKey, "2"), true},
		{"virtual key no args", New(combo, VirtualKey), true},
		{"run with command", New(combo, Run, "notepad.exe"), true},
		{"toggle osd", New(combo, ToggleOSD), true},
		{"open settings", New(combo, OpenSettings), true},
		{"exit", New(combo, Exit), true},

		{"zero combo", New(0, Mute), false},
		{"negative combo", New(keys.Combo(-5), Mute), false},
		{"negative action", New(combo, Action(-1)), false},
		{"action at table size", New(combo, actionCount), false},
		{"action past table", New(combo, Action(99)), false},
		{"increase volume empty first arg", New(combo, IncreaseVolume, ""), false},
		{"increase volume amount too big", New(combo, IncreaseVolume, "101"), false},
		{"increase volume negative amount", New(combo, IncreaseVolume, "-1"), false},
		{"increase volume unparseable amount", New(combo, IncreaseVolume, "abc"), false},
		{"increase volume zero amount", New(combo, IncreaseVolume, "0"), false},
		{"decrease brightness zero amount", New(combo, DecreaseBrightness, "0"), false},
		{"increase volume bad type", New(combo, IncreaseVolume, "5", "3"), false},
		{"increase volume negative type", New(combo, IncreaseVolume, "5", "-1"), false},
		{"eject drive no args", New(combo, EjectDrive), false},
		{"media key no args", New(combo, MediaKey), false},
		{"run no args", New(combo, Run), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLog(t)
			if got := tt.def.Valid(); got != tt.want {
				t.Errorf("Valid(): got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidLogsReason(t *testing.T) {
	combo := keys.Combo(0x1234)

	tests := []struct {
		name   string
		def    *Definition
		reason string
	}{
		{"no combo", New(0, Mute), "No key combination"},
		{"bad action", New(combo, Action(99)), "Invalid action"},
		{"empty first arg", New(combo, SetVolume, ""), "No first argument"},
		{"amount out of range", New(combo, SetVolume, "200"), "Argument amount out of range"},
		{"zero increment", New(combo, DecreaseVolume, "0"), "Argument increment must be nonzero"},
		{"bad increment type", New(combo, IncreaseVolume, "5", "9"), "Unknown increment type"},
		{"missing required arg", New(combo, Run), "Argument required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			if tt.def.Valid() {
				t.Fatal("definition should be invalid")
			}
			logged := buf.String()
			if !strings.Contains(logged, tt.reason) {
				t.Errorf("log %q does not contain reason %q", logged, tt.reason)
			}
		})
	}
}

func TestValidLogsFormattedDefinition(t *testing.T) {
	buf := captureLog(t)

	d := New(0, Run, "calc.exe")
	if d.Valid() {
		t.Fatal("definition should be invalid")
	}
	if !strings.Contains(buf.String(), "Run [ 'calc.exe' ]") {
		t.Errorf("log %q does not contain the formatted definition", buf.String())
	}
}

func TestValidLogsNothingWhenValid(t *testing.T) {
	buf := captureLog(t)

	d := New(keys.Combo(0x1234), SetVolume, "50")
	if !d.Valid() {
		t.Fatal("definition should be valid")
	}
	if buf.Len() != 0 {
		t.Errorf("valid definition logged: %q", buf.String())
	}
}
