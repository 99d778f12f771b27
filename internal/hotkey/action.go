package hotkey

import (
	"strings"

	"github.com/ccxla/3RVX/internal/keys"
)

// Action identifies what a hotkey does. The set of actions is closed;
// values outside the table are never dispatched and render as "(none)".
type Action int

const (
	IncreaseVolume Action = iota
	DecreaseVolume
	SetVolume
	Mute
	VolumeSlider
	EjectDrive
	EjectLastDisk
	IncreaseBrightness
	DecreaseBrightness
	SetBrightness
	BrightnessSlider
	MediaKey
	VirtualKey
	Run
	ToggleOSD
	OpenSettings
	Exit

	actionCount
)

// actionNames is total over the Action range; the settings UI and the
// formatter index it by Action value.
var actionNames = [actionCount]string{
	IncreaseVolume:     "Increase Volume",
	DecreaseVolume:     "Decrease Volume",
	SetVolume:          "Set Volume",
	Mute:               "Mute",
	VolumeSlider:       "Show Volume Slider",
	EjectDrive:         "Eject Drive",
	EjectLastDisk:      "Eject Last Disk",
	IncreaseBrightness: "Increase Brightness",
	DecreaseBrightness: "Decrease Brightness",
	SetBrightness:      "Set Brightness",
	BrightnessSlider:   "Brightness Slider",
	MediaKey:           "Media Key",
	VirtualKey:         "Virtual Key",
	Run:                "Run",
	ToggleOSD:          "Enable/Disable OSD",
	OpenSettings:       "Open Settings Dialog",
	Exit:               "Exit 3RVX",
}

// Known reports whether a is one of the defined actions.
func (a Action) Known() bool {
	return a >= 0 && a < actionCount
}

// String returns the action's display name, or "(none)" for values
// outside the table.
func (a Action) String() string {
	if !a.Known() {
		return "(none)"
	}
	return actionNames[a]
}

// ActionByName resolves a display name to its Action, case-insensitively.
func ActionByName(name string) (Action, bool) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), true
		}
	}
	return 0, false
}

// ActionNames returns the display names of all actions in table order.
func ActionNames() []string {
	names := make([]string, len(actionNames))
	copy(names, actionNames[:])
	return names
}

// Key identifies a media transport key. Media Key hotkeys carry the
// key as a table index in their first argument.
type Key int

const (
	MediaPlayPause Key = iota
	MediaStop
	MediaNext
	MediaPrev

	mediaKeyCount
)

var mediaKeyNames = [mediaKeyCount]string{
	MediaPlayPause: "Play/Pause",
	MediaStop:      "Stop",
	MediaNext:      "Next",
	MediaPrev:      "Previous",
}

var mediaKeyVKs = [mediaKeyCount]int{
	MediaPlayPause: keys.VKMediaPlayPause,
	MediaStop:      keys.VKMediaStop,
	MediaNext:      keys.VKMediaNext,
	MediaPrev:      keys.VKMediaPrev,
}

// Known reports whether k is one of the defined media keys.
func (k Key) Known() bool {
	return k >= 0 && k < mediaKeyCount
}

// String returns the media key's display name, or "(none)" for values
// outside the table.
func (k Key) String() string {
	if !k.Known() {
		return "(none)"
	}
	return mediaKeyNames[k]
}

// VK returns the virtual-key code for the media key, or 0 for values
// outside the table.
func (k Key) VK() int {
	if !k.Known() {
		return 0
	}
	return mediaKeyVKs[k]
}

// MediaKeyNames returns the display names of all media keys in table order.
func MediaKeyNames() []string {
	names := make([]string, len(mediaKeyNames))
	copy(names, mediaKeyNames[:])
	return names
}
