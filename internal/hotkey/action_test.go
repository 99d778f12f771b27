package hotkey

import "testing"

func TestActionNamesTotal(t *testing.T) {
	if len(actionNames) != int(actionCount) {
		t.Fatalf("action name table has %d entries, want %d", len(actionNames), actionCount)
	}
	for a := Action(0); a < actionCount; a++ {
		if actionNames[a] == "" {
			t.Errorf("action %d has no display name", a)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{IncreaseVolume, "Increase Volume"},
		{SetVolume, "Set Volume"},
		{VolumeSlider, "Show Volume Slider"},
		{EjectLastDisk, "Eject Last Disk"},
		{ToggleOSD, "Enable/Disable OSD"},
		{Exit, "Exit 3RVX"},
		{Action(-1), "(none)"},
		{actionCount, "(none)"},
		{Action(99), "(none)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.action.String(); got != tt.want {
				t.Errorf("Action(%d).String(): got %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestActionByName(t *testing.T) {
	a, ok := ActionByName("Media Key")
	if !ok || a != MediaKey {
		t.Errorf("got (%v, %v), want (MediaKey, true)", a, ok)
	}

	a, ok = ActionByName("exit 3rvx")
	if !ok || a != Exit {
		t.Errorf("case-insensitive lookup: got (%v, %v), want (Exit, true)", a, ok)
	}

	if _, ok := ActionByName("Do The Dishes"); ok {
		t.Error("unknown name should not resolve")
	}
	if _, ok := ActionByName(""); ok {
		t.Error("empty name should not resolve")
	}
}

func TestActionKnown(t *testing.T) {
	if Action(-1).Known() {
		t.Error("negative action should not be known")
	}
	if actionCount.Known() {
		t.Error("action == table size should not be known")
	}
	if !Exit.Known() {
		t.Error("last action should be known")
	}
}

func TestMediaKeyTable(t *testing.T) {
	tests := []struct {
		key  Key
		name string
		vk   int
	}{
		{MediaPlayPause, "Play/Pause", 0xB3},
		{MediaStop, "Stop", 0xB2},
		{MediaNext, "Next", 0xB0},
		{MediaPrev, "Previous", 0xB1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.name {
				t.Errorf("name: got %q, want %q", got, tt.name)
			}
			if got := tt.key.VK(); got != tt.vk {
				t.Errorf("vk: got 0x%X, want 0x%X", got, tt.vk)
			}
		})
	}

	if Key(4).Known() {
		t.Error("media key 4 should not be known")
	}
	if got := Key(4).VK(); got != 0 {
		t.Errorf("out-of-table vk: got 0x%X, want 0", got)
	}
	if got := Key(-1).String(); got != "(none)" {
		t.Errorf("out-of-table name: got %q, want %q", got, "(none)")
	}
}
