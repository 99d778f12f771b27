package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccxla/3RVX/internal/hotkey"
	"github.com/ccxla/3RVX/internal/keys"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"log_level", cfg.LogLevel, "info"},
		{"osd.enabled", cfg.OSD.Enabled, true},
		{"osd.units", cfg.OSD.Units, 10},
		{"web.enabled", cfg.Web.Enabled, true},
		{"web.port", cfg.Web.Port, 3789},
		{"history.enabled", cfg.History.Enabled, true},
		{"history.keep", cfg.History.Keep, 1000},
		{"hotkeys empty", len(cfg.Hotkeys), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		content := `
log_level = "debug"

[osd]
enabled = false
units = 20

[web]
enabled = false
port = 9000

[history]
enabled = false
keep = 50

[[hotkeys]]
combo = "ctrl+alt+v"
action = "Set Volume"
args = ["50"]

[[hotkeys]]
combo = "ctrl+alt+m"
action = "Mute"
`
		path := filepath.Join(dir, "3rvx.toml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.LogLevel != "debug" {
			t.Errorf("log_level: got %q, want %q", cfg.LogLevel, "debug")
		}
		if cfg.OSD.Units != 20 {
			t.Errorf("osd.units: got %d, want 20", cfg.OSD.Units)
		}
		if cfg.Web.Port != 9000 {
			t.Errorf("web.port: got %d, want 9000", cfg.Web.Port)
		}
		if len(cfg.Hotkeys) != 2 {
			t.Fatalf("hotkeys: got %d entries, want 2", len(cfg.Hotkeys))
		}
		if cfg.Hotkeys[0].Action != "Set Volume" {
			t.Errorf("hotkeys[0].action: got %q, want %q", cfg.Hotkeys[0].Action, "Set Volume")
		}
		if len(cfg.Hotkeys[0].Args) != 1 || cfg.Hotkeys[0].Args[0] != "50" {
			t.Errorf("hotkeys[0].args: got %v, want [50]", cfg.Hotkeys[0].Args)
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "3rvx.toml")
		if err := os.WriteFile(path, []byte("log_level = \"warn\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("log_level: got %q, want %q", cfg.LogLevel, "warn")
		}
		if cfg.OSD.Units != 10 {
			t.Errorf("osd.units: got %d, want 10 (default)", cfg.OSD.Units)
		}
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "3rvx.toml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Web.Port != 3789 {
			t.Errorf("web.port: got %d, want 3789 (default)", cfg.Web.Port)
		}
	})

	t.Run("unknown keys are an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "3rvx.toml")
		if err := os.WriteFile(path, []byte("log_lvl = \"info\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "log_lvl") {
			t.Errorf("error %q does not name the unknown key", err)
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "3rvx.toml")
		if err := os.WriteFile(path, []byte("not valid [[[ toml"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"zero units", func(c *Config) { c.OSD.Units = 0 }, "osd.units"},
		{"negative units", func(c *Config) { c.OSD.Units = -4 }, "osd.units"},
		{"bad web port", func(c *Config) { c.Web.Port = 0 }, "web.port"},
		{"web port ignored when disabled", func(c *Config) { c.Web.Enabled = false; c.Web.Port = 0 }, ""},
		{"negative keep", func(c *Config) { c.History.Keep = -1 }, "history.keep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefinitions(t *testing.T) {
	cfg := Defaults()
	cfg.Hotkeys = []HotkeyEntry{
		{Combo: "ctrl+alt+v", Action: "Set Volume", Args: []string{"50"}},
		{Combo: "nonsense+key", Action: "Mute"},             // bad combo, skipped
		{Combo: "ctrl+alt+x", Action: "Levitate"},           // bad action, skipped
		{Combo: "ctrl+alt+m", Action: "mute"},               // case-insensitive action
		{Combo: "ctrl+alt+p", Action: "Media Key", Args: []string{"0"}},
	}

	defs := cfg.Definitions()
	if len(defs) != 3 {
		t.Fatalf("got %d definitions, want 3", len(defs))
	}

	want, err := keys.Parse("ctrl+alt+v")
	if err != nil {
		t.Fatal(err)
	}
	if defs[0].Combo != want {
		t.Errorf("combo: got 0x%X, want 0x%X", int(defs[0].Combo), int(want))
	}
	if defs[0].Action != hotkey.SetVolume {
		t.Errorf("action: got %v, want SetVolume", defs[0].Action)
	}
	if len(defs[0].Args) != 1 || defs[0].Args[0] != "50" {
		t.Errorf("args: got %v, want [50]", defs[0].Args)
	}
	if defs[1].Action != hotkey.Mute {
		t.Errorf("case-insensitive action: got %v, want Mute", defs[1].Action)
	}
	if defs[2].Action != hotkey.MediaKey {
		t.Errorf("action: got %v, want MediaKey", defs[2].Action)
	}
}

func TestInitFile(t *testing.T) {
	t.Run("creates loadable config", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != "3rvx.toml" {
			t.Errorf("got %s, want 3rvx.toml", filepath.Base(path))
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("generated config fails validation: %v", err)
		}

		// Every template entry must survive conversion.
		defs := cfg.Definitions()
		if len(defs) != len(cfg.Hotkeys) {
			t.Errorf("definitions: got %d, want %d", len(defs), len(cfg.Hotkeys))
		}
		for _, d := range defs {
			if !d.Valid() {
				t.Errorf("template definition invalid: %s", d)
			}
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "3rvx.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := InitFile(dir); err == nil {
			t.Error("expected error when 3rvx.toml already exists")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "3rvx.toml")

	cfg := Defaults()
	cfg.LogLevel = "debug"
	cfg.OSD.Enabled = false
	cfg.Hotkeys = []HotkeyEntry{
		{Combo: "ctrl+alt+e", Action: "Eject Drive", Args: []string{"D"}},
	}

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("log_level: got %q, want %q", loaded.LogLevel, "debug")
	}
	if loaded.OSD.Enabled {
		t.Error("osd.enabled: got true, want false")
	}
	if len(loaded.Hotkeys) != 1 || loaded.Hotkeys[0].Combo != "ctrl+alt+e" {
		t.Errorf("hotkeys: got %+v", loaded.Hotkeys)
	}
}
