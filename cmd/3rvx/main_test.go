package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootSubcommands(t *testing.T) {
	root := rootCmd()

	want := []string{"run", "validate", "actions", "init"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestFormatActionTables(t *testing.T) {
	got := formatActionTables()

	contains := []string{
		"Actions",
		"───────",
		" 0  Increase Volume",
		"16  Exit 3RVX",
		"Media Keys",
		"Play/Pause",
		"0xB3",
		"Previous",
		"0xB1",
	}
	for _, want := range contains {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q\ngot:\n%s", want, got)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "3rvx.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		wantErr  bool
		contains []string
	}{
		{
			name: "all valid",
			config: `
[[hotkeys]]
combo = "ctrl+alt+m"
action = "Mute"

[[hotkeys]]
combo = "ctrl+alt+up"
action = "Increase Volume"
args = ["5"]
`,
			wantErr: false,
			contains: []string{
				"✅ Ctrl+Alt+M -> Mute [ ]",
				"✅ Ctrl+Alt+Up -> Increase Volume [ '5' ]",
				"2 entries: 2 ok, 0 invalid, 0 unparseable",
			},
		},
		{
			name: "semantically invalid amount",
			config: `
[[hotkeys]]
combo = "ctrl+alt+up"
action = "Increase Volume"
args = ["abc"]
`,
			wantErr: true,
			contains: []string{
				"❌ Ctrl+Alt+Up -> Increase Volume [ 'abc' ]",
				"1 entries: 0 ok, 1 invalid, 0 unparseable",
			},
		},
		{
			name: "unknown action skipped",
			config: `
[[hotkeys]]
combo = "ctrl+alt+m"
action = "Mute"

[[hotkeys]]
combo = "ctrl+alt+z"
action = "Teleport"
`,
			wantErr: true,
			contains: []string{
				"✅ Ctrl+Alt+M -> Mute [ ]",
				"2 entries: 1 ok, 0 invalid, 1 unparseable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.config)

			report, err := validateConfig(path)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			for _, want := range tt.contains {
				if !strings.Contains(report, want) {
					t.Errorf("report should contain %q\ngot:\n%s", want, report)
				}
			}
		})
	}
}

func TestValidateConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "bogus = 1\n")

	if _, err := validateConfig(path); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestValidateConfigMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "3rvx.toml")

	report, err := validateConfig(path)
	if err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if !strings.Contains(report, "0 entries") {
		t.Errorf("expected empty hotkey report, got:\n%s", report)
	}
}
