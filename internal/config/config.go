// Package config parses 3rvx.toml: daemon settings plus the hotkey
// definition list.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/ccxla/3RVX/internal/hotkey"
	"github.com/ccxla/3RVX/internal/keys"
)

type Config struct {
	LogLevel string        `toml:"log_level"`
	OSD      OSDConfig     `toml:"osd"`
	Web      WebConfig     `toml:"web"`
	History  HistoryConfig `toml:"history"`
	Hotkeys  []HotkeyEntry `toml:"hotkeys"`
}

// OSDConfig carries the on-screen display defaults the dispatcher needs.
type OSDConfig struct {
	Enabled bool `toml:"enabled"`
	Units   int  `toml:"units"` // meter units used by unit-based volume hotkeys
}

type WebConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
	Keep    int  `toml:"keep"` // dispatch events retained; 0 = unlimited
}

// HotkeyEntry is one [[hotkeys]] block: a combo string, an action
// display name, and positional arguments.
type HotkeyEntry struct {
	Combo  string   `toml:"combo"`
	Action string   `toml:"action"`
	Args   []string `toml:"args"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		OSD: OSDConfig{
			Enabled: true,
			Units:   10,
		},
		Web: WebConfig{
			Enabled: true,
			Port:    3789,
		},
		History: HistoryConfig{
			Enabled: true,
			Keep:    1000,
		},
	}
}

// Validate checks settings that would cause confusing runtime failures.
// It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of trace, debug, info, warn, error"))
	}

	if c.OSD.Units <= 0 {
		errs = append(errs, fmt.Errorf("osd.units must be > 0"))
	}
	if c.Web.Enabled && (c.Web.Port < 1 || c.Web.Port > 65535) {
		errs = append(errs, fmt.Errorf("web.port must be in 1..65535"))
	}
	if c.History.Keep < 0 {
		errs = append(errs, fmt.Errorf("history.keep must be >= 0 (0 = unlimited)"))
	}

	return errors.Join(errs...)
}

// Load reads the config from path, or from Path() when path is empty.
// A missing file yields the defaults. Unknown keys are an error; they
// are almost always typos.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keyNames := make([]string, len(undecoded))
		for i, k := range undecoded {
			keyNames[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %v (possible typos?)", path, keyNames)
	}

	return &cfg, nil
}

// Save writes the config to path, or to Path() when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// Definitions converts the [[hotkeys]] entries into hotkey definitions.
// Entries whose combo or action cannot be resolved are skipped with a
// logged reason; semantic validity is checked at registration.
func (c *Config) Definitions() []*hotkey.Definition {
	var defs []*hotkey.Definition
	for _, entry := range c.Hotkeys {
		combo, err := keys.Parse(entry.Combo)
		if err != nil {
			log.Warn().Err(err).Str("combo", entry.Combo).Msg("Skipping hotkey entry")
			continue
		}

		action, ok := hotkey.ActionByName(entry.Action)
		if !ok {
			log.Warn().Str("action", entry.Action).Str("combo", entry.Combo).
				Msg("Skipping hotkey entry with unknown action")
			continue
		}

		defs = append(defs, hotkey.New(combo, action, entry.Args...))
	}
	return defs
}

// Path returns the platform-specific config file path.
func Path() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support")
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config")
		}
	}

	return filepath.Join(base, dirName(), "3rvx.toml")
}

// DataDir returns the platform-specific directory for the dispatch
// history database.
func DataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support")
	case "windows":
		base = os.Getenv("LOCALAPPDATA")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			base = xdg
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".local", "share")
		}
	}

	return filepath.Join(base, dirName())
}

func dirName() string {
	if runtime.GOOS == "linux" {
		return "3rvx"
	}
	return "3RVX"
}

// InitFile writes a commented default 3rvx.toml to dir. It refuses to
// overwrite an existing file.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, "3rvx.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: 3rvx.toml already exists at %s", path)
	}

	content := `# 3rvx.toml - hotkey daemon configuration.

log_level = "info"  # trace, debug, info, warn, error

[osd]
enabled = true
units = 10  # volume meter units used by unit-based hotkeys

[web]
enabled = true
port = 3789  # diagnostics dashboard at http://localhost:3789

[history]
enabled = true
keep = 1000  # dispatch events retained; 0 = unlimited

# Hotkey definitions. Actions go by their display names; args are
# positional strings (amount, increment type, command, ...).

[[hotkeys]]
combo = "ctrl+alt+up"
action = "Increase Volume"
args = ["5"]

[[hotkeys]]
combo = "ctrl+alt+down"
action = "Decrease Volume"
args = ["5"]

[[hotkeys]]
combo = "ctrl+alt+m"
action = "Mute"

[[hotkeys]]
combo = "ctrl+alt+p"
action = "Media Key"
args = ["0"]  # 0 = Play/Pause, 1 = Stop, 2 = Next, 3 = Previous
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
