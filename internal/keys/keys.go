// Package keys handles key combination codes: a single int packing
// modifier flags and a virtual-key code, plus parsing and rendering of
// combo strings like "ctrl+alt+v".
package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier flag values match the Win32 MOD_* constants.
const (
	ModAlt   = 0x0001
	ModCtrl  = 0x0002
	ModShift = 0x0004
	ModWin   = 0x0008
)

// Media transport virtual-key codes.
const (
	VKMediaNext      = 0xB0
	VKMediaPrev      = 0xB1
	VKMediaStop      = 0xB2
	VKMediaPlayPause = 0xB3
)

// Combo is a key combination packed into one int: modifier flags in the
// high word, virtual-key code in the low word. Zero means "no combination".
type Combo int

// New packs modifier flags and a virtual-key code into a Combo.
func New(modifiers, vk int) Combo {
	return Combo(modifiers<<16 | vk&0xFFFF)
}

// Modifiers returns the modifier flag bits of the combo.
func (c Combo) Modifiers() int {
	return int(c) >> 16 & 0xFFFF
}

// VK returns the virtual-key code of the combo.
func (c Combo) VK() int {
	return int(c) & 0xFFFF
}

// Parse converts a combo string like "ctrl+shift+f10" into a Combo.
// Modifier names accept the spellings ctrl/control, alt, shift and
// win/windows/super. The final part must be a key name.
func Parse(s string) (Combo, error) {
	parts := strings.Split(strings.ToLower(s), "+")

	var mods int
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, fmt.Errorf("keys: empty element in combo %q", s)
		}

		if mod, ok := modifierNamed(part); ok {
			if i == len(parts)-1 {
				return 0, fmt.Errorf("keys: combo %q has no key", s)
			}
			mods |= mod
			continue
		}

		if i != len(parts)-1 {
			return 0, fmt.Errorf("keys: unknown modifier %q in combo %q", part, s)
		}

		vk := parseKey(part)
		if vk == 0 {
			return 0, fmt.Errorf("keys: unknown key %q in combo %q", part, s)
		}
		return New(mods, vk), nil
	}

	return 0, fmt.Errorf("keys: empty combo")
}

// String renders the combo as "Ctrl+Alt+V". Virtual keys without a
// display name render as hex.
func (c Combo) String() string {
	if c <= 0 {
		return "(none)"
	}

	var parts []string
	mods := c.Modifiers()
	if mods&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if mods&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if mods&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if mods&ModWin != 0 {
		parts = append(parts, "Win")
	}
	parts = append(parts, displayKey(c.VK()))

	return strings.Join(parts, "+")
}

func modifierNamed(name string) (int, bool) {
	switch name {
	case "ctrl", "control":
		return ModCtrl, true
	case "alt":
		return ModAlt, true
	case "shift":
		return ModShift, true
	case "win", "windows", "super":
		return ModWin, true
	}
	return 0, false
}

// parseKey maps a lowercase key name to its virtual-key code, or 0 when
// the name is unknown.
func parseKey(s string) int {
	if len(s) == 1 {
		if s[0] >= 'a' && s[0] <= 'z' {
			return int(s[0]) - 'a' + 'A'
		}
		if s[0] >= '0' && s[0] <= '9' {
			return int(s[0])
		}
	}

	// F1 through F24 occupy a contiguous VK range starting at 0x70.
	if len(s) > 1 && s[0] == 'f' {
		if n, err := strconv.Atoi(s[1:]); err == nil && n >= 1 && n <= 24 {
			return 0x70 + n - 1
		}
	}

	if vk, ok := namedVK[s]; ok {
		return vk
	}
	return 0
}

// displayKey renders a virtual-key code for humans.
func displayKey(vk int) string {
	if vk >= 'A' && vk <= 'Z' || vk >= '0' && vk <= '9' {
		return string(rune(vk))
	}
	if vk >= 0x70 && vk <= 0x87 {
		return fmt.Sprintf("F%d", vk-0x70+1)
	}
	if name, ok := vkDisplay[vk]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", vk)
}

var namedVK = map[string]int{
	"space":       0x20,
	"enter":       0x0D,
	"return":      0x0D,
	"esc":         0x1B,
	"escape":      0x1B,
	"tab":         0x09,
	"backspace":   0x08,
	"left":        0x25,
	"up":          0x26,
	"right":       0x27,
	"down":        0x28,
	"home":        0x24,
	"end":         0x23,
	"pageup":      0x21,
	"pagedown":    0x22,
	"insert":      0x2D,
	"delete":      0x2E,
	"pause":       0x13,
	"printscreen": 0x2C,
	"medianext":   VKMediaNext,
	"mediaprev":   VKMediaPrev,
	"mediastop":   VKMediaStop,
	"mediaplay":   VKMediaPlayPause,
}

var vkDisplay = map[int]string{
	0x20:             "Space",
	0x0D:             "Enter",
	0x1B:             "Esc",
	0x09:             "Tab",
	0x08:             "Backspace",
	0x25:             "Left",
	0x26:             "Up",
	0x27:             "Right",
	0x28:             "Down",
	0x24:             "Home",
	0x23:             "End",
	0x21:             "PageUp",
	0x22:             "PageDown",
	0x2D:             "Insert",
	0x2E:             "Delete",
	0x13:             "Pause",
	0x2C:             "PrintScreen",
	VKMediaNext:      "Next Track",
	VKMediaPrev:      "Prev Track",
	VKMediaStop:      "Media Stop",
	VKMediaPlayPause: "Play/Pause",
}
