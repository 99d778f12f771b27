// Package hotkey models hotkey definitions: a key combination bound to
// an action with an ordered list of string arguments. Definitions are
// built by the config loader, checked once with Valid, and then queried
// on every dispatch, so the numeric argument views can be memoized.
package hotkey

import (
	"strconv"
	"strings"

	"github.com/ccxla/3RVX/internal/keys"
)

// AmountType classifies the first argument of a volume or brightness
// hotkey: absent, a number of meter units, or a percentage.
type AmountType int

const (
	AmountNoArgs AmountType = iota
	AmountUnits
	AmountPercent
)

func (t AmountType) String() string {
	switch t {
	case AmountNoArgs:
		return "no-args"
	case AmountUnits:
		return "units"
	case AmountPercent:
		return "percent"
	}
	return "unknown"
}

// Definition binds a key combination to an action and its arguments.
// A Definition is owned by a single goroutine at a time; the dispatcher
// serializes all access, so there is no locking here.
type Definition struct {
	Combo  keys.Combo
	Action Action
	Args   []string

	cache     bool
	intArgs   map[int]int
	floatArgs map[int]float64
}

// New returns a Definition for the given combo, action and arguments.
func New(combo keys.Combo, action Action, args ...string) *Definition {
	return &Definition{Combo: combo, Action: action, Args: args}
}

// HasArgs reports whether the definition carries any arguments.
func (d *Definition) HasArgs() bool {
	return len(d.Args) > 0
}

// HasArg reports whether argument i exists.
func (d *Definition) HasArg(i int) bool {
	return i >= 0 && i < len(d.Args)
}

// AllocateArg grows the argument list so that index i exists, filling
// new slots with empty strings. Existing arguments are preserved; the
// list never shrinks.
func (d *Definition) AllocateArg(i int) {
	if i < len(d.Args) {
		return
	}
	grown := make([]string, i+1)
	copy(grown, d.Args)
	d.Args = grown
}

// ArgToInt returns argument i as an integer. A missing argument or a
// string that does not parse yields 0; there is no error path.
func (d *Definition) ArgToInt(i int) int {
	if !d.HasArg(i) {
		return 0
	}
	if d.cache {
		if v, ok := d.intArgs[i]; ok {
			return v
		}
	}

	v, err := strconv.Atoi(strings.TrimSpace(d.Args[i]))
	if err != nil {
		v = 0
	}

	if d.cache {
		if d.intArgs == nil {
			d.intArgs = make(map[int]int)
		}
		d.intArgs[i] = v
	}
	return v
}

// ArgToFloat returns argument i as a float. A missing argument or a
// string that does not parse yields 0.
func (d *Definition) ArgToFloat(i int) float64 {
	if !d.HasArg(i) {
		return 0
	}
	if d.cache {
		if v, ok := d.floatArgs[i]; ok {
			return v
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(d.Args[i]), 64)
	if err != nil {
		v = 0
	}

	if d.cache {
		if d.floatArgs == nil {
			d.floatArgs = make(map[int]float64)
		}
		d.floatArgs[i] = v
	}
	return v
}

// HexArgToInt returns argument i parsed as base-16, with or without a
// leading 0x. It shares the integer cache with ArgToInt, so a given
// index must not be read as both decimal and hex while caching is on.
func (d *Definition) HexArgToInt(i int) int {
	if !d.HasArg(i) {
		return 0
	}
	if d.cache {
		if v, ok := d.intArgs[i]; ok {
			return v
		}
	}

	s := strings.TrimSpace(d.Args[i])
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	var v int
	if parsed, err := strconv.ParseInt(s, 16, 64); err == nil {
		v = int(parsed)
		if neg {
			v = -v
		}
	}

	if d.cache {
		if d.intArgs == nil {
			d.intArgs = make(map[int]int)
		}
		d.intArgs[i] = v
	}
	return v
}

// EnableArgCache turns on memoization of numeric argument views.
func (d *Definition) EnableArgCache() {
	d.cache = true
}

// DisableArgCache turns off memoization. Cached values are kept and
// become live again if the cache is re-enabled.
func (d *Definition) DisableArgCache() {
	d.cache = false
}

// ClearArgCache drops all memoized values from both caches.
func (d *Definition) ClearArgCache() {
	d.intArgs = nil
	d.floatArgs = nil
}

// AmountType classifies the definition's amount arguments: no args at
// all, units (no second argument), or whatever the second argument
// decodes to. Out-of-range values pass through; Valid rejects them.
func (d *Definition) AmountType() AmountType {
	if !d.HasArgs() {
		return AmountNoArgs
	}
	if !d.HasArg(1) {
		return AmountUnits
	}
	return AmountType(d.ArgToInt(1))
}

// String renders the definition for logs and diagnostics, e.g.
// "Ctrl+Alt+V -> Set Volume [ '50' ]". There is no parser for this
// format.
func (d *Definition) String() string {
	var b strings.Builder
	b.WriteString(d.Combo.String())
	b.WriteString(" -> ")
	b.WriteString(d.Action.String())
	b.WriteString(" [ ")
	for _, arg := range d.Args {
		b.WriteString("'")
		b.WriteString(arg)
		b.WriteString("' ")
	}
	b.WriteString("]")
	return b.String()
}
