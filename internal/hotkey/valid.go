package hotkey

import "github.com/rs/zerolog/log"

// Valid reports whether the definition can be dispatched. Every failure
// logs a human-readable reason alongside the formatted definition.
// Validation never panics; it is invoked explicitly, typically once
// when a definition is registered.
func (d *Definition) Valid() bool {
	if d.Combo <= 0 {
		d.logInvalid("No key combination")
		return false
	}

	if !d.Action.Known() {
		d.logInvalid("Invalid action")
		return false
	}

	switch d.Action {
	case IncreaseVolume, DecreaseVolume, SetVolume,
		IncreaseBrightness, DecreaseBrightness, SetBrightness:
		if !d.HasArgs() {
			// Amount arguments are optional; defaults apply downstream.
			break
		}

		if d.Args[0] == "" {
			d.logInvalid("No first argument")
			return false
		}

		amount := d.ArgToInt(0)
		if amount < 0 || amount > 100 {
			// Amounts of 0 - 100 units or % are allowed.
			d.logInvalid("Argument amount out of range")
			return false
		}

		if amount == 0 && d.Action != SetVolume && d.Action != SetBrightness {
			d.logInvalid("Argument increment must be nonzero")
			return false
		}

		if d.HasArg(1) {
			if t := d.ArgToInt(1); t < 0 || t > 2 {
				d.logInvalid("Unknown increment type")
				return false
			}
		}

	case EjectDrive, MediaKey, Run:
		if !d.HasArgs() {
			d.logInvalid("Argument required")
			return false
		}
	}

	return true
}

func (d *Definition) logInvalid(reason string) {
	log.Warn().
		Str("hotkey", d.String()).
		Str("reason", reason).
		Msg("Invalid hotkey")
}
