package config

import "strings"

// SpeedPreset represents a named tick rate.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

// TickRateForPreset returns the ticks per second for a speed preset.
// The worm moves one cell per tick.
func TickRateForPreset(preset SpeedPreset) (int, bool) {
	switch SpeedPreset(strings.ToLower(string(preset))) {
	case SpeedEasy:
		return 10, true
	case SpeedNormal:
		return 15, true
	case SpeedHard:
		return 30, true
	default:
		return 0, false
	}
}
