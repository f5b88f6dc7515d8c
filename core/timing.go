package core

import "time"

// Default delays for sequence-mode strikes
const (
	DefaultModifierDelay = 90 * time.Millisecond
	DefaultSettleDelay   = 50 * time.Millisecond
)

// Timing holds the waits used while sequencing modifiers
type Timing struct {
	// ModifierDelay is the wait after each newly added modifier bit
	ModifierDelay time.Duration

	// SettleDelay is the wait between the final key press and the release
	SettleDelay time.Duration
}

// DefaultTiming returns the reference timing
func DefaultTiming() Timing {
	return Timing{
		ModifierDelay: DefaultModifierDelay,
		SettleDelay:   DefaultSettleDelay,
	}
}

// withDefaults replaces negative delays with the defaults.
// Zero is kept so callers can disable waits.
func (t Timing) withDefaults() Timing {
	if t.ModifierDelay < 0 {
		t.ModifierDelay = DefaultModifierDelay
	}
	if t.SettleDelay < 0 {
		t.SettleDelay = DefaultSettleDelay
	}
	return t
}
