package core

import "time"

// KeySink is the abstract keyboard interface that core code uses.
// Platform-specific implementations handle the actual key emulation.
type KeySink interface {
	// KeyEvent reports key and modifiers as held down, replacing the
	// previously held state
	KeyEvent(key, modifiers uint8) error

	// Strike presses key and modifiers together and releases them
	Strike(key, modifiers uint8) error

	// ReleaseAll releases every key and modifier
	ReleaseAll() error

	// WriteText types s literally
	WriteText(s string) error

	// Sleep blocks for d
	Sleep(d time.Duration)
}
