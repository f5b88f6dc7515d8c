// Package logsink provides a KeySink that logs key events instead of typing them
package logsink

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"keybridge/core"
)

// Sink logs every key event and tracks the emulated keyboard state
type Sink struct {
	logger zerolog.Logger
	sleep  func(time.Duration)

	heldKey  uint8
	heldMods uint8
	typed    strings.Builder
	events   uint32
}

// Option configures a Sink
type Option func(*Sink)

// WithSleep replaces the blocking wait (tests use a no-op)
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Sink) {
		s.sleep = sleep
	}
}

// New creates a new Sink writing to logger
func New(logger zerolog.Logger, opts ...Option) *Sink {
	s := &Sink{
		logger: logger,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ core.KeySink = (*Sink)(nil)

// KeyEvent records key and modifiers as held
func (s *Sink) KeyEvent(key, modifiers uint8) error {
	s.events++
	s.heldKey, s.heldMods = key, modifiers
	s.logger.Info().
		Str("event", "down").
		Str("key", core.KeyName(key)).
		Str("mods", core.FormatModifiers(modifiers)).
		Msg("key event")
	return nil
}

// Strike records a press and release
func (s *Sink) Strike(key, modifiers uint8) error {
	s.events++
	s.heldKey, s.heldMods = 0, 0
	s.logger.Info().
		Str("event", "strike").
		Str("key", core.KeyName(key)).
		Str("mods", core.FormatModifiers(modifiers)).
		Msg("key event")
	return nil
}

// ReleaseAll clears the held state
func (s *Sink) ReleaseAll() error {
	s.events++
	s.heldKey, s.heldMods = 0, 0
	s.logger.Debug().Str("event", "release_all").Msg("key event")
	return nil
}

// WriteText records typed text
func (s *Sink) WriteText(text string) error {
	s.events++
	s.typed.WriteString(text)
	s.logger.Info().Str("event", "text").Str("text", text).Msg("key event")
	return nil
}

// Sleep waits for d
func (s *Sink) Sleep(d time.Duration) {
	s.logger.Trace().Dur("wait", d).Msg("sleep")
	s.sleep(d)
}

// Held returns the key and modifiers currently held
func (s *Sink) Held() (key, modifiers uint8) {
	return s.heldKey, s.heldMods
}

// Typed returns all text written so far
func (s *Sink) Typed() string {
	return s.typed.String()
}

// Events returns the number of key-level calls received
func (s *Sink) Events() uint32 {
	return s.events
}
