// Package config loads the host-side keybridge configuration
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"keybridge/core"
)

// Config holds the host configuration
type Config struct {
	Serial SerialConfig
	Timing core.Timing
	Log    LogConfig
}

// SerialConfig selects the serial device
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// LogConfig controls host logging
type LogConfig struct {
	Level string
}

// fileConfig mirrors the TOML layout
type fileConfig struct {
	Serial struct {
		Device        string `toml:"device"`
		Baud          int    `toml:"baud"`
		ReadTimeoutMS int64  `toml:"read_timeout_ms"`
	} `toml:"serial"`
	Timing struct {
		ModifierDelayMS int64 `toml:"modifier_delay_ms"`
		SettleDelayMS   int64 `toml:"settle_delay_ms"`
	} `toml:"timing"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Serial: SerialConfig{
			Device:      "/dev/ttyACM0",
			Baud:        115200,
			ReadTimeout: 100 * time.Millisecond,
		},
		Timing: core.DefaultTiming(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return apply(Default(), raw, meta)
}

// Parse decodes TOML from a string, applying the same defaults as Load
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return apply(Default(), raw, meta)
}

// apply overlays the keys defined in the file onto cfg
func apply(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if meta.IsDefined("serial", "device") {
		if dev := strings.TrimSpace(raw.Serial.Device); dev != "" {
			cfg.Serial.Device = dev
		}
	}

	if meta.IsDefined("serial", "baud") {
		if raw.Serial.Baud <= 0 {
			return Config{}, fmt.Errorf("serial.baud must be positive, got %d", raw.Serial.Baud)
		}
		cfg.Serial.Baud = raw.Serial.Baud
	}

	if meta.IsDefined("serial", "read_timeout_ms") {
		if raw.Serial.ReadTimeoutMS < 0 {
			return Config{}, fmt.Errorf("serial.read_timeout_ms must not be negative")
		}
		cfg.Serial.ReadTimeout = time.Duration(raw.Serial.ReadTimeoutMS) * time.Millisecond
	}

	if meta.IsDefined("timing", "modifier_delay_ms") {
		if raw.Timing.ModifierDelayMS < 0 {
			return Config{}, fmt.Errorf("timing.modifier_delay_ms must not be negative")
		}
		cfg.Timing.ModifierDelay = time.Duration(raw.Timing.ModifierDelayMS) * time.Millisecond
	}

	if meta.IsDefined("timing", "settle_delay_ms") {
		if raw.Timing.SettleDelayMS < 0 {
			return Config{}, fmt.Errorf("timing.settle_delay_ms must not be negative")
		}
		cfg.Timing.SettleDelay = time.Duration(raw.Timing.SettleDelayMS) * time.Millisecond
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(raw.Log.Level))
	}

	return cfg, nil
}
