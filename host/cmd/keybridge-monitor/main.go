package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"keybridge/config"
	"keybridge/core"
	"keybridge/host/bridge"
	"keybridge/host/logging"
	"keybridge/host/logsink"
	"keybridge/host/serial"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	dump       = flag.Bool("dump", false, "Dump the recent event ring on exit")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud > 0 {
		cfg.Serial.Baud = *baud
	}

	logger := logging.Init("keybridge-monitor", cfg.Log.Level)
	core.SetDebugWriter(logging.DebugWriter(logger))
	core.SetDebugEnabled(cfg.Log.Level == "debug" || cfg.Log.Level == "trace")

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Serial.Device,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: cfg.Serial.ReadTimeout,
	})
	if err != nil {
		logger.Error().Err(err).Msg("open serial port")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Closing the port unblocks a pending read
	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	b := bridge.New(port, logsink.New(logger), logger, bridge.Options{
		Timing: cfg.Timing,
	})

	logger.Info().
		Str("device", cfg.Serial.Device).
		Int("baud", cfg.Serial.Baud).
		Dur("modifier_delay", cfg.Timing.ModifierDelay).
		Dur("settle_delay", cfg.Timing.SettleDelay).
		Msg("monitoring")

	err = b.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("bridge stopped")
	}

	stats := b.Stats()
	logger.Info().
		Uint32("lines", stats.Assembler.Lines).
		Uint32("dropped_bytes", stats.Assembler.Dropped).
		Uint32("dispatched", stats.Dispatch.Dispatched).
		Uint32("rejected", stats.Dispatch.Rejected).
		Uint32("unknown", stats.Dispatch.Unknown).
		Uint32("sink_errors", stats.SinkErrors).
		Msg("stopped")

	if *dump {
		core.SetDebugWriter(func(msg string) { logger.Info().Msg(msg) })
		core.DumpEventRing()
	}
}
