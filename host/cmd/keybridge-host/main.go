package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"keybridge/config"
	"keybridge/host/logging"
	"keybridge/host/serial"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Init("keybridge-host", cfg.Log.Level)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	fmt.Println("keybridge host - serial keyboard command sender")
	fmt.Println("================================================")
	fmt.Println()

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Serial.Device,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: cfg.Serial.ReadTimeout,
	})
	if err != nil {
		logger.Error().Err(err).Str("device", cfg.Serial.Device).Msg("connect failed")
		os.Exit(1)
	}
	defer port.Close()

	logger.Info().Str("device", cfg.Serial.Device).Int("baud", cfg.Serial.Baud).Msg("connected")

	// Interactive command loop
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, _, _ := strings.Cut(line, " ")
		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()
			continue

		case "live":
			if err := runLive(port, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		frames, err := parseCommand(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if err := send(port, frames); err != nil {
			logger.Error().Err(err).Msg("write failed")
			continue
		}
		logger.Debug().Bytes("frames", frames).Msg("sent")
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file if given and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud > 0 {
		cfg.Serial.Baud = *baud
	}
	return cfg, nil
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  strike KK MM   - Press key KK with modifiers MM together (hex)")
	fmt.Println("  seq KK MM      - Press modifiers one at a time, then key KK (hex)")
	fmt.Println("  echo C         - Type a single character")
	fmt.Println("  type TEXT      - Type TEXT, one echo frame per character")
	fmt.Println("  raw LINE       - Send LINE as-is (marker and newline added if missing)")
	fmt.Println("  live           - Forward each typed key until Ctrl-D")
	fmt.Println("  help           - Show this help message")
	fmt.Println("  quit/exit/q    - Exit the program")
	fmt.Println()
}
