package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"keybridge/protocol"
)

var errUsage = errors.New("invalid arguments")

// parseCommand turns one interactive command into wire frames
func parseCommand(line string) ([]byte, error) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "strike", "seq":
		key, mods, err := parseKeyArgs(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmd, err)
		}
		return protocol.EncodeStrike(key, mods, cmd == "seq"), nil

	case "echo":
		if len(rest) != 1 {
			return nil, fmt.Errorf("echo: %w: expected exactly one character", errUsage)
		}
		return protocol.EncodeEcho(rest[0]), nil

	case "type":
		if rest == "" {
			return nil, fmt.Errorf("type: %w: missing text", errUsage)
		}
		return protocol.EncodeText(rest), nil

	case "raw":
		return protocol.EncodeRaw(rest), nil
	}

	return nil, fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
}

// parseKeyArgs parses "KK MM"; the modifier field is optional
func parseKeyArgs(args string) (key, mods uint8, err error) {
	fields := strings.Fields(args)
	if len(fields) < 1 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("%w: expected KK [MM]", errUsage)
	}

	key, err = parseHexByte(fields[0])
	if err != nil {
		return 0, 0, err
	}
	if len(fields) == 2 {
		if mods, err = parseHexByte(fields[1]); err != nil {
			return 0, 0, err
		}
	}
	return key, mods, nil
}

func parseHexByte(s string) (uint8, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex byte %q: %w", s, err)
	}
	return uint8(v), nil
}

// send writes frames, handling partial writes
func send(w io.Writer, frames []byte) error {
	written := 0
	for written < len(frames) {
		n, err := w.Write(frames[written:])
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("incomplete write: %d/%d bytes", written, len(frames))
		}
		written += n
	}
	return nil
}
