package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"keybridge/protocol"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

var errNotTerminal = errors.New("stdin is not a terminal")

// runLive puts the terminal in raw mode and forwards each byte as an echo frame
func runLive(w io.Writer, logger zerolog.Logger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			logger.Warn().Err(err).Msg("restore terminal")
		}
	}()

	fmt.Print("live mode, Ctrl-D to stop\r\n")
	return forwardKeys(os.Stdin, w)
}

// forwardKeys copies bytes from r to w as echo frames until Ctrl-C, Ctrl-D or EOF
func forwardKeys(r io.Reader, w io.Writer) error {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if b == keyCtrlC || b == keyCtrlD {
				return nil
			}
			if werr := send(w, protocol.EncodeEcho(b)); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
