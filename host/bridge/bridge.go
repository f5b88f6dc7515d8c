// Package bridge runs the keybridge core against a byte stream on the host
package bridge

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"keybridge/core"
	"keybridge/protocol"
)

// Options configures a Bridge
type Options struct {
	// Timing for sequence-mode strikes
	Timing core.Timing

	// StopOnEOF ends Run at io.EOF. Serial ports report EOF on read
	// timeouts, so it is left false for them.
	StopOnEOF bool

	// ReadBufferSize is the size of each read (default: 64)
	ReadBufferSize int

	// RetryDelay is the pause after a read error (default: 10ms)
	RetryDelay time.Duration
}

// Stats holds counters for a running bridge
type Stats struct {
	Assembler  protocol.AssemblerStats
	Dispatch   core.DispatchStats
	SinkErrors uint32
	ReadErrors uint32
}

// Bridge feeds bytes from a reader through the line assembler and dispatcher
type Bridge struct {
	src    io.Reader
	asm    *protocol.LineAssembler
	disp   *core.Dispatcher
	logger zerolog.Logger
	opts   Options

	readErrors uint32
}

// New creates a bridge reading from src and emitting to sink
func New(src io.Reader, sink core.KeySink, logger zerolog.Logger, opts Options) *Bridge {
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = 64
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 10 * time.Millisecond
	}

	b := &Bridge{
		src:    src,
		disp:   core.NewKeyDispatcher(sink, opts.Timing),
		logger: logger,
		opts:   opts,
	}
	b.asm = protocol.NewLineAssembler(b.handleLine)
	return b
}

// Run reads until ctx is cancelled, the reader is exhausted (StopOnEOF),
// or the reader is closed. Lines already being sequenced always complete.
func (b *Bridge) Run(ctx context.Context) error {
	buf := make([]byte, b.opts.ReadBufferSize)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := b.src.Read(buf)
		if n > 0 {
			b.asm.FeedBytes(buf[:n])
		}

		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			if b.opts.StopOnEOF {
				return nil
			}
			continue
		}
		if errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed) || ctx.Err() != nil {
			return ctx.Err()
		}

		// Log error but continue
		b.readErrors++
		b.logger.Warn().Err(err).Msg("serial read failed")
		time.Sleep(b.opts.RetryDelay)
	}
}

// handleLine logs and dispatches one completed line
func (b *Bridge) handleLine(line []byte) {
	b.logger.Debug().Bytes("line", line).Msg("line received")
	b.disp.Dispatch(line)
}

// Stats returns a snapshot of the bridge counters
func (b *Bridge) Stats() Stats {
	return Stats{
		Assembler:  b.asm.Stats(),
		Dispatch:   b.disp.Stats(),
		SinkErrors: b.disp.Sequencer().SinkErrors(),
		ReadErrors: b.readErrors,
	}
}
