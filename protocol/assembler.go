package protocol

// LineHandler receives a completed line. The slice aliases the assembler's
// buffer and must not be retained after the handler returns.
type LineHandler func(line []byte)

// AssemblerStats holds counters for the line assembler
type AssemblerStats struct {
	Lines   uint32 // Lines handed to the handler
	Dropped uint32 // Bytes discarded because the buffer was full
}

// LineAssembler turns a byte stream into terminated command lines.
// A single LineBuffer is reused across all frames.
type LineAssembler struct {
	line    LineBuffer
	handler LineHandler
	stats   AssemblerStats
}

// NewLineAssembler creates a new LineAssembler
func NewLineAssembler(handler LineHandler) *LineAssembler {
	return &LineAssembler{handler: handler}
}

// Feed processes one received byte
func (a *LineAssembler) Feed(b byte) {
	// A frame marker discards whatever was accumulated and starts over
	if b == FrameStart {
		a.line.Clear()
	}

	if !a.line.PushIfSpace(b) {
		a.stats.Dropped++
	}

	if IsTerminator(b) {
		a.stats.Lines++
		if a.handler != nil {
			a.handler(a.line.Bytes())
		}
		a.line.Clear()
	}
}

// FeedBytes processes each byte of p in order
func (a *LineAssembler) FeedBytes(p []byte) {
	for _, b := range p {
		a.Feed(b)
	}
}

// Pending returns the bytes accumulated since the last terminator
func (a *LineAssembler) Pending() []byte {
	return a.line.Bytes()
}

// Stats returns a snapshot of the assembler counters
func (a *LineAssembler) Stats() AssemblerStats {
	return a.stats
}

// Reset clears the buffer and counters (useful after a reconnect)
func (a *LineAssembler) Reset() {
	a.line.Clear()
	a.stats = AssemblerStats{}
}
