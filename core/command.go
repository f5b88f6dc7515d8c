package core

import (
	"sync"

	"keybridge/protocol"
)

// OpcodeHandler handles a framed command line.
// opcode is the raw character at position 1 and line includes the frame marker.
type OpcodeHandler func(d *Dispatcher, opcode byte, line []byte)

// Opcode represents a registered command opcode
type Opcode struct {
	Code    byte
	Name    string
	Handler OpcodeHandler
}

// DispatchStats holds counters for the dispatcher
type DispatchStats struct {
	Dispatched uint32 // Lines routed to a handler
	Rejected   uint32 // Lines without a frame marker
	Unknown    uint32 // Framed lines with an unregistered opcode
}

// Dispatcher classifies completed lines and routes them to opcode handlers
type Dispatcher struct {
	mu      sync.RWMutex
	opcodes map[byte]*Opcode

	seq   *Sequencer
	stats DispatchStats
}

// NewDispatcher creates a dispatcher with no opcodes registered
func NewDispatcher(sink KeySink, timing Timing) *Dispatcher {
	return &Dispatcher{
		opcodes: make(map[byte]*Opcode),
		seq:     NewSequencer(sink, timing),
	}
}

// NewKeyDispatcher creates a dispatcher with the strike and echo opcodes registered
func NewKeyDispatcher(sink KeySink, timing Timing) *Dispatcher {
	d := NewDispatcher(sink, timing)
	InitKeyCommands(d)
	return d
}

// Register adds an opcode to the registry, replacing any previous handler
func (d *Dispatcher) Register(code byte, name string, handler OpcodeHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.opcodes[code] = &Opcode{
		Code:    code,
		Name:    name,
		Handler: handler,
	}
}

// GetOpcode retrieves a registered opcode
func (d *Dispatcher) GetOpcode(code byte) (*Opcode, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	op, ok := d.opcodes[code]
	return op, ok
}

// Count returns the number of registered opcodes
func (d *Dispatcher) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.opcodes)
}

// Dispatch interprets one completed line. Malformed lines are dropped silently.
func (d *Dispatcher) Dispatch(line []byte) {
	if protocol.At(line, protocol.PositionFrame) != protocol.FrameStart {
		d.stats.Rejected++
		RecordEvent(EvtReject, protocol.At(line, protocol.PositionFrame), 0)
		return
	}

	// Always start from a clean keyboard state
	d.seq.ReleaseAll()

	code := protocol.At(line, protocol.PositionOpcode)
	op, ok := d.GetOpcode(code)
	if !ok || op.Handler == nil {
		d.stats.Unknown++
		RecordEvent(EvtUnknown, code, 0)
		return
	}

	d.stats.Dispatched++
	op.Handler(d, code, line)
}

// Sequencer returns the strike sequencer used by handlers
func (d *Dispatcher) Sequencer() *Sequencer {
	return d.seq
}

// Stats returns a snapshot of the dispatch counters
func (d *Dispatcher) Stats() DispatchStats {
	return d.stats
}
