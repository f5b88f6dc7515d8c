// Package protocol implements the keybridge serial line protocol
package protocol

// Version represents the keybridge firmware version
const Version = "0.1.0"

// Protocol constants
const (
	LineCapacity = 16 // Size of the line buffer
	LineReserved = 2  // Bytes kept free for the terminator and overflow guard
	LineMax      = LineCapacity - LineReserved

	FrameStart = '#'  // Marks the start of every command line
	LineCR     = '\r' // Line terminators
	LineLF     = '\n'
)

// Opcodes (position 1 of a command line)
const (
	OpcodeStrike    = 'S' // Atomic strike; lowercase selects sequence mode
	OpcodeStrikeSeq = 's'
	OpcodeEcho      = 'e'
)

// Field positions within a command line
const (
	PositionFrame     = 0
	PositionOpcode    = 1
	PositionKey       = 2 // Two hex digits
	PositionModifiers = 4 // Two hex digits
	PositionEcho      = 2 // Single literal character
)

// IsTerminator reports whether b ends a command line
func IsTerminator(b byte) bool {
	return b == LineCR || b == LineLF
}
