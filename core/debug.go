package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// KeyTrace captures one emitted or dropped event for post-mortem analysis
type KeyTrace struct {
	EventType uint8  // Event type code
	Key       uint8  // Key usage code, or the offending byte for rejects
	Modifiers uint8  // Modifier mask
	Seq       uint32 // Monotonic event number
}

// Event type codes
const (
	EvtReleaseAll = 1 // All keys released
	EvtKeyEvent   = 2 // Key and modifiers held
	EvtStrike     = 3 // Atomic press and release
	EvtText       = 4 // Literal character typed
	EvtReject     = 5 // Line without frame marker
	EvtUnknown    = 6 // Unregistered opcode
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]KeyTrace
	eventRingHead uint8
	eventSeq      uint32
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures an event in the ring buffer
func RecordEvent(eventType, key, modifiers uint8) {
	eventSeq++
	idx := eventRingHead
	eventRing[idx] = KeyTrace{
		EventType: eventType,
		Key:       key,
		Modifiers: modifiers,
		Seq:       eventSeq,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// RecentEvents returns the recorded events, oldest first
func RecentEvents() []KeyTrace {
	out := make([]KeyTrace, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.EventType == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns a short label for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtReleaseAll:
		return "RELEASE_ALL"
	case EvtKeyEvent:
		return "KEY_EVENT"
	case EvtStrike:
		return "STRIKE"
	case EvtText:
		return "TEXT"
	case EvtReject:
		return "REJECT"
	case EvtUnknown:
		return "UNKNOWN_OP"
	default:
		return "UNKNOWN"
	}
}

// DumpEventRing outputs the event ring buffer through the debug writer.
// It writes even when debug output is disabled.
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range RecentEvents() {
		debugPrintln("[EVENTS] " + utoa(evt.Seq) + " " + EventName(evt.EventType) +
			" key=" + KeyName(evt.Key) +
			" mods=" + FormatModifiers(evt.Modifiers))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = KeyTrace{}
	}
	eventRingHead = 0
	eventSeq = 0
}
