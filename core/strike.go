package core

// Sequencer executes strike commands against a KeySink
type Sequencer struct {
	sink   KeySink
	timing Timing

	sinkErrors uint32
}

// NewSequencer creates a new Sequencer
func NewSequencer(sink KeySink, timing Timing) *Sequencer {
	return &Sequencer{
		sink:   sink,
		timing: timing.withDefaults(),
	}
}

// Strike emits key with modifiers.
// In atomic mode the whole combination is one press-and-release.
// In sequence mode each set modifier bit is added on its own, lowest bit
// first, with ModifierDelay between additions; the key follows with all
// modifiers held, then SettleDelay and a full release.
func (s *Sequencer) Strike(key, modifiers uint8, sequence bool) {
	if !sequence {
		RecordEvent(EvtStrike, key, modifiers)
		s.check("strike", s.sink.Strike(key, modifiers))
		return
	}

	// Accumulator is local so nothing leaks between commands
	var held uint8
	for j := uint8(0); j < 8; j++ {
		bit := uint8(1) << j
		if modifiers&bit == 0 {
			continue
		}
		held |= bit
		RecordEvent(EvtKeyEvent, 0, held)
		s.check("modifier", s.sink.KeyEvent(0, held))
		s.sink.Sleep(s.timing.ModifierDelay)
	}

	RecordEvent(EvtKeyEvent, key, held)
	s.check("key", s.sink.KeyEvent(key, held))
	s.sink.Sleep(s.timing.SettleDelay)

	s.ReleaseAll()
}

// ReleaseAll releases every key on the sink
func (s *Sequencer) ReleaseAll() {
	RecordEvent(EvtReleaseAll, 0, 0)
	s.check("release", s.sink.ReleaseAll())
}

// WriteText forwards text to the sink
func (s *Sequencer) WriteText(text string) {
	if text == "" {
		return
	}
	RecordEvent(EvtText, text[0], 0)
	s.check("text", s.sink.WriteText(text))
}

// SinkErrors returns the number of failed sink calls
func (s *Sequencer) SinkErrors() uint32 {
	return s.sinkErrors
}

// Timing returns the delays in use
func (s *Sequencer) Timing() Timing {
	return s.timing
}

// check counts a sink failure and reports it. Processing always continues.
func (s *Sequencer) check(op string, err error) {
	if err == nil {
		return
	}
	s.sinkErrors++
	DebugPrintln("[SINK] " + op + " failed: " + err.Error())
}
