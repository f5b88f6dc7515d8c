package core

import (
	"testing"
	"time"
)

func TestSequenceDoesNotLeakModifiers(t *testing.T) {
	sink, _ := feed(t, "#s04FF\n#s0504\n")

	second := sink.calls[len(sink.calls)-6:]
	expectCalls(t, second, []sinkCall{
		release(),
		keyEvent(0, 0x04),
		sleep(DefaultModifierDelay),
		keyEvent(0x05, 0x04),
		sleep(DefaultSettleDelay),
		release(),
	})
}

func TestSequenceAllModifiers(t *testing.T) {
	sink := &recordingSink{}
	seq := NewSequencer(sink, DefaultTiming())

	seq.Strike(0x04, 0xFF, true)

	var held []uint8
	for _, c := range sink.calls {
		if c.Op == "key" && c.Key == 0 {
			held = append(held, c.Mods)
		}
	}

	expected := []uint8{0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}
	if len(held) != len(expected) {
		t.Fatalf("Expected %d modifier steps, got %d", len(expected), len(held))
	}
	for i := range expected {
		if held[i] != expected[i] {
			t.Errorf("Step %d: expected mask 0x%02X, got 0x%02X", i, expected[i], held[i])
		}
	}
}

func TestSequenceNoModifiers(t *testing.T) {
	sink := &recordingSink{}
	seq := NewSequencer(sink, DefaultTiming())

	seq.Strike(0x28, 0x00, true)

	expectCalls(t, sink.calls, []sinkCall{
		keyEvent(0x28, 0x00),
		sleep(DefaultSettleDelay),
		release(),
	})
}

func TestSequenceCustomTiming(t *testing.T) {
	sink := &recordingSink{}
	seq := NewSequencer(sink, Timing{ModifierDelay: 5 * time.Millisecond, SettleDelay: 0})

	seq.Strike(0x04, 0x02, true)

	expectCalls(t, sink.calls, []sinkCall{
		keyEvent(0, 0x02),
		sleep(5 * time.Millisecond),
		keyEvent(0x04, 0x02),
		sleep(0),
		release(),
	})
}

func TestTimingNegativeUsesDefaults(t *testing.T) {
	seq := NewSequencer(&recordingSink{}, Timing{ModifierDelay: -1, SettleDelay: -1})

	if seq.Timing() != DefaultTiming() {
		t.Errorf("Expected default timing, got %+v", seq.Timing())
	}
}

func TestAtomicStrike(t *testing.T) {
	sink := &recordingSink{}
	seq := NewSequencer(sink, DefaultTiming())

	seq.Strike(0x1A, 0x05, false)

	expectCalls(t, sink.calls, []sinkCall{
		strike(0x1A, 0x05),
	})
}

func TestSinkErrorsDoNotAbort(t *testing.T) {
	sink := &recordingSink{failOp: "key"}
	seq := NewSequencer(sink, DefaultTiming())

	seq.Strike(0x1A, 0x05, true)

	// Every step still runs
	if len(sink.calls) != 7 {
		t.Errorf("Expected 7 calls, got %d: %+v", len(sink.calls), sink.calls)
	}
	if seq.SinkErrors() != 3 {
		t.Errorf("Expected 3 sink errors, got %d", seq.SinkErrors())
	}
}

func TestWriteTextEmpty(t *testing.T) {
	sink := &recordingSink{}
	seq := NewSequencer(sink, DefaultTiming())

	seq.WriteText("")

	if len(sink.calls) != 0 {
		t.Errorf("Expected no calls for empty text, got %+v", sink.calls)
	}
}
