package logsink

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"keybridge/core"
	"keybridge/protocol"
)

func newTestSink(buf *bytes.Buffer, waits *[]time.Duration) *Sink {
	logger := zerolog.New(buf).Level(zerolog.TraceLevel)
	return New(logger, WithSleep(func(d time.Duration) {
		*waits = append(*waits, d)
	}))
}

func TestSinkSequenceStrike(t *testing.T) {
	var buf bytes.Buffer
	var waits []time.Duration
	sink := newTestSink(&buf, &waits)

	d := core.NewKeyDispatcher(sink, core.DefaultTiming())
	protocol.NewLineAssembler(d.Dispatch).FeedBytes([]byte("#s1A05\n"))

	expected := []time.Duration{core.DefaultModifierDelay, core.DefaultModifierDelay, core.DefaultSettleDelay}
	if len(waits) != len(expected) {
		t.Fatalf("Expected %d waits, got %v", len(expected), waits)
	}
	for i := range expected {
		if waits[i] != expected[i] {
			t.Errorf("Wait %d: expected %v, got %v", i, expected[i], waits[i])
		}
	}

	if key, mods := sink.Held(); key != 0 || mods != 0 {
		t.Errorf("Expected nothing held after sequence, got 0x%02X/0x%02X", key, mods)
	}

	out := buf.String()
	if !strings.Contains(out, `"key":"w"`) || !strings.Contains(out, `"mods":"LeftCtrl+LeftAlt"`) {
		t.Errorf("Expected final key event in log, got %s", out)
	}
	if !strings.Contains(out, `"mods":"LeftCtrl"`) {
		t.Errorf("Expected first modifier step in log, got %s", out)
	}

	// release, mod, mod, key, release
	if sink.Events() != 5 {
		t.Errorf("Expected 5 events, got %d", sink.Events())
	}
}

func TestSinkHeldState(t *testing.T) {
	var buf bytes.Buffer
	var waits []time.Duration
	sink := newTestSink(&buf, &waits)

	_ = sink.KeyEvent(0, core.ModLeftShift)
	if key, mods := sink.Held(); key != 0 || mods != core.ModLeftShift {
		t.Errorf("Expected LeftShift held, got 0x%02X/0x%02X", key, mods)
	}

	_ = sink.Strike(0x04, 0)
	if key, mods := sink.Held(); key != 0 || mods != 0 {
		t.Errorf("Expected nothing held after strike, got 0x%02X/0x%02X", key, mods)
	}
}

func TestSinkTyped(t *testing.T) {
	var buf bytes.Buffer
	var waits []time.Duration
	sink := newTestSink(&buf, &waits)

	d := core.NewKeyDispatcher(sink, core.DefaultTiming())
	protocol.NewLineAssembler(d.Dispatch).FeedBytes(protocol.EncodeText("ok"))

	if sink.Typed() != "ok" {
		t.Errorf("Expected typed text %q, got %q", "ok", sink.Typed())
	}
	if len(waits) != 0 {
		t.Errorf("Expected no waits for echo, got %v", waits)
	}
}
