package protocol

import "testing"

func TestLineBuffer(t *testing.T) {
	var buf LineBuffer

	if buf.Len() != 0 {
		t.Errorf("Expected empty buffer, got %d bytes", buf.Len())
	}

	for i := 0; i < LineMax; i++ {
		if !buf.PushIfSpace(byte('a' + i)) {
			t.Fatalf("Push %d rejected before buffer was full", i)
		}
	}

	if !buf.Full() {
		t.Error("Expected buffer to report full")
	}

	if buf.PushIfSpace('x') {
		t.Error("Expected push to be rejected when full")
	}

	if buf.Len() != LineMax {
		t.Errorf("Expected %d bytes, got %d", LineMax, buf.Len())
	}

	data := buf.Bytes()
	if data[0] != 'a' || data[LineMax-1] != byte('a'+LineMax-1) {
		t.Errorf("Unexpected buffer contents %q", data)
	}

	buf.Clear()
	if buf.Len() != 0 || len(buf.Bytes()) != 0 {
		t.Errorf("Expected empty buffer after Clear, got %d bytes", buf.Len())
	}

	if !buf.PushIfSpace('#') {
		t.Error("Expected push to succeed after Clear")
	}
}

func TestAt(t *testing.T) {
	line := []byte("#eX\n")

	if At(line, 0) != '#' {
		t.Errorf("Expected '#', got %q", At(line, 0))
	}
	if At(line, 2) != 'X' {
		t.Errorf("Expected 'X', got %q", At(line, 2))
	}
	if At(line, 4) != 0 {
		t.Errorf("Expected 0 past the end, got %q", At(line, 4))
	}
	if At(line, -1) != 0 {
		t.Errorf("Expected 0 for negative index, got %q", At(line, -1))
	}
	if At(nil, 0) != 0 {
		t.Error("Expected 0 for nil line")
	}
}
