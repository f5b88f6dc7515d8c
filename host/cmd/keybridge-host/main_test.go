package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"strike 1a 05", "#S1A05\n"},
		{"strike 0x04", "#S0400\n"},
		{"seq 1A 05", "#s1A05\n"},
		{"echo X", "#eX\n"},
		{"type ab", "#ea\n#eb\n"},
		{"raw S0105", "#S0105\n"},
		{"raw #e!", "#e!\n"},
	}

	for _, tc := range testCases {
		frames, err := parseCommand(tc.input)
		if err != nil {
			t.Errorf("parseCommand(%q) failed: %v", tc.input, err)
			continue
		}
		if string(frames) != tc.expected {
			t.Errorf("parseCommand(%q): expected %q, got %q", tc.input, tc.expected, frames)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	testCases := []string{
		"strike",
		"strike 100",
		"strike zz 01",
		"seq 01 02 03",
		"echo",
		"echo ab",
		"type",
		"bogus 1",
	}

	for _, tc := range testCases {
		if _, err := parseCommand(tc); err == nil {
			t.Errorf("Expected error for %q", tc)
		}
	}

	_, err := parseCommand("echo ab")
	if !errors.Is(err, errUsage) {
		t.Errorf("Expected usage error, got %v", err)
	}
}

// shortWriter accepts at most two bytes per call
type shortWriter struct {
	buf bytes.Buffer
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if len(p) > 2 {
		p = p[:2]
	}
	return s.buf.Write(p)
}

func TestSendPartialWrites(t *testing.T) {
	var w shortWriter
	if err := send(&w, []byte("#S0105\n")); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if w.buf.String() != "#S0105\n" {
		t.Errorf("Expected full frame, got %q", w.buf.String())
	}
}

func TestForwardKeys(t *testing.T) {
	var out bytes.Buffer
	if err := forwardKeys(strings.NewReader("hi\x04ignored"), &out); err != nil {
		t.Fatalf("forwardKeys failed: %v", err)
	}
	if out.String() != "#eh\n#ei\n" {
		t.Errorf("Expected two echo frames, got %q", out.String())
	}

	out.Reset()
	if err := forwardKeys(strings.NewReader("x"), &out); err != nil {
		t.Fatalf("forwardKeys failed at EOF: %v", err)
	}
	if out.String() != "#ex\n" {
		t.Errorf("Expected one echo frame, got %q", out.String())
	}
}
