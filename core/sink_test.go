package core

import (
	"errors"
	"time"
)

// sinkCall records one call made on a KeySink
type sinkCall struct {
	Op   string
	Key  uint8
	Mods uint8
	Text string
	Wait time.Duration
}

// recordingSink is a KeySink that records calls instead of typing
type recordingSink struct {
	calls  []sinkCall
	failOp string // Op name that returns an error
}

var errSinkFailed = errors.New("sink failed")

func (r *recordingSink) fail(op string) error {
	if op == r.failOp {
		return errSinkFailed
	}
	return nil
}

func (r *recordingSink) KeyEvent(key, modifiers uint8) error {
	r.calls = append(r.calls, sinkCall{Op: "key", Key: key, Mods: modifiers})
	return r.fail("key")
}

func (r *recordingSink) Strike(key, modifiers uint8) error {
	r.calls = append(r.calls, sinkCall{Op: "strike", Key: key, Mods: modifiers})
	return r.fail("strike")
}

func (r *recordingSink) ReleaseAll() error {
	r.calls = append(r.calls, sinkCall{Op: "release"})
	return r.fail("release")
}

func (r *recordingSink) WriteText(s string) error {
	r.calls = append(r.calls, sinkCall{Op: "text", Text: s})
	return r.fail("text")
}

func (r *recordingSink) Sleep(d time.Duration) {
	r.calls = append(r.calls, sinkCall{Op: "sleep", Wait: d})
}

// Shorthands for expected call lists
func release() sinkCall                 { return sinkCall{Op: "release"} }
func strike(key, mods uint8) sinkCall   { return sinkCall{Op: "strike", Key: key, Mods: mods} }
func keyEvent(key, mods uint8) sinkCall { return sinkCall{Op: "key", Key: key, Mods: mods} }
func text(s string) sinkCall            { return sinkCall{Op: "text", Text: s} }
func sleep(d time.Duration) sinkCall    { return sinkCall{Op: "sleep", Wait: d} }
