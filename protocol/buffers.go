package protocol

// LineBuffer is a fixed-capacity byte buffer with explicit length tracking.
// It never holds more than LineMax bytes.
type LineBuffer struct {
	buf [LineCapacity]byte
	n   int
}

// Clear empties the buffer
func (l *LineBuffer) Clear() {
	l.n = 0
}

// PushIfSpace appends b if there is room and reports whether it did
func (l *LineBuffer) PushIfSpace(b byte) bool {
	if l.n >= LineMax {
		return false
	}
	l.buf[l.n] = b
	l.n++
	return true
}

// Bytes returns the buffered bytes. The slice aliases the buffer and is
// only valid until the next mutation.
func (l *LineBuffer) Bytes() []byte {
	return l.buf[:l.n]
}

// Len returns the number of buffered bytes
func (l *LineBuffer) Len() int {
	return l.n
}

// Full reports whether further pushes will be dropped
func (l *LineBuffer) Full() bool {
	return l.n >= LineMax
}

// At returns the byte at position i, or 0 if i is outside the buffered data
func At(line []byte, i int) byte {
	if i < 0 || i >= len(line) {
		return 0
	}
	return line[i]
}
