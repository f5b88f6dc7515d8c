package protocol

// EncodeStrike builds a strike frame. sequence selects the lowercase opcode.
func EncodeStrike(key, modifiers uint8, sequence bool) []byte {
	op := byte(OpcodeStrike)
	if sequence {
		op = OpcodeStrikeSeq
	}
	kh, kl := EncodeHexByte(key)
	mh, ml := EncodeHexByte(modifiers)
	return []byte{FrameStart, op, kh, kl, mh, ml, LineLF}
}

// EncodeEcho builds an echo frame for a single character
func EncodeEcho(c byte) []byte {
	return []byte{FrameStart, OpcodeEcho, c, LineLF}
}

// EncodeText builds one echo frame per byte of s
func EncodeText(s string) []byte {
	out := make([]byte, 0, len(s)*4)
	for i := 0; i < len(s); i++ {
		out = append(out, EncodeEcho(s[i])...)
	}
	return out
}

// EncodeRaw frames an arbitrary line, adding the marker and terminator when missing
func EncodeRaw(line string) []byte {
	out := make([]byte, 0, len(line)+2)
	if len(line) == 0 || line[0] != FrameStart {
		out = append(out, FrameStart)
	}
	out = append(out, line...)
	if len(out) == 0 || !IsTerminator(out[len(out)-1]) {
		out = append(out, LineLF)
	}
	return out
}
