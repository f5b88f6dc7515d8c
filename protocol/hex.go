package protocol

const hexAlphabet = "0123456789ABCDEF"

// DecodeHexDigit converts one ASCII hex digit to its value.
// Anything outside 0-9, A-F, a-f decodes to 0.
func DecodeHexDigit(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	c = toUpper(c)
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 10
	}
	return 0
}

// DecodeHexByte combines two hex digits (high nibble first) into a byte
func DecodeHexByte(hi, lo byte) byte {
	return DecodeHexDigit(hi)<<4 | DecodeHexDigit(lo)
}

// EncodeHexByte returns the two uppercase hex digits for b
func EncodeHexByte(b byte) (hi, lo byte) {
	return hexAlphabet[b>>4], hexAlphabet[b&0x0F]
}

// toUpper converts a byte to uppercase
func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// FoldOpcode returns the case-folded opcode used for classification
func FoldOpcode(c byte) byte {
	return toUpper(c)
}
