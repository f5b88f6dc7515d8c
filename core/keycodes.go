package core

// Modifier mask bits, in boot keyboard report order
const (
	ModLeftCtrl   uint8 = 1 << 0
	ModLeftShift  uint8 = 1 << 1
	ModLeftAlt    uint8 = 1 << 2
	ModLeftGUI    uint8 = 1 << 3
	ModRightCtrl  uint8 = 1 << 4
	ModRightShift uint8 = 1 << 5
	ModRightAlt   uint8 = 1 << 6
	ModRightGUI   uint8 = 1 << 7
)

var modifierNames = [8]string{
	"LeftCtrl", "LeftShift", "LeftAlt", "LeftGUI",
	"RightCtrl", "RightShift", "RightAlt", "RightGUI",
}

// FormatModifiers names the set bits of mask joined with '+', or "none"
func FormatModifiers(mask uint8) string {
	if mask == 0 {
		return "none"
	}
	s := ""
	for j := 0; j < 8; j++ {
		if mask&(1<<j) == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += modifierNames[j]
	}
	return s
}

// KeyName returns a label for a HID keyboard usage code.
// Codes without a label are formatted as hex.
func KeyName(usage uint8) string {
	switch {
	case usage == 0:
		return "none"
	case usage >= 0x04 && usage <= 0x1D:
		return string(rune('a' + usage - 0x04))
	case usage >= 0x1E && usage <= 0x26:
		return string(rune('1' + usage - 0x1E))
	case usage == 0x27:
		return "0"
	case usage >= 0x3A && usage <= 0x45:
		return "F" + utoa(uint32(usage-0x3A+1))
	}

	switch usage {
	case 0x28:
		return "Enter"
	case 0x29:
		return "Escape"
	case 0x2A:
		return "Backspace"
	case 0x2B:
		return "Tab"
	case 0x2C:
		return "Space"
	case 0x4F:
		return "Right"
	case 0x50:
		return "Left"
	case 0x51:
		return "Down"
	case 0x52:
		return "Up"
	}
	return hexByte(usage)
}
