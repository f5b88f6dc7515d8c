//go:build rp2040

package main

import (
	"time"

	tgk "machine/usb/hid/keyboard"
)

// TinyGo keycode namespaces
const (
	keycodeModifier = 0xE000 // Modifier bit in the low byte
	keycodeUsage    = 0xF000 // Raw HID usage in the low byte
)

// keyboardPort is the subset of the TinyGo HID keyboard used here
type keyboardPort interface {
	Down(c tgk.Keycode) error
	Up(c tgk.Keycode) error
	Release() error
	Write(b []byte) (n int, err error)
}

// hidKeyboard implements core.KeySink on the USB HID keyboard.
// It tracks what is held so KeyEvent only sends the differences.
type hidKeyboard struct {
	port     keyboardPort
	heldKey  uint8
	heldMods uint8
}

// newHIDKeyboard returns a sink on the TinyGo USB keyboard
func newHIDKeyboard() *hidKeyboard {
	return &hidKeyboard{port: tgk.Port()}
}

func modifierCode(bit uint8) tgk.Keycode {
	return tgk.Keycode(keycodeModifier | uint16(bit))
}

func usageCode(usage uint8) tgk.Keycode {
	return tgk.Keycode(keycodeUsage | uint16(usage))
}

// KeyEvent moves the held state to exactly key and modifiers
func (k *hidKeyboard) KeyEvent(key, modifiers uint8) error {
	// Release what is no longer wanted
	for j := uint8(0); j < 8; j++ {
		bit := uint8(1) << j
		if k.heldMods&bit != 0 && modifiers&bit == 0 {
			if err := k.port.Up(modifierCode(bit)); err != nil {
				return err
			}
		}
	}
	if k.heldKey != 0 && k.heldKey != key {
		if err := k.port.Up(usageCode(k.heldKey)); err != nil {
			return err
		}
	}

	// Press the additions, modifiers before the key
	for j := uint8(0); j < 8; j++ {
		bit := uint8(1) << j
		if k.heldMods&bit == 0 && modifiers&bit != 0 {
			if err := k.port.Down(modifierCode(bit)); err != nil {
				return err
			}
		}
	}
	if key != 0 && key != k.heldKey {
		if err := k.port.Down(usageCode(key)); err != nil {
			return err
		}
	}

	k.heldKey, k.heldMods = key, modifiers
	return nil
}

// Strike presses key with modifiers and releases everything
func (k *hidKeyboard) Strike(key, modifiers uint8) error {
	if err := k.KeyEvent(key, modifiers); err != nil {
		_ = k.ReleaseAll()
		return err
	}
	return k.ReleaseAll()
}

// ReleaseAll sends an empty report
func (k *hidKeyboard) ReleaseAll() error {
	k.heldKey, k.heldMods = 0, 0
	return k.port.Release()
}

// WriteText types s using the keyboard layout
func (k *hidKeyboard) WriteText(s string) error {
	_, err := k.port.Write([]byte(s))
	return err
}

// Sleep blocks the main loop for d
func (k *hidKeyboard) Sleep(d time.Duration) {
	time.Sleep(d)
}
