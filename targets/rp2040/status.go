//go:build rp2040

package main

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812 data pin (onboard LED on RP2040-Zero style boards)
const statusLEDPin = machine.GPIO16

const flashDuration = 30 * time.Millisecond

var (
	colorOff        = color.RGBA{}
	colorDispatched = color.RGBA{G: 0x20}
	colorUnknown    = color.RGBA{R: 0x20}
)

// statusLED flashes a single WS2812 pixel per handled frame
type statusLED struct {
	dev     ws2812.Device
	pixel   [1]color.RGBA
	offAt   time.Time
	lit     bool
	enabled bool
}

// newStatusLED configures the pin and turns the pixel off
func newStatusLED(pin machine.Pin) *statusLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	s := &statusLED{
		dev:     ws2812.New(pin),
		enabled: true,
	}
	s.write(colorOff)
	return s
}

// Flash lights the pixel; Update turns it off again
func (s *statusLED) Flash(c color.RGBA) {
	if !s.enabled {
		return
	}
	s.write(c)
	s.lit = true
	s.offAt = time.Now().Add(flashDuration)
}

// Update turns the pixel off once the flash has expired
func (s *statusLED) Update() {
	if s.lit && time.Now().After(s.offAt) {
		s.write(colorOff)
		s.lit = false
	}
}

func (s *statusLED) write(c color.RGBA) {
	s.pixel[0] = c
	if err := s.dev.WriteColors(s.pixel[:]); err != nil {
		// LED is cosmetic; stop driving it
		s.enabled = false
	}
}
