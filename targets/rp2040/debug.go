//go:build rp2040

package main

import (
	"machine"

	"keybridge/core"
)

// Set to true to echo core debug messages over USB CDC
const debugEnabled = false

// InitDebug routes core debug output to the USB CDC serial port
func InitDebug() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}

	core.SetDebugWriter(func(s string) {
		_, _ = machine.Serial.Write([]byte(s))
		_, _ = machine.Serial.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(debugEnabled)
}

