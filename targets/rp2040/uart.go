//go:build rp2040

package main

import (
	"machine"

	"keybridge/core"
)

const frameBaudRate = 115200

var frameUART *machine.UART

// InitFrameUART configures UART0 on GPIO0 (TX) and GPIO1 (RX) as the frame source
func InitFrameUART() {
	frameUART = machine.UART0

	err := frameUART.Configure(machine.UARTConfig{
		BaudRate: frameBaudRate,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	})
	if err != nil {
		core.DebugPrintln("UART0 configure failed: " + err.Error())
	}
}

// FrameAvailable returns the number of received bytes waiting
func FrameAvailable() int {
	return frameUART.Buffered()
}

// FrameRead reads a single byte from the frame UART
func FrameRead() (byte, error) {
	return frameUART.ReadByte()
}
