//go:build rp2040

package main

import (
	"machine"
	"time"

	"keybridge/core"
	"keybridge/protocol"
)

var (
	assembler  *protocol.LineAssembler
	dispatcher *core.Dispatcher
	keyboard   *hidKeyboard
	status     *statusLED

	// Debug counters
	linesReceived uint32
	panics        uint32
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	// Debug output goes to USB CDC, frames arrive on UART0
	InitDebug()
	InitFrameUART()

	keyboard = newHIDKeyboard()
	status = newStatusLED(statusLEDPin)

	dispatcher = core.NewKeyDispatcher(keyboard, core.DefaultTiming())
	assembler = protocol.NewLineAssembler(handleLine)

	core.DebugPrintln("keybridge " + protocol.Version + " ready")

	// Main loop - one byte at a time, each line runs to completion
	for {
		// Recover from panics in the main loop to prevent a firmware crash
		func() {
			defer func() {
				if r := recover(); r != nil {
					panics++
					core.DumpEventRing()
					// Drop the partial frame and release everything
					assembler.Reset()
					_ = keyboard.ReleaseAll()
				}
			}()

			for FrameAvailable() > 0 {
				b, err := FrameRead()
				if err != nil {
					break
				}
				assembler.Feed(b)
			}

			status.Update()
		}()

		// Yield to the USB stack
		time.Sleep(100 * time.Microsecond)
	}
}

// handleLine dispatches a completed line and flashes the status LED
func handleLine(line []byte) {
	linesReceived++

	before := dispatcher.Stats()
	dispatcher.Dispatch(line)
	after := dispatcher.Stats()

	switch {
	case after.Dispatched != before.Dispatched:
		status.Flash(colorDispatched)
	case after.Unknown != before.Unknown:
		status.Flash(colorUnknown)
	}
}
