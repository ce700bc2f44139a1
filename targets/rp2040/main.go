//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"nespad/core"
	"nespad/protocol"
)

// Pad wiring, following the connector's wire colors:
// GP2 = latch (orange), GP3 = pulse (red), GP4 = data (yellow).
// +5V and GND go to the pad directly.
const (
	latchPin = core.GPIOPin(2)
	pulsePin = core.GPIOPin(3)
	dataPin  = core.GPIOPin(4)
)

// pollInterval matches the console's own once-per-frame latch cadence.
const pollInterval = 16 * time.Millisecond

func main() {
	core.SetGPIODriver(machineGPIO{})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	pad := &core.Pad{}
	pad.Init(core.MustGPIO(), pulsePin, dataPin, latchPin)

	var seq uint8
	var last uint8
	sent := false

	for {
		pad.Poll()

		// Report on every change plus one initial frame so the host sees
		// the resting state after connecting.
		mask := pad.Buttons()
		if !sent || mask != last {
			seq++
			frame := protocol.EncodeReport(seq, mask)
			if _, err := machine.Serial.Write(frame); err != nil {
				// Host not reading (or CDC not up yet); the next change
				// will carry the fresh state anyway.
				sent = false
			} else {
				last = mask
				sent = true
			}
		}

		// LED mirrors "anything held" for a quick wiring check.
		led.Set(mask != 0)

		time.Sleep(pollInterval)
	}
}
