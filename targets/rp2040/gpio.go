//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"nespad/core"
)

// machineGPIO implements core.GPIODriver on the TinyGo machine package.
// RP2040/RP2350 pins map directly to GPIO numbers, so no translation table
// is needed.
type machineGPIO struct{}

func (machineGPIO) ConfigureOutput(pin core.GPIOPin) {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (machineGPIO) ConfigureInput(pin core.GPIOPin) {
	// Plain input, matching the controller's wiring: the pad actively
	// drives the data line whenever latch power is applied.
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInput})
}

func (machineGPIO) SetPin(pin core.GPIOPin, high bool) {
	machine.Pin(pin).Set(high)
}

func (machineGPIO) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}

func (machineGPIO) DelayMicroseconds(us uint32) {
	// Backed by the hardware timer on RP2040, which is accurate enough at
	// the microsecond scale this bus needs.
	time.Sleep(time.Duration(us) * time.Microsecond)
}
