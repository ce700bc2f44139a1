// NES controller pad polling
// Reads button state out of the controller's 4021 shift register by
// bit-banging the latch/pulse/data lines through the GPIO HAL.
package core

// DefaultLatchSettleMicros is the minimum time between the latch pulse and
// the first data sample. The controller's shift register needs this long
// before the first bit is stable on the data line. Treat it as a lower
// bound, not an exact wait.
const DefaultLatchSettleMicros = 6

// Pad represents a single connected NES controller.
//
// A Pad owns three GPIO line roles: latch and pulse are outputs driving the
// controller's shift register, data is the input the controller answers on.
// The most recent poll's button state is kept as an 8-bit mask; bit i set
// means button i was pressed. Pads are not safe for concurrent polling;
// callers serialize Poll per pad.
type Pad struct {
	gpio GPIODriver

	pulsePin GPIOPin
	dataPin  GPIOPin
	latchPin GPIOPin

	// LatchSettle is the wait in microseconds after the latch pulse before
	// the first sample. Init sets it to DefaultLatchSettleMicros.
	LatchSettle uint32

	// PulseWidth is an optional wait in microseconds between the high and
	// low edge of each latch/pulse transition. Zero relies on the driver's
	// natural toggle time, which is adequate on AVR-class clock speeds but
	// may be too fast on quicker hosts.
	PulseWidth uint32

	buttonMask uint8
}

// Init records the three pin roles on the pad and configures them on the
// GPIO driver: data as input, pulse and latch as outputs. The snapshot mask
// is reset to zero. The pins must be distinct digital-capable pins; no
// validation is performed. Calling Init on a nil pad does nothing.
func (p *Pad) Init(gpio GPIODriver, pulsePin, dataPin, latchPin GPIOPin) {
	if p == nil {
		return
	}

	p.gpio = gpio
	p.pulsePin = pulsePin
	p.dataPin = dataPin
	p.latchPin = latchPin
	p.LatchSettle = DefaultLatchSettleMicros
	p.PulseWidth = 0
	p.buttonMask = 0

	gpio.ConfigureInput(dataPin)
	gpio.ConfigureOutput(pulsePin)
	gpio.ConfigureOutput(latchPin)
}

// Poll performs one full read cycle of the controller.
//
// The latch line is pulsed high then low, telling the controller to capture
// the current button states into its shift register. After the settle wait
// the eight bits are shifted out in button order: each iteration samples the
// data line first, then pulses the clock line to advance the register. The
// data line is active low, so a low level means pressed.
//
// The pad's mask is replaced in one assignment after all eight samples; a
// reader never observes a partially updated snapshot. Calling Poll on a nil
// pad does nothing.
func (p *Pad) Poll() {
	if p == nil {
		return
	}

	g := p.gpio
	var mask uint8

	g.SetPin(p.latchPin, true)
	if p.PulseWidth > 0 {
		g.DelayMicroseconds(p.PulseWidth)
	}
	g.SetPin(p.latchPin, false)
	g.DelayMicroseconds(p.LatchSettle)

	for bit := uint8(0); bit < NumButtons; bit++ {
		if !g.ReadPin(p.dataPin) {
			mask |= 1 << bit
		}
		g.SetPin(p.pulsePin, true)
		if p.PulseWidth > 0 {
			g.DelayMicroseconds(p.PulseWidth)
		}
		g.SetPin(p.pulsePin, false)
	}

	p.buttonMask = mask
}

// Pressed reports whether the button was pressed during the most recent
// poll. Before the first poll all buttons read as not pressed. A nil pad
// reports false.
func (p *Pad) Pressed(b Button) bool {
	if p == nil {
		return false
	}
	return p.buttonMask&b.Mask() != 0
}

// Buttons returns the raw snapshot mask from the most recent poll. A nil
// pad reports zero.
func (p *Pad) Buttons() uint8 {
	if p == nil {
		return 0
	}
	return p.buttonMask
}
