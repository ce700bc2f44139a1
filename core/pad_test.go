package core

import "testing"

// Operation kinds recorded by the mock driver
const (
	opConfigureInput  = "configure-input"
	opConfigureOutput = "configure-output"
	opSet             = "set"
	opRead            = "read"
	opDelay           = "delay"
)

type gpioOp struct {
	kind string
	pin  GPIOPin
	high bool
	us   uint32
}

// mockGPIO is a test implementation of GPIODriver. It records every
// operation in order and plays back a scripted sequence of data line levels,
// one per ReadPin call.
type mockGPIO struct {
	ops     []gpioOp
	samples []bool
	next    int
}

func (m *mockGPIO) ConfigureOutput(pin GPIOPin) {
	m.ops = append(m.ops, gpioOp{kind: opConfigureOutput, pin: pin})
}

func (m *mockGPIO) ConfigureInput(pin GPIOPin) {
	m.ops = append(m.ops, gpioOp{kind: opConfigureInput, pin: pin})
}

func (m *mockGPIO) SetPin(pin GPIOPin, high bool) {
	m.ops = append(m.ops, gpioOp{kind: opSet, pin: pin, high: high})
}

func (m *mockGPIO) ReadPin(pin GPIOPin) bool {
	level := true // idle line reads high (no button pressed)
	if m.next < len(m.samples) {
		level = m.samples[m.next]
	}
	m.next++
	m.ops = append(m.ops, gpioOp{kind: opRead, pin: pin, high: level})
	return level
}

func (m *mockGPIO) DelayMicroseconds(us uint32) {
	m.ops = append(m.ops, gpioOp{kind: opDelay, us: us})
}

// script prepares the data line so the sample at each index in pressed
// reads low (active low = pressed) and every other sample reads high.
func (m *mockGPIO) script(pressed ...int) {
	m.samples = make([]bool, NumButtons)
	for i := range m.samples {
		m.samples[i] = true
	}
	for _, i := range pressed {
		m.samples[i] = false
	}
	m.next = 0
}

const (
	testPulsePin = GPIOPin(3)
	testDataPin  = GPIOPin(4)
	testLatchPin = GPIOPin(2)
)

func newTestPad(t *testing.T) (*Pad, *mockGPIO) {
	t.Helper()
	mock := &mockGPIO{}
	pad := &Pad{}
	pad.Init(mock, testPulsePin, testDataPin, testLatchPin)
	return pad, mock
}

func TestInitConfiguresPins(t *testing.T) {
	_, mock := newTestPad(t)

	expected := []gpioOp{
		{kind: opConfigureInput, pin: testDataPin},
		{kind: opConfigureOutput, pin: testPulsePin},
		{kind: opConfigureOutput, pin: testLatchPin},
	}

	if len(mock.ops) != len(expected) {
		t.Fatalf("Init issued %d GPIO operations, expected %d", len(mock.ops), len(expected))
	}
	for i, want := range expected {
		if mock.ops[i] != want {
			t.Errorf("Init operation %d: got %+v, want %+v", i, mock.ops[i], want)
		}
	}
}

func TestNoButtonsPressedBeforeFirstPoll(t *testing.T) {
	pad, _ := newTestPad(t)

	if pad.Buttons() != 0 {
		t.Errorf("Expected zero mask before first poll, got %#02x", pad.Buttons())
	}
	for b := ButtonA; b <= ButtonRight; b++ {
		if pad.Pressed(b) {
			t.Errorf("Button %s reads pressed before first poll", b)
		}
	}
}

func TestPollAllSubsets(t *testing.T) {
	// Every one of the 256 possible button combinations must round-trip
	// from the simulated data line into the snapshot mask.
	for want := 0; want < 256; want++ {
		pad, mock := newTestPad(t)

		var pressed []int
		for i := 0; i < NumButtons; i++ {
			if want&(1<<i) != 0 {
				pressed = append(pressed, i)
			}
		}
		mock.script(pressed...)
		pad.Poll()

		if got := pad.Buttons(); got != uint8(want) {
			t.Fatalf("Poll with data pattern %#02x produced mask %#02x", want, got)
		}
		for b := ButtonA; b <= ButtonRight; b++ {
			isSet := want&(1<<b) != 0
			if pad.Pressed(b) != isSet {
				t.Errorf("Mask %#02x: Pressed(%s) = %v, want %v", want, b, pad.Pressed(b), isSet)
			}
		}
	}
}

func TestPollSignalSequence(t *testing.T) {
	pad, mock := newTestPad(t)
	mock.script()
	mock.ops = nil // drop the Init operations
	pad.Poll()

	ops := mock.ops

	// Expected trace: latch high, latch low, settle delay, then 8 rounds of
	// sample / pulse high / pulse low.
	if len(ops) != 3+3*NumButtons {
		t.Fatalf("Poll issued %d GPIO operations, expected %d", len(ops), 3+3*NumButtons)
	}

	if ops[0] != (gpioOp{kind: opSet, pin: testLatchPin, high: true}) {
		t.Errorf("Operation 0: got %+v, want latch high", ops[0])
	}
	if ops[1] != (gpioOp{kind: opSet, pin: testLatchPin, high: false}) {
		t.Errorf("Operation 1: got %+v, want latch low", ops[1])
	}
	if ops[2].kind != opDelay || ops[2].us != DefaultLatchSettleMicros {
		t.Errorf("Operation 2: got %+v, want %dus settle delay", ops[2], DefaultLatchSettleMicros)
	}

	for bit := 0; bit < NumButtons; bit++ {
		base := 3 + 3*bit
		if ops[base].kind != opRead || ops[base].pin != testDataPin {
			t.Errorf("Bit %d: expected data sample at operation %d, got %+v", bit, base, ops[base])
		}
		if ops[base+1] != (gpioOp{kind: opSet, pin: testPulsePin, high: true}) {
			t.Errorf("Bit %d: expected pulse high at operation %d, got %+v", bit, base+1, ops[base+1])
		}
		if ops[base+2] != (gpioOp{kind: opSet, pin: testPulsePin, high: false}) {
			t.Errorf("Bit %d: expected pulse low at operation %d, got %+v", bit, base+2, ops[base+2])
		}
	}
}

func TestPollReplacesPreviousMask(t *testing.T) {
	pad, mock := newTestPad(t)

	mock.script(1, 2, 5)
	pad.Poll()
	if got := pad.Buttons(); got != 0x26 {
		t.Fatalf("First poll produced mask %#02x, want 0x26", got)
	}

	// A second poll with a disjoint pattern must not carry over any bits.
	mock.script(0, 7)
	pad.Poll()
	if got := pad.Buttons(); got != 0x81 {
		t.Errorf("Second poll produced mask %#02x, want 0x81", got)
	}
}

func TestPollAStart(t *testing.T) {
	pad, mock := newTestPad(t)
	mock.script(0, 3)
	pad.Poll()

	if !pad.Pressed(ButtonA) {
		t.Error("Expected A pressed")
	}
	if !pad.Pressed(ButtonStart) {
		t.Error("Expected Start pressed")
	}
	for _, b := range []Button{ButtonB, ButtonSelect, ButtonUp, ButtonDown, ButtonLeft, ButtonRight} {
		if pad.Pressed(b) {
			t.Errorf("Button %s unexpectedly pressed", b)
		}
	}
}

func TestPollAllPressed(t *testing.T) {
	pad, mock := newTestPad(t)
	mock.script(0, 1, 2, 3, 4, 5, 6, 7)
	pad.Poll()

	if got := pad.Buttons(); got != 0xFF {
		t.Errorf("Expected full mask 0xFF, got %#02x", got)
	}
	for b := ButtonA; b <= ButtonRight; b++ {
		if !pad.Pressed(b) {
			t.Errorf("Button %s not pressed with full mask", b)
		}
	}
}

func TestPulseWidthInsertsEdgeDelays(t *testing.T) {
	pad, mock := newTestPad(t)
	pad.PulseWidth = 2
	mock.script()
	mock.ops = nil
	pad.Poll()

	var widths, settles int
	for _, op := range mock.ops {
		if op.kind != opDelay {
			continue
		}
		switch op.us {
		case 2:
			widths++
		case DefaultLatchSettleMicros:
			settles++
		default:
			t.Errorf("Unexpected delay of %dus", op.us)
		}
	}

	// One width delay inside the latch pulse plus one per clock pulse.
	if widths != 1+NumButtons {
		t.Errorf("Expected %d pulse width delays, got %d", 1+NumButtons, widths)
	}
	if settles != 1 {
		t.Errorf("Expected exactly one settle delay, got %d", settles)
	}
}

func TestReinitClearsMask(t *testing.T) {
	pad, mock := newTestPad(t)
	mock.script(0, 1, 2)
	pad.Poll()
	if pad.Buttons() == 0 {
		t.Fatal("Poll did not set any bits")
	}

	pad.Init(mock, testPulsePin, testDataPin, testLatchPin)
	if pad.Buttons() != 0 {
		t.Errorf("Init left mask %#02x, want 0", pad.Buttons())
	}
}

func TestNilPad(t *testing.T) {
	mock := &mockGPIO{}
	var pad *Pad

	pad.Init(mock, testPulsePin, testDataPin, testLatchPin)
	pad.Poll()

	if len(mock.ops) != 0 {
		t.Errorf("Nil pad produced %d GPIO operations", len(mock.ops))
	}
	if pad.Pressed(ButtonA) {
		t.Error("Nil pad reports a pressed button")
	}
	if pad.Buttons() != 0 {
		t.Error("Nil pad reports a non-zero mask")
	}
}
