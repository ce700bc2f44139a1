package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
//
// The methods mirror the four primitives the pad protocol needs from the
// host platform: pin mode configuration, digital write, digital read and a
// microsecond delay. None of them return errors; on the targets this runs
// on they are raw register operations that cannot fail.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin)

	// ConfigureInput configures a pin as a digital input
	ConfigureInput(pin GPIOPin)

	// SetPin drives the pin high (true) or low (false)
	SetPin(pin GPIOPin, high bool)

	// ReadPin reads the current logical pin level
	ReadPin(pin GPIOPin) bool

	// DelayMicroseconds busy-waits for at least us microseconds
	DelayMicroseconds(us uint32)
}

// Global singleton used by target startup code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
