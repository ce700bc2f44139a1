package core

// Button identifies one of the eight buttons on a standard NES controller.
// The value is the button's bit position in the snapshot mask, which matches
// the order the controller's shift register presents them on the data line:
// A is shifted out first, Right last.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// NumButtons is the number of buttons a standard controller reports.
const NumButtons = 8

// Mask returns the button's bit in the 8-bit snapshot mask.
func (b Button) Mask() uint8 {
	return 1 << b
}

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonSelect:
		return "Select"
	case ButtonStart:
		return "Start"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	}
	return "Unknown"
}
