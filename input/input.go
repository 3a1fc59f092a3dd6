/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package input

// Button identifies one of the five momentary switches on the card.
type Button uint8

const (
	Mode Button = iota
	Up
	Right
	Left
	Down

	NumButtons = 5
)

var buttonNames = [NumButtons]string{"mode", "up", "right", "left", "down"}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

// Source reports whether a button is held down right now. Reads are levels,
// not edges.
type Source interface {
	Pressed(b Button) bool
}

// Line is a digital input, such as machine.Pin or a GPIO character device
// line adapter. Get returns true for a high level.
type Line interface {
	Get() bool
}

// Lines maps every button to an active-low line: the switch pulls the line
// to ground when pressed.
type Lines [NumButtons]Line

func (l *Lines) Pressed(b Button) bool {
	if int(b) >= len(l) || l[b] == nil {
		return false
	}
	return !l[b].Get()
}

// Fixed is a Source whose state is set directly.
type Fixed [NumButtons]bool

func (f *Fixed) Pressed(b Button) bool {
	if int(b) >= len(f) {
		return false
	}
	return f[b]
}

func (f *Fixed) Set(b Button, pressed bool) {
	if int(b) < len(f) {
		f[b] = pressed
	}
}

// Release lifts every button.
func (f *Fixed) Release() {
	*f = Fixed{}
}
