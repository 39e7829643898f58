// Package input implements the Game Boy joypad matrix.
package input

// Button represents a joypad button as a bit in the internal state mask.
type Button uint8

const (
	ButtonRight Button = 1 << iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// AllButtons covers every button bit, for bulk release.
const AllButtons = ButtonRight | ButtonLeft | ButtonUp | ButtonDown |
	ButtonA | ButtonB | ButtonSelect | ButtonStart

// P1 register bits: 4-5 select the button group (0 = selected), 6-7 are
// wired high. The low nibble reads the selected group active-low.
const (
	selectDpad    = 0x10 // P14
	selectButtons = 0x20 // P15
	p1FixedHigh   = 0xC0
	p1SelectMask  = 0x30
)

// Joypad holds the state of the eight logical buttons and the P1 select
// bits written by the program. Reads expose whichever 4-bit group the last
// select write activated, with inactive bits set (active-low convention).
type Joypad struct {
	buttons uint8 // Button bitmask, 1 = pressed
	p1      uint8 // select bits 4-5 as last written
}

// New creates a joypad with no buttons pressed and neither group selected.
func New() *Joypad {
	return &Joypad{p1: p1SelectMask}
}

// Reset releases all buttons and deselects both groups.
func (j *Joypad) Reset() {
	j.buttons = 0
	j.p1 = p1SelectMask
}

// Press marks one or more buttons as pressed. Opposite directions cannot be
// held simultaneously; the most recent press wins.
func (j *Joypad) Press(mask Button) {
	next := j.buttons | uint8(mask)
	if next&uint8(ButtonRight) != 0 && mask&ButtonRight != 0 {
		next &^= uint8(ButtonLeft)
	}
	if next&uint8(ButtonLeft) != 0 && mask&ButtonLeft != 0 {
		next &^= uint8(ButtonRight)
	}
	if next&uint8(ButtonUp) != 0 && mask&ButtonUp != 0 {
		next &^= uint8(ButtonDown)
	}
	if next&uint8(ButtonDown) != 0 && mask&ButtonDown != 0 {
		next &^= uint8(ButtonUp)
	}
	j.buttons = next
}

// Release marks one or more buttons as released.
func (j *Joypad) Release(mask Button) {
	j.buttons &^= uint8(mask)
}

// SetButtons sets every button state at once, in the order
// Right, Left, Up, Down, A, B, Select, Start.
func (j *Joypad) SetButtons(buttons [8]bool) {
	j.buttons = 0
	order := [8]Button{
		ButtonRight, ButtonLeft, ButtonUp, ButtonDown,
		ButtonA, ButtonB, ButtonSelect, ButtonStart,
	}
	for i, pressed := range buttons {
		if pressed {
			j.Press(order[i])
		}
	}
}

// IsPressed returns whether the button is currently held.
func (j *Joypad) IsPressed(b Button) bool {
	return j.buttons&uint8(b) != 0
}

// Write handles a write to P1 ($FF00). Only the group-select bits are
// program-writable.
func (j *Joypad) Write(value uint8) {
	j.p1 = value & p1SelectMask
}

// Read handles a read from P1 ($FF00). A selected group exposes its four
// buttons active-low in the low nibble; with neither or both groups selected
// the nibble reads as no-press to avoid mixing the matrix columns.
func (j *Joypad) Read() uint8 {
	low := uint8(0x0F)

	dpadSelected := j.p1&selectDpad == 0
	buttonsSelected := j.p1&selectButtons == 0

	switch {
	case buttonsSelected && !dpadSelected:
		if j.IsPressed(ButtonA) {
			low &^= 0x01
		}
		if j.IsPressed(ButtonB) {
			low &^= 0x02
		}
		if j.IsPressed(ButtonSelect) {
			low &^= 0x04
		}
		if j.IsPressed(ButtonStart) {
			low &^= 0x08
		}
	case dpadSelected && !buttonsSelected:
		if j.IsPressed(ButtonRight) {
			low &^= 0x01
		}
		if j.IsPressed(ButtonLeft) {
			low &^= 0x02
		}
		if j.IsPressed(ButtonUp) {
			low &^= 0x04
		}
		if j.IsPressed(ButtonDown) {
			low &^= 0x08
		}
	}

	return j.p1 | p1FixedHigh | low
}
