package input

import "testing"

func TestReadWithNoGroupSelected(t *testing.T) {
	j := New()
	j.Press(ButtonA | ButtonDown)

	// Neither group selected (both select bits written high): no presses
	// visible, upper bits read as set.
	j.Write(0x30)
	if got := j.Read(); got != 0xFF {
		t.Errorf("Read() = %#02x, want 0xFF", got)
	}
}

func TestReadButtonGroup(t *testing.T) {
	tests := []struct {
		name    string
		press   Button
		wantLow uint8
	}{
		{"None", 0, 0x0F},
		{"A", ButtonA, 0x0E},
		{"B", ButtonB, 0x0D},
		{"Select", ButtonSelect, 0x0B},
		{"Start", ButtonStart, 0x07},
		{"A_And_Start", ButtonA | ButtonStart, 0x06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := New()
			j.Press(tt.press)
			j.Write(0x10) // P15 low: action buttons selected

			got := j.Read()
			if got&0x0F != tt.wantLow {
				t.Errorf("Read() low nibble = %#02x, want %#02x", got&0x0F, tt.wantLow)
			}
			if got&0xC0 != 0xC0 {
				t.Errorf("Read() upper bits = %#02x, want both set", got&0xC0)
			}
		})
	}
}

func TestReadDpadGroup(t *testing.T) {
	j := New()
	j.Press(ButtonRight | ButtonUp)
	j.Write(0x20) // P14 low: d-pad selected

	got := j.Read()
	if got&0x0F != 0x0A { // Right (bit 0) and Up (bit 2) low
		t.Errorf("Read() low nibble = %#02x, want 0x0A", got&0x0F)
	}
}

func TestGroupSelectSwitchesView(t *testing.T) {
	j := New()
	j.Press(ButtonA)
	j.Press(ButtonLeft)

	j.Write(0x10)
	if got := j.Read() & 0x0F; got != 0x0E {
		t.Errorf("button group read = %#02x, want 0x0E", got)
	}

	j.Write(0x20)
	if got := j.Read() & 0x0F; got != 0x0D {
		t.Errorf("d-pad group read = %#02x, want 0x0D", got)
	}
}

func TestOppositeDirectionsExcluded(t *testing.T) {
	j := New()

	j.Press(ButtonLeft)
	j.Press(ButtonRight)
	if j.IsPressed(ButtonLeft) {
		t.Error("Left still pressed after pressing Right")
	}
	if !j.IsPressed(ButtonRight) {
		t.Error("Right not pressed")
	}

	j.Press(ButtonUp)
	j.Press(ButtonDown)
	if j.IsPressed(ButtonUp) {
		t.Error("Up still pressed after pressing Down")
	}
}

func TestSetButtonsBulk(t *testing.T) {
	j := New()
	// Right, Left, Up, Down, A, B, Select, Start
	j.SetButtons([8]bool{true, false, false, false, true, false, false, true})

	if !j.IsPressed(ButtonRight) || !j.IsPressed(ButtonA) || !j.IsPressed(ButtonStart) {
		t.Error("SetButtons did not press the requested buttons")
	}
	if j.IsPressed(ButtonB) || j.IsPressed(ButtonLeft) {
		t.Error("SetButtons pressed unrequested buttons")
	}
}

func TestReleaseAndReset(t *testing.T) {
	j := New()
	j.Press(ButtonA | ButtonB)
	j.Release(ButtonA)

	if j.IsPressed(ButtonA) {
		t.Error("A still pressed after Release")
	}
	if !j.IsPressed(ButtonB) {
		t.Error("Release cleared an unrelated button")
	}

	j.Reset()
	if j.IsPressed(ButtonB) {
		t.Error("B still pressed after Reset")
	}
}
