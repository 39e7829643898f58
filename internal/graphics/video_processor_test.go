package graphics

import "testing"

func TestVideoProcessorIdentityPassThrough(t *testing.T) {
	vp := NewVideoProcessor(1.0, 1.0, 1.0)
	frame := []uint32{0x123456, 0xE0F8D0}

	got := vp.ProcessFrame(frame)

	if &got[0] != &frame[0] {
		t.Error("identity processing should return the input slice")
	}
}

func TestVideoProcessorBrightness(t *testing.T) {
	vp := NewVideoProcessor(2.0, 1.0, 1.0)
	frame := []uint32{0x404040}

	got := vp.ProcessFrame(frame)

	if got[0] != 0x808080 {
		t.Errorf("doubled brightness = %#06x, want 0x808080", got[0])
	}
}

func TestVideoProcessorClampsToWhite(t *testing.T) {
	vp := NewVideoProcessor(10.0, 1.0, 1.0)
	frame := []uint32{0xE0F8D0}

	got := vp.ProcessFrame(frame)

	if got[0] != 0xFFFFFF {
		t.Errorf("overdriven pixel = %#06x, want clamped 0xFFFFFF", got[0])
	}
}

func TestVideoProcessorContrastPivot(t *testing.T) {
	// Mid-gray sits on the contrast pivot and must not move.
	vp := NewVideoProcessor(1.0, 2.0, 1.0)
	frame := []uint32{0x7F7F7F}

	got := vp.ProcessFrame(frame)

	r := got[0] >> 16 & 0xFF
	if r < 0x7C || r > 0x82 {
		t.Errorf("mid-gray moved to %#02x under contrast", r)
	}
}

func TestVideoProcessorDesaturate(t *testing.T) {
	// Zero saturation turns any hue into a gray.
	vp := NewVideoProcessor(1.0, 1.0, 0.0)
	frame := []uint32{0xFF0000}

	got := vp.ProcessFrame(frame)

	r := got[0] >> 16 & 0xFF
	g := got[0] >> 8 & 0xFF
	b := got[0] & 0xFF
	if r != g || g != b {
		t.Errorf("desaturated pixel %#06x is not gray", got[0])
	}
}
