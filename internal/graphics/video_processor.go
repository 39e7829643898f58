package graphics

import "math"

// VideoProcessor applies brightness, contrast and saturation adjustments to
// a frame buffer before presentation.
type VideoProcessor struct {
	brightness float64
	contrast   float64
	saturation float64
}

// NewVideoProcessor creates a video processor. 1.0 for every parameter is
// the identity.
func NewVideoProcessor(brightness, contrast, saturation float64) *VideoProcessor {
	return &VideoProcessor{
		brightness: brightness,
		contrast:   contrast,
		saturation: saturation,
	}
}

// ProcessFrame returns the adjusted frame. The input is returned unchanged
// when every parameter is at the identity.
func (vp *VideoProcessor) ProcessFrame(frameBuffer []uint32) []uint32 {
	if vp.brightness == 1.0 && vp.contrast == 1.0 && vp.saturation == 1.0 {
		return frameBuffer
	}

	processed := make([]uint32, len(frameBuffer))

	for i, pixel := range frameBuffer {
		r := float64((pixel >> 16) & 0xFF)
		g := float64((pixel >> 8) & 0xFF)
		b := float64(pixel & 0xFF)

		r *= vp.brightness
		g *= vp.brightness
		b *= vp.brightness

		r = ((r/255.0-0.5)*vp.contrast + 0.5) * 255.0
		g = ((g/255.0-0.5)*vp.contrast + 0.5) * 255.0
		b = ((b/255.0-0.5)*vp.contrast + 0.5) * 255.0

		if vp.saturation != 1.0 {
			h, s, l := rgbToHSL(r/255.0, g/255.0, b/255.0)
			s = math.Min(s*vp.saturation, 1.0)
			r, g, b = hslToRGB(h, s, l)
			r *= 255.0
			g *= 255.0
			b *= 255.0
		}

		r = clamp(r, 0, 255)
		g = clamp(g, 0, 255)
		b = clamp(b, 0, 255)

		processed[i] = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}

	return processed
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// rgbToHSL converts RGB in [0,1] to HSL.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	l = (max + min) / 2.0

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return h, s, l
}

// hslToRGB converts HSL back to RGB in [0,1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r = hueToRGB(p, q, h+1.0/3.0)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3.0)
	return r, g, b
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
