package shade

import "image/color"

// RGBA is a color with red, green, blue and alpha channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// ColorPair holds the two colors a decoder resolves cells to. Immutable for
// the duration of a frame.
type ColorPair struct {
	Alive RGBA
	Dead  RGBA
}

// Mix linearly interpolates from a to b per channel, alpha included. t is not
// clamped: values outside [0, 1] extrapolate.
func Mix(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

// Color converts to the standard color.Color interface, clamping each channel
// into displayable range.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
