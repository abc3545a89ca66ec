package core

import "image/color"

// Color is a linear RGB value. Components are unbounded; clamping happens
// only when converting for an image sink.
type Color struct {
	R, G, B float64
}

// Black is the zero color
var Black = Color{}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorRGB255 creates a Color from 0-255 channel values
func NewColorRGB255(r, g, b uint8) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// Add returns the sum of colors
func (c Color) Add(others ...Color) Color {
	for _, o := range others {
		c.R += o.R
		c.G += o.G
		c.B += o.B
	}
	return c
}

// Scale multiplies every channel by k
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// ScaleCoeff multiplies each channel by the matching coefficient channel
func (c Color) ScaleCoeff(k Coeff) Color {
	return Color{c.R * k.R, c.G * k.G, c.B * k.B}
}

// Reduce divides every channel by n
func (c Color) Reduce(n int) Color {
	if n <= 0 {
		return c
	}
	return c.Scale(1.0 / float64(n))
}

// ToRGBA clamps channels to [0,255] and converts to an image color
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
