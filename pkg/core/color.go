package core

// Color is an RGB triple with unclamped linear channels. Values may exceed
// 1.0 while tracing; clamping happens only at image export.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns pure white
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Grey returns a grey of the given brightness
func Grey(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the Hadamard product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals compares two colors channel-wise with epsilon tolerance
func (c Color) Equals(other Color) bool {
	return floatEquals(c.R, other.R) &&
		floatEquals(c.G, other.G) &&
		floatEquals(c.B, other.B)
}
