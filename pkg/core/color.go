package core

// Color represents an RGB color with float64 channels.
// Channels are unclamped during shading; callers clamp before display.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp caps each channel at 1.0. Only the upper bound is enforced;
// negative channels pass through unchanged.
func (c Color) Clamp() Color {
	return Color{
		R: min(1.0, c.R),
		G: min(1.0, c.G),
		B: min(1.0, c.B),
	}
}
