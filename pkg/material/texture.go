package material

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

// Texture is an immutable grid of colors sampled by UV coordinates.
// Textures are generated once at startup and shared across spheres.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewTexture creates a texture from a pre-filled pixel grid
func NewTexture(width, height int, pixels []core.Color) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewCheckerTexture creates a procedural checkerboard pattern texture
func NewCheckerTexture(width, height, checkSize int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewTexture(width, height, pixels)
}

// Sample returns the texture color at the given UV coordinates using
// nearest-neighbor lookup. Coordinates outside [0,1) wrap around.
func (t *Texture) Sample(u, v float64) core.Color {
	u = u - math.Floor(u)
	v = v - math.Floor(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Guard against u or v rounding up to exactly 1.0
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
