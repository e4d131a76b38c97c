package renderer

import (
	"math/rand"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

const (
	minSamples = 1
	maxSamples = 8
)

// Renderer owns the scene state, the sample stream, and the output buffer,
// and produces one full frame per RenderFrame call. It is single-threaded:
// a render call runs to completion with no suspension points, and the
// random stream is consumed in a fixed order (pixel jitter first, then any
// hemisphere samples spawned inside the trace).
type Renderer struct {
	scene   *scene.Scene
	tracer  *Raytracer
	sampler core.Sampler
	buffer  []byte
	samples int
	time    float64
}

// NewRenderer creates a renderer over the given scene. The sample stream
// is seeded deterministically.
func NewRenderer(s *scene.Scene, config Config) *Renderer {
	return &Renderer{
		scene:   s,
		tracer:  NewRaytracer(s, config),
		sampler: core.NewRandomSampler(rand.New(rand.NewSource(42))),
		samples: 1,
	}
}

// SetSamples sets the anti-aliasing sample count, clamped to [1, 8]
func (r *Renderer) SetSamples(n int) {
	if n < minSamples {
		n = minSamples
	}
	if n > maxSamples {
		n = maxSamples
	}
	r.samples = n
}

// Samples returns the current anti-aliasing sample count
func (r *Renderer) Samples() int {
	return r.samples
}

// Time returns the accumulated animation time in seconds
func (r *Renderer) Time() float64 {
	return r.time
}

// RenderFrame advances the animation by dt seconds and renders one frame
// from the given camera at the given dimensions. The returned buffer is
// row-major, top to bottom, 3 bytes (R, G, B) per pixel, and is reused
// across frames; it is only reallocated when the dimensions change.
func (r *Renderer) RenderFrame(dt float64, cam CameraState, width, height int) []byte {
	r.time += dt
	r.scene.Update(r.time)

	if len(r.buffer) != width*height*3 {
		r.buffer = make([]byte, width*height*3)
	}

	origin := cam.Position()
	invSamples := 1.0 / float64(r.samples)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var accum core.Color
			for s := 0; s < r.samples; s++ {
				jx := r.sampler.Get1D() - 0.5
				jy := r.sampler.Get1D() - 0.5
				dir := rayDirection(float64(x)+jx, float64(y)+jy, width, height)
				accum = accum.Add(r.tracer.trace(core.NewRay(origin, dir), 0, r.sampler))
			}

			pixel := accum.Multiply(invSamples).Clamp()
			i := (y*width + x) * 3
			// Truncating conversion, matching the display contract
			r.buffer[i] = byte(pixel.R * 255)
			r.buffer[i+1] = byte(pixel.G * 255)
			r.buffer[i+2] = byte(pixel.B * 255)
		}
	}

	return r.buffer
}
