package renderer

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

// CameraState describes the orbit camera supplied by the host each frame.
// The host is responsible for clamping Distance to [1, 20]. The camera
// always looks along -z regardless of its orbit position.
type CameraState struct {
	AngleX   float64
	AngleY   float64
	Distance float64
}

// Position converts the orbit angles and distance to a world-space
// camera position.
func (c CameraState) Position() core.Vec3 {
	return core.NewVec3(
		c.Distance*math.Sin(c.AngleX)*math.Cos(c.AngleY),
		c.Distance*math.Sin(c.AngleY),
		c.Distance*math.Cos(c.AngleX)*math.Cos(c.AngleY),
	)
}

// rayDirection maps a (possibly jittered) screen position to a primary ray
// direction on an image of the given dimensions. v is scaled by the aspect
// ratio so pixels stay square on non-square images.
func rayDirection(px, py float64, width, height int) core.Vec3 {
	u := (px/float64(width))*2 - 1
	v := (py/float64(height))*2 - 1
	v *= float64(height) / float64(width)

	return core.NewVec3(u, -v, -1).Normalize()
}
