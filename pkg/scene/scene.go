package scene

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/geometry"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/material"
)

// Scene holds the spheres and the point light. Sphere order has no effect
// on shading except as a tie-break for exactly-equal hit distances.
type Scene struct {
	Spheres []*geometry.Sphere
	Light   core.Vec3
}

// NewDefaultScene creates the standard scene: a red metallic sphere, a
// glass sphere, a blue diffuse sphere, and a large checkered ground sphere.
func NewDefaultScene() *Scene {
	checker := material.NewCheckerTexture(64, 64, 8,
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.3, 0.3, 0.3))

	redMetal := geometry.NewSphere(core.NewVec3(-2, 0, -5), 1.0, core.NewColor(0.8, 0.2, 0.2))
	redMetal.Metallic = 0.9

	glass := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, core.NewColor(0.9, 0.9, 0.9))
	glass.Transparency = 0.9
	glass.RefractiveIndex = 1.52

	blueDiffuse := geometry.NewSphere(core.NewVec3(2, 0, -5), 1.0, core.NewColor(0.2, 0.2, 0.8))

	ground := geometry.NewSphere(core.NewVec3(0, -101, -5), 100.0, core.NewColor(1, 1, 1))
	ground.Texture = checker

	// Light starts at its time-zero orbit position so a freshly built
	// scene matches Update(0)
	return &Scene{
		Spheres: []*geometry.Sphere{redMetal, glass, blueDiffuse, ground},
		Light:   core.NewVec3(0, 2, 0),
	}
}

// Update advances the animation to the given accumulated time. It is a
// pure function of time: the same input always produces the same scene
// state. The light orbits the scene and the three foreground spheres
// oscillate on distinct axes; the ground stays put.
func (s *Scene) Update(time float64) {
	s.Light = core.NewVec3(math.Sin(time)*3, 2, math.Cos(time)*3-3)

	if len(s.Spheres) < 3 {
		return
	}
	s.Spheres[0].Center.Y = math.Sin(time*2) * 0.5
	s.Spheres[1].Center.X = math.Sin(time) * 0.5
	s.Spheres[2].Center.Z = -5 + math.Sin(time*1.5)*0.3
}
