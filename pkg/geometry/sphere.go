package geometry

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/material"
)

// hitEpsilon is the minimum intersection distance; closer roots are
// treated as self-intersections and rejected.
const hitEpsilon = 0.001

// Sphere represents a sphere with its surface material properties.
// Center is animated every frame; Radius is fixed after construction.
type Sphere struct {
	Center          core.Vec3
	Radius          float64
	Color           core.Color
	Metallic        float64 // 0 = diffuse, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transmissive
	RefractiveIndex float64 // meaningful only when Transparency > 0
	Texture         *material.Texture
}

// NewSphere creates a new diffuse sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center:          center,
		Radius:          radius,
		Color:           color,
		RefractiveIndex: 1.0,
	}
}

// Intersect tests the ray against the sphere and returns the hit distance.
// Only the nearer quadratic root is considered: if it lies closer than
// hitEpsilon the sphere reports no hit, even when the far root would
// qualify. Rays originating inside the sphere therefore never hit it.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	if t > hitEpsilon {
		return t, true
	}
	return 0, false
}

// NormalAt returns the outward surface normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// UVAt returns spherical-mapping texture coordinates at a point on the sphere
func (s *Sphere) UVAt(point core.Vec3) (float64, float64) {
	n := s.NormalAt(point)
	u := 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi)
	v := 0.5 - math.Asin(n.Y)/math.Pi
	return u, v
}

// ColorAt returns the material color at a point on the sphere: the base
// color, modulated by the texture when one is attached.
func (s *Sphere) ColorAt(point core.Vec3) core.Color {
	if s.Texture == nil {
		return s.Color
	}
	u, v := s.UVAt(point)
	return s.Texture.Sample(u, v).MultiplyColor(s.Color)
}
