package renderer

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/geometry"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

const (
	// surfaceEpsilon offsets secondary ray origins along the normal to
	// avoid immediate self-reintersection (shadow acne)
	surfaceEpsilon = 0.001

	// ambientFloor is the minimum direct-light intensity on any lit surface
	ambientFloor = 0.1

	// shadowFloor is the intensity forced onto occluded surfaces
	shadowFloor = 0.1

	// giWeight scales the single-bounce indirect light contribution
	giWeight = 0.1

	// giMaxDepth limits which recursion depths spawn indirect bounce rays
	giMaxDepth = 3

	// giMetallicCutoff excludes strongly metallic surfaces from indirect
	// light gathering; their reflection rays already carry it
	giMetallicCutoff = 0.5
)

// backgroundColor is returned for rays that miss everything and for rays
// cut off at the recursion limit
var backgroundColor = core.NewColor(0.1, 0.1, 0.2)

// Config contains the fixed tracing configuration, set at construction
type Config struct {
	MaxDepth   int  // maximum recursion depth
	ShadowRays bool // whether occluded surfaces are clamped to shadowFloor
}

// EnhancedConfig returns the full-featured configuration: deeper recursion
// and shadow rays
func EnhancedConfig() Config {
	return Config{MaxDepth: 8, ShadowRays: true}
}

// BasicConfig returns the minimal configuration: shallow recursion, no
// shadow rays
func BasicConfig() Config {
	return Config{MaxDepth: 5, ShadowRays: false}
}

// Raytracer performs recursive light transport against a scene
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return &Raytracer{scene: s, config: config}
}

// nearestHit scans every sphere and returns the closest qualifying
// intersection. On exactly-equal distances the earlier sphere wins.
func (rt *Raytracer) nearestHit(ray core.Ray) (*geometry.Sphere, float64, bool) {
	var closest *geometry.Sphere
	closestT := math.Inf(1)

	for _, s := range rt.scene.Spheres {
		if t, ok := s.Intersect(ray); ok && t < closestT {
			closest = s
			closestT = t
		}
	}

	return closest, closestT, closest != nil
}

// inShadow reports whether the path from the hit point toward the light is
// blocked by any sphere other than the one that was hit
func (rt *Raytracer) inShadow(point, normal, lightDir core.Vec3, hit *geometry.Sphere) bool {
	shadowRay := core.NewRay(point.Add(normal.Multiply(surfaceEpsilon)), lightDir)
	for _, s := range rt.scene.Spheres {
		if s == hit {
			continue
		}
		if _, ok := s.Intersect(shadowRay); ok {
			return true
		}
	}
	return false
}

// trace computes the color carried back along a ray. Shading stages
// compose in a fixed order: direct light, reflection, refraction, then
// indirect light. The result is clamped per channel before returning.
func (rt *Raytracer) trace(ray core.Ray, depth int, sampler core.Sampler) core.Color {
	if depth > rt.config.MaxDepth {
		return backgroundColor
	}

	hit, t, ok := rt.nearestHit(ray)
	if !ok {
		return backgroundColor
	}

	point := ray.At(t)
	normal := hit.NormalAt(point)
	materialColor := hit.ColorAt(point)

	// Direct lighting against the single point light
	lightDir := rt.scene.Light.Subtract(point).Normalize()
	intensity := math.Max(ambientFloor, normal.Dot(lightDir))
	if rt.config.ShadowRays && rt.inShadow(point, normal, lightDir, hit) {
		intensity = shadowFloor
	}
	finalColor := materialColor.Multiply(intensity)

	// Reflection
	if hit.Metallic > 0 {
		reflectRay := core.NewRay(
			point.Add(normal.Multiply(surfaceEpsilon)),
			ray.Direction.Reflect(normal))
		reflected := rt.trace(reflectRay, depth+1, sampler)
		finalColor = finalColor.Multiply(1 - hit.Metallic).
			Add(reflected.Multiply(hit.Metallic))
	}

	// Refraction with Fresnel-weighted reflection
	if hit.Transparency > 0 {
		cosI := ray.Direction.Negate().Dot(normal)
		eta := 1 / hit.RefractiveIndex
		outward := normal
		if cosI < 0 {
			// Exiting the sphere: flip the normal and invert the ratio
			eta = hit.RefractiveIndex
			outward = normal.Negate()
			cosI = -cosI
		}

		// A zero refraction direction signals total internal reflection;
		// the transparency branch contributes nothing in that case
		refractDir := ray.Direction.Refract(outward, eta)
		if refractDir != (core.Vec3{}) {
			kr := fresnel(cosI, eta)
			refractRay := core.NewRay(
				point.Subtract(outward.Multiply(surfaceEpsilon)), refractDir)
			reflectRay := core.NewRay(
				point.Add(outward.Multiply(surfaceEpsilon)),
				ray.Direction.Reflect(outward))

			transparent := rt.trace(refractRay, depth+1, sampler).Multiply(1 - kr).
				Add(rt.trace(reflectRay, depth+1, sampler).Multiply(kr))
			finalColor = finalColor.Multiply(1 - hit.Transparency).
				Add(transparent.Multiply(hit.Transparency))
		}
	}

	// Single-bounce indirect light, added on top of the blended stages
	if depth < giMaxDepth && hit.Metallic < giMetallicCutoff {
		bounceDir := core.SampleHemisphere(normal, sampler.Get2D())
		bounceRay := core.NewRay(point.Add(normal.Multiply(surfaceEpsilon)), bounceDir)
		bounce := rt.trace(bounceRay, depth+1, sampler)
		finalColor = finalColor.Add(bounce.MultiplyColor(materialColor).Multiply(giWeight))
	}

	return finalColor.Clamp()
}

// fresnel computes the exact dielectric reflectance for an incidence
// cosine and refractive-index ratio, averaging the s- and p-polarized
// terms. Past the critical angle everything reflects.
func fresnel(cosI, eta float64) float64 {
	sinT2 := eta * eta * (1 - cosI*cosI)
	if sinT2 > 1 {
		return 1
	}
	cosT := math.Sqrt(1 - sinT2)
	rs := (eta*cosI - cosT) / (eta*cosI + cosT)
	rp := (eta*cosT - cosI) / (eta*cosT + cosI)
	return (rs*rs + rp*rp) / 2
}
