package render

import (
	"math"

	"github.com/echoflaresat/vec3"
	"github.com/echoflaresat/vec3/earth"
	"github.com/echoflaresat/vec3/texture"
)

// RayContext carries per-ray state and the scene constants the shader
// needs. It is not safe for concurrent use; render workers each shade
// with their own copy.
type RayContext struct {
	Origin            vec3.Vec[float64]
	SunDir            vec3.Vec[float64]
	AltitudeKm        float64
	RayDirection      vec3.Vec[float64]
	DistToCenter      float64
	T                 float64
	HitPoint          vec3.Vec[float64]
	SurfaceNormal     vec3.Vec[float64]
	RimLightFactor    float64
	SunLightIntensity float64
	ViewDotNormal     float64
	theme             Theme
	TexDay            texture.Texture
	TexNight          texture.Texture
	TexClouds         texture.Texture
}

// NewRayContext builds the shared scene state; per-ray fields are filled
// in by SetRayDirection.
func NewRayContext(
	origin vec3.Vec[float64],
	sunDir vec3.Vec[float64],
	altitudeKm float64,
	theme Theme,
	texDay texture.Texture,
	texNight texture.Texture,
	texClouds texture.Texture,
) *RayContext {
	return &RayContext{
		Origin:     origin,
		SunDir:     sunDir,
		AltitudeKm: altitudeKm,
		theme:      theme,
		TexDay:     texDay,
		TexNight:   texNight,
		TexClouds:  texClouds,
	}
}

// SetRayDirection recomputes the per-ray fields for a new view ray.
// rayDirection must be unit length.
func (c *RayContext) SetRayDirection(rayDirection vec3.Vec[float64]) {
	c.RayDirection = rayDirection

	// Closest approach of the ray to the Earth center.
	dotOriginRay := c.Origin.Dot(&c.RayDirection)
	closest := c.Origin.Sub(c.RayDirection.Scale(dotOriginRay)).Eval()
	c.DistToCenter = closest.Norm()

	// Rim light factor: cosine between the sun and the closest vector.
	if c.DistToCenter > 0 {
		c.RimLightFactor = closest.Div(c.DistToCenter).Dot(&c.SunDir)
	} else {
		c.RimLightFactor = 0.0
	}

	c.T = intersectSphere(&c.Origin, &c.RayDirection, earth.Radius)

	// Hit point and normal are filled in even for misses; the shader only
	// trusts them when T is positive.
	c.HitPoint = c.Origin.Add(c.RayDirection.Scale(c.T)).Eval()
	c.SurfaceNormal = c.HitPoint.Normalized()

	c.SunLightIntensity = c.SurfaceNormal.Dot(&c.SunDir)
	c.ViewDotNormal = -c.SurfaceNormal.Dot(&c.RayDirection)
}

// intersectSphere returns the closest positive t where origin + t*dir
// crosses a sphere of radius r centered on the Earth center, or -1 for a
// miss. dir must be unit length.
func intersectSphere(o, d *vec3.Vec[float64], r float64) float64 {
	b := 2.0 * o.Dot(d)
	c := o.SquaredNorm() - r*r

	disc := b*b - 4.0*c
	if disc < 0 {
		return -1.0
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / 2.0
	t2 := (-b + sqrtDisc) / 2.0

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return -1.0
}

// intersectSphereSpan returns both crossings, entry before exit. Callers
// decide what negative values mean.
func intersectSphereSpan(o, d *vec3.Vec[float64], r float64) (bool, float64, float64) {
	b := 2.0 * o.Dot(d)
	c := o.SquaredNorm() - r*r

	disc := b*b - 4.0*c
	if disc < 0 {
		return false, 0, 0
	}

	sqrtDisc := math.Sqrt(disc)
	return true, (-b - sqrtDisc) / 2.0, (-b + sqrtDisc) / 2.0
}
