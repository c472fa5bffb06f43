package render

import (
	"image"
	"math"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/vec3"
	"github.com/echoflaresat/vec3/colors"
	"github.com/echoflaresat/vec3/earth"
	"github.com/echoflaresat/vec3/internal/logger"
	"github.com/echoflaresat/vec3/texture"
)

// Theme selects the texture set and tint colors for a rendering.
type Theme struct {
	DayRim   colors.Color4
	NightRim colors.Color4
	Warm     colors.Color4
	Day      string
	Night    string
	Clouds   string
}

// Smoothstep performs a Hermite interpolation between 0 and 1 across
// [edge0, edge1]. Returns 0 below edge0 and 1 above edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0.0
		}
		return 1.0
	}

	t := (x - edge0) / (edge1 - edge0)
	if t < 0.0 {
		t = 0.0
	} else if t > 1.0 {
		t = 1.0
	}
	return t * t * (3.0 - 2.0*t)
}

// Clip clamps x into the inclusive range [min, max].
func Clip(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// GaussianFade returns a Gaussian falloff centered at center with
// standard deviation width.
func GaussianFade(x, center, width float64) float64 {
	return math.Exp(-((x - center) * (x - center)) / (2.0 * width * width))
}

// BlendNightDayEnergyConserving blends day and night colors with a
// root-sum-square so the transition does not dim.
func BlendNightDayEnergyConserving(day, night colors.Color4, light float64) colors.Color4 {
	r := math.Sqrt((1-light)*night.R*night.R + light*day.R*day.R)
	g := math.Sqrt((1-light)*night.G*night.G + light*day.G*day.G)
	b := math.Sqrt((1-light)*night.B*night.B + light*day.B*day.B)
	return colors.Color4{R: r, G: g, B: b, A: 1.0}
}

// BlendClouds overlays the cloud texture onto the base surface color.
// Cloud alpha is inferred from brightness; light is the sunlight factor
// and boost increases cloud visibility.
func BlendClouds(c, cloud colors.Color4, light, boost float64) colors.Color4 {
	brightness := (cloud.R + cloud.G + cloud.B) / 3.0
	alpha := brightness * light * boost

	return colors.Color4{
		R: c.R + (1.0-c.R)*cloud.R*alpha,
		G: c.G + (1.0-c.G)*cloud.G*alpha,
		B: c.B + (1.0-c.B)*cloud.B*alpha,
		A: c.A,
	}
}

// RenderEarthSurface shades the surface at the context's hit point,
// blending day/night textures, clouds and the sun glint.
func RenderEarthSurface(ctx *RayContext) colors.Color4 {
	day := ctx.TexDay.Sample(&ctx.HitPoint)
	night := ctx.TexNight.Sample(&ctx.HitPoint)
	clouds := ctx.TexClouds.Sample(&ctx.HitPoint)

	// Soft transition around the terminator.
	light := Smoothstep(-0.1, 0.1, ctx.SunLightIntensity)

	c := BlendNightDayEnergyConserving(day, night, light)
	c = BlendClouds(c, clouds, light, 2.0)
	return ApplySpecularHighlight(ctx, c, day)
}

// ApplySpecularHighlight adds a Blinn-Phong sun glint. Water reflects and
// land barely does; blue dominance in the day texture is the proxy.
func ApplySpecularHighlight(ctx *RayContext, base, day colors.Color4) colors.Color4 {
	if ctx.SunLightIntensity <= 0 {
		return base
	}

	view := unit(ctx.RayDirection.Neg())
	light := ctx.SunDir.Normalized()
	halfVec := unit(view.Add(&light))

	specAngle := Clip(ctx.SurfaceNormal.Dot(&halfVec), 0.0, 1.0)
	specular := math.Pow(specAngle, 30)
	oceanFactor := Clip((day.B-0.5*(day.R+day.G))*10.0, 0.0, 1.0)
	fresnel := math.Pow(1.0-ctx.ViewDotNormal, 2.0)

	strength := specular * oceanFactor * (0.2 + 0.8*fresnel)

	sunColor := colors.New(1.0, 0.97, 0.9, 1.0)
	return base.Add(sunColor.Scale(strength))
}

// ApplyAtmosphereOverlay adds blue scatter along the view ray. The lit
// length of the ray inside the atmosphere shell, minus the part shadowed
// by the planet, scales the effect.
func ApplyAtmosphereOverlay(ctx *RayContext, base colors.Color4) colors.Color4 {
	const scaleHeight = 25.0 // km
	const maxHeight = 120.0  // atmosphere extent (km)
	const rayleighStrength = 0.008

	atmoRadius := earth.Radius + maxHeight

	hitAtmo, tEntryAtmo, tExitAtmo := intersectSphereSpan(&ctx.Origin, &ctx.RayDirection, atmoRadius)
	if !hitAtmo || tExitAtmo < 0 {
		return base
	}

	hitEarth, tEntryEarth, _ := intersectSphereSpan(&ctx.Origin, &ctx.RayDirection, earth.Radius)

	// Clip the span to the visible atmosphere.
	tMin := math.Max(0, tEntryAtmo)
	tMax := tExitAtmo
	if hitEarth && tEntryEarth > 0 && tEntryEarth < tMax {
		tMax = tEntryEarth
	}
	if tMax <= tMin {
		return base
	}

	hitShadow, tShadowEntry, tShadowExit := IntersectShadowCylinder(&ctx.Origin, &ctx.RayDirection, &ctx.SunDir, earth.Radius)

	litLen := tMax - tMin
	if hitShadow {
		shadowStart := math.Max(tMin, tShadowEntry)
		shadowEnd := math.Min(tMax, tShadowExit)
		if shadowEnd > shadowStart {
			litLen -= shadowEnd - shadowStart
		}
	}
	if litLen <= 0 {
		return base
	}

	// Density at the midpoint altitude stands in for the integral.
	tMid := (tMin + tMax) * 0.5
	mid := ctx.Origin.Add(ctx.RayDirection.Scale(tMid))
	avgHeight := mid.Norm() - earth.Radius
	avgDensity := math.Exp(-avgHeight / scaleHeight)

	// Rim hue follows the terminator: sunlit limb scatters day blue,
	// the night limb keeps a waning navy glow.
	rim := ctx.theme.NightRim.Mix(ctx.theme.DayRim, Smoothstep(-0.2, 0.3, ctx.RimLightFactor))

	amount := Clip(litLen*avgDensity*rayleighStrength, 0.0, 1.0)
	return base.Mix(rim, amount)
}

// IntersectShadowCylinder intersects the ray with the planet's shadow, an
// infinite cylinder of the given radius extending away from the sun.
func IntersectShadowCylinder(rayOrigin, rayDir, sunDir *vec3.Vec[float64], radius float64) (bool, float64, float64) {
	axis := unit(sunDir.Neg())

	// Project the ray onto the plane perpendicular to the axis.
	dDotV := rayDir.Dot(&axis)
	dPerp := rayDir.Sub(axis.Scale(dDotV)).Eval()

	coDotV := rayOrigin.Dot(&axis)
	coPerp := rayOrigin.Sub(axis.Scale(coDotV)).Eval()

	a := dPerp.SquaredNorm()
	b := 2 * dPerp.Dot(&coPerp)
	c := coPerp.SquaredNorm() - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return false, 0, 0
	}

	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	if t1 < 0 {
		return false, 0, 0
	}

	// The shadow only exists on the night side.
	entryPoint := rayOrigin.Add(rayDir.Scale(t0))
	if entryPoint.Dot(&axis) < 0 {
		return false, 0, 0
	}

	return true, math.Max(0, t0), t1
}

// GenerateSupersamplingOffsets returns n*n offsets in [-0.5, +0.5] with
// pixel-center spacing, as (dx, dy) pairs.
func GenerateSupersamplingOffsets(n int) [][2]float64 {
	if n <= 0 {
		return nil
	}
	step := 1.0 / float64(n)
	out := make([][2]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := (float64(i)+0.5)*step - 0.5
			dy := (float64(j)+0.5)*step - 0.5
			out = append(out, [2]float64{dx, dy})
		}
	}
	return out
}

// RenderScene loads the three textures, builds a ray context, and
// raytraces the frame. workers bounds the render parallelism; zero means
// one worker per CPU.
func RenderScene(
	camera Camera,
	sunDir vec3.Vec[float64],
	outSize int,
	supersampling int,
	workers int,
	theme Theme,
) (*image.NRGBA, error) {
	logger.Info("loading textures",
		zap.String("day", theme.Day),
		zap.String("night", theme.Night),
		zap.String("clouds", theme.Clouds))

	var texDay, texNight, texClouds texture.Texture
	var g errgroup.Group
	g.Go(func() error {
		var err error
		texDay, err = texture.Load(theme.Day)
		return err
	})
	g.Go(func() error {
		var err error
		texNight, err = texture.Load(theme.Night)
		return err
	})
	g.Go(func() error {
		var err error
		texClouds, err = texture.Load(theme.Clouds)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	altitudeKm := camera.Position.Norm() - earth.Radius
	ctx := NewRayContext(camera.Position, sunDir, altitudeKm, theme, texDay, texNight, texClouds)

	return RaytraceScenePixels(ctx, camera, outSize, supersampling, workers), nil
}

// RaytraceScenePixels renders rows in parallel. Workers shade with their
// own copy of the ray context and write to disjoint rows of the output.
func RaytraceScenePixels(ctx *RayContext, camera Camera, outSize, supersampling, workers int) *image.NRGBA {
	w, h := outSize, outSize
	offsets := GenerateSupersamplingOffsets(supersampling)
	n := float64(len(offsets))

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("raytracing scene",
		zap.Int("size", outSize),
		zap.Int("rays_per_pixel", len(offsets)),
		zap.Int("workers", workers))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	progressEvery := int64(h / 10)
	if progressEvery == 0 {
		progressEvery = 1
	}

	var rowsDone atomic.Int64
	var g errgroup.Group
	g.SetLimit(workers)

	for y := 0; y < h; y++ {
		g.Go(func() error {
			rctx := *ctx
			for x := 0; x < w; x++ {
				var accum colors.Color4
				for _, off := range offsets {
					rayDir := camera.ComputeRay(float64(x)+off[0], float64(y)+off[1], w, h)
					rctx.SetRayDirection(rayDir)

					c := colors.Black()
					if rctx.T > 0 {
						c = RenderEarthSurface(&rctx)
					}
					c = ApplyAtmosphereOverlay(&rctx, c)
					accum = accum.Add(c)
				}

				out := accum.Scale(1.0 / n).
					Mul(rctx.theme.Warm).
					BoostSaturation(1.5).
					CompositeOverBlack()
				img.SetNRGBA(x, y, out.ToNRGBA())
			}

			if done := rowsDone.Add(1); done%progressEvery == 0 {
				logger.Info("render progress", zap.Int("percent", int(done*100/int64(h))))
			}
			return nil
		})
	}
	_ = g.Wait() // row workers never return errors

	return img
}
