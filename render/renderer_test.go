package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/echoflaresat/vec3"
	"github.com/echoflaresat/vec3/colors"
	"github.com/echoflaresat/vec3/earth"
	"github.com/echoflaresat/vec3/texture"
)

func uniformTex(c colors.Color4) texture.Texture {
	return texture.FromImage(image.NewUniform(c))
}

func testTheme() Theme {
	return Theme{
		DayRim:   colors.New(0.3, 0.5, 1.0, 1.0),
		NightRim: colors.New(0.05, 0.07, 0.2, 0.5),
		Warm:     colors.White(),
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -0.5); got != 0 {
		t.Errorf("below edge0: got %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 1.5); got != 1 {
		t.Errorf("above edge1: got %v, want 1", got)
	}
	closeTo(t, Smoothstep(0, 1, 0.5), 0.5, tol)
	closeTo(t, Smoothstep(-0.1, 0.1, 0.0), 0.5, tol)

	// Equal edges degrade to a step function.
	if got := Smoothstep(0.5, 0.5, 0.4); got != 0 {
		t.Errorf("step below: got %v, want 0", got)
	}
	if got := Smoothstep(0.5, 0.5, 0.6); got != 1 {
		t.Errorf("step above: got %v, want 1", got)
	}
}

func TestClip(t *testing.T) {
	if got := Clip(-1, 0, 1); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := Clip(2, 0, 1); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := Clip(0.25, 0, 1); got != 0.25 {
		t.Errorf("got %v, want 0.25", got)
	}
}

func TestGaussianFade(t *testing.T) {
	closeTo(t, GaussianFade(5, 5, 2), 1.0, tol)
	closeTo(t, GaussianFade(7, 5, 2), math.Exp(-0.5), tol)
	closeTo(t, GaussianFade(3, 5, 2), math.Exp(-0.5), tol)
}

func TestBlendNightDayEnergyConserving(t *testing.T) {
	day := colors.New(1.0, 0.0, 0.0, 1.0)
	night := colors.New(0.0, 1.0, 0.0, 1.0)

	full := BlendNightDayEnergyConserving(day, night, 1.0)
	closeTo(t, full.R, 1.0, tol)
	closeTo(t, full.G, 0.0, tol)

	dark := BlendNightDayEnergyConserving(day, night, 0.0)
	closeTo(t, dark.R, 0.0, tol)
	closeTo(t, dark.G, 1.0, tol)

	// Halfway through the terminator the total energy is preserved.
	half := BlendNightDayEnergyConserving(day, night, 0.5)
	closeTo(t, half.R*half.R+half.G*half.G, 1.0, tol)
	if half.A != 1.0 {
		t.Errorf("alpha = %v, want 1", half.A)
	}
}

func TestBlendClouds(t *testing.T) {
	base := colors.New(0.5, 0.5, 0.5, 1.0)

	clear := colors.New(0.0, 0.0, 0.0, 1.0)
	if got := BlendClouds(base, clear, 1.0, 2.0); got != base {
		t.Errorf("clear sky changed the surface: got %+v", got)
	}

	overcast := colors.White()
	got := BlendClouds(base, overcast, 1.0, 1.0)
	closeTo(t, got.R, 1.0, tol)
	closeTo(t, got.G, 1.0, tol)
	closeTo(t, got.B, 1.0, tol)

	// At night the clouds are invisible.
	if got := BlendClouds(base, overcast, 0.0, 2.0); got != base {
		t.Errorf("night clouds changed the surface: got %+v", got)
	}
}

func TestRenderEarthSurface(t *testing.T) {
	ctx := NewRayContext(
		vec3.New(2*earth.Radius, 0.0, 0.0),
		vec3.New(1.0, 0.0, 0.0),
		earth.Radius,
		testTheme(),
		uniformTex(colors.New(0.0, 0.0, 1.0, 1.0)),
		uniformTex(colors.Black()),
		uniformTex(colors.Black()),
	)
	ctx.SetRayDirection(vec3.New(-1.0, 0.0, 0.0))

	got := RenderEarthSurface(ctx)

	// Head-on sunlight over pure ocean: the blue surface plus a
	// 0.2-strength glint of the sun color.
	closeTo(t, got.R, 0.2, tol)
	closeTo(t, got.G, 0.2*0.97, tol)
	closeTo(t, got.B, 1.0+0.2*0.9, tol)
}

func TestRenderEarthSurfaceNightSide(t *testing.T) {
	ctx := NewRayContext(
		vec3.New(2*earth.Radius, 0.0, 0.0),
		vec3.New(-1.0, 0.0, 0.0), // sun behind the planet
		earth.Radius,
		testTheme(),
		uniformTex(colors.New(0.0, 0.0, 1.0, 1.0)),
		uniformTex(colors.New(0.1, 0.1, 0.0, 1.0)),
		uniformTex(colors.Black()),
	)
	ctx.SetRayDirection(vec3.New(-1.0, 0.0, 0.0))

	got := RenderEarthSurface(ctx)

	// Deep night shows the night lights texture and no glint.
	closeTo(t, got.R, 0.1, tol)
	closeTo(t, got.G, 0.1, tol)
	closeTo(t, got.B, 0.0, tol)
}

func TestApplyAtmosphereOverlay(t *testing.T) {
	theme := testTheme()
	base := colors.Black()

	limbCtx := func(x float64) *RayContext {
		ctx := NewRayContext(
			vec3.New(x, 2*earth.Radius, 0.0),
			vec3.New(1.0, 0.0, 0.0),
			earth.Radius,
			theme,
			texture.Texture{}, texture.Texture{}, texture.Texture{},
		)
		ctx.SetRayDirection(vec3.New(0.0, -1.0, 0.0))
		return ctx
	}

	// A limb ray 60 km over the sunlit horizon picks up enough scatter
	// to saturate at the rim color.
	lit := ApplyAtmosphereOverlay(limbCtx(earth.Radius+60), base)
	closeTo(t, lit.R, theme.DayRim.R, tol)
	closeTo(t, lit.G, theme.DayRim.G, tol)
	closeTo(t, lit.B, theme.DayRim.B, tol)

	// The mirrored ray runs through the planet's shadow and stays dark.
	shadowed := ApplyAtmosphereOverlay(limbCtx(-(earth.Radius+60)), base)
	if shadowed != base {
		t.Errorf("shadowed limb ray changed color: got %+v", shadowed)
	}

	// A ray pointing away from the planet is untouched.
	away := NewRayContext(
		vec3.New(2*earth.Radius, 0.0, 0.0),
		vec3.New(1.0, 0.0, 0.0),
		earth.Radius,
		theme,
		texture.Texture{}, texture.Texture{}, texture.Texture{},
	)
	away.SetRayDirection(vec3.New(1.0, 0.0, 0.0))
	if got := ApplyAtmosphereOverlay(away, base); got != base {
		t.Errorf("outbound ray changed color: got %+v", got)
	}
}

func TestApplyAtmosphereOverlayTerminatorRim(t *testing.T) {
	theme := testTheme()
	base := colors.Black()

	// A limb ray over the pole sits on the terminator, so the rim hue
	// lands between the night and day colors.
	ctx := NewRayContext(
		vec3.New(0.0, 2*earth.Radius, earth.Radius+60),
		vec3.New(1.0, 0.0, 0.0),
		earth.Radius,
		theme,
		texture.Texture{}, texture.Texture{}, texture.Texture{},
	)
	ctx.SetRayDirection(vec3.New(0.0, -1.0, 0.0))

	closeTo(t, ctx.RimLightFactor, 0.0, tol)

	got := ApplyAtmosphereOverlay(ctx, base)
	want := theme.NightRim.Mix(theme.DayRim, Smoothstep(-0.2, 0.3, 0.0))
	closeTo(t, got.R, want.R, tol)
	closeTo(t, got.G, want.G, tol)
	closeTo(t, got.B, want.B, tol)
}

func TestGenerateSupersamplingOffsets(t *testing.T) {
	if got := GenerateSupersamplingOffsets(0); len(got) != 0 {
		t.Fatalf("n=0: got %d offsets, want 0", len(got))
	}

	one := GenerateSupersamplingOffsets(1)
	if len(one) != 1 {
		t.Fatalf("n=1: got %d offsets, want 1", len(one))
	}
	closeTo(t, one[0][0], 0.0, tol)
	closeTo(t, one[0][1], 0.0, tol)

	grid := GenerateSupersamplingOffsets(2)
	if len(grid) != 4 {
		t.Fatalf("n=2: got %d offsets, want 4", len(grid))
	}
	var sumX, sumY float64
	for _, off := range grid {
		if math.Abs(off[0]) > 0.5 || math.Abs(off[1]) > 0.5 {
			t.Errorf("offset %v outside [-0.5, 0.5]", off)
		}
		sumX += off[0]
		sumY += off[1]
	}
	closeTo(t, sumX, 0.0, tol)
	closeTo(t, sumY, 0.0, tol)
}

func TestRaytraceScenePixels(t *testing.T) {
	cam := NewCamera(0, 0, 30000, 60, 0, 0)
	ctx := NewRayContext(
		cam.Position,
		vec3.New(1.0, 0.0, 0.0),
		30000,
		testTheme(),
		uniformTex(colors.New(0.0, 0.0, 1.0, 1.0)),
		uniformTex(colors.Black()),
		uniformTex(colors.Black()),
	)

	img := RaytraceScenePixels(ctx, cam, 32, 1, 4)

	if got := img.Bounds(); got.Dx() != 32 || got.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", got)
	}

	// The planet fills the frame center and is strongly blue.
	center := img.NRGBAAt(16, 16)
	if center.B < 200 {
		t.Errorf("center pixel B = %d, want >= 200", center.B)
	}
	if center.R > 50 {
		t.Errorf("center pixel R = %d, want near zero", center.R)
	}
	if center.A != 255 {
		t.Errorf("center pixel A = %d, want 255", center.A)
	}

	// From 30000 km the corners see empty space.
	corner := img.NRGBAAt(0, 0)
	if corner.R > 20 || corner.G > 20 || corner.B > 20 {
		t.Errorf("corner pixel = %+v, want black", corner)
	}
}

func writeTestPNG(t *testing.T, path string, c color.Color) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestRenderScene(t *testing.T) {
	dir := t.TempDir()
	theme := testTheme()
	theme.Day = filepath.Join(dir, "day.png")
	theme.Night = filepath.Join(dir, "night.png")
	theme.Clouds = filepath.Join(dir, "clouds.png")
	writeTestPNG(t, theme.Day, color.NRGBA{B: 255, A: 255})
	writeTestPNG(t, theme.Night, color.NRGBA{A: 255})
	writeTestPNG(t, theme.Clouds, color.NRGBA{A: 255})

	cam := NewCamera(0, 0, 30000, 60, 0, 0)
	img, err := RenderScene(cam, vec3.New(1.0, 0.0, 0.0), 16, 1, 2, theme)
	if err != nil {
		t.Fatalf("RenderScene: %v", err)
	}

	center := img.NRGBAAt(8, 8)
	if center.B < 150 {
		t.Errorf("center pixel B = %d, want a blue planet", center.B)
	}
}

func TestRenderSceneMissingTexture(t *testing.T) {
	theme := testTheme()
	theme.Day = filepath.Join(t.TempDir(), "missing-day.tif")
	theme.Night = theme.Day
	theme.Clouds = theme.Day

	cam := NewCamera(0, 0, 880, 60, 0, 0)
	_, err := RenderScene(cam, vec3.New(1.0, 0.0, 0.0), 8, 1, 1, theme)
	if err == nil {
		t.Fatal("expected an error for missing texture files")
	}
	if !strings.Contains(err.Error(), "missing-day.tif") {
		t.Errorf("error %q does not name the missing file", err)
	}
}
