package render

import (
	"math"

	"github.com/echoflaresat/vec3"
	"github.com/echoflaresat/vec3/earth"
)

// Camera models a pinhole camera in ECEF coordinates.
type Camera struct {
	FOVDeg     float64
	TanHalfFOV float64
	Position   vec3.Vec[float64]
	Forward    vec3.Vec[float64]
	Right      vec3.Vec[float64]
	Up         vec3.Vec[float64]
}

// unit evaluates e and scales the result to unit length.
func unit(e vec3.Expr[float64]) vec3.Vec[float64] {
	v := e.Eval()
	return v.Normalized()
}

// NewCamera constructs a camera from geodetic lat/lon (deg), altitude
// (km), field of view (deg), and tilt/yaw adjustments (deg) applied after
// the camera is aimed at the Earth center.
func NewCamera(latDeg, lonDeg, altKm, fovDeg, tiltDeg, yawDeg float64) Camera {
	lat := latDeg * math.Pi / 180.0
	lon := lonDeg * math.Pi / 180.0

	camRadius := earth.Radius + altKm
	pos := vec3.New(
		camRadius*math.Cos(lat)*math.Cos(lon),
		camRadius*math.Cos(lat)*math.Sin(lon),
		camRadius*math.Sin(lat),
	)

	fovRad := fovDeg * math.Pi / 180.0
	tanHalf := math.Tan(fovRad / 2.0)

	// Basis: look toward the Earth center, derive right/up from global Z.
	fwd := unit(pos.Neg())
	globalUp := vec3.New(0.0, 0.0, 1.0)
	right := fwd.Cross(&globalUp).Eval()
	if right.Norm() < 1e-6 {
		// Near the poles forward is parallel to Z.
		right = vec3.New(1.0, 0.0, 0.0)
	}
	right = right.Normalized()
	up := unit(right.Cross(&fwd))

	fwd, right, up = tiltCamera(fwd, right, up, 90)
	if yawDeg != 0 {
		fwd, right, up = yawCamera(fwd, right, up, yawDeg)
	}
	fwd, right, up = tiltCamera(fwd, right, up, -90)
	if tiltDeg != 0 {
		fwd, right, up = tiltCamera(fwd, right, up, tiltDeg)
	}

	return Camera{
		FOVDeg:     fovDeg,
		TanHalfFOV: tanHalf,
		Position:   pos,
		Forward:    fwd,
		Right:      right,
		Up:         up,
	}
}

// rotate applies Rodrigues' rotation of v around axis by the angle whose
// cosine and sine are given. The formula composes into a single deferred
// expression, so only the final vector is materialised.
func rotate(v, axis *vec3.Vec[float64], cosT, sinT float64) vec3.Vec[float64] {
	return v.Scale(cosT).
		Add(axis.Cross(v).Scale(sinT)).
		Add(axis.Scale(axis.Dot(v) * (1.0 - cosT))).
		Eval()
}

// tiltCamera rotates forward/up around the Right axis by tiltDeg.
func tiltCamera(fwd, right, up vec3.Vec[float64], tiltDeg float64) (vec3.Vec[float64], vec3.Vec[float64], vec3.Vec[float64]) {
	theta := tiltDeg * math.Pi / 180.0
	c, s := math.Cos(theta), math.Sin(theta)

	fwdNew := rotate(&fwd, &right, c, s)
	upNew := rotate(&up, &right, c, s)
	return fwdNew.Normalized(), right, upNew.Normalized()
}

// yawCamera rotates forward/right around the Up axis by yawDeg, a
// left-right camera pan.
func yawCamera(fwd, right, up vec3.Vec[float64], yawDeg float64) (vec3.Vec[float64], vec3.Vec[float64], vec3.Vec[float64]) {
	theta := yawDeg * math.Pi / 180.0
	c, s := math.Cos(theta), math.Sin(theta)

	fwdNew := rotate(&fwd, &up, c, s)
	rightNew := rotate(&right, &up, c, s)
	return fwdNew.Normalized(), rightNew.Normalized(), up
}

// ComputeRay returns the unit viewing direction for pixel (i,j) given the
// image dimensions. i and j may be fractional for supersampling.
func (c Camera) ComputeRay(i, j float64, width, height int) vec3.Vec[float64] {
	w := float64(width)
	h := float64(height)

	// NDC in [-1, +1] centered on the pixel grid; flip Y so +up is up.
	xNDC := (i - (w-1)/2.0) / ((w - 1) / 2.0)
	yNDC := -((j - (h-1)/2.0) / ((h - 1) / 2.0))

	xPlane := xNDC * c.TanHalfFOV
	yPlane := yNDC * c.TanHalfFOV

	return unit(c.Right.Scale(xPlane).
		Add(c.Up.Scale(yPlane)).
		Add(&c.Forward))
}
