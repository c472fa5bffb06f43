// Package earth holds the spherical Earth model and solar geometry.
package earth

import (
	"time"

	"github.com/echoflaresat/vec3"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Radius is the Earth radius in km (spherical approximation).
const Radius = 6371.0

// SunDirectionECEF returns the unit vector from the Earth's center toward
// the Sun at time t, in Earth-centered Earth-fixed coordinates.
func SunDirectionECEF(t time.Time) vec3.Vec[float64] {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the Sun.
	ra, dec := solar.ApparentEquatorial(jd)

	// Unit vector in ECI (Earth-centered inertial).
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Rotate ECI to ECEF using GMST.
	gmst := sidereal.Apparent0UT(jd)
	cosGMST := gmst.Angle().Cos()
	sinGMST := gmst.Angle().Sin()

	return vec3.New(
		x*cosGMST+y*sinGMST,
		-x*sinGMST+y*cosGMST,
		z,
	)
}
