package chart

import (
	"math"

	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/ephemeris"
)

// Constants for the ascendant computation.
const (
	degToRad = math.Pi / 180

	// meanObliquity of the ecliptic in degrees.
	meanObliquity = 23.439291

	daysPerCentury = 36525.0
)

// gmstDegrees computes Greenwich Mean Sidereal Time as a hour angle in
// degrees from the Julian Day.
func gmstDegrees(jd float64) float64 {
	d := jd - astrotime.J2000
	t := d / daysPerCentury
	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000
	return astrotime.Normalize360(gmst)
}

// SiderealAscendant returns the sidereal longitude of the ascendant for a
// Julian Day and geographic coordinates.
//
// The formula diverges near the poles (tan of the latitude); callers outside
// roughly +/-66 degrees latitude get numerically unstable results.
func SiderealAscendant(jd, latitude, longitude float64) float64 {
	lst := astrotime.Normalize360(gmstDegrees(jd)+longitude) * degToRad
	lat := latitude * degToRad
	obl := meanObliquity * degToRad

	tropical := math.Atan2(
		math.Sin(lst)*math.Cos(obl)-math.Tan(lat)*math.Sin(obl),
		math.Cos(lst),
	) / degToRad

	return ephemeris.ToSidereal(astrotime.Normalize360(tropical), jd)
}
