package ephemeris

import (
	"github.com/vedanga/jyoti/internal/domain/astrotime"
)

// Lahiri ayanamsa model constants, anchored at the 1900-01-01 epoch.
const (
	lahiriEpochJD     = 2415020.5
	lahiriBaseDegrees = 22.46
	precessionArcsec  = 50.27 // per year
	arcsecPerDegree   = 3600.0
	daysPerYear       = 365.25
)

// Ayanamsa returns the Lahiri tropical-to-sidereal offset in degrees at the
// given Julian Day.
func Ayanamsa(jd float64) float64 {
	years := (jd - lahiriEpochJD) / daysPerYear
	return lahiriBaseDegrees + (precessionArcsec/arcsecPerDegree)*years
}

// ToSidereal converts a tropical longitude to sidereal at the given instant.
func ToSidereal(tropical, jd float64) float64 {
	return astrotime.Normalize360(tropical - Ayanamsa(jd))
}
