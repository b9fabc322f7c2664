// Package ephemeris computes geocentric tropical longitudes for the nine
// grahas from an embedded periodic-series dataset. The provider is a pure
// function of the Julian Day once constructed; construction itself is the
// only operation that can fail for data reasons.
package ephemeris

import (
	"fmt"
	"math"

	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// Numerical constants for the position computation.
const (
	degToRad = math.Pi / 180

	// speedStep is the half-width in days of the central difference used to
	// derive angular speed.
	speedStep = 0.5

	// keplerTolerance bounds the Newton iteration on the eccentric anomaly.
	keplerTolerance = 1e-12
	keplerMaxIter   = 20

	daysPerCentury = 36525.0
)

// Option applies a configuration option to the Provider.
type Option func(*Provider)

// WithDataset overrides the embedded ephemeris data. Used by tests and by
// deployments that ship a richer series.
func WithDataset(raw []byte) Option {
	return func(p *Provider) {
		p.raw = raw
	}
}

// Position is one body's computed state at a Julian Day.
type Position struct {
	Body              zodiac.Planet
	TropicalLongitude float64 // degrees, [0, 360)
	Speed             float64 // degrees per day; negative when retrograde
}

// Retrograde reports whether the body appears to move backwards.
func (p Position) Retrograde() bool {
	return p.Speed < 0
}

// Provider evaluates the dataset. Safe for unbounded concurrent use: all
// state is read-only after New.
type Provider struct {
	raw []byte
	ds  *dataset
}

// New parses and validates the ephemeris dataset. It fails with
// ErrUnavailable when the data is absent or unusable; callers must treat
// that as fatal for the service.
func New(opts ...Option) (*Provider, error) {
	p := &Provider{raw: embeddedDataset}
	for _, opt := range opts {
		opt(p)
	}
	ds, err := parseDataset(p.raw)
	if err != nil {
		return nil, err
	}
	p.ds = ds
	return p, nil
}

// Bodies returns the tracked bodies in traditional order.
func Bodies() []zodiac.Planet {
	return []zodiac.Planet{
		zodiac.Sun, zodiac.Moon, zodiac.Mercury, zodiac.Venus, zodiac.Mars,
		zodiac.Jupiter, zodiac.Saturn, zodiac.Rahu, zodiac.Ketu,
	}
}

// Position computes one body's tropical longitude and speed at jd.
func (p *Provider) Position(jd float64, body zodiac.Planet) (Position, error) {
	if !p.ds.inRange(jd) {
		return Position{}, fmt.Errorf("%w: jd %.2f outside [%d, %d]",
			ErrOutOfRange, jd, p.ds.ValidFromYear, p.ds.ValidToYear)
	}
	before, err := p.longitude(jd-speedStep, body)
	if err != nil {
		return Position{}, err
	}
	after, err := p.longitude(jd+speedStep, body)
	if err != nil {
		return Position{}, err
	}
	lon, err := p.longitude(jd, body)
	if err != nil {
		return Position{}, err
	}
	return Position{
		Body:              body,
		TropicalLongitude: lon,
		Speed:             angularDelta(before, after) / (2 * speedStep),
	}, nil
}

// Positions computes all nine bodies at jd.
func (p *Provider) Positions(jd float64) ([]Position, error) {
	bodies := Bodies()
	out := make([]Position, 0, len(bodies))
	for _, b := range bodies {
		pos, err := p.Position(jd, b)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

// longitude dispatches to the per-body model.
func (p *Provider) longitude(jd float64, body zodiac.Planet) (float64, error) {
	switch body {
	case zodiac.Sun:
		return p.sunLongitude(jd), nil
	case zodiac.Moon:
		return p.moonLongitude(jd), nil
	case zodiac.Mercury, zodiac.Venus, zodiac.Mars, zodiac.Jupiter, zodiac.Saturn:
		return p.planetLongitude(jd, body.String()), nil
	case zodiac.Rahu:
		return meanLunarNode(jd), nil
	case zodiac.Ketu:
		return astrotime.Normalize360(meanLunarNode(jd) + 180), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownBody, body)
	}
}

// sunLongitude is the geocentric solar longitude: Earth's heliocentric
// longitude plus half a turn.
func (p *Provider) sunLongitude(jd float64) float64 {
	x, y := p.heliocentric(jd, "Earth")
	return astrotime.Normalize360(math.Atan2(y, x)/degToRad + 180)
}

// planetLongitude converts a planet's heliocentric position to geocentric
// ecliptic longitude using Earth's position at the same instant.
func (p *Provider) planetLongitude(jd float64, name string) float64 {
	px, py := p.heliocentric(jd, name)
	ex, ey := p.heliocentric(jd, "Earth")
	return astrotime.Normalize360(math.Atan2(py-ey, px-ex) / degToRad)
}

// heliocentric solves the Kepler problem for one body and returns its
// ecliptic-plane coordinates in AU.
func (p *Provider) heliocentric(jd float64, name string) (x, y float64) {
	rec := p.ds.byName[name]
	t := (jd - p.ds.EpochJD) / daysPerCentury

	a := rec.Elements.A + rec.Rates.A*t
	e := rec.Elements.E + rec.Rates.E*t
	inc := (rec.Elements.I + rec.Rates.I*t) * degToRad
	meanLon := rec.Elements.L + rec.Rates.L*t
	periLon := rec.Elements.Lp + rec.Rates.Lp*t
	node := (rec.Elements.Node + rec.Rates.Node*t) * degToRad

	meanAnomaly := astrotime.Normalize360(meanLon-periLon) * degToRad
	argPeri := (periLon * degToRad) - node

	ecc := solveKepler(meanAnomaly, e)

	// Position in the orbital plane, perihelion along +x.
	xo := a * (math.Cos(ecc) - e)
	yo := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cosW, sinW := math.Cos(argPeri), math.Sin(argPeri)
	cosO, sinO := math.Cos(node), math.Sin(node)
	cosI := math.Cos(inc)

	x = (cosW*cosO-sinW*sinO*cosI)*xo + (-sinW*cosO-cosW*sinO*cosI)*yo
	y = (cosW*sinO+sinW*cosO*cosI)*xo + (-sinW*sinO+cosW*cosO*cosI)*yo
	return x, y
}

// solveKepler finds the eccentric anomaly for a mean anomaly (radians) by
// Newton iteration.
func solveKepler(m, e float64) float64 {
	ecc := m
	if e > 0.8 {
		ecc = math.Pi
	}
	for i := 0; i < keplerMaxIter; i++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return ecc
}

// moonLongitude evaluates the truncated lunar longitude series over the
// fundamental arguments.
func (p *Provider) moonLongitude(jd float64) float64 {
	t := (jd - astrotime.J2000) / daysPerCentury

	// Mean longitude and the four fundamental arguments, in degrees.
	lp := poly(t, 218.3164477, 481267.88123421, -0.0015786, 1/538841.0, -1/65194000.0)
	d := poly(t, 297.8501921, 445267.1114034, -0.0018819, 1/545868.0, -1/113065000.0)
	m := poly(t, 357.5291092, 35999.0502909, -0.0001536, 1/24490000.0, 0)
	mp := poly(t, 134.9633964, 477198.8675055, 0.0087414, 1/69699.0, -1/14712000.0)
	f := poly(t, 93.2720950, 483202.0175233, -0.0036539, -1/3526000.0, 1/863310000.0)

	// Eccentricity damping for terms involving the solar anomaly.
	ecc := 1 - 0.002516*t - 0.0000074*t*t

	var sum float64
	for _, term := range p.ds.Moon.Terms {
		arg := (float64(term.D)*d + float64(term.M)*m + float64(term.Mp)*mp + float64(term.F)*f) * degToRad
		coeff := float64(term.Sin)
		switch term.M {
		case 1, -1:
			coeff *= ecc
		case 2, -2:
			coeff *= ecc * ecc
		}
		sum += coeff * math.Sin(arg)
	}

	return astrotime.Normalize360(lp + sum/1e6)
}

// meanLunarNode is the mean longitude of the Moon's ascending node. It
// regresses, so Rahu and Ketu always read as retrograde.
func meanLunarNode(jd float64) float64 {
	t := (jd - astrotime.J2000) / daysPerCentury
	return astrotime.Normalize360(poly(t, 125.0445479, -1934.1362891, 0.0020754, 1/467441.0, -1/60616000.0))
}

// poly evaluates c0 + c1 t + c2 t^2 + c3 t^3 + c4 t^4.
func poly(t, c0, c1, c2, c3, c4 float64) float64 {
	return c0 + t*(c1+t*(c2+t*(c3+t*c4)))
}

// angularDelta returns the signed smallest difference b-a in degrees,
// in (-180, 180].
func angularDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d <= -180 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}
