// Package chart assembles sidereal natal charts: ascendant, whole-sign
// placements, nakshatras and the divisional charts derived from them.
package chart

import (
	"fmt"

	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/ephemeris"
	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// PositionSource supplies tropical positions for all tracked bodies.
// *ephemeris.Provider satisfies it.
type PositionSource interface {
	Positions(jd float64) ([]ephemeris.Position, error)
}

// Ascendant is the rising degree. Its house is 1 by definition.
type Ascendant struct {
	SiderealLongitude float64
	SignIndex         int
}

// Sign returns the ascendant's sign name.
func (a Ascendant) Sign() string { return zodiac.SignNames[a.SignIndex] }

// Placement is one body's full chart position.
type Placement struct {
	Body              zodiac.Planet
	TropicalLongitude float64
	SiderealLongitude float64
	Speed             float64
	Retrograde        bool
	SignIndex         int
	House             int
	Nakshatra         Nakshatra
	NavamsaSign       int
	DashamsaSign      int
}

// Sign returns the placement's sign name.
func (p Placement) Sign() string { return zodiac.SignNames[p.SignIndex] }

// DegreeInSign returns the degrees into the sign, [0, 30).
func (p Placement) DegreeInSign() float64 { return DegreeInSign(p.SiderealLongitude) }

// Chart is a complete natal chart. Value object: computed once, never
// mutated.
type Chart struct {
	Moment     astrotime.Moment // UTC
	JulianDay  float64
	Latitude   float64
	Longitude  float64
	Ascendant  Ascendant
	Placements []Placement
}

// Placement returns the entry for a body.
func (c *Chart) Placement(body zodiac.Planet) (Placement, bool) {
	for _, pl := range c.Placements {
		if pl.Body == body {
			return pl, true
		}
	}
	return Placement{}, false
}

// Build computes the natal chart for a birth moment using positions from
// src. It fails on invalid calendar input or positions outside the
// ephemeris range; it never returns a partial chart.
func Build(src PositionSource, birth astrotime.BirthMoment) (*Chart, error) {
	utc, err := astrotime.ToUTC(birth)
	if err != nil {
		return nil, err
	}
	jd := astrotime.JulianDay(utc)

	positions, err := src.Positions(jd)
	if err != nil {
		return nil, fmt.Errorf("chart positions: %w", err)
	}

	ascLon := SiderealAscendant(jd, birth.Latitude, birth.Longitude)
	asc := Ascendant{
		SiderealLongitude: ascLon,
		SignIndex:         SignIndex(ascLon),
	}

	placements := make([]Placement, 0, len(positions))
	for _, pos := range positions {
		sidereal := ephemeris.ToSidereal(pos.TropicalLongitude, jd)
		sign := SignIndex(sidereal)
		placements = append(placements, Placement{
			Body:              pos.Body,
			TropicalLongitude: pos.TropicalLongitude,
			SiderealLongitude: sidereal,
			Speed:             pos.Speed,
			Retrograde:        pos.Retrograde(),
			SignIndex:         sign,
			House:             House(sign, asc.SignIndex),
			Nakshatra:         NakshatraOf(sidereal),
			NavamsaSign:       NavamsaSign(sidereal),
			DashamsaSign:      DashamsaSign(sidereal),
		})
	}

	return &Chart{
		Moment:     utc,
		JulianDay:  jd,
		Latitude:   birth.Latitude,
		Longitude:  birth.Longitude,
		Ascendant:  asc,
		Placements: placements,
	}, nil
}
