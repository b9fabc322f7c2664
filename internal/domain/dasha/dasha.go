// Package dasha generates the Vimshottari Mahadasha timeline from the
// Moon's nakshatra at birth.
package dasha

import (
	"time"

	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// Vimshottari cycle constants.
const (
	// CycleYears is the length of one full Vimshottari cycle.
	CycleYears = 120.0

	// daysPerYear converts dasha years to calendar time.
	daysPerYear = 365.2425

	defaultHorizonYears = CycleYears

	hoursPerDay = 24
)

// lordSequence is the fixed Vimshottari order.
var lordSequence = [9]zodiac.Planet{
	zodiac.Ketu, zodiac.Venus, zodiac.Sun, zodiac.Moon, zodiac.Mars,
	zodiac.Rahu, zodiac.Jupiter, zodiac.Saturn, zodiac.Mercury,
}

// periodYears maps each lord to its full Mahadasha length. The nine sum to
// exactly 120.
var periodYears = map[zodiac.Planet]float64{
	zodiac.Ketu:    7,
	zodiac.Venus:   20,
	zodiac.Sun:     6,
	zodiac.Moon:    10,
	zodiac.Mars:    7,
	zodiac.Rahu:    18,
	zodiac.Jupiter: 16,
	zodiac.Saturn:  19,
	zodiac.Mercury: 17,
}

// PeriodYears returns the full Mahadasha length for a lord, or 0 for a body
// outside the sequence.
func PeriodYears(lord zodiac.Planet) float64 {
	return periodYears[lord]
}

// Period is one Mahadasha. The first period of a timeline is partial: only
// the remainder of the birth lord's cycle that was still to run at birth.
type Period struct {
	Lord    zodiac.Planet
	Start   time.Time
	End     time.Time
	Years   float64
	Partial bool
}

// Option applies a configuration option to the generator.
type Option func(*generator)

// WithHorizonYears bounds the timeline: generation stops once the elapsed
// span from birth reaches this many years.
func WithHorizonYears(years float64) Option {
	return func(g *generator) {
		if years > 0 {
			g.horizonYears = years
		}
	}
}

type generator struct {
	horizonYears float64
}

// Timeline generates the ordered, contiguous Mahadasha sequence starting at
// birth. The Moon's nakshatra selects the opening lord and its elapsed
// fraction sets the opening period's remainder; every later period runs its
// full length. By default generation covers one full 120-year cycle.
func Timeline(birth time.Time, moonNakshatra int, fractionElapsed float64, opts ...Option) []Period {
	g := &generator{horizonYears: defaultHorizonYears}
	for _, opt := range opts {
		opt(g)
	}

	startLord := zodiac.NakshatraLords[moonNakshatra]
	seqPos := 0
	for i, lord := range lordSequence {
		if lord == startLord {
			seqPos = i
			break
		}
	}

	var periods []Period
	cursor := birth
	elapsed := 0.0

	// Opening partial period: the share of the birth lord's dasha not yet
	// consumed by the Moon's progress through its nakshatra.
	remaining := (1 - fractionElapsed) * periodYears[startLord]
	cursor, elapsed = appendPeriod(&periods, cursor, startLord, remaining, true, elapsed)

	for elapsed < g.horizonYears {
		seqPos = (seqPos + 1) % len(lordSequence)
		lord := lordSequence[seqPos]
		cursor, elapsed = appendPeriod(&periods, cursor, lord, periodYears[lord], false, elapsed)
	}

	return periods
}

func appendPeriod(periods *[]Period, start time.Time, lord zodiac.Planet, years float64, partial bool, elapsed float64) (time.Time, float64) {
	end := addYears(start, years)
	*periods = append(*periods, Period{
		Lord:    lord,
		Start:   start,
		End:     end,
		Years:   years,
		Partial: partial,
	})
	return end, elapsed + years
}

// addYears advances a time by fractional dasha years.
func addYears(t time.Time, years float64) time.Time {
	return t.Add(time.Duration(years * daysPerYear * hoursPerDay * float64(time.Hour)))
}

// Current returns the period covering the reference time, if any.
func Current(timeline []Period, at time.Time) (Period, bool) {
	for _, p := range timeline {
		if !at.Before(p.Start) && at.Before(p.End) {
			return p, true
		}
	}
	return Period{}, false
}
