// Package panchang derives the five limbs of the Vedic calendar, plus the
// solar month, season and half-year, from the Sun and Moon longitudes at an
// instant.
package panchang

import (
	"math"

	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// Angular widths of the lunar-calendar divisions.
const (
	tithiSpan     = 12.0 // degrees of Moon-Sun elongation per tithi
	halfTithiSpan = 6.0  // degrees per karana slot

	tithisPerMonth    = 30
	tithisPerPaksha   = 15
	halfTithiCount    = 60
	lastMovableKarana = 56
)

// Paksha is the waxing or waning half of the lunar month.
type Paksha int

// The two pakshas.
const (
	Shukla Paksha = iota // waxing
	Krishna              // waning
)

func (p Paksha) String() string {
	if p == Shukla {
		return "Shukla"
	}
	return "Krishna"
}

// Ayana is the Sun's half-year course.
type Ayana int

// The two ayanas.
const (
	Uttarayana Ayana = iota
	Dakshinayana
)

func (a Ayana) String() string {
	if a == Uttarayana {
		return "Uttarayana"
	}
	return "Dakshinayana"
}

// Snapshot is the full Panchang state at one instant.
type Snapshot struct {
	TithiNumber int // [1, 30]
	TithiName   string
	Paksha      Paksha
	YogaIndex   int // [0, 26]
	YogaName    string
	KaranaName  string
	Vara        string
	Masa        string
	Ritu        string
	Ayana       Ayana
}

// Compute derives the Panchang from sidereal Sun and Moon longitudes and the
// UTC civil date of the same instant.
func Compute(sunLon, moonLon float64, utc astrotime.Moment) Snapshot {
	elongation := astrotime.Normalize360(moonLon - sunLon)

	tithi := int(math.Floor(elongation/tithiSpan)) + 1
	if tithi > tithisPerMonth {
		tithi = tithisPerMonth
	}

	paksha := Shukla
	if tithi > tithisPerPaksha {
		paksha = Krishna
	}

	yogaIndex := int(math.Floor(astrotime.Normalize360(moonLon+sunLon)/zodiac.NakshatraSpan)) % zodiac.NakshatraCount

	sunSign := int(math.Floor(sunLon / zodiac.SignSpan)) % zodiac.SignCount

	return Snapshot{
		TithiNumber: tithi,
		TithiName:   tithiName(tithi),
		Paksha:      paksha,
		YogaIndex:   yogaIndex,
		YogaName:    zodiac.YogaNames[yogaIndex],
		KaranaName:  karanaName(elongation),
		Vara:        zodiac.VaraNames[utc.Time().Weekday()],
		Masa:        zodiac.MasaNames[sunSign],
		Ritu:        zodiac.RituNames[sunSign/2],
		Ayana:       ayanaOf(sunSign),
	}
}

// tithiName resolves the 30 tithis onto the 15-name cycle, with Purnima
// closing the bright half and Amavasya the dark half.
func tithiName(tithi int) string {
	if tithi == tithisPerMonth {
		return "Amavasya"
	}
	if tithi == tithisPerPaksha {
		return "Purnima"
	}
	return zodiac.TithiNames[(tithi-1)%tithisPerPaksha]
}

// karanaName maps the half-tithi index onto the karana cycle: Kimstughna
// opens the month, the seven movable karanas repeat through slot 56, and
// Shakuni, Chatushpada and Naga close it.
func karanaName(elongation float64) string {
	slot := int(math.Floor(elongation/halfTithiSpan)) % halfTithiCount
	switch {
	case slot == 0:
		return zodiac.KaranaKimstughna
	case slot <= lastMovableKarana:
		return zodiac.MovableKaranas[(slot-1)%len(zodiac.MovableKaranas)]
	case slot == 57:
		return zodiac.KaranaShakuni
	case slot == 58:
		return zodiac.KaranaChatushpada
	default:
		return zodiac.KaranaNaga
	}
}

// ayanaOf returns the half-year for the Sun's sidereal sign: Capricorn
// through Gemini is the northern course.
func ayanaOf(sunSign int) Ayana {
	if sunSign >= 9 || sunSign <= 2 {
		return Uttarayana
	}
	return Dakshinayana
}
