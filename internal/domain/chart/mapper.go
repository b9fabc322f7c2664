package chart

import (
	"math"

	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// SignIndex returns the zodiac sign index [0, 11] for a longitude.
func SignIndex(longitude float64) int {
	return int(math.Floor(longitude/zodiac.SignSpan)) % zodiac.SignCount
}

// House returns the whole-sign house [1, 12] of a sign relative to the
// ascendant's sign.
func House(signIndex, ascSignIndex int) int {
	return ((signIndex-ascSignIndex+zodiac.SignCount)%zodiac.SignCount + 1)
}

// DegreeInSign returns how far into its sign a longitude lies, [0, 30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(longitude, zodiac.SignSpan)
}

// Nakshatra locates a longitude within the 27 lunar mansions.
type Nakshatra struct {
	Index           int     // [0, 26]
	Pada            int     // [1, 4]
	FractionElapsed float64 // [0, 1) progress through the mansion
}

// Name returns the mansion's name.
func (n Nakshatra) Name() string { return zodiac.NakshatraNames[n.Index] }

// Lord returns the mansion's Vimshottari lord.
func (n Nakshatra) Lord() zodiac.Planet { return zodiac.NakshatraLords[n.Index] }

// NakshatraOf maps a longitude to its nakshatra, pada and elapsed fraction.
func NakshatraOf(longitude float64) Nakshatra {
	idx := int(math.Floor(longitude/zodiac.NakshatraSpan)) % zodiac.NakshatraCount
	within := math.Mod(longitude, zodiac.NakshatraSpan)
	padaSpan := zodiac.NakshatraSpan / zodiac.PadasPerNak
	return Nakshatra{
		Index:           idx,
		Pada:            int(math.Floor(within/padaSpan)) + 1,
		FractionElapsed: within / zodiac.NakshatraSpan,
	}
}
