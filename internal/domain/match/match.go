// Package match scores two charts for marriage compatibility using the
// eight-fold Ashtakoot method, with Mangal Dosha assessed per chart.
package match

import (
	"fmt"

	"github.com/vedanga/jyoti/internal/domain/chart"
	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// Maximum score of each koota and of the whole rubric.
const (
	varnaMax   = 1.0
	vashyaMax  = 2.0
	taraMax    = 3.0
	yoniMax    = 4.0
	maitriMax  = 5.0
	ganaMax    = 6.0
	bhakootMax = 7.0
	nadiMax    = 8.0

	// TotalMax is the full Ashtakoot score.
	TotalMax = 36.0
)

// Tier score thresholds.
const (
	excellentThreshold = 28.0
	veryGoodThreshold  = 24.0
	goodThreshold      = 18.0
)

// Person is the slice of one chart the rubric reads: the Moon's sign and
// nakshatra plus Mars' whole-sign house relative to that chart's own
// ascendant.
type Person struct {
	MoonSign      int
	MoonNakshatra int
	MarsHouse     int
}

// FromChart extracts a Person from a computed natal chart.
func FromChart(c *chart.Chart) (Person, error) {
	moon, ok := c.Placement(zodiac.Moon)
	if !ok {
		return Person{}, fmt.Errorf("chart has no Moon placement")
	}
	mars, ok := c.Placement(zodiac.Mars)
	if !ok {
		return Person{}, fmt.Errorf("chart has no Mars placement")
	}
	return Person{
		MoonSign:      moon.SignIndex,
		MoonNakshatra: moon.Nakshatra.Index,
		MarsHouse:     mars.House,
	}, nil
}

// Koota is one named factor's score.
type Koota struct {
	Name  string
	Score float64
	Max   float64
}

// MangalLevel grades the Mars affliction of one chart.
type MangalLevel int

// Mangal Dosha grades.
const (
	MangalNone MangalLevel = iota
	MangalLow
	MangalHigh
)

var mangalNames = [...]string{"No Mangal Dosha", "Low Mangal Dosha", "High Mangal Dosha"}

func (m MangalLevel) String() string { return mangalNames[m] }

// MangalVerdict is the joint Mars assessment of both charts.
type MangalVerdict struct {
	Groom      MangalLevel
	Bride      MangalLevel
	Compatible bool
}

// Tier labels for the total score.
const (
	TierExcellent = "Excellent"
	TierVeryGood  = "Very Good"
	TierGood      = "Good"
	TierAverage   = "Average"
)

var recommendations = map[string]string{
	TierExcellent: "An excellent match. The charts support a harmonious and prosperous union.",
	TierVeryGood:  "A very good match. Strong compatibility across most factors.",
	TierGood:      "A good match. Compatibility is sound; remaining differences are workable.",
	TierAverage:   "An average match. Consider a detailed consultation before proceeding.",
}

// Report is the complete compatibility result.
type Report struct {
	Kootas         []Koota
	Total          float64
	Tier           string
	Recommendation string
	Mangal         MangalVerdict
}

// Score computes the eight kootas, the total, the tier and the Mangal
// Dosha verdict for a groom and bride chart.
func Score(groom, bride Person) Report {
	kootas := []Koota{
		{Name: "Varna", Score: varnaScore(groom, bride), Max: varnaMax},
		{Name: "Vashya", Score: vashyaScore(groom, bride), Max: vashyaMax},
		{Name: "Tara", Score: taraScore(groom, bride), Max: taraMax},
		{Name: "Yoni", Score: yoniScore(groom, bride), Max: yoniMax},
		{Name: "Graha Maitri", Score: maitriScore(groom, bride), Max: maitriMax},
		{Name: "Gana", Score: ganaScore(groom, bride), Max: ganaMax},
		{Name: "Bhakoot", Score: bhakootScore(groom, bride), Max: bhakootMax},
		{Name: "Nadi", Score: nadiScore(groom, bride), Max: nadiMax},
	}

	total := 0.0
	for _, k := range kootas {
		total += k.Score
	}

	tier := tierOf(total)
	groomMangal := MangalDosha(groom.MarsHouse)
	brideMangal := MangalDosha(bride.MarsHouse)

	return Report{
		Kootas:         kootas,
		Total:          total,
		Tier:           tier,
		Recommendation: recommendations[tier],
		Mangal: MangalVerdict{
			Groom:      groomMangal,
			Bride:      brideMangal,
			Compatible: groomMangal == brideMangal,
		},
	}
}

// MangalDosha grades Mars' whole-sign house relative to the chart's own
// ascendant.
func MangalDosha(marsHouse int) MangalLevel {
	switch marsHouse {
	case 1, 4, 7, 8, 12:
		return MangalHigh
	case 2:
		return MangalLow
	default:
		return MangalNone
	}
}

func tierOf(total float64) string {
	switch {
	case total >= excellentThreshold:
		return TierExcellent
	case total >= veryGoodThreshold:
		return TierVeryGood
	case total >= goodThreshold:
		return TierGood
	default:
		return TierAverage
	}
}

// varnaScore grants the point when the groom's caste rank is at least the
// bride's.
func varnaScore(groom, bride Person) float64 {
	if zodiac.SignVarnas[groom.MoonSign] <= zodiac.SignVarnas[bride.MoonSign] {
		return varnaMax
	}
	return 0
}

func vashyaScore(groom, bride Person) float64 {
	g := zodiac.SignVashyas[groom.MoonSign]
	b := zodiac.SignVashyas[bride.MoonSign]
	switch {
	case g == b:
		return vashyaMax
	case pairIs(g, b, zodiac.Manav, zodiac.Jalchar):
		return 0.5
	case pairIs(g, b, zodiac.Chatushpada, zodiac.Manav):
		return 1
	default:
		return 0
	}
}

func pairIs[T comparable](a, b, x, y T) bool {
	return (a == x && b == y) || (a == y && b == x)
}

// auspiciousTaras are the favourable positions in the nine-fold cycle:
// Sampat(1), Kshema(3), Sadhak(5), Mitra(7) and Param Mitra(8).
var auspiciousTaras = [9]bool{1: true, 3: true, 5: true, 7: true, 8: true}

func taraScore(groom, bride Person) float64 {
	forward := ((bride.MoonNakshatra - groom.MoonNakshatra + zodiac.NakshatraCount) % zodiac.NakshatraCount) % 9
	backward := ((groom.MoonNakshatra - bride.MoonNakshatra + zodiac.NakshatraCount) % zodiac.NakshatraCount) % 9
	if auspiciousTaras[forward] && auspiciousTaras[backward] {
		return taraMax
	}
	return taraMax / 2
}

func yoniScore(groom, bride Person) float64 {
	g := zodiac.NakshatraYonis[groom.MoonNakshatra]
	b := zodiac.NakshatraYonis[bride.MoonNakshatra]
	switch {
	case g == b:
		return yoniMax
	case zodiac.YoniFriendly(g, b):
		return 3
	default:
		return 2
	}
}

func maitriScore(groom, bride Person) float64 {
	g := zodiac.SignLords[groom.MoonSign]
	b := zodiac.SignLords[bride.MoonSign]
	switch {
	case g == b:
		return maitriMax
	case zodiac.PlanetsFriendly(g, b):
		return 4
	default:
		return 0.5
	}
}

func ganaScore(groom, bride Person) float64 {
	g := zodiac.NakshatraGanas[groom.MoonNakshatra]
	b := zodiac.NakshatraGanas[bride.MoonNakshatra]
	if g == b || pairIs(g, b, zodiac.Deva, zodiac.Manushya) {
		return ganaMax
	}
	return 0
}

// inauspiciousBhakoot are the sign distances of the 2/12, 6/8 and 5/9
// afflictions as the source rubric counts them.
var inauspiciousBhakoot = map[int]bool{2: true, 6: true, 8: true, 12: true}

func bhakootScore(groom, bride Person) float64 {
	distance := groom.MoonSign - bride.MoonSign
	if distance < 0 {
		distance = -distance
	}
	if inauspiciousBhakoot[distance] {
		return 0
	}
	return bhakootMax
}

func nadiScore(groom, bride Person) float64 {
	if zodiac.NakshatraNadi(groom.MoonNakshatra) == zodiac.NakshatraNadi(bride.MoonNakshatra) {
		return 0
	}
	return nadiMax
}
