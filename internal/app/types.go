package app

import (
	"math"
	"time"

	"github.com/vedanga/jyoti/internal/domain/astrotime"
)

// BirthInput is one person's birth data as the boundary hands it over. All
// numeric fields are required; Name, Gender and Second are optional.
type BirthInput struct {
	Name      string  `json:"name,omitempty"`
	Gender    string  `json:"gender,omitempty"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  float64 `json:"timezone"`
}

// moment converts the input to the engine's birth moment.
func (b BirthInput) moment() astrotime.BirthMoment {
	return astrotime.BirthMoment{
		Year:           b.Year,
		Month:          b.Month,
		Day:            b.Day,
		Hour:           b.Hour,
		Minute:         b.Minute,
		Second:         b.Second,
		UTCOffsetHours: b.Timezone,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
	}
}

// validate rejects NaN or infinite numeric fields before the engine sees
// them.
func (b BirthInput) validate() bool {
	for _, f := range []float64{b.Latitude, b.Longitude, b.Timezone} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// AscendantResult is the rising sign and degree.
type AscendantResult struct {
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

// NakshatraResult is a body's lunar mansion placement.
type NakshatraResult struct {
	Name string `json:"name"`
	Lord string `json:"lord"`
	Pada int    `json:"pada"`
}

// PlanetResult is one body's chart placement.
type PlanetResult struct {
	Name         string          `json:"name"`
	Sign         string          `json:"sign"`
	House        int             `json:"house"`
	DegreeInSign float64         `json:"degree_in_sign"`
	Nakshatra    NakshatraResult `json:"nakshatra"`
	IsRetrograde bool            `json:"is_retrograde"`
	NavamsaSign  string          `json:"navamsa_sign"`
	DashamsaSign string          `json:"dashamsa_sign"`
}

// PanchangResult is the calendar snapshot at birth.
type PanchangResult struct {
	Tithi  string `json:"tithi"`
	Paksha string `json:"paksha"`
	Yoga   string `json:"yoga"`
	Karana string `json:"karana"`
	Vara   string `json:"vara"`
	Masa   string `json:"masa"`
	Ritu   string `json:"ritu"`
	Ayana  string `json:"ayana"`
}

// DashaPeriodResult is one Mahadasha entry.
type DashaPeriodResult struct {
	Lord    string    `json:"lord"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Years   float64   `json:"years"`
	Partial bool      `json:"partial,omitempty"`
}

// DashaResult is the generated timeline plus the period in progress.
type DashaResult struct {
	Current *DashaPeriodResult  `json:"current,omitempty"`
	Periods []DashaPeriodResult `json:"periods"`
}

// ChartResult is the full chart-generation response.
type ChartResult struct {
	Name      string          `json:"name,omitempty"`
	Gender    string          `json:"gender,omitempty"`
	Ascendant AscendantResult `json:"ascendant"`
	Planets   []PlanetResult  `json:"planets"`
	Panchang  PanchangResult  `json:"panchang"`
	Dasha     DashaResult     `json:"dasha"`
}

// KootaResult is one scored compatibility factor.
type KootaResult struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// MangalResult is the joint Mars assessment.
type MangalResult struct {
	Person1    string `json:"person1"`
	Person2    string `json:"person2"`
	Compatible bool   `json:"compatible"`
}

// MatchResult is the full compatibility response.
type MatchResult struct {
	Kootas         []KootaResult `json:"kootas"`
	Total          float64       `json:"total"`
	MaxTotal       float64       `json:"max_total"`
	Tier           string        `json:"tier"`
	Recommendation string        `json:"recommendation"`
	MangalDosha    MangalResult  `json:"mangal_dosha"`
}
