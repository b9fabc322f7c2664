package ephemeris

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/vedanga/jyoti/internal/domain/astrotime"
)

// The backing dataset ships with the binary. Startup still validates it so a
// corrupted or truncated build refuses to serve rather than computing from
// partial data.
//
//go:embed dataset/elements.json
var embeddedDataset []byte

// elements holds a body's osculating orbital elements (angles in degrees,
// semi-major axis in AU).
type elements struct {
	A    float64 `json:"a"`
	E    float64 `json:"e"`
	I    float64 `json:"i"`
	L    float64 `json:"l"`
	Lp   float64 `json:"lp"`
	Node float64 `json:"node"`
}

// planetRecord pairs epoch elements with their per-century rates.
type planetRecord struct {
	Name     string   `json:"name"`
	Elements elements `json:"elements"`
	Rates    elements `json:"rates"`
}

// moonTerm is one periodic term of the lunar longitude series. The sin
// coefficient is in millionths of a degree.
type moonTerm struct {
	D   int   `json:"d"`
	M   int   `json:"m"`
	Mp  int   `json:"mp"`
	F   int   `json:"f"`
	Sin int64 `json:"sin"`
}

// dataset is the parsed shape of the embedded ephemeris data.
type dataset struct {
	Name          string         `json:"name"`
	EpochJD       float64        `json:"epoch_jd"`
	ValidFromYear int            `json:"valid_from_year"`
	ValidToYear   int            `json:"valid_to_year"`
	Planets       []planetRecord `json:"planets"`
	Moon          struct {
		Terms []moonTerm `json:"terms"`
	} `json:"moon"`

	// Derived at load time.
	validFromJD float64
	validToJD   float64
	byName      map[string]planetRecord
}

// requiredPlanets must all appear in the dataset for it to be usable.
var requiredPlanets = []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn"}

const minMoonTerms = 20

// parseDataset decodes and validates raw ephemeris data. Any missing body or
// empty series is a hard failure.
func parseDataset(raw []byte) (*dataset, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrUnavailable)
	}
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	ds.byName = make(map[string]planetRecord, len(ds.Planets))
	for _, p := range ds.Planets {
		ds.byName[p.Name] = p
	}
	for _, name := range requiredPlanets {
		rec, ok := ds.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing elements for %s", ErrUnavailable, name)
		}
		if rec.Elements.A <= 0 {
			return nil, fmt.Errorf("%w: degenerate orbit for %s", ErrUnavailable, name)
		}
	}
	if len(ds.Moon.Terms) < minMoonTerms {
		return nil, fmt.Errorf("%w: lunar series has %d terms, need at least %d",
			ErrUnavailable, len(ds.Moon.Terms), minMoonTerms)
	}
	if ds.EpochJD <= 0 {
		return nil, fmt.Errorf("%w: missing epoch", ErrUnavailable)
	}
	if ds.ValidFromYear >= ds.ValidToYear {
		return nil, fmt.Errorf("%w: invalid validity span [%d, %d]",
			ErrUnavailable, ds.ValidFromYear, ds.ValidToYear)
	}

	ds.validFromJD = astrotime.JulianDay(astrotime.Moment{Year: ds.ValidFromYear, Month: 1, Day: 1})
	ds.validToJD = astrotime.JulianDay(astrotime.Moment{Year: ds.ValidToYear, Month: 12, Day: 31})
	return &ds, nil
}

// inRange reports whether a Julian Day falls inside the declared span.
func (ds *dataset) inRange(jd float64) bool {
	return jd >= ds.validFromJD && jd <= ds.validToJD
}
