// Package astrotime converts civil birth data to UTC instants and Julian Days.
package astrotime

import (
	"fmt"
	"math"
	"time"
)

// Minutes-per-unit constants used by the UTC normalization.
const (
	minutesPerHour = 60
	minutesPerDay  = 24 * 60
)

// J2000 is the Julian Day of the standard J2000.0 epoch (2000-01-01 12:00 UT).
const J2000 = 2451545.0

// BirthMoment is the immutable civil input to every computation: a local
// date/time plus the UTC offset and the geographic coordinates it was
// observed at.
type BirthMoment struct {
	Year           int
	Month          int
	Day            int
	Hour           int
	Minute         int
	Second         int
	UTCOffsetHours float64
	Latitude       float64
	Longitude      float64
}

// Validate checks the calendar and clock fields. Coordinates are range
// checked at the API boundary, not here.
func (b BirthMoment) Validate() error {
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, b.Month)
	}
	if b.Day < 1 || b.Day > DaysInMonth(b.Year, b.Month) {
		return fmt.Errorf("%w: day %d of month %d", ErrInvalidDate, b.Day, b.Month)
	}
	if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 || b.Second < 0 || b.Second > 59 {
		return fmt.Errorf("%w: time %02d:%02d:%02d", ErrInvalidDate, b.Hour, b.Minute, b.Second)
	}
	return nil
}

// Moment is a fully resolved UTC civil timestamp.
type Moment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Time returns the Moment as a time.Time in UTC.
func (m Moment) Time() time.Time {
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, time.UTC)
}

// IsLeapYear reports whether the Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month, leap-year aware.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ToUTC converts the local birth time to a UTC Moment by subtracting the UTC
// offset from the local minute-of-day and resolving day/month/year rollovers
// in either direction.
func ToUTC(b BirthMoment) (Moment, error) {
	if err := b.Validate(); err != nil {
		return Moment{}, err
	}

	totalMinutes := b.Hour*minutesPerHour + b.Minute - int(math.Round(b.UTCOffsetHours*minutesPerHour))

	dayShift := 0
	for totalMinutes < 0 {
		totalMinutes += minutesPerDay
		dayShift--
	}
	for totalMinutes >= minutesPerDay {
		totalMinutes -= minutesPerDay
		dayShift++
	}

	m := Moment{
		Year:   b.Year,
		Month:  b.Month,
		Day:    b.Day,
		Hour:   totalMinutes / minutesPerHour,
		Minute: totalMinutes % minutesPerHour,
		Second: b.Second,
	}

	for dayShift < 0 {
		m.Day--
		if m.Day < 1 {
			m.Month--
			if m.Month < 1 {
				m.Month = 12
				m.Year--
			}
			m.Day = DaysInMonth(m.Year, m.Month)
		}
		dayShift++
	}
	for dayShift > 0 {
		m.Day++
		if m.Day > DaysInMonth(m.Year, m.Month) {
			m.Day = 1
			m.Month++
			if m.Month > 12 {
				m.Month = 1
				m.Year++
			}
		}
		dayShift--
	}

	return m, nil
}

// JulianDay computes the Julian Day for a UTC civil timestamp using the
// Gregorian calendar conversion.
func JulianDay(m Moment) float64 {
	year, month := m.Year, m.Month
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(float64(year)+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(m.Day) + b - 1524.5

	dayFraction := (float64(m.Hour) + float64(m.Minute)/60 + float64(m.Second)/3600) / 24
	return jd + dayFraction
}

// Normalize360 wraps an angle in degrees to [0, 360). It is idempotent.
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
