package astrotime_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	astrotime "github.com/vedanga/jyoti/internal/domain/astrotime"
)

func TestNormalize360(t *testing.T) {
	Convey("Given a set of angles", t, func() {
		cases := []float64{0, 359.999, 360, 720.5, -0.5, -360, -725, 123.456}

		Convey("When normalizing each angle", func() {
			for _, in := range cases {
				got := astrotime.Normalize360(in)

				Convey("Then the result for "+formatFloat(in)+" should be in [0, 360)", func() {
					So(got, ShouldBeGreaterThanOrEqualTo, 0)
					So(got, ShouldBeLessThan, 360)
				})

				Convey("And normalizing "+formatFloat(in)+" again should be idempotent", func() {
					So(astrotime.Normalize360(got), ShouldEqual, got)
				})
			}
		})

		Convey("When normalizing a negative angle", func() {
			Convey("Then it should wrap upward", func() {
				So(astrotime.Normalize360(-30), ShouldEqual, 330)
			})
		})
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func TestToUTC(t *testing.T) {
	Convey("Given a birth moment east of Greenwich", t, func() {
		birth := astrotime.BirthMoment{
			Year: 1995, Month: 8, Day: 20, Hour: 2, Minute: 30,
			UTCOffsetHours: 5.5,
		}

		Convey("When converting to UTC", func() {
			utc, err := astrotime.ToUTC(birth)

			Convey("Then the date should roll back to the previous day", func() {
				So(err, ShouldBeNil)
				So(utc.Year, ShouldEqual, 1995)
				So(utc.Month, ShouldEqual, 8)
				So(utc.Day, ShouldEqual, 19)
				So(utc.Hour, ShouldEqual, 21)
				So(utc.Minute, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a birth moment west of Greenwich late in the day", t, func() {
		birth := astrotime.BirthMoment{
			Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 15,
			UTCOffsetHours: -5,
		}

		Convey("When converting to UTC", func() {
			utc, err := astrotime.ToUTC(birth)

			Convey("Then the date should roll forward across the year boundary", func() {
				So(err, ShouldBeNil)
				So(utc.Year, ShouldEqual, 2000)
				So(utc.Month, ShouldEqual, 1)
				So(utc.Day, ShouldEqual, 1)
				So(utc.Hour, ShouldEqual, 4)
				So(utc.Minute, ShouldEqual, 15)
			})
		})
	})

	Convey("Given a birth moment on March 1 of a leap year", t, func() {
		birth := astrotime.BirthMoment{
			Year: 2000, Month: 3, Day: 1, Hour: 1, Minute: 0,
			UTCOffsetHours: 3,
		}

		Convey("When converting to UTC", func() {
			utc, err := astrotime.ToUTC(birth)

			Convey("Then the rollback should land on February 29", func() {
				So(err, ShouldBeNil)
				So(utc.Month, ShouldEqual, 2)
				So(utc.Day, ShouldEqual, 29)
				So(utc.Hour, ShouldEqual, 22)
			})
		})
	})

	Convey("Given an invalid calendar date", t, func() {
		Convey("When the day is outside the month", func() {
			_, err := astrotime.ToUTC(astrotime.BirthMoment{Year: 2021, Month: 2, Day: 30})

			Convey("Then it should fail with ErrInvalidDate", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, astrotime.ErrInvalidDate), ShouldBeTrue)
			})
		})

		Convey("When the month is out of range", func() {
			_, err := astrotime.ToUTC(astrotime.BirthMoment{Year: 2021, Month: 13, Day: 1})

			Convey("Then it should fail with ErrInvalidDate", func() {
				So(errors.Is(err, astrotime.ErrInvalidDate), ShouldBeTrue)
			})
		})
	})
}

func TestJulianDay(t *testing.T) {
	Convey("Given reference UTC instants", t, func() {
		Convey("When computing the J2000 epoch", func() {
			jd := astrotime.JulianDay(astrotime.Moment{Year: 2000, Month: 1, Day: 1, Hour: 12})

			Convey("Then it should equal 2451545.0", func() {
				So(jd, ShouldAlmostEqual, astrotime.J2000, 1e-9)
			})
		})

		Convey("When computing midnight before the epoch", func() {
			jd := astrotime.JulianDay(astrotime.Moment{Year: 2000, Month: 1, Day: 1})

			Convey("Then it should be half a day earlier", func() {
				So(jd, ShouldAlmostEqual, astrotime.J2000-0.5, 1e-9)
			})
		})

		Convey("When computing the Lahiri epoch 1900-01-01 00:00", func() {
			jd := astrotime.JulianDay(astrotime.Moment{Year: 1900, Month: 1, Day: 1})

			Convey("Then it should equal 2415020.5", func() {
				So(jd, ShouldAlmostEqual, 2415020.5, 1e-9)
			})
		})
	})
}

func TestDaysInMonth(t *testing.T) {
	Convey("Given leap and common years", t, func() {
		Convey("Then February should flex with the leap rule", func() {
			So(astrotime.DaysInMonth(2000, 2), ShouldEqual, 29)
			So(astrotime.DaysInMonth(1900, 2), ShouldEqual, 28)
			So(astrotime.DaysInMonth(2024, 2), ShouldEqual, 29)
			So(astrotime.DaysInMonth(2023, 2), ShouldEqual, 28)
		})

		Convey("Then the long and short months should be fixed", func() {
			So(astrotime.DaysInMonth(2023, 1), ShouldEqual, 31)
			So(astrotime.DaysInMonth(2023, 4), ShouldEqual, 30)
		})
	})
}
