package panchang_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	astrotime "github.com/vedanga/jyoti/internal/domain/astrotime"
	panchang "github.com/vedanga/jyoti/internal/domain/panchang"
)

// aDate is an arbitrary UTC Sunday used where only the weekday matters.
var aDate = astrotime.Moment{Year: 2023, Month: 10, Day: 1, Hour: 6}

func TestTithi(t *testing.T) {
	Convey("Given Sun and Moon longitudes", t, func() {
		Convey("When the elongation is just past zero", func() {
			snap := panchang.Compute(10, 10.5, aDate)

			Convey("Then it should be Pratipada of the bright half", func() {
				So(snap.TithiNumber, ShouldEqual, 1)
				So(snap.TithiName, ShouldEqual, "Pratipada")
				So(snap.Paksha, ShouldEqual, panchang.Shukla)
			})
		})

		Convey("When the elongation approaches 180 degrees", func() {
			snap := panchang.Compute(0, 179, aDate)

			Convey("Then it should be Purnima", func() {
				So(snap.TithiNumber, ShouldEqual, 15)
				So(snap.TithiName, ShouldEqual, "Purnima")
				So(snap.Paksha, ShouldEqual, panchang.Shukla)
			})
		})

		Convey("When the elongation is past 180 degrees", func() {
			snap := panchang.Compute(0, 185, aDate)

			Convey("Then the dark half should begin again at Pratipada", func() {
				So(snap.TithiNumber, ShouldEqual, 16)
				So(snap.TithiName, ShouldEqual, "Pratipada")
				So(snap.Paksha, ShouldEqual, panchang.Krishna)
			})
		})

		Convey("When the elongation approaches a full circle", func() {
			snap := panchang.Compute(0, 359, aDate)

			Convey("Then it should be Amavasya closing the month", func() {
				So(snap.TithiNumber, ShouldEqual, 30)
				So(snap.TithiName, ShouldEqual, "Amavasya")
				So(snap.Paksha, ShouldEqual, panchang.Krishna)
			})
		})
	})
}

func TestYoga(t *testing.T) {
	Convey("Given Sun and Moon longitudes", t, func() {
		Convey("When their sum is small", func() {
			snap := panchang.Compute(5, 5, aDate)

			Convey("Then the first yoga should apply", func() {
				So(snap.YogaIndex, ShouldEqual, 0)
				So(snap.YogaName, ShouldEqual, "Vishkambha")
			})
		})

		Convey("When their sum wraps the circle", func() {
			snap := panchang.Compute(200, 170, aDate)

			Convey("Then the index should use the wrapped sum", func() {
				// 370 mod 360 = 10 degrees -> index 0
				So(snap.YogaIndex, ShouldEqual, 0)
			})
		})

		Convey("When their sum lands in the last segment", func() {
			snap := panchang.Compute(180, 179, aDate)

			Convey("Then the final yoga should apply", func() {
				So(snap.YogaIndex, ShouldEqual, 26)
				So(snap.YogaName, ShouldEqual, "Vaidhriti")
			})
		})
	})
}

func TestKarana(t *testing.T) {
	Convey("Given the sixty half-tithi slots", t, func() {
		Convey("When the month opens", func() {
			snap := panchang.Compute(0, 3, aDate)

			Convey("Then the fixed Kimstughna should hold slot zero", func() {
				So(snap.KaranaName, ShouldEqual, "Kimstughna")
			})
		})

		Convey("When in the movable band", func() {
			Convey("Then the seven karanas should cycle from Bava", func() {
				So(panchang.Compute(0, 7, aDate).KaranaName, ShouldEqual, "Bava")      // slot 1
				So(panchang.Compute(0, 13, aDate).KaranaName, ShouldEqual, "Balava")   // slot 2
				So(panchang.Compute(0, 43, aDate).KaranaName, ShouldEqual, "Vishti")   // slot 7
				So(panchang.Compute(0, 49, aDate).KaranaName, ShouldEqual, "Bava")     // slot 8 wraps
			})
		})

		Convey("When the month closes", func() {
			Convey("Then the three fixed karanas should hold the last slots", func() {
				So(panchang.Compute(0, 343, aDate).KaranaName, ShouldEqual, "Shakuni")     // slot 57
				So(panchang.Compute(0, 349, aDate).KaranaName, ShouldEqual, "Chatushpada") // slot 58
				So(panchang.Compute(0, 355, aDate).KaranaName, ShouldEqual, "Naga")        // slot 59
			})
		})
	})
}

func TestSolarAttributes(t *testing.T) {
	Convey("Given the Sun's sidereal sign", t, func() {
		Convey("When the Sun is in Aries", func() {
			snap := panchang.Compute(15, 100, aDate)

			Convey("Then masa, ritu and ayana should follow the sign table", func() {
				So(snap.Masa, ShouldEqual, "Chaitra")
				So(snap.Ritu, ShouldEqual, "Vasanta")
				So(snap.Ayana, ShouldEqual, panchang.Uttarayana)
			})
		})

		Convey("When the Sun is in Cancer", func() {
			snap := panchang.Compute(95, 100, aDate)

			Convey("Then the southern course should begin", func() {
				So(snap.Masa, ShouldEqual, "Ashadha")
				So(snap.Ayana, ShouldEqual, panchang.Dakshinayana)
			})
		})

		Convey("When the Sun is in Capricorn", func() {
			snap := panchang.Compute(275, 100, aDate)

			Convey("Then the northern course should begin", func() {
				So(snap.Ayana, ShouldEqual, panchang.Uttarayana)
			})
		})
	})

	Convey("Given the civil UTC date", t, func() {
		Convey("When the date is a Sunday", func() {
			snap := panchang.Compute(0, 100, aDate)

			Convey("Then the vara should be Ravivara", func() {
				So(snap.Vara, ShouldEqual, "Ravivara")
			})
		})

		Convey("When the date is a Tuesday", func() {
			snap := panchang.Compute(0, 100, astrotime.Moment{Year: 2023, Month: 10, Day: 3})

			Convey("Then the vara should be Mangalavara", func() {
				So(snap.Vara, ShouldEqual, "Mangalavara")
			})
		})
	})
}
