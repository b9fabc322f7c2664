package ephemeris_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	astrotime "github.com/vedanga/jyoti/internal/domain/astrotime"
	ephemeris "github.com/vedanga/jyoti/internal/domain/ephemeris"
	zodiac "github.com/vedanga/jyoti/internal/domain/zodiac"
)

func TestNew(t *testing.T) {
	Convey("Given the embedded dataset", t, func() {
		Convey("When constructing a provider", func() {
			provider, err := ephemeris.New()

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
				So(provider, ShouldNotBeNil)
			})
		})
	})

	Convey("Given broken datasets", t, func() {
		Convey("When the dataset is empty", func() {
			_, err := ephemeris.New(ephemeris.WithDataset(nil))

			Convey("Then construction should fail with ErrUnavailable", func() {
				So(errors.Is(err, ephemeris.ErrUnavailable), ShouldBeTrue)
			})
		})

		Convey("When the dataset is not JSON", func() {
			_, err := ephemeris.New(ephemeris.WithDataset([]byte("not json")))

			Convey("Then construction should fail with ErrUnavailable", func() {
				So(errors.Is(err, ephemeris.ErrUnavailable), ShouldBeTrue)
			})
		})

		Convey("When a required planet is missing", func() {
			_, err := ephemeris.New(ephemeris.WithDataset([]byte(`{
				"epoch_jd": 2451545.0,
				"valid_from_year": 1000, "valid_to_year": 3000,
				"planets": [], "moon": {"terms": []}
			}`)))

			Convey("Then construction should fail with ErrUnavailable", func() {
				So(errors.Is(err, ephemeris.ErrUnavailable), ShouldBeTrue)
			})
		})
	})
}

func TestPositions(t *testing.T) {
	Convey("Given a provider and the J2000 epoch", t, func() {
		provider, err := ephemeris.New()
		So(err, ShouldBeNil)
		jd := astrotime.J2000

		Convey("When computing all positions", func() {
			positions, err := provider.Positions(jd)

			Convey("Then all nine bodies should be present with normalized longitudes", func() {
				So(err, ShouldBeNil)
				So(len(positions), ShouldEqual, 9)
				for _, p := range positions {
					So(p.TropicalLongitude, ShouldBeGreaterThanOrEqualTo, 0)
					So(p.TropicalLongitude, ShouldBeLessThan, 360)
				}
			})

			Convey("Then Ketu should oppose Rahu exactly", func() {
				So(err, ShouldBeNil)
				var rahu, ketu float64
				for _, p := range positions {
					switch p.Body {
					case zodiac.Rahu:
						rahu = p.TropicalLongitude
					case zodiac.Ketu:
						ketu = p.TropicalLongitude
					}
				}
				So(astrotime.Normalize360(ketu-rahu), ShouldAlmostEqual, 180, 1e-9)
			})
		})

		Convey("When computing the Sun", func() {
			sun, err := provider.Position(jd, zodiac.Sun)

			Convey("Then its longitude should match the known epoch value", func() {
				So(err, ShouldBeNil)
				// Apparent solar longitude at J2000 is close to 280.46 deg;
				// the compact series should land within a fraction of a degree.
				So(sun.TropicalLongitude, ShouldAlmostEqual, 280.37, 0.5)
			})

			Convey("And it should move forward near one degree per day", func() {
				So(err, ShouldBeNil)
				So(sun.Speed, ShouldBeGreaterThan, 0.9)
				So(sun.Speed, ShouldBeLessThan, 1.1)
				So(sun.Retrograde(), ShouldBeFalse)
			})
		})

		Convey("When computing the Moon", func() {
			moon, err := provider.Position(jd, zodiac.Moon)

			Convey("Then it should move near thirteen degrees per day", func() {
				So(err, ShouldBeNil)
				So(moon.Speed, ShouldBeGreaterThan, 11)
				So(moon.Speed, ShouldBeLessThan, 16)
			})
		})

		Convey("When computing Rahu", func() {
			rahu, err := provider.Position(jd, zodiac.Rahu)

			Convey("Then the node should always be retrograde", func() {
				So(err, ShouldBeNil)
				So(rahu.Speed, ShouldBeLessThan, 0)
				So(rahu.Retrograde(), ShouldBeTrue)
			})
		})

		Convey("When the instant is outside the validity span", func() {
			_, err := provider.Position(100.0, zodiac.Sun)

			Convey("Then it should fail with ErrOutOfRange", func() {
				So(errors.Is(err, ephemeris.ErrOutOfRange), ShouldBeTrue)
			})
		})
	})
}

func TestAyanamsa(t *testing.T) {
	Convey("Given the Lahiri model", t, func() {
		Convey("When evaluated at its 1900 epoch", func() {
			Convey("Then the offset should be the base value", func() {
				So(ephemeris.Ayanamsa(2415020.5), ShouldAlmostEqual, 22.46, 1e-9)
			})
		})

		Convey("When evaluated a century later", func() {
			ayan := ephemeris.Ayanamsa(astrotime.J2000)

			Convey("Then precession should have accumulated about 1.4 degrees", func() {
				So(ayan, ShouldAlmostEqual, 23.856, 0.01)
			})
		})
	})
}

func TestToSidereal(t *testing.T) {
	Convey("Given a tropical longitude", t, func() {
		jd := astrotime.J2000

		Convey("When converting to sidereal", func() {
			sidereal := ephemeris.ToSidereal(10, jd)

			Convey("Then the ayanamsa should be subtracted with wraparound", func() {
				So(sidereal, ShouldAlmostEqual, astrotime.Normalize360(10-ephemeris.Ayanamsa(jd)), 1e-12)
				So(sidereal, ShouldBeGreaterThan, 340)
			})
		})
	})
}
