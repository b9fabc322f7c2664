package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/vedanga/jyoti/internal/adapters/http/api"
	"github.com/vedanga/jyoti/internal/app"
	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/ephemeris"
)

// fakeDeps stubs the service behind the handlers.
type fakeDeps struct {
	chartResult *app.ChartResult
	matchResult *app.MatchResult
	err         error
}

func (f *fakeDeps) BuildChart(_ context.Context, _ app.BirthInput) (*app.ChartResult, error) {
	return f.chartResult, f.err
}

func (f *fakeDeps) MatchCharts(_ context.Context, _, _ app.BirthInput) (*app.MatchResult, error) {
	return f.matchResult, f.err
}

func (f *fakeDeps) GetStats() map[string]any {
	return map[string]any{"started": true, "chartsComputed": int64(3)}
}

func newRouter(deps *fakeDeps) http.Handler {
	r := chi.NewRouter()
	api.NewServer(deps, deps).Register(r)
	return r
}

const validBirthJSON = `{
	"name": "Test Person",
	"year": 1995, "month": 8, "day": 20,
	"hour": 14, "minute": 30,
	"latitude": 28.6139, "longitude": 77.209, "timezone": 5.5
}`

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChartEndpoint(t *testing.T) {
	Convey("Given a router backed by a healthy service", t, func() {
		deps := &fakeDeps{
			chartResult: &app.ChartResult{
				Name:      "Test Person",
				Ascendant: app.AscendantResult{Sign: "Libra", Degree: 14.2},
			},
		}
		router := newRouter(deps)

		Convey("When posting a valid birth payload", func() {
			rec := postJSON(router, "/v1/chart", validBirthJSON)

			Convey("Then the chart should be returned as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")

				var body app.ChartResult
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body.Name, ShouldEqual, "Test Person")
				So(body.Ascendant.Sign, ShouldEqual, "Libra")
			})
		})

		Convey("When posting malformed JSON", func() {
			rec := postJSON(router, "/v1/chart", `{"year": }`)

			Convey("Then the request should be rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When a required field is missing", func() {
			rec := postJSON(router, "/v1/chart", `{
				"year": 1995, "month": 8, "day": 20,
				"hour": 14, "minute": 30,
				"latitude": 28.6139, "longitude": 77.209
			}`)

			Convey("Then validation should fail naming the field", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "timezone")
			})
		})

		Convey("When a coordinate is out of physical range", func() {
			rec := postJSON(router, "/v1/chart", `{
				"year": 1995, "month": 8, "day": 20,
				"hour": 14, "minute": 30,
				"latitude": 91.0, "longitude": 77.209, "timezone": 5.5
			}`)

			Convey("Then validation should fail", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "latitude")
			})
		})

		Convey("When the month is out of range", func() {
			rec := postJSON(router, "/v1/chart", `{
				"year": 1995, "month": 0, "day": 20,
				"hour": 14, "minute": 30,
				"latitude": 28.6139, "longitude": 77.209, "timezone": 5.5
			}`)

			Convey("Then validation should fail", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})

	Convey("Given a service returning engine errors", t, func() {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{fmt.Errorf("%w: bad coordinates", app.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
			{fmt.Errorf("%w: month 13", astrotime.ErrInvalidDate), http.StatusBadRequest, "invalid_input"},
			{fmt.Errorf("%w: year 500", ephemeris.ErrOutOfRange), http.StatusUnprocessableEntity, "out_of_range"},
			{app.ErrNotStarted, http.StatusServiceUnavailable, "unavailable"},
			{fmt.Errorf("%w: dataset", ephemeris.ErrUnavailable), http.StatusServiceUnavailable, "unavailable"},
			{fmt.Errorf("%w: unexpected", app.ErrComputation), http.StatusInternalServerError, "internal_error"},
		}

		Convey("When posting a valid payload against each failure", func() {
			for _, tc := range cases {
				router := newRouter(&fakeDeps{err: tc.err})
				rec := postJSON(router, "/v1/chart", validBirthJSON)

				Convey(fmt.Sprintf("Then %v should map to %d", tc.err, tc.status), func() {
					So(rec.Code, ShouldEqual, tc.status)
					So(rec.Body.String(), ShouldContainSubstring, tc.code)
				})
			}
		})
	})
}

func TestCompatibilityEndpoint(t *testing.T) {
	Convey("Given a router backed by a healthy service", t, func() {
		deps := &fakeDeps{
			matchResult: &app.MatchResult{
				Total:    26.5,
				MaxTotal: 36,
				Tier:     "Very Good",
			},
		}
		router := newRouter(deps)

		Convey("When posting two valid people", func() {
			body := fmt.Sprintf(`{"person1": %s, "person2": %s}`, validBirthJSON, validBirthJSON)
			rec := postJSON(router, "/v1/compatibility", body)

			Convey("Then the report should be returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var result app.MatchResult
				So(json.Unmarshal(rec.Body.Bytes(), &result), ShouldBeNil)
				So(result.Total, ShouldEqual, 26.5)
				So(result.Tier, ShouldEqual, "Very Good")
			})
		})

		Convey("When the second person is missing", func() {
			body := fmt.Sprintf(`{"person1": %s}`, validBirthJSON)
			rec := postJSON(router, "/v1/compatibility", body)

			Convey("Then validation should fail naming the field", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "person2")
			})
		})

		Convey("When one person has an invalid field", func() {
			bad := strings.Replace(validBirthJSON, `"day": 20`, `"day": 32`, 1)
			body := fmt.Sprintf(`{"person1": %s, "person2": %s}`, validBirthJSON, bad)
			rec := postJSON(router, "/v1/compatibility", body)

			Convey("Then validation should fail", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given a router with a stats provider", t, func() {
		router := newRouter(&fakeDeps{})

		Convey("When requesting the stats", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Convey("Then the counters should be returned as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var stats map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given a router", t, func() {
		router := newRouter(&fakeDeps{})

		Convey("When requesting the health endpoint", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Convey("Then the metrics exposition should be served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given a router wrapped in the request id middleware", t, func() {
		r := chi.NewRouter()
		r.Use(api.RequestID)
		api.NewServer(&fakeDeps{}, &fakeDeps{}).Register(r)

		Convey("When the caller sends no id", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			Convey("Then a generated id should be echoed", func() {
				So(rec.Header().Get("X-Request-Id"), ShouldNotBeEmpty)
			})
		})

		Convey("When the caller supplies an id", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			req.Header.Set("X-Request-Id", "abc-123")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			Convey("Then the same id should be echoed", func() {
				So(rec.Header().Get("X-Request-Id"), ShouldEqual, "abc-123")
			})
		})
	})
}
