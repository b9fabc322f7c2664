// Package app provides the core business service that implements the
// dependencies required by the HTTP API: chart generation and compatibility
// scoring on top of the pure domain packages.
package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vedanga/jyoti/internal/adapters/cache"
	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/chart"
	"github.com/vedanga/jyoti/internal/domain/dasha"
	"github.com/vedanga/jyoti/internal/domain/ephemeris"
	"github.com/vedanga/jyoti/internal/domain/match"
	"github.com/vedanga/jyoti/internal/domain/panchang"
	"github.com/vedanga/jyoti/internal/domain/zodiac"
	"github.com/vedanga/jyoti/pkg/logger"
	"github.com/vedanga/jyoti/pkg/metrics"
)

// Service wires the domain packages behind a single computation facade.
// Every request-path method is a pure function of its input once Start has
// validated the ephemeris data; the only mutable state is counters and the
// optional snapshot cache.
type Service struct {
	mu sync.RWMutex

	provider *ephemeris.Provider
	cache    cache.Cache
	logger   logger.Logger

	dashaHorizonYears float64
	ephemerisData     []byte // optional override, mainly for tests
	now               func() time.Time

	started bool

	chartsComputed  atomic.Int64
	matchesComputed atomic.Int64
	cacheHits       atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCache sets the snapshot cache. Nil disables caching.
func WithCache(c cache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithDashaHorizonYears bounds the generated Vimshottari timeline.
func WithDashaHorizonYears(years float64) Option {
	return func(s *Service) {
		if years > 0 {
			s.dashaHorizonYears = years
		}
	}
}

// WithEphemerisDataset overrides the embedded ephemeris data.
func WithEphemerisDataset(raw []byte) Option {
	return func(s *Service) {
		s.ephemerisData = raw
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dashaHorizonYears: dasha.CycleYears,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates the ephemeris dataset and readies the service. A dataset
// failure is fatal: the service refuses to start rather than compute from
// missing data.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	var opts []ephemeris.Option
	if s.ephemerisData != nil {
		opts = append(opts, ephemeris.WithDataset(s.ephemerisData))
	}
	provider, err := ephemeris.New(opts...)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	s.provider = provider
	s.started = true

	s.logger.Info(ctx, "computation service started",
		logger.Float64("dashaHorizonYears", s.dashaHorizonYears),
		logger.String("cache", fmt.Sprintf("%T", s.cache)),
	)
	return nil
}

// Stop marks the service stopped. There are no background workers to drain.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// BuildChart computes the full chart response for one person, consulting
// the snapshot cache first.
func (s *Service) BuildChart(ctx context.Context, in BirthInput) (*ChartResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !in.validate() {
		return nil, fmt.Errorf("%w: non-finite coordinate or timezone", ErrInvalidInput)
	}

	key := snapshotKey(in)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached ChartResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.cacheHits.Add(1)
				metrics.RecordCacheHit()
				return &cached, nil
			}
		}
		metrics.RecordCacheMiss()
	}

	start := s.now()
	result, err := s.computeChart(in)
	if err != nil {
		metrics.RecordComputeError("chart")
		return nil, err
	}
	s.chartsComputed.Add(1)
	metrics.RecordChartComputed(float64(s.now().Sub(start)) / float64(time.Millisecond))

	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(raw)); err != nil {
				s.logger.Warn(ctx, "snapshot cache write failed", logger.Error(err))
			}
		}
	}
	return result, nil
}

// MatchCharts computes the compatibility report for two people. The two
// natal charts are independent, so they are computed concurrently.
func (s *Service) MatchCharts(ctx context.Context, person1, person2 BirthInput) (*MatchResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !person1.validate() || !person2.validate() {
		return nil, fmt.Errorf("%w: non-finite coordinate or timezone", ErrInvalidInput)
	}

	start := s.now()

	var charts [2]*chart.Chart
	g, _ := errgroup.WithContext(ctx)
	for i, in := range []BirthInput{person1, person2} {
		i, in := i, in
		g.Go(func() error {
			c, err := chart.Build(s.provider, in.moment())
			if err != nil {
				return err
			}
			charts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.RecordComputeError("match")
		return nil, wrapEngineError(err)
	}

	groom, err := match.FromChart(charts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComputation, err)
	}
	bride, err := match.FromChart(charts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComputation, err)
	}

	report := match.Score(groom, bride)
	s.matchesComputed.Add(1)
	metrics.RecordMatchComputed(float64(s.now().Sub(start)) / float64(time.Millisecond))

	kootas := make([]KootaResult, len(report.Kootas))
	for i, k := range report.Kootas {
		kootas[i] = KootaResult{Name: k.Name, Score: k.Score, Max: k.Max}
	}
	return &MatchResult{
		Kootas:         kootas,
		Total:          report.Total,
		MaxTotal:       match.TotalMax,
		Tier:           report.Tier,
		Recommendation: report.Recommendation,
		MangalDosha: MangalResult{
			Person1:    report.Mangal.Groom.String(),
			Person2:    report.Mangal.Bride.String(),
			Compatible: report.Mangal.Compatible,
		},
	}, nil
}

// computeChart runs the full pipeline: chart, panchang, dasha.
func (s *Service) computeChart(in BirthInput) (*ChartResult, error) {
	natal, err := chart.Build(s.provider, in.moment())
	if err != nil {
		return nil, wrapEngineError(err)
	}

	sun, okSun := natal.Placement(zodiac.Sun)
	moon, okMoon := natal.Placement(zodiac.Moon)
	if !okSun || !okMoon {
		return nil, fmt.Errorf("%w: missing luminary placement", ErrComputation)
	}

	cal := panchang.Compute(sun.SiderealLongitude, moon.SiderealLongitude, natal.Moment)
	timeline := dasha.Timeline(
		natal.Moment.Time(),
		moon.Nakshatra.Index,
		moon.Nakshatra.FractionElapsed,
		dasha.WithHorizonYears(s.dashaHorizonYears),
	)

	planets := make([]PlanetResult, len(natal.Placements))
	for i, pl := range natal.Placements {
		planets[i] = PlanetResult{
			Name:         pl.Body.String(),
			Sign:         pl.Sign(),
			House:        pl.House,
			DegreeInSign: pl.DegreeInSign(),
			Nakshatra: NakshatraResult{
				Name: pl.Nakshatra.Name(),
				Lord: pl.Nakshatra.Lord().String(),
				Pada: pl.Nakshatra.Pada,
			},
			IsRetrograde: pl.Retrograde,
			NavamsaSign:  zodiac.SignNames[pl.NavamsaSign],
			DashamsaSign: zodiac.SignNames[pl.DashamsaSign],
		}
	}

	periods := make([]DashaPeriodResult, len(timeline))
	for i, p := range timeline {
		periods[i] = DashaPeriodResult{
			Lord:    p.Lord.String(),
			Start:   p.Start,
			End:     p.End,
			Years:   p.Years,
			Partial: p.Partial,
		}
	}
	result := DashaResult{Periods: periods}
	if current, ok := dasha.Current(timeline, s.now().UTC()); ok {
		result.Current = &DashaPeriodResult{
			Lord:    current.Lord.String(),
			Start:   current.Start,
			End:     current.End,
			Years:   current.Years,
			Partial: current.Partial,
		}
	}

	return &ChartResult{
		Name:   in.Name,
		Gender: in.Gender,
		Ascendant: AscendantResult{
			Sign:   natal.Ascendant.Sign(),
			Degree: chart.DegreeInSign(natal.Ascendant.SiderealLongitude),
		},
		Planets: planets,
		Panchang: PanchangResult{
			Tithi:  cal.TithiName,
			Paksha: cal.Paksha.String(),
			Yoga:   cal.YogaName,
			Karana: cal.KaranaName,
			Vara:   cal.Vara,
			Masa:   cal.Masa,
			Ritu:   cal.Ritu,
			Ayana:  cal.Ayana.String(),
		},
		Dasha: result,
	}, nil
}

// ready reports whether Start succeeded.
func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"started":         s.started,
		"chartsComputed":  s.chartsComputed.Load(),
		"matchesComputed": s.matchesComputed.Load(),
		"cacheHits":       s.cacheHits.Load(),
	}
}

// wrapEngineError keeps the engine's taxonomy visible to the boundary while
// folding everything unexpected into ErrComputation.
func wrapEngineError(err error) error {
	switch {
	case errors.Is(err, astrotime.ErrInvalidDate),
		errors.Is(err, ephemeris.ErrOutOfRange),
		errors.Is(err, ephemeris.ErrUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrComputation, err)
	}
}

// snapshotKey hashes the numeric birth fields into a stable cache key.
func snapshotKey(in BirthInput) string {
	payload := fmt.Sprintf("%d-%d-%d %d:%d:%d tz%.4f lat%.6f lon%.6f",
		in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second,
		in.Timezone, in.Latitude, in.Longitude)
	sum := sha256.Sum256([]byte(payload))
	return "chart:" + hex.EncodeToString(sum[:])
}
