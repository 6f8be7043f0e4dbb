package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/pitstop/internal/geocoding"
	"github.com/UnknownOlympus/pitstop/internal/metrics"
	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/UnknownOlympus/pitstop/internal/normalize"
	"github.com/UnknownOlympus/pitstop/internal/overpass"
	"github.com/UnknownOlympus/pitstop/internal/repository"
	"github.com/go-playground/validator/v10"
)

// State is the lifecycle phase of the lookup session.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SpatialQuerier finds features of a category around a center point.
type SpatialQuerier interface {
	Query(
		ctx context.Context,
		center models.Coordinates,
		radiusMeters int,
		category overpass.Category,
	) ([]models.RawFeature, error)
}

// Viewport is the part of the viewport controller the service drives.
type Viewport interface {
	Recenter(center models.Coordinates)
	CurrentState() models.ViewportState
}

// Outcome is what a successful Submit hands back to the caller.
type Outcome struct {
	Result   models.LookupResult  `json:"result"`
	Viewport models.ViewportState `json:"viewport"`
}

// Snapshot is a consistent read of the session for the rendering layer.
type Snapshot struct {
	State    State                `json:"state"`
	Query    string               `json:"query,omitempty"`
	Message  string               `json:"message,omitempty"`
	Viewport models.ViewportState `json:"viewport"`
	Result   *models.LookupResult `json:"result"`
}

// LookupService runs one postal code search at a time from the user's point of view: every
// submit is dispatched immediately, and only the most recently issued one may commit.
type LookupService struct {
	log          *slog.Logger
	geocoder     geocoding.Provider
	providerName string
	spatial      SpatialQuerier
	viewport     Viewport
	journal      repository.Interface
	metrics      *metrics.Metrics
	validate     *validator.Validate
	radius       int
	category     overpass.Category

	mu      sync.Mutex
	seq     uint64
	state   State
	query   string
	message string
	result  *models.LookupResult
}

// NewLookupService wires the lookup pipeline. journal may be nil.
func NewLookupService(
	log *slog.Logger,
	geocoder geocoding.Provider,
	providerName string,
	spatial SpatialQuerier,
	viewport Viewport,
	journal repository.Interface,
	metrics *metrics.Metrics,
) *LookupService {
	return &LookupService{
		log:          log,
		geocoder:     geocoder,
		providerName: providerName,
		spatial:      spatial,
		viewport:     viewport,
		journal:      journal,
		metrics:      metrics,
		validate:     validator.New(),
		radius:       overpass.DefaultRadiusMeters,
		category:     overpass.CategoryCarRepair,
		state:        StateIdle,
	}
}

// Submit resolves the postal code, queries nearby repair shops and commits the result.
// A validation failure makes no network call. A lookup overtaken by a newer one returns
// ErrSuperseded and leaves the session as the newer lookup sets it.
func (s *LookupService) Submit(ctx context.Context, query string) (Outcome, error) {
	postalCode := strings.TrimSpace(query)
	if err := s.validate.Var(postalCode, "required"); err != nil {
		lookupErr := newLookupError(KindValidation, err)
		s.mu.Lock()
		s.state = StateIdle
		s.query = ""
		s.message = lookupErr.Message
		s.mu.Unlock()
		s.metrics.Lookups.WithLabelValues(KindValidation.String()).Inc()
		s.log.DebugContext(ctx, "Rejected empty postal code")
		return Outcome{}, lookupErr
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = StateSearching
	s.query = postalCode
	s.message = ""
	s.mu.Unlock()

	s.metrics.SearchesInFlight.Inc()
	defer s.metrics.SearchesInFlight.Dec()

	start := time.Now()
	log := s.log.With("postal_code", postalCode, "seq", seq)
	log.InfoContext(ctx, "Starting lookup")

	center, err := s.geocode(ctx, postalCode)
	if err != nil {
		kind := KindTransport
		if errors.Is(err, geocoding.ErrNotFound) {
			kind = KindNotFound
		}
		return Outcome{}, s.fail(ctx, log, seq, postalCode, start, newLookupError(kind, err))
	}

	if !s.isLatest(seq) {
		return Outcome{}, s.supersede(ctx, log, postalCode, start)
	}

	features, err := s.queryShops(ctx, *center)
	if err != nil {
		return Outcome{}, s.fail(ctx, log, seq, postalCode, start, newLookupError(KindTransport, err))
	}

	result := models.LookupResult{
		Center:           *center,
		PointsOfInterest: normalize.Normalize(features),
	}

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return Outcome{}, s.supersede(ctx, log, postalCode, start)
	}
	s.viewport.Recenter(result.Center)
	committed := result
	s.result = &committed
	s.state = StateSuccess
	s.mu.Unlock()

	s.metrics.Lookups.WithLabelValues("success").Inc()
	s.metrics.PointsPerLookup.Observe(float64(len(result.PointsOfInterest)))
	log.InfoContext(ctx, "Lookup finished",
		"lat", result.Center.Latitude,
		"lon", result.Center.Longitude,
		"shops", len(result.PointsOfInterest),
	)
	s.record(ctx, models.LookupRecord{
		Query:      postalCode,
		Outcome:    "success",
		Center:     &result.Center,
		PointCount: len(result.PointsOfInterest),
		Duration:   time.Since(start),
	})

	return Outcome{Result: cloneResult(result), Viewport: s.viewport.CurrentState()}, nil
}

// Snapshot returns the current session state together with the viewport.
func (s *LookupService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:    s.state,
		Query:    s.query,
		Message:  s.message,
		Viewport: s.viewport.CurrentState(),
	}
	if s.result != nil {
		res := cloneResult(*s.result)
		snap.Result = &res
	}

	return snap
}

func (s *LookupService) geocode(ctx context.Context, postalCode string) (*models.Coordinates, error) {
	start := time.Now()
	center, err := s.geocoder.Geocode(ctx, postalCode)
	s.metrics.BackendSeconds.WithLabelValues(metrics.BackendGeocoder, s.providerName).
		Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, geocoding.ErrNotFound) {
		s.metrics.BackendErrors.WithLabelValues(metrics.BackendGeocoder).Inc()
	}
	if err == nil && center == nil {
		return nil, geocoding.ErrNotFound
	}

	return center, err
}

func (s *LookupService) queryShops(ctx context.Context, center models.Coordinates) ([]models.RawFeature, error) {
	start := time.Now()
	features, err := s.spatial.Query(ctx, center, s.radius, s.category)
	s.metrics.BackendSeconds.WithLabelValues(metrics.BackendOverpass, "overpass").
		Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.BackendErrors.WithLabelValues(metrics.BackendOverpass).Inc()
	}

	return features, err
}

func (s *LookupService) isLatest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}

func (s *LookupService) fail(
	ctx context.Context,
	log *slog.Logger,
	seq uint64,
	postalCode string,
	start time.Time,
	lookupErr *LookupError,
) error {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return s.supersede(ctx, log, postalCode, start)
	}
	s.state = StateFailed
	s.message = lookupErr.Message
	s.mu.Unlock()

	s.metrics.Lookups.WithLabelValues(lookupErr.Kind.String()).Inc()
	log.WarnContext(ctx, "Lookup failed", "kind", lookupErr.Kind.String(), "error", lookupErr.Err)
	s.record(ctx, models.LookupRecord{
		Query:    postalCode,
		Outcome:  lookupErr.Kind.String(),
		Duration: time.Since(start),
	})

	return lookupErr
}

func (s *LookupService) supersede(ctx context.Context, log *slog.Logger, postalCode string, start time.Time) error {
	s.metrics.Lookups.WithLabelValues("superseded").Inc()
	log.InfoContext(ctx, "Discarding stale lookup response")
	s.record(ctx, models.LookupRecord{
		Query:    postalCode,
		Outcome:  "superseded",
		Duration: time.Since(start),
	})

	return ErrSuperseded
}

func (s *LookupService) record(ctx context.Context, rec models.LookupRecord) {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordLookup(ctx, rec); err != nil {
		s.log.ErrorContext(ctx, "Failed to record lookup", "error", err)
	}
}

func cloneResult(res models.LookupResult) models.LookupResult {
	res.PointsOfInterest = slices.Clone(res.PointsOfInterest)
	return res
}
