package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/2beens/gymanalytics/internal/gymstats/analytics"
	"github.com/2beens/gymanalytics/internal/gymstats/workouts"
	"github.com/2beens/gymanalytics/internal/telemetry/metrics"
	"github.com/2beens/gymanalytics/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=analysis_test

const (
	megabyte = 1024 * 1024
	// freecache refuses entries above 1/1024 of its size, so the cache is
	// never smaller than 1024 entries of this many compressed bytes
	maxCachedEntry = 16 * 1024
)

type documentsRepo interface {
	Get(ctx context.Context, userID string, kind Kind) (*Document, error)
	Upsert(ctx context.Context, doc Document) error
}

type sessionsLister interface {
	ListCompletedSessions(ctx context.Context, userID string, since time.Time) ([]workouts.Session, error)
}

type knownExercisesProvider interface {
	KnownExercises(ctx context.Context, userID string) ([]analytics.KnownExercise, error)
}

// Service serves analysis reports, regenerating them once they are older
// than the staleness TTL. Fresh documents are kept in memory in front of the
// document store.
type Service struct {
	repo           documentsRepo
	sessions       sessionsLister
	known          knownExercisesProvider
	thresholds     analytics.Thresholds
	cache          *freecache.Cache
	regenerations  singleflight.Group
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo documentsRepo,
	sessions sessionsLister,
	known knownExercisesProvider,
	thresholds analytics.Thresholds,
	cacheSizeMB int,
	metricsManager *metrics.Manager,
) *Service {
	return NewServiceWithClock(repo, sessions, known, thresholds, cacheSizeMB, metricsManager, func() time.Time {
		// postgres keeps microseconds
		return time.Now().UTC().Truncate(time.Microsecond)
	})
}

func NewServiceWithClock(
	repo documentsRepo,
	sessions sessionsLister,
	known knownExercisesProvider,
	thresholds analytics.Thresholds,
	cacheSizeMB int,
	metricsManager *metrics.Manager,
	now func() time.Time,
) *Service {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 16
	}
	return &Service{
		repo:           repo,
		sessions:       sessions,
		known:          known,
		thresholds:     thresholds.OrDefaults(),
		cache:          freecache.NewCache(cacheBytes(cacheSizeMB)),
		metricsManager: metricsManager,
		now:            now,
	}
}

func cacheBytes(sizeMB int) int {
	size := sizeMB * megabyte
	if size < maxCachedEntry*1024 {
		size = maxCachedEntry * 1024
	}
	return size
}

func (s *Service) GetOrGenerateRecommendations(ctx context.Context, userID string) (_ *analytics.TrainingAnalysis, err error) {
	return s.recommendations(ctx, userID, false)
}

// RegenerateRecommendations rebuilds the report regardless of its age.
func (s *Service) RegenerateRecommendations(ctx context.Context, userID string) (_ *analytics.TrainingAnalysis, err error) {
	return s.recommendations(ctx, userID, true)
}

func (s *Service) GetOrGenerateMuscleAnalysis(ctx context.Context, userID string) (_ *analytics.MuscleAnalysis, err error) {
	return s.muscleAnalysis(ctx, userID, false)
}

// RegenerateMuscleAnalysis rebuilds the muscle analysis regardless of its age.
func (s *Service) RegenerateMuscleAnalysis(ctx context.Context, userID string) (_ *analytics.MuscleAnalysis, err error) {
	return s.muscleAnalysis(ctx, userID, true)
}

func (s *Service) recommendations(ctx context.Context, userID string, force bool) (_ *analytics.TrainingAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.analysis.recommendations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Bool("force", force))

	body, err := s.document(ctx, userID, KindRecommendations, force)
	if err != nil {
		return nil, err
	}

	var report analytics.TrainingAnalysis
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	return &report, nil
}

func (s *Service) muscleAnalysis(ctx context.Context, userID string, force bool) (_ *analytics.MuscleAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.analysis.muscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Bool("force", force))

	body, err := s.document(ctx, userID, KindMuscles, force)
	if err != nil {
		return nil, err
	}

	var report analytics.MuscleAnalysis
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("unmarshal muscle analysis: %w", err)
	}
	return &report, nil
}

func cacheKey(userID string, kind Kind) []byte {
	return []byte("gymstats::analysis::" + string(kind) + "::" + userID)
}

// document returns the JSON body of a fresh report, looking in memory, then
// in the document store, and regenerating it when neither holds a fresh one.
func (s *Service) document(ctx context.Context, userID string, kind Kind, force bool) ([]byte, error) {
	if !force {
		if body, ok := s.fromMemory(userID, kind); ok {
			return body, nil
		}

		doc, err := s.repo.Get(ctx, userID, kind)
		switch {
		case err == nil:
			if s.isFresh(doc.LastUpdated) {
				s.metricsManager.CounterAnalysisCacheHits.WithLabelValues(string(kind), metrics.CacheLayerDB).Inc()
				s.remember(userID, kind, doc.LastUpdated, doc.Body)
				return doc.Body, nil
			}
		case errors.Is(err, ErrDocumentNotFound):
		default:
			return nil, fmt.Errorf("get %s document: %w", kind, err)
		}
	}

	body, err, _ := s.regenerations.Do(string(cacheKey(userID, kind)), func() (any, error) {
		return s.regenerate(ctx, userID, kind)
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

type lastUpdatedHeader struct {
	LastUpdated time.Time `json:"lastUpdated"`
}

func (s *Service) fromMemory(userID string, kind Kind) ([]byte, bool) {
	key := cacheKey(userID, kind)
	compressed, err := s.cache.Get(key)
	if err != nil {
		return nil, false
	}
	body, err := decompress(compressed)
	if err != nil {
		log.Warnf("analysis cache get %s for %s: %s", kind, userID, err)
		s.cache.Del(key)
		return nil, false
	}

	// freecache expires by wall clock, the report age is checked against ours
	var header lastUpdatedHeader
	if err := json.Unmarshal(body, &header); err != nil || !s.isFresh(header.LastUpdated) {
		s.cache.Del(key)
		return nil, false
	}

	s.metricsManager.CounterAnalysisCacheHits.WithLabelValues(string(kind), metrics.CacheLayerMemory).Inc()
	return body, true
}

func (s *Service) remember(userID string, kind Kind, lastUpdated time.Time, body []byte) {
	remaining := lastUpdated.Add(s.thresholds.StalenessTTL()).Sub(s.now())
	expireSeconds := int(remaining.Seconds())
	if expireSeconds <= 0 {
		return
	}
	compressed, err := compress(body)
	if err != nil {
		log.Warnf("analysis cache compress %s for %s: %s", kind, userID, err)
		return
	}
	if err := s.cache.Set(cacheKey(userID, kind), compressed, expireSeconds); err != nil {
		log.Warnf("analysis cache set %s for %s (%d bytes): %s", kind, userID, len(compressed), err)
	}
}

// reports are repetitive JSON, compressed they stay far below maxCachedEntry
func compress(body []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	gzipWriter := gzip.NewWriter(buf)
	if _, err := gzipWriter.Write(body); err != nil {
		return nil, err
	}
	if err := gzipWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	gzipReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = gzipReader.Close()
	}()
	return io.ReadAll(gzipReader)
}

func (s *Service) isFresh(lastUpdated time.Time) bool {
	return s.now().Sub(lastUpdated) <= s.thresholds.StalenessTTL()
}

func (s *Service) regenerate(ctx context.Context, userID string, kind Kind) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.analysis.regenerate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("kind", string(kind)))

	start := time.Now()
	now := s.now()

	sessions, err := s.sessions.ListCompletedSessions(ctx, userID, now.Add(-s.thresholds.AnalysisWindow()))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))

	window := analytics.Aggregate(sessions, now, s.thresholds)
	for _, warning := range multierr.Errors(window.Warnings) {
		log.Warnf("analysis %s for %s: %s", kind, userID, warning)
	}

	var report any
	switch kind {
	case KindRecommendations:
		known, err := s.known.KnownExercises(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list known exercises: %w", err)
		}
		report = analytics.BuildTrainingAnalysis(userID, window, known, now, s.thresholds)
	case KindMuscles:
		report = analytics.BuildMuscleAnalysis(userID, window, now, s.thresholds)
	default:
		return nil, fmt.Errorf("unknown analysis kind %q", kind)
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", kind, err)
	}

	if err := s.repo.Upsert(ctx, Document{
		UserID:      userID,
		Kind:        kind,
		LastUpdated: now,
		Body:        body,
	}); err != nil {
		return nil, fmt.Errorf("persist %s document: %w", kind, err)
	}
	s.remember(userID, kind, now, body)

	s.metricsManager.CounterRegenerations.WithLabelValues(string(kind)).Inc()
	s.metricsManager.HistRegenerationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	return body, nil
}
