package analysis

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/gymanalytics/internal/gymstats/analytics"
	"github.com/2beens/gymanalytics/internal/telemetry/metrics"
	"github.com/2beens/gymanalytics/internal/telemetry/tracing"
	"github.com/2beens/gymanalytics/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analysis_test

type analysisService interface {
	GetOrGenerateRecommendations(ctx context.Context, userID string) (*analytics.TrainingAnalysis, error)
	RegenerateRecommendations(ctx context.Context, userID string) (*analytics.TrainingAnalysis, error)
	GetOrGenerateMuscleAnalysis(ctx context.Context, userID string) (*analytics.MuscleAnalysis, error)
	RegenerateMuscleAnalysis(ctx context.Context, userID string) (*analytics.MuscleAnalysis, error)
}

type refreshLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type Handler struct {
	service          analysisService
	limiter          refreshLimiter
	refreshPerMinute int
	metricsManager   *metrics.Manager
}

func NewHandler(
	service analysisService,
	limiter refreshLimiter,
	refreshPerMinute int,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:          service,
		limiter:          limiter,
		refreshPerMinute: refreshPerMinute,
		metricsManager:   metricsManager,
	}
}

func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.analysis.recommendations")
	defer span.End()

	userID, refresh, ok := h.parseRequest(ctx, w, r)
	if !ok {
		return
	}

	var (
		report *analytics.TrainingAnalysis
		err    error
	)
	if refresh {
		report, err = h.service.RegenerateRecommendations(ctx, userID)
	} else {
		report, err = h.service.GetOrGenerateRecommendations(ctx, userID)
	}
	if err != nil {
		log.Errorf("get recommendations for %s: %s", userID, err)
		http.Error(w, "get recommendations failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) HandleMuscleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.analysis.muscles")
	defer span.End()

	userID, refresh, ok := h.parseRequest(ctx, w, r)
	if !ok {
		return
	}

	var (
		report *analytics.MuscleAnalysis
		err    error
	)
	if refresh {
		report, err = h.service.RegenerateMuscleAnalysis(ctx, userID)
	} else {
		report, err = h.service.GetOrGenerateMuscleAnalysis(ctx, userID)
	}
	if err != nil {
		log.Errorf("get muscle analysis for %s: %s", userID, err)
		http.Error(w, "get muscle analysis failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

// parseRequest reads the user and the refresh flag, and writes the error
// response itself when the request cannot proceed.
func (h *Handler) parseRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool, bool) {
	userID, ok := pkg.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return "", false, false
	}

	refresh := false
	if refreshParam := r.URL.Query().Get("refresh"); refreshParam != "" {
		parsed, err := strconv.ParseBool(refreshParam)
		if err != nil {
			http.Error(w, "invalid refresh param", http.StatusBadRequest)
			return "", false, false
		}
		refresh = parsed
	}
	if !refresh {
		return userID, false, true
	}

	res, err := h.limiter.Allow(ctx, "gymstats::analysis::refresh::"+userID, redis_rate.PerMinute(h.refreshPerMinute))
	if err != nil {
		log.Errorf("refresh rate limit for %s: %s", userID, err)
		http.Error(w, "rate limit internal error", http.StatusInternalServerError)
		return "", false, false
	}
	if res.Allowed <= 0 {
		h.metricsManager.CounterRateLimitedRequests.Inc()
		http.Error(
			w,
			fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()),
			http.StatusTooManyRequests,
		)
		return "", false, false
	}

	return userID, true, true
}
