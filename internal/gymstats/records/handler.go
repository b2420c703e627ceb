package records

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymanalytics/internal/gymstats/workouts"
	"github.com/2beens/gymanalytics/internal/telemetry/tracing"
	"github.com/2beens/gymanalytics/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

const (
	milestoneStepKg   = 5
	milestonesCount   = 3
	defaultFeedLimit  = 20
	defaultFeedMaxLen = DefaultFeedLength
)

type recordsService interface {
	RecordWorkoutCompletion(ctx context.Context, session workouts.Session) (*CompletionResult, error)
	GetPersonalRecord(ctx context.Context, userID, exerciseID string) (*PersonalRecord, error)
	GetAllPersonalRecords(ctx context.Context, userID string) ([]MuscleGroupRecords, error)
	RecentAchievements(ctx context.Context, userID string, limit int64) ([]MetricUpdate, error)
}

type sessionStore interface {
	GetSession(ctx context.Context, id uuid.UUID) (*workouts.Session, error)
	CompleteSession(ctx context.Context, id uuid.UUID, completedAt time.Time) (*workouts.Session, error)
}

type Handler struct {
	service  recordsService
	sessions sessionStore
	now      func() time.Time
}

func NewHandler(service recordsService, sessions sessionStore) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type PersonalRecordResponse struct {
	*PersonalRecord
	NextWeightMilestones []float64 `json:"nextWeightMilestones"`
}

// HandleCompleteWorkout completes a session and records its personal records.
// Completing an already completed session retries the record step. When the
// records were already updated for it, the retry answers with no updates.
func (h *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.complete")
	defer span.End()

	userID, ok := pkg.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, workouts.ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("complete workout, get session %s: %s", id, err)
		http.Error(w, "complete workout failed", http.StatusInternalServerError)
		return
	}
	if session.UserID != userID {
		http.Error(w, "workout session not found", http.StatusNotFound)
		return
	}

	if !session.IsCompleted() {
		completed, err := h.sessions.CompleteSession(ctx, id, h.now())
		switch {
		case err == nil:
			session = completed
		case errors.Is(err, workouts.ErrSessionCompleted):
			// completed concurrently, reload to get the stored completion time
			if session, err = h.sessions.GetSession(ctx, id); err != nil {
				log.Errorf("complete workout, reload session %s: %s", id, err)
				http.Error(w, "complete workout failed", http.StatusInternalServerError)
				return
			}
		default:
			log.Errorf("complete workout %s: %s", id, err)
			http.Error(w, "complete workout failed", http.StatusInternalServerError)
			return
		}
	}

	result, err := h.service.RecordWorkoutCompletion(ctx, *session)
	if err != nil {
		if errors.Is(err, ErrSessionAlreadyProcessed) {
			pkg.WriteJSON(w, CompletionResult{
				SessionID: session.ID,
				PRUpdates: []MetricUpdate{},
			}, http.StatusOK)
			return
		}
		log.Errorf("complete workout %s, record completion: %s", id, err)
		http.Error(w, "complete workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.records.get-all")
	defer span.End()

	userID, ok := pkg.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	groups, err := h.service.GetAllPersonalRecords(ctx, userID)
	if err != nil {
		log.Errorf("get all personal records for %s: %s", userID, err)
		http.Error(w, "get personal records failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) HandleGetForExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.records.get")
	defer span.End()

	userID, ok := pkg.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "missing exercise id", http.StatusBadRequest)
		return
	}

	pr, err := h.service.GetPersonalRecord(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, workouts.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get personal record %s for %s: %s", exerciseID, userID, err)
		http.Error(w, "get personal record failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, PersonalRecordResponse{
		PersonalRecord:       pr,
		NextWeightMilestones: NextMilestones(pr.MaxWeight.Value, milestoneStepKg, milestonesCount),
	}, http.StatusOK)
}

func (h *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.records.achievements")
	defer span.End()

	userID, ok := pkg.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	limit := int64(defaultFeedLimit)
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.ParseInt(limitParam, 10, 64)
		if err != nil || parsed <= 0 || parsed > defaultFeedMaxLen {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	achievements, err := h.service.RecentAchievements(ctx, userID, limit)
	if err != nil {
		log.Errorf("recent achievements for %s: %s", userID, err)
		http.Error(w, "get achievements failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, achievements, http.StatusOK)
}
