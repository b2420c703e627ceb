package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymanalytics/internal/telemetry/tracing"
	"github.com/2beens/gymanalytics/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddSession(ctx context.Context, session Session) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	ListExerciseDefinitions(ctx context.Context) ([]ExerciseDefinition, error)
	AddExerciseDefinition(ctx context.Context, def ExerciseDefinition) error
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.add")
	defer span.End()

	userID, ok := pkg.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("add workout session, unmarshal json: %s", err)
		http.Error(w, "invalid workout session", http.StatusBadRequest)
		return
	}
	// sessions are created open; completion goes through its own endpoint
	session.UserID = userID
	session.CompletedAt = nil

	added, err := h.repo.AddSession(ctx, session)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add workout session: %s", err)
		http.Error(w, "add workout session failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.get")
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

	session, err := h.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout session %s: %s", id, err)
		http.Error(w, "get workout session failed", http.StatusInternalServerError)
		return
	}

	if session.UserID != userID {
		http.Error(w, "workout session not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleListDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.definitions.list")
	defer span.End()

	defs, err := h.repo.ListExerciseDefinitions(ctx)
	if err != nil {
		log.Errorf("list exercise definitions: %s", err)
		http.Error(w, "list exercise definitions failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, defs, http.StatusOK)
}

func (h *Handler) HandleAddDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.definitions.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var def ExerciseDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Errorf("add exercise definition, unmarshal json: %s", err)
		http.Error(w, "invalid exercise definition", http.StatusBadRequest)
		return
	}

	if err := h.repo.AddExerciseDefinition(ctx, def); err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add exercise definition %s: %s", def.ID, err)
		http.Error(w, "add exercise definition failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, def, http.StatusCreated)
}
