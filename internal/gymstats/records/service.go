package records

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/2beens/gymanalytics/internal/gymstats/analytics"
	"github.com/2beens/gymanalytics/internal/gymstats/workouts"
	"github.com/2beens/gymanalytics/internal/telemetry/metrics"
	"github.com/2beens/gymanalytics/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=records_test

type recordsRepo interface {
	Get(ctx context.Context, userID, exerciseID string) (*PersonalRecord, error)
	ListForUser(ctx context.Context, userID string) ([]PersonalRecord, error)
	SaveCompletion(ctx context.Context, userID string, sessionID uuid.UUID, prs []PersonalRecord) error
}

type definitionsRepo interface {
	GetExerciseDefinition(ctx context.Context, id string) (*workouts.ExerciseDefinition, error)
}

type achievementsFeed interface {
	Push(ctx context.Context, userID string, updates []MetricUpdate) error
	Recent(ctx context.Context, userID string, limit int64) ([]MetricUpdate, error)
}

type Service struct {
	repo           recordsRepo
	definitions    definitionsRepo
	feed           achievementsFeed
	metricsManager *metrics.Manager
}

func NewService(
	repo recordsRepo,
	definitions definitionsRepo,
	feed achievementsFeed,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		definitions:    definitions,
		feed:           feed,
		metricsManager: metricsManager,
	}
}

// RecordWorkoutCompletion updates the user's personal records with everything
// achieved in a completed session. A session is processed once; processing
// it again returns ErrSessionAlreadyProcessed and changes nothing.
func (s *Service) RecordWorkoutCompletion(
	ctx context.Context,
	session workouts.Session,
) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.record-completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", session.UserID))
	span.SetAttributes(attribute.String("session_id", session.ID.String()))

	if !session.IsCompleted() {
		return nil, ErrSessionNotCompleted
	}
	completedAt := *session.CompletedAt

	var (
		changed []PersonalRecord
		updates = make([]MetricUpdate, 0)
	)
	for _, ex := range mergeExercises(session.Exercises) {
		def, err := s.definitionFor(ctx, ex)
		if err != nil {
			if errors.Is(err, workouts.ErrExerciseNotFound) {
				log.Warnf("record completion, session %s: skipping exercise %q: %s", session.ID, ex.ExerciseID, err)
				s.metricsManager.CounterSkippedEntries.Inc()
				continue
			}
			return nil, fmt.Errorf("get exercise definition %s: %w", ex.ExerciseID, err)
		}

		pr, err := s.repo.Get(ctx, session.UserID, def.ID)
		if err != nil {
			if !errors.Is(err, ErrRecordNotFound) {
				return nil, fmt.Errorf("get personal record %s: %w", def.ID, err)
			}
			pr = NewPersonalRecord(session.UserID, *def)
		}
		pr.ExerciseName = def.Name
		pr.MuscleGroup = def.MuscleGroup

		exUpdates := Apply(pr, CandidatesFor(ex), completedAt, session.ID)
		if len(exUpdates) == 0 {
			continue
		}
		changed = append(changed, *pr)
		updates = append(updates, exUpdates...)
	}

	if err := s.repo.SaveCompletion(ctx, session.UserID, session.ID, changed); err != nil {
		return nil, err
	}

	for _, u := range updates {
		s.metricsManager.CounterPRUpdates.WithLabelValues(string(u.Type)).Inc()
	}
	span.SetAttributes(attribute.Int("pr_updates.count", len(updates)))

	if err := s.feed.Push(ctx, session.UserID, updates); err != nil {
		log.Errorf("record completion, session %s: push achievements: %s", session.ID, err)
	}

	return &CompletionResult{
		SessionID: session.ID,
		PRUpdates: updates,
	}, nil
}

func (s *Service) definitionFor(ctx context.Context, ex workouts.SessionExercise) (*workouts.ExerciseDefinition, error) {
	if ex.ExerciseID == "" {
		return nil, fmt.Errorf("missing exercise id: %w", workouts.ErrExerciseNotFound)
	}
	if ex.Definition != nil {
		return ex.Definition, nil
	}
	return s.definitions.GetExerciseDefinition(ctx, ex.ExerciseID)
}

// mergeExercises joins the sets of an exercise done more than once in a
// session, so candidates are computed over the whole session.
func mergeExercises(exercises []workouts.SessionExercise) []workouts.SessionExercise {
	merged := make([]workouts.SessionExercise, 0, len(exercises))
	index := make(map[string]int)
	for _, ex := range exercises {
		if i, ok := index[ex.ExerciseID]; ok && ex.ExerciseID != "" {
			merged[i].Sets = append(merged[i].Sets, ex.Sets...)
			if merged[i].Definition == nil {
				merged[i].Definition = ex.Definition
			}
			continue
		}
		index[ex.ExerciseID] = len(merged)
		ex.Sets = append([]workouts.Set(nil), ex.Sets...)
		merged = append(merged, ex)
	}
	return merged
}

// GetPersonalRecord returns the user's record for an exercise, or an empty
// one when nothing was recorded yet.
func (s *Service) GetPersonalRecord(
	ctx context.Context,
	userID, exerciseID string,
) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	def, err := s.definitions.GetExerciseDefinition(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	pr, err := s.repo.Get(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return NewPersonalRecord(userID, *def), nil
		}
		return nil, err
	}

	return pr, nil
}

// GetAllPersonalRecords returns the user's records grouped by muscle group.
// Groups are sorted by name, records within a group by exercise name.
func (s *Service) GetAllPersonalRecords(ctx context.Context, userID string) (_ []MuscleGroupRecords, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.get-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	prs, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]PersonalRecord)
	for _, pr := range prs {
		byGroup[pr.MuscleGroup] = append(byGroup[pr.MuscleGroup], pr)
	}

	groups := make([]MuscleGroupRecords, 0, len(byGroup))
	for group, groupRecords := range byGroup {
		sort.SliceStable(groupRecords, func(i, j int) bool {
			return groupRecords[i].ExerciseName < groupRecords[j].ExerciseName
		})
		groups = append(groups, MuscleGroupRecords{
			MuscleGroup: group,
			Records:     groupRecords,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].MuscleGroup < groups[j].MuscleGroup
	})

	return groups, nil
}

// KnownExercises lists every exercise the user holds a record for, with the
// date of its latest improvement.
func (s *Service) KnownExercises(ctx context.Context, userID string) (_ []analytics.KnownExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.known-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prs, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	known := make([]analytics.KnownExercise, 0, len(prs))
	for _, pr := range prs {
		known = append(known, analytics.KnownExercise{
			ExerciseID:   pr.ExerciseID,
			ExerciseName: pr.ExerciseName,
			MuscleGroup:  pr.MuscleGroup,
			LastPRDate:   pr.LastImproved(),
		})
	}
	return known, nil
}

func (s *Service) RecentAchievements(ctx context.Context, userID string, limit int64) (_ []MetricUpdate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.recent-achievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.feed.Recent(ctx, userID, limit)
}
