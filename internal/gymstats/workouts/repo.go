package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymanalytics/internal/telemetry/tracing"
	"github.com/2beens/gymanalytics/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound  = errors.New("workout session not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrSessionCompleted = errors.New("workout session already completed")
	ErrInvalidSession   = errors.New("invalid workout session")
	ErrInvalidExercise  = errors.New("invalid exercise definition")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const selectSessionsQuery = `
	SELECT
		s.id, s.user_id, s.created_at, s.completed_at,
		se.exercise_id, se.sets,
		d.id, d.name, d.muscle_group, d.primary_muscles, d.secondary_muscles
	FROM workout_session s
	LEFT JOIN session_exercise se ON se.session_id = s.id
	LEFT JOIN exercise_definition d ON d.id = se.exercise_id
`

// ListCompletedSessions returns the user's sessions completed at or after
// since, oldest first, with exercise definitions attached.
func (r *Repo) ListCompletedSessions(
	ctx context.Context,
	userID string,
	since time.Time,
) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.list-completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(
		ctx,
		selectSessionsQuery+`
			WHERE s.user_id = $1
				AND s.completed_at IS NOT NULL
				AND s.completed_at >= $2
			ORDER BY s.completed_at ASC, s.id, se.position;`,
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))

	return sessions, nil
}

func (r *Repo) GetSession(ctx context.Context, id uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", id.String()))

	rows, err := r.db.Query(
		ctx,
		selectSessionsQuery+`
			WHERE s.id = $1
			ORDER BY se.position;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

// AddSession stores a new session with its exercises. The id is generated
// when not set.
func (r *Repo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateSession(session); err != nil {
		return nil, err
	}

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	span.SetAttributes(attribute.String("session_id", session.ID.String()))
	span.SetAttributes(attribute.String("user_id", session.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO workout_session (id, user_id, created_at, completed_at)
			VALUES ($1, $2, $3, $4);`,
		session.ID, session.UserID, session.CreatedAt, session.CompletedAt,
	); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	for i, ex := range session.Exercises {
		setsJson, marshalErr := json.Marshal(ex.Sets)
		if marshalErr != nil {
			err = fmt.Errorf("marshal sets: %w", marshalErr)
			return nil, err
		}
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO session_exercise (session_id, position, exercise_id, sets)
				VALUES ($1, $2, $3, $4);`,
			session.ID, i, ex.ExerciseID, setsJson,
		); err != nil {
			return nil, fmt.Errorf("insert session exercise %s: %w", ex.ExerciseID, err)
		}
	}

	return &session, nil
}

// CompleteSession marks the session completed. A session can be completed
// only once, after that it is immutable.
func (r *Repo) CompleteSession(
	ctx context.Context,
	id uuid.UUID,
	completedAt time.Time,
) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET completed_at = $1
			WHERE id = $2 AND completed_at IS NULL;`,
		completedAt, id,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM workout_session WHERE id = $1);`,
			id,
		).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check session exists: %w", err)
		}
		if !exists {
			return nil, ErrSessionNotFound
		}
		return nil, ErrSessionCompleted
	}

	return r.GetSession(ctx, id)
}

func (r *Repo) GetExerciseDefinition(ctx context.Context, id string) (_ *ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.definitions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", id))

	def := &ExerciseDefinition{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, muscle_group, primary_muscles, secondary_muscles
			FROM exercise_definition
			WHERE id = $1;`,
		id,
	).Scan(&def.ID, &def.Name, &def.MuscleGroup, &def.PrimaryMuscles, &def.SecondaryMuscles)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return def, nil
}

func (r *Repo) ListExerciseDefinitions(ctx context.Context) (_ []ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.definitions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, primary_muscles, secondary_muscles
			FROM exercise_definition
			ORDER BY muscle_group, name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs := make([]ExerciseDefinition, 0)
	for rows.Next() {
		var def ExerciseDefinition
		if err := rows.Scan(&def.ID, &def.Name, &def.MuscleGroup, &def.PrimaryMuscles, &def.SecondaryMuscles); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}

// AddExerciseDefinition inserts the definition, or replaces the one with the same id.
func (r *Repo) AddExerciseDefinition(ctx context.Context, def ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.definitions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", def.ID))

	if def.ID == "" || def.Name == "" || def.MuscleGroup == "" {
		return fmt.Errorf("id, name and muscle group are required: %w", ErrInvalidExercise)
	}
	if def.PrimaryMuscles == nil {
		def.PrimaryMuscles = []string{}
	}
	if def.SecondaryMuscles == nil {
		def.SecondaryMuscles = []string{}
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_definition (id, name, muscle_group, primary_muscles, secondary_muscles)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				muscle_group = EXCLUDED.muscle_group,
				primary_muscles = EXCLUDED.primary_muscles,
				secondary_muscles = EXCLUDED.secondary_muscles;`,
		def.ID, def.Name, def.MuscleGroup, def.PrimaryMuscles, def.SecondaryMuscles,
	)
	return err
}

// rows2sessions folds the joined session rows into sessions. Rows of one
// session must be adjacent.
func rows2sessions(rows pgx.Rows) ([]Session, error) {
	sessions := make([]Session, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			userID      string
			createdAt   time.Time
			completedAt *time.Time
			exerciseID  *string
			setsJson    []byte
			defID       *string
			defName     *string
			muscleGroup *string
			primary     []string
			secondary   []string
		)
		if err := rows.Scan(
			&id, &userID, &createdAt, &completedAt,
			&exerciseID, &setsJson,
			&defID, &defName, &muscleGroup, &primary, &secondary,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if len(sessions) == 0 || sessions[len(sessions)-1].ID != id {
			sessions = append(sessions, Session{
				ID:          id,
				UserID:      userID,
				CreatedAt:   createdAt,
				CompletedAt: completedAt,
				Exercises:   []SessionExercise{},
			})
		}

		// session without exercises
		if exerciseID == nil {
			continue
		}

		ex := SessionExercise{
			ExerciseID: *exerciseID,
			Sets:       []Set{},
		}
		if len(setsJson) > 0 {
			if err := json.Unmarshal(setsJson, &ex.Sets); err != nil {
				return nil, fmt.Errorf("unmarshal sets of %s: %w", *exerciseID, err)
			}
		}
		if defID != nil {
			ex.Definition = &ExerciseDefinition{
				ID:               *defID,
				Name:             deref(defName),
				MuscleGroup:      deref(muscleGroup),
				PrimaryMuscles:   primary,
				SecondaryMuscles: secondary,
			}
		}

		current := &sessions[len(sessions)-1]
		current.Exercises = append(current.Exercises, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ValidateSession checks a session before it is stored.
func ValidateSession(session Session) error {
	if session.UserID == "" {
		return fmt.Errorf("missing user id: %w", ErrInvalidSession)
	}
	for i, ex := range session.Exercises {
		if ex.ExerciseID == "" {
			return fmt.Errorf("exercise %d: missing exercise id: %w", i, ErrInvalidSession)
		}
		for j, s := range ex.Sets {
			if s.Reps < 0 || s.Weight < 0 {
				return fmt.Errorf("exercise %s set %d: negative reps or weight: %w", ex.ExerciseID, j, ErrInvalidSession)
			}
		}
	}
	return nil
}
