package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymanalytics/internal/telemetry/tracing"
	"github.com/2beens/gymanalytics/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRecordNotFound          = errors.New("personal record not found")
	ErrSessionAlreadyProcessed = errors.New("workout session already processed")
	ErrSessionNotCompleted     = errors.New("workout session not completed")
)

// metricsDoc is the stored shape of the four metric records.
type metricsDoc struct {
	MaxWeight        Record `json:"maxWeight"`
	MaxReps          Record `json:"maxReps"`
	MaxSetVolume     Record `json:"maxSetVolume"`
	MaxSessionVolume Record `json:"maxSessionVolume"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID, exerciseID string) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, exercise_id, exercise_name, muscle_group, metrics, history, updated_at
			FROM personal_record
			WHERE user_id = $1 AND exercise_id = $2;`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prs, err := rows2records(rows)
	if err != nil {
		return nil, err
	}

	if len(prs) != 1 {
		return nil, ErrRecordNotFound
	}

	return &prs[0], nil
}

// ListForUser returns all the user's records, ordered by muscle group and exercise name.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, exercise_id, exercise_name, muscle_group, metrics, history, updated_at
			FROM personal_record
			WHERE user_id = $1
			ORDER BY muscle_group, exercise_name;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2records(rows)
}

// SaveCompletion stores the changed records of one completed session in a
// single transaction, together with a marker of the session. A session that
// was already processed fails with ErrSessionAlreadyProcessed and nothing is written.
func (r *Repo) SaveCompletion(
	ctx context.Context,
	userID string,
	sessionID uuid.UUID,
	records []PersonalRecord,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.records.save-completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("session_id", sessionID.String()))
	span.SetAttributes(attribute.Int("records.count", len(records)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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
		`INSERT INTO pr_processed_session (session_id, user_id) VALUES ($1, $2);`,
		sessionID, userID,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrSessionAlreadyProcessed
		}
		return fmt.Errorf("mark session processed: %w", err)
	}

	for _, pr := range records {
		metricsJson, marshalErr := json.Marshal(metricsDoc{
			MaxWeight:        pr.MaxWeight,
			MaxReps:          pr.MaxReps,
			MaxSetVolume:     pr.MaxSetVolume,
			MaxSessionVolume: pr.MaxSessionVolume,
		})
		if marshalErr != nil {
			return fmt.Errorf("marshal metrics: %w", marshalErr)
		}
		history := pr.History
		if history == nil {
			history = []HistoryEntry{}
		}
		historyJson, marshalErr := json.Marshal(history)
		if marshalErr != nil {
			return fmt.Errorf("marshal history: %w", marshalErr)
		}

		if _, err = tx.Exec(
			ctx,
			`INSERT INTO personal_record
					(user_id, exercise_id, exercise_name, muscle_group, metrics, history, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (user_id, exercise_id) DO UPDATE SET
					exercise_name = EXCLUDED.exercise_name,
					muscle_group = EXCLUDED.muscle_group,
					metrics = EXCLUDED.metrics,
					history = EXCLUDED.history,
					updated_at = EXCLUDED.updated_at;`,
			userID, pr.ExerciseID, pr.ExerciseName, pr.MuscleGroup, metricsJson, historyJson, pr.UpdatedAt,
		); err != nil {
			return fmt.Errorf("upsert record %s: %w", pr.ExerciseID, err)
		}
	}

	return nil
}

func rows2records(rows pgx.Rows) ([]PersonalRecord, error) {
	prs := make([]PersonalRecord, 0)
	for rows.Next() {
		var (
			pr          PersonalRecord
			metricsJson []byte
			historyJson []byte
		)
		if err := rows.Scan(
			&pr.UserID, &pr.ExerciseID, &pr.ExerciseName, &pr.MuscleGroup,
			&metricsJson, &historyJson, &pr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		var metrics metricsDoc
		if err := json.Unmarshal(metricsJson, &metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics of %s: %w", pr.ExerciseID, err)
		}
		pr.MaxWeight = metrics.MaxWeight
		pr.MaxReps = metrics.MaxReps
		pr.MaxSetVolume = metrics.MaxSetVolume
		pr.MaxSessionVolume = metrics.MaxSessionVolume

		pr.History = []HistoryEntry{}
		if err := json.Unmarshal(historyJson, &pr.History); err != nil {
			return nil, fmt.Errorf("unmarshal history of %s: %w", pr.ExerciseID, err)
		}

		prs = append(prs, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prs, nil
}
