package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymanalytics/internal/telemetry/tracing"
	"github.com/2beens/gymanalytics/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrDocumentNotFound = errors.New("analysis document not found")

type Kind string

const (
	KindRecommendations Kind = "recommendations"
	KindMuscles         Kind = "muscles"
)

// Document is a stored analysis report. Body holds the JSON of the whole report.
type Document struct {
	UserID      string
	Kind        Kind
	LastUpdated time.Time
	Body        []byte
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string, kind Kind) (_ *Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.analysis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("kind", string(kind)))

	doc := Document{
		UserID: userID,
		Kind:   kind,
	}
	if err := r.db.QueryRow(
		ctx,
		`SELECT last_updated, document FROM analysis_document WHERE user_id = $1 AND kind = $2;`,
		userID, kind,
	).Scan(&doc.LastUpdated, &doc.Body); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return &doc, nil
}

// Upsert replaces the stored document of the user and kind.
func (r *Repo) Upsert(ctx context.Context, doc Document) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.analysis.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", doc.UserID))
	span.SetAttributes(attribute.String("kind", string(doc.Kind)))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO analysis_document (user_id, kind, last_updated, document)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, kind) DO UPDATE SET
				last_updated = EXCLUDED.last_updated,
				document = EXCLUDED.document;`,
		doc.UserID, doc.Kind, doc.LastUpdated, doc.Body,
	)
	return err
}
