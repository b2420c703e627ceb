package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymanalytics/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	achievementsKeyPrefix = "gymstats::achievements::"
	// DefaultFeedLength is the number of achievements kept per user
	DefaultFeedLength = 50
)

// Feed keeps the latest personal record improvements of every user in a
// capped redis list, newest first.
type Feed struct {
	rdb    *redis.Client
	maxLen int64
}

func NewFeed(rdb *redis.Client, maxLen int64) *Feed {
	if maxLen <= 0 {
		maxLen = DefaultFeedLength
	}
	return &Feed{
		rdb:    rdb,
		maxLen: maxLen,
	}
}

func achievementsKey(userID string) string {
	return achievementsKeyPrefix + userID
}

func (f *Feed) Push(ctx context.Context, userID string, updates []MetricUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feed.gymstats.records.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("updates.count", len(updates)))

	if len(updates) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(updates))
	for _, u := range updates {
		payload, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("marshal achievement: %w", err)
		}
		values = append(values, string(payload))
	}

	key := achievementsKey(userID)
	if err := f.rdb.LPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("push achievements: %w", err)
	}
	if err := f.rdb.LTrim(ctx, key, 0, f.maxLen-1).Err(); err != nil {
		return fmt.Errorf("trim achievements: %w", err)
	}

	return nil
}

// Recent returns up to limit latest achievements, newest first.
func (f *Feed) Recent(ctx context.Context, userID string, limit int64) (_ []MetricUpdate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feed.gymstats.records.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	if limit <= 0 || limit > f.maxLen {
		limit = f.maxLen
	}

	raw, err := f.rdb.LRange(ctx, achievementsKey(userID), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	achievements := make([]MetricUpdate, 0, len(raw))
	for _, r := range raw {
		var u MetricUpdate
		if err := json.Unmarshal([]byte(r), &u); err != nil {
			return nil, fmt.Errorf("unmarshal achievement: %w", err)
		}
		achievements = append(achievements, u)
	}

	return achievements, nil
}
