package records

import (
	"math"
	"time"

	"github.com/2beens/gymanalytics/internal/gymstats/workouts"

	"github.com/google/uuid"
)

// Candidates are the values a single session exercise achieved.
type Candidates struct {
	MaxWeight     float64
	MaxReps       float64
	MaxSetVolume  float64
	SessionVolume float64
}

func (c Candidates) Value(t MetricType) float64 {
	switch t {
	case MetricMaxWeight:
		return c.MaxWeight
	case MetricMaxReps:
		return c.MaxReps
	case MetricMaxSetVolume:
		return c.MaxSetVolume
	case MetricMaxSessionVolume:
		return c.SessionVolume
	default:
		return 0
	}
}

// CandidatesFor computes the candidates over the completed sets only.
func CandidatesFor(ex workouts.SessionExercise) Candidates {
	return Candidates{
		MaxWeight:     ex.MaxWeight(),
		MaxReps:       float64(ex.MaxReps()),
		MaxSetVolume:  ex.MaxSetVolume(),
		SessionVolume: ex.Volume(),
	}
}

// Apply updates pr with every candidate strictly greater than the stored
// value, and appends a history entry for each. Ties and lower values leave the
// record untouched, so stored values never decrease.
func Apply(pr *PersonalRecord, c Candidates, date time.Time, sessionID uuid.UUID) []MetricUpdate {
	var updates []MetricUpdate
	for _, t := range Metrics {
		candidate := c.Value(t)
		stored := pr.Metric(t)
		if !(candidate > stored.Value) {
			continue
		}

		previous := stored.Value
		pct := improvementPct(previous, candidate)
		*stored = Record{
			Value:     candidate,
			Date:      date,
			SessionID: sessionID,
		}

		pr.History = append(pr.History, HistoryEntry{
			Type:           t,
			Value:          candidate,
			PreviousValue:  previous,
			ImprovementPct: pct,
			Date:           date,
			SessionID:      sessionID,
		})
		updates = append(updates, MetricUpdate{
			ExerciseID:     pr.ExerciseID,
			ExerciseName:   pr.ExerciseName,
			Type:           t,
			Value:          candidate,
			PreviousValue:  previous,
			ImprovementPct: pct,
			Date:           date,
			SessionID:      sessionID,
		})
	}

	if len(updates) > 0 {
		pr.UpdatedAt = date
	}

	return updates
}

func improvementPct(previous, current float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

// NextMilestones returns the next count round targets strictly above current,
// spaced by step.
func NextMilestones(current, step float64, count int) []float64 {
	if step <= 0 || count <= 0 || math.IsNaN(current) || math.IsInf(current, 0) {
		return nil
	}

	next := (math.Floor(current/step) + 1) * step
	milestones := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		milestones = append(milestones, next)
		next += step
	}
	return milestones
}
