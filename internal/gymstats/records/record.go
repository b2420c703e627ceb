package records

import (
	"time"

	"github.com/2beens/gymanalytics/internal/gymstats/workouts"

	"github.com/google/uuid"
)

type MetricType string

const (
	MetricMaxWeight        MetricType = "maxWeight"
	MetricMaxReps          MetricType = "maxReps"
	MetricMaxSetVolume     MetricType = "maxSetVolume"
	MetricMaxSessionVolume MetricType = "maxSessionVolume"
)

// Metrics lists all tracked metrics, in the order updates are reported.
var Metrics = []MetricType{
	MetricMaxWeight,
	MetricMaxReps,
	MetricMaxSetVolume,
	MetricMaxSessionVolume,
}

// Record is the best value of one metric. The zero value means no record yet.
type Record struct {
	Value     float64   `json:"value"`
	Date      time.Time `json:"date,omitzero"`
	SessionID uuid.UUID `json:"sessionId,omitzero"`
}

type HistoryEntry struct {
	Type          MetricType `json:"type"`
	Value         float64    `json:"value"`
	PreviousValue float64    `json:"previousValue"`
	// ImprovementPct is nil when there was no previous value to improve on
	ImprovementPct *float64  `json:"improvementPct"`
	Date           time.Time `json:"date"`
	SessionID      uuid.UUID `json:"sessionId"`
}

type PersonalRecord struct {
	UserID           string         `json:"userId"`
	ExerciseID       string         `json:"exerciseId"`
	ExerciseName     string         `json:"exerciseName"`
	MuscleGroup      string         `json:"muscleGroup"`
	MaxWeight        Record         `json:"maxWeight"`
	MaxReps          Record         `json:"maxReps"`
	MaxSetVolume     Record         `json:"maxSetVolume"`
	MaxSessionVolume Record         `json:"maxSessionVolume"`
	History          []HistoryEntry `json:"history"`
	UpdatedAt        time.Time      `json:"updatedAt,omitzero"`
}

// NewPersonalRecord returns an empty record: all metrics at 0, no history.
func NewPersonalRecord(userID string, def workouts.ExerciseDefinition) *PersonalRecord {
	return &PersonalRecord{
		UserID:       userID,
		ExerciseID:   def.ID,
		ExerciseName: def.Name,
		MuscleGroup:  def.MuscleGroup,
		History:      []HistoryEntry{},
	}
}

func (pr *PersonalRecord) Metric(t MetricType) *Record {
	switch t {
	case MetricMaxWeight:
		return &pr.MaxWeight
	case MetricMaxReps:
		return &pr.MaxReps
	case MetricMaxSetVolume:
		return &pr.MaxSetVolume
	case MetricMaxSessionVolume:
		return &pr.MaxSessionVolume
	default:
		return nil
	}
}

// LastImproved returns the date of the most recent improvement, nil if there was none.
func (pr *PersonalRecord) LastImproved() *time.Time {
	var last *time.Time
	for _, t := range Metrics {
		r := pr.Metric(t)
		if r.Date.IsZero() {
			continue
		}
		if last == nil || r.Date.After(*last) {
			d := r.Date
			last = &d
		}
	}
	return last
}

// MetricUpdate describes one strict improvement of a metric.
type MetricUpdate struct {
	ExerciseID     string     `json:"exerciseId"`
	ExerciseName   string     `json:"exerciseName"`
	Type           MetricType `json:"type"`
	Value          float64    `json:"value"`
	PreviousValue  float64    `json:"previousValue"`
	ImprovementPct *float64   `json:"improvementPct"`
	Date           time.Time  `json:"date"`
	SessionID      uuid.UUID  `json:"sessionId"`
}

type MuscleGroupRecords struct {
	MuscleGroup string           `json:"muscleGroup"`
	Records     []PersonalRecord `json:"records"`
}

type CompletionResult struct {
	SessionID uuid.UUID      `json:"sessionId"`
	PRUpdates []MetricUpdate `json:"prUpdates"`
}
