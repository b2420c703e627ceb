package workouts

import (
	"time"

	"github.com/google/uuid"
)

// Set is a single block of reps done with a given weight (kilos).
type Set struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// Volume is reps x weight; sets not marked as completed do not count.
func (s Set) Volume() float64 {
	if !s.Completed {
		return 0
	}
	return float64(s.Reps) * s.Weight
}

type ExerciseDefinition struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	MuscleGroup      string   `json:"muscleGroup"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
}

// SessionExercise is one exercise done within a session. Definition is
// populated by the store when listing sessions, and is nil when the exercise
// reference points to nothing.
type SessionExercise struct {
	ExerciseID string              `json:"exerciseId"`
	Definition *ExerciseDefinition `json:"definition,omitempty"`
	Sets       []Set               `json:"sets"`
}

// Volume returns the summed volume of all completed sets.
func (e SessionExercise) Volume() float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

func (e SessionExercise) MaxWeight() float64 {
	var maxWeight float64
	for _, s := range e.Sets {
		if s.Completed && s.Weight > maxWeight {
			maxWeight = s.Weight
		}
	}
	return maxWeight
}

func (e SessionExercise) MaxReps() int {
	maxReps := 0
	for _, s := range e.Sets {
		if s.Completed && s.Reps > maxReps {
			maxReps = s.Reps
		}
	}
	return maxReps
}

func (e SessionExercise) MaxSetVolume() float64 {
	var maxVolume float64
	for _, s := range e.Sets {
		if v := s.Volume(); v > maxVolume {
			maxVolume = v
		}
	}
	return maxVolume
}

// Name returns the definition name, or the exercise id if the definition is missing.
func (e SessionExercise) Name() string {
	if e.Definition != nil && e.Definition.Name != "" {
		return e.Definition.Name
	}
	return e.ExerciseID
}

// Session is a single workout. Once CompletedAt is set the session is immutable.
type Session struct {
	ID          uuid.UUID         `json:"id"`
	UserID      string            `json:"userId"`
	CreatedAt   time.Time         `json:"createdAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	Exercises   []SessionExercise `json:"exercises"`
}

func (s Session) IsCompleted() bool {
	return s.CompletedAt != nil && !s.CompletedAt.IsZero()
}
