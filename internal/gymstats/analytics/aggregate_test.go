package analytics_test

import (
	"testing"

	"github.com/2beens/gymanalytics/internal/gymstats/analytics"
	"github.com/2beens/gymanalytics/internal/gymstats/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestAggregate_EmptyHistory(t *testing.T) {
	w := analytics.Aggregate(nil, testNow, analytics.DefaultThresholds())
	require.NotNil(t, w)
	assert.Empty(t, w.MuscleGroups())
	assert.Empty(t, w.Exercises())
	assert.Zero(t, w.TotalVolume())
	assert.NoError(t, w.Warnings)
	assert.Equal(t, testNow, w.End)
	assert.Equal(t, daysAgo(30), w.Start)
}

func TestAggregate_WeeklyAndMonthly(t *testing.T) {
	sessions := []workouts.Session{
		completedSession(daysAgo(20), exercise(defBench, set(10, 100))),
		completedSession(daysAgo(3), exercise(defBench, set(10, 80), set(5, 100))),
		completedSession(daysAgo(45), exercise(defBench, set(10, 200))),
	}

	w := analytics.Aggregate(sessions, testNow, analytics.DefaultThresholds())
	assert.Equal(t, []string{"Chest"}, w.MuscleGroups())

	chest, ok := w.Snapshot("Chest")
	require.True(t, ok)
	assert.Equal(t, "upper", chest.Category)
	assert.Equal(t, float64(1000+800+500), chest.MonthlyVolume)
	assert.Equal(t, 2, chest.MonthlyFrequency)
	assert.Equal(t, float64(1300), chest.WeeklyVolume)
	assert.Equal(t, 1, chest.WeeklyFrequency)
	assert.Equal(t, daysAgo(3), chest.LastTrained)

	// window max weight is 100: weekly sets at 80 and 100
	assert.InDelta(t, 0.9, chest.AverageIntensity, 1e-9)
}

func TestAggregate_IncompleteSetsCountAsZero(t *testing.T) {
	sessions := []workouts.Session{
		completedSession(daysAgo(1), exercise(defBench,
			workouts.Set{Reps: 10, Weight: 100, Completed: false},
			workouts.Set{Reps: 10, Weight: 60, Completed: true},
		)),
	}

	w := analytics.Aggregate(sessions, testNow, analytics.DefaultThresholds())
	chest, ok := w.Snapshot("Chest")
	require.True(t, ok)
	assert.Equal(t, float64(600), chest.MonthlyVolume)
	assert.Equal(t, 1, chest.MonthlyFrequency)

	bench, ok := w.Exercise("bench")
	require.True(t, ok)
	assert.Equal(t, float64(60), bench.MaxWeight)
}

func TestAggregate_InvalidEntriesAreSkipped(t *testing.T) {
	sessions := []workouts.Session{
		completedSession(daysAgo(2),
			exercise(nil, set(10, 100)),
			workouts.SessionExercise{ExerciseID: "ghost", Sets: []workouts.Set{set(5, 50)}},
			exercise(&workouts.ExerciseDefinition{ID: "nogroup", Name: "No Group"}, set(5, 50)),
			volumeExercise(defRow, 1000),
		),
		{UserID: "user-1"},
	}

	w := analytics.Aggregate(sessions, testNow, analytics.DefaultThresholds())
	assert.Equal(t, []string{"Back"}, w.MuscleGroups())
	assert.Equal(t, []string{"row"}, w.Exercises())
	assert.Equal(t, float64(1000), w.TotalVolume())

	warnings := multierr.Errors(w.Warnings)
	assert.Len(t, warnings, 4)
	for _, warn := range warnings {
		assert.ErrorIs(t, warn, analytics.ErrInvalidExercise)
	}
}

func TestAggregate_SecondaryMuscleShare(t *testing.T) {
	sessions := []workouts.Session{
		completedSession(daysAgo(5), volumeExercise(defBench, 1000)),
		completedSession(daysAgo(4), volumeExercise(defDips, 400)),
	}

	w := analytics.Aggregate(sessions, testNow, analytics.DefaultThresholds())
	assert.Equal(t, float64(1000+200), w.MuscleVolume("chest"))
	assert.Equal(t, float64(500+400), w.MuscleVolume("triceps"))
	assert.Zero(t, w.MuscleVolume("biceps"))

	// bench (chest->triceps) and dips (triceps->chest) train the pair in both roles
	correlations := analytics.Correlations(w, analytics.DefaultThresholds())
	require.Len(t, correlations, 2)
	assert.Equal(t, "chest", correlations[0].MuscleA)
	assert.Equal(t, "triceps", correlations[0].MuscleB)
	assert.InDelta(t, 1200.0/900.0, correlations[0].Ratio, 1e-9)
	assert.Equal(t, "triceps", correlations[1].MuscleA)
	assert.Equal(t, "chest", correlations[1].MuscleB)
	assert.InDelta(t, 900.0/1200.0, correlations[1].Ratio, 1e-9)
}

func TestAggregate_TotalVolumeDeterministic(t *testing.T) {
	var sessionExercises []workouts.SessionExercise
	var expected float64
	for i, group := range []string{"Arms", "Back", "Chest", "Core", "Legs", "Shoulders"} {
		weight := 0.1 * float64(i+1)
		expected += weight
		sessionExercises = append(sessionExercises, exercise(&workouts.ExerciseDefinition{
			ID:          group,
			Name:        group,
			MuscleGroup: group,
		}, set(1, weight)))
	}
	sessions := []workouts.Session{completedSession(daysAgo(1), sessionExercises...)}

	// same bits on every run, summed in muscle group order
	for i := 0; i < 50; i++ {
		w := analytics.Aggregate(sessions, testNow, analytics.DefaultThresholds())
		require.Equal(t, expected, w.TotalVolume())
	}
}

func TestAggregate_ExerciseSeries(t *testing.T) {
	sessions := []workouts.Session{
		completedSession(daysAgo(2), volumeExercise(defSquat, 1200)),
		completedSession(daysAgo(10), volumeExercise(defSquat, 1000)),
		// same exercise twice in one session is one point
		completedSession(daysAgo(6), volumeExercise(defSquat, 500), volumeExercise(defSquat, 600)),
	}

	w := analytics.Aggregate(sessions, testNow, analytics.DefaultThresholds())
	squat, ok := w.Exercise("squat")
	require.True(t, ok)
	assert.Equal(t, "Back Squat", squat.ExerciseName)
	assert.Equal(t, "Legs", squat.MuscleGroup)
	assert.Equal(t, 3, squat.Frequency())
	assert.Equal(t, []float64{1000, 1100, 1200}, squat.Volumes())
	assert.Equal(t, float64(1200), squat.RecentVolume())

	legs, ok := w.Snapshot("Legs")
	require.True(t, ok)
	assert.Equal(t, 4, legs.MonthlyFrequency)
}

func TestAggregate_IsolatedPerCall(t *testing.T) {
	first := analytics.Aggregate(
		[]workouts.Session{completedSession(daysAgo(1), volumeExercise(defBench, 1000))},
		testNow, analytics.DefaultThresholds(),
	)
	second := analytics.Aggregate(
		[]workouts.Session{completedSession(daysAgo(1), volumeExercise(defRow, 500))},
		testNow, analytics.DefaultThresholds(),
	)

	assert.Equal(t, []string{"Chest"}, first.MuscleGroups())
	assert.Equal(t, []string{"Back"}, second.MuscleGroups())
	assert.Equal(t, float64(500), second.TotalVolume())
}
