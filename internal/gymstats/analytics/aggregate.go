package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymanalytics/internal/gymstats/workouts"

	"go.uber.org/multierr"
)

// VolumePoint is the volume an exercise received in one session.
type VolumePoint struct {
	Date      time.Time `json:"date"`
	SessionID string    `json:"sessionId"`
	Volume    float64   `json:"volume"`
}

// ExerciseStats is the in-window history of a single exercise.
type ExerciseStats struct {
	ExerciseID   string
	ExerciseName string
	MuscleGroup  string
	// Points are ordered oldest first
	Points     []VolumePoint
	MaxWeight  float64
	LastPRDate *time.Time
}

func (s ExerciseStats) Frequency() int {
	return len(s.Points)
}

func (s ExerciseStats) Volumes() []float64 {
	volumes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		volumes[i] = p.Volume
	}
	return volumes
}

// RecentVolume is the volume of the newest session, 0 if there is none.
func (s ExerciseStats) RecentVolume() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Volume
}

// musclePair is directed: a is the primary mover, b the secondary muscle.
type musclePair struct {
	a, b string
}

// Window is the result of one aggregation pass. It is built fresh for every
// analysis and dropped afterwards.
type Window struct {
	Start time.Time
	End   time.Time

	// Warnings holds one ErrInvalidExercise per skipped entry, combined with multierr.
	Warnings error

	groups        map[string]*MuscleGroupSnapshot
	muscleVolumes map[string]float64
	pairs         map[musclePair]struct{}
	exercises     map[string]*ExerciseStats

	intensitySum   map[string]float64
	intensityCount map[string]int
}

// Aggregate folds the completed sessions falling in the analysis window ending
// at now into per muscle group and per exercise statistics.
func Aggregate(sessions []workouts.Session, now time.Time, th Thresholds) *Window {
	th = th.OrDefaults()

	w := &Window{
		Start:          now.Add(-th.AnalysisWindow()),
		End:            now,
		groups:         make(map[string]*MuscleGroupSnapshot),
		muscleVolumes:  make(map[string]float64),
		pairs:          make(map[musclePair]struct{}),
		exercises:      make(map[string]*ExerciseStats),
		intensitySum:   make(map[string]float64),
		intensityCount: make(map[string]int),
	}
	weekStart := now.Add(-th.WeeklyWindow())

	inWindow := make([]workouts.Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsCompleted() {
			w.addWarning(fmt.Errorf("session %s: not completed: %w", s.ID, ErrInvalidExercise))
			continue
		}
		if s.CompletedAt.Before(w.Start) || s.CompletedAt.After(now) {
			continue
		}
		inWindow = append(inWindow, s)
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].CompletedAt.Before(*inWindow[j].CompletedAt)
	})

	// window max weight per exercise is needed before intensities can be computed
	maxWeights := make(map[string]float64)
	for _, s := range inWindow {
		for _, ex := range s.Exercises {
			if mw := ex.MaxWeight(); mw > maxWeights[ex.ExerciseID] {
				maxWeights[ex.ExerciseID] = mw
			}
		}
	}

	for _, s := range inWindow {
		completedAt := *s.CompletedAt
		inWeek := !completedAt.Before(weekStart)

		sessionVolumes := make(map[string]float64)
		var sessionOrder []string

		for _, ex := range s.Exercises {
			if err := validateExercise(ex); err != nil {
				w.addWarning(fmt.Errorf("session %s: %w", s.ID, err))
				continue
			}

			def := ex.Definition
			volume := ex.Volume()

			group := w.group(def.MuscleGroup)
			group.MonthlyVolume += volume
			group.MonthlyFrequency++
			if inWeek {
				group.WeeklyVolume += volume
				group.WeeklyFrequency++
				w.addIntensity(def.MuscleGroup, ex, maxWeights[ex.ExerciseID])
			}
			if completedAt.After(group.LastTrained) {
				group.LastTrained = completedAt
			}

			w.addMuscleVolumes(def, volume, th.SecondaryMuscleShare)

			if _, seen := sessionVolumes[ex.ExerciseID]; !seen {
				sessionOrder = append(sessionOrder, ex.ExerciseID)
			}
			sessionVolumes[ex.ExerciseID] += volume

			stats, ok := w.exercises[ex.ExerciseID]
			if !ok {
				stats = &ExerciseStats{
					ExerciseID:   ex.ExerciseID,
					ExerciseName: ex.Name(),
					MuscleGroup:  def.MuscleGroup,
					MaxWeight:    maxWeights[ex.ExerciseID],
				}
				w.exercises[ex.ExerciseID] = stats
			}
		}

		for _, exID := range sessionOrder {
			stats := w.exercises[exID]
			stats.Points = append(stats.Points, VolumePoint{
				Date:      completedAt,
				SessionID: s.ID.String(),
				Volume:    sessionVolumes[exID],
			})
		}
	}

	for name, group := range w.groups {
		if n := w.intensityCount[name]; n > 0 {
			group.AverageIntensity = w.intensitySum[name] / float64(n)
		}
	}

	return w
}

func validateExercise(ex workouts.SessionExercise) error {
	if ex.ExerciseID == "" {
		return fmt.Errorf("exercise without id: %w", ErrInvalidExercise)
	}
	if ex.Definition == nil {
		return fmt.Errorf("exercise %q has no definition: %w", ex.ExerciseID, ErrInvalidExercise)
	}
	if ex.Definition.MuscleGroup == "" {
		return fmt.Errorf("exercise %q has no muscle group: %w", ex.ExerciseID, ErrInvalidExercise)
	}
	return nil
}

func (w *Window) addWarning(err error) {
	w.Warnings = multierr.Append(w.Warnings, err)
}

func (w *Window) group(name string) *MuscleGroupSnapshot {
	g, ok := w.groups[name]
	if !ok {
		g = &MuscleGroupSnapshot{
			Name:     name,
			Category: CategoryOf(name),
		}
		w.groups[name] = g
	}
	return g
}

func (w *Window) addIntensity(group string, ex workouts.SessionExercise, maxWeight float64) {
	if maxWeight <= 0 {
		return
	}
	for _, set := range ex.Sets {
		if !set.Completed || set.Weight <= 0 {
			continue
		}
		w.intensitySum[group] += set.Weight / maxWeight
		w.intensityCount[group]++
	}
}

func (w *Window) addMuscleVolumes(def *workouts.ExerciseDefinition, volume, secondaryShare float64) {
	for _, m := range def.PrimaryMuscles {
		w.muscleVolumes[m] += volume
	}
	for _, m := range def.SecondaryMuscles {
		w.muscleVolumes[m] += volume * secondaryShare
	}
	for _, p := range def.PrimaryMuscles {
		for _, s := range def.SecondaryMuscles {
			if p == s {
				continue
			}
			w.pairs[musclePair{a: p, b: s}] = struct{}{}
		}
	}
}

// MuscleGroups returns the names of all trained muscle groups, sorted.
func (w *Window) MuscleGroups() []string {
	names := make([]string, 0, len(w.groups))
	for name := range w.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (w *Window) Snapshot(group string) (MuscleGroupSnapshot, bool) {
	g, ok := w.groups[group]
	if !ok {
		return MuscleGroupSnapshot{}, false
	}
	return *g, true
}

// Exercises returns the ids of all exercises trained in the window, sorted.
func (w *Window) Exercises() []string {
	ids := make([]string, 0, len(w.exercises))
	for id := range w.exercises {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (w *Window) Exercise(id string) (ExerciseStats, bool) {
	s, ok := w.exercises[id]
	if !ok {
		return ExerciseStats{}, false
	}
	return *s, true
}

// MuscleVolume is the volume attributed to a single muscle through primary
// and secondary involvement.
func (w *Window) MuscleVolume(muscle string) float64 {
	return w.muscleVolumes[muscle]
}

func (w *Window) TotalVolume() float64 {
	var total float64
	for _, name := range w.MuscleGroups() {
		total += w.groups[name].MonthlyVolume
	}
	return total
}

func (w *Window) musclePairs() []musclePair {
	pairs := make([]musclePair, 0, len(w.pairs))
	for p := range w.pairs {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	return pairs
}
