package analytics

import (
	"fmt"
	"sort"
)

// ProgressRate is the relative volume change between the oldest and the
// newest value, in percent. Fewer than two values or a zero baseline yield 0.
func ProgressRate(volumes []float64) float64 {
	if len(volumes) < 2 {
		return 0
	}
	oldest := volumes[0]
	newest := volumes[len(volumes)-1]
	if oldest == 0 {
		return 0
	}
	return (newest - oldest) / oldest * 100
}

// Classify picks a single recommendation for an exercise; the first matching rule wins.
func Classify(stats ExerciseStats, th Thresholds) ExerciseRecommendation {
	th = th.OrDefaults()

	frequency := stats.Frequency()
	rate := ProgressRate(stats.Volumes())
	name := stats.ExerciseName
	if name == "" {
		name = stats.ExerciseID
	}

	rec := ExerciseRecommendation{
		ExerciseID:   stats.ExerciseID,
		ExerciseName: name,
		RelatedMetrics: RelatedMetrics{
			RecentVolume:    stats.RecentVolume(),
			ProgressRatePct: rate,
			LastPRDate:      stats.LastPRDate,
			Frequency:       frequency,
		},
	}

	switch {
	case frequency == 0:
		rec.Type = RecommendationFrequency
		rec.Priority = 4
		rec.Status = "Not recently performed"
		rec.Suggestion = fmt.Sprintf("Add %s back into your routine", name)
		rec.Reason = fmt.Sprintf("No sessions in the last %d days", th.AnalysisWindowDays)
	case rate < th.DeloadProgressRate:
		rec.Type = RecommendationDeload
		rec.Priority = 5
		rec.Status = "Performance declining"
		rec.Suggestion = fmt.Sprintf("Take a deload week: reduce %s load by 10-20%%", name)
		rec.Reason = fmt.Sprintf("Volume dropped %.1f%% over the last %d sessions", -rate, frequency)
	case rate < th.PlateauProgressRate && frequency >= th.PlateauMinFrequency:
		rec.Type = RecommendationPlateau
		rec.Priority = 4
		rec.Status = "Progress stalled"
		rec.Suggestion = fmt.Sprintf("Change the rep range or add a variation of %s", name)
		rec.Reason = fmt.Sprintf("Progress rate of %.1f%% across %d sessions", rate, frequency)
	case frequency > th.HighFrequency:
		rec.Type = RecommendationFrequency
		rec.Priority = 3
		rec.Status = "High frequency, add recovery"
		rec.Suggestion = fmt.Sprintf("Train %s in fewer sessions per week", name)
		rec.Reason = fmt.Sprintf("%d sessions in the last %d days", frequency, th.AnalysisWindowDays)
	default:
		rec.Type = RecommendationProgression
		rec.Priority = 3
		rec.Status = "Progressing steadily"
		rec.Suggestion = fmt.Sprintf("Keep adding load to %s gradually", name)
		rec.Reason = fmt.Sprintf("Progress rate of %.1f%%", rate)
	}

	return rec
}

// Progressions classifies every exercise trained in the window, plus every
// known exercise that was not trained in it. Sorted by priority (highest
// first), then exercise name.
func Progressions(w *Window, known []KnownExercise, th Thresholds) []ExerciseRecommendation {
	knownByID := make(map[string]KnownExercise, len(known))
	for _, k := range known {
		knownByID[k.ExerciseID] = k
	}

	recs := make([]ExerciseRecommendation, 0, len(w.exercises)+len(known))
	for _, id := range w.Exercises() {
		stats := *w.exercises[id]
		if k, ok := knownByID[id]; ok {
			stats.LastPRDate = k.LastPRDate
		}
		recs = append(recs, Classify(stats, th))
	}

	for _, k := range known {
		if _, trained := w.exercises[k.ExerciseID]; trained {
			continue
		}
		recs = append(recs, Classify(ExerciseStats{
			ExerciseID:   k.ExerciseID,
			ExerciseName: k.ExerciseName,
			MuscleGroup:  k.MuscleGroup,
			LastPRDate:   k.LastPRDate,
		}, th))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		if recs[i].ExerciseName != recs[j].ExerciseName {
			return recs[i].ExerciseName < recs[j].ExerciseName
		}
		return recs[i].ExerciseID < recs[j].ExerciseID
	})

	return recs
}
