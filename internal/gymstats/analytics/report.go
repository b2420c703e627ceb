package analytics

import (
	"time"
)

// BuildTrainingAnalysis composes the full recommendation report from one aggregation window.
func BuildTrainingAnalysis(
	userID string,
	w *Window,
	known []KnownExercise,
	now time.Time,
	th Thresholds,
) *TrainingAnalysis {
	th = th.OrDefaults()

	balance := Balance(w, th)
	correlations := Correlations(w, th)
	snapshots := Snapshots(w, now, th)

	insights := TrainingInsights{
		WeakPoints:         []string{},
		StrongPoints:       []string{},
		BalanceScore:       BalanceScore(correlations, th),
		VolumeDistribution: make(map[string]float64, len(balance)),
		RecoveryStatus:     make(map[string]RecoveryStatus, len(snapshots)),
	}
	for _, b := range balance {
		insights.VolumeDistribution[b.MuscleGroup] = b.Percentage
		switch b.Status {
		case BalanceUnderworked:
			insights.WeakPoints = append(insights.WeakPoints, b.MuscleGroup)
		case BalanceBalanced:
			insights.StrongPoints = append(insights.StrongPoints, b.MuscleGroup)
		}
	}
	for _, s := range snapshots {
		insights.RecoveryStatus[s.Name] = s.Recovery.Status
	}

	return &TrainingAnalysis{
		UserID:                  userID,
		LastUpdated:             now,
		WindowStart:             w.Start,
		WindowEnd:               w.End,
		MuscleGroupBalance:      balance,
		ExerciseRecommendations: Progressions(w, known, th),
		Correlations:            correlations,
		TrainingInsights:        insights,
	}
}

func BuildMuscleAnalysis(userID string, w *Window, now time.Time, th Thresholds) *MuscleAnalysis {
	th = th.OrDefaults()

	correlations := Correlations(w, th)
	return &MuscleAnalysis{
		UserID:       userID,
		LastUpdated:  now,
		TotalVolume:  w.TotalVolume(),
		MuscleGroups: Snapshots(w, now, th),
		Correlations: correlations,
		BalanceScore: BalanceScore(correlations, th),
	}
}
