package analytics

import (
	"math"
	"time"
)

// FatigueScore is a weighted sum of the raw weekly volume, weekly frequency and
// average intensity. The inputs are not normalized, so weekly volume dominates.
func FatigueScore(s MuscleGroupSnapshot, th Thresholds) (float64, FatigueLevel) {
	th = th.OrDefaults()

	score := th.FatigueVolumeWeight*s.WeeklyVolume +
		th.FatigueFrequencyWeight*float64(s.WeeklyFrequency) +
		th.FatigueIntensityWeight*s.AverageIntensity

	switch {
	case score > th.FatigueHigh:
		return score, FatigueHigh
	case score > th.FatigueModerate:
		return score, FatigueModerate
	default:
		return score, FatigueLow
	}
}

func RecoveryDaysNeeded(s MuscleGroupSnapshot, th Thresholds) int {
	th = th.OrDefaults()

	days := th.BaseRecoveryDays
	if s.WeeklyVolume > th.HighVolumeThreshold {
		days++
	}
	if s.AverageIntensity > th.HighIntensityThreshold {
		days++
	}
	return days
}

// EstimateRecovery compares full days passed since the group was last trained
// against the days it needs to recover.
func EstimateRecovery(s MuscleGroupSnapshot, now time.Time, th Thresholds) RecoveryEstimate {
	needed := RecoveryDaysNeeded(s, th)
	daysSince := int(math.Floor(now.Sub(s.LastTrained).Hours() / 24))

	est := RecoveryEstimate{
		DaysSinceLastTrained: daysSince,
		RecoveryDaysNeeded:   needed,
	}
	switch {
	case daysSince < needed:
		est.Status = RecoveryNeedsRest
		est.SuggestedRestDays = needed - daysSince
	case daysSince == needed:
		est.Status = RecoveryCaution
		est.SuggestedRestDays = 1
	default:
		est.Status = RecoveryReady
	}
	return est
}

// Snapshots returns the window's muscle group snapshots with fatigue and
// recovery filled in, sorted by name.
func Snapshots(w *Window, now time.Time, th Thresholds) []MuscleGroupSnapshot {
	snapshots := make([]MuscleGroupSnapshot, 0, len(w.groups))
	for _, name := range w.MuscleGroups() {
		s := *w.groups[name]
		s.FatigueScore, s.Fatigue = FatigueScore(s, th)
		s.Recovery = EstimateRecovery(s, now, th)
		snapshots = append(snapshots, s)
	}
	return snapshots
}
