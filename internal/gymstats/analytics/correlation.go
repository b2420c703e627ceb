package analytics

import (
	"fmt"
	"math"
)

// Correlations compares the volumes of every (primary, secondary) muscle pair
// seen in the window, MuscleA being the primary one. A pair trained in both
// roles gives two correlations. Pairs are sorted by (MuscleA, MuscleB).
func Correlations(w *Window, th Thresholds) []MuscleCorrelation {
	th = th.OrDefaults()

	pairs := w.musclePairs()
	correlations := make([]MuscleCorrelation, 0, len(pairs))
	for _, p := range pairs {
		correlations = append(correlations, correlate(p.a, p.b, w.MuscleVolume(p.a), w.MuscleVolume(p.b), th))
	}
	return correlations
}

func correlate(a, b string, volumeA, volumeB float64, th Thresholds) MuscleCorrelation {
	var ratio float64
	if volumeB > 0 {
		ratio = volumeA / volumeB
	}

	c := MuscleCorrelation{
		MuscleA:    a,
		MuscleB:    b,
		VolumeA:    volumeA,
		VolumeB:    volumeB,
		Ratio:      ratio,
		IdealRatio: th.IdealRatio,
	}

	switch {
	case ratio < th.RatioLow:
		c.Recommendation = fmt.Sprintf("Increase %s volume to balance with %s", a, b)
	case ratio > th.RatioHigh:
		c.Recommendation = fmt.Sprintf("Reduce %s volume or increase %s volume", a, b)
	default:
		c.InBalance = true
		c.Recommendation = fmt.Sprintf("Good balance between %s and %s", a, b)
		return c
	}

	severity := int(math.Round(math.Abs(th.IdealRatio-ratio) * th.SeverityScale))
	c.Severity = min(th.MaxSeverity, severity)

	return c
}

// BalanceScore starts at 100 and loses a fixed penalty per severity point of
// every out of band correlation. It never goes below 0.
func BalanceScore(correlations []MuscleCorrelation, th Thresholds) int {
	th = th.OrDefaults()

	score := 100
	for _, c := range correlations {
		score -= c.Severity * th.SeverityPenalty
	}
	return max(0, score)
}
