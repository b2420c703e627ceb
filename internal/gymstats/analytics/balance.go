package analytics

import "fmt"

// Balance reports each trained muscle group's share of the total window
// volume. Groups without volume are left out, output is sorted by group name.
func Balance(w *Window, th Thresholds) []MuscleBalance {
	th = th.OrDefaults()

	total := w.TotalVolume()
	balances := make([]MuscleBalance, 0, len(w.groups))
	if total <= 0 {
		return balances
	}

	for _, name := range w.MuscleGroups() {
		volume := w.groups[name].MonthlyVolume
		if volume <= 0 {
			continue
		}

		pct := volume / total * 100
		b := MuscleBalance{
			MuscleGroup: name,
			Volume:      volume,
			Percentage:  pct,
		}
		switch {
		case pct < th.UnderworkedPct:
			b.Status = BalanceUnderworked
			b.Recommendation = fmt.Sprintf("Increase %s frequency/volume", name)
		case pct > th.OverworkedPct:
			b.Status = BalanceOverworked
			b.Recommendation = fmt.Sprintf("Reduce %s volume", name)
		default:
			b.Status = BalanceBalanced
			b.Recommendation = fmt.Sprintf("%s is well balanced", name)
		}
		balances = append(balances, b)
	}

	return balances
}
