package analytics

import "time"

// Thresholds holds every tunable of the analysis. It is decoded from the
// [<env>.analytics] config section on top of DefaultThresholds, so only the
// keys present in the file override a default.
type Thresholds struct {
	AnalysisWindowDays int `toml:"analysis_window_days"`
	WeeklyWindowDays   int `toml:"weekly_window_days"`
	StalenessTTLHours  int `toml:"staleness_ttl_hours"`

	// muscle group balance, percentages of total monthly volume
	UnderworkedPct float64 `toml:"underworked_pct"`
	OverworkedPct  float64 `toml:"overworked_pct"`

	// synergist / antagonist correlations
	RatioLow             float64 `toml:"ratio_low"`
	RatioHigh            float64 `toml:"ratio_high"`
	IdealRatio           float64 `toml:"ideal_ratio"`
	SeverityScale        float64 `toml:"severity_scale"`
	MaxSeverity          int     `toml:"max_severity"`
	SeverityPenalty      int     `toml:"severity_penalty"`
	SecondaryMuscleShare float64 `toml:"secondary_muscle_share"`

	// progression
	DeloadProgressRate  float64 `toml:"deload_progress_rate"`
	PlateauProgressRate float64 `toml:"plateau_progress_rate"`
	PlateauMinFrequency int     `toml:"plateau_min_frequency"`
	HighFrequency       int     `toml:"high_frequency"`

	// fatigue and recovery
	FatigueVolumeWeight    float64 `toml:"fatigue_volume_weight"`
	FatigueFrequencyWeight float64 `toml:"fatigue_frequency_weight"`
	FatigueIntensityWeight float64 `toml:"fatigue_intensity_weight"`
	FatigueModerate        float64 `toml:"fatigue_moderate"`
	FatigueHigh            float64 `toml:"fatigue_high"`
	BaseRecoveryDays       int     `toml:"base_recovery_days"`
	HighVolumeThreshold    float64 `toml:"high_volume_threshold"`
	HighIntensityThreshold float64 `toml:"high_intensity_threshold"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		AnalysisWindowDays: 30,
		WeeklyWindowDays:   7,
		StalenessTTLHours:  24,

		UnderworkedPct: 10,
		OverworkedPct:  35,

		RatioLow:             0.7,
		RatioHigh:            1.3,
		IdealRatio:           1.0,
		SeverityScale:        5,
		MaxSeverity:          5,
		SeverityPenalty:      5,
		SecondaryMuscleShare: 0.5,

		DeloadProgressRate:  -10,
		PlateauProgressRate: 2,
		PlateauMinFrequency: 4,
		HighFrequency:       8,

		FatigueVolumeWeight:    0.4,
		FatigueFrequencyWeight: 0.3,
		FatigueIntensityWeight: 0.3,
		FatigueModerate:        50,
		FatigueHigh:            80,
		BaseRecoveryDays:       2,
		HighVolumeThreshold:    15000,
		HighIntensityThreshold: 0.8,
	}
}

// OrDefaults returns the defaults when t was never set. A partly set t is
// kept as is, zero being a valid value for most fields.
func (t Thresholds) OrDefaults() Thresholds {
	if t == (Thresholds{}) {
		return DefaultThresholds()
	}
	return t
}

func (t Thresholds) AnalysisWindow() time.Duration {
	return time.Duration(t.AnalysisWindowDays) * 24 * time.Hour
}

func (t Thresholds) WeeklyWindow() time.Duration {
	return time.Duration(t.WeeklyWindowDays) * 24 * time.Hour
}

func (t Thresholds) StalenessTTL() time.Duration {
	return time.Duration(t.StalenessTTLHours) * time.Hour
}
