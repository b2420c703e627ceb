package analytics

import (
	"errors"
	"time"
)

// ErrInvalidExercise marks a session exercise that cannot be attributed to a
// muscle group. It never aborts an analysis, it is only collected as a warning.
var ErrInvalidExercise = errors.New("invalid exercise entry")

type BalanceStatus string

const (
	BalanceUnderworked BalanceStatus = "underworked"
	BalanceBalanced    BalanceStatus = "balanced"
	BalanceOverworked  BalanceStatus = "overworked"
)

type RecommendationType string

const (
	RecommendationProgression RecommendationType = "progression"
	RecommendationDeload      RecommendationType = "deload"
	RecommendationPlateau     RecommendationType = "plateau"
	RecommendationFrequency   RecommendationType = "frequency"
)

type FatigueLevel string

const (
	FatigueLow      FatigueLevel = "low"
	FatigueModerate FatigueLevel = "moderate"
	FatigueHigh     FatigueLevel = "high"
)

type RecoveryStatus string

const (
	RecoveryReady     RecoveryStatus = "ready"
	RecoveryCaution   RecoveryStatus = "caution"
	RecoveryNeedsRest RecoveryStatus = "needs_rest"
)

type RecoveryEstimate struct {
	Status               RecoveryStatus `json:"status"`
	DaysSinceLastTrained int            `json:"daysSinceLastTrained"`
	RecoveryDaysNeeded   int            `json:"recoveryDaysNeeded"`
	SuggestedRestDays    int            `json:"suggestedRestDays"`
}

// MuscleGroupSnapshot is the aggregated training load of one muscle group.
type MuscleGroupSnapshot struct {
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	WeeklyVolume     float64          `json:"weeklyVolume"`
	MonthlyVolume    float64          `json:"monthlyVolume"`
	WeeklyFrequency  int              `json:"weeklyFrequency"`
	MonthlyFrequency int              `json:"monthlyFrequency"`
	LastTrained      time.Time        `json:"lastTrained"`
	AverageIntensity float64          `json:"averageIntensity"`
	FatigueScore     float64          `json:"fatigueScore"`
	Fatigue          FatigueLevel     `json:"fatigueLevel"`
	Recovery         RecoveryEstimate `json:"recovery"`
}

type MuscleBalance struct {
	MuscleGroup    string        `json:"muscleGroup"`
	Volume         float64       `json:"volume"`
	Percentage     float64       `json:"percentage"`
	Status         BalanceStatus `json:"status"`
	Recommendation string        `json:"recommendation"`
}

type MuscleCorrelation struct {
	MuscleA        string  `json:"muscleA"`
	MuscleB        string  `json:"muscleB"`
	VolumeA        float64 `json:"volumeA"`
	VolumeB        float64 `json:"volumeB"`
	Ratio          float64 `json:"ratio"`
	IdealRatio     float64 `json:"idealRatio"`
	InBalance      bool    `json:"inBalance"`
	Severity       int     `json:"severity"`
	Recommendation string  `json:"recommendation"`
}

type RelatedMetrics struct {
	RecentVolume    float64    `json:"recentVolume"`
	ProgressRatePct float64    `json:"progressRate"`
	LastPRDate      *time.Time `json:"lastPRDate"`
	Frequency       int        `json:"frequency"`
}

type ExerciseRecommendation struct {
	ExerciseID     string             `json:"exerciseId"`
	ExerciseName   string             `json:"exerciseName"`
	Type           RecommendationType `json:"type"`
	Status         string             `json:"status"`
	Suggestion     string             `json:"suggestion"`
	Reason         string             `json:"reason"`
	Priority       int                `json:"priority"`
	RelatedMetrics RelatedMetrics     `json:"relatedMetrics"`
}

type TrainingInsights struct {
	WeakPoints         []string                  `json:"weakPoints"`
	StrongPoints       []string                  `json:"strongPoints"`
	BalanceScore       int                       `json:"balanceScore"`
	VolumeDistribution map[string]float64        `json:"volumeDistribution"`
	RecoveryStatus     map[string]RecoveryStatus `json:"recoveryStatus"`
}

// TrainingAnalysis is the recommendation report of one user. It is always
// replaced wholesale, never patched.
type TrainingAnalysis struct {
	UserID                  string                   `json:"userId"`
	LastUpdated             time.Time                `json:"lastUpdated"`
	WindowStart             time.Time                `json:"windowStart"`
	WindowEnd               time.Time                `json:"windowEnd"`
	MuscleGroupBalance      []MuscleBalance          `json:"muscleGroupBalance"`
	ExerciseRecommendations []ExerciseRecommendation `json:"exerciseRecommendations"`
	Correlations            []MuscleCorrelation      `json:"correlations"`
	TrainingInsights        TrainingInsights         `json:"trainingInsights"`
}

type MuscleAnalysis struct {
	UserID       string                `json:"userId"`
	LastUpdated  time.Time             `json:"lastUpdated"`
	TotalVolume  float64               `json:"totalVolume"`
	MuscleGroups []MuscleGroupSnapshot `json:"muscleGroups"`
	Correlations []MuscleCorrelation   `json:"correlations"`
	BalanceScore int                   `json:"balanceScore"`
}

// KnownExercise is an exercise the user has a personal record for.
type KnownExercise struct {
	ExerciseID   string
	ExerciseName string
	MuscleGroup  string
	LastPRDate   *time.Time
}
