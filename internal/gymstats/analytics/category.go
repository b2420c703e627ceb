package analytics

import "strings"

const (
	CategoryUpper = "upper"
	CategoryLower = "lower"
	CategoryCore  = "core"
	CategoryOther = "other"
)

var muscleGroupCategories = map[string]string{
	"chest":      CategoryUpper,
	"back":       CategoryUpper,
	"lats":       CategoryUpper,
	"traps":      CategoryUpper,
	"shoulders":  CategoryUpper,
	"biceps":     CategoryUpper,
	"triceps":    CategoryUpper,
	"forearms":   CategoryUpper,
	"arms":       CategoryUpper,
	"legs":       CategoryLower,
	"quads":      CategoryLower,
	"quadriceps": CategoryLower,
	"hamstrings": CategoryLower,
	"glutes":     CategoryLower,
	"calves":     CategoryLower,
	"adductors":  CategoryLower,
	"abductors":  CategoryLower,
	"abs":        CategoryCore,
	"core":       CategoryCore,
	"obliques":   CategoryCore,
	"lower back": CategoryCore,
}

// CategoryOf maps a muscle group name onto the upper/lower/core taxonomy.
func CategoryOf(muscleGroup string) string {
	if c, ok := muscleGroupCategories[strings.ToLower(strings.TrimSpace(muscleGroup))]; ok {
		return c
	}
	return CategoryOther
}
