package exercises

import "strings"

// Category and equipment tables for physical-therapy relevance. An exercise
// passes when its category is allowed and its equipment is either empty,
// allowed, and not on the deny list.
var ptCategories = map[string]bool{
	"strength":              true,
	"stretching":            true,
	"cardio":                true,
	"plyometrics":           true,
	"strongman":             true,
	"olympic weightlifting": true,
	"powerlifting":          true,
}

var ptEquipment = map[string]bool{
	"body only":       true,
	"dumbbell":        true,
	"resistance band": true,
	"foam roll":       true,
	"stability ball":  true,
	"medicine ball":   true,
	"kettlebell":      true,
	"barbell":         true,
	"cable":           true,
	"e-z curl bar":    true,
	"other":           true,
}

var excludedEquipment = map[string]bool{
	"machine":          true,
	"leverage machine": true,
	"sled machine":     true,
	"stepmill machine": true,
}

// FilterPTRelevant returns the subset of records suitable for
// physical-therapy programming.
func FilterPTRelevant(records []Exercise) []Exercise {
	filtered := make([]Exercise, 0, len(records))
	for _, ex := range records {
		if !IsPTRelevant(ex) {
			continue
		}
		filtered = append(filtered, ex)
	}
	return filtered
}

// IsPTRelevant applies the category and equipment tables to one record.
func IsPTRelevant(ex Exercise) bool {
	category := strings.ToLower(strings.TrimSpace(ex.Category))
	if category != "" && !ptCategories[category] {
		return false
	}

	equipment := strings.ToLower(strings.TrimSpace(ex.Equipment))
	if equipment != "" {
		if excludedEquipment[equipment] {
			return false
		}
		if !ptEquipment[equipment] {
			return false
		}
	}
	return true
}

// IsStretchingCategory reports whether the raw category label is one of the
// stretching-oriented catalog categories.
func IsStretchingCategory(category string) bool {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "stretching", "flexibility", "mobility":
		return true
	default:
		return false
	}
}
