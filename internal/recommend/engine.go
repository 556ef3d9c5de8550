package recommend

import (
	"sort"
	"strings"
)

// Default result limits when callers pass limit <= 0.
const (
	DefaultLimit           = 10
	DefaultStretchingLimit = 8
)

// Recommend enriches and scores every record against the profile, drops
// contraindicated results, sorts the rest by score descending (stable, so
// ties keep input order) and truncates to limit. An empty input yields an
// empty, non-nil slice.
func (e *Engine) Recommend(records []Exercise, profile Profile, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]Result, 0, len(records))
	for _, ex := range records {
		result := e.Score(e.Enrich(ex), profile)
		if result.Suitability == SuitabilityContraindicated {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// RecommendStretching restricts the input to stretching-oriented records
// before running the standard pipeline.
func (e *Engine) RecommendStretching(records []Exercise, profile Profile, limit int) []Result {
	if limit <= 0 {
		limit = DefaultStretchingLimit
	}
	var filtered []Exercise
	for _, ex := range records {
		if isStretching(ex) {
			filtered = append(filtered, ex)
		}
	}
	return e.Recommend(filtered, profile, limit)
}

// RecommendByCategory restricts the input to records whose derived category
// matches before running the standard pipeline.
func (e *Engine) RecommendByCategory(records []Exercise, profile Profile, category Category, limit int) []Result {
	var filtered []Exercise
	for _, ex := range records {
		if _, derived := Classify(ex); derived == category {
			filtered = append(filtered, ex)
		}
	}
	return e.Recommend(filtered, profile, limit)
}

func isStretching(ex Exercise) bool {
	category := normalize(ex.Category)
	if category == "stretching" || category == "flexibility" || category == "mobility" {
		return true
	}
	return strings.Contains(normalize(ex.Name), "stretch")
}
