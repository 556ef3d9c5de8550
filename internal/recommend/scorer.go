package recommend

import (
	"fmt"
	"math"
)

// Fixed sub-score weights; they sum to 1.0.
const (
	painWeight      = 0.4
	mobilityWeight  = 0.3
	conditionWeight = 0.2
	benefitWeight   = 0.1
)

// Suitability label thresholds on the combined score.
const (
	excellentThreshold = 0.9
	goodThreshold      = 0.7
	moderateThreshold  = 0.5
	poorThreshold      = 0.3
)

// Engine scores exercises against a user profile. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	// NeutralConditionScore is the condition sub-score for exercises that
	// neither target nor conflict with the user's condition. Generic
	// exercises with no keyword coverage land here.
	NeutralConditionScore float64
}

// NewEngine returns an engine with the default neutral condition score.
func NewEngine() *Engine {
	return &Engine{NeutralConditionScore: 0.5}
}

// Enrich builds the derived view of a raw record the scorer consumes.
func (e *Engine) Enrich(ex Exercise) EnrichedExercise {
	intensity, category := Classify(ex)
	return EnrichedExercise{
		Exercise:            ex,
		Intensity:           intensity,
		Category:            category,
		PainSuitability:     PainRange(intensity),
		MobilitySuitability: MobilityRange(category, intensity),
		Contraindications:   Detect(ex),
		TherapeuticBenefits: Benefits(ex, category),
		ProgressionLevel:    progressionLevel(intensity),
	}
}

// Score combines pain, mobility, condition and benefit sub-scores into one
// weighted score in [0, 1] and derives the suitability label. Reasons and
// warnings accumulate in the fixed order pain, mobility, condition, benefit.
func (e *Engine) Score(enriched EnrichedExercise, profile Profile) Result {
	var reasons []string
	var warnings []string
	score := 0.0

	painScore := 0.1
	if enriched.PainSuitability.Contains(profile.PainLevel) {
		painScore = 0.8
		reasons = append(reasons, fmt.Sprintf("Suitable for your pain level (%d/10)", profile.PainLevel))
		if enriched.PainSuitability.IsOptimal(profile.PainLevel) {
			painScore = 1.0
			reasons = append(reasons, "Optimal for your current pain level")
		}
	} else {
		warnings = append(warnings, fmt.Sprintf("May not be suitable for your pain level (%d/10)", profile.PainLevel))
	}
	// A contraindicated pain level always wins over range scoring.
	if enriched.Contraindications.BlocksPainLevel(profile.PainLevel) {
		painScore = 0
		warnings = append(warnings, fmt.Sprintf("Not recommended at your current pain level (%d/10)", profile.PainLevel))
	}
	score += painScore * painWeight

	mobilityScore := 0.1
	if enriched.MobilitySuitability.Contains(profile.MobilityLevel) {
		mobilityScore = 0.8
		reasons = append(reasons, fmt.Sprintf("Appropriate for your mobility level (%d/10)", profile.MobilityLevel))
		if enriched.MobilitySuitability.IsOptimal(profile.MobilityLevel) {
			mobilityScore = 1.0
			reasons = append(reasons, "Perfect match for your mobility level")
		}
	} else {
		warnings = append(warnings, fmt.Sprintf("May be too challenging for your mobility level (%d/10)", profile.MobilityLevel))
	}
	score += mobilityScore * mobilityWeight

	conditionScore := e.NeutralConditionScore
	if matchesCondition(enriched.Exercise, profile.Condition) {
		conditionScore = 1.0
		reasons = append(reasons, fmt.Sprintf("Specifically targets your %s condition", profile.Condition))
	}
	if enriched.Contraindications.BlocksCondition(profile.Condition) {
		conditionScore = 0
		warnings = append(warnings, fmt.Sprintf("May aggravate your %s condition", profile.Condition))
	}
	score += conditionScore * conditionWeight

	benefitScore := math.Min(float64(len(enriched.TherapeuticBenefits))*0.2, 1.0)
	if n := len(enriched.TherapeuticBenefits); n > 0 {
		plural := ""
		if n > 1 {
			plural = "s"
		}
		reasons = append(reasons, fmt.Sprintf("Provides %d therapeutic benefit%s", n, plural))
	}
	score += benefitScore * benefitWeight

	return Result{
		Exercise:    enriched,
		Score:       math.Round(score*100) / 100,
		Reasons:     reasons,
		Warnings:    warnings,
		Suitability: suitabilityFor(score),
	}
}

// matchesCondition reports whether the condition string overlaps any affected
// body-part tag, case-insensitively in either direction. An empty condition
// never matches; it stays neutral.
func matchesCondition(ex Exercise, condition string) bool {
	trimmed := normalize(condition)
	if trimmed == "" {
		return false
	}
	for _, muscle := range ex.PrimaryMuscles {
		if containsEither(trimmed, normalize(muscle)) {
			return true
		}
	}
	for _, muscle := range ex.SecondaryMuscles {
		if containsEither(trimmed, normalize(muscle)) {
			return true
		}
	}
	return false
}

func suitabilityFor(score float64) Suitability {
	switch {
	case score >= excellentThreshold:
		return SuitabilityExcellent
	case score >= goodThreshold:
		return SuitabilityGood
	case score >= moderateThreshold:
		return SuitabilityModerate
	case score >= poorThreshold:
		return SuitabilityPoor
	default:
		return SuitabilityContraindicated
	}
}
