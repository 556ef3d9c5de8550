package recommend

// Intensity grades exercise exertion on a five-level ordinal scale.
type Intensity int

const (
	IntensityVeryLow Intensity = iota + 1
	IntensityLow
	IntensityModerate
	IntensityHigh
	IntensityVeryHigh
)

// String returns the wire label for the intensity.
func (i Intensity) String() string {
	switch i {
	case IntensityVeryLow:
		return "very-low"
	case IntensityLow:
		return "low"
	case IntensityModerate:
		return "moderate"
	case IntensityHigh:
		return "high"
	case IntensityVeryHigh:
		return "very-high"
	default:
		return "moderate"
	}
}

// Category is the exercise-type tag used for mobility suitability and
// therapeutic benefit derivation.
type Category string

const (
	CategoryStretching     Category = "stretching"
	CategoryMobility       Category = "mobility"
	CategoryStrength       Category = "strength"
	CategoryBalance        Category = "balance"
	CategoryCardio         Category = "cardio"
	CategoryFlexibility    Category = "flexibility"
	CategoryRehabilitation Category = "rehabilitation"
	CategoryTherapeutic    Category = "therapeutic"
)

// Suitability is the discrete bucket derived from a continuous score.
type Suitability string

const (
	SuitabilityExcellent       Suitability = "excellent"
	SuitabilityGood            Suitability = "good"
	SuitabilityModerate        Suitability = "moderate"
	SuitabilityPoor            Suitability = "poor"
	SuitabilityContraindicated Suitability = "contraindicated"
)

// Exercise is the raw catalog record the engine scores. It is never mutated.
type Exercise struct {
	ID               string
	Name             string
	Description      string
	Level            string
	Equipment        string
	Category         string
	PrimaryMuscles   []string
	SecondaryMuscles []string
	Instructions     []string
}

// Profile is a user's self-reported assessment. Pain and mobility levels are
// expected to be integers in 1-10; callers validate before invoking the
// engine.
type Profile struct {
	Name          string
	Condition     string
	PainLevel     int
	MobilityLevel int
	Goals         []string
}

// Range bounds the 1-10 user scale an exercise suits, with the subset of
// levels it is optimal for. Invariant: Min <= each optimal value <= Max.
type Range struct {
	Min     int
	Max     int
	Optimal []int
}

// Contains reports whether level falls inside [Min, Max].
func (r Range) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// IsOptimal reports whether level is in the optimal subset.
func (r Range) IsOptimal(level int) bool {
	for _, v := range r.Optimal {
		if v == level {
			return true
		}
	}
	return false
}

// Contraindications flags pain levels and condition keywords for which an
// exercise is unsafe.
type Contraindications struct {
	PainLevels []int
	Conditions []string
}

// BlocksPainLevel reports whether the given pain level is contraindicated.
func (c Contraindications) BlocksPainLevel(level int) bool {
	for _, v := range c.PainLevels {
		if v == level {
			return true
		}
	}
	return false
}

// BlocksCondition reports whether the user's condition matches any
// contraindicated condition keyword, case-insensitively in either direction.
func (c Contraindications) BlocksCondition(condition string) bool {
	trimmed := normalize(condition)
	if trimmed == "" {
		return false
	}
	for _, keyword := range c.Conditions {
		if containsEither(trimmed, normalize(keyword)) {
			return true
		}
	}
	return false
}

// EnrichedExercise wraps a raw record with everything the scorer needs. It is
// built fresh per scoring pass and never mutated after construction.
type EnrichedExercise struct {
	Exercise            Exercise
	Intensity           Intensity
	Category            Category
	PainSuitability     Range
	MobilitySuitability Range
	Contraindications   Contraindications
	TherapeuticBenefits []string
	ProgressionLevel    int
}

// Result is one scored exercise. Results are recomputed on every call and
// never cached by the engine.
type Result struct {
	Exercise    EnrichedExercise
	Score       float64
	Reasons     []string
	Warnings    []string
	Suitability Suitability
}
