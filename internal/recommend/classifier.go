package recommend

// intensityRule is one tier of the intensity classifier. Tiers are evaluated
// in declaration order and the first satisfied tier wins, even when a
// higher-severity keyword also appears later in the text. A tier matches when
// any keyword is a substring of the record's search text, the category label
// equals any listed category, or any description keyword is a substring of
// the description.
type intensityRule struct {
	intensity           Intensity
	keywords            []string
	categories          []string
	descriptionKeywords []string
}

var intensityRules = []intensityRule{
	{
		intensity: IntensityVeryHigh,
		keywords:  []string{"jump", "explosive", "plyometric", "sprint", "burpee", "high intensity"},
	},
	{
		intensity:  IntensityHigh,
		keywords:   []string{"squat", "deadlift", "press", "pull", "push", "weight", "heavy"},
		categories: []string{"strength", "powerlifting"},
	},
	{
		intensity:  IntensityModerate,
		keywords:   []string{"bridge", "plank", "lunge", "step", "walk", "moderate"},
		categories: []string{"cardio", "olympic weightlifting"},
	},
	{
		intensity:  IntensityLow,
		keywords:   []string{"stretch", "gentle", "slow", "breathing", "relaxation"},
		categories: []string{"stretching", "flexibility", "mobility"},
	},
	{
		intensity:           IntensityVeryLow,
		keywords:            []string{"passive", "rest", "meditation", "mindfulness"},
		descriptionKeywords: []string{"gentle", "passive"},
	},
}

// difficultyFallback maps the catalog difficulty label to an intensity when
// no keyword tier matches.
var difficultyFallback = map[string]Intensity{
	"beginner":     IntensityLow,
	"intermediate": IntensityModerate,
	"advanced":     IntensityHigh,
	"expert":       IntensityVeryHigh,
}

// categoryRule maps a keyword to a derived category. Rules are checked in
// declaration order against the category label and the exercise name; the
// keyword sets are disjoint so at most one rule matches.
type categoryRule struct {
	category Category
	keyword  string
}

var categoryRules = []categoryRule{
	{category: CategoryStretching, keyword: "stretch"},
	{category: CategoryMobility, keyword: "mobility"},
	{category: CategoryStrength, keyword: "strength"},
	{category: CategoryBalance, keyword: "balance"},
	{category: CategoryCardio, keyword: "cardio"},
	{category: CategoryFlexibility, keyword: "flexibility"},
}

// Classify derives the intensity and category for a raw record. It is total:
// records with no keyword match fall back to the difficulty label for
// intensity and to the therapeutic category.
func Classify(ex Exercise) (Intensity, Category) {
	return classifyIntensity(ex), classifyCategory(ex)
}

func classifyIntensity(ex Exercise) Intensity {
	text := searchText(ex)
	category := normalize(ex.Category)
	description := normalize(ex.Description)

	for _, rule := range intensityRules {
		if containsAny(text, rule.keywords) {
			return rule.intensity
		}
		if len(rule.categories) > 0 && equalsAny(category, rule.categories) {
			return rule.intensity
		}
		if len(rule.descriptionKeywords) > 0 && containsAny(description, rule.descriptionKeywords) {
			return rule.intensity
		}
	}

	if intensity, ok := difficultyFallback[normalize(ex.Level)]; ok {
		return intensity
	}
	return IntensityModerate
}

func classifyCategory(ex Exercise) Category {
	labelAndName := normalize(ex.Category) + " " + normalize(ex.Name)
	for _, rule := range categoryRules {
		if containsAny(labelAndName, []string{rule.keyword}) {
			return rule.category
		}
	}
	return CategoryTherapeutic
}

// progressionLevel maps intensity onto the 1-5 progression scale.
func progressionLevel(intensity Intensity) int {
	return int(intensity)
}
