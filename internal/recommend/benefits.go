package recommend

// benefitRule appends its benefits when the derived category matches or any
// keyword appears in the exercise name. Rules are checked in declaration
// order and accumulate; an exercise can collect benefits from several rules.
type benefitRule struct {
	category Category
	keywords []string
	benefits []string
}

var benefitRules = []benefitRule{
	{
		category: CategoryStretching,
		keywords: []string{"stretch"},
		benefits: []string{"improves flexibility", "reduces muscle tension", "increases range of motion"},
	},
	{
		category: CategoryMobility,
		keywords: []string{"mobility"},
		benefits: []string{"enhances joint mobility", "improves movement quality", "reduces stiffness"},
	},
	{
		category: CategoryStrength,
		keywords: []string{"strength"},
		benefits: []string{"builds muscle strength", "improves stability", "supports joint health"},
	},
	{
		category: CategoryBalance,
		keywords: []string{"balance"},
		benefits: []string{"improves balance", "enhances proprioception", "reduces fall risk"},
	},
	{
		category: CategoryCardio,
		keywords: []string{"cardio"},
		benefits: []string{"improves cardiovascular health", "increases endurance", "boosts energy"},
	},
	{
		keywords: []string{"gentle", "soft"},
		benefits: []string{"pain relief", "muscle relaxation", "stress reduction"},
	},
}

// Benefits derives the therapeutic benefit tags for a record. The returned
// order follows the fixed rule order; the list may be empty.
func Benefits(ex Exercise, category Category) []string {
	name := normalize(ex.Name)
	var out []string
	for _, rule := range benefitRules {
		if (rule.category != "" && rule.category == category) || containsAny(name, rule.keywords) {
			out = append(out, rule.benefits...)
		}
	}
	return out
}
