package recommend

// contraindicationRule adds pain levels and/or condition keywords when any of
// its keywords appear in the exercise name. Rules are independent: every
// matching rule contributes, and contributions are unioned.
type contraindicationRule struct {
	keywords   []string
	painLevels []int
	conditions []string
}

var contraindicationRules = []contraindicationRule{
	{
		keywords:   []string{"jump", "impact", "plyometric"},
		painLevels: []int{6, 7, 8, 9, 10},
	},
	{
		keywords:   []string{"twist", "rotation", "spinal"},
		conditions: []string{"back pain", "spinal injury", "disc herniation"},
	},
	{
		keywords:   []string{"squat", "lunge", "step"},
		conditions: []string{"knee injury", "ankle injury", "joint replacement"},
	},
	{
		keywords:   []string{"overhead", "press", "raise"},
		conditions: []string{"shoulder impingement", "rotator cuff injury", "frozen shoulder"},
	},
}

// Detect returns the contraindicated pain levels and condition keywords for a
// record. It is total and returns empty sets when nothing matches.
func Detect(ex Exercise) Contraindications {
	name := normalize(ex.Name)
	var out Contraindications
	for _, rule := range contraindicationRules {
		if !containsAny(name, rule.keywords) {
			continue
		}
		out.PainLevels = appendMissingInts(out.PainLevels, rule.painLevels)
		out.Conditions = appendMissingStrings(out.Conditions, rule.conditions)
	}
	return out
}

func appendMissingInts(dst, src []int) []int {
	for _, v := range src {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

func appendMissingStrings(dst, src []string) []string {
	for _, v := range src {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
