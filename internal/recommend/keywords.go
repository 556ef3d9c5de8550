package recommend

import "strings"

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// searchText concatenates the record fields keyword rules match against.
func searchText(ex Exercise) string {
	parts := make([]string, 0, 4+len(ex.Instructions))
	parts = append(parts, ex.Name, ex.Description)
	parts = append(parts, ex.Instructions...)
	parts = append(parts, ex.Category)
	return normalize(strings.Join(parts, " "))
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func equalsAny(value string, candidates []string) bool {
	for _, candidate := range candidates {
		if value == candidate {
			return true
		}
	}
	return false
}

// containsEither reports whether a contains b or b contains a.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
