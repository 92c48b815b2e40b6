package catalog

import "strings"

// CategoryAll is the sentinel that bypasses category filtering.
const CategoryAll = "all"

// CommonSymptoms is the fixed quick-pick list offered by the symptom matcher.
var CommonSymptoms = []string{
	"Fever", "Headache", "Cold", "Cough", "Body Pain",
	"Acidity", "Sore Throat", "Allergy", "Infection", "Stomach Pain",
}

// Search filters records by free text and category. Text matches
// case-insensitively as a substring of the name, the category, or any symptom
// tag; blank text matches everything. Category is an exact match as stored,
// with CategoryAll (or blank) bypassing the filter. Both filters are ANDed
// and store order is preserved. No match yields an empty, non-nil slice.
func Search(records []Medicine, text, category string) []Medicine {
	query := strings.ToLower(strings.TrimSpace(text))
	out := make([]Medicine, 0, len(records))
	for _, m := range records {
		if category != "" && category != CategoryAll && m.Category != category {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesQuery(m Medicine, query string) bool {
	if strings.Contains(strings.ToLower(m.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Category), query) {
		return true
	}
	for _, symptom := range m.Symptoms {
		if strings.Contains(strings.ToLower(symptom), query) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in first-seen store order.
func Categories(records []Medicine) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, m := range records {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	return out
}
