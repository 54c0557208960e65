package catalog

import "strings"

// CategoryAll matches every profile when filtering.
const CategoryAll Category = "all"

// Filter returns the profiles whose name, description, or any tag
// contains the query (case-insensitive) and whose category matches.
// Relative order is preserved.
func Filter(profiles []Profile, query string, category Category) []Profile {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Profile
	for _, p := range profiles {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Profile, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// AverageRating returns the mean rating across profiles, 0 for an
// empty list.
func AverageRating(profiles []Profile) float64 {
	if len(profiles) == 0 {
		return 0
	}
	var sum float64
	for _, p := range profiles {
		sum += p.Rating
	}
	return sum / float64(len(profiles))
}

// Featured returns up to n verified profiles, in catalog order.
func Featured(profiles []Profile, n int) []Profile {
	var out []Profile
	for _, p := range profiles {
		if !p.Verified {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}
