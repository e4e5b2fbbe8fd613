// Package matcher decides which recipe ingredients a pantry already covers.
//
// Matching is bidirectional substring containment after lower-casing: a
// recipe ingredient is available when it contains a pantry name or a pantry
// name contains it. "chicken" covers "chicken breast" and "egg" also covers
// "eggplant"; there is no stemming or distance metric.
package matcher

import "strings"

// normalizePantry lower-cases and trims pantry names and drops blanks, since
// the empty string is a substring of every ingredient.
func normalizePantry(pantry []string) []string {
	out := make([]string, 0, len(pantry))
	for _, p := range pantry {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func covered(normPantry []string, ingredient string) bool {
	r := strings.ToLower(ingredient)
	for _, p := range normPantry {
		if strings.Contains(r, p) || strings.Contains(p, r) {
			return true
		}
	}
	return false
}

// Partition splits ingredients into those the pantry covers and those it
// does not. Both slices keep the recipe's order and casing, and every
// ingredient ends up in exactly one of them.
func Partition(pantry, ingredients []string) (available, missing []string) {
	norm := normalizePantry(pantry)
	available = []string{}
	missing = []string{}
	for _, ing := range ingredients {
		if covered(norm, ing) {
			available = append(available, ing)
		} else {
			missing = append(missing, ing)
		}
	}
	return available, missing
}

// Matches reports whether at least one ingredient is covered by the pantry.
func Matches(pantry, ingredients []string) bool {
	norm := normalizePantry(pantry)
	for _, ing := range ingredients {
		if covered(norm, ing) {
			return true
		}
	}
	return false
}

// HasEntries reports whether the pantry holds any usable name.
func HasEntries(pantry []string) bool {
	return len(normalizePantry(pantry)) > 0
}
