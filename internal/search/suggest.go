package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SuggestCategories fuzzy-matches user input against known category
// names, best matches first. Empty input returns all categories
// unchanged.
func SuggestCategories(categories []string, input string) []string {
	if strings.TrimSpace(input) == "" {
		return categories
	}

	matches := fuzzy.Find(input, categories)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
