package filter

import (
	"sort"
	"strings"

	"github.com/nikbrunner/pin/internal/model"
)

// All is the single-select sentinel that passes every record.
const All = "All"

// Selection is the active category/topic narrowing. Multi-select
// categories use AND semantics; the single-select slot matches one
// category (or topic slug) exactly, with All passing everything.
type Selection struct {
	Categories []string
	Single     string
}

// Empty reports whether the selection narrows nothing.
func (s Selection) Empty() bool {
	return len(s.Categories) == 0 && (s.Single == "" || s.Single == All)
}

// Has reports whether the category is part of the multi-selection.
func (s Selection) Has(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Toggle adds or removes a category from the multi-selection.
func (s *Selection) Toggle(category string) {
	for i, c := range s.Categories {
		if c == category {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return
		}
	}
	s.Categories = append(s.Categories, category)
}

// Remove drops the category from both the multi-selection and the
// single-select slot. Called when a category is deleted everywhere so no
// filter references a now-nonexistent tag.
func (s *Selection) Remove(category string) {
	for i, c := range s.Categories {
		if c == category {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			break
		}
	}
	if s.Single == category {
		s.Single = ""
	}
}

// SortedCategories returns the multi-selection in sorted order, used for
// building stable pagination-memory keys.
func (s Selection) SortedCategories() []string {
	sorted := make([]string, len(s.Categories))
	copy(sorted, s.Categories)
	sort.Strings(sorted)
	return sorted
}

// Key returns a stable identity for the selection.
func (s Selection) Key() string {
	parts := s.SortedCategories()
	if s.Single != "" && s.Single != All {
		parts = append(parts, s.Single)
	}
	return strings.Join(parts, ",")
}

// Matches reports whether a single record passes the selection.
func (s Selection) Matches(r model.Record) bool {
	for _, c := range s.Categories {
		if !r.HasCategory(c) {
			return false
		}
	}

	if s.Single == "" || s.Single == All {
		return true
	}
	return r.HasCategory(s.Single) || r.LegacyCategory == s.Single || r.HasTopic(s.Single)
}

// Apply narrows records to those passing the selection.
func Apply(records []model.Record, s Selection) []model.Record {
	if s.Empty() {
		return records
	}

	var result []model.Record
	for _, r := range records {
		if s.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}
