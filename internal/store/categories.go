package store

import (
	"sort"
	"strings"
)

// CustomCategories returns the user-maintained category name list.
func (s *Store) CustomCategories() []string {
	return s.custom
}

// AddCustomCategory adds a category name to the custom list. Matching
// against existing names is case-insensitive, but names are stored with
// their original casing. Returns the canonical name and whether it was
// newly added.
func (s *Store) AddCustomCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	for _, existing := range s.custom {
		if strings.EqualFold(existing, name) {
			return existing, false
		}
	}

	s.custom = append(s.custom, name)
	s.persistCustomCategories()
	return name, true
}

// RemoveCategoryEverywhere strips the category (exact string match) from
// every record's category list and from the custom list, persisting both.
func (s *Store) RemoveCategoryEverywhere(category string) {
	recordsChanged := false
	for i := range s.records {
		r := &s.records[i]
		if !r.HasCategory(category) {
			continue
		}
		kept := r.Categories[:0]
		for _, c := range r.Categories {
			if c != category {
				kept = append(kept, c)
			}
		}
		r.Categories = kept
		applyPatch(r, Patch{}) // recompute tokens
		recordsChanged = true
	}
	if recordsChanged {
		s.persistLibrary()
	}

	for i, c := range s.custom {
		if c == category {
			s.custom = append(s.custom[:i], s.custom[i+1:]...)
			s.persistCustomCategories()
			break
		}
	}
}

// AllCategories returns the union of custom names and every category
// used on a record, sorted. The TUI filter cycles through these.
func (s *Store) AllCategories() []string {
	seen := make(map[string]bool)
	var all []string

	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			all = append(all, name)
		}
	}

	for _, c := range s.custom {
		add(c)
	}
	for _, r := range s.records {
		for _, c := range r.Categories {
			add(c)
		}
	}

	sort.Strings(all)
	return all
}
