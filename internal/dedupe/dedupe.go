package dedupe

import (
	"strings"

	"github.com/nikbrunner/pin/internal/model"
)

// NormalizeURL produces the grouping key for duplicate detection.
// Conventional URLs compare case- and whitespace-insensitively; data
// URLs embed their content, so they compare by exact bytes.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "data:") {
		return trimmed
	}
	return strings.ToLower(trimmed)
}

// FindDuplicateIDs groups records by normalized URL and returns the ids
// of every record belonging to a group with more than one member.
func FindDuplicateIDs(records []model.Record) map[string]bool {
	groups := make(map[string][]string)
	for _, r := range records {
		key := NormalizeURL(r.URL)
		groups[key] = append(groups[key], r.ID)
	}

	ids := make(map[string]bool)
	for _, group := range groups {
		if len(group) > 1 {
			for _, id := range group {
				ids[id] = true
			}
		}
	}
	return ids
}

// Filter narrows records to those whose id is in the duplicate set.
// Pure post-filter, order preserved.
func Filter(records []model.Record, ids map[string]bool) []model.Record {
	var result []model.Record
	for _, r := range records {
		if ids[r.ID] {
			result = append(result, r)
		}
	}
	return result
}
