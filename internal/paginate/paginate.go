package paginate

import (
	"github.com/nikbrunner/pin/internal/filter"
	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/search"
)

// DefaultPageSize is used when no preference is stored.
const DefaultPageSize = 24

// PageSizes are the selectable page sizes.
var PageSizes = []int{12, 24, 48, 96}

// ValidPageSize reports whether size is one of the selectable options.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// NextPageSize returns the option after size, wrapping around.
func NextPageSize(size int) int {
	for i, s := range PageSizes {
		if s == size {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return DefaultPageSize
}

// TotalPages computes the page count for n items: max(1, ceil(n/size)).
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (n + size - 1) / size
	if total < 1 {
		total = 1
	}
	return total
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the records on the given 1-based page.
func Slice(records []model.Record, page, size int) []model.Record {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = Clamp(page, TotalPages(len(records), size))

	start := (page - 1) * size
	if start >= len(records) {
		return nil
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Key builds the pagination-memory key for a filter/search combination:
// the selection identity, then "::" and the normalized search text.
func Key(sel filter.Selection, query string) string {
	return sel.Key() + "::" + search.Normalize(query)
}
