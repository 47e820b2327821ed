package importer

import (
	"errors"

	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/store"
)

// ErrNoValidRows is returned when an import contains nothing usable.
var ErrNoValidRows = errors.New("no valid rows to import")

// Summary reports the outcome of a bulk import for user feedback.
type Summary struct {
	Added   int // records created
	Skipped int // URLs already present in the store
	Invalid int // rows failing URL validation
}

// Import validates entries and adds the survivors to the store in one
// persist. A row fails validation when its URL is not http(s), unless it
// is explicitly marked as video. Already-present URLs (post
// normalization) are skipped. Returns ErrNoValidRows when every row was
// rejected.
func Import(st *store.Store, entries []Entry) (Summary, error) {
	var summary Summary
	var params []model.NewRecordParams

	seen := make(map[string]bool) // dedupe within the batch itself

	for _, e := range entries {
		if !model.IsHTTPURL(e.URL) && e.MediaType != model.MediaVideo {
			summary.Invalid++
			continue
		}
		if st.HasURL(e.URL) || seen[e.URL] {
			summary.Skipped++
			continue
		}
		seen[e.URL] = true

		mediaType := e.MediaType
		if mediaType == "" {
			mediaType = model.InferMediaType(e.URL, e.MimeType)
		}

		params = append(params, model.NewRecordParams{
			URL:        e.URL,
			Title:      e.Title,
			SourceURL:  e.SourceURL,
			MimeType:   e.MimeType,
			MediaType:  mediaType,
			Categories: e.Categories,
			CreatedAt:  e.CreatedAt,
		})
	}

	if len(params) == 0 {
		return summary, ErrNoValidRows
	}

	added := st.AddMany(params)
	summary.Added = len(added)
	return summary, nil
}
