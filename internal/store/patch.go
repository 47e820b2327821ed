package store

import (
	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/search"
)

// Patch is a partial update. Nil fields are left untouched; a non-nil
// pointer overwrites the field, so pointing at a zero value clears it.
// ID and CreatedAt are never touched.
type Patch struct {
	URL        *string
	MimeType   *string
	MediaType  *string
	Title      *string
	SourceURL  *string
	Categories *[]string
	Topics     *[]string
}

func applyPatch(r *model.Record, p Patch) {
	if p.URL != nil {
		r.URL = *p.URL
	}
	if p.MimeType != nil {
		r.MimeType = *p.MimeType
	}
	if p.MediaType != nil {
		r.MediaType = *p.MediaType
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.SourceURL != nil {
		r.SourceURL = *p.SourceURL
	}
	if p.Categories != nil {
		r.Categories = *p.Categories
	}
	if p.Topics != nil {
		r.Topics = *p.Topics
	}
	r.SearchTokens = search.BuildSearchTokens(*r)
}

// Update merges a patch into the record with the given id, recomputes
// its search tokens and persists. The record keeps its list position.
func (s *Store) Update(id string, patch Patch) (model.Record, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			applyPatch(&s.records[i], patch)
			s.persistLibrary()
			return s.records[i], nil
		}
	}
	return model.Record{}, ErrNotFound
}

// UpdateBulk applies the same patch to every record whose id is in the
// set, recomputing tokens per record, and persists once. Returns the
// full updated record list.
func (s *Store) UpdateBulk(ids []string, patch Patch) []model.Record {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	touched := false
	for i := range s.records {
		if idSet[s.records[i].ID] {
			applyPatch(&s.records[i], patch)
			touched = true
		}
	}

	if touched {
		s.persistLibrary()
	}
	return s.records
}
