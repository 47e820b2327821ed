package model

import (
	"strings"
	"time"
)

// Media classifications used to select the rendering widget.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Record represents one bookmarked image or video with metadata.
type Record struct {
	ID         string   `json:"id"`
	URL        string   `json:"url"`
	MimeType   string   `json:"mimeType,omitempty"`
	MediaType  string   `json:"mediaType,omitempty"`
	Title      string   `json:"title,omitempty"`
	SourceURL  string   `json:"sourceUrl,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Topics     []string `json:"topics,omitempty"` // topic slugs
	CreatedAt  int64    `json:"createdAt"`        // epoch milliseconds

	// LegacyCategory is the singular category field from old blobs.
	// It is folded into Categories during migration but still feeds
	// search token derivation when present.
	LegacyCategory string `json:"category,omitempty"`

	// SearchTokens is the precomputed token set used for searching.
	// Missing entries are backfilled on load.
	SearchTokens []string `json:"searchTokens,omitempty"`
}

// NewRecordParams holds parameters for creating a new Record.
type NewRecordParams struct {
	URL        string
	MimeType   string
	MediaType  string
	Title      string
	SourceURL  string
	Categories []string
	Topics     []string
	CreatedAt  int64 // optional, 0 = now
}

// NewRecord creates a Record with generated UUID and creation timestamp.
// SearchTokens are left empty; the store computes them on insert.
func NewRecord(params NewRecordParams) Record {
	createdAt := params.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	return Record{
		ID:         GenerateUUID(),
		URL:        params.URL,
		MimeType:   params.MimeType,
		MediaType:  params.MediaType,
		Title:      params.Title,
		SourceURL:  params.SourceURL,
		Categories: params.Categories,
		Topics:     params.Topics,
		CreatedAt:  createdAt,
	}
}

// HasCategory reports whether the record carries the category (exact match).
func (r Record) HasCategory(category string) bool {
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// HasTopic reports whether the record references the topic slug.
func (r Record) HasTopic(slug string) bool {
	for _, t := range r.Topics {
		if t == slug {
			return true
		}
	}
	return false
}

// IsVideo reports whether the record should render as video.
func (r Record) IsVideo() bool {
	if r.MediaType == MediaVideo {
		return true
	}
	if strings.HasPrefix(r.MimeType, "video/") {
		return true
	}
	return strings.HasPrefix(r.URL, "data:video/")
}

// DisplayTitle returns the title, falling back to the URL.
func (r Record) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.URL
}
