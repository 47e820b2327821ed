package importer_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/pin/internal/importer"
	"github.com/nikbrunner/pin/internal/logger"
	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/storage"
	"github.com/nikbrunner/pin/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(storage.NewMemoryBackend(), logger.Nop())
}

func TestImport_CountsAndValidation(t *testing.T) {
	st := newStore(t)
	st.Add(model.NewRecordParams{URL: "https://example.com/existing.jpg"})

	entries := []importer.Entry{
		{URL: "https://example.com/a.jpg", Title: "A"},
		{URL: "https://example.com/existing.jpg"},          // already stored
		{URL: "not a url"},                                 // invalid
		{URL: "file:///tmp/x.jpg"},                         // invalid scheme
		{URL: "custom://stream/1", MediaType: "video"},     // video escape hatch
		{URL: "https://example.com/a.jpg", Title: "again"}, // dup within batch
	}

	summary, err := importer.Import(st, entries)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if summary.Added != 2 {
		t.Errorf("added = %d, want 2", summary.Added)
	}
	if summary.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", summary.Skipped)
	}
	if summary.Invalid != 2 {
		t.Errorf("invalid = %d, want 2", summary.Invalid)
	}
	if st.Len() != 3 {
		t.Errorf("store has %d records, want 3", st.Len())
	}
}

func TestImport_InfersMediaType(t *testing.T) {
	st := newStore(t)

	entries := []importer.Entry{
		{URL: "https://example.com/clip.mp4"},
		{URL: "https://example.com/pic.png"},
	}
	if _, err := importer.Import(st, entries); err != nil {
		t.Fatal(err)
	}

	byURL := make(map[string]model.Record)
	for _, r := range st.Records() {
		byURL[r.URL] = r
	}
	if got := byURL["https://example.com/clip.mp4"].MediaType; got != model.MediaVideo {
		t.Errorf("mp4 mediaType = %q, want video", got)
	}
	if got := byURL["https://example.com/pic.png"].MediaType; got != model.MediaImage {
		t.Errorf("png mediaType = %q, want image", got)
	}
}

func TestImport_NoValidRows(t *testing.T) {
	st := newStore(t)

	_, err := importer.Import(st, []importer.Entry{
		{URL: "nope"},
		{URL: "also nope"},
	})
	if !errors.Is(err, importer.ErrNoValidRows) {
		t.Errorf("expected ErrNoValidRows, got %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("store must stay empty, has %d", st.Len())
	}
}

func TestImport_PreservesMetadata(t *testing.T) {
	st := newStore(t)

	entries := []importer.Entry{{
		URL:        "https://example.com/a.jpg",
		Title:      "A",
		SourceURL:  "https://example.com/gallery",
		Categories: []string{"cats"},
		CreatedAt:  1700000000000,
	}}
	if _, err := importer.Import(st, entries); err != nil {
		t.Fatal(err)
	}

	r := st.Records()[0]
	if r.Title != "A" || r.SourceURL != "https://example.com/gallery" {
		t.Errorf("metadata lost: %+v", r)
	}
	if !r.HasCategory("cats") {
		t.Errorf("categories lost: %v", r.Categories)
	}
	if r.CreatedAt != 1700000000000 {
		t.Errorf("createdAt = %d", r.CreatedAt)
	}
	if len(r.SearchTokens) == 0 {
		t.Error("imported records must carry search tokens")
	}
}
