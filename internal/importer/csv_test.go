package importer_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/pin/internal/importer"
)

func TestParseCSV_NonstandardHeaders(t *testing.T) {
	input := "Image URL,Name\nhttps://example.com/cat.jpg,Cat\n"

	entries, err := importer.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].URL != "https://example.com/cat.jpg" {
		t.Errorf("url = %q", entries[0].URL)
	}
	if entries[0].Title != "Cat" {
		t.Errorf("title = %q", entries[0].Title)
	}
}

func TestParseCSV_HeaderSynonyms(t *testing.T) {
	input := "IMAGE,name,Source Page URL,TAGS,Type,MIME,Created\n" +
		"https://example.com/a.jpg,A,https://example.com,\"cats, pets\",image,image/jpeg,2024-01-15\n"

	entries, err := importer.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.SourceURL != "https://example.com" {
		t.Errorf("sourceUrl = %q", e.SourceURL)
	}
	if !reflect.DeepEqual(e.Categories, []string{"cats", "pets"}) {
		t.Errorf("categories = %v", e.Categories)
	}
	if e.MediaType != "image" || e.MimeType != "image/jpeg" {
		t.Errorf("mediaType = %q, mimeType = %q", e.MediaType, e.MimeType)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	if e.CreatedAt != want {
		t.Errorf("createdAt = %d, want %d", e.CreatedAt, want)
	}
}

func TestParseCSV_NoURLColumn(t *testing.T) {
	input := "Title,Description\nCat,Fluffy\n"

	if _, err := importer.ParseCSV(strings.NewReader(input)); !errors.Is(err, importer.ErrNoURLColumn) {
		t.Errorf("expected ErrNoURLColumn, got %v", err)
	}
}

func TestParseCSV_SkipsBlankAndURLlessRows(t *testing.T) {
	input := "url,title\n" +
		"https://example.com/a.jpg,A\n" +
		",missing url\n" +
		"\n" +
		"https://example.com/b.jpg,B\n"

	entries, err := importer.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "A" || entries[1].Title != "B" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParseCSV_CategoryDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"pipes", "cats | pets | home", []string{"cats", "pets", "home"}},
		{"semicolons", "cats; pets", []string{"cats", "pets"}},
		{"commas", "\"cats, pets\"", []string{"cats", "pets"}},
		{"single", "cats", []string{"cats"}},
		{"empty", "", nil},
		{"blank parts", "cats | | pets", []string{"cats", "pets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "url,categories\nhttps://example.com/a.jpg," + tt.value + "\n"
			entries, err := importer.ParseCSV(strings.NewReader(input))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if !reflect.DeepEqual(entries[0].Categories, tt.want) {
				t.Errorf("categories = %v, want %v", entries[0].Categories, tt.want)
			}
		})
	}
}

func TestParseCSV_CreatedAtFormats(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{"epoch millis", "1700000000000", 1700000000000},
		{"rfc3339", "2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).UnixMilli()},
		{"date only", "2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).UnixMilli()},
		{"garbage", "yesterday", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "url,createdAt\nhttps://example.com/a.jpg," + tt.value + "\n"
			entries, err := importer.ParseCSV(strings.NewReader(input))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if entries[0].CreatedAt != tt.want {
				t.Errorf("createdAt = %d, want %d", entries[0].CreatedAt, tt.want)
			}
		})
	}
}

func TestParseCSV_RaggedRows(t *testing.T) {
	// Rows shorter than the header must not panic or error
	input := "url,title,sourceUrl\nhttps://example.com/a.jpg\n"

	entries, err := importer.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	entries, err := importer.ParseCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries, got %v", entries)
	}
}
