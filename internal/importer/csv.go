package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/pin/internal/model"
)

// ErrNoURLColumn is returned when no header maps to the url field.
var ErrNoURLColumn = errors.New("csv has no url column")

// Entry is one imported bookmark candidate before validation.
type Entry struct {
	URL        string
	Title      string
	SourceURL  string
	MimeType   string
	MediaType  string
	Categories []string
	CreatedAt  int64 // epoch milliseconds, 0 = unset
}

// headerSynonyms tolerates minor header variation across exports.
// Keys are headers with casing and punctuation stripped.
var headerSynonyms = map[string]string{
	"url":           "url",
	"imageurl":      "url",
	"image":         "url",
	"title":         "title",
	"name":          "title",
	"sourceurl":     "sourceUrl",
	"source":        "sourceUrl",
	"sourcepage":    "sourceUrl",
	"sourcepageurl": "sourceUrl",
	"categories":    "categories",
	"category":      "categories",
	"tags":          "categories",
	"mediatype":     "mediaType",
	"type":          "mediaType",
	"mimetype":      "mimeType",
	"mime":          "mimeType",
	"createdat":     "createdAt",
	"created":       "createdAt",
	"timestamp":     "createdAt",
}

// ParseCSV reads bookmark entries from CSV. Headers match through the
// synonym table regardless of casing or punctuation; rows without a
// non-empty url are skipped.
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = false

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	// Drop fully blank rows
	filtered := rows[:0]
	for _, row := range rows {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if !blank {
			filtered = append(filtered, row)
		}
	}
	rows = filtered

	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int)
	for i, cell := range rows[0] {
		if field, ok := headerSynonyms[normalizeHeader(cell)]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = i
			}
		}
	}
	if _, ok := columns["url"]; !ok {
		return nil, ErrNoURLColumn
	}

	cell := func(row []string, field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var entries []Entry
	for _, row := range rows[1:] {
		url := strings.TrimSpace(cell(row, "url"))
		if url == "" {
			continue
		}

		entries = append(entries, Entry{
			URL:        url,
			Title:      strings.TrimSpace(cell(row, "title")),
			SourceURL:  strings.TrimSpace(cell(row, "sourceUrl")),
			MimeType:   strings.TrimSpace(cell(row, "mimeType")),
			MediaType:  parseMediaType(cell(row, "mediaType")),
			Categories: parseCategories(cell(row, "categories")),
			CreatedAt:  parseCreatedAt(cell(row, "createdAt")),
		})
	}

	return entries, nil
}

// normalizeHeader strips everything but letters and digits, lowercased.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseCategories splits on "|" or ";" when present, else commas.
func parseCategories(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	delimiter := ","
	if i := strings.IndexAny(trimmed, "|;"); i >= 0 {
		delimiter = string(trimmed[i])
	}

	var parts []string
	for _, part := range strings.Split(trimmed, delimiter) {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// parseCreatedAt reads a raw millisecond number, falling back to a date
// string. Unparsable values leave the field unset.
func parseCreatedAt(value string) int64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}

	if millis, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return millis
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

func parseMediaType(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case model.MediaImage:
		return model.MediaImage
	case model.MediaVideo:
		return model.MediaVideo
	}
	return ""
}
