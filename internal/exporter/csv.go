package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/pin/internal/model"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"url", "title", "sourceUrl", "categories", "mediaType", "mimeType", "createdAt"}

// BuildCSV renders records as RFC-4180 CSV: one row per record,
// categories joined with " | ", createdAt as an ISO-8601 timestamp.
func BuildCSV(records []model.Record) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write(csvHeader)
	for _, r := range records {
		createdAt := ""
		if r.CreatedAt != 0 {
			createdAt = time.UnixMilli(r.CreatedAt).UTC().Format(time.RFC3339)
		}

		_ = w.Write([]string{
			r.URL,
			r.Title,
			r.SourceURL,
			strings.Join(r.Categories, " | "),
			r.MediaType,
			r.MimeType,
			createdAt,
		})
	}
	w.Flush()

	return b.String()
}

// DefaultCSVExportPath returns the default export file path.
// Format: ~/Downloads/image-bookmarks-YYYY-MM-DD.csv
func DefaultCSVExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("image-bookmarks-%s.csv", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}
