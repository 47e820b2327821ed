package exporter

import (
	"fmt"
	"html"
	"strings"

	"github.com/nikbrunner/pin/internal/model"
)

// BuildGalleryHTML renders the library as a self-contained HTML gallery
// page: one figure per record with the matching media widget.
func BuildGalleryHTML(records []model.Record) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Image Bookmarks</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: sans-serif; background: #111; color: #eee; margin: 2rem; }\n")
	b.WriteString(".grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }\n")
	b.WriteString("figure { margin: 0; }\n")
	b.WriteString("img, video { width: 100%; border-radius: 4px; }\n")
	b.WriteString("figcaption { font-size: 0.85rem; padding-top: 0.25rem; }\n")
	b.WriteString(".cats { color: #999; font-size: 0.75rem; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>Image Bookmarks (%d)</h1>\n", len(records))
	b.WriteString("<div class=\"grid\">\n")

	for _, r := range records {
		b.WriteString("<figure>\n")

		url := html.EscapeString(r.URL)
		if r.IsVideo() {
			fmt.Fprintf(&b, "  <video src=\"%s\" controls muted></video>\n", url)
		} else {
			fmt.Fprintf(&b, "  <img src=\"%s\" loading=\"lazy\" alt=\"%s\">\n",
				url, html.EscapeString(r.Title))
		}

		b.WriteString("  <figcaption>")
		if r.SourceURL != "" {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>",
				html.EscapeString(r.SourceURL), html.EscapeString(r.DisplayTitle()))
		} else {
			b.WriteString(html.EscapeString(r.DisplayTitle()))
		}
		if len(r.Categories) > 0 {
			fmt.Fprintf(&b, "<div class=\"cats\">%s</div>",
				html.EscapeString(strings.Join(r.Categories, " | ")))
		}
		b.WriteString("</figcaption>\n")

		b.WriteString("</figure>\n")
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}
