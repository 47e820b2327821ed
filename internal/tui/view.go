package tui

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/pin/internal/filter"
)

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	// Header: counts and active narrowing
	header := fmt.Sprintf("pin — %d bookmarks", a.store.Len())
	if len(a.results) != a.store.Len() {
		header += fmt.Sprintf(" (%d shown)", len(a.results))
	}
	b.WriteString(a.styles.Header.Render(header))
	b.WriteString("\n")

	var badges []string
	if a.selection.Single != "" && a.selection.Single != filter.All {
		badges = append(badges, "category: "+a.selection.Single)
	}
	for _, c := range a.selection.Categories {
		badges = append(badges, "+"+c)
	}
	if a.dupesOnly {
		badges = append(badges, "duplicates only")
	}
	if len(badges) > 0 {
		b.WriteString(a.styles.Category.Render(strings.Join(badges, "  ")))
		b.WriteString("\n")
	}

	if a.searching || a.searchInput.Value() != "" {
		b.WriteString(a.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Record list for the current page
	page := a.visible()
	if len(page) == 0 {
		b.WriteString(a.styles.URL.Render("nothing here"))
		b.WriteString("\n")
	}
	for i, result := range page {
		cursor := "  "
		style := a.styles.Normal
		if i == a.cursor {
			cursor = "> "
			style = a.styles.Selected
		}

		line := style.Render(result.Record.DisplayTitle())
		if result.Record.IsVideo() {
			line += " " + a.styles.Video.Render("[video]")
		}
		if len(result.Record.Categories) > 0 {
			line += " " + a.styles.Category.Render("("+strings.Join(result.Record.Categories, ", ")+")")
		}
		if result.Score > 0 {
			line += a.styles.URL.Render(fmt.Sprintf("  %d", result.Score))
		}

		b.WriteString(cursor + line + "\n")
		b.WriteString("   " + a.styles.URL.Render(result.Record.URL) + "\n")
	}

	// Footer: pagination and status
	b.WriteString("\n")
	footer := fmt.Sprintf("page %d/%d · %d per page", a.page, a.TotalPages(), a.pager.PageSize())
	if a.status != "" {
		footer += "  " + a.styles.Status.Render(a.status)
	}
	b.WriteString(a.styles.Footer.Render(footer))
	b.WriteString("\n")
	b.WriteString(a.styles.Footer.Render("j/k: move  h/l: page  /: search  c: category  D: dupes  s: page size  o: open  Y: copy  d: delete  q: quit"))

	return b.String()
}
