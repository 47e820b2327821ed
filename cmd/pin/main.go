package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/pin/internal/dedupe"
	"github.com/nikbrunner/pin/internal/exporter"
	"github.com/nikbrunner/pin/internal/importer"
	"github.com/nikbrunner/pin/internal/logger"
	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/paginate"
	"github.com/nikbrunner/pin/internal/picker"
	"github.com/nikbrunner/pin/internal/search"
	"github.com/nikbrunner/pin/internal/storage"
	"github.com/nikbrunner/pin/internal/store"
	"github.com/nikbrunner/pin/internal/tui"
)

func main() {
	args, verbose := splitVerbose(os.Args[1:])
	log := logger.New(verbose)
	defer log.Sync()

	if len(args) >= 1 {
		switch args[0] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "add":
			if len(args) < 2 {
				fmt.Fprintf(os.Stderr, "Usage: pin add <url> [title...]\n")
				os.Exit(1)
			}
			runAdd(log, args[1], strings.Join(args[2:], " "))
			return
		case "list":
			runList(log)
			return
		case "dupes":
			runDupes(log)
			return
		case "import":
			if len(args) < 2 {
				fmt.Fprintf(os.Stderr, "Usage: pin import <file.csv|file.html>\n")
				os.Exit(1)
			}
			runImport(log, args[1])
			return
		case "export":
			var outputPath string
			if len(args) >= 2 {
				outputPath = args[1]
			}
			runExport(log, outputPath)
			return
		case "tag":
			if len(args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: pin tag <category> <query...>\n")
				os.Exit(1)
			}
			runTag(log, args[1], strings.Join(args[2:], " "))
			return
		case "topic":
			runTopic(log, args[1:])
			return
		case "cat":
			runCategory(log, args[1:])
			return
		default:
			// Treat as search query (join all remaining args)
			runQuickSearch(log, strings.Join(args, " "))
			return
		}
	}

	// No args - run full TUI
	runTUI(log)
}

// splitVerbose strips -v/--verbose from the argument list.
func splitVerbose(args []string) ([]string, bool) {
	verbose := false
	rest := args[:0]
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			verbose = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, verbose
}

func printHelp() {
	help := `pin - image/video bookmark manager

Usage:
  pin                       Open interactive browser
  pin <query>               Quick search → select → open
  pin add <url> [title]     Bookmark an image or video URL
  pin list                  Print all bookmarks
  pin dupes                 Show duplicate bookmarks
  pin import <file>         Import bookmarks from CSV or bookmark HTML
  pin export [path]         Export bookmarks (CSV, or HTML gallery for .html)
  pin tag <cat> <query>     Add a category to every bookmark matching a search
  pin topic <cmd>           Manage topics (list | add | rename | rm)
  pin cat <cmd>             Manage categories (list [filter] | add | rm)
  pin help                  Show this help

Browser Keybindings:
  j/k         Move down/up
  h/l         Previous/next page
  /           Search
  c           Cycle category filter
  C           Clear filters
  D           Toggle duplicates-only
  s           Cycle page size
  o/Enter     Open in browser
  Y           Copy URL to clipboard
  d           Delete bookmark
  X           Delete the filtered category everywhere
  q           Quit

Data Storage:
  ~/.config/pin/
`
	fmt.Print(help)
}

// openStore loads the bookmark store or exits.
func openStore(log logger.Logger) (*store.Store, storage.Backend) {
	backend, err := storage.OpenBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	return store.Open(backend, log), backend
}

// runTUI runs the full interactive browser.
func runTUI(log logger.Logger) {
	st, backend := openStore(log)
	pager := paginate.NewPager(backend, log)

	app := tui.NewApp(tui.AppParams{Store: st, Pager: pager})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runAdd bookmarks a single URL.
func runAdd(log logger.Logger, url, title string) {
	if !model.IsHTTPURL(url) && !model.IsDataURL(url) {
		fmt.Fprintf(os.Stderr, "Invalid URL: %s\n", url)
		os.Exit(1)
	}

	st, _ := openStore(log)

	if st.HasURL(url) {
		st.MoveToFront(url)
		fmt.Println("Already bookmarked - moved to front")
		return
	}

	record := st.Add(model.NewRecordParams{
		URL:       url,
		Title:     title,
		MediaType: model.InferMediaType(url, ""),
	})
	fmt.Printf("Added %s\n", record.DisplayTitle())
}

// runList prints every bookmark.
func runList(log logger.Logger) {
	st, _ := openStore(log)

	for _, r := range st.Records() {
		line := r.DisplayTitle()
		if len(r.Categories) > 0 {
			line += " (" + strings.Join(r.Categories, ", ") + ")"
		}
		fmt.Println(line)
		if r.Title != "" {
			fmt.Printf("  %s\n", r.URL)
		}
	}
	fmt.Printf("%d bookmarks\n", st.Len())
}

// runDupes prints duplicate bookmark groups.
func runDupes(log logger.Logger) {
	st, _ := openStore(log)

	ids := dedupe.FindDuplicateIDs(st.Records())
	duplicates := dedupe.Filter(st.Records(), ids)
	if len(duplicates) == 0 {
		fmt.Println("No duplicates found")
		return
	}

	for _, r := range duplicates {
		fmt.Printf("%s\n  %s\n", r.DisplayTitle(), r.URL)
	}
	fmt.Printf("%d duplicate bookmarks\n", len(duplicates))
}

// runQuickSearch performs a search and opens the selected bookmark.
func runQuickSearch(log logger.Logger, query string) {
	st, _ := openStore(log)

	results := search.Search(st.Records(), query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Record
	copied := false

	if len(results) == 1 {
		selected = &results[0].Record
		fmt.Printf("Opening: %s\n", selected.DisplayTitle())
	} else {
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedRecord()
		copied = finalPicker.Copied()
	}

	if selected == nil {
		os.Exit(0)
	}

	if copied {
		fmt.Println("Copied URL to clipboard")
		return
	}

	tui.OpenURL(selected.URL)
}

// runTag adds a category to every bookmark matching the query.
func runTag(log logger.Logger, category, query string) {
	st, _ := openStore(log)

	results := search.Search(st.Records(), query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return
	}

	tagged := 0
	for _, result := range results {
		if result.Record.HasCategory(category) {
			continue
		}
		categories := append(append([]string{}, result.Record.Categories...), category)
		if _, err := st.Update(result.Record.ID, store.Patch{Categories: &categories}); err != nil {
			fmt.Fprintf(os.Stderr, "Error tagging %s: %v\n", result.Record.DisplayTitle(), err)
			os.Exit(1)
		}
		tagged++
	}

	fmt.Printf("Tagged %d of %d matching bookmarks with %s\n", tagged, len(results), category)
}

// runImport handles the import subcommand.
func runImport(log logger.Logger, filePath string) {
	st, _ := openStore(log)

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var entries []importer.Entry
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html", ".htm":
		entries, err = importer.ParseNetscapeHTML(file)
	default:
		entries, err = importer.ParseCSV(file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", filePath, err)
		os.Exit(1)
	}

	summary, err := importer.Import(st, entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import aborted: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d bookmarks", summary.Added)
	if summary.Skipped > 0 {
		fmt.Printf(" (%d already present)", summary.Skipped)
	}
	if summary.Invalid > 0 {
		fmt.Printf(" (%d invalid URLs skipped)", summary.Invalid)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(log logger.Logger, outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultCSVExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	st, _ := openStore(log)

	var content string
	if ext := strings.ToLower(filepath.Ext(outputPath)); ext == ".html" || ext == ".htm" {
		content = exporter.BuildGalleryHTML(st.Records())
	} else {
		content = exporter.BuildCSV(st.Records())
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d bookmarks to %s\n", st.Len(), outputPath)
}

// runTopic handles the topic subcommands.
func runTopic(log logger.Logger, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	st, _ := openStore(log)

	switch args[0] {
	case "list":
		for _, t := range st.Topics() {
			fmt.Printf("%s\t%s\n", t.Slug, t.Name)
		}
	case "add":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: pin topic add <name>\n")
			os.Exit(1)
		}
		topic, err := st.AddTopic(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding topic: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added topic %s (%s)\n", topic.Name, topic.Slug)
	case "rename":
		if len(args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: pin topic rename <slug> <new name>\n")
			os.Exit(1)
		}
		topic, err := st.RenameTopic(args[1], strings.Join(args[2:], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error renaming topic: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Renamed to %s (%s)\n", topic.Name, topic.Slug)
	case "rm":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: pin topic rm <slug>\n")
			os.Exit(1)
		}
		st.RemoveTopic(args[1])
		fmt.Printf("Removed topic %s\n", args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown topic command: %s\n", args[0])
		os.Exit(1)
	}
}

// runCategory handles the cat subcommands.
func runCategory(log logger.Logger, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	st, _ := openStore(log)

	switch args[0] {
	case "list":
		categories := st.AllCategories()
		if len(args) >= 2 {
			categories = search.SuggestCategories(categories, strings.Join(args[1:], " "))
		}
		for _, c := range categories {
			fmt.Println(c)
		}
	case "add":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: pin cat add <name>\n")
			os.Exit(1)
		}
		name := strings.Join(args[1:], " ")
		canonical, added := st.AddCustomCategory(name)
		if added {
			fmt.Printf("Added category %s\n", canonical)
		} else {
			fmt.Printf("Category already exists as %s\n", canonical)
		}
	case "rm":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: pin cat rm <name>\n")
			os.Exit(1)
		}
		st.RemoveCategoryEverywhere(strings.Join(args[1:], " "))
		fmt.Println("Removed category from every bookmark")
	default:
		fmt.Fprintf(os.Stderr, "Unknown cat command: %s\n", args[0])
		os.Exit(1)
	}
}
