package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/pin/internal/dedupe"
	"github.com/nikbrunner/pin/internal/filter"
	"github.com/nikbrunner/pin/internal/paginate"
	"github.com/nikbrunner/pin/internal/search"
	"github.com/nikbrunner/pin/internal/store"
)

// App is the main bubbletea model for browsing the bookmark library.
type App struct {
	store  *store.Store
	pager  *paginate.Pager
	keys   KeyMap
	styles Styles

	// Filter state
	selection filter.Selection
	dupesOnly bool

	// Search state
	searchInput textinput.Model
	searching   bool

	// View state
	results []search.Result // filtered + ranked, all pages
	page    int
	cursor  int
	status  string

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store *store.Store
	Pager *paginate.Pager
	Keys  *KeyMap // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	input := textinput.New()
	input.Placeholder = "search"
	input.Prompt = "/"
	input.CharLimit = 100

	app := App{
		store:       params.Store,
		pager:       params.Pager,
		keys:        keys,
		styles:      DefaultStyles(),
		searchInput: input,
		page:        1,
		width:       80,
		height:      24,
	}

	app.refresh(true)
	return app
}

// refresh reruns the filter/search pipeline. When restorePage is set the
// page comes from the pagination memory for the current combination,
// otherwise the current page is clamped in place.
func (a *App) refresh(restorePage bool) {
	records := filter.Apply(a.store.Records(), a.selection)
	if a.dupesOnly {
		records = dedupe.Filter(records, dedupe.FindDuplicateIDs(records))
	}
	a.results = search.Search(records, a.searchInput.Value())

	total := paginate.TotalPages(len(a.results), a.pager.PageSize())
	if restorePage {
		a.page = paginate.Clamp(a.pager.PageFor(a.pageKey()), total)
	} else {
		a.page = paginate.Clamp(a.page, total)
	}
	a.clampCursor()
}

func (a *App) pageKey() string {
	return paginate.Key(a.selection, a.searchInput.Value())
}

func (a *App) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// visible returns the results on the current page.
func (a App) visible() []search.Result {
	size := a.pager.PageSize()
	start := (a.page - 1) * size
	if start >= len(a.results) {
		return nil
	}
	end := start + size
	if end > len(a.results) {
		end = len(a.results)
	}
	return a.results[start:end]
}

// selectedResult returns the result under the cursor, or nil.
func (a App) selectedResult() *search.Result {
	page := a.visible()
	if a.cursor < 0 || a.cursor >= len(page) {
		return nil
	}
	return &page[a.cursor]
}

// TotalPages returns the page count for the current result set.
func (a App) TotalPages() int {
	return paginate.TotalPages(len(a.results), a.pager.PageSize())
}

// Page returns the current 1-based page.
func (a App) Page() int {
	return a.page
}

// Cursor returns the cursor position on the current page.
func (a App) Cursor() int {
	return a.cursor
}

// Results returns the current filtered and ranked result list.
func (a App) Results() []search.Result {
	return a.results
}

// Selection returns the active filter selection.
func (a App) Selection() filter.Selection {
	return a.selection
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.searching {
			return a.updateSearch(msg)
		}
		return a.updateBrowse(msg)
	}

	return a, nil
}

// updateSearch handles keys while the search input is focused.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.searching = false
		a.searchInput.Blur()
		a.searchInput.SetValue("")
		a.refresh(true)
		return a, nil
	case tea.KeyEnter:
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	before := a.searchInput.Value()
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.refresh(true)
	}
	return a, cmd
}

// updateBrowse handles keys in the normal browse mode.
func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.NextPage):
		if a.page < a.TotalPages() {
			a.page++
			a.cursor = 0
			a.pager.Remember(a.pageKey(), a.page)
		}

	case key.Matches(msg, a.keys.PrevPage):
		if a.page > 1 {
			a.page--
			a.cursor = 0
			a.pager.Remember(a.pageKey(), a.page)
		}

	case key.Matches(msg, a.keys.CycleCategory):
		a.cycleCategory()
		a.refresh(true)

	case key.Matches(msg, a.keys.ClearFilters):
		a.selection = filter.Selection{}
		a.dupesOnly = false
		a.refresh(true)

	case key.Matches(msg, a.keys.ToggleDupes):
		a.dupesOnly = !a.dupesOnly
		a.refresh(false)

	case key.Matches(msg, a.keys.CyclePageSize):
		a.pager.CyclePageSize()
		a.refresh(false)

	case key.Matches(msg, a.keys.Open):
		if r := a.selectedResult(); r != nil {
			OpenURL(r.Record.URL)
			a.status = "opened " + r.Record.DisplayTitle()
		}

	case key.Matches(msg, a.keys.CopyURL):
		if r := a.selectedResult(); r != nil {
			if err := clipboard.WriteAll(r.Record.URL); err == nil {
				a.status = "copied URL"
			}
		}

	case key.Matches(msg, a.keys.Delete):
		if r := a.selectedResult(); r != nil {
			a.store.Remove(r.Record.ID)
			a.refresh(false)
			a.status = "deleted"
		}

	case key.Matches(msg, a.keys.DeleteCategory):
		if a.selection.Single != "" && a.selection.Single != filter.All {
			category := a.selection.Single
			a.store.RemoveCategoryEverywhere(category)
			a.selection.Remove(category)
			a.refresh(true)
			a.status = "deleted category " + category
		}
	}

	return a, nil
}

// cycleCategory advances the single-select filter through All and every
// known category.
func (a *App) cycleCategory() {
	categories := a.store.AllCategories()
	if len(categories) == 0 {
		a.selection.Single = ""
		return
	}

	if a.selection.Single == "" || a.selection.Single == filter.All {
		a.selection.Single = categories[0]
		return
	}
	for i, c := range categories {
		if c == a.selection.Single {
			if i == len(categories)-1 {
				a.selection.Single = ""
			} else {
				a.selection.Single = categories[i+1]
			}
			return
		}
	}
	a.selection.Single = ""
}
