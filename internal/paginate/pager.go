package paginate

import (
	"encoding/json"

	"github.com/nikbrunner/pin/internal/logger"
	"github.com/nikbrunner/pin/internal/storage"
)

// Pager tracks the page size and per-filter page memory, both persisted
// through the storage backend. Persistence failures are logged and
// swallowed; the in-memory state proceeds regardless.
type Pager struct {
	backend  storage.Backend
	log      logger.Logger
	pageSize int
	memory   map[string]int
}

// NewPager loads the persisted page size and page memory.
func NewPager(backend storage.Backend, log logger.Logger) *Pager {
	p := &Pager{
		backend:  backend,
		log:      log,
		pageSize: DefaultPageSize,
		memory:   make(map[string]int),
	}

	settings := storage.LoadSettings(backend)
	if ValidPageSize(settings.PageSize) {
		p.pageSize = settings.PageSize
	}

	data, err := backend.Read(storage.KeyPages)
	if err != nil {
		log.Warn("failed to load page memory", logger.Err(err))
		return p
	}
	if data != nil {
		if err := json.Unmarshal(data, &p.memory); err != nil {
			log.Warn("failed to parse page memory", logger.Err(err))
			p.memory = make(map[string]int)
		}
	}
	return p
}

// PageSize returns the active page size.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// SetPageSize switches to a new page size and persists it. Invalid sizes
// are ignored.
func (p *Pager) SetPageSize(size int) {
	if !ValidPageSize(size) || size == p.pageSize {
		return
	}
	p.pageSize = size
	if err := storage.SaveSettings(p.backend, storage.Settings{PageSize: size}); err != nil {
		p.log.Warn("failed to persist page size", logger.Err(err))
	}
}

// CyclePageSize advances to the next size option and returns it.
func (p *Pager) CyclePageSize() int {
	p.SetPageSize(NextPageSize(p.pageSize))
	return p.pageSize
}

// PageFor returns the remembered page for a filter/search key, or 1.
func (p *Pager) PageFor(key string) int {
	if page, ok := p.memory[key]; ok && page >= 1 {
		return page
	}
	return 1
}

// Remember stores the current page for a filter/search key and persists
// the memory map.
func (p *Pager) Remember(key string, page int) {
	if page < 1 {
		page = 1
	}
	if p.memory[key] == page {
		return
	}
	p.memory[key] = page
	p.persist()
}

// Forget drops any remembered page for the key.
func (p *Pager) Forget(key string) {
	if _, ok := p.memory[key]; !ok {
		return
	}
	delete(p.memory, key)
	p.persist()
}

func (p *Pager) persist() {
	data, err := json.Marshal(p.memory)
	if err != nil {
		p.log.Warn("failed to encode page memory", logger.Err(err))
		return
	}
	if err := p.backend.Write(storage.KeyPages, data); err != nil {
		p.log.Warn("failed to persist page memory", logger.Err(err))
	}
}
