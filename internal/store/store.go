package store

import (
	"encoding/json"
	"errors"

	"github.com/nikbrunner/pin/internal/dedupe"
	"github.com/nikbrunner/pin/internal/logger"
	"github.com/nikbrunner/pin/internal/model"
	"github.com/nikbrunner/pin/internal/search"
	"github.com/nikbrunner/pin/internal/storage"
)

// ErrNotFound is returned when an id does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Store owns the canonical record list, user-defined category names and
// topics. Every mutating operation immediately persists through the
// backend; persistence failures are logged and swallowed so the
// in-memory state always proceeds.
type Store struct {
	backend storage.Backend
	log     logger.Logger

	records []model.Record
	topics  []model.Topic
	custom  []string // user-defined custom category names
}

// Open loads the library from the backend. Absent or unparsable blobs
// yield an empty store, never an error. Records missing search tokens
// are backfilled and the corrected list is re-persisted immediately.
func Open(backend storage.Backend, log logger.Logger) *Store {
	s := &Store{
		backend: backend,
		log:     log,
		records: []model.Record{},
		topics:  []model.Topic{},
		custom:  []string{},
	}

	s.loadLibrary()
	s.loadCustomCategories()
	return s
}

func (s *Store) loadLibrary() {
	data, err := s.backend.Read(storage.KeyBookmarks)
	if err != nil {
		s.log.Warn("failed to read bookmarks", logger.Err(err))
		return
	}
	if data == nil {
		return
	}

	lib, migrated, err := model.DecodeLibrary(data)
	if err != nil {
		s.log.Warn("failed to parse bookmarks", logger.Err(err))
		return
	}

	s.records = lib.Images
	s.topics = lib.Topics

	// Self-healing migration: backfill missing token caches.
	backfilled := false
	for i := range s.records {
		if s.records[i].SearchTokens == nil {
			s.records[i].SearchTokens = search.BuildSearchTokens(s.records[i])
			backfilled = true
		}
	}

	if migrated || backfilled {
		s.persistLibrary()
	}
}

func (s *Store) loadCustomCategories() {
	data, err := s.backend.Read(storage.KeyCategories)
	if err != nil {
		s.log.Warn("failed to read categories", logger.Err(err))
		return
	}
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, &s.custom); err != nil {
		s.log.Warn("failed to parse categories", logger.Err(err))
		s.custom = []string{}
	}
}

func (s *Store) persistLibrary() {
	lib := model.Library{
		Version: model.CurrentLibraryVersion,
		Topics:  s.topics,
		Images:  s.records,
	}
	data, err := json.Marshal(lib)
	if err != nil {
		s.log.Warn("failed to encode bookmarks", logger.Err(err))
		return
	}
	if err := s.backend.Write(storage.KeyBookmarks, data); err != nil {
		s.log.Warn("failed to persist bookmarks", logger.Err(err))
	}
}

func (s *Store) persistCustomCategories() {
	data, err := json.Marshal(s.custom)
	if err != nil {
		s.log.Warn("failed to encode categories", logger.Err(err))
		return
	}
	if err := s.backend.Write(storage.KeyCategories, data); err != nil {
		s.log.Warn("failed to persist categories", logger.Err(err))
	}
}

// Records returns the record list, newest-first by construction.
func (s *Store) Records() []model.Record {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get finds a record by id.
func (s *Store) Get(id string) (model.Record, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Record{}, ErrNotFound
}

// HasURL reports whether a record with the same normalized URL exists.
func (s *Store) HasURL(url string) bool {
	key := dedupe.NormalizeURL(url)
	for _, r := range s.records {
		if dedupe.NormalizeURL(r.URL) == key {
			return true
		}
	}
	return false
}

// Add creates a record, prepends it to the list and persists.
func (s *Store) Add(params model.NewRecordParams) model.Record {
	record := model.NewRecord(params)
	record.SearchTokens = search.BuildSearchTokens(record)
	s.records = append([]model.Record{record}, s.records...)
	s.persistLibrary()
	return record
}

// AddMany creates records in order (first param ends up at the head)
// and persists once. Used by bulk import.
func (s *Store) AddMany(params []model.NewRecordParams) []model.Record {
	added := make([]model.Record, 0, len(params))
	for _, p := range params {
		record := model.NewRecord(p)
		record.SearchTokens = search.BuildSearchTokens(record)
		added = append(added, record)
		s.records = append([]model.Record{record}, s.records...)
	}
	if len(added) > 0 {
		s.persistLibrary()
	}
	return added
}

// Remove deletes a record by id and persists. Removing a nonexistent id
// is a no-op.
func (s *Store) Remove(id string) {
	s.RemoveMany([]string{id})
}

// RemoveMany deletes all records whose id is in the set and persists once.
func (s *Store) RemoveMany(ids []string) {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	kept := s.records[:0]
	removed := false
	for _, r := range s.records {
		if idSet[r.ID] {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept

	if removed {
		s.persistLibrary()
	}
}

// MoveToFront reorders the first record with the given URL to the head
// of the list without changing its id or createdAt. Returns false when
// no record has that URL.
func (s *Store) MoveToFront(url string) bool {
	key := dedupe.NormalizeURL(url)
	for i, r := range s.records {
		if dedupe.NormalizeURL(r.URL) == key {
			if i > 0 {
				s.records = append(s.records[:i], s.records[i+1:]...)
				s.records = append([]model.Record{r}, s.records...)
				s.persistLibrary()
			}
			return true
		}
	}
	return false
}
