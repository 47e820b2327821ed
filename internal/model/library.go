package model

import (
	"bytes"
	"encoding/json"
)

// CurrentLibraryVersion is the version written by this build.
const CurrentLibraryVersion = 1

// Library is the persisted envelope holding all topics and records.
type Library struct {
	Version int      `json:"version"`
	Topics  []Topic  `json:"topics"`
	Images  []Record `json:"images"`
}

// NewLibrary creates an empty Library at the current version.
func NewLibrary() Library {
	return Library{
		Version: CurrentLibraryVersion,
		Topics:  []Topic{},
		Images:  []Record{},
	}
}

// DecodeLibrary parses a persisted blob. It accepts both the current
// versioned envelope and the legacy unversioned flat record array, and
// folds the legacy singular category field into Categories. The second
// return value reports whether a migration was applied and the blob
// should be re-persisted.
func DecodeLibrary(data []byte) (Library, bool, error) {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Legacy flat array of records
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return NewLibrary(), false, err
		}
		lib := Library{
			Version: CurrentLibraryVersion,
			Topics:  []Topic{},
			Images:  records,
		}
		normalizeRecords(lib.Images)
		return lib, true, nil
	}

	var lib Library
	if err := json.Unmarshal(trimmed, &lib); err != nil {
		return NewLibrary(), false, err
	}

	migrated := false
	if lib.Version < CurrentLibraryVersion {
		lib.Version = CurrentLibraryVersion
		migrated = true
	}
	if lib.Topics == nil {
		lib.Topics = []Topic{}
	}
	if lib.Images == nil {
		lib.Images = []Record{}
	}
	if normalizeRecords(lib.Images) {
		migrated = true
	}

	return lib, migrated, nil
}

// normalizeRecords folds the legacy singular category into Categories.
// Returns true if any record changed.
func normalizeRecords(records []Record) bool {
	changed := false
	for i := range records {
		r := &records[i]
		if r.LegacyCategory == "" {
			continue
		}
		if !r.HasCategory(r.LegacyCategory) {
			r.Categories = append(r.Categories, r.LegacyCategory)
		}
		r.LegacyCategory = ""
		changed = true
	}
	return changed
}
