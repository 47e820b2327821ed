package storage

import "os"

// Blob keys used by the application. Each key holds one independent
// serialized value, mirroring the storage layout of the original app.
const (
	KeyBookmarks  = "bookmarks"  // library envelope {version, topics, images}
	KeyCategories = "categories" // user-defined custom category names
	KeyPages      = "pages"      // per-filter pagination memory
	KeySettings   = "settings"   // page size and other preferences
)

// Backend persists named blobs. Read returns (nil, nil) for a key that
// has never been written.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// OpenBackend opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to
// one JSON file per key.
func OpenBackend() (Backend, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	// If SQLite database exists, use it
	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteBackend(sqlitePath)
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewFileBackend(dir), nil
}
