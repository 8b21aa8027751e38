package storage

import (
	"path/filepath"
	"strings"
)

// New picks a backend from the path: a .json file gets the JSON store,
// anything else is treated as a SQLite database.
func New(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

// Kind names the backend behind a provider
func Kind(p Provider) string {
	switch p.(type) {
	case *JSONStore:
		return "json"
	case *SQLiteStore:
		return "sqlite"
	default:
		return "unknown"
	}
}
