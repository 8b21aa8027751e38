package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_Schema(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "imaan.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer store.Close()

	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if current != latest || current < 1 {
		t.Errorf("SchemaVersion() = (%d, %d), want equal and >= 1", current, latest)
	}

	var count int
	row := store.GetDB().QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name='kv_store'")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 1 {
		t.Error("kv_store table was not created")
	}
}

func TestSQLiteStore_InitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imaan.db")
	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := first.Put("divine-dashboard", []byte(`{"note":"kept"}`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	first.Close()

	second := NewSQLiteStore(path)
	if err := second.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}
	defer second.Close()

	if _, err := second.Get("divine-dashboard"); err != nil {
		t.Errorf("value lost after re-init: %v", err)
	}
}

func TestSQLiteStore_NewerSchemaRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imaan.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := store.GetDB().Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	if err := reopened.Load(); err == nil {
		t.Error("Load() should reject a newer schema")
	}
}
