package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// setupTestStore initializes a provider of the given kind in a temp dir
func setupTestStore(t *testing.T, kind string) (Provider, func()) {
	t.Helper()

	name := "imaan.json"
	if kind == "sqlite" {
		name = "imaan.db"
	}
	store := New(filepath.Join(t.TempDir(), "data", name))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init %s store: %v", kind, err)
	}

	return store, func() { store.Close() }
}

var backends = []string{"json", "sqlite"}

func TestNew(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/imaan.json", "json"},
		{"/tmp/IMAAN.JSON", "json"},
		{"/tmp/imaan.db", "sqlite"},
		{"/tmp/imaan", "sqlite"},
	}
	for _, tt := range tests {
		if got := Kind(New(tt.path)); got != tt.want {
			t.Errorf("Kind(New(%q)) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestProvider_PutGet(t *testing.T) {
	for _, kind := range backends {
		t.Run(kind, func(t *testing.T) {
			store, cleanup := setupTestStore(t, kind)
			defer cleanup()

			if _, err := store.Get("divine-dashboard"); !errors.Is(err, ErrRecordNotFound) {
				t.Fatalf("Get() on empty store error = %v, want ErrRecordNotFound", err)
			}

			first := []byte(`{"date":"2026-03-01","dhikrCount":1}`)
			if err := store.Put("divine-dashboard", first); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
			second := []byte(`{"date":"2026-03-01","dhikrCount":2}`)
			if err := store.Put("divine-dashboard", second); err != nil {
				t.Fatalf("second Put() failed: %v", err)
			}
			if err := store.Put("other", []byte(`[]`)); err != nil {
				t.Fatalf("Put(other) failed: %v", err)
			}

			got, err := store.Get("divine-dashboard")
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			assertSameJSON(t, second, got)

			namespaces, err := store.Namespaces()
			if err != nil {
				t.Fatalf("Namespaces() failed: %v", err)
			}
			if diff := cmp.Diff([]string{"divine-dashboard", "other"}, namespaces); diff != "" {
				t.Errorf("Namespaces() mismatch (-want +got):\n%s", diff)
			}

			if err := store.Delete("other"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, err := store.Get("other"); !errors.Is(err, ErrRecordNotFound) {
				t.Errorf("Get() after Delete error = %v, want ErrRecordNotFound", err)
			}
		})
	}
}

func TestProvider_PersistsAcrossInstances(t *testing.T) {
	for _, kind := range backends {
		t.Run(kind, func(t *testing.T) {
			store, cleanup := setupTestStore(t, kind)
			value := []byte(`{"note":"persisted"}`)
			if err := store.Put("divine-dashboard", value); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
			cleanup()

			reopened := New(store.GetConfigPath())
			if err := reopened.Load(); err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			defer reopened.Close()

			got, err := reopened.Get("divine-dashboard")
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			assertSameJSON(t, value, got)
		})
	}
}

func TestProvider_LoadMissing(t *testing.T) {
	for _, kind := range backends {
		t.Run(kind, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing."+map[string]string{"json": "json", "sqlite": "db"}[kind])
			err := New(path).Load()
			if !errors.Is(err, ErrNotInitialized) {
				t.Errorf("Load() error = %v, want ErrNotInitialized", err)
			}
		})
	}
}

func TestProvider_NotLoaded(t *testing.T) {
	for _, kind := range backends {
		t.Run(kind, func(t *testing.T) {
			store := New(filepath.Join(t.TempDir(), "x."+map[string]string{"json": "json", "sqlite": "db"}[kind]))
			if _, err := store.Get("divine-dashboard"); err == nil {
				t.Error("Get() before Load should fail")
			}
			if err := store.Put("divine-dashboard", []byte(`{}`)); err == nil {
				t.Error("Put() before Load should fail")
			}
		})
	}
}

func assertSameJSON(t *testing.T, want, got []byte) {
	t.Helper()
	if diff := cmp.Diff(compact(t, want), compact(t, got)); diff != "" {
		t.Errorf("stored value mismatch (-want +got):\n%s", diff)
	}
}
