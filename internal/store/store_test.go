package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.db == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPreferenceGetMissing(t *testing.T) {
	repo := openTestStore(t).Preferences()

	v, ok, err := repo.Get(context.Background(), "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected absent key, got %q (ok=%v)", v, ok)
	}
}

func TestPreferenceSetOverwrites(t *testing.T) {
	repo := openTestStore(t).Preferences()
	ctx := context.Background()

	for _, v := range []string{"dark", "light"} {
		if err := repo.Set(ctx, "theme", v); err != nil {
			t.Fatalf("set %q: %v", v, err)
		}
	}

	v, ok, err := repo.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "light" {
		t.Errorf("got %q (ok=%v), want light", v, ok)
	}
}

func TestPreferenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitae.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Preferences().Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.Preferences().Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Errorf("after reopen got %q ok=%v err=%v", v, ok, err)
	}
}

func TestPreferenceDelete(t *testing.T) {
	repo := openTestStore(t).Preferences()
	ctx := context.Background()

	if err := repo.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	_ = repo.Set(ctx, "theme", "dark")
	if err := repo.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "theme"); ok {
		t.Error("expected key removed")
	}
}

func TestMemoryPreferences(t *testing.T) {
	var repo PreferenceRepo = NewMemoryPreferences()
	ctx := context.Background()

	_ = repo.Set(ctx, "theme", "dark")
	v, ok, _ := repo.Get(ctx, "theme")
	if !ok || v != "dark" {
		t.Errorf("got %q ok=%v", v, ok)
	}
	_ = repo.Delete(ctx, "theme")
	if _, ok, _ := repo.Get(ctx, "theme"); ok {
		t.Error("expected key removed")
	}
}

func TestDefaultDBPathEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "sub", "prefs.db")
	t.Setenv("VITAE_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
