package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "klassen.json")
	entries := []Entry{
		{ID: 101, Kuerzel: "05a"},
		{ID: 102, Kuerzel: "05b"},
		{ID: 103, Kuerzel: "EF"},
	}

	written, err := Write(path, entries)
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if written.RunID == "" {
		t.Fatal("written cache has no run id")
	}
	if written.CreatedAt.IsZero() {
		t.Fatal("written cache has no timestamp")
	}

	read, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if read.RunID != written.RunID {
		t.Fatalf("run id changed on read: %q != %q", read.RunID, written.RunID)
	}
	if len(read.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(read.Entries), len(entries))
	}
	for i, entry := range read.Entries {
		if entry != entries[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, entry, entries[i])
		}
	}
}

func TestWriteReplacesExistingCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klassen.json")
	if _, err := Write(path, []Entry{{ID: 1, Kuerzel: "05a"}}); err != nil {
		t.Fatalf("first Write error: %v", err)
	}
	if _, err := Write(path, []Entry{{ID: 2, Kuerzel: "06a"}}); err != nil {
		t.Fatalf("second Write error: %v", err)
	}

	read, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(read.Entries) != 1 || read.Entries[0].ID != 2 {
		t.Fatalf("cache not replaced: %+v", read.Entries)
	}
}

func TestReadMissingCache(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNoCache) {
		t.Fatalf("expected ErrNoCache, got %v", err)
	}
}

func TestReadRejectsEmptyAndInvalid(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"runId": "x", "entries": []}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Read(empty); err == nil {
		t.Fatal("expected error for cache without entries")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`not json`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Read(invalid); err == nil {
		t.Fatal("expected error for malformed cache")
	}
}
