// Package cache persists the ids of created classes between the creation
// phase and the leadership assignment phase.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/conn-castle/mockfactory/internal/messages"
)

// ErrNoCache is a sentinel for a missing cache file; the leaders phase
// surfaces it with guidance to run the classes phase first.
var ErrNoCache = errors.New("cohort cache not found")

// Entry is one created class: the server-assigned id and the class name.
type Entry struct {
	ID      int64  `json:"id"`
	Kuerzel string `json:"kuerzel"`
}

// File is the cache document. It is read and written whole, never
// appended to as a log.
type File struct {
	RunID     string    `json:"runId"`
	CreatedAt time.Time `json:"createdAt"`
	Entries   []Entry   `json:"entries"`
}

// Write replaces the cache at path with the given entries, stamped with a
// fresh run id.
func Write(path string, entries []Entry) (*File, error) {
	file := &File{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Entries:   entries,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf(messages.CacheWriteFmt, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.CacheWriteFmt, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf(messages.CacheWriteFmt, path, err)
	}
	return file, nil
}

// Read loads the cache at path. The returned error wraps ErrNoCache when
// the file does not exist.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: "+messages.CacheMissingFmt, ErrNoCache, path)
		}
		return nil, fmt.Errorf(messages.CacheInvalidFmt, path, err)
	}
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(messages.CacheInvalidFmt, path, err)
	}
	if len(file.Entries) == 0 {
		return nil, fmt.Errorf(messages.CacheEmptyFmt, path)
	}
	return &file, nil
}
