// Package nhl fetches rosters, player statistics and schedules from the
// public NHL API, with an on-disk JSON cache in front of every call.
package nhl

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CacheStore keeps raw API payloads on disk so repeated runs within the
// validity window never hit the network.
type CacheStore struct {
	Root   string
	MaxAge time.Duration
}

// NewCacheStore creates the cache directory if needed.
func NewCacheStore(root string, maxAge time.Duration) (*CacheStore, error) {
	if root == "" {
		return nil, fmt.Errorf("nhl: empty cache root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("nhl: create cache dir: %w", err)
	}
	if maxAge <= 0 {
		maxAge = 12 * time.Hour
	}
	return &CacheStore{Root: root, MaxAge: maxAge}, nil
}

func (s *CacheStore) path(name string) string {
	return filepath.Join(s.Root, name+".json")
}

// Valid reports whether a cache entry exists and is younger than MaxAge.
func (s *CacheStore) Valid(name string) bool {
	info, err := os.Stat(s.path(name))
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < s.MaxAge
}

// Read returns the raw cached payload.
func (s *CacheStore) Read(name string) ([]byte, error) {
	return os.ReadFile(s.path(name))
}

// Write stores the raw payload.
func (s *CacheStore) Write(name string, body []byte) error {
	return os.WriteFile(s.path(name), body, 0o644)
}

// Clear removes every cached entry, keeping the directory itself.
func (s *CacheStore) Clear() error {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return fmt.Errorf("nhl: read cache dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.Root, e.Name())); err != nil {
			return fmt.Errorf("nhl: remove %s: %w", e.Name(), err)
		}
	}
	return nil
}
