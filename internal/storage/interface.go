package storage

import (
	"context"
	"path/filepath"
)

// BundledSource names the word sets compiled into the binary
const BundledSource = "bundled"

// Storage caches the word universes loaded from disk so later loads can skip
// re-reading and re-normalizing the source files. Each set is keyed by the
// source it was read from.
type Storage interface {
	// Word list operations (root word candidates)
	GetWordList(ctx context.Context, source string) ([]string, error)
	SaveWordList(ctx context.Context, source string, words []string) error

	// Dictionary operations (spell-check universe)
	GetDictionaryWords(ctx context.Context, source string) ([]string, error)
	SaveDictionaryWords(ctx context.Context, source string, words []string) error
}

// SourceKey returns the cache key for a file path, or BundledSource when path
// is empty. Relative paths are made absolute so the same file always maps to
// the same key.
func SourceKey(path string) string {
	if path == "" {
		return BundledSource
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
