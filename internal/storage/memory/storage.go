package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	wordLists    map[string][]string
	dictionaries map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		wordLists:    make(map[string][]string),
		dictionaries: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word list operations

func (s *Storage) GetWordList(ctx context.Context, source string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words, ok := s.wordLists[source]
	if !ok {
		return nil, model.ErrWordListNotLoaded
	}
	return slices.Clone(words), nil
}

func (s *Storage) SaveWordList(ctx context.Context, source string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wordLists[source] = append([]string{}, words...)
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, source string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words, ok := s.dictionaries[source]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	return slices.Clone(words), nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, source string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dictionaries[source] = append([]string{}, words...)
	return nil
}
