package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/wordscramble/data"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/letters"
	"github.com/mcoot/wordscramble/internal/storage"
)

// Provider supplies the universe of root words
type Provider interface {
	// Load returns the deduplicated set of lowercase alphabetic root words.
	// The returned slice is shared and must not be modified.
	Load(ctx context.Context) ([]string, error)
}

// Static is a fixed Provider, used to play against a known root word
type Static []string

var _ Provider = Static(nil)

// Load returns the normalized words
func (s Static) Load(ctx context.Context) ([]string, error) {
	words := Normalize(s)
	if len(words) == 0 {
		return nil, model.ErrWordListEmpty
	}
	return words, nil
}

// Service loads the root word list once and serves it for the rest of the
// process lifetime
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
	path    string // empty means the bundled list

	mu     sync.Mutex
	words  []string
	loaded bool
}

// New creates a new word list service reading from path, or from the bundled
// list when path is empty
func New(storage storage.Storage, logger *slog.Logger, path string) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		path:    path,
	}
}

var _ Provider = (*Service)(nil)

// Load returns the cached word list, loading it on first call. A configured
// file must exist; its contents are then read from storage when a previous
// load cached them under the same source.
func (s *Service) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.words, nil
	}

	if s.path != "" {
		if _, err := os.Stat(s.path); err != nil {
			return nil, fmt.Errorf("open word list: %w", err)
		}
	}

	source := storage.SourceKey(s.path)
	words, err := s.storage.GetWordList(ctx, source)
	switch {
	case err == nil && len(words) > 0:
		s.logger.Debug("word list loaded from storage",
			slog.String("source", source),
			slog.Int("word_count", len(words)),
		)
	case err == nil, errors.Is(err, model.ErrWordListNotLoaded):
		words, err = s.readSource()
		if err != nil {
			return nil, err
		}
		if len(words) > 0 {
			if err := s.storage.SaveWordList(ctx, source, words); err != nil {
				return nil, fmt.Errorf("cache word list: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("read cached word list: %w", err)
	}

	return s.set(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.set(Normalize(words))
	return err
}

// Count returns the number of loaded words, or 0 before the first load
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Source describes where the list is read from
func (s *Service) Source() string {
	if s.path == "" {
		return storage.BundledSource
	}
	return s.path
}

func (s *Service) set(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Source(), model.ErrWordListEmpty)
	}
	s.words = words
	s.loaded = true
	s.logger.Info("word list loaded",
		slog.String("source", s.Source()),
		slog.Int("word_count", len(words)),
	)
	return s.words, nil
}

func (s *Service) readSource() ([]string, error) {
	if s.path == "" {
		return Parse(strings.NewReader(data.WordList))
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a newline-delimited word list, keeping only lowercase
// alphabetic words, each once
func Parse(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return Normalize(lines), nil
}

// Normalize lowercases and trims words, drops blanks and anything that is not
// purely a-z, and removes duplicates keeping first occurrence order
func Normalize(words []string) []string {
	normalized := lo.Map(words, func(w string, _ int) string {
		return letters.Normalize(w)
	})
	return lo.Uniq(lo.Filter(normalized, func(w string, _ int) bool {
		return letters.IsLowerAlpha(w)
	}))
}
