package dictionary

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/wordscramble/data"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/letters"
	"github.com/mcoot/wordscramble/internal/storage"
)

// Language identifies a dictionary language
type Language string

// LanguageEnglish is the only language with a bundled dictionary
const LanguageEnglish Language = "en"

// SpellChecker answers whether text is correctly spelled in a language
type SpellChecker interface {
	IsValidWord(raw string, lang Language) bool
}

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads the dictionary words cached for source
func (s *Service) LoadFromStorage(ctx context.Context, source string) error {
	words, err := s.storage.GetDictionaryWords(ctx, source)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return ErrDictionaryNotLoaded
	}
	return s.loadWords(words, source)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()

	return s.loadFromReader(ctx, file, storage.SourceKey(path))
}

// LoadBundled loads the dictionary compiled into the binary
func (s *Service) LoadBundled(ctx context.Context) error {
	return s.loadFromReader(ctx, strings.NewReader(data.Words), storage.BundledSource)
}

// Load reads the dictionary at path, or the bundled dictionary when path is
// empty, preferring a copy cached in storage for the same source. A configured
// file must exist even when a cached copy does.
func (s *Service) Load(ctx context.Context, path string) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("open dictionary: %w", err)
		}
	}

	if err := s.LoadFromStorage(ctx, storage.SourceKey(path)); err == nil {
		return nil
	}
	if path == "" {
		return s.LoadBundled(ctx)
	}
	return s.LoadFromFile(ctx, path)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words, "direct")
}

func (s *Service) loadFromReader(ctx context.Context, r io.Reader, source string) error {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("%s: %w", source, model.ErrDictionaryEmpty)
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, source, words); err != nil {
		return err
	}

	return s.loadWords(words, source)
}

func (s *Service) loadWords(words []string, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		s.words[strings.ToLower(word)] = struct{}{}
	}
	s.loaded = true

	if s.logger != nil {
		s.logger.Info("dictionary loaded",
			slog.String("source", source),
			slog.Int("word_count", len(s.words)),
		)
	}
	return nil
}

// IsValidWord reports whether raw is correctly spelled in lang. Raw text is
// split on whitespace and every token must be a dictionary word; matching
// ignores case. Text with no tokens, unsupported languages, and an unloaded
// dictionary are all invalid.
func (s *Service) IsValidWord(raw string, lang Language) bool {
	if lang != LanguageEnglish {
		return false
	}

	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	return lo.EveryBy(tokens, func(token string) bool {
		_, ok := s.words[strings.ToLower(token)]
		return ok
	})
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// FindFormableWords returns every dictionary word that can be spelled from
// the letters of root, longest first then alphabetical
func (s *Service) FindFormableWords(root string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil
	}

	root = letters.Normalize(root)
	var results []string
	for word := range s.words {
		if len(word) > len(root) || !letters.IsLowerAlpha(word) {
			continue
		}
		if letters.IsSubMultiset(word, root) {
			results = append(results, word)
		}
	}

	slices.SortFunc(results, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return results
}

// Interface check
type ServiceInterface interface {
	SpellChecker
	IsLoaded() bool
	WordCount() int
	FindFormableWords(root string) []string
	Load(ctx context.Context, path string) error
	LoadFromStorage(ctx context.Context, source string) error
	LoadFromFile(ctx context.Context, path string) error
	LoadBundled(ctx context.Context) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
