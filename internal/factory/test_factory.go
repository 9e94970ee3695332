package factory

import (
	"time"

	"github.com/mcoot/wordscramble/internal/dependencies/mocks"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	"github.com/mcoot/wordscramble/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// TestRootWords is the root word universe used by NewTestApp
var TestRootWords = []string{"tacos", "planets", "silkworm"}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{StorageType: StorageTypeMemory})
}

// NewTestAppWithConfig is NewTestApp with a custom Config
func NewTestAppWithConfig(cfg Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, cfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordList loads TestRootWords as the root word universe
func (t *TestApp) LoadTestWordList() error {
	return t.WordListService.LoadWords(TestRootWords)
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// from tacos
		"a", "as", "at", "so", "to",
		"act", "cat", "cot", "oat", "sac", "sat", "sot", "tao",
		"acts", "cast", "cats", "coat", "cost", "cots", "oats", "scat", "scot", "stoa", "taco",
		"coast", "coats", "costa", "tacos",
		// from planets
		"an", "pa",
		"ant", "ape", "ate", "eat", "lap", "let", "nap", "net", "pal", "pan", "pat", "pen",
		"pet", "sap", "sea", "set", "spa", "tan", "tap", "tea", "ten",
		"ants", "east", "last", "lane", "late", "lean", "lens", "nest", "pale", "pane",
		"past", "pest", "plan", "plat", "seal", "slap", "snap", "span", "step", "tale",
		"plane", "plant", "slant", "steal", "stale", "least", "panel", "pants", "paste",
		"planet", "planets", "plants", "planes", "panels",
		// from silkworm
		"ilk", "ink", "rim", "silk", "milk", "work", "worm",
		"worms", "works", "silkworm",
	}
	return t.DictionaryService.LoadWords(words)
}
