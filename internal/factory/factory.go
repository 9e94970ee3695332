package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/wordscramble/internal/dependencies/clock"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/services/bot"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/game"
	"github.com/mcoot/wordscramble/internal/services/scoring"
	"github.com/mcoot/wordscramble/internal/services/wordlist"
	"github.com/mcoot/wordscramble/internal/storage"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	redisstorage "github.com/mcoot/wordscramble/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordListService   *wordlist.Service
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	Engine            *game.Engine
	BotService        *bot.Service

	cfg    Config
	logger *slog.Logger
	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the word cache backend ("memory" or "redis")
	StorageType string `env:"WORDSCRAMBLE_STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is used when StorageType is "redis"
	RedisURL string `env:"WORDSCRAMBLE_REDIS_URL" envDefault:"redis://localhost:6379"`
	// RedisCacheTTL expires the cached word sets; zero keeps them forever
	RedisCacheTTL time.Duration `env:"WORDSCRAMBLE_REDIS_CACHE_TTL" envDefault:"0s"`
	// WordListPath is a newline-delimited root word file; empty uses the bundled list
	WordListPath string `env:"WORDSCRAMBLE_WORD_LIST_PATH"`
	// DictionaryPath is a newline-delimited dictionary file; empty uses the bundled dictionary
	DictionaryPath string `env:"WORDSCRAMBLE_DICTIONARY_PATH"`
	// CarryGuesses keeps guesses between rounds
	CarryGuesses bool `env:"WORDSCRAMBLE_CARRY_GUESSES" envDefault:"false"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"WORDSCRAMBLE_LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig reads Config from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GameConfig returns the engine configuration
func (c Config) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.CarryGuessesAcrossRounds = c.CarryGuesses
	return cfg
}

func (c Config) redisConfig() redisstorage.Config {
	cfg := redisstorage.DefaultConfig()
	if c.RedisURL != "" {
		cfg.URL = c.RedisURL
	}
	cfg.WordListTTL = c.RedisCacheTTL
	cfg.DictionaryTTL = c.RedisCacheTTL
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config, logger *slog.Logger) (*App, error) {
	// Use no-op logger if not provided
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		redisStore, err := redisstorage.New(cfg.redisConfig())
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be %q or %q", storageType, StorageTypeMemory, StorageTypeRedis)
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	wordListService := wordlist.New(store, logger, cfg.WordListPath)
	dictService := dictionary.New(store, logger)
	scoringService := scoring.New()
	engine := game.NewEngine(wordListService, dictService, scoringService, clk, rnd, logger, cfg.GameConfig())
	botService := bot.NewService(dictService, bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordListService:   wordListService,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		Engine:            engine,
		BotService:        botService,
		cfg:               cfg,
		logger:            logger,
	}
}

// LoadDictionary loads the dictionary from the configured source. A missing
// dictionary is fatal to the game.
func (a *App) LoadDictionary(ctx context.Context) error {
	if err := a.DictionaryService.Load(ctx, a.cfg.DictionaryPath); err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	a.logger.InfoContext(ctx, "dictionary ready", slog.Int("word_count", a.DictionaryService.WordCount()))
	return nil
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
