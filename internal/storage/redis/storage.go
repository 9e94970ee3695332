package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Word sets are stored as Redis SETs, so the order of returned words is unspecified.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word list operations

func (s *Storage) GetWordList(ctx context.Context, source string) ([]string, error) {
	return s.getSet(ctx, wordListKey(source), model.ErrWordListNotLoaded)
}

func (s *Storage) SaveWordList(ctx context.Context, source string, words []string) error {
	return s.saveSet(ctx, wordListKey(source), words, s.cfg.WordListTTL)
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, source string) ([]string, error) {
	return s.getSet(ctx, dictionaryKey(source), model.ErrDictionaryNotLoaded)
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, source string, words []string) error {
	return s.saveSet(ctx, dictionaryKey(source), words, s.cfg.DictionaryTTL)
}

// getSet returns all members of the SET at key, or notFound if it does not exist
func (s *Storage) getSet(ctx context.Context, key string, notFound error) ([]string, error) {
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, notFound
	}

	return s.client.SMembers(ctx, key).Result()
}

// saveSet replaces the SET at key with words. An empty slice deletes the key,
// since Redis cannot hold an empty SET.
func (s *Storage) saveSet(ctx context.Context, key string, words []string, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
