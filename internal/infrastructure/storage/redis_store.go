package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/RemiF1908/pcd/pkg/dungeon"
)

const (
	// Key pattern: {prefix}dungeon:{name}
	defaultKeyPrefix = "dd:"
	dungeonKeyPart   = "dungeon:"
	indexKeyPart     = "dungeons"
)

// RedisConfig holds the configuration for the Redis dungeon store
type RedisConfig struct {
	Client redis.Cmdable
	// Prefix для всех ключей, по умолчанию "dd:"
	Prefix string
	// TTL сохранений, 0 - без срока
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.New("redis client is required")
	}
	if c.TTL < 0 {
		return errors.New("ttl must not be negative")
	}
	return nil
}

// RedisStore хранит подземелья в Redis: JSON по ключу и индекс имен в множестве
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// Ensure RedisStore implements DungeonStore
var _ DungeonStore = (*RedisStore)(nil)

func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStore{client: cfg.Client, prefix: prefix, ttl: cfg.TTL}, nil
}

// NewRedisClient создает клиента для одного инстанса Redis
func NewRedisClient(addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

func (s *RedisStore) key(name string) string {
	return s.prefix + dungeonKeyPart + name
}

func (s *RedisStore) indexKey() string {
	return s.prefix + indexKeyPart
}

func (s *RedisStore) Save(ctx context.Context, name string, doc *dungeon.Document) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := dungeon.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode dungeon: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(name), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store dungeon in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, name string) (*dungeon.Document, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to get dungeon from redis: %w", err)
	}
	return dungeon.Unmarshal(data)
}

// List возвращает имена из индекса, у которых еще жив ключ с данными
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list dungeons: %w", err)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		n, err := s.client.Exists(ctx, s.key(name)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check dungeon %s: %w", name, err)
		}
		if n == 0 {
			// ключ истек по TTL, чистим индекс
			_ = s.client.SRem(ctx, s.indexKey(), name).Err()
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
