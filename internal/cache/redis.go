package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OblivionLi/salaries-management-system/internal/config"
	"github.com/OblivionLi/salaries-management-system/internal/response"

	"github.com/go-redis/redis/v8"
)

// Client is the subset of the redis client the envelope cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// EnvelopeCache stores the serialized list envelope under one well-known key.
// A Get miss is (nil, nil); any returned error is recoverable by reading
// the backing store instead.
type EnvelopeCache interface {
	Get(ctx context.Context) (*response.Envelope, error)
	Set(ctx context.Context, env *response.Envelope) error
	Invalidate(ctx context.Context) error
}

type redisCache struct {
	client Client
	key    string
	ttl    time.Duration
}

// New creates an EnvelopeCache over the given redis client.
func New(client Client, key string, ttl time.Duration) EnvelopeCache {
	return &redisCache{client: client, key: key, ttl: ttl}
}

// NewClient connects to redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis (%s): %w", cfg.Addr, err)
	}
	return client, nil
}

func (c *redisCache) Get(ctx context.Context) (*response.Envelope, error) {
	data, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var env response.Envelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return nil, fmt.Errorf("unmarshal cached envelope: %w", err)
	}
	return &env, nil
}

func (c *redisCache) Set(ctx context.Context, env *response.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
