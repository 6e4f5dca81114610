package prefs

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrFailedToParseURL is returned by Open for a malformed Redis URL.
var ErrFailedToParseURL = errors.New("prefs: failed to parse redis url")

// Redis is a preference store backed by Redis. Values are stored without
// expiration so preferences survive until explicitly overwritten.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithPrefix namespaces all keys as "{prefix}:{key}", for sharing one
// Redis instance between applications.
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis creates a Redis-backed preference store on an existing
// client.
//
// Example:
//
//	client, err := prefs.Open(ctx, os.Getenv("REDIS_URL"))
//	store := prefs.NewRedis(client, prefs.WithPrefix("myapp"))
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a Redis client from a redis:// or rediss:// URL and
// verifies the connection with a ping.
func Open(ctx context.Context, url string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// Get retrieves the value stored under key.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefixedKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// Set stores value under key without expiration.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefixedKey(key), value, 0).Err()
}

func (r *Redis) prefixedKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

var _ Store = (*Redis)(nil)
