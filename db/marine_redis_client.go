package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// MarineRedisClient struct holds the Redis client and context
type MarineRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewMarineRedisClient initializes a new Redis client wrapper
func NewMarineRedisClient(ctx context.Context, client *redis.Client) *MarineRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &MarineRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis without expiration
func (r *MarineRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that Redis expires after ttl
func (r *MarineRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// SetNXWithTTL sets the key only if it does not exist yet. Returns whether the
// write happened. Cache entries are immutable once written, so concurrent
// computations of the same entry race harmlessly on this insert-if-absent.
func (r *MarineRedisClient) SetNXWithTTL(key, value string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(r.ctx, key, value, ttl).Result()
}

// Get retrieves the value for a given key from Redis. A missing key is
// reported as ErrCacheMiss so callers can treat it as a read-through miss.
func (r *MarineRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	return val, err
}

func (r *MarineRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *MarineRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

// Keys lists all keys matching the pattern
func (r *MarineRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key
func (r *MarineRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
