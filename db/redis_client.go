package db

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist (or expired).
var ErrCacheMiss = errors.New("cache miss")

// RedisClient defines the methods the cache DAO needs from Redis
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttl time.Duration) error
	SetNXWithTTL(key, value string, ttl time.Duration) (bool, error)
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
