package db

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string    // Key-value store
	expiry  map[string]time.Time // Expiration times for keys set with a TTL
	mu      sync.RWMutex         // Mutex for thread-safe operations
	context context.Context
	now     func() time.Time // injectable clock for TTL tests
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		expiry:  make(map[string]time.Time),
		context: ctx,
		now:     time.Now,
	}
}

// SetClock replaces the mock's clock, letting tests advance time past TTLs.
func (m *MockRedisClient) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Set stores a key-value pair without expiration.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	delete(m.expiry, key)
	return nil
}

// SetWithTTL stores a key-value pair that expires after ttl.
func (m *MockRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.expiry[key] = m.now().Add(ttl)
	return nil
}

// SetNXWithTTL stores the key only when absent (or expired).
func (m *MockRedisClient) SetNXWithTTL(key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, live := m.liveValue(key); live {
		return false, nil
	}
	m.data[key] = value
	m.expiry[key] = m.now().Add(ttl)
	return true, nil
}

// Get retrieves a value for a given key, honoring expirations.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, live := m.liveValue(key)
	if !live {
		return "", fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	return value, nil
}

// liveValue returns the value if the key exists and has not expired.
// Caller must hold at least a read lock.
func (m *MockRedisClient) liveValue(key string) (string, bool) {
	value, exists := m.data[key]
	if !exists {
		return "", false
	}
	if exp, hasTTL := m.expiry[key]; hasTTL && m.now().After(exp) {
		return "", false
	}
	return value, true
}

// Keys lists all live keys matching a glob pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if _, live := m.liveValue(k); !live {
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Del removes a key.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expiry, key)
	return nil
}

func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

func (m *MockRedisClient) Ping() error {
	return nil
}

// Verify the mock satisfies the client interface
var _ RedisClient = (*MockRedisClient)(nil)
