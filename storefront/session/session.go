// Package session owns the storefront's persisted client state: the
// auth record and the cart blob. All reads and writes go through a
// Store so no component touches storage ad hoc.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Storage keys for the two persisted records.
const (
	UserInfoKey = "userInfo"
	CartKey     = "cartItems"
)

var ErrNotFound = errors.New("session: key not found")

// Store is a plain JSON blob store with no schema versioning and
// last-write-wins semantics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UserInfo is the persisted auth record: {id, name, email, isAdmin, token}.
type UserInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// LoadUserInfo returns the stored auth record, or nil when none exists.
func LoadUserInfo(ctx context.Context, s Store) (*UserInfo, error) {
	data, err := s.Get(ctx, UserInfoKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var info UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func SaveUserInfo(ctx context.Context, s Store, info UserInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.Set(ctx, UserInfoKey, data)
}

func ClearUserInfo(ctx context.Context, s Store) error {
	return s.Delete(ctx, UserInfoKey)
}

// RedisStore persists session records in Redis, one key per record,
// namespaced per storefront session.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, sessionID string) *RedisStore {
	return &RedisStore{client: client, prefix: "session:" + sessionID + ":"}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return data, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

// MemoryStore keeps session records in process. Used in tests and for
// one-off CLI sessions.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
