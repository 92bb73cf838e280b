package storage

import (
	"github.com/patrickmn/go-cache"
)

type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.c.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.c.Delete(key)
	return nil
}
