package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Memory ... in-process cache with per item expiry
type Memory struct {
	Cache *cache.Cache
}

// Initialize ...
func Initialize(expiry time.Duration, purgeInterval time.Duration) *Memory {
	newCache := cache.New(expiry, purgeInterval)
	memoryCache := Memory{
		Cache: newCache,
	}
	return &memoryCache
}

// SetFor ... stores value for the given duration
func (memory *Memory) SetFor(key string, value interface{}, ttl time.Duration) {
	memory.Cache.Set(key, value, ttl)
}

// AddFor ... stores value only when key is absent, reporting whether it did
func (memory *Memory) AddFor(key string, value interface{}, ttl time.Duration) bool {
	return memory.Cache.Add(key, value, ttl) == nil
}

// Get ...
func (memory *Memory) Get(key string) interface{} {
	cacheValue, _ := memory.Cache.Get(key)
	return cacheValue
}
