package services

import (
	"memoless-api/utility/cache"
	"memoless-api/utility/logger"
	"time"

	"github.com/go-redis/redis/v7"
)

// MemoryThrottle ... per process throttle backed by the memory cache
type MemoryThrottle struct {
	Cache *cache.Memory
}

func NewMemoryThrottle(cache *cache.Memory) *MemoryThrottle {
	return &MemoryThrottle{Cache: cache}
}

// Allow ... true the first time key is seen within window
func (throttle *MemoryThrottle) Allow(key string, window time.Duration) bool {
	return throttle.Cache.AddFor(key, time.Now(), window)
}

// RedisThrottle ... throttle shared by every replica through redis SETNX
type RedisThrottle struct {
	Client   *redis.Client
	Fallback Throttle
}

// NewRedisThrottle ... connects to redisURL; a blank URL gives the memory throttle alone
func NewRedisThrottle(redisURL string, fallback Throttle) (Throttle, error) {
	if redisURL == "" {
		return fallback, nil
	}
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return fallback, err
	}
	return &RedisThrottle{Client: redis.NewClient(options), Fallback: fallback}, nil
}

// Allow ... falls back to the in-process throttle when redis cannot be reached
func (throttle *RedisThrottle) Allow(key string, window time.Duration) bool {
	set, err := throttle.Client.SetNX(key, time.Now().Unix(), window).Result()
	if err != nil {
		logger.Warning("Redis throttle unavailable for %s, using in-process throttle : %s", key, err)
		if throttle.Fallback == nil {
			return true
		}
		return throttle.Fallback.Allow(key, window)
	}
	return set
}
