// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"helperhub/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient holds the provider snapshot used by matching.
	CacheClient *redis.Client
	// AuthCacheClient holds verified ID tokens.
	AuthCacheClient *redis.Client
)

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// InitCache connects both redis clients. Redis is optional: a client that
// cannot be reached stays nil and callers run uncached.
func InitCache() {
	var err error
	CacheClient, err = newRedisClient(config.AppConfig.RedisCacheDB)
	if err != nil {
		GetLogger().Warn("Redis cache unavailable, matching runs uncached", zap.Error(err))
	}
	AuthCacheClient, err = newRedisClient(config.AppConfig.RedisAuthDB)
	if err != nil {
		GetLogger().Warn("Redis auth cache unavailable, tokens verified on every request", zap.Error(err))
	}
}

// GetCacheClient returns the generic cache client, or nil when redis is down.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// RedisClients lists the connected clients for the health monitor.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{CacheClient, AuthCacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
