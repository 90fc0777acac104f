package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// StorePinger probes the active document store.
type StorePinger func(ctx context.Context) error

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth probes every dependency once and stores the result.
func CheckHealth(ctx context.Context, redisClients []*redis.Client, pingStore StorePinger) HealthStatus {
	var redisHealth []bool
	for _, client := range redisClients {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		redisHealth = append(redisHealth, client.Ping(pctx).Err() == nil)
		cancel()
	}

	storeHealthy := true
	if pingStore != nil {
		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		storeHealthy = pingStore(sctx) == nil
		cancel()
	}

	status := HealthStatus{
		Store:     storeHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClients []*redis.Client, pingStore StorePinger) {
	go func() {
		CheckHealth(ctx, redisClients, pingStore)
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClients, pingStore)
			}
		}
	}()
}
