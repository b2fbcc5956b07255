package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings Mongo and Redis and keeps the latest
// snapshot in memory for the /health endpoint.
type HealthMonitor struct {
	mu      sync.RWMutex
	current HealthStatus
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start runs an initial check and launches the background check loop. The
// loop stops when ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, mongoClient *mongo.Client, redisClients ...*redis.Client) {
	m.check(ctx, mongoClient, redisClients)

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx, mongoClient, redisClients)
			}
		}
	}()
}

func (m *HealthMonitor) check(ctx context.Context, mongoClient *mongo.Client, redisClients []*redis.Client) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     mongoClient.Ping(pingCtx, nil) == nil,
		CheckedAt: time.Now(),
	}
	status.Healthy = status.Mongo
	for _, client := range redisClients {
		up := client.Ping(pingCtx).Err() == nil
		status.Redis = append(status.Redis, up)
		if !up {
			status.Healthy = false
		}
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
}
