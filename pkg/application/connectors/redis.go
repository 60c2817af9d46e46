package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"apartment-journey/pkg/contextx"
	"apartment-journey/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Redis lazily opens one client. The first call panics when the server does
// not answer a ping, so a misconfigured store fails at startup.
type Redis struct {
	value          *redis.Client
	Password       string
	Address        string
	DatabaseNumber int
	PoolSize       int
	init           sync.Once
}

func (r *Redis) Client(ctx context.Context) *redis.Client {
	r.init.Do(func() {
		r.value = redis.NewClient(&redis.Options{
			//nolint:exhaustruct
			Network:  "tcp",
			Addr:     r.Address,
			Password: r.Password,
			DB:       r.DatabaseNumber,
			PoolSize: r.PoolSize,
		})

		lo.Must0(r.value.Ping(ctx).Err())

		logger(ctx).Info(
			"redis connected",
			slog.String("address", r.Address),
			slog.Int("database", r.DatabaseNumber),
		)
	})

	return r.value
}

// Ping is a readiness check.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client(ctx).Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis.Ping: %w", err)
	}
	return nil
}

func (r *Redis) Close(ctx context.Context) {
	if r.value == nil {
		return
	}

	if err := r.value.Close(); err != nil {
		logger(ctx).Error("redisClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"redis disconnected",
		slog.String("address", r.Address),
		slog.Int("database", r.DatabaseNumber),
	)
}
