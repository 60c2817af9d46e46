package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"apartment-journey/config"
)

func TestLoad_Defaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(24*time.Hour, cfg.Session.TTL)
	rq.False(cfg.Redis.Enabled)
	rq.InDelta(0.18, cfg.Policy.VATRate, 1e-9)
	rq.InDelta(500, cfg.Policy.Tolerance, 1e-9)
	rq.Equal(15, cfg.Policy.MaxIterations)
}

func TestLoad_Overrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("POLICY_MAX_ITERATIONS", "12")
	t.Setenv("SESSION_TTL", "2h")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.True(cfg.Redis.Enabled)
	rq.Equal(12, cfg.Policy.MaxIterations)
	rq.Equal(2*time.Hour, cfg.Session.TTL)
}

func TestLoad_Malformed(t *testing.T) {
	t.Setenv("POLICY_MAX_ITERATIONS", "many")

	_, err := config.Load()
	require.Error(t, err)
}
