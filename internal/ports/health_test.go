package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker is a configurable HealthChecker for registry tests.
type stubChecker struct {
	name  string
	err   error
	delay time.Duration
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}

	return s.err
}

func TestHealthRegistry_Register(t *testing.T) {
	registry := NewHealthRegistry()

	err := registry.Register(&stubChecker{name: "journal-store"})
	require.NoError(t, err)

	err = registry.Register(&stubChecker{name: "warpcast"})
	require.NoError(t, err)
}

func TestHealthRegistry_Register_Duplicate(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "journal-store"}))

	err := registry.Register(&stubChecker{name: "journal-store"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "journal-store")
}

func TestHealthRegistry_CheckAll_Empty(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestHealthRegistry_CheckAll_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "journal-store"}))
	require.NoError(t, registry.Register(&stubChecker{name: "warpcast"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["journal-store"].Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["warpcast"].Status)
}

func TestHealthRegistry_CheckAll_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "journal-store"}))
	require.NoError(t, registry.Register(&stubChecker{
		name: "warpcast",
		err:  errors.New("connection refused"),
	}))

	result := registry.CheckAll(context.Background())

	// One failing component marks the whole service unhealthy.
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["journal-store"].Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["warpcast"].Status)
	assert.Equal(t, "connection refused", result.Checks["warpcast"].Message)
}

func TestHealthRegistry_CheckAll_RunsConcurrently(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "a", delay: 50 * time.Millisecond}))
	require.NoError(t, registry.Register(&stubChecker{name: "b", delay: 50 * time.Millisecond}))
	require.NoError(t, registry.Register(&stubChecker{name: "c", delay: 50 * time.Millisecond}))

	start := time.Now()
	result := registry.CheckAll(context.Background())
	elapsed := time.Since(start)

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Len(t, result.Checks, 3)
	// Serial execution would take at least 150ms.
	assert.Less(t, elapsed, 120*time.Millisecond)
}

func TestHealthRegistry_CheckAll_RespectsContext(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "slow", delay: time.Second}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["slow"].Status)
}
