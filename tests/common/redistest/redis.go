//go:build e2e

package redistest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	addr          string
	nextDB        int
	mu            sync.Mutex
)

// Client starts one Redis container per test process and hands every caller
// its own logical database, flushed before use.
func Client(t *testing.T) *redis.Client {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
				Labels:       map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start redis container")

		host, err := container.Host(ctx)
		require.NoError(t, err)
		port, err := container.MappedPort(ctx, "6379/tcp")
		require.NoError(t, err)
		addr = fmt.Sprintf("%s:%s", host, port.Port())
	})
	require.NotEmpty(t, addr, "redis container is not running")

	mu.Lock()
	db := nextDB % 16
	nextDB++
	mu.Unlock()

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	require.NoError(t, client.FlushDB(context.Background()).Err())
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis test client", "error", err.Error())
		}
	})
	return client
}
