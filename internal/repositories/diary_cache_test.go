package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestDiaryCalendarCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewDiaryCalendarCacheRepository(rdb, 2*time.Second)

	userID := int64(42)

	t.Run("Set and Get month", func(t *testing.T) {
		days := []bool{true, false, true, false, false}

		err := repo.SetMonth(ctx, userID, 2022, 5, days)
		assert.NoError(t, err)

		got, err := repo.GetMonth(ctx, userID, 2022, 5)
		assert.NoError(t, err)
		assert.Equal(t, days, got)
	})

	t.Run("Get missing month returns error", func(t *testing.T) {
		_, err := repo.GetMonth(ctx, userID, 2023, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "calendar not found")
	})

	t.Run("Months are keyed per user", func(t *testing.T) {
		err := repo.SetMonth(ctx, userID, 2022, 6, []bool{true})
		assert.NoError(t, err)

		_, err = repo.GetMonth(ctx, userID+1, 2022, 6)
		assert.Error(t, err)
	})

	t.Run("Delete month invalidates cache", func(t *testing.T) {
		err := repo.SetMonth(ctx, userID, 2022, 7, []bool{true, true})
		assert.NoError(t, err)

		err = repo.DeleteMonth(ctx, userID, 2022, 7)
		assert.NoError(t, err)

		_, err = repo.GetMonth(ctx, userID, 2022, 7)
		assert.Error(t, err)
	})

	t.Run("Cached month expires", func(t *testing.T) {
		err := repo.SetMonth(ctx, userID, 2022, 8, []bool{true})
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetMonth(ctx, userID, 2022, 8)
		assert.Error(t, err)
	})
}
