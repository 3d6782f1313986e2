package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/taskfarm/internal/database"
	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/eventlog"
)

func TestEventLogRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()

	if err != nil {
		t.Skipf("Skipping integration test: failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, database.PoolConfig{DSN: connStr, MaxConns: 5})
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, database.Migrate(ctx, pool))

	repo := NewEventLogRepository(pool)
	svc := eventlog.NewService(repo)
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))

	t.Run("LogAndQuery", func(t *testing.T) {
		require.NoError(t, bus.Publish(ctx, event.NewPlotPlantedEvent("sess-a", 0, "wheat", 2, 48)))
		require.NoError(t, bus.Publish(ctx, event.NewPlotHarvestedEvent("sess-a", 0, "wheat", 5, 53)))
		require.NoError(t, bus.Publish(ctx, event.NewWeatherChangedEvent("sess-b", domain.WeatherRainy, 1.5)))

		sessA := "sess-a"
		events, err := repo.Query(ctx, eventlog.EventFilter{SessionID: &sessA, Limit: 10})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, domain.EventTypePlotHarvested, events[0].EventType)
		assert.Equal(t, "wheat", events[0].Payload["crop_id"])
		assert.Equal(t, "sess-a", events[0].Metadata["session_id"])

		weatherType := domain.EventTypeWeatherChanged
		byType, err := repo.Query(ctx, eventlog.EventFilter{EventType: &weatherType})
		require.NoError(t, err)
		require.Len(t, byType, 1)
		require.NotNil(t, byType[0].SessionID)
		assert.Equal(t, "sess-b", *byType[0].SessionID)

		since := time.Now().Add(-time.Hour)
		recent, err := svc.Recent(ctx, eventlog.EventFilter{Since: &since, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, recent, 2)
	})

	t.Run("NilSessionAndMetadata", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, eventlog.Entry{EventType: "farm.test"}))
		evtType := "farm.test"
		events, err := repo.Query(ctx, eventlog.EventFilter{EventType: &evtType})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Nil(t, events[0].SessionID)
		assert.Nil(t, events[0].Metadata)
	})

	t.Run("Cleanup", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			"UPDATE farm_events SET created_at = NOW() - INTERVAL '40 days' WHERE session_id = 'sess-b'")
		require.NoError(t, err)

		deleted, err := svc.CleanupOldEvents(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		sessB := "sess-b"
		events, err := repo.Query(ctx, eventlog.EventFilter{SessionID: &sessB})
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
