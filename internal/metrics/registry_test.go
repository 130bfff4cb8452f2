package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/restful-booker/messaging/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRegistry_ServesBusinessAndPoolMetrics(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	registry, err := metrics.NewRegistry(db)
	require.NoError(t, err)

	m := metrics.NewMetrics(registry)
	m.RecordBookingEvent("stored")
	m.RecordMessageCreated("booking")

	app := fiber.New()
	app.Get("/metrics", metrics.Handler(registry))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `messaging_booking_events_total{status="stored"} 1`)
	assert.Contains(t, string(body), `messaging_messages_created_total{source="booking"} 1`)
	assert.Contains(t, string(body), `go_sql_open_connections{db_name="messages"}`)
	assert.Contains(t, string(body), "go_goroutines")
}
