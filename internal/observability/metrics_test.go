package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics("portal")

	m.RecordRequest("/api/applications", "POST", 201, 15*time.Millisecond)
	m.RecordRequest("/api/applications", "POST", 201, 5*time.Millisecond)
	m.RecordError("/api/applications", "POST", "FORBIDDEN")
	m.RecordEvent("application_submitted")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/applications", "POST", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/api/applications", "POST", "FORBIDDEN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.domain.WithLabelValues("application_submitted")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "NOT_FOUND")
	m.RecordEvent("user_registered")
}

func TestRequestLoggerRecordsRoute(t *testing.T) {
	m := NewMetrics("portal")
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/api/jobs/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/jobs/:id", "GET", "204")))
}
